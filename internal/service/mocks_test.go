package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-pass-vault/models"
)

// ─────────────────────────────────────────────
// Mock: store.ClientRepository
// ─────────────────────────────────────────────

type mockClientRepository struct {
	getByIDFn    func(ctx context.Context, id string) (models.Client, error)
	getByLoginFn func(ctx context.Context, login string) (models.Client, error)
	createFn     func(ctx context.Context, data models.ClientData) (models.Client, error)
	updateFn     func(ctx context.Context, id string, data models.ClientData) (models.Client, error)
	deleteFn     func(ctx context.Context, id string) error

	createCalls int
	deleteCalls int
}

func (m *mockClientRepository) GetClientByID(ctx context.Context, id string) (models.Client, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return models.Client{}, nil
}

func (m *mockClientRepository) GetClientByLogin(ctx context.Context, login string) (models.Client, error) {
	if m.getByLoginFn != nil {
		return m.getByLoginFn(ctx, login)
	}
	return models.Client{}, nil
}

func (m *mockClientRepository) CreateClient(ctx context.Context, data models.ClientData) (models.Client, error) {
	m.createCalls++
	if m.createFn != nil {
		return m.createFn(ctx, data)
	}
	return models.Client{}, nil
}

func (m *mockClientRepository) UpdateClient(ctx context.Context, id string, data models.ClientData) (models.Client, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, data)
	}
	return models.Client{}, nil
}

func (m *mockClientRepository) DeleteClient(ctx context.Context, id string) error {
	m.deleteCalls++
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: store.PasswordRepository
// ─────────────────────────────────────────────

type mockPasswordRepository struct {
	getByIDFn        func(ctx context.Context, id string) (models.Password, error)
	getByClientIDFn  func(ctx context.Context, clientID string) ([]models.Password, error)
	createFn         func(ctx context.Context, data models.PasswordData) (models.Password, error)
	updateFn         func(ctx context.Context, id string, data models.PasswordData) (models.Password, error)
	deleteFn         func(ctx context.Context, id string) error
	deleteForOwnerFn func(ctx context.Context, clientID string) error

	deleteForOwnerCalls int
}

func (m *mockPasswordRepository) GetPasswordByID(ctx context.Context, id string) (models.Password, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return models.Password{}, nil
}

func (m *mockPasswordRepository) GetPasswordsByClientID(ctx context.Context, clientID string) ([]models.Password, error) {
	if m.getByClientIDFn != nil {
		return m.getByClientIDFn(ctx, clientID)
	}
	return nil, nil
}

func (m *mockPasswordRepository) CreatePassword(ctx context.Context, data models.PasswordData) (models.Password, error) {
	if m.createFn != nil {
		return m.createFn(ctx, data)
	}
	return models.Password{}, nil
}

func (m *mockPasswordRepository) UpdatePassword(ctx context.Context, id string, data models.PasswordData) (models.Password, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, data)
	}
	return models.Password{}, nil
}

func (m *mockPasswordRepository) DeletePassword(ctx context.Context, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockPasswordRepository) DeletePasswordsForClientID(ctx context.Context, clientID string) error {
	m.deleteForOwnerCalls++
	if m.deleteForOwnerFn != nil {
		return m.deleteForOwnerFn(ctx, clientID)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: crypto.Encryptor
// ─────────────────────────────────────────────

// mockEncryptor marks values instead of really encrypting them, so tests can
// assert exactly what crossed the crypto boundary and how many times.
type mockEncryptor struct {
	encryptFn func(plaintext string) (string, error)
	decryptFn func(ciphertext string) (string, error)

	encryptCalls int
	decryptCalls int
}

func (m *mockEncryptor) Encrypt(plaintext string) (string, error) {
	m.encryptCalls++
	if m.encryptFn != nil {
		return m.encryptFn(plaintext)
	}
	return "enc(" + plaintext + ")", nil
}

func (m *mockEncryptor) Decrypt(ciphertext string) (string, error) {
	m.decryptCalls++
	if m.decryptFn != nil {
		return m.decryptFn(ciphertext)
	}
	return "dec(" + ciphertext + ")", nil
}

var errStorage = errors.New("storage error")
