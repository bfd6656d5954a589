package service

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/services_mock.go -package=mock

// ClientService owns the account-level business rules: login uniqueness,
// credential encryption at the boundary, and the coordinated two-step
// cascading delete.
type ClientService interface {
	// CreateClient registers a new account. Fails with the
	// login-already-exists 400 when the login is taken; the response view
	// never includes the password field.
	CreateClient(ctx context.Context, data models.ClientData) (models.ClientResult, error)

	// UpdateClient rewrites the account's login and password after
	// confirming the account exists.
	UpdateClient(ctx context.Context, id string, data models.ClientData) (models.ClientResult, error)

	// DeleteClient removes the account's password entries first and the
	// account record second. The two steps are independent calls with no
	// rollback between them.
	DeleteClient(ctx context.Context, id string) error
}

// PasswordService owns credential encryption and decryption on the value
// field and delegates all persistence to the password repository.
type PasswordService interface {
	// GetPasswords returns every entry owned by clientID with decrypted
	// values, in store order.
	GetPasswords(ctx context.Context, clientID string) (models.PasswordListResult, error)

	// CreatePassword encrypts data.Value and persists a new entry owned by
	// clientID. The response echoes the persisted record, ciphertext
	// included.
	CreatePassword(ctx context.Context, clientID string, data models.PasswordData) (models.PasswordResult, error)

	// UpdatePassword confirms the entry exists, encrypts data.Value, and
	// rewrites the entry with clientID attached.
	UpdatePassword(ctx context.Context, clientID, passwordID string, data models.PasswordData) (models.PasswordResult, error)

	// DeletePassword removes a single entry.
	DeletePassword(ctx context.Context, id string) error
}
