// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/internal/apperr"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

func newClientService(clients *mockClientRepository, passwords *mockPasswordRepository, enc *mockEncryptor) ClientService {
	return NewClientService(clients, passwords, enc, logger.Nop())
}

// ─────────────────────────────────────────────
// CreateClient
// ─────────────────────────────────────────────

func TestClientService_CreateClient_Success(t *testing.T) {
	clients := &mockClientRepository{
		getByLoginFn: func(_ context.Context, login string) (models.Client, error) {
			assert.Equal(t, "alice", login)
			return models.Client{}, apperr.ClientNotFound("No client exists with login 'alice'")
		},
		createFn: func(_ context.Context, data models.ClientData) (models.Client, error) {
			// the repository must receive ciphertext, never the raw password
			assert.Equal(t, "enc(s3cret)", data.Password)
			return models.Client{
				ClientID: "c1",
				Login:    data.Login,
				Password: data.Password,
				Metadata: models.Metadata{CreatedDate: "2026-01-02T03:04:05Z", UpdatedDate: "2026-01-02T03:04:05Z"},
			}, nil
		},
	}
	enc := &mockEncryptor{}
	svc := newClientService(clients, &mockPasswordRepository{}, enc)

	result, err := svc.CreateClient(context.Background(), models.ClientData{Login: "alice", Password: "s3cret"})

	require.NoError(t, err)
	assert.Equal(t, "c1", result.Client.ClientID)
	assert.Equal(t, "alice", result.Client.Login)
	assert.Equal(t, "2026-01-02T03:04:05Z", result.Client.Metadata.CreatedDate)
	assert.Equal(t, 1, enc.encryptCalls)
	assert.Equal(t, 1, clients.createCalls)
}

func TestClientService_CreateClient_LoginAlreadyExists(t *testing.T) {
	clients := &mockClientRepository{
		getByLoginFn: func(_ context.Context, _ string) (models.Client, error) {
			return models.Client{ClientID: "existing", Login: "alice"}, nil
		},
	}
	enc := &mockEncryptor{}
	svc := newClientService(clients, &mockPasswordRepository{}, enc)

	_, err := svc.CreateClient(context.Background(), models.ClientData{Login: "alice", Password: "s3cret"})

	require.ErrorIs(t, err, apperr.ErrLoginAlreadyExists)
	e, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, 400, e.StatusCode)
	assert.Equal(t, "login already exists", e.Message)
	assert.Zero(t, enc.encryptCalls, "no encryption before the probe clears")
	assert.Zero(t, clients.createCalls, "no persistence attempted on conflict")
}

func TestClientService_CreateClient_ProbeStoreErrorPropagates(t *testing.T) {
	down := apperr.DynamoDBDown(errStorage)
	clients := &mockClientRepository{
		getByLoginFn: func(_ context.Context, _ string) (models.Client, error) {
			return models.Client{}, down
		},
	}
	enc := &mockEncryptor{}
	svc := newClientService(clients, &mockPasswordRepository{}, enc)

	_, err := svc.CreateClient(context.Background(), models.ClientData{Login: "alice", Password: "s3cret"})

	require.ErrorIs(t, err, apperr.ErrDynamoDBDown)
	assert.Zero(t, enc.encryptCalls)
	assert.Zero(t, clients.createCalls)
}

func TestClientService_CreateClient_RepositoryErrorPropagates(t *testing.T) {
	clients := &mockClientRepository{
		getByLoginFn: func(_ context.Context, _ string) (models.Client, error) {
			return models.Client{}, apperr.ClientNotFound("miss")
		},
		createFn: func(_ context.Context, _ models.ClientData) (models.Client, error) {
			return models.Client{}, apperr.DynamoDBDown(errStorage)
		},
	}
	svc := newClientService(clients, &mockPasswordRepository{}, &mockEncryptor{})

	_, err := svc.CreateClient(context.Background(), models.ClientData{Login: "alice", Password: "s3cret"})

	require.ErrorIs(t, err, apperr.ErrDynamoDBDown)
}

// ─────────────────────────────────────────────
// UpdateClient
// ─────────────────────────────────────────────

func TestClientService_UpdateClient_Success(t *testing.T) {
	clients := &mockClientRepository{
		getByIDFn: func(_ context.Context, id string) (models.Client, error) {
			assert.Equal(t, "c1", id)
			return models.Client{ClientID: "c1", Login: "alice"}, nil
		},
		updateFn: func(_ context.Context, id string, data models.ClientData) (models.Client, error) {
			assert.Equal(t, "c1", id)
			assert.Equal(t, "enc(n3w)", data.Password)
			return models.Client{ClientID: "c1", Login: data.Login, Password: data.Password}, nil
		},
	}
	svc := newClientService(clients, &mockPasswordRepository{}, &mockEncryptor{})

	result, err := svc.UpdateClient(context.Background(), "c1", models.ClientData{Login: "alice2", Password: "n3w"})

	require.NoError(t, err)
	assert.Equal(t, "alice2", result.Client.Login)
}

func TestClientService_UpdateClient_MissingClientRemapped(t *testing.T) {
	clients := &mockClientRepository{
		getByIDFn: func(_ context.Context, _ string) (models.Client, error) {
			return models.Client{}, apperr.ClientNotFound("No client exists with id 'ghost'")
		},
	}
	enc := &mockEncryptor{}
	svc := newClientService(clients, &mockPasswordRepository{}, enc)

	_, err := svc.UpdateClient(context.Background(), "ghost", models.ClientData{Login: "x", Password: "y"})

	// repository's own 404 is re-labeled with the service's message and the
	// generic code
	require.ErrorIs(t, err, apperr.ErrNotFound)
	assert.NotErrorIs(t, err, apperr.ErrClientNotFound)
	e, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, 404, e.StatusCode)
	assert.Equal(t, "login not found", e.Message)
	assert.Zero(t, enc.encryptCalls)
}

func TestClientService_UpdateClient_ExistenceCheckStoreErrorPropagates(t *testing.T) {
	clients := &mockClientRepository{
		getByIDFn: func(_ context.Context, _ string) (models.Client, error) {
			return models.Client{}, apperr.DynamoDBDown(errStorage)
		},
	}
	svc := newClientService(clients, &mockPasswordRepository{}, &mockEncryptor{})

	_, err := svc.UpdateClient(context.Background(), "c1", models.ClientData{Login: "x", Password: "y"})

	require.ErrorIs(t, err, apperr.ErrDynamoDBDown)
}

// ─────────────────────────────────────────────
// DeleteClient
// ─────────────────────────────────────────────

func TestClientService_DeleteClient_DeletesPasswordsThenClient(t *testing.T) {
	var order []string
	passwords := &mockPasswordRepository{
		deleteForOwnerFn: func(_ context.Context, clientID string) error {
			assert.Equal(t, "c1", clientID)
			order = append(order, "passwords")
			return nil
		},
	}
	clients := &mockClientRepository{
		deleteFn: func(_ context.Context, id string) error {
			assert.Equal(t, "c1", id)
			order = append(order, "client")
			return nil
		},
	}
	svc := newClientService(clients, passwords, &mockEncryptor{})

	require.NoError(t, svc.DeleteClient(context.Background(), "c1"))
	assert.Equal(t, []string{"passwords", "client"}, order)
	assert.Equal(t, 1, passwords.deleteForOwnerCalls)
	assert.Equal(t, 1, clients.deleteCalls)
}

func TestClientService_DeleteClient_PasswordStepFailure_ClientDeleteStillAttempted(t *testing.T) {
	down := apperr.DynamoDBDown(errStorage)
	passwords := &mockPasswordRepository{
		deleteForOwnerFn: func(_ context.Context, _ string) error { return down },
	}
	clients := &mockClientRepository{}
	svc := newClientService(clients, passwords, &mockEncryptor{})

	err := svc.DeleteClient(context.Background(), "c1")

	require.ErrorIs(t, err, apperr.ErrDynamoDBDown)
	assert.Equal(t, 1, passwords.deleteForOwnerCalls)
	assert.Equal(t, 1, clients.deleteCalls, "client delete is attempted even after the password step fails")
}

func TestClientService_DeleteClient_ClientStepFailureSurfaces(t *testing.T) {
	passwords := &mockPasswordRepository{}
	clients := &mockClientRepository{
		deleteFn: func(_ context.Context, _ string) error {
			return apperr.DynamoDBDown(errStorage)
		},
	}
	svc := newClientService(clients, passwords, &mockEncryptor{})

	err := svc.DeleteClient(context.Background(), "c1")

	require.ErrorIs(t, err, apperr.ErrDynamoDBDown)
	assert.Equal(t, 1, passwords.deleteForOwnerCalls)
}

func TestClientService_DeleteClient_EachStepAttemptedExactlyOnce(t *testing.T) {
	down := apperr.DynamoDBDown(errStorage)
	passwords := &mockPasswordRepository{
		deleteForOwnerFn: func(_ context.Context, _ string) error { return down },
	}
	clients := &mockClientRepository{
		deleteFn: func(_ context.Context, _ string) error { return down },
	}
	svc := newClientService(clients, passwords, &mockEncryptor{})

	err := svc.DeleteClient(context.Background(), "c1")

	require.Error(t, err)
	assert.Equal(t, 1, passwords.deleteForOwnerCalls)
	assert.Equal(t, 1, clients.deleteCalls)
}
