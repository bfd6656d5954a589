// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client provides the outbound API client for the go-pass-vault
// server.
//
// The primary abstraction is [VaultClient], which decouples callers from the
// underlying protocol. The package ships an HTTP/REST implementation
// ([NewVaultClient]) built on resty. Failed API calls are decoded from the
// server's uniform JSON error shape back into [apperr.Error] values, so
// callers can use [errors.Is] against the apperr sentinels exactly as
// server-side code does.
package client

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/models"
)

// VaultClient defines transport-agnostic access to the vault API.
// Implementations are responsible for serialisation and for mapping
// transport-level failures to domain errors.
type VaultClient interface {
	// CreateClient registers a new account and returns its password-free view.
	CreateClient(ctx context.Context, data models.ClientData) (models.ClientResult, error)

	// UpdateClient rewrites an existing account's login and password.
	UpdateClient(ctx context.Context, clientID string, data models.ClientData) (models.ClientResult, error)

	// DeleteClient removes an account and every password entry it owns.
	DeleteClient(ctx context.Context, clientID string) error

	// GetPasswords lists every password entry owned by clientID, values
	// decrypted by the server.
	GetPasswords(ctx context.Context, clientID string) (models.PasswordListResult, error)

	// CreatePassword stores a new password entry under clientID.
	CreatePassword(ctx context.Context, clientID string, data models.PasswordData) (models.PasswordResult, error)

	// UpdatePassword rewrites an existing password entry.
	UpdatePassword(ctx context.Context, clientID, passwordID string, data models.PasswordData) (models.PasswordResult, error)

	// DeletePassword removes a single password entry.
	DeletePassword(ctx context.Context, clientID, passwordID string) error

	// ServerVersion returns the version string reported by the server.
	ServerVersion(ctx context.Context) (models.VersionResponse, error)
}
