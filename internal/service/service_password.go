// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/models"
)

// passwordService is the concrete implementation of [PasswordService].
// It is the crypto boundary for credential values: every value is encrypted
// on the way into the repository and decrypted on the read path out of it.
type passwordService struct {
	passwordRepository store.PasswordRepository
	encryptor          crypto.Encryptor
	logger             *logger.Logger
}

// NewPasswordService constructs a [PasswordService] wired to the password
// repository and the credential encryptor.
func NewPasswordService(passwordRepository store.PasswordRepository, encryptor crypto.Encryptor, logger *logger.Logger) PasswordService {
	return &passwordService{
		passwordRepository: passwordRepository,
		encryptor:          encryptor,
		logger:             logger,
	}
}

// GetPasswords returns every entry owned by clientID with Value decrypted
// in place. All other fields and the repository's ordering are preserved.
//
// A repository not-found propagates unchanged and the encryptor is never
// invoked for it. A decrypt failure propagates wrapped but unclassified,
// since crypto failures are not part of the domain taxonomy.
func (s *passwordService) GetPasswords(ctx context.Context, clientID string) (models.PasswordListResult, error) {
	log := logger.FromContext(ctx)

	passwords, err := s.passwordRepository.GetPasswordsByClientID(ctx, clientID)
	if err != nil {
		log.Err(err).Str("clientId", clientID).Msg("fetching passwords failed")
		return models.PasswordListResult{}, err
	}

	for i := range passwords {
		plaintext, err := s.encryptor.Decrypt(passwords[i].Value)
		if err != nil {
			log.Err(err).Str("clientId", clientID).Str("passwordId", passwords[i].PasswordID).Msg("error decrypting password value")
			return models.PasswordListResult{}, fmt.Errorf("decrypting password value: %w", err)
		}
		passwords[i].Value = plaintext
	}

	log.Info().Str("clientId", clientID).Int("count", len(passwords)).Msg("passwords fetched and decrypted")
	return models.PasswordListResult{Passwords: passwords}, nil
}

// CreatePassword encrypts data.Value, attaches the owning clientID, and
// persists a new entry.
//
// The response echoes the repository's record as-is: the value stays
// ciphertext because the create path does not round-trip through decrypt.
func (s *passwordService) CreatePassword(ctx context.Context, clientID string, data models.PasswordData) (models.PasswordResult, error) {
	log := logger.FromContext(ctx)

	encrypted, err := s.encryptor.Encrypt(data.Value)
	if err != nil {
		log.Err(err).Str("clientId", clientID).Msg("error encrypting password value")
		return models.PasswordResult{}, fmt.Errorf("encrypting password value: %w", err)
	}
	data.Value = encrypted
	data.ClientID = clientID

	password, err := s.passwordRepository.CreatePassword(ctx, data)
	if err != nil {
		log.Err(err).Str("clientId", clientID).Msg("password creation failed")
		return models.PasswordResult{}, err
	}

	log.Info().Str("clientId", clientID).Str("passwordId", password.PasswordID).Msg("password created")
	return models.PasswordResult{Password: password}, nil
}

// UpdatePassword rewrites an existing entry after confirming it exists.
//
// The existence check's not-found propagates unchanged. On success
// data.Value is encrypted, clientID is attached, and the repository update
// runs under its existence condition; the post-update record is returned
// ciphertext and all.
func (s *passwordService) UpdatePassword(ctx context.Context, clientID, passwordID string, data models.PasswordData) (models.PasswordResult, error) {
	log := logger.FromContext(ctx)

	if _, err := s.passwordRepository.GetPasswordByID(ctx, passwordID); err != nil {
		log.Err(err).Str("passwordId", passwordID).Msg("password existence check failed")
		return models.PasswordResult{}, err
	}

	encrypted, err := s.encryptor.Encrypt(data.Value)
	if err != nil {
		log.Err(err).Str("passwordId", passwordID).Msg("error encrypting password value")
		return models.PasswordResult{}, fmt.Errorf("encrypting password value: %w", err)
	}
	data.Value = encrypted
	data.ClientID = clientID

	password, err := s.passwordRepository.UpdatePassword(ctx, passwordID, data)
	if err != nil {
		log.Err(err).Str("passwordId", passwordID).Msg("password update failed")
		return models.PasswordResult{}, err
	}

	log.Info().Str("passwordId", passwordID).Msg("password updated")
	return models.PasswordResult{Password: password}, nil
}

// DeletePassword removes a single entry. Pure delegation; the repository's
// idempotent-by-absence semantics apply unchanged.
func (s *passwordService) DeletePassword(ctx context.Context, id string) error {
	return s.passwordRepository.DeletePassword(ctx, id)
}
