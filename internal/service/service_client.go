// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/apperr"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/models"
)

// clientService is the concrete implementation of [ClientService].
// It guards login uniqueness with a read-before-write probe, encrypts the
// account credential before persistence, and coordinates the cascading
// delete across both repositories.
type clientService struct {
	clientRepository   store.ClientRepository
	passwordRepository store.PasswordRepository
	encryptor          crypto.Encryptor
	logger             *logger.Logger
}

// NewClientService constructs a [ClientService] wired to both repositories
// and the credential encryptor.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewClientService(clientRepository store.ClientRepository, passwordRepository store.PasswordRepository, encryptor crypto.Encryptor, logger *logger.Logger) ClientService {
	return &clientService{
		clientRepository:   clientRepository,
		passwordRepository: passwordRepository,
		encryptor:          encryptor,
		logger:             logger,
	}
}

// CreateClient registers a new account.
//
// The login-uniqueness probe runs first: a successful lookup means the login
// is taken and the operation stops with [apperr.LoginAlreadyExists] before
// any encryption or persistence happens. Only the repository's own
// not-found clears the probe; every other lookup failure propagates
// untransformed.
//
// The probe and the write are two independent storage calls: two concurrent
// creates with the same login can both pass the probe. The uniqueness
// invariant is best-effort, not a guarantee.
func (s *clientService) CreateClient(ctx context.Context, data models.ClientData) (models.ClientResult, error) {
	log := logger.FromContext(ctx)

	_, err := s.clientRepository.GetClientByLogin(ctx, data.Login)
	if err == nil {
		log.Warn().Str("login", data.Login).Msg("login already taken")
		return models.ClientResult{}, apperr.LoginAlreadyExists()
	}
	if !errors.Is(err, apperr.ErrClientNotFound) {
		log.Err(err).Str("login", data.Login).Msg("login uniqueness probe failed")
		return models.ClientResult{}, err
	}

	encrypted, err := s.encryptor.Encrypt(data.Password)
	if err != nil {
		log.Err(err).Str("login", data.Login).Msg("error encrypting client password")
		return models.ClientResult{}, fmt.Errorf("encrypting client password: %w", err)
	}
	data.Password = encrypted

	client, err := s.clientRepository.CreateClient(ctx, data)
	if err != nil {
		log.Err(err).Str("login", data.Login).Msg("client creation failed")
		return models.ClientResult{}, err
	}

	log.Info().Str("clientId", client.ClientID).Str("login", client.Login).Msg("client created")
	return models.ClientResult{Client: client.Response()}, nil
}

// UpdateClient rewrites an existing account's login and password.
//
// The existence check runs first; its repository-level not-found is
// re-labeled as a generic not-found with the "login not found" message so
// callers can tell the update's miss apart from other 404 sources. On
// success the password is encrypted and the repository update runs under
// its existence condition.
func (s *clientService) UpdateClient(ctx context.Context, id string, data models.ClientData) (models.ClientResult, error) {
	log := logger.FromContext(ctx)

	if _, err := s.clientRepository.GetClientByID(ctx, id); err != nil {
		if errors.Is(err, apperr.ErrClientNotFound) {
			log.Warn().Str("clientId", id).Msg("client to update does not exist")
			return models.ClientResult{}, apperr.NotFound("login not found")
		}
		log.Err(err).Str("clientId", id).Msg("client existence check failed")
		return models.ClientResult{}, err
	}

	encrypted, err := s.encryptor.Encrypt(data.Password)
	if err != nil {
		log.Err(err).Str("clientId", id).Msg("error encrypting client password")
		return models.ClientResult{}, fmt.Errorf("encrypting client password: %w", err)
	}
	data.Password = encrypted

	client, err := s.clientRepository.UpdateClient(ctx, id, data)
	if err != nil {
		log.Err(err).Str("clientId", id).Msg("client update failed")
		return models.ClientResult{}, err
	}

	log.Info().Str("clientId", client.ClientID).Msg("client updated")
	return models.ClientResult{Client: client.Response()}, nil
}

// DeleteClient removes an account and everything it owns: first the bulk
// delete of the account's password entries, then the account record itself.
//
// Both steps are attempted exactly once each, in that order, even when the
// first one fails. There is no rollback and no retry, so a half-completed
// cascade is a possible end state. The first failure becomes the
// operation's error.
func (s *clientService) DeleteClient(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	passwordsErr := s.passwordRepository.DeletePasswordsForClientID(ctx, id)
	if passwordsErr != nil {
		log.Err(passwordsErr).Str("clientId", id).Msg("deleting client passwords failed")
	}

	clientErr := s.clientRepository.DeleteClient(ctx, id)
	if clientErr != nil {
		log.Err(clientErr).Str("clientId", id).Msg("deleting client record failed")
	}

	if passwordsErr != nil {
		return passwordsErr
	}
	if clientErr != nil {
		return clientErr
	}

	log.Info().Str("clientId", id).Msg("client and passwords deleted")
	return nil
}
