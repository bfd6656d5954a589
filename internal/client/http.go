package client

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

type vaultHTTPClient struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewVaultClient constructs an HTTP/REST implementation of [VaultClient].
// It normalises and validates the base URL and configures the underlying
// HTTP client with the resolved base URL and request timeout.
//
// Returns an error if address is empty or cannot be parsed as a valid URL.
func NewVaultClient(address string, timeout time.Duration, logger *logger.Logger) (VaultClient, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid server address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(timeout)

	return &vaultHTTPClient{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// CreateClient implements [VaultClient]. It POSTs the credentials to
// POST /api/clients and decodes the password-free account view.
func (v *vaultHTTPClient) CreateClient(ctx context.Context, data models.ClientData) (models.ClientResult, error) {
	var result models.ClientResult

	resp, err := v.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(data).
		SetResult(&result).
		Post("/api/clients")

	if err != nil {
		return models.ClientResult{}, fmt.Errorf("create client request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return models.ClientResult{}, err
	}

	return result, nil
}

// UpdateClient implements [VaultClient]. It PUTs the new credentials to
// PUT /api/clients/{clientID}.
func (v *vaultHTTPClient) UpdateClient(ctx context.Context, clientID string, data models.ClientData) (models.ClientResult, error) {
	var result models.ClientResult

	resp, err := v.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(data).
		SetResult(&result).
		Put("/api/clients/" + url.PathEscape(clientID))

	if err != nil {
		return models.ClientResult{}, fmt.Errorf("update client request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return models.ClientResult{}, err
	}

	return result, nil
}

// DeleteClient implements [VaultClient]. It sends
// DELETE /api/clients/{clientID}; the server cascades over the account's
// password entries.
func (v *vaultHTTPClient) DeleteClient(ctx context.Context, clientID string) error {
	resp, err := v.client.R().
		SetContext(ctx).
		Delete("/api/clients/" + url.PathEscape(clientID))

	if err != nil {
		return fmt.Errorf("delete client request: %w", err)
	}

	return mapAPIError(resp)
}

// GetPasswords implements [VaultClient]. It GETs
// GET /api/clients/{clientID}/passwords and decodes the decrypted list.
func (v *vaultHTTPClient) GetPasswords(ctx context.Context, clientID string) (models.PasswordListResult, error) {
	var result models.PasswordListResult

	resp, err := v.client.R().
		SetContext(ctx).
		SetResult(&result).
		Get("/api/clients/" + url.PathEscape(clientID) + "/passwords")

	if err != nil {
		return models.PasswordListResult{}, fmt.Errorf("get passwords request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return models.PasswordListResult{}, err
	}

	return result, nil
}

// CreatePassword implements [VaultClient]. It POSTs the entry to
// POST /api/clients/{clientID}/passwords. The echoed value is ciphertext.
func (v *vaultHTTPClient) CreatePassword(ctx context.Context, clientID string, data models.PasswordData) (models.PasswordResult, error) {
	var result models.PasswordResult

	resp, err := v.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(data).
		SetResult(&result).
		Post("/api/clients/" + url.PathEscape(clientID) + "/passwords")

	if err != nil {
		return models.PasswordResult{}, fmt.Errorf("create password request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return models.PasswordResult{}, err
	}

	return result, nil
}

// UpdatePassword implements [VaultClient]. It PUTs the entry to
// PUT /api/clients/{clientID}/passwords/{passwordID}.
func (v *vaultHTTPClient) UpdatePassword(ctx context.Context, clientID, passwordID string, data models.PasswordData) (models.PasswordResult, error) {
	var result models.PasswordResult

	resp, err := v.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(data).
		SetResult(&result).
		Put("/api/clients/" + url.PathEscape(clientID) + "/passwords/" + url.PathEscape(passwordID))

	if err != nil {
		return models.PasswordResult{}, fmt.Errorf("update password request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return models.PasswordResult{}, err
	}

	return result, nil
}

// DeletePassword implements [VaultClient]. It sends
// DELETE /api/clients/{clientID}/passwords/{passwordID}.
func (v *vaultHTTPClient) DeletePassword(ctx context.Context, clientID, passwordID string) error {
	resp, err := v.client.R().
		SetContext(ctx).
		Delete("/api/clients/" + url.PathEscape(clientID) + "/passwords/" + url.PathEscape(passwordID))

	if err != nil {
		return fmt.Errorf("delete password request: %w", err)
	}

	return mapAPIError(resp)
}

// ServerVersion implements [VaultClient]. It GETs /api/version.
func (v *vaultHTTPClient) ServerVersion(ctx context.Context) (models.VersionResponse, error) {
	var result models.VersionResponse

	resp, err := v.client.R().
		SetContext(ctx).
		SetResult(&result).
		Get("/api/version")

	if err != nil {
		return models.VersionResponse{}, fmt.Errorf("server version request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return models.VersionResponse{}, err
	}

	return result, nil
}
