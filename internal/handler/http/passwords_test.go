// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pass-vault/internal/apperr"
	"github.com/MKhiriev/go-pass-vault/models"
)

// ─────────────────────────────────────────────
// GET /api/clients/{clientID}/passwords
// ─────────────────────────────────────────────

func TestGetPasswords_Success(t *testing.T) {
	h, _, passwords := newTestHandler(t)

	passwords.EXPECT().
		GetPasswords(gomock.Any(), "c1").
		Return(models.PasswordListResult{Passwords: []models.Password{
			{PasswordID: "p1", Name: "mail", Login: "alice", Value: "plain-one", ClientID: "c1"},
			{PasswordID: "p2", Name: "bank", Login: "alice", Value: "plain-two", ClientID: "c1"},
		}}, nil)

	rec := doJSON(t, h, http.MethodGet, "/api/clients/c1/passwords", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var result models.PasswordListResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	require.Len(t, result.Passwords, 2)
	assert.Equal(t, "p1", result.Passwords[0].PasswordID)
	assert.Equal(t, "plain-one", result.Passwords[0].Value)
	assert.Equal(t, "p2", result.Passwords[1].PasswordID)
}

func TestGetPasswords_NotFound(t *testing.T) {
	h, _, passwords := newTestHandler(t)

	passwords.EXPECT().
		GetPasswords(gomock.Any(), "c1").
		Return(models.PasswordListResult{}, apperr.PasswordNotFound("no passwords found for client 'c1'"))

	rec := doJSON(t, h, http.MethodGet, "/api/clients/c1/passwords", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	resp := decodeErrorResponse(t, rec)
	assert.Equal(t, "no passwords found for client 'c1'", resp.Message)
	assert.Equal(t, "PasswordNotFound", resp.ErrorCode)
}

func TestGetPasswords_UnexpectedErrorIsOpaque500(t *testing.T) {
	h, _, passwords := newTestHandler(t)

	passwords.EXPECT().
		GetPasswords(gomock.Any(), "c1").
		Return(models.PasswordListResult{}, errors.New("cipher: message authentication failed"))

	rec := doJSON(t, h, http.MethodGet, "/api/clients/c1/passwords", "")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	resp := decodeErrorResponse(t, rec)
	assert.Equal(t, "Internal Server Error", resp.Message)
	assert.NotContains(t, rec.Body.String(), "cipher")
}

// ─────────────────────────────────────────────
// POST /api/clients/{clientID}/passwords
// ─────────────────────────────────────────────

func TestCreatePassword_Success(t *testing.T) {
	h, _, passwords := newTestHandler(t)

	passwords.EXPECT().
		CreatePassword(gomock.Any(), "c1", models.PasswordData{Name: "mail", Login: "alice", Value: "secret"}).
		Return(models.PasswordResult{Password: models.Password{
			PasswordID: "p1", Name: "mail", Login: "alice", Value: "ct", ClientID: "c1",
		}}, nil)

	rec := doJSON(t, h, http.MethodPost, "/api/clients/c1/passwords", `{"name":"mail","login":"alice","value":"secret"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var result models.PasswordResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "p1", result.Password.PasswordID)
	assert.Equal(t, "c1", result.Password.ClientID)
}

func TestCreatePassword_InvalidJSON(t *testing.T) {
	h, _, passwords := newTestHandler(t)

	passwords.EXPECT().CreatePassword(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	rec := doJSON(t, h, http.MethodPost, "/api/clients/c1/passwords", `{`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// PUT /api/clients/{clientID}/passwords/{passwordID}
// ─────────────────────────────────────────────

func TestUpdatePassword_Success(t *testing.T) {
	h, _, passwords := newTestHandler(t)

	passwords.EXPECT().
		UpdatePassword(gomock.Any(), "c1", "p1", models.PasswordData{Name: "mail", Value: "secret"}).
		Return(models.PasswordResult{Password: models.Password{PasswordID: "p1", Name: "mail", Value: "ct"}}, nil)

	rec := doJSON(t, h, http.MethodPut, "/api/clients/c1/passwords/p1", `{"name":"mail","value":"secret"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var result models.PasswordResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "p1", result.Password.PasswordID)
}

func TestUpdatePassword_NotFound(t *testing.T) {
	h, _, passwords := newTestHandler(t)

	passwords.EXPECT().
		UpdatePassword(gomock.Any(), "c1", "ghost", gomock.Any()).
		Return(models.PasswordResult{}, apperr.PasswordNotFound("no password found with id 'ghost'"))

	rec := doJSON(t, h, http.MethodPut, "/api/clients/c1/passwords/ghost", `{"value":"secret"}`)

	require.Equal(t, http.StatusNotFound, rec.Code)
	resp := decodeErrorResponse(t, rec)
	assert.Equal(t, "PasswordNotFound", resp.ErrorCode)
}

// ─────────────────────────────────────────────
// DELETE /api/clients/{clientID}/passwords/{passwordID}
// ─────────────────────────────────────────────

func TestDeletePassword_Success(t *testing.T) {
	h, _, passwords := newTestHandler(t)

	passwords.EXPECT().DeletePassword(gomock.Any(), "p1").Return(nil)

	rec := doJSON(t, h, http.MethodDelete, "/api/clients/c1/passwords/p1", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestDeletePassword_StorageDown(t *testing.T) {
	h, _, passwords := newTestHandler(t)

	passwords.EXPECT().
		DeletePassword(gomock.Any(), "p1").
		Return(apperr.DynamoDBDown(errors.New("throttled")))

	rec := doJSON(t, h, http.MethodDelete, "/api/clients/c1/passwords/p1", "")

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
