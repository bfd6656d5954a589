// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

func (h *Handler) getPasswords(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	clientID := chi.URLParam(r, "clientID")

	result, err := h.services.PasswordService.GetPasswords(ctx, clientID)
	if err != nil {
		log.Err(err).Str("clientId", clientID).Msg("fetching passwords failed")
		writeError(w, r, err)
		return
	}

	log.Info().Str("clientId", clientID).Int("count", len(result.Passwords)).Msg("passwords fetched")
	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) createPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	clientID := chi.URLParam(r, "clientID")

	var data models.PasswordData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeBadRequest(w, "Invalid JSON was passed")
		return
	}

	result, err := h.services.PasswordService.CreatePassword(ctx, clientID, data)
	if err != nil {
		log.Err(err).Str("clientId", clientID).Msg("password creation failed")
		writeError(w, r, err)
		return
	}

	log.Info().Str("clientId", clientID).Str("passwordId", result.Password.PasswordID).Msg("password created")
	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) updatePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	clientID := chi.URLParam(r, "clientID")
	passwordID := chi.URLParam(r, "passwordID")

	var data models.PasswordData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeBadRequest(w, "Invalid JSON was passed")
		return
	}

	result, err := h.services.PasswordService.UpdatePassword(ctx, clientID, passwordID, data)
	if err != nil {
		log.Err(err).Str("passwordId", passwordID).Msg("password update failed")
		writeError(w, r, err)
		return
	}

	log.Info().Str("passwordId", passwordID).Msg("password updated")
	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) deletePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	passwordID := chi.URLParam(r, "passwordID")

	if err := h.services.PasswordService.DeletePassword(ctx, passwordID); err != nil {
		log.Err(err).Str("passwordId", passwordID).Msg("password deletion failed")
		writeError(w, r, err)
		return
	}

	log.Info().Str("passwordId", passwordID).Msg("password deleted")
	w.WriteHeader(http.StatusOK)
}
