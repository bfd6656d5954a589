// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-pass-vault/internal/apperr"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

func (h *Handler) createClient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var data models.ClientData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeBadRequest(w, "Invalid JSON was passed")
		return
	}

	result, err := h.services.ClientService.CreateClient(ctx, data)
	if err != nil {
		log.Err(err).Str("login", data.Login).Msg("client creation failed")
		writeError(w, r, err)
		return
	}

	log.Info().Str("clientId", result.Client.ClientID).Msg("client created")
	utils.WriteJSON(w, result, http.StatusOK)
}

// getClient is a reserved route. The path is part of the API surface but the
// single-client read is not served yet.
func (h *Handler) getClient(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, apperr.NotImplemented("fetching a single client is not implemented"))
}

func (h *Handler) updateClient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	clientID := chi.URLParam(r, "clientID")

	var data models.ClientData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeBadRequest(w, "Invalid JSON was passed")
		return
	}

	result, err := h.services.ClientService.UpdateClient(ctx, clientID, data)
	if err != nil {
		log.Err(err).Str("clientId", clientID).Msg("client update failed")
		writeError(w, r, err)
		return
	}

	log.Info().Str("clientId", clientID).Msg("client updated")
	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) deleteClient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	clientID := chi.URLParam(r, "clientID")

	if err := h.services.ClientService.DeleteClient(ctx, clientID); err != nil {
		log.Err(err).Str("clientId", clientID).Msg("client deletion failed")
		writeError(w, r, err)
		return
	}

	log.Info().Str("clientId", clientID).Msg("client deleted")
	w.WriteHeader(http.StatusOK)
}
