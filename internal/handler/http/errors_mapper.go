package http

import (
	"net/http"

	"github.com/MKhiriev/go-pass-vault/internal/apperr"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

// writeError renders err as the uniform JSON error shape.
//
// Domain errors carry their own status, code, and message; anything else
// (crypto failures, marshaling bugs) is collapsed to an opaque 500 so
// internal details never reach the wire.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	if e, ok := apperr.As(err); ok {
		utils.WriteJSON(w, models.ErrorResponse{
			StatusCode: e.StatusCode,
			Message:    e.Message,
			ErrorCode:  string(e.ErrorCode),
		}, e.StatusCode)
		return
	}

	log.Err(err).Msg("unexpected error reached the transport layer")
	utils.WriteJSON(w, models.ErrorResponse{
		StatusCode: http.StatusInternalServerError,
		Message:    http.StatusText(http.StatusInternalServerError),
		ErrorCode:  "InternalServerError",
	}, http.StatusInternalServerError)
}

// writeBadRequest is the malformed-payload response: requests that cannot be
// decoded never reach the service layer.
func writeBadRequest(w http.ResponseWriter, message string) {
	utils.WriteJSON(w, models.ErrorResponse{
		StatusCode: http.StatusBadRequest,
		Message:    message,
		ErrorCode:  "BadRequest",
	}, http.StatusBadRequest)
}
