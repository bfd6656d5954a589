package http

import (
	"net/http"

	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, _ *http.Request) {
	utils.WriteJSON(w, models.VersionResponse{Version: h.version}, http.StatusOK)
}
