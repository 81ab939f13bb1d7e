package http

import (
	"net/http"

	"github.com/MKhiriev/go-auth-form/internal/app"
	"github.com/MKhiriev/go-auth-form/internal/logger"
	"github.com/MKhiriev/go-auth-form/internal/utils"
	"github.com/MKhiriev/go-auth-form/models"
)

func (h *Handler) setDebug(w http.ResponseWriter, r *http.Request) {
	var req models.DebugToggleRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		logger.FromRequest(r).Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	h.services.DebugService.SetDebug(r.Context(), req.Enabled)
	utils.WriteJSON(w, req, http.StatusOK)
}

func (h *Handler) getDebug(w http.ResponseWriter, r *http.Request) {
	enabled := h.services.DebugService.DebugEnabled(r.Context())
	utils.WriteJSON(w, models.DebugToggleRequest{Enabled: enabled}, http.StatusOK)
}
