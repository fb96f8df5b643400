package handler

import (
	"net/http"

	"github.com/forgo/learnledger/api/internal/model"
	"github.com/forgo/learnledger/api/internal/service"
)

// PreferenceHandler handles theme preference HTTP requests
type PreferenceHandler struct {
	svc *service.PreferenceService
}

// NewPreferenceHandler creates a new preference handler
func NewPreferenceHandler(svc *service.PreferenceService) *PreferenceHandler {
	return &PreferenceHandler{svc: svc}
}

// GetTheme handles GET /v1/preferences/theme
func (h *PreferenceHandler) GetTheme(w http.ResponseWriter, r *http.Request) {
	theme, err := h.svc.Theme(r.Context())
	if err != nil {
		WriteError(w, MapServiceErrorWithContext(err, "load theme"))
		return
	}
	WriteData(w, http.StatusOK, theme, nil)
}

// SetTheme handles PUT /v1/preferences/theme
func (h *PreferenceHandler) SetTheme(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateThemeRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	theme, err := h.svc.SetTheme(r.Context(), &req)
	if err != nil {
		WriteError(w, MapServiceErrorWithContext(err, "store theme"))
		return
	}
	WriteData(w, http.StatusOK, theme, nil)
}
