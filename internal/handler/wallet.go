package handler

import (
	"net/http"

	"github.com/forgo/learnledger/api/internal/service"
)

// WalletHandler handles wallet connection HTTP requests
type WalletHandler struct {
	svc *service.WalletService
}

// NewWalletHandler creates a new wallet handler
func NewWalletHandler(svc *service.WalletService) *WalletHandler {
	return &WalletHandler{svc: svc}
}

// Connect handles POST /v1/wallet/connect
func (h *WalletHandler) Connect(w http.ResponseWriter, r *http.Request) {
	conn, err := h.svc.Connect(r.Context())
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteData(w, http.StatusOK, conn, nil)
}

// Get handles GET /v1/wallet
func (h *WalletHandler) Get(w http.ResponseWriter, r *http.Request) {
	WriteData(w, http.StatusOK, h.svc.Current(), nil)
}

// Disconnect handles DELETE /v1/wallet
func (h *WalletHandler) Disconnect(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Disconnect(r.Context()); err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteNoContent(w)
}
