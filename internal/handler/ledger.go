package handler

import (
	"encoding/json"
	"math"
	"net/http"

	"github.com/forgo/learnledger/api/internal/ledger"
	"github.com/forgo/learnledger/api/internal/model"
	"github.com/forgo/learnledger/api/internal/service"
)

// stakeBody and voteBody hold the amount undecoded so a wrong type is
// reported as an invalid amount rather than a malformed body.
type stakeBody struct {
	Amount json.RawMessage `json:"amount"`
}

type voteBody struct {
	SectorID string          `json:"sector_id"`
	Amount   json.RawMessage `json:"amount"`
}

// parseAmount reads a JSON number. A missing or null amount reads as zero,
// which the ledger rejects.
func parseAmount(raw json.RawMessage) (float64, bool) {
	if len(raw) == 0 {
		return 0, true
	}
	var v float64
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0, false
	}
	return v, true
}

func writeInvalidAmount(w http.ResponseWriter) {
	WriteError(w, MapServiceError(&ledger.GuardError{Err: ledger.ErrInvalidAmount}))
}

// LedgerHandler handles account, staking and voting HTTP requests
type LedgerHandler struct {
	svc *service.LedgerService
}

// NewLedgerHandler creates a new ledger handler
func NewLedgerHandler(svc *service.LedgerService) *LedgerHandler {
	return &LedgerHandler{svc: svc}
}

// Account handles GET /v1/account
func (h *LedgerHandler) Account(w http.ResponseWriter, r *http.Request) {
	WriteData(w, http.StatusOK, h.svc.Account(), map[string]string{
		"self":   "/v1/account",
		"stake":  "/v1/ledger/stake",
		"votes":  "/v1/ledger/votes",
		"papers": "/v1/papers",
	})
}

// Stake handles POST /v1/ledger/stake
func (h *LedgerHandler) Stake(w http.ResponseWriter, r *http.Request) {
	var body stakeBody
	if err := DecodeJSON(r, &body); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}
	amount, ok := parseAmount(body.Amount)
	if !ok {
		writeInvalidAmount(w)
		return
	}

	result, err := h.svc.Stake(r.Context(), &model.StakeRequest{Amount: amount})
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, result, nil)
}

// Vote handles POST /v1/ledger/votes
func (h *LedgerHandler) Vote(w http.ResponseWriter, r *http.Request) {
	var body voteBody
	if err := DecodeJSON(r, &body); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}
	amount, ok := parseAmount(body.Amount)
	if !ok || amount != math.Trunc(amount) || math.Abs(amount) > math.MaxInt32 {
		writeInvalidAmount(w)
		return
	}

	result, err := h.svc.Vote(r.Context(), &model.CastVoteRequest{SectorID: body.SectorID, Amount: int(amount)})
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, result, nil)
}

// DistributeRewards handles POST /v1/ledger/rewards/distribute
func (h *LedgerHandler) DistributeRewards(w http.ResponseWriter, r *http.Request) {
	WriteData(w, http.StatusOK, h.svc.DistributeRewards(r.Context()), nil)
}

// CheckAccess handles GET /v1/access/{paperId}
func (h *LedgerHandler) CheckAccess(w http.ResponseWriter, r *http.Request) {
	paperID := r.PathValue("paperId")
	if len(paperID) > model.MaxPaperIDLength {
		WriteError(w, model.NewValidationError([]model.FieldError{{Field: "paperId", Message: "too long"}}))
		return
	}
	WriteData(w, http.StatusOK, h.svc.CheckAccess(paperID), nil)
}

// Sectors handles GET /v1/sectors
func (h *LedgerHandler) Sectors(w http.ResponseWriter, r *http.Request) {
	sectors := h.svc.Sectors()
	WriteCollection(w, http.StatusOK, sectors, len(sectors), nil)
}

// Round handles GET /v1/round
func (h *LedgerHandler) Round(w http.ResponseWriter, r *http.Request) {
	WriteData(w, http.StatusOK, h.svc.RoundStatus(), nil)
}
