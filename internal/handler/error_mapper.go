package handler

import (
	"errors"
	"net/http"

	"github.com/forgo/learnledger/api/internal/ledger"
	"github.com/forgo/learnledger/api/internal/model"
	"github.com/forgo/learnledger/api/internal/service"
)

// MapServiceError converts a service error to a ProblemDetails response.
// Problem details returned by services pass through unchanged.
func MapServiceError(err error) *model.ProblemDetails {
	if err == nil {
		return nil
	}

	var problem *model.ProblemDetails
	if errors.As(err, &problem) {
		return problem
	}

	// ===== Ledger Guards → 422 =====
	var guard *ledger.GuardError
	if errors.As(err, &guard) {
		return mapGuardError(guard)
	}

	var locked *service.LockedError
	if errors.As(err, &locked) {
		return model.NewPaperLockedError(locked.RequiredStake, locked.Staked)
	}

	switch {
	// ===== Not Found Errors → 404 =====
	case errors.Is(err, ledger.ErrSectorNotFound):
		return model.NewNotFoundError("sector")
	case errors.Is(err, service.ErrPaperNotFound):
		return model.NewNotFoundError("paper")
	case errors.Is(err, service.ErrNoOpenSession):
		return model.NewNotFoundError("reading session")
	case errors.Is(err, service.ErrWalletNotLinked):
		return model.NewNotFoundError("wallet connection")

	// ===== Authorization Errors → 403 =====
	case errors.Is(err, service.ErrPaperLocked):
		return model.NewForbiddenError(err.Error())

	// ===== Validation Errors → 422 =====
	case errors.Is(err, model.ErrInvalidAddress):
		return model.NewValidationError([]model.FieldError{{Field: "address", Message: err.Error()}})
	case errors.Is(err, service.ErrInvalidSortKey):
		return model.NewValidationError([]model.FieldError{{Field: "sort", Message: err.Error()}})

	// ===== Wallet Provider Errors → 502/503 =====
	case errors.Is(err, service.ErrWalletUnavailable):
		return model.NewUpstreamError(http.StatusServiceUnavailable, "please install a wallet")
	case errors.Is(err, service.ErrWalletRejected),
		errors.Is(err, service.ErrNoWalletAccounts):
		return model.NewUpstreamError(http.StatusBadGateway, err.Error())

	// ===== Default → 500 =====
	default:
		return model.NewInternalError("")
	}
}

func mapGuardError(g *ledger.GuardError) *model.ProblemDetails {
	switch {
	case errors.Is(g, ledger.ErrInsufficientBalance):
		return model.NewInsufficientError("balance", g.Requested, g.Remaining)
	case errors.Is(g, ledger.ErrInsufficientPoints):
		return model.NewInsufficientError("points", g.Requested, g.Remaining)
	case errors.Is(g, ledger.ErrRoundCapExceeded):
		return model.NewLimitExceededError("votes", g.Limit, g.Limit-g.Remaining, g.Remaining)
	default:
		return model.NewValidationError([]model.FieldError{{Field: "amount", Message: "invalid amount"}})
	}
}

// MapServiceErrorWithContext converts a service error to a ProblemDetails response
// with additional context about the operation that failed.
func MapServiceErrorWithContext(err error, operation string) *model.ProblemDetails {
	pd := MapServiceError(err)
	if pd != nil && pd.Status == http.StatusInternalServerError {
		pd.Detail = operation + ": an unexpected error occurred"
	}
	return pd
}
