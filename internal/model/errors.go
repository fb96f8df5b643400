package model

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// ErrorCode represents API error codes
type ErrorCode int

const (
	// Authorization errors (2xxx)
	ErrCodeForbidden   ErrorCode = 2001
	ErrCodePaperLocked ErrorCode = 2002

	// Resource errors (3xxx)
	ErrCodeNotFound ErrorCode = 3001

	// Validation errors (4xxx)
	ErrCodeValidation        ErrorCode = 4001
	ErrCodeInvalidInput      ErrorCode = 4002
	ErrCodeLimitExceeded     ErrorCode = 4003
	ErrCodeInsufficientFunds ErrorCode = 4004
	ErrCodeBodyTooLarge      ErrorCode = 4005

	// Internal errors (5xxx)
	ErrCodeInternal    ErrorCode = 5001
	ErrCodeStorage     ErrorCode = 5002
	ErrCodeExternalAPI ErrorCode = 5003
)

const problemTypeBase = "https://learnledger.forgo.software/errors/"

// ProblemDetails represents RFC 9457 Problem Details for HTTP APIs
type ProblemDetails struct {
	Type     string       `json:"type"`
	Title    string       `json:"title"`
	Status   int          `json:"status"`
	Detail   string       `json:"detail,omitempty"`
	Instance string       `json:"instance,omitempty"`
	Errors   []FieldError `json:"errors,omitempty"`
	// Extension fields
	Code      ErrorCode `json:"code,omitempty"`
	Limit     *float64  `json:"limit,omitempty"`
	Current   *float64  `json:"current,omitempty"`
	Remaining *float64  `json:"remaining,omitempty"`
}

// FieldError represents a validation error on a specific field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error implements the error interface
func (p *ProblemDetails) Error() string {
	return fmt.Sprintf("[%d] %s: %s", p.Status, p.Title, p.Detail)
}

// WriteJSON writes the problem details as JSON response
func (p *ProblemDetails) WriteJSON(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(p.Status)
	_ = json.NewEncoder(w).Encode(p)
}

// Common error constructors

func NewForbiddenError(detail string) *ProblemDetails {
	return &ProblemDetails{
		Type:   problemTypeBase + "forbidden",
		Title:  "Forbidden",
		Status: http.StatusForbidden,
		Detail: detail,
		Code:   ErrCodeForbidden,
	}
}

// NewPaperLockedError reports a paper whose required stake exceeds the staked amount.
func NewPaperLockedError(requiredStake, staked float64) *ProblemDetails {
	missing := requiredStake - staked
	return &ProblemDetails{
		Type:      problemTypeBase + "paper-locked",
		Title:     "Paper Locked",
		Status:    http.StatusForbidden,
		Detail:    fmt.Sprintf("Stake at least %s EDU to access", formatAmount(requiredStake)),
		Code:      ErrCodePaperLocked,
		Limit:     &requiredStake,
		Current:   &staked,
		Remaining: &missing,
	}
}

func NewNotFoundError(resource string) *ProblemDetails {
	return &ProblemDetails{
		Type:   problemTypeBase + "not-found",
		Title:  "Not Found",
		Status: http.StatusNotFound,
		Detail: fmt.Sprintf("%s not found", resource),
		Code:   ErrCodeNotFound,
	}
}

func NewValidationError(errors []FieldError) *ProblemDetails {
	// Build detailed message from field errors
	detail := "One or more fields failed validation"
	if len(errors) > 0 {
		detail = fmt.Sprintf("%s: %s", errors[0].Field, errors[0].Message)
		if len(errors) > 1 {
			detail = fmt.Sprintf("%s (and %d more errors)", detail, len(errors)-1)
		}
	}
	return &ProblemDetails{
		Type:   problemTypeBase + "validation",
		Title:  "Validation Error",
		Status: http.StatusUnprocessableEntity,
		Detail: detail,
		Code:   ErrCodeValidation,
		Errors: errors,
	}
}

// NewInsufficientError reports a spend larger than what is available.
// The remaining extension carries what may still be spent.
func NewInsufficientError(resource string, requested, available float64) *ProblemDetails {
	return &ProblemDetails{
		Type:      problemTypeBase + "insufficient-" + resource,
		Title:     "Insufficient " + resource,
		Status:    http.StatusUnprocessableEntity,
		Detail:    fmt.Sprintf("Requested %s but only %s %s available", formatAmount(requested), formatAmount(available), resource),
		Code:      ErrCodeInsufficientFunds,
		Current:   &requested,
		Remaining: &available,
	}
}

func NewLimitExceededError(resource string, limit, current, remaining float64) *ProblemDetails {
	return &ProblemDetails{
		Type:      problemTypeBase + "limit-exceeded",
		Title:     "Limit Exceeded",
		Status:    http.StatusUnprocessableEntity,
		Detail:    fmt.Sprintf("Maximum of %s %s per round, %s remaining", formatAmount(limit), resource, formatAmount(remaining)),
		Code:      ErrCodeLimitExceeded,
		Limit:     &limit,
		Current:   &current,
		Remaining: &remaining,
	}
}

func NewPayloadTooLargeError(limit int64) *ProblemDetails {
	return &ProblemDetails{
		Type:   problemTypeBase + "payload-too-large",
		Title:  "Payload Too Large",
		Status: http.StatusRequestEntityTooLarge,
		Detail: fmt.Sprintf("Request body exceeds %d bytes", limit),
		Code:   ErrCodeBodyTooLarge,
	}
}

func NewInternalError(detail string) *ProblemDetails {
	if detail == "" {
		detail = "An unexpected error occurred"
	}
	return &ProblemDetails{
		Type:   problemTypeBase + "internal",
		Title:  "Internal Server Error",
		Status: http.StatusInternalServerError,
		Detail: detail,
		Code:   ErrCodeInternal,
	}
}

func NewBadRequestError(detail string) *ProblemDetails {
	return &ProblemDetails{
		Type:   problemTypeBase + "bad-request",
		Title:  "Bad Request",
		Status: http.StatusBadRequest,
		Detail: detail,
		Code:   ErrCodeInvalidInput,
	}
}

// NewUpstreamError reports a failure of an external collaborator such as the wallet provider.
func NewUpstreamError(status int, detail string) *ProblemDetails {
	return &ProblemDetails{
		Type:   problemTypeBase + "upstream",
		Title:  http.StatusText(status),
		Status: status,
		Detail: detail,
		Code:   ErrCodeExternalAPI,
	}
}

func NewRateLimitError(retryAfter int) *ProblemDetails {
	return &ProblemDetails{
		Type:   problemTypeBase + "rate-limited",
		Title:  "Too Many Requests",
		Status: http.StatusTooManyRequests,
		Detail: fmt.Sprintf("Rate limit exceeded. Retry after %d seconds", retryAfter),
	}
}

// formatAmount renders whole amounts without a fractional part.
func formatAmount(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.2f", v)
}
