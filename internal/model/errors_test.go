package model

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// ============================================================================
// Error() Interface Tests
// ============================================================================

func TestProblemDetails_Error_ReturnsFormattedMessage(t *testing.T) {
	t.Parallel()

	pd := &ProblemDetails{
		Status: http.StatusNotFound,
		Title:  "Not Found",
		Detail: "paper not found",
	}

	errMsg := pd.Error()

	for _, want := range []string{"404", "Not Found", "paper not found"} {
		if !strings.Contains(errMsg, want) {
			t.Errorf("error message should contain %q, got: %s", want, errMsg)
		}
	}
}

// ============================================================================
// WriteJSON Tests
// ============================================================================

func TestProblemDetails_WriteJSON(t *testing.T) {
	t.Parallel()

	pd := NewBadRequestError("invalid input")
	rr := httptest.NewRecorder()

	pd.WriteJSON(rr)

	if ct := rr.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("expected Content-Type 'application/problem+json', got %q", ct)
	}
	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, rr.Code)
	}

	var result ProblemDetails
	if err := json.NewDecoder(rr.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	if result.Detail != "invalid input" {
		t.Errorf("expected detail 'invalid input', got %q", result.Detail)
	}
}

func TestProblemDetails_WriteJSON_OmitsEmptyExtensions(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	NewNotFoundError("paper").WriteJSON(rr)

	body := rr.Body.String()
	for _, field := range []string{`"limit"`, `"current"`, `"remaining"`, `"errors"`} {
		if strings.Contains(body, field) {
			t.Errorf("expected %s to be omitted, got %s", field, body)
		}
	}
}

// ============================================================================
// Constructor Tests
// ============================================================================

func TestNewNotFoundError_ReturnsCorrectValues(t *testing.T) {
	t.Parallel()

	pd := NewNotFoundError("paper")

	if pd.Status != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, pd.Status)
	}
	if pd.Detail != "paper not found" {
		t.Errorf("expected detail 'paper not found', got %q", pd.Detail)
	}
	if pd.Code != ErrCodeNotFound {
		t.Errorf("expected code %d, got %d", ErrCodeNotFound, pd.Code)
	}
	if !strings.HasPrefix(pd.Type, problemTypeBase) {
		t.Errorf("expected type under %s, got %q", problemTypeBase, pd.Type)
	}
}

func TestNewPaperLockedError_ReportsMissingStake(t *testing.T) {
	t.Parallel()

	pd := NewPaperLockedError(200, 50)

	if pd.Status != http.StatusForbidden {
		t.Errorf("expected status %d, got %d", http.StatusForbidden, pd.Status)
	}
	if pd.Code != ErrCodePaperLocked {
		t.Errorf("expected code %d, got %d", ErrCodePaperLocked, pd.Code)
	}
	if pd.Detail != "Stake at least 200 EDU to access" {
		t.Errorf("unexpected detail %q", pd.Detail)
	}
	if pd.Remaining == nil || *pd.Remaining != 150 {
		t.Errorf("expected remaining 150, got %v", pd.Remaining)
	}
}

func TestNewValidationError_SingleField(t *testing.T) {
	t.Parallel()

	pd := NewValidationError([]FieldError{{Field: "sector_id", Message: "is required"}})

	if pd.Status != http.StatusUnprocessableEntity {
		t.Errorf("expected status %d, got %d", http.StatusUnprocessableEntity, pd.Status)
	}
	if pd.Detail != "sector_id: is required" {
		t.Errorf("unexpected detail %q", pd.Detail)
	}
}

func TestNewValidationError_MultipleFields_SummarizesCount(t *testing.T) {
	t.Parallel()

	pd := NewValidationError([]FieldError{
		{Field: "q", Message: "too long"},
		{Field: "sort", Message: "unknown"},
		{Field: "amount", Message: "must be positive"},
	})

	if len(pd.Errors) != 3 {
		t.Errorf("expected 3 errors, got %d", len(pd.Errors))
	}
	if !strings.Contains(pd.Detail, "2 more errors") {
		t.Errorf("detail should mention count of additional errors, got %q", pd.Detail)
	}
}

func TestNewValidationError_EmptyErrors_ReturnsDefaultMessage(t *testing.T) {
	t.Parallel()

	pd := NewValidationError(nil)

	if pd.Detail != "One or more fields failed validation" {
		t.Errorf("expected default detail message, got %q", pd.Detail)
	}
}

func TestNewInsufficientError_ReturnsCorrectValues(t *testing.T) {
	t.Parallel()

	pd := NewInsufficientError("balance", 1000, 900)

	if pd.Status != http.StatusUnprocessableEntity {
		t.Errorf("expected status %d, got %d", http.StatusUnprocessableEntity, pd.Status)
	}
	if pd.Code != ErrCodeInsufficientFunds {
		t.Errorf("expected code %d, got %d", ErrCodeInsufficientFunds, pd.Code)
	}
	if pd.Detail != "Requested 1000 but only 900 balance available" {
		t.Errorf("unexpected detail %q", pd.Detail)
	}
	if pd.Remaining == nil || *pd.Remaining != 900 {
		t.Errorf("expected remaining 900, got %v", pd.Remaining)
	}
}

func TestNewLimitExceededError_ReturnsCorrectValues(t *testing.T) {
	t.Parallel()

	pd := NewLimitExceededError("votes", 50, 60, 50)

	if pd.Code != ErrCodeLimitExceeded {
		t.Errorf("expected code %d, got %d", ErrCodeLimitExceeded, pd.Code)
	}
	if pd.Limit == nil || *pd.Limit != 50 {
		t.Errorf("expected limit 50, got %v", pd.Limit)
	}
	if pd.Current == nil || *pd.Current != 60 {
		t.Errorf("expected current 60, got %v", pd.Current)
	}
	if !strings.Contains(pd.Detail, "votes") {
		t.Errorf("detail should contain resource name, got %q", pd.Detail)
	}
}

func TestNewInternalError_EmptyDetail_UsesDefault(t *testing.T) {
	t.Parallel()

	pd := NewInternalError("")

	if pd.Status != http.StatusInternalServerError {
		t.Errorf("expected status %d, got %d", http.StatusInternalServerError, pd.Status)
	}
	if pd.Detail != "An unexpected error occurred" {
		t.Errorf("expected default detail message, got %q", pd.Detail)
	}
}

func TestNewUpstreamError_UsesStatusText(t *testing.T) {
	t.Parallel()

	pd := NewUpstreamError(http.StatusServiceUnavailable, "please install a wallet")

	if pd.Title != "Service Unavailable" {
		t.Errorf("expected title 'Service Unavailable', got %q", pd.Title)
	}
	if pd.Code != ErrCodeExternalAPI {
		t.Errorf("expected code %d, got %d", ErrCodeExternalAPI, pd.Code)
	}
}

func TestNewPayloadTooLargeError_ReportsLimit(t *testing.T) {
	t.Parallel()

	pd := NewPayloadTooLargeError(1024)

	if pd.Status != http.StatusRequestEntityTooLarge {
		t.Errorf("expected status %d, got %d", http.StatusRequestEntityTooLarge, pd.Status)
	}
	if pd.Detail != "Request body exceeds 1024 bytes" {
		t.Errorf("unexpected detail %q", pd.Detail)
	}
}

func TestNewRateLimitError_ReturnsCorrectValues(t *testing.T) {
	t.Parallel()

	pd := NewRateLimitError(60)

	if pd.Status != http.StatusTooManyRequests {
		t.Errorf("expected status %d, got %d", http.StatusTooManyRequests, pd.Status)
	}
	if !strings.Contains(pd.Detail, "60") {
		t.Errorf("detail should contain retry seconds, got %q", pd.Detail)
	}
}

func TestFormatAmount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   float64
		want string
	}{
		{200, "200"},
		{0, "0"},
		{12.5, "12.50"},
	}
	for _, tt := range tests {
		if got := formatAmount(tt.in); got != tt.want {
			t.Errorf("formatAmount(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
