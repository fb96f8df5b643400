package model

import (
	"testing"
)

// ============================================================================
// CastVoteRequest Tests
// ============================================================================

func TestCastVoteRequest_Validate_Valid(t *testing.T) {
	t.Parallel()

	req := &CastVoteRequest{SectorID: "quantum", Amount: 5}

	if errors := req.Validate(); len(errors) > 0 {
		t.Errorf("expected no errors, got %v", errors)
	}
}

func TestCastVoteRequest_Validate_MissingSector(t *testing.T) {
	t.Parallel()

	req := &CastVoteRequest{Amount: 5}

	errors := req.Validate()
	if len(errors) != 1 || errors[0].Field != "sector_id" || errors[0].Message != "is required" {
		t.Errorf("expected sector_id required error, got %v", errors)
	}
}

func TestCastVoteRequest_Validate_AmountLeftToLedger(t *testing.T) {
	t.Parallel()

	req := &CastVoteRequest{SectorID: "quantum", Amount: -3}

	if errors := req.Validate(); len(errors) > 0 {
		t.Errorf("amount is checked by the ledger, got %v", errors)
	}
}

func TestCastVoteRequest_Validate_SectorTooLong(t *testing.T) {
	t.Parallel()

	long := make([]byte, 65)
	for i := range long {
		long[i] = 'a'
	}
	req := &CastVoteRequest{SectorID: string(long), Amount: 1}

	errors := req.Validate()
	if len(errors) != 1 || errors[0].Message != "must be at most 64 characters" {
		t.Errorf("expected max length error, got %v", errors)
	}
}

// ============================================================================
// ListPapersQuery Tests
// ============================================================================

func TestListPapersQuery_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		query   ListPapersQuery
		wantErr bool
	}{
		{"empty", ListPapersQuery{}, false},
		{"title", ListPapersQuery{Sort: "title"}, false},
		{"stake", ListPapersQuery{Sort: "stake"}, false},
		{"newest", ListPapersQuery{Sort: "newest"}, false},
		{"unknown sort", ListPapersQuery{Sort: "popular"}, true},
		{"case sensitive sort", ListPapersQuery{Sort: "Title"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errors := tt.query.Validate()
			if (len(errors) > 0) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", errors, tt.wantErr)
			}
		})
	}
}

func TestListPapersQuery_SortKey_DefaultsToTitle(t *testing.T) {
	t.Parallel()

	q := &ListPapersQuery{}
	if q.SortKey() != SortByTitle {
		t.Errorf("expected %q, got %q", SortByTitle, q.SortKey())
	}

	q.Sort = "stake"
	if q.SortKey() != SortByStake {
		t.Errorf("expected %q, got %q", SortByStake, q.SortKey())
	}
}

func TestSortKey_IsValid(t *testing.T) {
	t.Parallel()

	for _, k := range []SortKey{SortByTitle, SortByStake, SortByNewest} {
		if !k.IsValid() {
			t.Errorf("expected %q to be valid", k)
		}
	}
	if SortKey("random").IsValid() {
		t.Error("expected unknown key to be invalid")
	}
}

// ============================================================================
// UpdateThemeRequest Tests
// ============================================================================

func TestUpdateThemeRequest_Validate(t *testing.T) {
	t.Parallel()

	if errors := (&UpdateThemeRequest{}).Validate(); len(errors) != 1 || errors[0].Field != "dark_mode" {
		t.Errorf("expected dark_mode required error, got %v", errors)
	}

	dark := false
	if errors := (&UpdateThemeRequest{DarkMode: &dark}).Validate(); len(errors) > 0 {
		t.Errorf("expected no errors, got %v", errors)
	}
}
