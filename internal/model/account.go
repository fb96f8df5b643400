package model

// CapState describes where an account stands against the per-round vote cap
type CapState string

const (
	CapStateBelow CapState = "below_cap" // Votes may still be cast this round
	CapStateAt    CapState = "at_cap"    // Terminal for the round
)

// Account is the mock user whose balances drive staking and voting
type Account struct {
	ID                 string   `json:"id" yaml:"id"`
	Balance            float64  `json:"balance" yaml:"balance"`           // EDU available to stake
	Staked             float64  `json:"staked" yaml:"staked"`             // EDU staked, gates paper access
	RewardPoints       int      `json:"reward_points" yaml:"reward_points"` // VED, spent on sector votes
	VotesUsed          int      `json:"votes_used" yaml:"votes_used"`
	AccessiblePaperIDs []string `json:"accessible_paper_ids" yaml:"accessible_paper_ids"`
}

// Clone returns a copy that shares no slices with the receiver
func (a Account) Clone() Account {
	ids := make([]string, len(a.AccessiblePaperIDs))
	copy(ids, a.AccessiblePaperIDs)
	a.AccessiblePaperIDs = ids
	return a
}

// AccountSummary is the account snapshot returned by the API
type AccountSummary struct {
	Account
	RoundCap       int      `json:"round_cap"`
	VotesRemaining int      `json:"votes_remaining"`
	CapState       CapState `json:"cap_state"`
}

// StakeRequest represents a request to stake EDU.
// Amount guards are enforced by the ledger so every caller gets the same error.
type StakeRequest struct {
	Amount float64 `json:"amount"`
}

// StakeResult reports a successful stake
type StakeResult struct {
	Amount  float64 `json:"amount"`
	Bonus   int     `json:"bonus"`
	Account Account `json:"account"`
}

// CastVoteRequest represents a request to spend reward points on a sector
type CastVoteRequest struct {
	SectorID string `json:"sector_id" validate:"required,max=64"`
	Amount   int    `json:"amount"`
}

// Validate validates the vote request
func (r *CastVoteRequest) Validate() []FieldError {
	return validateStruct(r)
}

// VoteResult reports a successful vote
type VoteResult struct {
	Sector  Sector  `json:"sector"`
	Account Account `json:"account"`
}

// RewardDistribution reports the payout computed when reward points are reset
type RewardDistribution struct {
	Payout       float64 `json:"payout"`
	PointsBefore int     `json:"points_before"`
	Account      Account `json:"account"`
}

// AccessCheck reports whether a paper id is on the account's explicit allow-list
type AccessCheck struct {
	PaperID   string `json:"paper_id"`
	HasAccess bool   `json:"has_access"`
}
