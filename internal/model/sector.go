package model

// Sector is a research category that accumulates community vote weight
type Sector struct {
	ID    string `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Votes int    `json:"votes" yaml:"votes"`
}

// VotingRound is the single active round. It is read-only: there is no rollover.
type VotingRound struct {
	ID            string `json:"id" yaml:"id"`
	Name          string `json:"name" yaml:"name"`
	StartLabel    string `json:"start_label" yaml:"start_label"`
	EndLabel      string `json:"end_label" yaml:"end_label"`
	DaysRemaining int    `json:"days_remaining" yaml:"days_remaining"`
}

// RoundStatus is the active round together with the account's cap usage
type RoundStatus struct {
	Round          VotingRound `json:"round"`
	Cap            int         `json:"cap"`
	VotesUsed      int         `json:"votes_used"`
	VotesRemaining int         `json:"votes_remaining"`
	CapState       CapState    `json:"cap_state"`
}
