// Package model defines domain entities and data structures for the LearnLedger API.
//
// The model package contains the struct definitions shared by every layer: the
// mock account, the paper catalog, research sectors, the active voting round,
// reading sessions, wallet connections and user preferences, together with the
// request types accepted by the HTTP API and RFC 9457 error definitions.
//
// # Domain Entities
//
//   - Account: token balance, staked amount, reward points and votes used
//   - Paper: immutable catalog entry gated by a required stake
//   - Sector: research category that accumulates vote weight
//   - VotingRound: the single active round bounding the vote cap
//   - ReadingSession: elapsed seconds for the open paper viewer
//   - WalletConnection: the first address returned by the wallet provider
//
// # Validation
//
// Request types expose Validate() returning field errors. Struct tags are
// checked with go-playground/validator:
//
//	type CastVoteRequest struct {
//	    SectorID string `json:"sector_id" validate:"required,max=64"`
//	    Amount   int    `json:"amount"`
//	}
//
// Amounts are not tagged: the ledger owns those guards.
//
// # Error Types
//
// RFC 9457 Problem Details errors are defined in errors.go.
package model
