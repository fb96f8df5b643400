package service

import (
	"errors"
	"fmt"
)

// Centralized service layer errors.
// Ledger guard errors are defined in internal/ledger and pass through unchanged.

// ===== Catalog Errors =====
var (
	ErrPaperNotFound  = errors.New("paper not found")
	ErrInvalidSortKey = errors.New("invalid sort key")
)

// ===== Reading Errors =====
var (
	ErrPaperLocked   = errors.New("paper locked")
	ErrNoOpenSession = errors.New("no open reading session")
)

// ===== Wallet Errors =====
var (
	ErrWalletUnavailable = errors.New("wallet provider unavailable")
	ErrWalletRejected    = errors.New("wallet connection rejected")
	ErrNoWalletAccounts  = errors.New("no wallet accounts")
	ErrWalletNotLinked   = errors.New("wallet not connected")
)

// LockedError reports a paper whose required stake exceeds the staked amount
type LockedError struct {
	PaperID       string
	RequiredStake float64
	Staked        float64
}

func (e *LockedError) Error() string {
	return fmt.Sprintf("%v: %s requires %g staked, have %g", ErrPaperLocked, e.PaperID, e.RequiredStake, e.Staked)
}

func (e *LockedError) Unwrap() error { return ErrPaperLocked }
