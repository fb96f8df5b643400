// Package ledger implements the staking, voting and access arithmetic for a
// single LearnLedger account.
//
// A Ledger is owned by exactly one caller and is not safe for concurrent use.
// Every operation either applies completely or leaves the ledger unchanged.
package ledger

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/forgo/learnledger/api/internal/model"
)

// Default rules
const (
	DefaultStakeBonus = 10
	DefaultPayoutRate = 0.5
	DefaultRoundCap   = 50
)

// Guard errors. Use errors.Is to select them; errors.As with *GuardError
// exposes the remaining allowance.
var (
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInsufficientPoints  = errors.New("insufficient points")
	ErrRoundCapExceeded    = errors.New("round cap exceeded")
	ErrSectorNotFound      = errors.New("sector not found")
)

// GuardError is a rejected operation together with what may still be spent
type GuardError struct {
	Err       error
	Requested float64
	Remaining float64
	Limit     float64
}

func (e *GuardError) Error() string {
	return fmt.Sprintf("%v: requested %g, %g remaining", e.Err, e.Requested, e.Remaining)
}

func (e *GuardError) Unwrap() error { return e.Err }

// Rules are the fixed parameters of the ledger
type Rules struct {
	StakeBonus int     // Reward points granted per stake action, independent of amount
	PayoutRate float64 // Fraction of reward points reported on distribution
	RoundCap   int     // Maximum votes per account per round
}

// DefaultRules returns the standard LearnLedger rules
func DefaultRules() Rules {
	return Rules{
		StakeBonus: DefaultStakeBonus,
		PayoutRate: DefaultPayoutRate,
		RoundCap:   DefaultRoundCap,
	}
}

// Default account
const (
	DefaultAccountID      = "user123"
	DefaultInitialBalance = 900
	DefaultInitialPoints  = 50
)

// DefaultAccount returns the mock account the dashboard starts with
func DefaultAccount() model.Account {
	return model.Account{
		ID:                 DefaultAccountID,
		Balance:            DefaultInitialBalance,
		RewardPoints:       DefaultInitialPoints,
		AccessiblePaperIDs: []string{"paper3"},
	}
}

// Ledger holds the account counters and sector vote totals
type Ledger struct {
	rules   Rules
	account model.Account
	sectors []model.Sector
	index   map[string]int
}

// New creates a ledger for the given account and sectors.
// Sector order is preserved for listing.
func New(account model.Account, sectors []model.Sector, rules Rules) *Ledger {
	l := &Ledger{
		rules:   rules,
		account: account.Clone(),
		sectors: make([]model.Sector, len(sectors)),
		index:   make(map[string]int, len(sectors)),
	}
	copy(l.sectors, sectors)
	for i, s := range l.sectors {
		l.index[s.ID] = i
	}
	return l
}

// Rules returns the ledger rules
func (l *Ledger) Rules() Rules {
	return l.rules
}

// Account returns a copy of the account state
func (l *Ledger) Account() model.Account {
	return l.account.Clone()
}

// Sectors returns a copy of all sectors in their original order
func (l *Ledger) Sectors() []model.Sector {
	return slices.Clone(l.sectors)
}

// Sector returns a sector by id
func (l *Ledger) Sector(id string) (model.Sector, bool) {
	i, ok := l.index[id]
	if !ok {
		return model.Sector{}, false
	}
	return l.sectors[i], true
}

// Stake moves amount from balance to staked and grants the stake bonus
func (l *Ledger) Stake(amount float64) (model.Account, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return l.Account(), &GuardError{Err: ErrInvalidAmount, Requested: amount, Remaining: l.account.Balance}
	}
	if amount > l.account.Balance {
		return l.Account(), &GuardError{Err: ErrInsufficientBalance, Requested: amount, Remaining: l.account.Balance, Limit: l.account.Balance}
	}

	l.account.Balance -= amount
	l.account.Staked += amount
	l.account.RewardPoints += l.rules.StakeBonus
	return l.Account(), nil
}

// CheckAccess reports whether paperID is on the explicit allow-list.
// It is independent of the stake threshold rule in CanAccess.
func (l *Ledger) CheckAccess(paperID string) bool {
	return slices.Contains(l.account.AccessiblePaperIDs, paperID)
}

// CanAccess reports whether the staked amount meets requiredStake
func (l *Ledger) CanAccess(requiredStake float64) bool {
	return l.account.Staked >= requiredStake
}

// DistributeRewards resets reward points and reports the computed payout.
// The payout is not credited to any balance.
func (l *Ledger) DistributeRewards() (payout float64, before int) {
	before = l.account.RewardPoints
	payout = float64(before) * l.rules.PayoutRate
	l.account.RewardPoints = 0
	return payout, before
}

// Vote spends amount reward points on a sector, bounded by the round cap.
// Guards are checked in order: amount, sector, points, cap.
func (l *Ledger) Vote(sectorID string, amount int) (model.Sector, error) {
	remaining := l.VotesRemaining()
	if amount <= 0 {
		return model.Sector{}, &GuardError{Err: ErrInvalidAmount, Requested: float64(amount), Remaining: float64(remaining), Limit: float64(l.rules.RoundCap)}
	}
	i, ok := l.index[sectorID]
	if !ok {
		return model.Sector{}, fmt.Errorf("%w: %s", ErrSectorNotFound, sectorID)
	}
	if amount > l.account.RewardPoints {
		return model.Sector{}, &GuardError{Err: ErrInsufficientPoints, Requested: float64(amount), Remaining: float64(l.account.RewardPoints)}
	}
	if l.account.VotesUsed+amount > l.rules.RoundCap {
		return model.Sector{}, &GuardError{Err: ErrRoundCapExceeded, Requested: float64(amount), Remaining: float64(remaining), Limit: float64(l.rules.RoundCap)}
	}

	l.sectors[i].Votes += amount
	l.account.RewardPoints -= amount
	l.account.VotesUsed += amount
	return l.sectors[i], nil
}

// VotesRemaining is the allowance left before the round cap
func (l *Ledger) VotesRemaining() int {
	if r := l.rules.RoundCap - l.account.VotesUsed; r > 0 {
		return r
	}
	return 0
}

// CapState reports whether the round cap has been reached
func (l *Ledger) CapState() model.CapState {
	if l.account.VotesUsed >= l.rules.RoundCap {
		return model.CapStateAt
	}
	return model.CapStateBelow
}

// Summary returns the account with its cap usage
func (l *Ledger) Summary() model.AccountSummary {
	return model.AccountSummary{
		Account:        l.Account(),
		RoundCap:       l.rules.RoundCap,
		VotesRemaining: l.VotesRemaining(),
		CapState:       l.CapState(),
	}
}
