package ledger

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgo/learnledger/api/internal/model"
)

func newTestLedger() *Ledger {
	return New(model.Account{
		ID:                 "user123",
		Balance:            900,
		RewardPoints:       50,
		AccessiblePaperIDs: []string{"paper3"},
	}, []model.Sector{
		{ID: "quantum", Name: "Quantum Computing"},
		{ID: "health", Name: "Healthcare & Medicine"},
	}, DefaultRules())
}

// ============================================================================
// Stake Tests
// ============================================================================

func TestStake_ValidAmounts_ConserveTotalAndGrantBonus(t *testing.T) {
	t.Parallel()

	amounts := []float64{0.01, 1, 12.5, 200, 899.99, 900}
	for _, a := range amounts {
		l := newTestLedger()
		before := l.Account()

		after, err := l.Stake(a)
		require.NoError(t, err, "amount %v", a)

		assert.InDelta(t, before.Balance+before.Staked, after.Balance+after.Staked, 1e-9, "amount %v", a)
		assert.InDelta(t, before.Staked+a, after.Staked, 1e-9, "amount %v", a)
		assert.Equal(t, before.RewardPoints+10, after.RewardPoints, "amount %v", a)
	}
}

func TestStake_InvalidAmounts_LeaveStateUnchanged(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		amount float64
		want   error
	}{
		{"zero", 0, ErrInvalidAmount},
		{"negative", -5, ErrInvalidAmount},
		{"nan", math.NaN(), ErrInvalidAmount},
		{"infinite", math.Inf(1), ErrInvalidAmount},
		{"above balance", 900.01, ErrInsufficientBalance},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newTestLedger()
			before := l.Account()

			_, err := l.Stake(tt.amount)

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, before, l.Account())
		})
	}
}

func TestStake_InsufficientBalance_ReportsRemaining(t *testing.T) {
	t.Parallel()

	l := newTestLedger()
	_, err := l.Stake(1000)

	var guard *GuardError
	require.True(t, errors.As(err, &guard))
	assert.Equal(t, 900.0, guard.Remaining)
	assert.Equal(t, 1000.0, guard.Requested)
}

// ============================================================================
// Access Tests
// ============================================================================

func TestCheckAccess_UsesAllowListOnly(t *testing.T) {
	t.Parallel()

	l := newTestLedger()
	_, err := l.Stake(900)
	require.NoError(t, err)

	assert.True(t, l.CheckAccess("paper3"))
	// Enough stake for paper1, but it is not on the allow-list
	assert.False(t, l.CheckAccess("paper1"))
	assert.False(t, l.CheckAccess("missing"))
	assert.False(t, l.CheckAccess(""))
}

func TestCanAccess_ComparesStakedAmount(t *testing.T) {
	t.Parallel()

	l := newTestLedger()
	assert.True(t, l.CanAccess(0))
	assert.False(t, l.CanAccess(150))

	_, err := l.Stake(150)
	require.NoError(t, err)

	assert.True(t, l.CanAccess(150))
	assert.True(t, l.CanAccess(149.99))
	assert.False(t, l.CanAccess(200))
	// Same answer on repeated calls: no state is touched
	assert.False(t, l.CanAccess(200))
}

// ============================================================================
// Reward Tests
// ============================================================================

func TestDistributeRewards_HalvesAndResets(t *testing.T) {
	t.Parallel()

	for _, points := range []int{0, 1, 50, 61} {
		l := New(model.Account{RewardPoints: points}, nil, DefaultRules())

		payout, before := l.DistributeRewards()

		assert.Equal(t, points, before)
		assert.Equal(t, float64(points)*0.5, payout)
		assert.Equal(t, 0, l.Account().RewardPoints)
		assert.Equal(t, 0.0, l.Account().Balance, "payout must not be credited")
	}
}

// ============================================================================
// Vote Tests
// ============================================================================

func TestVote_AppliesDeltas(t *testing.T) {
	t.Parallel()

	l := newTestLedger()

	sector, err := l.Vote("health", 20)
	require.NoError(t, err)

	assert.Equal(t, 20, sector.Votes)
	acct := l.Account()
	assert.Equal(t, 30, acct.RewardPoints)
	assert.Equal(t, 20, acct.VotesUsed)
	other, _ := l.Sector("quantum")
	assert.Equal(t, 0, other.Votes)
}

func TestVote_Guards(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		sectorID string
		amount   int
		want     error
	}{
		{"zero amount", "health", 0, ErrInvalidAmount},
		{"negative amount", "health", -1, ErrInvalidAmount},
		{"unknown sector", "astronomy", 5, ErrSectorNotFound},
		{"more than points", "health", 51, ErrInsufficientPoints},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newTestLedger()
			before := l.Account()
			sectorsBefore := l.Sectors()

			_, err := l.Vote(tt.sectorID, tt.amount)

			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, before, l.Account())
			assert.Equal(t, sectorsBefore, l.Sectors())
		})
	}
}

func TestVote_CapCannotBeExceeded(t *testing.T) {
	t.Parallel()

	l := New(model.Account{RewardPoints: 500}, []model.Sector{{ID: "ai"}}, DefaultRules())

	for i := 0; i < 7; i++ {
		_, err := l.Vote("ai", 7)
		require.NoError(t, err)
	}
	assert.Equal(t, 49, l.Account().VotesUsed)
	assert.Equal(t, model.CapStateBelow, l.CapState())

	_, err := l.Vote("ai", 2)
	var guard *GuardError
	require.ErrorAs(t, err, &guard)
	assert.ErrorIs(t, err, ErrRoundCapExceeded)
	assert.Equal(t, 1.0, guard.Remaining)

	_, err = l.Vote("ai", 1)
	require.NoError(t, err)
	assert.Equal(t, model.CapStateAt, l.CapState())
	assert.Equal(t, 0, l.VotesRemaining())
}

func TestScenario_StakeThenVoteToCap(t *testing.T) {
	t.Parallel()

	l := New(model.Account{Balance: 900, RewardPoints: 50}, []model.Sector{{ID: "quantum"}}, DefaultRules())

	acct, err := l.Stake(200)
	require.NoError(t, err)
	assert.Equal(t, 700.0, acct.Balance)
	assert.Equal(t, 200.0, acct.Staked)
	assert.Equal(t, 60, acct.RewardPoints)

	_, err = l.Vote("quantum", 60)
	assert.ErrorIs(t, err, ErrRoundCapExceeded)
	assert.Equal(t, 60, l.Account().RewardPoints)

	sector, err := l.Vote("quantum", 50)
	require.NoError(t, err)
	assert.Equal(t, 50, sector.Votes)
	assert.Equal(t, 50, l.Account().VotesUsed)
	assert.Equal(t, 10, l.Account().RewardPoints)

	for _, amount := range []int{1, 5, 10} {
		_, err = l.Vote("quantum", amount)
		assert.ErrorIs(t, err, ErrRoundCapExceeded, "amount %d", amount)
	}
	assert.Equal(t, model.CapStateAt, l.CapState())
}

func TestNew_CopiesInputs(t *testing.T) {
	t.Parallel()

	ids := []string{"paper3"}
	sectors := []model.Sector{{ID: "ai"}}
	l := New(model.Account{AccessiblePaperIDs: ids, RewardPoints: 10}, sectors, DefaultRules())

	ids[0] = "paper1"
	sectors[0].Votes = 99

	assert.True(t, l.CheckAccess("paper3"))
	s, _ := l.Sector("ai")
	assert.Equal(t, 0, s.Votes)
}

func TestDefaultAccount(t *testing.T) {
	a := DefaultAccount()

	assert.Equal(t, DefaultAccountID, a.ID)
	assert.Equal(t, 900.0, a.Balance)
	assert.Zero(t, a.Staked)
	assert.Equal(t, 50, a.RewardPoints)
	assert.Equal(t, []string{"paper3"}, a.AccessiblePaperIDs)

	a.AccessiblePaperIDs[0] = "changed"
	assert.Equal(t, []string{"paper3"}, DefaultAccount().AccessiblePaperIDs)
}
