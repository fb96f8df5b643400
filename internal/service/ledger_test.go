package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgo/learnledger/api/internal/ledger"
	"github.com/forgo/learnledger/api/internal/model"
	"github.com/forgo/learnledger/api/internal/repository"
)

func newTestLedgerService(balance float64, points int) *LedgerService {
	cat := repository.DefaultCatalog()
	account := model.Account{
		ID:                 "user123",
		Balance:            balance,
		RewardPoints:       points,
		AccessiblePaperIDs: []string{"paper3"},
	}
	return NewLedgerService(LedgerServiceConfig{
		Ledger: ledger.New(account, cat.Sectors, ledger.DefaultRules()),
		Round:  cat.Round,
	})
}

func TestLedgerService_StakeThenVoteScenario(t *testing.T) {
	ctx := context.Background()
	svc := newTestLedgerService(900, 50)

	staked, err := svc.Stake(ctx, &model.StakeRequest{Amount: 200})
	require.NoError(t, err)
	assert.Equal(t, 10, staked.Bonus)
	assert.Equal(t, 700.0, staked.Account.Balance)
	assert.Equal(t, 200.0, staked.Account.Staked)
	assert.Equal(t, 60, staked.Account.RewardPoints)

	_, err = svc.Vote(ctx, &model.CastVoteRequest{SectorID: "quantum", Amount: 60})
	assert.ErrorIs(t, err, ledger.ErrRoundCapExceeded)

	vote, err := svc.Vote(ctx, &model.CastVoteRequest{SectorID: "quantum", Amount: 50})
	require.NoError(t, err)
	assert.Equal(t, 50, vote.Sector.Votes)
	assert.Equal(t, 10, vote.Account.RewardPoints)

	status := svc.RoundStatus()
	assert.Equal(t, model.CapStateAt, status.CapState)
	assert.Equal(t, 0, status.VotesRemaining)
	assert.Equal(t, "round-1", status.Round.ID)

	_, err = svc.Vote(ctx, &model.CastVoteRequest{SectorID: "ai", Amount: 1})
	assert.ErrorIs(t, err, ledger.ErrRoundCapExceeded)
}

func TestLedgerService_Vote_ValidatesRequest(t *testing.T) {
	svc := newTestLedgerService(900, 50)

	_, err := svc.Vote(context.Background(), &model.CastVoteRequest{Amount: 5})

	var pd *model.ProblemDetails
	require.True(t, errors.As(err, &pd))
	assert.Equal(t, 422, pd.Status)
	assert.Equal(t, 50, svc.Account().RewardPoints, "state unchanged")
}

func TestLedgerService_Vote_UnknownSector(t *testing.T) {
	svc := newTestLedgerService(900, 50)

	_, err := svc.Vote(context.Background(), &model.CastVoteRequest{SectorID: "biology", Amount: 5})

	assert.ErrorIs(t, err, ledger.ErrSectorNotFound)
}

func TestLedgerService_Stake_RejectsAndReportsRemaining(t *testing.T) {
	svc := newTestLedgerService(100, 0)

	_, err := svc.Stake(context.Background(), &model.StakeRequest{Amount: 150})

	var ge *ledger.GuardError
	require.True(t, errors.As(err, &ge))
	assert.ErrorIs(t, err, ledger.ErrInsufficientBalance)
	assert.Equal(t, 100.0, ge.Remaining)
	assert.Equal(t, 100.0, svc.Account().Balance)
}

func TestLedgerService_DistributeRewards(t *testing.T) {
	svc := newTestLedgerService(900, 50)

	got := svc.DistributeRewards(context.Background())

	assert.Equal(t, 25.0, got.Payout)
	assert.Equal(t, 50, got.PointsBefore)
	assert.Equal(t, 0, got.Account.RewardPoints)
	assert.Equal(t, 900.0, got.Account.Balance, "payout is not credited")
}

func TestLedgerService_AccessChecksAreIndependent(t *testing.T) {
	svc := newTestLedgerService(900, 50)

	assert.True(t, svc.CheckAccess("paper3").HasAccess)
	assert.False(t, svc.CheckAccess("paper1").HasAccess)
	assert.False(t, svc.CanAccess(200))

	_, err := svc.Stake(context.Background(), &model.StakeRequest{Amount: 200})
	require.NoError(t, err)

	assert.True(t, svc.CanAccess(200))
	assert.False(t, svc.CheckAccess("paper1").HasAccess, "staking does not grant allow-list access")
}

func TestLedgerService_ConcurrentStakesConserveTotal(t *testing.T) {
	svc := newTestLedgerService(900, 0)

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = svc.Stake(context.Background(), &model.StakeRequest{Amount: 10})
		}()
	}
	wg.Wait()

	acct := svc.Account()
	assert.Equal(t, 900.0, acct.Balance+acct.Staked)
	assert.Equal(t, 900.0, acct.Staked, "ninety stakes succeed")
	assert.Equal(t, 0.0, acct.Balance)
	assert.Equal(t, 900, acct.RewardPoints)
}

func TestLedgerService_Sectors(t *testing.T) {
	svc := newTestLedgerService(900, 50)

	sectors := svc.Sectors()

	require.Len(t, sectors, 4)
	assert.Equal(t, "quantum", sectors[0].ID)

	// Callers cannot mutate ledger state through the returned slice
	sectors[0].Votes = 99
	assert.Equal(t, 0, svc.Sectors()[0].Votes)
}
