package service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/forgo/learnledger/api/internal/ledger"
	"github.com/forgo/learnledger/api/internal/metrics"
	"github.com/forgo/learnledger/api/internal/model"
)

// LedgerService serializes access to the account ledger
type LedgerService struct {
	mu     sync.Mutex
	ledger *ledger.Ledger
	round  model.VotingRound
	logger *slog.Logger
}

// LedgerServiceConfig holds configuration for the ledger service
type LedgerServiceConfig struct {
	Ledger *ledger.Ledger
	Round  model.VotingRound
	Logger *slog.Logger
}

// NewLedgerService creates a new ledger service
func NewLedgerService(cfg LedgerServiceConfig) *LedgerService {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &LedgerService{
		ledger: cfg.Ledger,
		round:  cfg.Round,
		logger: logger,
	}
}

// Account returns the account snapshot with its cap usage
func (s *LedgerService) Account() model.AccountSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.Summary()
}

// Stake moves EDU from balance to staked
func (s *LedgerService) Stake(ctx context.Context, req *model.StakeRequest) (*model.StakeResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := s.ledger.Stake(req.Amount)
	if err != nil {
		metrics.RecordRejection("stake", err)
		s.logger.InfoContext(ctx, "stake rejected",
			slog.Float64("amount", req.Amount),
			slog.String("reason", err.Error()),
		)
		return nil, err
	}

	metrics.StakesTotal.Inc()
	metrics.StakedAmount.Add(req.Amount)
	s.logger.InfoContext(ctx, "stake applied",
		slog.Float64("amount", req.Amount),
		slog.Float64("balance", account.Balance),
		slog.Float64("staked", account.Staked),
		slog.Int("reward_points", account.RewardPoints),
	)

	return &model.StakeResult{
		Amount:  req.Amount,
		Bonus:   s.ledger.Rules().StakeBonus,
		Account: account,
	}, nil
}

// Vote spends reward points on a sector
func (s *LedgerService) Vote(ctx context.Context, req *model.CastVoteRequest) (*model.VoteResult, error) {
	if errs := req.Validate(); len(errs) > 0 {
		return nil, model.NewValidationError(errs)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sector, err := s.ledger.Vote(req.SectorID, req.Amount)
	if err != nil {
		metrics.RecordRejection("vote", err)
		s.logger.InfoContext(ctx, "vote rejected",
			slog.String("sector_id", req.SectorID),
			slog.Int("amount", req.Amount),
			slog.String("reason", err.Error()),
		)
		return nil, err
	}

	metrics.VotesTotal.WithLabelValues(sector.ID).Add(float64(req.Amount))
	account := s.ledger.Account()
	s.logger.InfoContext(ctx, "vote cast",
		slog.String("sector_id", sector.ID),
		slog.Int("amount", req.Amount),
		slog.Int("sector_votes", sector.Votes),
		slog.Int("votes_used", account.VotesUsed),
	)
	if s.ledger.CapState() == model.CapStateAt {
		s.logger.InfoContext(ctx, "round cap reached", slog.String("round_id", s.round.ID))
	}

	return &model.VoteResult{Sector: sector, Account: account}, nil
}

// DistributeRewards zeroes reward points and reports the payout
func (s *LedgerService) DistributeRewards(ctx context.Context) *model.RewardDistribution {
	s.mu.Lock()
	defer s.mu.Unlock()

	payout, before := s.ledger.DistributeRewards()
	metrics.RewardsDistributed.Inc()
	s.logger.InfoContext(ctx, "rewards distributed",
		slog.Int("points", before),
		slog.Float64("payout", payout),
	)

	return &model.RewardDistribution{
		Payout:       payout,
		PointsBefore: before,
		Account:      s.ledger.Account(),
	}
}

// CheckAccess reports whether the paper is on the account's allow-list
func (s *LedgerService) CheckAccess(paperID string) model.AccessCheck {
	s.mu.Lock()
	defer s.mu.Unlock()
	return model.AccessCheck{PaperID: paperID, HasAccess: s.ledger.CheckAccess(paperID)}
}

// CanAccess reports whether the staked amount meets requiredStake
func (s *LedgerService) CanAccess(requiredStake float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.CanAccess(requiredStake)
}

// Staked returns the current staked amount
func (s *LedgerService) Staked() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.Account().Staked
}

// Sectors returns all sectors with their vote totals
func (s *LedgerService) Sectors() []model.Sector {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.Sectors()
}

// RoundStatus returns the active voting round and the account's cap usage
func (s *LedgerService) RoundStatus() model.RoundStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	account := s.ledger.Account()
	return model.RoundStatus{
		Round:          s.round,
		Cap:            s.ledger.Rules().RoundCap,
		VotesUsed:      account.VotesUsed,
		VotesRemaining: s.ledger.VotesRemaining(),
		CapState:       s.ledger.CapState(),
	}
}
