package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/forgo/learnledger/api/internal/model"
)

// WalletProvider requests the account addresses a wallet exposes
type WalletProvider interface {
	RequestAccounts(ctx context.Context) ([]string, error)
}

// WalletService connects to the wallet provider and remembers the account
type WalletService struct {
	mu       sync.Mutex
	provider WalletProvider
	timeout  time.Duration
	now      func() time.Time
	logger   *slog.Logger
	conn     *model.WalletConnection
}

// WalletServiceConfig holds configuration for the wallet service
type WalletServiceConfig struct {
	Provider WalletProvider // Nil means no wallet is installed
	Timeout  time.Duration
	Now      func() time.Time
	Logger   *slog.Logger
}

// NewWalletService creates a new wallet service
func NewWalletService(cfg WalletServiceConfig) *WalletService {
	s := &WalletService{
		provider: cfg.Provider,
		timeout:  cfg.Timeout,
		now:      cfg.Now,
		logger:   cfg.Logger,
	}
	if s.timeout <= 0 {
		s.timeout = 30 * time.Second
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// Connect requests accounts from the provider and keeps the first one
func (s *WalletService) Connect(ctx context.Context) (*model.WalletConnection, error) {
	if s.provider == nil {
		return nil, ErrWalletUnavailable
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	accounts, err := s.provider.RequestAccounts(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "wallet connection failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %w", ErrWalletRejected, err)
	}
	if len(accounts) == 0 {
		return nil, ErrNoWalletAccounts
	}

	addr, err := model.ParseAddress(accounts[0])
	if err != nil {
		return nil, err
	}

	connectedAt := s.now()
	conn := &model.WalletConnection{
		Connected:    true,
		Address:      addr,
		ShortAddress: model.ShortAddress(addr),
		ConnectedAt:  &connectedAt,
	}

	s.mu.Lock()
	s.conn = conn
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "wallet connected", slog.String("address", conn.ShortAddress))
	copied := *conn
	return &copied, nil
}

// Current returns the connected wallet or a disconnected placeholder
func (s *WalletService) Current() *model.WalletConnection {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conn == nil {
		return &model.WalletConnection{Connected: false}
	}
	copied := *s.conn
	return &copied
}

// Disconnect forgets the connected wallet
func (s *WalletService) Disconnect(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conn == nil {
		return ErrWalletNotLinked
	}
	s.logger.InfoContext(ctx, "wallet disconnected", slog.String("address", s.conn.ShortAddress))
	s.conn = nil
	return nil
}
