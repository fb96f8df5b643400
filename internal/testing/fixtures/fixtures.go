package fixtures

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/forgo/learnledger/api/internal/cache"
	"github.com/forgo/learnledger/api/internal/handler"
	"github.com/forgo/learnledger/api/internal/ledger"
	"github.com/forgo/learnledger/api/internal/middleware"
	"github.com/forgo/learnledger/api/internal/model"
	"github.com/forgo/learnledger/api/internal/repository"
	"github.com/forgo/learnledger/api/internal/service"
)

// ============================================================================
// App
// ============================================================================

// AppOpts customizes the wired application
type AppOpts struct {
	Account        model.Account
	Rules          ledger.Rules
	Catalog        repository.Catalog
	Store          cache.Store
	WalletProvider service.WalletProvider
	Now            func() time.Time
}

// WithAccount replaces the default account
func WithAccount(a model.Account) func(*AppOpts) {
	return func(o *AppOpts) { o.Account = a }
}

// WithRules replaces the default ledger rules
func WithRules(r ledger.Rules) func(*AppOpts) {
	return func(o *AppOpts) { o.Rules = r }
}

// WithCatalog replaces the default catalog
func WithCatalog(c repository.Catalog) func(*AppOpts) {
	return func(o *AppOpts) { o.Catalog = c }
}

// WithStore uses s instead of a fresh memory store
func WithStore(s cache.Store) func(*AppOpts) {
	return func(o *AppOpts) { o.Store = s }
}

// WithWallet installs a wallet provider
func WithWallet(p service.WalletProvider) func(*AppOpts) {
	return func(o *AppOpts) { o.WalletProvider = p }
}

// WithClock fixes the time source of the reading and wallet services
func WithClock(now func() time.Time) func(*AppOpts) {
	return func(o *AppOpts) { o.Now = now }
}

// App is a fully wired in-memory LearnLedger API
type App struct {
	Store       cache.Store
	Ledger      *service.LedgerService
	Catalog     *service.CatalogService
	Reading     *service.ReadingService
	Wallet      *service.WalletService
	Preferences *service.PreferenceService
	Timers      *ManualTimers
	Handler     http.Handler
}

// NewApp wires every service over a memory cache. Reading ticks are driven
// by Timers.Tick instead of the clock.
func NewApp(t *testing.T, opts ...func(*AppOpts)) *App {
	t.Helper()

	o := &AppOpts{
		Account: ledger.DefaultAccount(),
		Rules:   ledger.DefaultRules(),
		Catalog: repository.DefaultCatalog(),
		Now:     time.Now,
	}
	for _, fn := range opts {
		fn(o)
	}
	if o.Store == nil {
		o.Store = cache.NewMemoryStore()
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	papers := repository.NewCatalogRepository(o.Catalog)
	times := repository.NewReadingTimeRepository(o.Store, logger)
	prefs := repository.NewPreferenceRepository(o.Store)

	ledgerSvc := service.NewLedgerService(service.LedgerServiceConfig{
		Ledger: ledger.New(o.Account, o.Catalog.Sectors, o.Rules),
		Round:  papers.Round(),
		Logger: logger,
	})
	timers := &ManualTimers{}

	app := &App{
		Store:  o.Store,
		Ledger: ledgerSvc,
		Catalog: service.NewCatalogService(service.CatalogServiceConfig{
			Papers:       papers,
			ReadingTimes: times,
			Stake:        ledgerSvc,
		}),
		Reading: service.NewReadingService(service.ReadingServiceConfig{
			Papers:       papers,
			ReadingTimes: times,
			Stake:        ledgerSvc,
			TimerFactory: timers.Factory,
			Now:          o.Now,
			Logger:       logger,
		}),
		Wallet: service.NewWalletService(service.WalletServiceConfig{
			Provider: o.WalletProvider,
			Now:      o.Now,
			Logger:   logger,
		}),
		Preferences: service.NewPreferenceService(prefs, logger),
		Timers:      timers,
	}

	idempotency := middleware.NewIdempotencyStore(middleware.IdempotencyConfig{})
	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, handler.Services{
		Ledger:      app.Ledger,
		Catalog:     app.Catalog,
		Reading:     app.Reading,
		Wallet:      app.Wallet,
		Preferences: app.Preferences,
	})
	app.Handler = middleware.Chain(mux,
		middleware.RequestID,
		middleware.Recovery,
		middleware.Compress,
		middleware.Idempotency(idempotency),
	)

	t.Cleanup(func() {
		app.Reading.Shutdown(context.Background())
		idempotency.Stop()
		_ = o.Store.Close()
	})
	return app
}

// Do serves req and returns the recorded response
func (a *App) Do(req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	a.Handler.ServeHTTP(rr, req)
	return rr
}

// ============================================================================
// Manual Timers
// ============================================================================

// ManualTimers is a service.TimerFactory whose timers only fire on Tick
type ManualTimers struct {
	mu     sync.Mutex
	timers []*manualTimer
}

type manualTimer struct {
	owner   *ManualTimers
	fn      func(ctx context.Context)
	running bool
}

func (t *manualTimer) Start() {
	t.owner.mu.Lock()
	t.running = true
	t.owner.mu.Unlock()
}

func (t *manualTimer) Stop() {
	t.owner.mu.Lock()
	t.running = false
	t.owner.mu.Unlock()
}

// Factory creates a stopped timer registered with m
func (m *ManualTimers) Factory(_ time.Duration, fn func(ctx context.Context)) service.Timer {
	m.mu.Lock()
	defer m.mu.Unlock()

	t := &manualTimer{owner: m, fn: fn}
	m.timers = append(m.timers, t)
	return t
}

// Tick fires every running timer n times
func (m *ManualTimers) Tick(ctx context.Context, n int) {
	for i := 0; i < n; i++ {
		m.mu.Lock()
		var running []*manualTimer
		for _, t := range m.timers {
			if t.running {
				running = append(running, t)
			}
		}
		m.mu.Unlock()

		for _, t := range running {
			t.fn(ctx)
		}
	}
}

// Running counts the timers currently started
func (m *ManualTimers) Running() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for _, t := range m.timers {
		if t.running {
			n++
		}
	}
	return n
}
