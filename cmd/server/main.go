package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/forgo/learnledger/api/internal/cache"
	"github.com/forgo/learnledger/api/internal/config"
	"github.com/forgo/learnledger/api/internal/handler"
	"github.com/forgo/learnledger/api/internal/ledger"
	"github.com/forgo/learnledger/api/internal/middleware"
	"github.com/forgo/learnledger/api/internal/repository"
	"github.com/forgo/learnledger/api/internal/service"
	"github.com/forgo/learnledger/api/pkg/ethrpc"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize structured logging
	logger := newLogger(os.Stdout, cfg.Log)
	slog.SetDefault(logger)

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server error", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("server exited")
}

func newLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.Level}
	if strings.EqualFold(cfg.Format, "text") {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// walletProvider picks the JSON-RPC wallet, a fixed account list, or none
func walletProvider(cfg config.WalletConfig) service.WalletProvider {
	switch {
	case cfg.RPCURL != "":
		return ethrpc.NewClient(ethrpc.Config{URL: cfg.RPCURL, Timeout: cfg.Timeout})
	case len(cfg.Accounts) > 0:
		return ethrpc.Static(cfg.Accounts)
	}
	return nil
}

func loadCatalog(path string) (repository.Catalog, error) {
	if path == "" {
		return repository.DefaultCatalog(), nil
	}
	return repository.LoadCatalog(path)
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	// Initialize key-value store
	store, err := cache.Open(ctx, cfg.CacheStore(logger))
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Warn("failed to close store", slog.String("error", err.Error()))
		}
	}()
	logger.Info("cache opened", slog.String("backend", cfg.Cache.Backend))

	catalog, err := loadCatalog(cfg.Catalog.Path)
	if err != nil {
		return err
	}

	// Initialize repositories
	papers := repository.NewCatalogRepository(catalog)
	times := repository.NewReadingTimeRepository(store, logger)
	prefs := repository.NewPreferenceRepository(store)

	// Initialize services
	ledgerService := service.NewLedgerService(service.LedgerServiceConfig{
		Ledger: ledger.New(cfg.Ledger.Account(), catalog.Sectors, cfg.Ledger.Rules()),
		Round:  papers.Round(),
		Logger: logger,
	})

	catalogService := service.NewCatalogService(service.CatalogServiceConfig{
		Papers:       papers,
		ReadingTimes: times,
		Stake:        ledgerService,
	})

	readingService := service.NewReadingService(service.ReadingServiceConfig{
		Papers:       papers,
		ReadingTimes: times,
		Stake:        ledgerService,
		TickInterval: cfg.Reading.TickInterval,
		Logger:       logger,
	})
	defer readingService.Shutdown(context.Background())

	walletService := service.NewWalletService(service.WalletServiceConfig{
		Provider: walletProvider(cfg.Wallet),
		Timeout:  cfg.Wallet.Timeout,
		Logger:   logger,
	})

	preferenceService := service.NewPreferenceService(prefs, logger)

	// Initialize rate limiter
	rateLimiter := middleware.NewRateLimiter(middleware.RateLimitConfig{
		RPS:   cfg.RateLimit.RPS,
		Burst: cfg.RateLimit.Burst,
	})
	defer rateLimiter.Stop()

	// Initialize idempotency store
	idempotencyStore := middleware.NewIdempotencyStore(middleware.IdempotencyConfig{
		TTL:     24 * time.Hour,
		Cleanup: time.Hour,
	})
	defer idempotencyStore.Stop()

	// Create router and register routes
	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, handler.Services{
		Ledger:      ledgerService,
		Catalog:     catalogService,
		Reading:     readingService,
		Wallet:      walletService,
		Preferences: preferenceService,
	})
	mux.Handle("GET /metrics", promhttp.Handler())

	// Apply global middleware. Idempotency sits inside Compress so it
	// records and replays uncompressed bodies.
	wrapped := middleware.Chain(
		mux,
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Metrics,
		middleware.Recovery,
		middleware.CORS(cfg.Server.AllowedOrigins),
		middleware.RateLimit(rateLimiter),
		middleware.Compress,
		middleware.Idempotency(idempotencyStore),
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      wrapped,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("starting server",
			slog.String("port", cfg.Server.Port),
			slog.String("env", cfg.Server.Env),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// Graceful shutdown
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
