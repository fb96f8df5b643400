package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"slices"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/forgo/learnledger/api/internal/cache"
	"github.com/forgo/learnledger/api/internal/database"
	"github.com/forgo/learnledger/api/internal/ledger"
	"github.com/forgo/learnledger/api/internal/model"
)

// Config holds all application configuration
type Config struct {
	Server    ServerConfig
	Log       LogConfig
	Cache     CacheConfig
	Database  DatabaseConfig
	Ledger    LedgerConfig
	Catalog   CatalogConfig
	Reading   ReadingConfig
	Wallet    WalletConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            string        `env:"SERVER_PORT" envDefault:"8080"`
	Env             string        `env:"SERVER_ENV" envDefault:"development"`
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"15s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"30s"`
	AllowedOrigins  []string      `env:"CORS_ALLOWED_ORIGINS" envDefault:"http://localhost:3000" envSeparator:","`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  slog.Level `env:"LOG_LEVEL" envDefault:"info"`
	Format string     `env:"LOG_FORMAT" envDefault:"json"`
}

// CacheConfig selects the key-value store backend
type CacheConfig struct {
	Backend string `env:"CACHE_BACKEND" envDefault:"memory"`
	Path    string `env:"CACHE_PATH"`
}

// DatabaseConfig holds SurrealDB connection settings
type DatabaseConfig struct {
	Host      string `env:"DB_HOST" envDefault:"localhost"`
	Port      string `env:"DB_PORT" envDefault:"8000"`
	Namespace string `env:"DB_NAMESPACE" envDefault:"learnledger"`
	Database  string `env:"DB_DATABASE" envDefault:"main"`
	User      string `env:"DB_USER" envDefault:"root"`
	Password  string `env:"DB_PASSWORD" envDefault:"root"`
}

// LedgerConfig holds the initial account and the ledger rules
type LedgerConfig struct {
	AccountID        string   `env:"LEDGER_ACCOUNT_ID" envDefault:"user123"`
	InitialBalance   float64  `env:"LEDGER_INITIAL_BALANCE" envDefault:"900"`
	InitialStaked    float64  `env:"LEDGER_INITIAL_STAKED" envDefault:"0"`
	InitialPoints    int      `env:"LEDGER_INITIAL_POINTS" envDefault:"50"`
	AccessiblePapers []string `env:"LEDGER_ACCESSIBLE_PAPERS" envDefault:"paper3" envSeparator:","`
	StakeBonus       int      `env:"LEDGER_STAKE_BONUS" envDefault:"10"`
	PayoutRate       float64  `env:"LEDGER_PAYOUT_RATE" envDefault:"0.5"`
	RoundCap         int      `env:"LEDGER_ROUND_CAP" envDefault:"50"`
}

// CatalogConfig points at an optional YAML catalog
type CatalogConfig struct {
	Path string `env:"CATALOG_PATH"`
}

// ReadingConfig holds reading tracker settings
type ReadingConfig struct {
	TickInterval time.Duration `env:"READING_TICK_INTERVAL" envDefault:"1s"`
}

// WalletConfig selects the wallet provider. RPCURL wins over Accounts.
type WalletConfig struct {
	RPCURL   string        `env:"WALLET_RPC_URL"`
	Accounts []string      `env:"WALLET_ACCOUNTS" envSeparator:","`
	Timeout  time.Duration `env:"WALLET_TIMEOUT" envDefault:"30s"`
}

// RateLimitConfig holds per-client rate limit settings
type RateLimitConfig struct {
	RPS   float64 `env:"RATE_LIMIT_RPS" envDefault:"10"`
	Burst int     `env:"RATE_LIMIT_BURST" envDefault:"20"`
}

// Load reads configuration from environment variables with sensible defaults
func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return &cfg, nil
}

// LoadFrom reads configuration from the given variables instead of the process environment
func LoadFrom(environ map[string]string) (*Config, error) {
	cfg, err := env.ParseAsWithOptions[Config](env.Options{Environment: environ})
	if err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return &cfg, nil
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}

// Validate checks that all required configuration values are present and valid.
// It returns an error describing all validation failures, or nil if valid.
func (c *Config) Validate() error {
	var errs []error

	// Server validation
	if c.Server.Port == "" {
		errs = append(errs, errors.New("SERVER_PORT is required"))
	}
	if c.Server.Env != "development" && c.Server.Env != "production" && c.Server.Env != "test" {
		errs = append(errs, fmt.Errorf("SERVER_ENV must be 'development', 'production', or 'test', got '%s'", c.Server.Env))
	}
	if len(c.Server.AllowedOrigins) == 0 {
		errs = append(errs, errors.New("CORS_ALLOWED_ORIGINS must have at least one origin"))
	}
	if c.Log.Format != "json" && c.Log.Format != "text" {
		errs = append(errs, fmt.Errorf("LOG_FORMAT must be 'json' or 'text', got '%s'", c.Log.Format))
	}

	// Cache validation
	backends := []string{string(cache.BackendMemory), string(cache.BackendBadger), string(cache.BackendSurreal)}
	if !slices.Contains(backends, c.Cache.Backend) {
		errs = append(errs, fmt.Errorf("CACHE_BACKEND must be one of %v, got '%s'", backends, c.Cache.Backend))
	}

	// Database validation, only when SurrealDB backs the cache
	if c.Cache.Backend == string(cache.BackendSurreal) {
		if c.Database.Host == "" {
			errs = append(errs, errors.New("DB_HOST is required"))
		}
		if c.Database.Port == "" {
			errs = append(errs, errors.New("DB_PORT is required"))
		}
		if c.Database.Namespace == "" {
			errs = append(errs, errors.New("DB_NAMESPACE is required"))
		}
		if c.Database.Database == "" {
			errs = append(errs, errors.New("DB_DATABASE is required"))
		}
	}

	// Ledger validation
	if c.Ledger.InitialBalance < 0 {
		errs = append(errs, errors.New("LEDGER_INITIAL_BALANCE must not be negative"))
	}
	if c.Ledger.InitialStaked < 0 {
		errs = append(errs, errors.New("LEDGER_INITIAL_STAKED must not be negative"))
	}
	if c.Ledger.InitialPoints < 0 {
		errs = append(errs, errors.New("LEDGER_INITIAL_POINTS must not be negative"))
	}
	if c.Ledger.StakeBonus < 0 {
		errs = append(errs, errors.New("LEDGER_STAKE_BONUS must not be negative"))
	}
	if c.Ledger.PayoutRate < 0 {
		errs = append(errs, errors.New("LEDGER_PAYOUT_RATE must not be negative"))
	}
	if c.Ledger.RoundCap <= 0 {
		errs = append(errs, errors.New("LEDGER_ROUND_CAP must be positive"))
	}

	// Reading validation
	if c.Reading.TickInterval <= 0 {
		errs = append(errs, errors.New("READING_TICK_INTERVAL must be positive"))
	}

	// Wallet validation
	if c.Wallet.RPCURL != "" {
		if u, err := url.Parse(c.Wallet.RPCURL); err != nil || (u.Scheme != "http" && u.Scheme != "https") {
			errs = append(errs, fmt.Errorf("WALLET_RPC_URL must be an http(s) URL, got '%s'", c.Wallet.RPCURL))
		}
	}
	for _, a := range c.Wallet.Accounts {
		if _, err := model.ParseAddress(a); err != nil {
			errs = append(errs, fmt.Errorf("WALLET_ACCOUNTS: %w", err))
		}
	}
	if c.Wallet.Timeout <= 0 {
		errs = append(errs, errors.New("WALLET_TIMEOUT must be positive"))
	}

	// Rate limit validation
	if c.RateLimit.RPS <= 0 {
		errs = append(errs, errors.New("RATE_LIMIT_RPS must be positive"))
	}
	if c.RateLimit.Burst <= 0 {
		errs = append(errs, errors.New("RATE_LIMIT_BURST must be positive"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// Account returns the initial ledger account
func (l LedgerConfig) Account() model.Account {
	return model.Account{
		ID:                 l.AccountID,
		Balance:            l.InitialBalance,
		Staked:             l.InitialStaked,
		RewardPoints:       l.InitialPoints,
		AccessiblePaperIDs: slices.Clone(l.AccessiblePapers),
	}
}

// Rules returns the ledger rules
func (l LedgerConfig) Rules() ledger.Rules {
	return ledger.Rules{
		StakeBonus: l.StakeBonus,
		PayoutRate: l.PayoutRate,
		RoundCap:   l.RoundCap,
	}
}

// CacheStore returns the cache backend configuration
func (c *Config) CacheStore(logger *slog.Logger) cache.Config {
	return cache.Config{
		Backend:  cache.Backend(c.Cache.Backend),
		Path:     c.Cache.Path,
		Database: c.Database.Connection(),
		Logger:   logger,
	}
}

// Connection returns the SurrealDB connection settings
func (d DatabaseConfig) Connection() database.Config {
	return database.Config{
		Host:      d.Host,
		Port:      d.Port,
		User:      d.User,
		Password:  d.Password,
		Namespace: d.Namespace,
		Database:  d.Database,
	}
}
