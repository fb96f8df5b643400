// Package config manages application configuration for the LearnLedger API.
//
// Configuration is read from environment variables with caarlos0/env struct
// tags. Every field has a development default, so an empty environment yields
// a runnable server with a memory cache:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    return err
//	}
//	if err := cfg.Validate(); err != nil {
//	    return err
//	}
//
// # Configuration Groups
//
//   - ServerConfig: port, timeouts, CORS origins
//   - LogConfig: LOG_LEVEL (debug|info|warn|error), LOG_FORMAT (json|text)
//   - CacheConfig: CACHE_BACKEND (memory|badger|surreal), CACHE_PATH
//   - DatabaseConfig: SurrealDB DB_* settings, checked only for the surreal backend
//   - LedgerConfig: initial account (LEDGER_INITIAL_*) and rules
//   - CatalogConfig: CATALOG_PATH YAML file
//   - ReadingConfig: READING_TICK_INTERVAL
//   - WalletConfig: WALLET_RPC_URL or WALLET_ACCOUNTS, WALLET_TIMEOUT
//   - RateLimitConfig: RATE_LIMIT_RPS, RATE_LIMIT_BURST
//
// Validate reports every problem at once, joined with errors.Join.
package config
