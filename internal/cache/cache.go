// Package cache provides the string key-value store that backs reading times
// and user preferences.
//
// The store mirrors browser local storage: values are opaque strings (callers
// JSON-encode structured values), writes overwrite unconditionally and an
// absent key is reported as not found rather than as an error.
//
// # Backends
//
//   - MemoryStore: process memory, the default and the test backend
//   - BadgerStore: embedded Badger v4, on disk or in memory
//   - SurrealStore: a SurrealDB table reached through internal/database
//
// # Usage Example
//
//	store, err := cache.Open(ctx, cache.Config{Backend: cache.BackendBadger, Path: "./data"})
//	if err != nil {
//	    return err
//	}
//	defer store.Close()
//
//	_ = store.Set(ctx, "darkMode", "true")
//	v, ok, err := store.Get(ctx, "darkMode")
package cache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/forgo/learnledger/api/internal/database"
)

// ErrClosed is returned by operations on a closed store
var ErrClosed = errors.New("cache closed")

// Store is a string key-value store with last-writer-wins semantics
type Store interface {
	// Get returns the value for key; ok is false when the key is absent
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Backend names a Store implementation
type Backend string

const (
	BackendMemory  Backend = "memory"
	BackendBadger  Backend = "badger"
	BackendSurreal Backend = "surreal"
)

// Config selects and configures a backend
type Config struct {
	Backend Backend
	// Path is the Badger directory; empty runs Badger in memory
	Path string
	// Database is required for the surreal backend
	Database database.Config
	Logger   *slog.Logger
}

// Open creates the configured store. For the surreal backend the database
// connection is established before returning.
func Open(ctx context.Context, cfg Config) (Store, error) {
	switch cfg.Backend {
	case BackendMemory, "":
		return NewMemoryStore(), nil
	case BackendBadger:
		bcfg := DefaultBadgerConfig()
		bcfg.Path = cfg.Path
		bcfg.InMemory = cfg.Path == ""
		bcfg.Logger = cfg.Logger
		return OpenBadger(bcfg)
	case BackendSurreal:
		db := database.NewSurrealDB(cfg.Database)
		if err := db.Connect(ctx); err != nil {
			return nil, fmt.Errorf("connect cache database: %w", err)
		}
		return NewSurrealStore(db), nil
	}
	return nil, fmt.Errorf("unknown cache backend %q", cfg.Backend)
}
