// Package repository implements the data access layer for the LearnLedger API.
//
// The catalog (papers, sectors and the active voting round) is read-only and
// held in memory, seeded from built-in defaults or a YAML file. Reading times
// and the theme flag are persisted through a cache.Store.
//
// # Repository Pattern
//
//   - Constructor function (NewXxxRepository) accepts its backing store
//   - Methods implement specific data operations (Get, Put, List, etc.)
//   - Cache values are JSON or plain strings under fixed keys
//
// # Cache Keys
//
//   - paperReadingTimes: JSON object of paper id to elapsed seconds
//   - darkMode: "true" or "false"
//
// # Example Usage
//
//	times := repository.NewReadingTimeRepository(store, logger)
//	if err := times.Put(ctx, "paper3", 42); err != nil {
//	    return err
//	}
//	seconds, err := times.Get(ctx, "paper3")
package repository
