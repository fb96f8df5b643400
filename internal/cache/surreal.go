package cache

import (
	"context"
	"errors"
	"fmt"

	"github.com/forgo/learnledger/api/internal/database"
)

// surrealTable holds one record per cache key, the key being the record id
const surrealTable = "cache"

// SurrealStore keeps values in a SurrealDB table
type SurrealStore struct {
	db database.Database
}

// NewSurrealStore creates a store over a connected database
func NewSurrealStore(db database.Database) *SurrealStore {
	return &SurrealStore{db: db}
}

func (s *SurrealStore) Get(ctx context.Context, key string) (string, bool, error) {
	results, err := s.db.Query(ctx, `SELECT value FROM type::record($tb, $key)`, s.vars(key, nil))
	if err != nil {
		return "", false, fmt.Errorf("surreal get %s: %w", key, err)
	}

	row, err := database.FirstRow(results)
	if errors.Is(err, database.ErrNotFound) {
		return "", false, nil
	}
	// A record without a string value is treated as absent
	value, ok := row["value"].(string)
	if !ok {
		return "", false, nil
	}
	return value, true, nil
}

func (s *SurrealStore) Set(ctx context.Context, key, value string) error {
	query := `UPSERT type::record($tb, $key) SET value = $value, updated_on = time::now()`
	if err := database.Exec(ctx, s.db, query, s.vars(key, &value)); err != nil {
		return fmt.Errorf("surreal set %s: %w", key, err)
	}
	return nil
}

func (s *SurrealStore) Delete(ctx context.Context, key string) error {
	if err := database.Exec(ctx, s.db, `DELETE type::record($tb, $key)`, s.vars(key, nil)); err != nil {
		return fmt.Errorf("surreal delete %s: %w", key, err)
	}
	return nil
}

func (s *SurrealStore) vars(key string, value *string) map[string]interface{} {
	vars := map[string]interface{}{"tb": surrealTable, "key": key}
	if value != nil {
		vars["value"] = *value
	}
	return vars
}

func (s *SurrealStore) Close() error {
	return s.db.Close()
}
