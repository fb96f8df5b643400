package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"

	"github.com/forgo/learnledger/api/internal/cache"
	"github.com/forgo/learnledger/api/internal/model"
)

// ReadingTimeRepository persists elapsed reading seconds per paper under a
// single JSON-encoded cache key
type ReadingTimeRepository struct {
	store  cache.Store
	logger *slog.Logger
}

// NewReadingTimeRepository creates a new reading time repository
func NewReadingTimeRepository(store cache.Store, logger *slog.Logger) *ReadingTimeRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReadingTimeRepository{store: store, logger: logger}
}

// All returns the persisted totals. An absent or malformed value reads as empty.
func (r *ReadingTimeRepository) All(ctx context.Context) (map[string]int, error) {
	raw, ok, err := r.store.Get(ctx, model.ReadingTimesKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load reading times: %w", err)
	}
	times := make(map[string]int)
	if !ok || raw == "" {
		return times, nil
	}
	if err := json.Unmarshal([]byte(raw), &times); err != nil {
		r.logger.Warn("discarding malformed reading times",
			slog.String("key", model.ReadingTimesKey),
			slog.String("error", err.Error()),
		)
		return make(map[string]int), nil
	}
	return times, nil
}

// Get returns the persisted seconds for a paper, 0 when none
func (r *ReadingTimeRepository) Get(ctx context.Context, paperID string) (int, error) {
	times, err := r.All(ctx)
	if err != nil {
		return 0, err
	}
	return times[paperID], nil
}

// Put overwrites the total for one paper, keeping the others.
// The read-modify-write is not atomic; the last writer wins.
func (r *ReadingTimeRepository) Put(ctx context.Context, paperID string, seconds int) error {
	times, err := r.All(ctx)
	if err != nil {
		return err
	}
	times[paperID] = seconds

	data, err := json.Marshal(times)
	if err != nil {
		return fmt.Errorf("failed to encode reading times: %w", err)
	}
	if err := r.store.Set(ctx, model.ReadingTimesKey, string(data)); err != nil {
		return fmt.Errorf("failed to save reading times: %w", err)
	}
	return nil
}

// List returns every persisted total, sorted by paper id
func (r *ReadingTimeRepository) List(ctx context.Context) ([]model.ReadingTime, error) {
	times, err := r.All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.ReadingTime, 0, len(times))
	for id, s := range times {
		out = append(out, model.ReadingTime{
			PaperID:     id,
			Seconds:     s,
			ReadingTime: model.FormatReadingTime(s),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PaperID < out[j].PaperID })
	return out, nil
}
