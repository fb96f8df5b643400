package repository

import (
	"context"
	"fmt"
	"strconv"

	"github.com/forgo/learnledger/api/internal/cache"
	"github.com/forgo/learnledger/api/internal/model"
)

// PreferenceRepository persists user interface preferences
type PreferenceRepository struct {
	store cache.Store
}

// NewPreferenceRepository creates a new preference repository
func NewPreferenceRepository(store cache.Store) *PreferenceRepository {
	return &PreferenceRepository{store: store}
}

// DarkMode returns the theme flag. Anything other than "true" reads as false.
func (r *PreferenceRepository) DarkMode(ctx context.Context) (bool, error) {
	raw, ok, err := r.store.Get(ctx, model.ThemeKey)
	if err != nil {
		return false, fmt.Errorf("failed to load theme: %w", err)
	}
	return ok && raw == "true", nil
}

// SetDarkMode stores the theme flag as "true" or "false"
func (r *PreferenceRepository) SetDarkMode(ctx context.Context, dark bool) error {
	if err := r.store.Set(ctx, model.ThemeKey, strconv.FormatBool(dark)); err != nil {
		return fmt.Errorf("failed to save theme: %w", err)
	}
	return nil
}
