package service

import (
	"context"
	"log/slog"

	"github.com/forgo/learnledger/api/internal/model"
)

// PreferenceRepository defines the interface for preference storage
type PreferenceRepository interface {
	DarkMode(ctx context.Context) (bool, error)
	SetDarkMode(ctx context.Context, dark bool) error
}

// PreferenceService handles user interface preferences
type PreferenceService struct {
	repo   PreferenceRepository
	logger *slog.Logger
}

// NewPreferenceService creates a new preference service
func NewPreferenceService(repo PreferenceRepository, logger *slog.Logger) *PreferenceService {
	if logger == nil {
		logger = slog.Default()
	}
	return &PreferenceService{repo: repo, logger: logger}
}

// Theme returns the stored theme flag
func (s *PreferenceService) Theme(ctx context.Context) (*model.ThemePreference, error) {
	dark, err := s.repo.DarkMode(ctx)
	if err != nil {
		return nil, err
	}
	return &model.ThemePreference{DarkMode: dark}, nil
}

// SetTheme stores the theme flag
func (s *PreferenceService) SetTheme(ctx context.Context, req *model.UpdateThemeRequest) (*model.ThemePreference, error) {
	if errs := req.Validate(); len(errs) > 0 {
		return nil, model.NewValidationError(errs)
	}
	if err := s.repo.SetDarkMode(ctx, *req.DarkMode); err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "theme updated", slog.Bool("dark_mode", *req.DarkMode))
	return &model.ThemePreference{DarkMode: *req.DarkMode}, nil
}
