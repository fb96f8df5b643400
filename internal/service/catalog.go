package service

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/forgo/learnledger/api/internal/model"
)

// PaperCatalog defines the interface for the paper catalog
type PaperCatalog interface {
	List() []model.Paper
	Get(id string) (model.Paper, bool)
}

// ReadingTimeRepository defines the interface for persisted reading times
type ReadingTimeRepository interface {
	All(ctx context.Context) (map[string]int, error)
	Get(ctx context.Context, paperID string) (int, error)
	Put(ctx context.Context, paperID string, seconds int) error
	List(ctx context.Context) ([]model.ReadingTime, error)
}

// StakeReader reports the account's staked amount
type StakeReader interface {
	Staked() float64
}

// CatalogService lists papers the way the dashboard shows them
type CatalogService struct {
	papers PaperCatalog
	times  ReadingTimeRepository
	stake  StakeReader
}

// CatalogServiceConfig holds configuration for the catalog service
type CatalogServiceConfig struct {
	Papers       PaperCatalog
	ReadingTimes ReadingTimeRepository
	Stake        StakeReader
}

// NewCatalogService creates a new catalog service
func NewCatalogService(cfg CatalogServiceConfig) *CatalogService {
	return &CatalogService{
		papers: cfg.Papers,
		times:  cfg.ReadingTimes,
		stake:  cfg.Stake,
	}
}

// List returns the filtered and sorted catalog view
func (s *CatalogService) List(ctx context.Context, q *model.ListPapersQuery) ([]model.PaperView, error) {
	if errs := q.Validate(); len(errs) > 0 {
		return nil, model.NewValidationError(errs)
	}

	papers := FilterPapers(s.papers.List(), q.Query)
	if err := SortPapers(papers, q.SortKey()); err != nil {
		return nil, err
	}

	times, err := s.times.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load reading times: %w", err)
	}

	staked := s.stake.Staked()
	views := make([]model.PaperView, 0, len(papers))
	for _, p := range papers {
		views = append(views, newPaperView(p, staked, times[p.ID]))
	}
	return views, nil
}

// Get returns one paper view
func (s *CatalogService) Get(ctx context.Context, paperID string) (*model.PaperView, error) {
	p, ok := s.papers.Get(paperID)
	if !ok {
		return nil, ErrPaperNotFound
	}
	seconds, err := s.times.Get(ctx, paperID)
	if err != nil {
		return nil, fmt.Errorf("failed to load reading time: %w", err)
	}
	view := newPaperView(p, s.stake.Staked(), seconds)
	return &view, nil
}

// ReadingTimes returns every persisted reading total
func (s *CatalogService) ReadingTimes(ctx context.Context) ([]model.ReadingTime, error) {
	return s.times.List(ctx)
}

func newPaperView(p model.Paper, staked float64, seconds int) model.PaperView {
	return model.PaperView{
		Paper:          p,
		Accessible:     staked >= p.RequiredStake,
		ReadingSeconds: seconds,
		ReadingTime:    model.FormatReadingTime(seconds),
	}
}

// FilterPapers keeps papers whose title or description contains query,
// compared under Unicode case folding. An empty query keeps everything.
func FilterPapers(papers []model.Paper, query string) []model.Paper {
	if query == "" {
		return slices.Clone(papers)
	}

	fold := cases.Fold()
	needle := fold.String(query)

	out := make([]model.Paper, 0, len(papers))
	for _, p := range papers {
		if strings.Contains(fold.String(p.Title), needle) ||
			strings.Contains(fold.String(p.Description), needle) {
			out = append(out, p)
		}
	}
	return out
}

// SortPapers orders papers in place. All orders are stable.
//   - title: ascending English collation
//   - stake: descending required stake
//   - newest: catalog order, unchanged
func SortPapers(papers []model.Paper, key model.SortKey) error {
	if !key.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidSortKey, key)
	}
	switch key {
	case model.SortByTitle:
		c := collate.New(language.English)
		slices.SortStableFunc(papers, func(a, b model.Paper) int {
			return c.CompareString(a.Title, b.Title)
		})
	case model.SortByStake:
		slices.SortStableFunc(papers, func(a, b model.Paper) int {
			return cmp.Compare(b.RequiredStake, a.RequiredStake)
		})
	case model.SortByNewest:
		// catalog order
	}
	return nil
}
