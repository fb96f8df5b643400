package service

import (
	"context"
	"sync"

	"github.com/forgo/learnledger/api/internal/model"
	"github.com/forgo/learnledger/api/internal/repository"
)

// ============================================================================
// Mock Repositories
// ============================================================================

type mockReadingTimeRepo struct {
	allFunc  func(ctx context.Context) (map[string]int, error)
	getFunc  func(ctx context.Context, paperID string) (int, error)
	putFunc  func(ctx context.Context, paperID string, seconds int) error
	listFunc func(ctx context.Context) ([]model.ReadingTime, error)
}

func (m *mockReadingTimeRepo) All(ctx context.Context) (map[string]int, error) {
	if m.allFunc != nil {
		return m.allFunc(ctx)
	}
	return map[string]int{}, nil
}

func (m *mockReadingTimeRepo) Get(ctx context.Context, paperID string) (int, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, paperID)
	}
	return 0, nil
}

func (m *mockReadingTimeRepo) Put(ctx context.Context, paperID string, seconds int) error {
	if m.putFunc != nil {
		return m.putFunc(ctx, paperID, seconds)
	}
	return nil
}

func (m *mockReadingTimeRepo) List(ctx context.Context) ([]model.ReadingTime, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

type mockPreferenceRepo struct {
	darkModeFunc    func(ctx context.Context) (bool, error)
	setDarkModeFunc func(ctx context.Context, dark bool) error
}

func (m *mockPreferenceRepo) DarkMode(ctx context.Context) (bool, error) {
	if m.darkModeFunc != nil {
		return m.darkModeFunc(ctx)
	}
	return false, nil
}

func (m *mockPreferenceRepo) SetDarkMode(ctx context.Context, dark bool) error {
	if m.setDarkModeFunc != nil {
		return m.setDarkModeFunc(ctx, dark)
	}
	return nil
}

type mockWalletProvider struct {
	requestAccountsFunc func(ctx context.Context) ([]string, error)
}

func (m *mockWalletProvider) RequestAccounts(ctx context.Context) ([]string, error) {
	if m.requestAccountsFunc != nil {
		return m.requestAccountsFunc(ctx)
	}
	return nil, nil
}

// fixedStake reports a constant staked amount
type fixedStake float64

func (s fixedStake) Staked() float64 { return float64(s) }

func defaultPapers() *repository.CatalogRepository {
	return repository.NewCatalogRepository(repository.DefaultCatalog())
}

// memoryTimes is a ReadingTimeRepository backed by a map
type memoryTimes struct {
	mu    sync.Mutex
	times map[string]int
	puts  int
}

func newMemoryTimes(initial map[string]int) *memoryTimes {
	times := make(map[string]int, len(initial))
	for k, v := range initial {
		times[k] = v
	}
	return &memoryTimes{times: times}
}

func (m *memoryTimes) All(ctx context.Context) (map[string]int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]int, len(m.times))
	for k, v := range m.times {
		out[k] = v
	}
	return out, nil
}

func (m *memoryTimes) Get(ctx context.Context, paperID string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.times[paperID], nil
}

func (m *memoryTimes) Put(ctx context.Context, paperID string, seconds int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.times[paperID] = seconds
	m.puts++
	return nil
}

func (m *memoryTimes) List(ctx context.Context) ([]model.ReadingTime, error) {
	return nil, nil
}

func (m *memoryTimes) value(paperID string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.times[paperID]
}
