package cache

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgo/learnledger/api/internal/database"
)

// exerciseStore runs the behaviour every backend must share
func exerciseStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	_, ok, err := s.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok, "absent key must not be found")

	require.NoError(t, s.Set(ctx, "paperReadingTimes", `{"paper3":4}`))
	v, ok, err := s.Get(ctx, "paperReadingTimes")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"paper3":4}`, v)

	// Last writer wins
	require.NoError(t, s.Set(ctx, "paperReadingTimes", `{"paper3":5}`))
	v, _, err = s.Get(ctx, "paperReadingTimes")
	require.NoError(t, err)
	assert.Equal(t, `{"paper3":5}`, v)

	require.NoError(t, s.Delete(ctx, "paperReadingTimes"))
	_, ok, err = s.Get(ctx, "paperReadingTimes")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStore(t *testing.T) {
	t.Parallel()
	s := NewMemoryStore()
	exerciseStore(t, s)

	require.NoError(t, s.Close())
	_, _, err := s.Get(context.Background(), "k")
	assert.ErrorIs(t, err, ErrClosed)
	assert.ErrorIs(t, s.Set(context.Background(), "k", "v"), ErrClosed)
}

func TestBadgerStore_InMemory(t *testing.T) {
	t.Parallel()
	cfg := DefaultBadgerConfig()
	cfg.InMemory = true
	cfg.SyncWrites = false

	s, err := OpenBadger(cfg)
	require.NoError(t, err)
	exerciseStore(t, s)
	require.NoError(t, s.Close())
}

func TestBadgerStore_PersistsAcrossReopen(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	cfg := DefaultBadgerConfig()
	cfg.Path = dir
	cfg.GCInterval = 0

	s, err := OpenBadger(cfg)
	require.NoError(t, err)
	require.NoError(t, s.Set(context.Background(), "darkMode", "true"))
	require.NoError(t, s.Close())

	s, err = OpenBadger(cfg)
	require.NoError(t, err)
	defer func() { _ = s.Close() }()

	v, ok, err := s.Get(context.Background(), "darkMode")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "true", v)
}

func TestOpenBadger_RequiresPath(t *testing.T) {
	t.Parallel()
	_, err := OpenBadger(BadgerConfig{})
	assert.Error(t, err)
}

func TestOpen_UnknownBackend(t *testing.T) {
	t.Parallel()
	_, err := Open(context.Background(), Config{Backend: "redis"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis")
}

func TestOpen_DefaultsToMemory(t *testing.T) {
	t.Parallel()
	s, err := Open(context.Background(), Config{})
	require.NoError(t, err)
	_, ok := s.(*MemoryStore)
	assert.True(t, ok)
}

// ============================================================================
// SurrealStore Tests
// ============================================================================

// fakeDatabase emulates the cache table with a map
type fakeDatabase struct {
	rows     map[string]string
	queryErr error
	closed   bool
}

func newFakeDatabase() *fakeDatabase {
	return &fakeDatabase{rows: make(map[string]string)}
}

func (f *fakeDatabase) Connect(ctx context.Context) error { return nil }
func (f *fakeDatabase) Close() error                      { f.closed = true; return nil }
func (f *fakeDatabase) Ping(ctx context.Context) error    { return nil }

func (f *fakeDatabase) Query(ctx context.Context, query string, vars map[string]interface{}) ([]database.Result, error) {
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	key := vars["key"].(string)
	switch {
	case strings.HasPrefix(query, "SELECT"):
		v, ok := f.rows[key]
		if !ok {
			return []database.Result{{Status: "OK"}}, nil
		}
		return []database.Result{{Status: "OK", Rows: []database.Row{{"value": v}}}}, nil
	case strings.HasPrefix(query, "UPSERT"):
		f.rows[key] = vars["value"].(string)
	case strings.HasPrefix(query, "DELETE"):
		delete(f.rows, key)
	}
	return []database.Result{{Status: "OK"}}, nil
}

func TestSurrealStore(t *testing.T) {
	t.Parallel()
	db := newFakeDatabase()
	s := NewSurrealStore(db)
	exerciseStore(t, s)

	require.NoError(t, s.Close())
	assert.True(t, db.closed)
}

func TestSurrealStore_WrapsQueryErrors(t *testing.T) {
	t.Parallel()
	db := newFakeDatabase()
	db.queryErr = database.ErrConnection
	s := NewSurrealStore(db)

	_, _, err := s.Get(context.Background(), "darkMode")
	assert.ErrorIs(t, err, database.ErrConnection)

	err = s.Set(context.Background(), "darkMode", "true")
	assert.ErrorIs(t, err, database.ErrConnection)
}
