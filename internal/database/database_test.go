package database

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockDatabase struct {
	queryFunc func(query string, vars map[string]interface{}) ([]Result, error)
}

func (m *mockDatabase) Connect(ctx context.Context) error { return nil }
func (m *mockDatabase) Close() error                      { return nil }
func (m *mockDatabase) Ping(ctx context.Context) error    { return nil }
func (m *mockDatabase) Query(ctx context.Context, query string, vars map[string]interface{}) ([]Result, error) {
	return m.queryFunc(query, vars)
}

func TestConfig_Endpoint(t *testing.T) {
	assert.Equal(t, "ws://localhost:8000", Config{Host: "localhost", Port: "8000"}.Endpoint())
	assert.Equal(t, "ws://[::1]:8000", Config{Host: "::1", Port: "8000"}.Endpoint())
}

func TestFirstRow(t *testing.T) {
	row, err := FirstRow([]Result{{Status: "OK", Rows: []Row{{"value": "a"}, {"value": "b"}}}})
	require.NoError(t, err)
	assert.Equal(t, "a", row["value"])

	_, err = FirstRow(nil)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = FirstRow([]Result{{Status: "OK"}})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestExec(t *testing.T) {
	var got string
	db := &mockDatabase{queryFunc: func(query string, vars map[string]interface{}) ([]Result, error) {
		got = query
		return []Result{{Status: "OK"}}, nil
	}}
	require.NoError(t, Exec(context.Background(), db, "DELETE cache", nil))
	assert.Equal(t, "DELETE cache", got)

	failing := &mockDatabase{queryFunc: func(string, map[string]interface{}) ([]Result, error) {
		return nil, ErrQuery
	}}
	assert.True(t, errors.Is(Exec(context.Background(), failing, "DELETE cache", nil), ErrQuery))
}

func TestSurrealDB_RequiresConnection(t *testing.T) {
	db := NewSurrealDB(Config{Host: "localhost", Port: "8000"})

	assert.ErrorIs(t, db.Ping(context.Background()), ErrConnection)
	_, err := db.Query(context.Background(), "INFO FOR DB", nil)
	assert.ErrorIs(t, err, ErrConnection)
	assert.NoError(t, db.Close())
}
