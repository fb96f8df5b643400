package database

import (
	"context"
	"errors"
	"fmt"
	"net"
)

var (
	ErrNotFound   = errors.New("record not found")
	ErrConnection = errors.New("database connection error")
	ErrQuery      = errors.New("query error")
)

// Row is one record returned by a statement
type Row map[string]interface{}

// Result is the outcome of one statement of a query
type Result struct {
	Status string
	Rows   []Row
}

// Database is a SurrealDB session. Query returns one Result per statement and
// fails with ErrQuery when any statement did not succeed.
type Database interface {
	Connect(ctx context.Context) error
	Close() error
	Ping(ctx context.Context) error
	Query(ctx context.Context, query string, vars map[string]interface{}) ([]Result, error)
}

// FirstRow returns the first row of the first statement, or ErrNotFound
func FirstRow(results []Result) (Row, error) {
	if len(results) == 0 || len(results[0].Rows) == 0 {
		return nil, ErrNotFound
	}
	return results[0].Rows[0], nil
}

// Exec runs a query for its side effects
func Exec(ctx context.Context, db Database, query string, vars map[string]interface{}) error {
	_, err := db.Query(ctx, query, vars)
	return err
}

// Config holds database configuration
type Config struct {
	Host      string
	Port      string
	User      string
	Password  string
	Namespace string
	Database  string
}

// Endpoint returns the websocket URL for the configured host
func (c Config) Endpoint() string {
	return fmt.Sprintf("ws://%s", net.JoinHostPort(c.Host, c.Port))
}
