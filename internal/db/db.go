// Package db defines the narrow capability interfaces the pipeline needs
// from a database connection. Components take these instead of *sql.DB so
// they can be exercised against fakes.
package db

import "database/sql"

// Rows is the subset of *sql.Rows the pipeline consumes.
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

// Querier is a read capability.
type Querier interface {
	Query(query string, args ...any) (Rows, error)
}

// Execer is a write capability.
type Execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

// Conn adapts *sql.DB to the capability interfaces.
type Conn struct {
	DB *sql.DB
}

func (c Conn) Query(query string, args ...any) (Rows, error) {
	return c.DB.Query(query, args...)
}

func (c Conn) Exec(query string, args ...any) (sql.Result, error) {
	return c.DB.Exec(query, args...)
}

var (
	_ Querier = Conn{}
	_ Execer  = Conn{}
)
