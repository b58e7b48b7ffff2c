package db

import (
	"context"

	"github.com/klikphone/sav-portal/internal/session"
)

// StateStore is a durable session.Storage the portal can health-check.
type StateStore interface {
	session.Storage
	Ping(ctx context.Context) error
	Close() error
}

// Open picks Postgres for postgres:// URLs and SQLite for anything else,
// which is taken as a file path.
func Open(ctx context.Context, stateURL string) (StateStore, error) {
	if IsPostgresURL(stateURL) {
		return New(ctx, stateURL)
	}
	return NewSQLite(stateURL)
}
