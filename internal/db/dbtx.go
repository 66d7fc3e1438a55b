package db

import (
	"context"
	"database/sql"
)

// DBTX is the slice of database/sql that the repositories need. Both
// *sql.DB and *sql.Tx satisfy it, so the same repository code runs
// standalone or inside a unit of work.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Keep the interface honest against future database/sql changes.
var (
	_ DBTX = (*sql.DB)(nil)
	_ DBTX = (*sql.Tx)(nil)
)
