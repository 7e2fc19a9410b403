package store

import (
	"context"
	"database/sql"
)

// DBTX is the subset of database/sql used by the Postgres stores.
// Both *sql.DB and *sql.Tx satisfy it, so a store can run against the
// connection pool or inside a transaction started by RunInTransaction.
// Stores expose WithTx to return a copy bound to a transaction.
type DBTX interface {
	// ExecContext runs a statement that returns no rows, such as INSERT or DELETE.
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	// QueryContext runs a query returning any number of rows.
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	// QueryRowContext runs a query expected to return at most one row.
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
