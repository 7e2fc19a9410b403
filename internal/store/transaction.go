package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/flipwise/flipwise/internal/platform/logger"
)

// TxFn is a unit of work executed inside a database transaction.
// It receives the transaction-bound context and the transaction itself.
// Returning nil commits the transaction; returning an error rolls it back.
type TxFn func(ctx context.Context, tx *sql.Tx) error

// RunInTransaction begins a transaction on db, runs fn and commits.
// The transaction is rolled back when fn returns an error or panics, and a
// panic is re-raised after the rollback so callers observe it unchanged.
// Begin and commit failures are wrapped with ErrTransactionFailed; errors
// returned by fn are passed through as-is so callers can still match store
// sentinels such as ErrDuplicate.
func RunInTransaction(ctx context.Context, db *sql.DB, fn TxFn) error {
	// Prefer the request-scoped logger so transaction logs carry the trace ID
	log := logger.FromContextOrDefault(ctx, slog.Default())

	// Begin the transaction
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("failed to begin transaction", slog.String("error", err.Error()))
		return fmt.Errorf("%w: begin: %w", ErrTransactionFailed, err)
	}

	// Roll back and re-panic if fn panics
	defer func() {
		if p := recover(); p != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error("rollback after panic failed",
					slog.String("error", rbErr.Error()),
					slog.Any("panic", p))
			} else {
				log.Error("rolled back transaction after panic", slog.Any("panic", p))
			}
			// ALLOW-PANIC: propagate the caller's panic
			panic(p)
		}
	}()

	// Run the caller's work; any error rolls everything back
	if err := fn(ctx, tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Error("rollback failed",
				slog.String("rollback_error", rbErr.Error()),
				slog.String("original_error", err.Error()))
			// Keep the original error matchable; the rollback error is context only
			return fmt.Errorf("rollback failed: %v (original error: %w)", rbErr, err)
		}
		log.Debug("rolled back transaction", slog.String("error", err.Error()))
		return err
	}

	// Everything succeeded, so commit
	if err := tx.Commit(); err != nil {
		log.Error("failed to commit transaction", slog.String("error", err.Error()))
		return fmt.Errorf("%w: commit: %w", ErrTransactionFailed, err)
	}
	return nil
}
