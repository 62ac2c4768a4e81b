package pgsql

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/property_management_app/internal/apperrors"
	portsrepo "github.com/SscSPs/property_management_app/internal/core/ports/repositories"
	"github.com/SscSPs/property_management_app/internal/middleware"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// Begin starts a new database transaction
func (r *BaseRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return nil, classify(err, "failed to begin transaction")
	}
	return tx, nil
}

// Commit commits a transaction
func (r *BaseRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		return classify(err, "failed to commit transaction")
	}
	return nil
}

// Rollback rolls back a transaction
func (r *BaseRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return classify(err, "failed to rollback transaction")
	}
	return nil
}

// withTx runs fn inside a transaction from tm. The transaction is rolled back when fn or
// the commit fails.
func withTx(ctx context.Context, tm portsrepo.TransactionManager, fn func(tx pgx.Tx) error) (err error) {
	tx, err := tm.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rbErr := tm.Rollback(ctx, tx); rbErr != nil {
				middleware.GetLoggerFromCtx(ctx).Error("Failed to roll back transaction", slog.String("error", rbErr.Error()))
			}
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}
	return tm.Commit(ctx, tx)
}

// classify maps driver errors onto the store sentinels: connection problems are
// ErrStoreUnavailable, everything else ErrStoreOperationFailed.
func classify(err error, msg string) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", msg, err)
	}
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) || pgconn.Timeout(err) {
		return fmt.Errorf("%w: %s: %w", apperrors.ErrStoreUnavailable, msg, err)
	}
	return fmt.Errorf("%w: %s: %w", apperrors.ErrStoreOperationFailed, msg, err)
}
