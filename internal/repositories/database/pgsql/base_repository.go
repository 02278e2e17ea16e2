package pgsql

import (
	"context"
	"errors"
	"net/http"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// postingTxOptions is the isolation every posting runs under. Same-source writers are
// serialized by advisory locks, so read committed is enough.
var postingTxOptions = pgx.TxOptions{IsoLevel: pgx.ReadCommitted, AccessMode: pgx.ReadWrite}

// BaseRepository is embedded by every ledger repository and owns the pool.
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// Begin opens a posting transaction.
func (r *BaseRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.Pool.BeginTx(ctx, postingTxOptions)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to begin posting transaction", err)
	}
	return tx, nil
}

func (r *BaseRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to commit posting transaction", err)
	}
	return nil
}

// Rollback is safe to defer after Commit.
func (r *BaseRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to roll back posting transaction", err)
	}
	return nil
}

// notFound maps pgx.ErrNoRows to apperrors.ErrNotFound and wraps anything else.
func notFound(err error, format string, args ...any) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.ErrNotFound
	}
	return wrapf(err, format, args...)
}
