package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TransactionManager opens the transaction a whole entry group is written in. Services
// defer Rollback right after Begin; rolling back a committed transaction is a no-op.
type TransactionManager interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Commit(ctx context.Context, tx pgx.Tx) error
	Rollback(ctx context.Context, tx pgx.Tx) error
}
