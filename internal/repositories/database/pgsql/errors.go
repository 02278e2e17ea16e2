package pgsql

import (
	"errors"
	"fmt"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

// wrapf wraps a database error with context, turning unique violations into ErrDuplicate.
func wrapf(err error, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%w: %s (%s)", apperrors.ErrDuplicate, msg, pgErr.ConstraintName)
	}
	return fmt.Errorf("%s: %w", msg, err)
}
