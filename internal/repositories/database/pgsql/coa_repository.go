package pgsql

import (
	"context"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/erp_ledger/internal/models"
	"github.com/SscSPs/erp_ledger/internal/utils/accounting"
	"github.com/SscSPs/erp_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const coaColumns = `coa_id, code, name, account_type, parent_id, is_current, is_active, opening_balance,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxCOARepository struct {
	BaseRepository
}

// newPgxCOARepository creates a new repository for the chart of accounts.
func newPgxCOARepository(pool *pgxpool.Pool) portsrepo.COARepositoryFacade {
	return &PgxCOARepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.COARepositoryFacade = (*PgxCOARepository)(nil)

func (r *PgxCOARepository) queryOne(ctx context.Context, query string, args ...any) (*domain.ChartOfAccount, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.ChartOfAccount])
	if err != nil {
		return nil, err
	}
	account := mapping.ToDomainChartOfAccount(m)
	return &account, nil
}

// FindAccountByID retrieves an account by its ID.
func (r *PgxCOARepository) FindAccountByID(ctx context.Context, accountID string) (*domain.ChartOfAccount, error) {
	account, err := r.queryOne(ctx, `SELECT `+coaColumns+` FROM chart_of_accounts WHERE coa_id = $1`, accountID)
	if err != nil {
		return nil, notFound(err, "failed to find account %s", accountID)
	}
	return account, nil
}

// FindAccountsByIDs retrieves multiple accounts by their IDs.
func (r *PgxCOARepository) FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.ChartOfAccount, error) {
	if len(accountIDs) == 0 {
		return map[string]domain.ChartOfAccount{}, nil
	}
	rows, err := r.Pool.Query(ctx, `SELECT `+coaColumns+` FROM chart_of_accounts WHERE coa_id = ANY($1)`, accountIDs)
	if err != nil {
		return nil, wrapf(err, "failed to query accounts by IDs")
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.ChartOfAccount])
	if err != nil {
		return nil, wrapf(err, "failed to scan accounts")
	}

	// Ids that were not found are simply absent; callers check what they need.
	accounts := make(map[string]domain.ChartOfAccount, len(ms))
	for _, m := range ms {
		accounts[m.COAID] = mapping.ToDomainChartOfAccount(m)
	}
	return accounts, nil
}

// FindActiveByCode compares codes after normalization, so "1-1" matches "1.1".
func (r *PgxCOARepository) FindActiveByCode(ctx context.Context, code string) (*domain.ChartOfAccount, error) {
	normalized := accounting.NormalizeCode(code)
	if normalized == "" {
		return nil, apperrors.ErrNotFound
	}
	account, err := r.queryOne(ctx, `
		SELECT `+coaColumns+`
		FROM chart_of_accounts
		WHERE is_active AND normalized_code = $1
		ORDER BY code
		LIMIT 1`, normalized)
	if err != nil {
		return nil, notFound(err, "failed to find account by code %s", code)
	}
	return account, nil
}

// FindFirstActiveByCodePrefix retrieves the lowest-coded active account under a prefix.
func (r *PgxCOARepository) FindFirstActiveByCodePrefix(ctx context.Context, prefix string) (*domain.ChartOfAccount, error) {
	normalized := accounting.NormalizeCode(prefix)
	if normalized == "" {
		return nil, apperrors.ErrNotFound
	}
	account, err := r.queryOne(ctx, `
		SELECT `+coaColumns+`
		FROM chart_of_accounts
		WHERE is_active AND starts_with(normalized_code, $1)
		ORDER BY normalized_code, code
		LIMIT 1`, normalized)
	if err != nil {
		return nil, notFound(err, "failed to find account by code prefix %s", prefix)
	}
	return account, nil
}

// ListAccounts retrieves the whole chart ordered by code.
func (r *PgxCOARepository) ListAccounts(ctx context.Context) ([]domain.ChartOfAccount, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+coaColumns+` FROM chart_of_accounts ORDER BY code`)
	if err != nil {
		return nil, wrapf(err, "failed to list accounts")
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.ChartOfAccount])
	if err != nil {
		return nil, wrapf(err, "failed to scan accounts")
	}
	return mapping.ToDomainChartOfAccounts(ms), nil
}
