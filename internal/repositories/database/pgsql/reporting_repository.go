package pgsql

import (
	"context"
	"time"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/erp_ledger/internal/models"
	"github.com/SscSPs/erp_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// reportingRepository implements the ReportingRepository interface
type reportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new reporting repository
func newReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

var _ portsrepo.ReportingRepository = (*reportingRepository)(nil)

// GetAccountActivity sums live entries per active account over (from, to]. The LEFT JOIN keeps
// accounts without activity so opening balances still reach the statements.
func (r *reportingRepository) GetAccountActivity(ctx context.Context, types []domain.AccountType, from *time.Time, to time.Time, branchID *string) ([]domain.AccountActivity, error) {
	typeNames := make([]string, len(types))
	for i, t := range types {
		typeNames[i] = string(t)
	}

	query := `
		SELECT
			c.coa_id, c.code, c.name, c.account_type, c.parent_id, c.is_current, c.is_active, c.opening_balance,
			c.created_at, c.created_by, c.last_updated_at, c.last_updated_by,
			COALESCE(SUM(je.debit), 0) AS total_debit,
			COALESCE(SUM(je.credit), 0) AS total_credit
		FROM chart_of_accounts c
		LEFT JOIN journal_entries je ON je.coa_id = c.coa_id
			AND je.deleted_at IS NULL
			AND je.entry_date <= $2
			AND ($3::date IS NULL OR je.entry_date > $3)
			AND ($4::text IS NULL OR je.branch_id = $4)
		WHERE c.is_active AND c.account_type = ANY($1)
		GROUP BY c.coa_id
		ORDER BY c.code
	`
	rows, err := r.Pool.Query(ctx, query, typeNames, to, from, branchID)
	if err != nil {
		return nil, wrapf(err, "error querying account activity")
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.AccountActivity])
	if err != nil {
		return nil, wrapf(err, "error scanning account activity")
	}

	result := make([]domain.AccountActivity, len(ms))
	for i, m := range ms {
		result[i] = mapping.ToDomainAccountActivity(m)
	}
	return result, nil
}
