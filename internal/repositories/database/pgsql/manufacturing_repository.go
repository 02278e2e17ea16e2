package pgsql

import (
	"context"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/erp_ledger/internal/models"
	"github.com/SscSPs/erp_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxManufacturingRepository struct {
	BaseRepository
}

// newPgxManufacturingRepository creates a new repository for production configuration and costs.
func newPgxManufacturingRepository(pool *pgxpool.Pool) portsrepo.ManufacturingRepositoryFacade {
	return &PgxManufacturingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ManufacturingRepositoryFacade = (*PgxManufacturingRepository)(nil)

// FindManufacturingOrder retrieves an order with its bill of materials costs.
func (r *PgxManufacturingRepository) FindManufacturingOrder(ctx context.Context, moID string) (*domain.ManufacturingOrder, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT mo_id, number, product_name, warehouse_id, quantity, bom_active, wip_coa_id,
			finished_goods_coa_id, standard_material_cost, labor_cost, overhead_cost
		FROM manufacturing_orders
		WHERE mo_id = $1`, moID)
	if err != nil {
		return nil, wrapf(err, "failed to query manufacturing order %s", moID)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.ManufacturingOrder])
	if err != nil {
		return nil, notFound(err, "failed to find manufacturing order %s", moID)
	}
	mo := mapping.ToDomainManufacturingOrder(m)
	return &mo, nil
}

// MaterialTotals sums the completed issues and returns recorded for an order.
func (r *PgxManufacturingRepository) MaterialTotals(ctx context.Context, moID string) (domain.MaterialTotals, error) {
	totals := domain.MaterialTotals{Issued: decimal.Zero, Returned: decimal.Zero}
	err := r.Pool.QueryRow(ctx, `
		SELECT
			COALESCE(SUM(total_cost) FILTER (WHERE movement_type = 'issue'), 0),
			COALESCE(SUM(total_cost) FILTER (WHERE movement_type = 'return'), 0)
		FROM material_movements
		WHERE manufacturing_order_id = $1 AND status = $2`,
		moID, domain.MaterialIssueStatusCompleted).Scan(&totals.Issued, &totals.Returned)
	if err != nil {
		return totals, wrapf(err, "failed to total materials of %s", moID)
	}
	return totals, nil
}

// SumAllocatedCost sums live allocation debits whose documents are linked to the order.
// Allocation groups only debit work in progress.
func (r *PgxManufacturingRepository) SumAllocatedCost(ctx context.Context, moID string) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.Pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(je.debit), 0)
		FROM journal_entries je
		JOIN document_links dl ON dl.source_kind = je.source_kind AND dl.source_id = je.source_id
		WHERE je.journal_type = $2
			AND je.deleted_at IS NULL
			AND dl.manufacturing_order_id = $1`,
		moID, domain.JournalManufacturingAllocation).Scan(&total)
	if err != nil {
		return decimal.Zero, wrapf(err, "failed to total allocations of %s", moID)
	}
	return total, nil
}

// RecordMaterialMovement stores or replaces the posted cost of an issue or return.
func (r *PgxManufacturingRepository) RecordMaterialMovement(ctx context.Context, tx pgx.Tx, issue domain.MaterialIssue) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO material_movements (issue_id, manufacturing_order_id, movement_type, status, total_cost, movement_date, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, now())
		ON CONFLICT (issue_id) DO UPDATE SET
			manufacturing_order_id = EXCLUDED.manufacturing_order_id,
			movement_type = EXCLUDED.movement_type,
			status = EXCLUDED.status,
			total_cost = EXCLUDED.total_cost,
			movement_date = EXCLUDED.movement_date,
			updated_at = now()`,
		issue.ID, issue.ManufacturingOrderID, string(issue.Type), issue.Status, issue.TotalCost(), issue.Date)
	if err != nil {
		return wrapf(err, "failed to record material movement %s", issue.ID)
	}
	return nil
}
