package pgsql

import (
	"context"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/erp_ledger/internal/models"
	"github.com/SscSPs/erp_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxDocumentGraphRepository struct {
	BaseRepository
}

// newPgxDocumentGraphRepository creates a new repository for document relations and tag defaults.
func newPgxDocumentGraphRepository(pool *pgxpool.Pool) portsrepo.DocumentGraphRepositoryFacade {
	return &PgxDocumentGraphRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.DocumentGraphRepositoryFacade = (*PgxDocumentGraphRepository)(nil)

// FindLinks retrieves the recorded relations of a posted document.
func (r *PgxDocumentGraphRepository) FindLinks(ctx context.Context, src domain.SourceRef) (*domain.DocumentLinks, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT source_kind, source_id, branch_id, department_id, project_id, warehouse_id,
			manufacturing_order_id, invoice_kind, invoice_id, created_by
		FROM document_links
		WHERE source_kind = $1 AND source_id = $2`, src.Kind, src.ID)
	if err != nil {
		return nil, wrapf(err, "failed to query links of %s", src)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.DocumentLink])
	if err != nil {
		return nil, notFound(err, "failed to find links of %s", src)
	}
	links := mapping.ToDomainDocumentLinks(m)
	return &links, nil
}

// FindWarehouse retrieves a warehouse and its default tags.
func (r *PgxDocumentGraphRepository) FindWarehouse(ctx context.Context, warehouseID string) (*domain.Warehouse, error) {
	var w domain.Warehouse
	var tags models.Dimensions
	err := r.Pool.QueryRow(ctx, `
		SELECT warehouse_id, name, branch_id, department_id, project_id
		FROM warehouses
		WHERE warehouse_id = $1`, warehouseID).Scan(&w.ID, &w.Name, &tags.BranchID, &tags.DepartmentID, &tags.ProjectID)
	if err != nil {
		return nil, notFound(err, "failed to find warehouse %s", warehouseID)
	}
	w.Tags = mapping.ToDomainDimensions(tags)
	return &w, nil
}

// FindUserDefaults retrieves the default tags of a user.
func (r *PgxDocumentGraphRepository) FindUserDefaults(ctx context.Context, userID string) (*domain.UserDefaults, error) {
	d := domain.UserDefaults{UserID: userID}
	var tags models.Dimensions
	err := r.Pool.QueryRow(ctx, `
		SELECT branch_id, department_id, project_id
		FROM user_defaults
		WHERE user_id = $1`, userID).Scan(&tags.BranchID, &tags.DepartmentID, &tags.ProjectID)
	if err != nil {
		return nil, notFound(err, "failed to find defaults of user %s", userID)
	}
	d.Tags = mapping.ToDomainDimensions(tags)
	return &d, nil
}

// UpsertLinks records or refreshes the relations of a posted document.
func (r *PgxDocumentGraphRepository) UpsertLinks(ctx context.Context, tx pgx.Tx, links domain.DocumentLinks) error {
	m := mapping.ToModelDocumentLink(links)
	_, err := tx.Exec(ctx, `
		INSERT INTO document_links (source_kind, source_id, branch_id, department_id, project_id, warehouse_id,
			manufacturing_order_id, invoice_kind, invoice_id, created_by, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, now())
		ON CONFLICT (source_kind, source_id) DO UPDATE SET
			branch_id = EXCLUDED.branch_id,
			department_id = EXCLUDED.department_id,
			project_id = EXCLUDED.project_id,
			warehouse_id = EXCLUDED.warehouse_id,
			manufacturing_order_id = EXCLUDED.manufacturing_order_id,
			invoice_kind = EXCLUDED.invoice_kind,
			invoice_id = EXCLUDED.invoice_id,
			updated_at = now()`,
		m.SourceKind, m.SourceID, m.BranchID, m.DepartmentID, m.ProjectID, m.WarehouseID,
		m.ManufacturingOrderID, m.InvoiceKind, m.InvoiceID, m.CreatedBy)
	if err != nil {
		return wrapf(err, "failed to record links of %s", links.Source)
	}
	return nil
}
