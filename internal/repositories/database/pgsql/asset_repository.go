package pgsql

import (
	"context"
	"time"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/erp_ledger/internal/models"
	"github.com/SscSPs/erp_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const assetColumns = `asset_id, code, name, purchase_cost, salvage_value, useful_life_years, method,
	monthly_depreciation, purchase_date, usage_date, accumulated_depreciation, book_value, status,
	in_transfer, asset_coa_id, accumulated_coa_id, expense_coa_id, funding_coa_id,
	branch_id, department_id, project_id, warehouse_id,
	created_at, created_by, last_updated_at, last_updated_by`

const depreciationColumns = `depreciation_id, asset_id, period, depreciation_date, amount, accumulated_total,
	book_value, reference, status, created_at, created_by, last_updated_at, last_updated_by`

type PgxAssetRepository struct {
	BaseRepository
}

// newPgxAssetRepository creates a new repository for fixed assets and their depreciation.
func newPgxAssetRepository(pool *pgxpool.Pool) portsrepo.AssetRepositoryFacade {
	return &PgxAssetRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AssetRepositoryFacade = (*PgxAssetRepository)(nil)

func collectAsset(rows pgx.Rows) (*domain.FixedAsset, error) {
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Asset])
	if err != nil {
		return nil, err
	}
	asset := mapping.ToDomainAsset(m)
	return &asset, nil
}

func collectDepreciation(rows pgx.Rows) (*domain.AssetDepreciation, error) {
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.AssetDepreciation])
	if err != nil {
		return nil, err
	}
	dep := mapping.ToDomainAssetDepreciation(m)
	return &dep, nil
}

// FindAssetByID retrieves an asset.
func (r *PgxAssetRepository) FindAssetByID(ctx context.Context, assetID string) (*domain.FixedAsset, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+assetColumns+` FROM assets WHERE asset_id = $1`, assetID)
	if err != nil {
		return nil, wrapf(err, "failed to query asset %s", assetID)
	}
	asset, err := collectAsset(rows)
	if err != nil {
		return nil, notFound(err, "failed to find asset %s", assetID)
	}
	return asset, nil
}

// ListActiveAssets retrieves every asset still being depreciated, ordered by code.
func (r *PgxAssetRepository) ListActiveAssets(ctx context.Context) ([]domain.FixedAsset, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+assetColumns+` FROM assets WHERE status = $1 ORDER BY code`, domain.AssetActive)
	if err != nil {
		return nil, wrapf(err, "failed to list active assets")
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Asset])
	if err != nil {
		return nil, wrapf(err, "failed to scan assets")
	}
	assets := make([]domain.FixedAsset, len(ms))
	for i, m := range ms {
		assets[i] = mapping.ToDomainAsset(m)
	}
	return assets, nil
}

// FindDepreciationByID retrieves a depreciation record.
func (r *PgxAssetRepository) FindDepreciationByID(ctx context.Context, depreciationID string) (*domain.AssetDepreciation, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+depreciationColumns+` FROM asset_depreciations WHERE depreciation_id = $1`, depreciationID)
	if err != nil {
		return nil, wrapf(err, "failed to query depreciation %s", depreciationID)
	}
	dep, err := collectDepreciation(rows)
	if err != nil {
		return nil, notFound(err, "failed to find depreciation %s", depreciationID)
	}
	return dep, nil
}

// LockAsset selects an asset FOR UPDATE within tx.
func (r *PgxAssetRepository) LockAsset(ctx context.Context, tx pgx.Tx, assetID string) (*domain.FixedAsset, error) {
	rows, err := tx.Query(ctx, `SELECT `+assetColumns+` FROM assets WHERE asset_id = $1 FOR UPDATE`, assetID)
	if err != nil {
		return nil, wrapf(err, "failed to lock asset %s", assetID)
	}
	asset, err := collectAsset(rows)
	if err != nil {
		return nil, notFound(err, "failed to lock asset %s", assetID)
	}
	return asset, nil
}

// FindRecordedDepreciation returns ErrNotFound when the period has no recorded depreciation.
func (r *PgxAssetRepository) FindRecordedDepreciation(ctx context.Context, tx pgx.Tx, assetID, period string) (*domain.AssetDepreciation, error) {
	rows, err := tx.Query(ctx, `
		SELECT `+depreciationColumns+`
		FROM asset_depreciations
		WHERE asset_id = $1 AND period = $2 AND status = $3`, assetID, period, domain.DepreciationRecorded)
	if err != nil {
		return nil, wrapf(err, "failed to query depreciation of %s for %s", assetID, period)
	}
	dep, err := collectDepreciation(rows)
	if err != nil {
		return nil, notFound(err, "failed to find depreciation of %s for %s", assetID, period)
	}
	return dep, nil
}

// SumRecordedDepreciation totals every recorded depreciation of an asset.
func (r *PgxAssetRepository) SumRecordedDepreciation(ctx context.Context, tx pgx.Tx, assetID string) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := tx.QueryRow(ctx, `
		SELECT COALESCE(SUM(amount), 0)
		FROM asset_depreciations
		WHERE asset_id = $1 AND status = $2`, assetID, domain.DepreciationRecorded).Scan(&total)
	if err != nil {
		return decimal.Zero, wrapf(err, "failed to total depreciation of %s", assetID)
	}
	return total, nil
}

// InsertDepreciation persists a depreciation record. The partial unique index on
// (asset_id, period) rejects a second recorded depreciation for the same month.
func (r *PgxAssetRepository) InsertDepreciation(ctx context.Context, tx pgx.Tx, dep domain.AssetDepreciation) error {
	m := mapping.ToModelAssetDepreciation(dep)
	_, err := tx.Exec(ctx, `
		INSERT INTO asset_depreciations (`+depreciationColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		m.DepreciationID, m.AssetID, m.Period, m.DepreciationDate, m.Amount, m.AccumulatedTotal,
		m.BookValue, m.Reference, m.Status, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return wrapf(err, "failed to insert depreciation of %s for %s", dep.AssetID, dep.Period)
	}
	return nil
}

// MarkDepreciationReversed flips a recorded depreciation to reversed.
func (r *PgxAssetRepository) MarkDepreciationReversed(ctx context.Context, tx pgx.Tx, depreciationID, userID string, at time.Time) error {
	tag, err := tx.Exec(ctx, `
		UPDATE asset_depreciations
		SET status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE depreciation_id = $1 AND status = $5`,
		depreciationID, domain.DepreciationReversed, at, userID, domain.DepreciationRecorded)
	if err != nil {
		return wrapf(err, "failed to reverse depreciation %s", depreciationID)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewValidationError("depreciationID", "depreciation %s is not recorded", depreciationID)
	}
	return nil
}

// UpdateAssetAggregates stores accumulated depreciation, book value and status.
func (r *PgxAssetRepository) UpdateAssetAggregates(ctx context.Context, tx pgx.Tx, asset domain.FixedAsset) error {
	_, err := tx.Exec(ctx, `
		UPDATE assets
		SET accumulated_depreciation = $2, book_value = $3, status = $4, last_updated_at = now()
		WHERE asset_id = $1`,
		asset.ID, asset.AccumulatedDepreciation, asset.BookValue, asset.Status)
	if err != nil {
		return wrapf(err, "failed to update asset %s", asset.ID)
	}
	return nil
}

// InsertDisposal persists a disposal document.
func (r *PgxAssetRepository) InsertDisposal(ctx context.Context, tx pgx.Tx, disposal domain.AssetDisposal) error {
	m := mapping.ToModelAssetDisposal(disposal)
	_, err := tx.Exec(ctx, `
		INSERT INTO asset_disposals (disposal_id, asset_id, number, disposal_date, disposal_type, sale_price,
			cash_coa_id, book_value, gain_loss_amount, gain_loss_type, branch_id, department_id, project_id,
			created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, now())`,
		m.DisposalID, m.AssetID, m.Number, m.DisposalDate, m.DisposalType, m.SalePrice,
		m.CashCOAID, m.BookValue, m.GainLossAmount, m.GainLossType, m.BranchID, m.DepartmentID, m.ProjectID,
		m.CreatedBy)
	if err != nil {
		return wrapf(err, "failed to insert disposal of %s", disposal.AssetID)
	}
	return nil
}
