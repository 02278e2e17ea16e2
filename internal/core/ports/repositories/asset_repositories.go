package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// AssetReader defines read operations for fixed assets
type AssetReader interface {
	// FindAssetByID retrieves an asset.
	FindAssetByID(ctx context.Context, assetID string) (*domain.FixedAsset, error)

	// ListActiveAssets retrieves every active asset ordered by code.
	ListActiveAssets(ctx context.Context) ([]domain.FixedAsset, error)

	// FindDepreciationByID retrieves a depreciation record.
	FindDepreciationByID(ctx context.Context, depreciationID string) (*domain.AssetDepreciation, error)
}

// AssetWriter defines the in-transaction operations of asset postings
type AssetWriter interface {
	// LockAsset selects an asset and locks it for update within a transaction.
	LockAsset(ctx context.Context, tx pgx.Tx, assetID string) (*domain.FixedAsset, error)

	// FindRecordedDepreciation retrieves the recorded depreciation of an asset for a period, if any.
	FindRecordedDepreciation(ctx context.Context, tx pgx.Tx, assetID, period string) (*domain.AssetDepreciation, error)

	// SumRecordedDepreciation totals every recorded depreciation of an asset.
	SumRecordedDepreciation(ctx context.Context, tx pgx.Tx, assetID string) (decimal.Decimal, error)

	// InsertDepreciation persists a depreciation record.
	InsertDepreciation(ctx context.Context, tx pgx.Tx, dep domain.AssetDepreciation) error

	// MarkDepreciationReversed flips a recorded depreciation to reversed.
	MarkDepreciationReversed(ctx context.Context, tx pgx.Tx, depreciationID, userID string, at time.Time) error

	// UpdateAssetAggregates stores accumulated depreciation, book value and status.
	UpdateAssetAggregates(ctx context.Context, tx pgx.Tx, asset domain.FixedAsset) error

	// InsertDisposal persists a disposal document.
	InsertDisposal(ctx context.Context, tx pgx.Tx, disposal domain.AssetDisposal) error
}

// AssetRepositoryFacade combines all asset repository interfaces
type AssetRepositoryFacade interface {
	AssetReader
	AssetWriter
}
