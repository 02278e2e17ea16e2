package services

import (
	"context"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
)

// AssetPostingSvc posts the fixed asset lifecycle
type AssetPostingSvc interface {
	// PostAcquisition capitalizes an asset's purchase cost.
	PostAcquisition(ctx context.Context, req domain.AssetAcquisition) (*domain.PostingResult, error)

	// PostDepreciation posts one month of depreciation and updates the asset aggregates.
	PostDepreciation(ctx context.Context, req domain.DepreciationRequest) (*domain.PostingResult, error)

	// ReverseDepreciation reverses a recorded depreciation and recomputes the asset aggregates.
	ReverseDepreciation(ctx context.Context, depreciationID string, userID string) (*domain.FixedAsset, error)

	// PostDisposal removes an asset from the books, recognizing gain or loss.
	PostDisposal(ctx context.Context, disposal domain.AssetDisposal) (*domain.PostingResult, error)
}

// DepreciationBatchSvc runs depreciation for every active asset
type DepreciationBatchSvc interface {
	// GenerateMonthlyDepreciation posts depreciation for all active assets for the period (YYYY-MM).
	// One failing asset never stops the batch.
	GenerateMonthlyDepreciation(ctx context.Context, period string, userID string) (*domain.DepreciationBatchResult, error)
}

// AssetSvcFacade combines all asset service interfaces
type AssetSvcFacade interface {
	AssetPostingSvc
	DepreciationBatchSvc
}
