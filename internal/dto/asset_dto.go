package dto

import (
	"time"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AcquisitionRequest defines the data needed to capitalize an asset.
type AcquisitionRequest struct {
	Date         time.Time `json:"date" binding:"required"`
	FundingCOAID *string   `json:"fundingCOAID"` // Optional: falls back to the asset's funding account
	Reference    string    `json:"reference"`    // Optional: defaults to ACQ-<code>
}

// ToDomain converts the request to an acquisition of assetID by userID.
func (r AcquisitionRequest) ToDomain(assetID, userID string) domain.AssetAcquisition {
	return domain.AssetAcquisition{
		AssetID:      assetID,
		Date:         r.Date,
		FundingCOAID: r.FundingCOAID,
		Reference:    r.Reference,
		CreatedBy:    userID,
	}
}

// DepreciationRequest defines the data needed to post one month of depreciation.
type DepreciationRequest struct {
	Date time.Time `json:"date" binding:"required"`
}

// GenerateDepreciationRequest defines the period of a depreciation batch.
type GenerateDepreciationRequest struct {
	Period string `json:"period" binding:"required,datetime=2006-01"`
}

// DisposalRequest defines the data needed to dispose of an asset.
type DisposalRequest struct {
	ID        string              `json:"id"` // Optional: generated when empty
	Number    string              `json:"number"`
	Date      time.Time           `json:"date" binding:"required"`
	Type      domain.DisposalType `json:"type" binding:"required,oneof=sale scrap donation"`
	SalePrice decimal.Decimal     `json:"salePrice"`
	CashCOAID *string             `json:"cashCOAID"`
	Tags      domain.Dimensions   `json:"tags"`
}

// ToDomain converts the request to a disposal of assetID by userID.
func (r DisposalRequest) ToDomain(assetID, userID string) domain.AssetDisposal {
	return domain.AssetDisposal{
		ID:        r.ID,
		AssetID:   assetID,
		Number:    r.Number,
		Date:      r.Date,
		Type:      r.Type,
		SalePrice: r.SalePrice,
		CashCOAID: r.CashCOAID,
		Tags:      r.Tags,
		CreatedBy: userID,
	}
}

// AssetResponse defines the data returned for an asset.
type AssetResponse struct {
	AssetID                 string             `json:"assetID"`
	Code                    string             `json:"code"`
	Name                    string             `json:"name"`
	PurchaseCost            decimal.Decimal    `json:"purchaseCost"`
	AccumulatedDepreciation decimal.Decimal    `json:"accumulatedDepreciation"`
	BookValue               decimal.Decimal    `json:"bookValue"`
	Status                  domain.AssetStatus `json:"status"`
	LastUpdatedAt           time.Time          `json:"lastUpdatedAt"`
	LastUpdatedBy           string             `json:"lastUpdatedBy"`
}

// ToAssetResponse converts a domain.FixedAsset to AssetResponse DTO.
func ToAssetResponse(a *domain.FixedAsset) AssetResponse {
	return AssetResponse{
		AssetID:                 a.ID,
		Code:                    a.Code,
		Name:                    a.Name,
		PurchaseCost:            a.PurchaseCost,
		AccumulatedDepreciation: a.AccumulatedDepreciation,
		BookValue:               a.BookValue,
		Status:                  a.Status,
		LastUpdatedAt:           a.LastUpdatedAt,
		LastUpdatedBy:           a.LastUpdatedBy,
	}
}
