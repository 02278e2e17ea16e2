package mapping

import (
	"time"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/SscSPs/erp_ledger/internal/models"
)

// ToModelAsset converts a domain FixedAsset to a model Asset
func ToModelAsset(d domain.FixedAsset) models.Asset {
	var usageDate *time.Time
	if !d.UsageDate.IsZero() {
		usageDate = &d.UsageDate
	}
	return models.Asset{
		AssetID:                 d.ID,
		Code:                    d.Code,
		Name:                    d.Name,
		PurchaseCost:            d.PurchaseCost,
		SalvageValue:            d.SalvageValue,
		UsefulLifeYears:         d.UsefulLifeYears,
		Method:                  string(d.Method),
		MonthlyDepreciation:     d.MonthlyDepreciation,
		PurchaseDate:            d.PurchaseDate,
		UsageDate:               usageDate,
		AccumulatedDepreciation: d.AccumulatedDepreciation,
		BookValue:               d.BookValue,
		Status:                  string(d.Status),
		InTransfer:              d.InTransfer,
		AssetCOAID:              d.AssetCOAID,
		AccumulatedCOAID:        d.AccumulatedCOAID,
		ExpenseCOAID:            d.ExpenseCOAID,
		FundingCOAID:            d.FundingCOAID,
		Dimensions:              ToModelDimensions(d.Tags),
		WarehouseID:             d.WarehouseID,
		AuditFields:             ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAsset converts a model Asset to a domain FixedAsset
func ToDomainAsset(m models.Asset) domain.FixedAsset {
	d := domain.FixedAsset{
		ID:                      m.AssetID,
		Code:                    m.Code,
		Name:                    m.Name,
		PurchaseCost:            m.PurchaseCost,
		SalvageValue:            m.SalvageValue,
		UsefulLifeYears:         m.UsefulLifeYears,
		Method:                  domain.DepreciationMethod(m.Method),
		MonthlyDepreciation:     m.MonthlyDepreciation,
		PurchaseDate:            m.PurchaseDate,
		AccumulatedDepreciation: m.AccumulatedDepreciation,
		BookValue:               m.BookValue,
		Status:                  domain.AssetStatus(m.Status),
		InTransfer:              m.InTransfer,
		AssetCOAID:              m.AssetCOAID,
		AccumulatedCOAID:        m.AccumulatedCOAID,
		ExpenseCOAID:            m.ExpenseCOAID,
		FundingCOAID:            m.FundingCOAID,
		Tags:                    ToDomainDimensions(m.Dimensions),
		WarehouseID:             m.WarehouseID,
		AuditFields:             ToDomainAuditFields(m.AuditFields),
	}
	if m.UsageDate != nil {
		d.UsageDate = *m.UsageDate
	}
	return d
}

// ToModelAssetDepreciation converts a domain AssetDepreciation to a model AssetDepreciation
func ToModelAssetDepreciation(d domain.AssetDepreciation) models.AssetDepreciation {
	return models.AssetDepreciation{
		DepreciationID:   d.ID,
		AssetID:          d.AssetID,
		Period:           d.Period,
		DepreciationDate: d.Date,
		Amount:           d.Amount,
		AccumulatedTotal: d.AccumulatedTotal,
		BookValue:        d.BookValue,
		Reference:        d.Reference,
		Status:           string(d.Status),
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAssetDepreciation converts a model AssetDepreciation to a domain AssetDepreciation
func ToDomainAssetDepreciation(m models.AssetDepreciation) domain.AssetDepreciation {
	return domain.AssetDepreciation{
		ID:               m.DepreciationID,
		AssetID:          m.AssetID,
		Period:           m.Period,
		Date:             m.DepreciationDate,
		Amount:           m.Amount,
		AccumulatedTotal: m.AccumulatedTotal,
		BookValue:        m.BookValue,
		Reference:        m.Reference,
		Status:           domain.DepreciationStatus(m.Status),
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelAssetDisposal converts a domain AssetDisposal to a model AssetDisposal
func ToModelAssetDisposal(d domain.AssetDisposal) models.AssetDisposal {
	return models.AssetDisposal{
		DisposalID:     d.ID,
		AssetID:        d.AssetID,
		Number:         d.Number,
		DisposalDate:   d.Date,
		DisposalType:   string(d.Type),
		SalePrice:      d.SalePrice,
		CashCOAID:      d.CashCOAID,
		BookValue:      d.BookValue,
		GainLossAmount: d.GainLossAmount,
		GainLossType:   string(d.GainLossType),
		Dimensions:     ToModelDimensions(d.Tags),
		CreatedBy:      d.CreatedBy,
	}
}
