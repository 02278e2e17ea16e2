package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AssetStatus is the lifecycle state of a fixed asset.
type AssetStatus string

const (
	AssetActive           AssetStatus = "active"
	AssetDisposed         AssetStatus = "disposed"
	AssetFullyDepreciated AssetStatus = "fully_depreciated"
)

// DepreciationMethod selects how the monthly amount is derived.
type DepreciationMethod string

const (
	StraightLine     DepreciationMethod = "straight_line"
	DecliningBalance DepreciationMethod = "declining_balance"
	SumOfYearsDigits DepreciationMethod = "sum_of_years_digits"
)

var twelve = decimal.NewFromInt(12)

// FixedAsset is a fixed asset with cached depreciation aggregates derived from the ledger.
type FixedAsset struct {
	ID                      string             `json:"id"`
	Code                    string             `json:"code"`
	Name                    string             `json:"name"`
	PurchaseCost            decimal.Decimal    `json:"purchaseCost"`
	SalvageValue            decimal.Decimal    `json:"salvageValue"`
	UsefulLifeYears         int                `json:"usefulLifeYears"`
	Method                  DepreciationMethod `json:"method"`
	MonthlyDepreciation     decimal.Decimal    `json:"monthlyDepreciation"`
	PurchaseDate            time.Time          `json:"purchaseDate"`
	UsageDate               time.Time          `json:"usageDate"`
	AccumulatedDepreciation decimal.Decimal    `json:"accumulatedDepreciation"`
	BookValue               decimal.Decimal    `json:"bookValue"`
	Status                  AssetStatus        `json:"status"`
	InTransfer              bool               `json:"inTransfer"`
	AssetCOAID              *string            `json:"assetCOAID,omitempty"`
	AccumulatedCOAID        *string            `json:"accumulatedCOAID,omitempty"`
	ExpenseCOAID            *string            `json:"expenseCOAID,omitempty"`
	FundingCOAID            *string            `json:"fundingCOAID,omitempty"`
	Tags                    Dimensions         `json:"tags"`
	WarehouseID             *string            `json:"warehouseID,omitempty"`
	AuditFields
}

// MonthlyAmount returns the explicit monthly depreciation, or derives it from the method.
func (a FixedAsset) MonthlyAmount() decimal.Decimal {
	if a.MonthlyDepreciation.IsPositive() {
		return a.MonthlyDepreciation
	}
	if a.UsefulLifeYears <= 0 || !a.PurchaseCost.IsPositive() {
		return decimal.Zero
	}
	life := decimal.NewFromInt(int64(a.UsefulLifeYears))
	depreciable := a.PurchaseCost.Sub(a.SalvageValue)
	var annual decimal.Decimal
	switch a.Method {
	case DecliningBalance:
		annual = decimal.Min(a.PurchaseCost.Mul(decimal.NewFromInt(2)).Div(life), depreciable)
	case SumOfYearsDigits:
		sum := life.Mul(life.Add(decimal.NewFromInt(1))).Div(decimal.NewFromInt(2))
		annual = depreciable.Mul(life).Div(sum)
	default:
		annual = depreciable.Div(life)
	}
	return annual.Div(twelve).Round(2)
}

// Recompute derives accumulated depreciation and book value from the recorded total.
func (a *FixedAsset) Recompute(recordedTotal decimal.Decimal) {
	a.AccumulatedDepreciation = recordedTotal
	a.BookValue = a.PurchaseCost.Sub(recordedTotal)
	if a.Status == AssetDisposed {
		return
	}
	if a.BookValue.LessThanOrEqual(a.SalvageValue) && recordedTotal.IsPositive() {
		a.Status = AssetFullyDepreciated
	} else {
		a.Status = AssetActive
	}
}

// DepreciationStatus tracks whether a monthly depreciation is live.
type DepreciationStatus string

const (
	DepreciationRecorded DepreciationStatus = "recorded"
	DepreciationReversed DepreciationStatus = "reversed"
)

// AssetDepreciation is one monthly depreciation posting for an asset.
type AssetDepreciation struct {
	ID               string             `json:"id"`
	AssetID          string             `json:"assetID"`
	Period           string             `json:"period"` // YYYY-MM
	Date             time.Time          `json:"date"`
	Amount           decimal.Decimal    `json:"amount"`
	AccumulatedTotal decimal.Decimal    `json:"accumulatedTotal"`
	BookValue        decimal.Decimal    `json:"bookValue"`
	Reference        string             `json:"reference"`
	Status           DepreciationStatus `json:"status"`
	AuditFields
}

// PeriodOf formats a date as a depreciation period.
func PeriodOf(t time.Time) string {
	return t.Format("2006-01")
}

// DisposalType is how an asset left the books.
type DisposalType string

const (
	DisposalSale     DisposalType = "sale"
	DisposalScrap    DisposalType = "scrap"
	DisposalDonation DisposalType = "donation"
)

// GainLossType classifies the disposal result.
type GainLossType string

const (
	GainLossGain GainLossType = "gain"
	GainLossLoss GainLossType = "loss"
	GainLossNone GainLossType = "none"
)

// AssetDisposal is the disposal document for an asset.
type AssetDisposal struct {
	ID             string          `json:"id" validate:"required"`
	AssetID        string          `json:"assetID" validate:"required"`
	Number         string          `json:"number"`
	Date           time.Time       `json:"date" validate:"required"`
	Type           DisposalType    `json:"type" validate:"required,oneof=sale scrap donation"`
	SalePrice      decimal.Decimal `json:"salePrice"`
	CashCOAID      *string         `json:"cashCOAID,omitempty"`
	BookValue      decimal.Decimal `json:"bookValue"`
	GainLossAmount decimal.Decimal `json:"gainLossAmount"`
	GainLossType   GainLossType    `json:"gainLossType"`
	Tags           Dimensions      `json:"tags"`
	CreatedBy      string          `json:"createdBy"`
}

// ComputeGainLoss fills BookValue and gain/loss fields from the asset's cost and accumulated
// depreciation.
func (d *AssetDisposal) ComputeGainLoss(asset FixedAsset) {
	d.BookValue = asset.PurchaseCost.Sub(asset.AccumulatedDepreciation)
	if d.Type == DisposalSale {
		d.GainLossAmount = d.SalePrice.Sub(d.BookValue)
	} else {
		d.SalePrice = decimal.Zero
		d.GainLossAmount = d.BookValue.Neg()
	}
	switch d.GainLossAmount.Sign() {
	case 1:
		d.GainLossType = GainLossGain
	case -1:
		d.GainLossType = GainLossLoss
	default:
		d.GainLossType = GainLossNone
	}
}

// DepreciationBatchResult summarizes a monthly depreciation run.
type DepreciationBatchResult struct {
	Period  string   `json:"period"`
	Success int      `json:"success"`
	Skipped int      `json:"skipped"`
	Failed  int      `json:"failed"`
	Errors  []string `json:"errors"`
}

// AssetAcquisition capitalizes an asset's purchase cost.
type AssetAcquisition struct {
	AssetID      string    `json:"assetID" validate:"required"`
	Date         time.Time `json:"date" validate:"required"`
	FundingCOAID *string   `json:"fundingCOAID,omitempty"`
	Reference    string    `json:"reference"`
	CreatedBy    string    `json:"createdBy"`
}

// DepreciationRequest posts one month of depreciation for an asset.
type DepreciationRequest struct {
	AssetID   string    `json:"assetID" validate:"required"`
	Date      time.Time `json:"date" validate:"required"`
	CreatedBy string    `json:"createdBy"`
}
