package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Asset represents a row of assets.
type Asset struct {
	AssetID                 string          `db:"asset_id"`
	Code                    string          `db:"code"`
	Name                    string          `db:"name"`
	PurchaseCost            decimal.Decimal `db:"purchase_cost"`
	SalvageValue            decimal.Decimal `db:"salvage_value"`
	UsefulLifeYears         int             `db:"useful_life_years"`
	Method                  string          `db:"method"`
	MonthlyDepreciation     decimal.Decimal `db:"monthly_depreciation"`
	PurchaseDate            time.Time       `db:"purchase_date"`
	UsageDate               *time.Time      `db:"usage_date"`
	AccumulatedDepreciation decimal.Decimal `db:"accumulated_depreciation"`
	BookValue               decimal.Decimal `db:"book_value"`
	Status                  string          `db:"status"`
	InTransfer              bool            `db:"in_transfer"`
	AssetCOAID              *string         `db:"asset_coa_id"`
	AccumulatedCOAID        *string         `db:"accumulated_coa_id"`
	ExpenseCOAID            *string         `db:"expense_coa_id"`
	FundingCOAID            *string         `db:"funding_coa_id"`
	Dimensions
	WarehouseID *string `db:"warehouse_id"`
	AuditFields
}

// AssetDepreciation represents a row of asset_depreciations.
type AssetDepreciation struct {
	DepreciationID   string          `db:"depreciation_id"`
	AssetID          string          `db:"asset_id"`
	Period           string          `db:"period"`
	DepreciationDate time.Time       `db:"depreciation_date"`
	Amount           decimal.Decimal `db:"amount"`
	AccumulatedTotal decimal.Decimal `db:"accumulated_total"`
	BookValue        decimal.Decimal `db:"book_value"`
	Reference        string          `db:"reference"`
	Status           string          `db:"status"`
	AuditFields
}

// AssetDisposal represents a row of asset_disposals.
type AssetDisposal struct {
	DisposalID     string          `db:"disposal_id"`
	AssetID        string          `db:"asset_id"`
	Number         string          `db:"number"`
	DisposalDate   time.Time       `db:"disposal_date"`
	DisposalType   string          `db:"disposal_type"`
	SalePrice      decimal.Decimal `db:"sale_price"`
	CashCOAID      *string         `db:"cash_coa_id"`
	BookValue      decimal.Decimal `db:"book_value"`
	GainLossAmount decimal.Decimal `db:"gain_loss_amount"`
	GainLossType   string          `db:"gain_loss_type"`
	Dimensions
	CreatedBy string `db:"created_by"`
}
