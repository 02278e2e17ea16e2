package models

import (
	"github.com/shopspring/decimal"
)

// ChartOfAccount represents a row of chart_of_accounts.
// IsCurrent is NULL when the account's class is left to code inference.
type ChartOfAccount struct {
	COAID          string          `db:"coa_id"`
	Code           string          `db:"code"`
	Name           string          `db:"name"`
	AccountType    string          `db:"account_type"`
	ParentID       *string         `db:"parent_id"`
	IsCurrent      *bool           `db:"is_current"`
	IsActive       bool            `db:"is_active"`
	OpeningBalance decimal.Decimal `db:"opening_balance"`
	AuditFields
}

// AccountActivity is an account row with its summed debits and credits.
type AccountActivity struct {
	ChartOfAccount
	TotalDebit  decimal.Decimal `db:"total_debit"`
	TotalCredit decimal.Decimal `db:"total_credit"`
}
