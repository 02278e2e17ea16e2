package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset       AccountType = "ASSET"
	Liability   AccountType = "LIABILITY"
	Equity      AccountType = "EQUITY"
	Revenue     AccountType = "REVENUE"
	Expense     AccountType = "EXPENSE"
	ContraAsset AccountType = "CONTRA_ASSET"
)

// IsValid reports whether t is one of the known account types.
func (t AccountType) IsValid() bool {
	switch t {
	case Asset, Liability, Equity, Revenue, Expense, ContraAsset:
		return true
	}
	return false
}

// IsDebitNormal reports whether debits increase accounts of this type.
func (t AccountType) IsDebitNormal() bool {
	return t == Asset || t == Expense
}

// ChartOfAccount is a single ledger account in the chart of accounts.
type ChartOfAccount struct {
	ID             string          `json:"id"`
	Code           string          `json:"code"`
	Name           string          `json:"name"`
	Type           AccountType     `json:"type"`
	ParentID       *string         `json:"parentID,omitempty"`
	IsCurrent      *bool           `json:"isCurrent,omitempty"` // nil when unknown
	IsActive       bool            `json:"isActive"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	AuditFields
}

// SignedBalance returns debit minus credit or credit minus debit depending on the
// account's normal balance.
func (a ChartOfAccount) SignedBalance(debit, credit decimal.Decimal) decimal.Decimal {
	if a.Type.IsDebitNormal() {
		return debit.Sub(credit)
	}
	return credit.Sub(debit)
}
