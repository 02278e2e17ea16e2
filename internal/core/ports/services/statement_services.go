package services

import (
	"context"
	"time"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
)

// BalanceSheetSvc builds balance sheet views
type BalanceSheetSvc interface {
	BalanceSheet(ctx context.Context, opts domain.BalanceSheetOptions) (*domain.BalanceSheetReport, error)
	CompareBalanceSheets(ctx context.Context, current, previous domain.BalanceSheetOptions) (*domain.PeriodComparison, error)
	ValidateClassification(ctx context.Context) (*domain.ValidityReport, error)
}

// IncomeStatementSvc builds profit and loss views
type IncomeStatementSvc interface {
	IncomeStatement(ctx context.Context, opts domain.IncomeStatementOptions) (*domain.IncomeStatementReport, error)
}

// StatementAnalysisSvc provides drill-down and ratio views
type StatementAnalysisSvc interface {
	// AccountEntries lists the entries behind an account balance.
	AccountEntries(ctx context.Context, filter domain.EntryFilter) (*domain.AccountDrillDown, error)

	// Ratios computes balance sheet ratios as of a date and margins since from.
	Ratios(ctx context.Context, from, asOf time.Time, branchID *string) (*domain.FinancialRatios, error)
}

// StatementSvcFacade combines all statement service interfaces
type StatementSvcFacade interface {
	BalanceSheetSvc
	IncomeStatementSvc
	StatementAnalysisSvc
}
