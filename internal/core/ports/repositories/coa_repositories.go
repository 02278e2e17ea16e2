package repositories

import (
	"context"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
)

// COAReader defines read operations for the chart of accounts
type COAReader interface {
	// FindAccountByID retrieves an account by id, active or not.
	FindAccountByID(ctx context.Context, accountID string) (*domain.ChartOfAccount, error)

	// FindAccountsByIDs retrieves multiple accounts keyed by id. Missing ids are simply absent.
	FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.ChartOfAccount, error)

	// FindActiveByCode retrieves the active account whose normalized code equals the normalized code.
	FindActiveByCode(ctx context.Context, code string) (*domain.ChartOfAccount, error)

	// FindFirstActiveByCodePrefix retrieves the lowest-coded active account whose normalized
	// code starts with the normalized prefix.
	FindFirstActiveByCodePrefix(ctx context.Context, prefix string) (*domain.ChartOfAccount, error)

	// ListAccounts retrieves the whole chart ordered by code.
	ListAccounts(ctx context.Context) ([]domain.ChartOfAccount, error)
}

// COARepositoryFacade combines all chart-of-accounts repository interfaces
type COARepositoryFacade interface {
	COAReader
}
