package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
)

// ReportingRepository defines operations for retrieving financial statement data
type ReportingRepository interface {
	// GetAccountActivity sums debits and credits per active account of the given types over
	// (from, to]. A nil from means since the beginning of the ledger. Accounts without
	// activity are returned with zero sums.
	GetAccountActivity(ctx context.Context, types []domain.AccountType, from *time.Time, to time.Time, branchID *string) ([]domain.AccountActivity, error)
}
