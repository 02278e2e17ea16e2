package repositories

import (
	"context"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// ManufacturingReader defines read operations for production configuration and cost history
type ManufacturingReader interface {
	// FindManufacturingOrder retrieves an order with its bill of materials costs.
	FindManufacturingOrder(ctx context.Context, moID string) (*domain.ManufacturingOrder, error)

	// MaterialTotals sums the recorded completed issues and returns of an order.
	MaterialTotals(ctx context.Context, moID string) (domain.MaterialTotals, error)

	// SumAllocatedCost sums live allocation debits to work in progress linked to an order.
	SumAllocatedCost(ctx context.Context, moID string) (decimal.Decimal, error)
}

// ManufacturingWriter records material movements as part of a posting
type ManufacturingWriter interface {
	// RecordMaterialMovement stores or replaces the cost total of an issue or return.
	RecordMaterialMovement(ctx context.Context, tx pgx.Tx, issue domain.MaterialIssue) error
}

// ManufacturingRepositoryFacade combines all manufacturing repository interfaces
type ManufacturingRepositoryFacade interface {
	ManufacturingReader
	ManufacturingWriter
}
