package services

import (
	"context"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
)

// AccountResolverSvc picks the account a posting line goes to
type AccountResolverSvc interface {
	// Resolve returns the first matching active account or a ConfigurationError.
	Resolve(ctx context.Context, req domain.AccountRequest) (*domain.ChartOfAccount, error)
}

// TagResolverSvc derives organizational tags for a document
type TagResolverSvc interface {
	// Resolve returns the tag of one dimension, or nil when no rule yields one.
	Resolve(ctx context.Context, links domain.DocumentLinks, dim domain.Dimension) *string

	// ResolveAll resolves every dimension.
	ResolveAll(ctx context.Context, links domain.DocumentLinks) domain.Dimensions
}
