package repositories

import (
	"context"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// DocumentGraphReader defines the lookups the tag resolver walks
type DocumentGraphReader interface {
	// FindLinks retrieves the recorded relations of a posted document.
	FindLinks(ctx context.Context, src domain.SourceRef) (*domain.DocumentLinks, error)

	// FindWarehouse retrieves a warehouse and its default tags.
	FindWarehouse(ctx context.Context, warehouseID string) (*domain.Warehouse, error)

	// FindUserDefaults retrieves the default tags of a user.
	FindUserDefaults(ctx context.Context, userID string) (*domain.UserDefaults, error)
}

// DocumentGraphWriter records document relations as part of a posting
type DocumentGraphWriter interface {
	// UpsertLinks records or refreshes the relations of a posted document.
	UpsertLinks(ctx context.Context, tx pgx.Tx, links domain.DocumentLinks) error
}

// DocumentGraphRepositoryFacade combines the document graph interfaces
type DocumentGraphRepositoryFacade interface {
	DocumentGraphReader
	DocumentGraphWriter
}
