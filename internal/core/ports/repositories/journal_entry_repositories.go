package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// EntryGroupWriter defines the in-transaction operations of the posting runner
type EntryGroupWriter interface {
	// LockGroup takes a transaction-scoped advisory lock on the entry group key.
	LockGroup(ctx context.Context, tx pgx.Tx, key domain.GroupKey) error

	// HasLiveEntries reports whether non-deleted entries exist for the key.
	HasLiveEntries(ctx context.Context, tx pgx.Tx, key domain.GroupKey) (bool, error)

	// SoftDeleteGroup marks every live entry of the key as deleted and returns how many were.
	SoftDeleteGroup(ctx context.Context, tx pgx.Tx, key domain.GroupKey, deletedBy string, at time.Time) (int64, error)

	// SoftDeleteBySource marks every live entry of a source as deleted, whatever its journal type.
	SoftDeleteBySource(ctx context.Context, tx pgx.Tx, src domain.SourceRef, deletedBy string, at time.Time) (int64, error)

	// InsertEntries persists a validated entry group.
	InsertEntries(ctx context.Context, tx pgx.Tx, entries []domain.JournalEntry) error
}

// EntryReader defines read operations over committed, non-deleted entries
type EntryReader interface {
	// ListEntriesBySource retrieves the live entries posted from a source document.
	ListEntriesBySource(ctx context.Context, src domain.SourceRef) ([]domain.JournalEntry, error)

	// ListEntriesByAccount retrieves entries of one account newest first using token-based pagination.
	ListEntriesByAccount(ctx context.Context, filter domain.EntryFilter) ([]domain.JournalEntry, *string, error)

	// SumAccountEntries totals debits and credits of one account over the filter window.
	SumAccountEntries(ctx context.Context, filter domain.EntryFilter) (domain.AccountActivity, error)
}

// SequenceGenerator hands out per-prefix, per-day document numbers
type SequenceGenerator interface {
	// NextSequence returns the next number for prefix on day, starting at 1.
	NextSequence(ctx context.Context, tx pgx.Tx, prefix string, day time.Time) (int, error)
}

// JournalEntryRepositoryFacade combines all journal entry repository interfaces
type JournalEntryRepositoryFacade interface {
	TransactionManager
	EntryGroupWriter
	EntryReader
	SequenceGenerator
}
