package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry represents a row of journal_entries. Exactly one of Debit and Credit is positive.
type JournalEntry struct {
	EntryID     string          `db:"entry_id"`
	COAID       string          `db:"coa_id"`
	EntryDate   time.Time       `db:"entry_date"`
	Debit       decimal.Decimal `db:"debit"`
	Credit      decimal.Decimal `db:"credit"`
	JournalType string          `db:"journal_type"`
	SourceKind  string          `db:"source_kind"`
	SourceID    string          `db:"source_id"`
	Dimensions
	Reference        string     `db:"reference"`
	Description      string     `db:"description"`
	IsReversal       bool       `db:"is_reversal"`
	ReversedEntryID  *string    `db:"reversed_entry_id"`
	ReconciledAt     *time.Time `db:"reconciled_at"`
	ReconciliationID *string    `db:"reconciliation_id"`
	DeletedAt        *time.Time `db:"deleted_at"`
	AuditFields
}
