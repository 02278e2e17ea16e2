package mapping

import (
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/SscSPs/erp_ledger/internal/models"
)

// ToModelJournalEntry converts a domain JournalEntry to a model JournalEntry
func ToModelJournalEntry(d domain.JournalEntry) models.JournalEntry {
	return models.JournalEntry{
		EntryID:          d.ID,
		COAID:            d.COAID,
		EntryDate:        d.Date,
		Debit:            d.Debit,
		Credit:           d.Credit,
		JournalType:      string(d.JournalType),
		SourceKind:       string(d.Source.Kind),
		SourceID:         d.Source.ID,
		Dimensions:       ToModelDimensions(d.Tags),
		Reference:        d.Reference,
		Description:      d.Description,
		IsReversal:       d.IsReversal,
		ReversedEntryID:  d.ReversedEntryID,
		ReconciledAt:     d.ReconciledAt,
		ReconciliationID: d.ReconciliationID,
		DeletedAt:        d.DeletedAt,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainJournalEntry converts a model JournalEntry to a domain JournalEntry
func ToDomainJournalEntry(m models.JournalEntry) domain.JournalEntry {
	return domain.JournalEntry{
		ID:               m.EntryID,
		COAID:            m.COAID,
		Date:             m.EntryDate,
		Debit:            m.Debit,
		Credit:           m.Credit,
		JournalType:      domain.JournalType(m.JournalType),
		Source:           domain.SourceRef{Kind: domain.SourceKind(m.SourceKind), ID: m.SourceID},
		Tags:             ToDomainDimensions(m.Dimensions),
		Reference:        m.Reference,
		Description:      m.Description,
		IsReversal:       m.IsReversal,
		ReversedEntryID:  m.ReversedEntryID,
		ReconciledAt:     m.ReconciledAt,
		ReconciliationID: m.ReconciliationID,
		DeletedAt:        m.DeletedAt,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainJournalEntries converts a slice of model entries
func ToDomainJournalEntries(ms []models.JournalEntry) []domain.JournalEntry {
	ds := make([]domain.JournalEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainJournalEntry(m)
	}
	return ds
}
