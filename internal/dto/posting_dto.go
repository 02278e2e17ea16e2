package dto

import (
	"time"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// EntryResponse defines the data returned for a journal entry.
type EntryResponse struct {
	EntryID      string             `json:"entryID"`
	COAID        string             `json:"coaID"`
	Date         string             `json:"date"`
	Debit        decimal.Decimal    `json:"debit"`
	Credit       decimal.Decimal    `json:"credit"`
	JournalType  domain.JournalType `json:"journalType"`
	SourceKind   domain.SourceKind  `json:"sourceKind"`
	SourceID     string             `json:"sourceID"`
	BranchID     *string            `json:"branchID,omitempty"`
	DepartmentID *string            `json:"departmentID,omitempty"`
	ProjectID    *string            `json:"projectID,omitempty"`
	Reference    string             `json:"reference"`
	Description  string             `json:"description"`
	IsReversal   bool               `json:"isReversal"`
	CreatedAt    time.Time          `json:"createdAt"`
	CreatedBy    string             `json:"createdBy"`
}

// PostingResponse defines the data returned by every posting endpoint.
type PostingResponse struct {
	Status      domain.PostingStatus `json:"status"`
	SourceKind  domain.SourceKind    `json:"sourceKind"`
	SourceID    string               `json:"sourceID"`
	JournalType domain.JournalType   `json:"journalType"`
	Entries     []EntryResponse      `json:"entries"`
	Message     string               `json:"message,omitempty"`
}

// ListEntriesParams defines query parameters for listing the entries of a source document.
type ListEntriesParams struct {
	SourceKind string `form:"sourceKind" binding:"required"`
	SourceID   string `form:"sourceID" binding:"required"`
}

// ListEntriesResponse wraps a list of entries.
type ListEntriesResponse struct {
	Entries   []EntryResponse `json:"entries"`
	NextToken *string         `json:"nextToken,omitempty"`
}

// ToEntryResponse converts a domain.JournalEntry to EntryResponse DTO.
func ToEntryResponse(e *domain.JournalEntry) EntryResponse {
	return EntryResponse{
		EntryID:      e.ID,
		COAID:        e.COAID,
		Date:         e.Date.Format(DateLayout),
		Debit:        e.Debit,
		Credit:       e.Credit,
		JournalType:  e.JournalType,
		SourceKind:   e.Source.Kind,
		SourceID:     e.Source.ID,
		BranchID:     e.Tags.BranchID,
		DepartmentID: e.Tags.DepartmentID,
		ProjectID:    e.Tags.ProjectID,
		Reference:    e.Reference,
		Description:  e.Description,
		IsReversal:   e.IsReversal,
		CreatedAt:    e.CreatedAt,
		CreatedBy:    e.CreatedBy,
	}
}

// ToEntryResponses converts a slice of domain.JournalEntry to []EntryResponse.
func ToEntryResponses(entries []domain.JournalEntry) []EntryResponse {
	res := make([]EntryResponse, len(entries))
	for i := range entries {
		res[i] = ToEntryResponse(&entries[i])
	}
	return res
}

// ToPostingResponse converts a domain.PostingResult to PostingResponse DTO.
func ToPostingResponse(r *domain.PostingResult) PostingResponse {
	return PostingResponse{
		Status:      r.Status,
		SourceKind:  r.Source.Kind,
		SourceID:    r.Source.ID,
		JournalType: r.JournalType,
		Entries:     ToEntryResponses(r.Entries),
		Message:     r.Message,
	}
}
