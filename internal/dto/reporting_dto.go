package dto

import (
	"time"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
)

// DateLayout is the wire format of dates in query parameters and responses.
const DateLayout = "2006-01-02"

// BalanceSheetParams defines query parameters for a balance sheet.
type BalanceSheetParams struct {
	AsOf            time.Time `form:"asOf" time_format:"2006-01-02"` // Optional: defaults to today
	BranchID        *string   `form:"branchID"`
	Level           string    `form:"level,default=all" binding:"omitempty,oneof=all parent_only totals_only"`
	ShowZeroBalance bool      `form:"showZeroBalance"`
}

// ToOptions converts the parameters to balance sheet options, defaulting AsOf to today.
func (p BalanceSheetParams) ToOptions(today time.Time) domain.BalanceSheetOptions {
	asOf := p.AsOf
	if asOf.IsZero() {
		asOf = today
	}
	return domain.BalanceSheetOptions{
		AsOf:            asOf,
		BranchID:        p.BranchID,
		Level:           domain.DisplayLevel(p.Level),
		ShowZeroBalance: p.ShowZeroBalance,
	}
}

// CompareBalanceSheetParams defines query parameters for a balance sheet comparison.
type CompareBalanceSheetParams struct {
	BalanceSheetParams
	PreviousAsOf time.Time `form:"previousAsOf" time_format:"2006-01-02" binding:"required"`
}

// IncomeStatementParams defines query parameters for an income statement.
type IncomeStatementParams struct {
	From            time.Time `form:"from" time_format:"2006-01-02"` // Optional: defaults to the first day of the month of To
	To              time.Time `form:"to" time_format:"2006-01-02"`   // Optional: defaults to today
	BranchID        *string   `form:"branchID"`
	ShowZeroBalance bool      `form:"showZeroBalance"`
}

// ToOptions converts the parameters to income statement options.
func (p IncomeStatementParams) ToOptions(today time.Time) domain.IncomeStatementOptions {
	to := p.To
	if to.IsZero() {
		to = today
	}
	from := p.From
	if from.IsZero() {
		from = time.Date(to.Year(), to.Month(), 1, 0, 0, 0, 0, to.Location())
	}
	return domain.IncomeStatementOptions{
		From:            from,
		To:              to,
		BranchID:        p.BranchID,
		ShowZeroBalance: p.ShowZeroBalance,
	}
}

// AccountEntriesParams defines query parameters for an account drill-down.
type AccountEntriesParams struct {
	From      *time.Time `form:"from" time_format:"2006-01-02"`
	To        time.Time  `form:"to" time_format:"2006-01-02"` // Optional: defaults to today
	BranchID  *string    `form:"branchID"`
	Limit     int        `form:"limit,default=50" binding:"min=0,max=500"`
	NextToken *string    `form:"nextToken"`
}

// ToFilter converts the parameters to an entry filter for accountID.
func (p AccountEntriesParams) ToFilter(accountID string, today time.Time) domain.EntryFilter {
	to := p.To
	if to.IsZero() {
		to = today
	}
	return domain.EntryFilter{
		AccountID: accountID,
		From:      p.From,
		To:        to,
		BranchID:  p.BranchID,
		Limit:     p.Limit,
		NextToken: p.NextToken,
	}
}

// RatiosParams defines query parameters for financial ratios.
type RatiosParams struct {
	From     time.Time `form:"from" time_format:"2006-01-02"` // Optional: defaults to the first day of the year of AsOf
	AsOf     time.Time `form:"asOf" time_format:"2006-01-02"` // Optional: defaults to today
	BranchID *string   `form:"branchID"`
}

// Window returns the margin window start and the ratio date.
func (p RatiosParams) Window(today time.Time) (from, asOf time.Time) {
	asOf = p.AsOf
	if asOf.IsZero() {
		asOf = today
	}
	from = p.From
	if from.IsZero() {
		from = time.Date(asOf.Year(), time.January, 1, 0, 0, 0, 0, asOf.Location())
	}
	return from, asOf
}

// AccountEntriesResponse represents an account drill-down.
type AccountEntriesResponse struct {
	AccountID   string          `json:"accountID"`
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	Entries     []EntryResponse `json:"entries"`
	TotalDebit  string          `json:"totalDebit"`
	TotalCredit string          `json:"totalCredit"`
	Balance     string          `json:"balance"`
	NextToken   *string         `json:"nextToken,omitempty"`
}

// ToAccountEntriesResponse converts a domain.AccountDrillDown to AccountEntriesResponse DTO.
func ToAccountEntriesResponse(d *domain.AccountDrillDown) AccountEntriesResponse {
	return AccountEntriesResponse{
		AccountID:   d.Account.ID,
		Code:        d.Account.Code,
		Name:        d.Account.Name,
		Entries:     ToEntryResponses(d.Entries),
		TotalDebit:  d.TotalDebit.StringFixed(2),
		TotalCredit: d.TotalCredit.StringFixed(2),
		Balance:     d.Balance.StringFixed(2),
		NextToken:   d.NextToken,
	}
}
