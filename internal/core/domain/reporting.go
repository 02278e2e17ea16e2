package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DisplayLevel controls which account lines a statement section lists.
type DisplayLevel string

const (
	DisplayAll        DisplayLevel = "all"
	DisplayParentOnly DisplayLevel = "parent_only"
	DisplayTotalsOnly DisplayLevel = "totals_only"
)

// AccountActivity is an account with its summed ledger activity over a window.
type AccountActivity struct {
	Account ChartOfAccount
	Debit   decimal.Decimal
	Credit  decimal.Decimal
}

// AccountLine is one account row of a statement section.
type AccountLine struct {
	AccountID  string          `json:"accountID"`
	Code       string          `json:"code"`
	Name       string          `json:"name"`
	Type       AccountType     `json:"type"`
	ParentID   *string         `json:"parentID,omitempty"`
	Debit      decimal.Decimal `json:"totalDebit"`
	Credit     decimal.Decimal `json:"totalCredit"`
	Balance    decimal.Decimal `json:"balance"`
	Percentage decimal.Decimal `json:"percentage"`
}

// Section is a titled group of account lines with its total. The total always covers every
// account of the section, whatever the display options filtered out.
type Section struct {
	Name     string          `json:"name"`
	Accounts []AccountLine   `json:"accounts"`
	Total    decimal.Decimal `json:"total"`
}

// BalanceSheetOptions are the parameters of a balance sheet.
type BalanceSheetOptions struct {
	AsOf            time.Time    `json:"asOf"`
	BranchID        *string      `json:"branchID,omitempty"`
	Level           DisplayLevel `json:"level"`
	ShowZeroBalance bool         `json:"showZeroBalance"`
}

// BalanceCheck reports whether the sheet balanced and the plug applied when it did not.
type BalanceCheck struct {
	// IsBalanced holds after the plug, so it is always true on a returned sheet.
	IsBalanced                 bool            `json:"isBalanced"`
	// BalancedBeforeAdjustment is the ledger's own state before any plug.
	BalancedBeforeAdjustment   bool            `json:"balancedBeforeAdjustment"`
	WasAdjusted                bool            `json:"wasAdjusted"`
	DifferenceBeforeAdjustment decimal.Decimal `json:"differenceBeforeAdjustment"`
	PlugAmount                 decimal.Decimal `json:"plugAmount"`
}

// BalanceSheetReport is a point-in-time statement of financial position.
type BalanceSheetReport struct {
	Options                   BalanceSheetOptions `json:"options"`
	CurrentAssets             Section             `json:"currentAssets"`
	NonCurrentAssets          Section             `json:"nonCurrentAssets"`
	UncategorizedAssets       Section             `json:"uncategorizedAssets"`
	ContraAssets              Section             `json:"contraAssets"`
	TotalAssets               decimal.Decimal     `json:"totalAssets"`
	CurrentLiabilities        Section             `json:"currentLiabilities"`
	NonCurrentLiabilities     Section             `json:"nonCurrentLiabilities"`
	UncategorizedLiabilities  Section             `json:"uncategorizedLiabilities"`
	TotalLiabilities          decimal.Decimal     `json:"totalLiabilities"`
	Equity                    Section             `json:"equity"`
	RetainedEarnings          decimal.Decimal     `json:"retainedEarnings"`
	TotalEquity               decimal.Decimal     `json:"totalEquity"`
	TotalLiabilitiesAndEquity decimal.Decimal     `json:"totalLiabilitiesAndEquity"`
	Balance                   BalanceCheck        `json:"balance"`
}

// IncomeStatementOptions are the parameters of an income statement.
type IncomeStatementOptions struct {
	From            time.Time `json:"from"`
	To              time.Time `json:"to"`
	BranchID        *string   `json:"branchID,omitempty"`
	ShowZeroBalance bool      `json:"showZeroBalance"`
}

// Margins are profit figures relative to sales revenue, in percent.
type Margins struct {
	Gross     decimal.Decimal `json:"gross"`
	Operating decimal.Decimal `json:"operating"`
	Net       decimal.Decimal `json:"net"`
}

// LegacyProfit is the flat all-revenue minus all-expense figure.
type LegacyProfit struct {
	TotalRevenue   decimal.Decimal `json:"totalRevenue"`
	TotalExpense   decimal.Decimal `json:"totalExpense"`
	NetProfit      decimal.Decimal `json:"netProfit"`
	IsProfitLegacy bool            `json:"isProfitLegacy"`
}

// IncomeStatementReport is the multi-step profit and loss statement for a period.
type IncomeStatementReport struct {
	Options           IncomeStatementOptions `json:"options"`
	SalesRevenue      Section                `json:"salesRevenue"`
	CostOfGoodsSold   Section                `json:"costOfGoodsSold"`
	GrossProfit       decimal.Decimal        `json:"grossProfit"`
	OperatingExpenses Section                `json:"operatingExpenses"`
	OperatingProfit   decimal.Decimal        `json:"operatingProfit"`
	OtherIncome       Section                `json:"otherIncome"`
	OtherExpense      Section                `json:"otherExpense"`
	ProfitBeforeTax   decimal.Decimal        `json:"profitBeforeTax"`
	TaxExpense        Section                `json:"taxExpense"`
	NetProfit         decimal.Decimal        `json:"netProfit"`
	IsProfit          bool                   `json:"isProfit"`
	Margins           Margins                `json:"margins"`
	Legacy            LegacyProfit           `json:"legacy"`
}

// EntryFilter narrows a drill-down listing.
type EntryFilter struct {
	AccountID string
	From      *time.Time
	To        time.Time
	BranchID  *string
	Limit     int
	NextToken *string
}

// AccountDrillDown lists the literal entries behind an account balance.
type AccountDrillDown struct {
	Account     ChartOfAccount  `json:"account"`
	Entries     []JournalEntry  `json:"entries"`
	TotalDebit  decimal.Decimal `json:"totalDebit"`
	TotalCredit decimal.Decimal `json:"totalCredit"`
	Balance     decimal.Decimal `json:"balance"`
	NextToken   *string         `json:"nextToken,omitempty"`
}

// FinancialRatios summarizes liquidity, leverage and profitability.
type FinancialRatios struct {
	AsOf             time.Time       `json:"asOf"`
	TotalAssets      decimal.Decimal `json:"totalAssets"`
	TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
	TotalEquity      decimal.Decimal `json:"totalEquity"`
	CurrentRatio     decimal.Decimal `json:"currentRatio"`
	DebtToEquity     decimal.Decimal `json:"debtToEquity"`
	WorkingCapital   decimal.Decimal `json:"workingCapital"`
	Margins          Margins         `json:"margins"`
	IsBalanced       bool            `json:"isBalanced"`
}

// ClassificationCounts counts chart accounts by balance sheet class.
type ClassificationCounts struct {
	AssetAccounts            int `json:"assetAccounts"`
	CurrentAssetAccounts     int `json:"currentAssetAccounts"`
	LiabilityAccounts        int `json:"liabilityAccounts"`
	CurrentLiabilityAccounts int `json:"currentLiabilityAccounts"`
	EquityAccounts           int `json:"equityAccounts"`
	UnclassifiedAccounts     int `json:"unclassifiedAccounts"`
}

// ValidityReport is the chart-of-accounts classification diagnostic.
type ValidityReport struct {
	IsValid        bool                 `json:"isValid"`
	Issues         []string             `json:"issues"`
	Classification ClassificationCounts `json:"classification"`
}

// LineComparison compares one balance sheet figure across two dates.
type LineComparison struct {
	Current    decimal.Decimal `json:"current"`
	Previous   decimal.Decimal `json:"previous"`
	Change     decimal.Decimal `json:"change"`
	Percentage decimal.Decimal `json:"percentage"`
}

// NewLineComparison computes change and percentage. Percentage is zero when previous is zero.
func NewLineComparison(current, previous decimal.Decimal) LineComparison {
	c := LineComparison{
		Current:    current,
		Previous:   previous,
		Change:     current.Sub(previous),
		Percentage: decimal.Zero,
	}
	if !previous.IsZero() {
		c.Percentage = c.Change.Div(previous).Mul(decimal.NewFromInt(100)).Round(2)
	}
	return c
}

// PeriodComparison is a balance sheet compared against an earlier date.
type PeriodComparison struct {
	Current  *BalanceSheetReport       `json:"current"`
	Previous *BalanceSheetReport       `json:"previous"`
	Lines    map[string]LineComparison `json:"lines"`
}
