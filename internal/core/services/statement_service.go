package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/erp_ledger/internal/core/ports/services"
	"github.com/SscSPs/erp_ledger/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

const (
	defaultDrillDownLimit = 50
	maxDrillDownLimit     = 500
)

var hundred = decimal.NewFromInt(100)

// statementService builds financial statements from committed entries.
type statementService struct {
	BaseService
	coaRepo       portsrepo.COAReader
	entryRepo     portsrepo.EntryReader
	reportingRepo portsrepo.ReportingRepository
	cache         portsrepo.StatementCache
}

// NewStatementService creates the statement service.
func NewStatementService(repos portsrepo.RepositoryProvider) portssvc.StatementSvcFacade {
	return &statementService{
		coaRepo:       repos.COARepo,
		entryRepo:     repos.EntryRepo,
		reportingRepo: repos.ReportingRepo,
		cache:         repos.StatementCache,
	}
}

var _ portssvc.StatementSvcFacade = (*statementService)(nil)

// cached serves key from the statement cache, building and storing it on a miss.
func cached[T any](ctx context.Context, cache portsrepo.StatementCache, key string, build func() (*T, error)) (*T, error) {
	key = fmt.Sprintf("%s:g%d", key, cache.Generation(ctx))
	var hit T
	if cache.Get(ctx, key, &hit) {
		return &hit, nil
	}
	value, err := build()
	if err != nil {
		return nil, err
	}
	cache.Set(ctx, key, value)
	return value, nil
}

func branchKey(branchID *string) string {
	if branchID == nil {
		return "*"
	}
	return *branchID
}

// BalanceSheet computes every balance sheet class as of opts.AsOf. Totals always cover every
// account; display options only filter the listed lines.
func (s *statementService) BalanceSheet(ctx context.Context, opts domain.BalanceSheetOptions) (*domain.BalanceSheetReport, error) {
	if opts.AsOf.IsZero() {
		return nil, apperrors.NewValidationError("asOf", "as of date is required")
	}
	switch opts.Level {
	case "":
		opts.Level = domain.DisplayAll
	case domain.DisplayAll, domain.DisplayParentOnly, domain.DisplayTotalsOnly:
	default:
		return nil, apperrors.NewValidationError("level", "unknown display level %q", opts.Level)
	}

	key := fmt.Sprintf("bs:%s:%s:%s:%t", opts.AsOf.Format(time.DateOnly), branchKey(opts.BranchID), opts.Level, opts.ShowZeroBalance)
	return cached(ctx, s.cache, key, func() (*domain.BalanceSheetReport, error) {
		return s.buildBalanceSheet(ctx, opts)
	})
}

func (s *statementService) buildBalanceSheet(ctx context.Context, opts domain.BalanceSheetOptions) (*domain.BalanceSheetReport, error) {
	logAttrs := []any{slog.String("as_of", opts.AsOf.Format(time.DateOnly)), slog.String("branch", branchKey(opts.BranchID))}

	positions, err := s.reportingRepo.GetAccountActivity(ctx,
		[]domain.AccountType{domain.Asset, domain.ContraAsset, domain.Liability, domain.Equity}, nil, opts.AsOf, opts.BranchID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load balance sheet activity", logAttrs...)
		return nil, apperrors.NewAppError(500, "failed to load balance sheet activity", err)
	}
	retained, err := s.retainedEarnings(ctx, opts.AsOf, opts.BranchID)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute retained earnings", logAttrs...)
		return nil, apperrors.NewAppError(500, "failed to compute retained earnings", err)
	}

	var currentA, nonCurrentA, uncategorizedA, contra, currentL, nonCurrentL, uncategorizedL, equity []domain.AccountLine
	for _, act := range positions {
		line := balanceLine(act)
		switch act.Account.Type {
		case domain.Asset:
			switch current := accounting.ClassifyCurrent(act.Account); {
			case current == nil:
				uncategorizedA = append(uncategorizedA, line)
			case *current:
				currentA = append(currentA, line)
			default:
				nonCurrentA = append(nonCurrentA, line)
			}
		case domain.ContraAsset:
			contra = append(contra, line)
		case domain.Liability:
			switch current := accounting.ClassifyCurrent(act.Account); {
			case current == nil:
				uncategorizedL = append(uncategorizedL, line)
			case *current:
				currentL = append(currentL, line)
			default:
				nonCurrentL = append(nonCurrentL, line)
			}
		case domain.Equity:
			equity = append(equity, line)
		}
	}

	display := func(name string, lines []domain.AccountLine) domain.Section {
		return newSection(name, lines, opts.Level, opts.ShowZeroBalance)
	}
	r := &domain.BalanceSheetReport{
		Options:                  opts,
		CurrentAssets:            display("Current Assets", currentA),
		NonCurrentAssets:         display("Non-Current Assets", nonCurrentA),
		UncategorizedAssets:      display("Uncategorized Assets", uncategorizedA),
		ContraAssets:             display("Contra Assets", contra),
		CurrentLiabilities:       display("Current Liabilities", currentL),
		NonCurrentLiabilities:    display("Non-Current Liabilities", nonCurrentL),
		UncategorizedLiabilities: display("Uncategorized Liabilities", uncategorizedL),
		Equity:                   display("Equity", equity),
		RetainedEarnings:         retained,
	}
	r.TotalAssets = r.CurrentAssets.Total.Add(r.NonCurrentAssets.Total).Add(r.UncategorizedAssets.Total).Sub(r.ContraAssets.Total)
	r.TotalLiabilities = r.CurrentLiabilities.Total.Add(r.NonCurrentLiabilities.Total).Add(r.UncategorizedLiabilities.Total)
	r.TotalEquity = r.Equity.Total.Add(r.RetainedEarnings)
	r.TotalLiabilitiesAndEquity = r.TotalLiabilities.Add(r.TotalEquity)

	diff := r.TotalAssets.Sub(r.TotalLiabilitiesAndEquity)
	balanced := diff.Abs().LessThanOrEqual(accounting.BalanceTolerance)
	r.Balance = domain.BalanceCheck{
		IsBalanced:                 true,
		BalancedBeforeAdjustment:   balanced,
		DifferenceBeforeAdjustment: diff,
		PlugAmount:                 decimal.Zero,
	}
	if !balanced {
		r.RetainedEarnings = r.RetainedEarnings.Add(diff)
		r.TotalEquity = r.TotalEquity.Add(diff)
		r.TotalLiabilitiesAndEquity = r.TotalLiabilitiesAndEquity.Add(diff)
		r.Balance.WasAdjusted = true
		r.Balance.PlugAmount = diff
		s.LogInfo(ctx, "Balance sheet plugged into retained earnings", append(logAttrs, slog.String("plug", diff.StringFixed(2)))...)
	}
	return r, nil
}

// retainedEarnings is cumulative revenue minus expense up to asOf.
func (s *statementService) retainedEarnings(ctx context.Context, asOf time.Time, branchID *string) (decimal.Decimal, error) {
	activity, err := s.reportingRepo.GetAccountActivity(ctx, []domain.AccountType{domain.Revenue, domain.Expense}, nil, asOf, branchID)
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, act := range activity {
		balance := act.Account.SignedBalance(act.Debit, act.Credit)
		if act.Account.Type == domain.Revenue {
			total = total.Add(balance)
		} else {
			total = total.Sub(balance)
		}
	}
	return total, nil
}

// balanceLine is an account position including its opening balance.
func balanceLine(act domain.AccountActivity) domain.AccountLine {
	line := activityLine(act)
	line.Balance = line.Balance.Add(act.Account.OpeningBalance)
	return line
}

func activityLine(act domain.AccountActivity) domain.AccountLine {
	return domain.AccountLine{
		AccountID:  act.Account.ID,
		Code:       act.Account.Code,
		Name:       act.Account.Name,
		Type:       act.Account.Type,
		ParentID:   act.Account.ParentID,
		Debit:      act.Debit,
		Credit:     act.Credit,
		Balance:    act.Account.SignedBalance(act.Debit, act.Credit),
		Percentage: decimal.Zero,
	}
}

// newSection totals every line, then keeps the lines the display options ask for.
func newSection(name string, lines []domain.AccountLine, level domain.DisplayLevel, showZero bool) domain.Section {
	section := domain.Section{Name: name, Accounts: []domain.AccountLine{}, Total: decimal.Zero}
	for _, line := range lines {
		section.Total = section.Total.Add(line.Balance)
	}
	if level == domain.DisplayTotalsOnly {
		return section
	}
	for _, line := range lines {
		if level == domain.DisplayParentOnly && line.ParentID != nil {
			continue
		}
		if !showZero && line.Balance.IsZero() {
			continue
		}
		section.Accounts = append(section.Accounts, line)
	}
	return section
}

// CompareBalanceSheets builds two balance sheets and compares their totals.
func (s *statementService) CompareBalanceSheets(ctx context.Context, current, previous domain.BalanceSheetOptions) (*domain.PeriodComparison, error) {
	cur, err := s.BalanceSheet(ctx, current)
	if err != nil {
		return nil, err
	}
	prev, err := s.BalanceSheet(ctx, previous)
	if err != nil {
		return nil, err
	}

	figures := func(r *domain.BalanceSheetReport) map[string]decimal.Decimal {
		return map[string]decimal.Decimal{
			"currentAssets":             r.CurrentAssets.Total,
			"nonCurrentAssets":          r.NonCurrentAssets.Total,
			"uncategorizedAssets":       r.UncategorizedAssets.Total,
			"contraAssets":              r.ContraAssets.Total,
			"totalAssets":               r.TotalAssets,
			"currentLiabilities":        r.CurrentLiabilities.Total,
			"nonCurrentLiabilities":     r.NonCurrentLiabilities.Total,
			"uncategorizedLiabilities":  r.UncategorizedLiabilities.Total,
			"totalLiabilities":          r.TotalLiabilities,
			"equity":                    r.Equity.Total,
			"retainedEarnings":          r.RetainedEarnings,
			"totalEquity":               r.TotalEquity,
			"totalLiabilitiesAndEquity": r.TotalLiabilitiesAndEquity,
		}
	}
	curFigures, prevFigures := figures(cur), figures(prev)
	lines := make(map[string]domain.LineComparison, len(curFigures))
	for name, value := range curFigures {
		lines[name] = domain.NewLineComparison(value, prevFigures[name])
	}
	return &domain.PeriodComparison{Current: cur, Previous: prev, Lines: lines}, nil
}

// ValidateClassification reports whether the chart can produce a meaningful balance sheet.
func (s *statementService) ValidateClassification(ctx context.Context) (*domain.ValidityReport, error) {
	accounts, err := s.coaRepo.ListAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts")
		return nil, apperrors.NewAppError(500, "failed to list accounts", err)
	}

	var counts domain.ClassificationCounts
	for _, account := range accounts {
		if !account.IsActive {
			continue
		}
		switch account.Type {
		case domain.Asset:
			counts.AssetAccounts++
		case domain.Liability:
			counts.LiabilityAccounts++
		case domain.Equity:
			counts.EquityAccounts++
		default:
			continue
		}
		if account.Type == domain.Equity {
			continue
		}
		current := accounting.ClassifyCurrent(account)
		switch {
		case current == nil:
			counts.UnclassifiedAccounts++
		case *current && account.Type == domain.Asset:
			counts.CurrentAssetAccounts++
		case *current:
			counts.CurrentLiabilityAccounts++
		}
	}

	issues := []string{}
	if counts.AssetAccounts == 0 {
		issues = append(issues, "no active asset accounts")
	} else if counts.CurrentAssetAccounts == 0 {
		issues = append(issues, "no asset account is classified as current")
	}
	if counts.LiabilityAccounts == 0 {
		issues = append(issues, "no active liability accounts")
	} else if counts.CurrentLiabilityAccounts == 0 {
		issues = append(issues, "no liability account is classified as current")
	}
	if counts.EquityAccounts == 0 {
		issues = append(issues, "no active equity accounts")
	}
	if counts.UnclassifiedAccounts > 0 {
		issues = append(issues, fmt.Sprintf("%d asset or liability accounts cannot be classified as current or non-current", counts.UnclassifiedAccounts))
	}

	return &domain.ValidityReport{IsValid: len(issues) == 0, Issues: issues, Classification: counts}, nil
}

// IncomeStatement computes the multi-step profit and loss for (from, to].
func (s *statementService) IncomeStatement(ctx context.Context, opts domain.IncomeStatementOptions) (*domain.IncomeStatementReport, error) {
	if opts.From.IsZero() || opts.To.IsZero() {
		return nil, apperrors.NewValidationError("from", "from and to dates are required")
	}
	if opts.To.Before(opts.From) {
		return nil, apperrors.NewValidationError("to", "to date must not be before from date")
	}

	key := fmt.Sprintf("is:%s:%s:%s:%t", opts.From.Format(time.DateOnly), opts.To.Format(time.DateOnly), branchKey(opts.BranchID), opts.ShowZeroBalance)
	return cached(ctx, s.cache, key, func() (*domain.IncomeStatementReport, error) {
		return s.buildIncomeStatement(ctx, opts)
	})
}

func (s *statementService) buildIncomeStatement(ctx context.Context, opts domain.IncomeStatementOptions) (*domain.IncomeStatementReport, error) {
	// Activity is summed over [From, To]; the repository window is exclusive of its start.
	from := opts.From.AddDate(0, 0, -1)
	activity, err := s.reportingRepo.GetAccountActivity(ctx, []domain.AccountType{domain.Revenue, domain.Expense}, &from, opts.To, opts.BranchID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load income statement activity",
			slog.String("from", opts.From.Format(time.DateOnly)), slog.String("to", opts.To.Format(time.DateOnly)))
		return nil, apperrors.NewAppError(500, "failed to load income statement activity", err)
	}

	var sales, cogs, opex, otherIncome, otherExpense, tax []domain.AccountLine
	legacy := domain.LegacyProfit{TotalRevenue: decimal.Zero, TotalExpense: decimal.Zero}
	for _, act := range activity {
		line := activityLine(act)
		code := act.Account.Code
		switch act.Account.Type {
		case domain.Revenue:
			legacy.TotalRevenue = legacy.TotalRevenue.Add(line.Balance)
			switch {
			case accounting.CodeMatchesPrefix(code, "4"):
				sales = append(sales, line)
			case accounting.CodeMatchesPrefix(code, "7"):
				otherIncome = append(otherIncome, line)
			}
		case domain.Expense:
			legacy.TotalExpense = legacy.TotalExpense.Add(line.Balance)
			switch {
			case accounting.CodeMatchesPrefix(code, "5"):
				cogs = append(cogs, line)
			case accounting.CodeMatchesPrefix(code, "6"):
				opex = append(opex, line)
			case accounting.CodeMatchesAny(code, "7", "8"):
				otherExpense = append(otherExpense, line)
			case accounting.CodeMatchesPrefix(code, "9"):
				tax = append(tax, line)
			}
		}
	}
	legacy.NetProfit = legacy.TotalRevenue.Sub(legacy.TotalExpense)
	legacy.IsProfitLegacy = legacy.NetProfit.IsPositive()

	salesTotal := sumBalances(sales)
	section := func(name string, lines []domain.AccountLine) domain.Section {
		for i := range lines {
			lines[i].Percentage = percentOf(lines[i].Balance, salesTotal)
		}
		return newSection(name, lines, domain.DisplayAll, opts.ShowZeroBalance)
	}

	r := &domain.IncomeStatementReport{
		Options:           opts,
		SalesRevenue:      section("Sales Revenue", sales),
		CostOfGoodsSold:   section("Cost of Goods Sold", cogs),
		OperatingExpenses: section("Operating Expenses", opex),
		OtherIncome:       section("Other Income", otherIncome),
		OtherExpense:      section("Other Expense", otherExpense),
		TaxExpense:        section("Tax Expense", tax),
		Legacy:            legacy,
	}
	r.GrossProfit = r.SalesRevenue.Total.Sub(r.CostOfGoodsSold.Total)
	r.OperatingProfit = r.GrossProfit.Sub(r.OperatingExpenses.Total)
	r.ProfitBeforeTax = r.OperatingProfit.Add(r.OtherIncome.Total).Sub(r.OtherExpense.Total)
	r.NetProfit = r.ProfitBeforeTax.Sub(r.TaxExpense.Total)
	r.IsProfit = r.NetProfit.IsPositive()
	r.Margins = domain.Margins{
		Gross:     percentOf(r.GrossProfit, salesTotal),
		Operating: percentOf(r.OperatingProfit, salesTotal),
		Net:       percentOf(r.NetProfit, salesTotal),
	}
	return r, nil
}

func sumBalances(lines []domain.AccountLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Balance)
	}
	return total
}

// percentOf returns part as a percentage of whole, or zero when whole is zero.
func percentOf(part, whole decimal.Decimal) decimal.Decimal {
	if whole.IsZero() {
		return decimal.Zero
	}
	return part.Div(whole).Mul(hundred).Round(2)
}

// AccountEntries lists the entries of one account newest first with totals and the signed balance.
func (s *statementService) AccountEntries(ctx context.Context, filter domain.EntryFilter) (*domain.AccountDrillDown, error) {
	if filter.AccountID == "" {
		return nil, apperrors.NewValidationError("accountID", "account is required")
	}
	if filter.To.IsZero() {
		filter.To = time.Now()
	}
	if filter.From != nil && filter.To.Before(*filter.From) {
		return nil, apperrors.NewValidationError("to", "to date must not be before from date")
	}
	switch {
	case filter.Limit <= 0:
		filter.Limit = defaultDrillDownLimit
	case filter.Limit > maxDrillDownLimit:
		filter.Limit = maxDrillDownLimit
	}

	account, err := s.coaRepo.FindAccountByID(ctx, filter.AccountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load account", slog.String("coa_id", filter.AccountID))
		return nil, err
	}
	entries, next, err := s.entryRepo.ListEntriesByAccount(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list account entries", slog.String("coa_id", filter.AccountID))
		return nil, apperrors.NewAppError(500, "failed to list account entries", err)
	}
	totals, err := s.entryRepo.SumAccountEntries(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to total account entries", slog.String("coa_id", filter.AccountID))
		return nil, apperrors.NewAppError(500, "failed to total account entries", err)
	}

	balance := account.SignedBalance(totals.Debit, totals.Credit)
	if filter.From == nil {
		balance = balance.Add(account.OpeningBalance)
	}
	if entries == nil {
		entries = []domain.JournalEntry{}
	}
	return &domain.AccountDrillDown{
		Account:     *account,
		Entries:     entries,
		TotalDebit:  totals.Debit,
		TotalCredit: totals.Credit,
		Balance:     balance,
		NextToken:   next,
	}, nil
}

// Ratios computes liquidity and leverage as of asOf and margins over [from, asOf].
func (s *statementService) Ratios(ctx context.Context, from, asOf time.Time, branchID *string) (*domain.FinancialRatios, error) {
	bs, err := s.BalanceSheet(ctx, domain.BalanceSheetOptions{AsOf: asOf, BranchID: branchID, Level: domain.DisplayTotalsOnly})
	if err != nil {
		return nil, err
	}
	is, err := s.IncomeStatement(ctx, domain.IncomeStatementOptions{From: from, To: asOf, BranchID: branchID})
	if err != nil {
		return nil, err
	}

	ca, cl := bs.CurrentAssets.Total, bs.CurrentLiabilities.Total
	ratios := &domain.FinancialRatios{
		AsOf:             asOf,
		TotalAssets:      bs.TotalAssets,
		TotalLiabilities: bs.TotalLiabilities,
		TotalEquity:      bs.TotalEquity,
		CurrentRatio:     decimal.Zero,
		DebtToEquity:     decimal.Zero,
		WorkingCapital:   ca.Sub(cl),
		Margins:          is.Margins,
		IsBalanced:       bs.Balance.IsBalanced,
	}
	if cl.IsPositive() {
		ratios.CurrentRatio = ca.Div(cl).Round(2)
	}
	if bs.TotalEquity.IsPositive() {
		ratios.DebtToEquity = bs.TotalLiabilities.Div(bs.TotalEquity).Round(2)
	}
	return ratios, nil
}
