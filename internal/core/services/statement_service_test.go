package services_test

import (
	"context"
	"slices"
	"testing"
	"time"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/erp_ledger/internal/core/ports/services"
	"github.com/SscSPs/erp_ledger/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type StatementServiceTestSuite struct {
	suite.Suite
	coaRepo       *MockCOARepository
	entryRepo     *MockEntryRepository
	reportingRepo *MockReportingRepository
	cache         *memoryCache
	service       portssvc.StatementSvcFacade
	ctx           context.Context
}

func (suite *StatementServiceTestSuite) SetupTest() {
	suite.coaRepo = new(MockCOARepository)
	suite.entryRepo = new(MockEntryRepository)
	suite.reportingRepo = new(MockReportingRepository)
	suite.cache = newMemoryCache()
	suite.ctx = context.Background()
	suite.service = services.NewStatementService(portsrepo.RepositoryProvider{
		COARepo:        suite.coaRepo,
		EntryRepo:      suite.entryRepo,
		ReportingRepo:  suite.reportingRepo,
		StatementCache: suite.cache,
	})
}

var asOf = time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)

func activity(acc *domain.ChartOfAccount, debit, credit string) domain.AccountActivity {
	return domain.AccountActivity{Account: *acc, Debit: dec(debit), Credit: dec(credit)}
}

func positionTypes(types []domain.AccountType) bool {
	return slices.Contains(types, domain.Asset)
}

func profitTypes(types []domain.AccountType) bool {
	return slices.Contains(types, domain.Revenue) && !slices.Contains(types, domain.Asset)
}

func noFrom(from *time.Time) bool { return from == nil }

// expectPositions sets up balance sheet accounts with the given equity credit.
func (suite *StatementServiceTestSuite) expectPositions(equityCredit string) *mock.Call {
	parent := account("cash-parent", "1110", domain.Asset)
	cash := account("cash", "1111", domain.Asset)
	cash.ParentID = strPtr("cash-parent")
	building := account("bldg", "1210", domain.Asset)
	untyped := account("misc", "1500", domain.Asset)
	contra := account("accum", "1590", domain.ContraAsset)
	ap := account("ap", "2110", domain.Liability)
	loan := account("loan", "2210", domain.Liability)
	capital := account("capital", "3100", domain.Equity)

	return suite.reportingRepo.On("GetAccountActivity", mock.Anything, mock.MatchedBy(positionTypes), mock.MatchedBy(noFrom), mock.Anything, mock.Anything).
		Return([]domain.AccountActivity{
			activity(parent, "0", "0"),
			activity(cash, "1000", "200"),
			activity(building, "500", "0"),
			activity(untyped, "100", "0"),
			activity(contra, "0", "100"),
			activity(ap, "0", "300"),
			activity(loan, "0", "200"),
			activity(capital, "0", equityCredit),
		}, nil)
}

func (suite *StatementServiceTestSuite) expectRetainedEarnings() *mock.Call {
	return suite.reportingRepo.On("GetAccountActivity", mock.Anything, mock.MatchedBy(profitTypes), mock.MatchedBy(noFrom), mock.Anything, mock.Anything).
		Return([]domain.AccountActivity{
			activity(account("sales", "4100", domain.Revenue), "0", "400"),
			activity(account("cogs", "5100", domain.Expense), "100", "0"),
		}, nil)
}

func (suite *StatementServiceTestSuite) TestBalanceSheet_ClassifiesAndBalances() {
	suite.expectPositions("500")
	suite.expectRetainedEarnings()

	r, err := suite.service.BalanceSheet(suite.ctx, domain.BalanceSheetOptions{AsOf: asOf})

	suite.Require().NoError(err)
	suite.True(r.CurrentAssets.Total.Equal(dec("800")))
	suite.True(r.NonCurrentAssets.Total.Equal(dec("500")))
	suite.True(r.UncategorizedAssets.Total.Equal(dec("100")))
	suite.True(r.ContraAssets.Total.Equal(dec("100")))
	suite.True(r.TotalAssets.Equal(dec("1300")))
	suite.True(r.CurrentLiabilities.Total.Equal(dec("300")))
	suite.True(r.NonCurrentLiabilities.Total.Equal(dec("200")))
	suite.True(r.RetainedEarnings.Equal(dec("300")))
	suite.True(r.TotalEquity.Equal(dec("800")))
	suite.True(r.TotalLiabilitiesAndEquity.Equal(r.TotalAssets))
	suite.True(r.Balance.IsBalanced)
	suite.True(r.Balance.BalancedBeforeAdjustment)
	suite.False(r.Balance.WasAdjusted)
	suite.True(r.Balance.PlugAmount.IsZero())
	suite.Equal(domain.DisplayAll, r.Options.Level)
}

func (suite *StatementServiceTestSuite) TestBalanceSheet_PlugsDifferenceIntoRetainedEarnings() {
	suite.expectPositions("400")
	suite.expectRetainedEarnings()

	r, err := suite.service.BalanceSheet(suite.ctx, domain.BalanceSheetOptions{AsOf: asOf})

	suite.Require().NoError(err)
	suite.True(r.Balance.WasAdjusted)
	suite.True(r.Balance.IsBalanced)
	suite.False(r.Balance.BalancedBeforeAdjustment)
	suite.True(r.Balance.DifferenceBeforeAdjustment.Equal(dec("100")))
	suite.True(r.Balance.PlugAmount.Equal(dec("100")))
	suite.True(r.RetainedEarnings.Equal(dec("400")))
	suite.True(r.TotalLiabilitiesAndEquity.Equal(r.TotalAssets))
}

func (suite *StatementServiceTestSuite) TestBalanceSheet_DisplayOptionsKeepTotals() {
	suite.expectPositions("500")
	suite.expectRetainedEarnings()

	all, err := suite.service.BalanceSheet(suite.ctx, domain.BalanceSheetOptions{AsOf: asOf, ShowZeroBalance: true})
	suite.Require().NoError(err)
	suite.Len(all.CurrentAssets.Accounts, 2)

	nonZero, err := suite.service.BalanceSheet(suite.ctx, domain.BalanceSheetOptions{AsOf: asOf})
	suite.Require().NoError(err)
	suite.Len(nonZero.CurrentAssets.Accounts, 1)
	suite.Equal("cash", nonZero.CurrentAssets.Accounts[0].AccountID)

	parents, err := suite.service.BalanceSheet(suite.ctx, domain.BalanceSheetOptions{AsOf: asOf, Level: domain.DisplayParentOnly, ShowZeroBalance: true})
	suite.Require().NoError(err)
	suite.Len(parents.CurrentAssets.Accounts, 1)
	suite.Equal("cash-parent", parents.CurrentAssets.Accounts[0].AccountID)

	totals, err := suite.service.BalanceSheet(suite.ctx, domain.BalanceSheetOptions{AsOf: asOf, Level: domain.DisplayTotalsOnly})
	suite.Require().NoError(err)
	suite.Empty(totals.CurrentAssets.Accounts)

	for _, r := range []*domain.BalanceSheetReport{all, nonZero, parents, totals} {
		suite.True(r.CurrentAssets.Total.Equal(dec("800")))
		suite.True(r.TotalAssets.Equal(dec("1300")))
	}
}

func (suite *StatementServiceTestSuite) TestBalanceSheet_CacheHitUntilInvalidated() {
	suite.expectPositions("500").Twice()
	suite.expectRetainedEarnings().Twice()
	opts := domain.BalanceSheetOptions{AsOf: asOf}

	first, err := suite.service.BalanceSheet(suite.ctx, opts)
	suite.Require().NoError(err)
	second, err := suite.service.BalanceSheet(suite.ctx, opts)
	suite.Require().NoError(err)

	suite.Equal(1, suite.cache.hits)
	suite.True(first.TotalAssets.Equal(second.TotalAssets))
	suite.reportingRepo.AssertNumberOfCalls(suite.T(), "GetAccountActivity", 2)

	suite.cache.Invalidate(suite.ctx)
	_, err = suite.service.BalanceSheet(suite.ctx, opts)
	suite.Require().NoError(err)
	suite.reportingRepo.AssertNumberOfCalls(suite.T(), "GetAccountActivity", 4)
}

func (suite *StatementServiceTestSuite) TestBalanceSheet_RejectsUnknownLevel() {
	_, err := suite.service.BalanceSheet(suite.ctx, domain.BalanceSheetOptions{AsOf: asOf, Level: "flat"})
	suite.Require().Error(err)

	_, err = suite.service.BalanceSheet(suite.ctx, domain.BalanceSheetOptions{})
	suite.Require().Error(err)
}

func (suite *StatementServiceTestSuite) expectIncomeActivity() {
	suite.reportingRepo.On("GetAccountActivity", mock.Anything, mock.MatchedBy(profitTypes),
		mock.MatchedBy(func(from *time.Time) bool { return from != nil }), mock.Anything, mock.Anything).
		Return([]domain.AccountActivity{
			activity(account("sales", "4100", domain.Revenue), "0", "1000"),
			activity(account("returns", "4200", domain.Revenue), "0", "0"),
			activity(account("cogs", "5100", domain.Expense), "600", "0"),
			activity(account("salaries", "6100", domain.Expense), "200", "0"),
			activity(account("interest", "7100", domain.Revenue), "0", "50"),
			activity(account("fx-loss", "8100", domain.Expense), "30", "0"),
			activity(account("tax", "9100", domain.Expense), "44", "0"),
			activity(account("misc", "R-99", domain.Revenue), "0", "10"),
		}, nil)
}

func (suite *StatementServiceTestSuite) TestIncomeStatement_MultiStep() {
	suite.expectIncomeActivity()

	r, err := suite.service.IncomeStatement(suite.ctx, domain.IncomeStatementOptions{
		From: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		To:   asOf,
	})

	suite.Require().NoError(err)
	suite.True(r.SalesRevenue.Total.Equal(dec("1000")))
	suite.Len(r.SalesRevenue.Accounts, 1, "zero-activity accounts are not listed")
	suite.True(r.GrossProfit.Equal(dec("400")))
	suite.True(r.OperatingProfit.Equal(dec("200")))
	suite.True(r.ProfitBeforeTax.Equal(dec("220")))
	suite.True(r.NetProfit.Equal(dec("176")))
	suite.True(r.IsProfit)
	suite.True(r.Margins.Gross.Equal(dec("40")))
	suite.True(r.Margins.Operating.Equal(dec("20")))
	suite.True(r.Margins.Net.Equal(dec("17.6")))
	suite.True(r.CostOfGoodsSold.Accounts[0].Percentage.Equal(dec("60")))

	suite.True(r.Legacy.TotalRevenue.Equal(dec("1060")))
	suite.True(r.Legacy.TotalExpense.Equal(dec("874")))
	suite.True(r.Legacy.NetProfit.Equal(dec("186")))
	suite.True(r.Legacy.IsProfitLegacy)
}

func (suite *StatementServiceTestSuite) TestIncomeStatement_RejectsReversedRange() {
	_, err := suite.service.IncomeStatement(suite.ctx, domain.IncomeStatementOptions{From: asOf, To: asOf.AddDate(0, -1, 0)})
	suite.Require().Error(err)
}

func (suite *StatementServiceTestSuite) TestAccountEntries_SignedBalanceWithOpening() {
	ap := account("ap", "2110", domain.Liability)
	ap.OpeningBalance = dec("100")
	suite.coaRepo.On("FindAccountByID", mock.Anything, "ap").Return(ap, nil)
	next := "token-2"
	suite.entryRepo.On("ListEntriesByAccount", mock.Anything, mock.MatchedBy(func(f domain.EntryFilter) bool {
		return f.AccountID == "ap" && f.Limit == 50
	})).Return([]domain.JournalEntry{{ID: "je-2"}, {ID: "je-1"}}, &next, nil)
	suite.entryRepo.On("SumAccountEntries", mock.Anything, mock.Anything).Return(domain.AccountActivity{
		Account: *ap, Debit: dec("40"), Credit: dec("340"),
	}, nil)

	r, err := suite.service.AccountEntries(suite.ctx, domain.EntryFilter{AccountID: "ap", To: asOf})

	suite.Require().NoError(err)
	suite.Len(r.Entries, 2)
	suite.True(r.Balance.Equal(dec("400")))
	suite.Equal("token-2", *r.NextToken)
}

func (suite *StatementServiceTestSuite) TestRatios() {
	suite.expectPositions("500")
	suite.expectRetainedEarnings()
	suite.expectIncomeActivity()

	r, err := suite.service.Ratios(suite.ctx, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), asOf, nil)

	suite.Require().NoError(err)
	suite.True(r.CurrentRatio.Equal(dec("2.67")))
	suite.True(r.WorkingCapital.Equal(dec("500")))
	suite.True(r.DebtToEquity.Equal(dec("500").Div(dec("800")).Round(2)))
	suite.True(r.Margins.Gross.Equal(dec("40")))
	suite.True(r.IsBalanced)
}

func (suite *StatementServiceTestSuite) TestValidateClassification_EmptyChart() {
	suite.coaRepo.On("ListAccounts", mock.Anything).Return([]domain.ChartOfAccount{}, nil)

	r, err := suite.service.ValidateClassification(suite.ctx)

	suite.Require().NoError(err)
	suite.False(r.IsValid)
	suite.Len(r.Issues, 3)
	suite.Equal(domain.ClassificationCounts{}, r.Classification)
}

func (suite *StatementServiceTestSuite) TestValidateClassification_CountsAndUnclassified() {
	current := true
	explicit := account("explicit", "1500", domain.Asset)
	explicit.IsCurrent = &current
	inactive := account("old", "9999", domain.Asset)
	inactive.IsActive = false
	suite.coaRepo.On("ListAccounts", mock.Anything).Return([]domain.ChartOfAccount{
		*account("cash", "1111", domain.Asset),
		*explicit,
		*account("misc", "1600", domain.Asset),
		*account("ap", "2110", domain.Liability),
		*account("capital", "3100", domain.Equity),
		*account("sales", "4100", domain.Revenue),
		*inactive,
	}, nil)

	r, err := suite.service.ValidateClassification(suite.ctx)

	suite.Require().NoError(err)
	suite.Equal(domain.ClassificationCounts{
		AssetAccounts:            3,
		CurrentAssetAccounts:     2,
		LiabilityAccounts:        1,
		CurrentLiabilityAccounts: 1,
		EquityAccounts:           1,
		UnclassifiedAccounts:     1,
	}, r.Classification)
	suite.False(r.IsValid)
	suite.Len(r.Issues, 1)
}

func (suite *StatementServiceTestSuite) TestCompareBalanceSheets_ZeroPreviousHasZeroPercentage() {
	suite.expectPositions("500")
	suite.expectRetainedEarnings()

	cmp, err := suite.service.CompareBalanceSheets(suite.ctx,
		domain.BalanceSheetOptions{AsOf: asOf},
		domain.BalanceSheetOptions{AsOf: asOf.AddDate(0, -1, 0)})

	suite.Require().NoError(err)
	line := cmp.Lines["totalAssets"]
	suite.True(line.Change.IsZero())
	suite.True(line.Percentage.IsZero())

	uncategorizedLiabilities := cmp.Lines["uncategorizedLiabilities"]
	suite.True(uncategorizedLiabilities.Previous.IsZero())
	suite.True(uncategorizedLiabilities.Percentage.Equal(decimal.Zero))
}

func TestStatementServiceTestSuite(t *testing.T) {
	suite.Run(t, new(StatementServiceTestSuite))
}
