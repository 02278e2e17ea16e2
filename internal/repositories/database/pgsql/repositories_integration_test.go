//go:build integration

package pgsql_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/erp_ledger/internal/repositories/cache"
	"github.com/SscSPs/erp_ledger/internal/repositories/database/pgsql"
	"github.com/SscSPs/erp_ledger/pkg/database"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

type RepositoriesIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *tcpostgres.PostgresContainer
	pool      *pgxpool.Pool
	repos     portsrepo.RepositoryProvider
}

func (s *RepositoriesIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()

	container, err := tcpostgres.Run(s.ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("ledger"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	dsn, err := container.ConnectionString(s.ctx, "sslmode=disable")
	s.Require().NoError(err)

	applied, err := database.RunMigrations(dsn, "file://../../../../migrations", slog.Default())
	s.Require().NoError(err)
	s.Require().True(applied)

	s.pool, err = database.NewPgxPool(s.ctx, dsn, true)
	s.Require().NoError(err)
	s.repos = pgsql.NewRepositoryProvider(s.pool, cache.NoopStatementCache{})
}

func (s *RepositoriesIntegrationSuite) TearDownSuite() {
	database.ClosePgxPool(s.pool)
	if s.container != nil {
		s.NoError(s.container.Terminate(s.ctx))
	}
}

func (s *RepositoriesIntegrationSuite) SetupTest() {
	_, err := s.pool.Exec(s.ctx, `
		TRUNCATE journal_entries, document_links, document_sequences, material_movements,
			asset_disposals, asset_depreciations, assets, manufacturing_orders, warehouses,
			user_defaults, chart_of_accounts CASCADE`)
	s.Require().NoError(err)

	_, err = s.pool.Exec(s.ctx, `
		INSERT INTO chart_of_accounts (coa_id, code, name, account_type, is_active, opening_balance) VALUES
			('cash', '1-1-1-1', 'Cash', 'ASSET', TRUE, 100),
			('bank', '1112.01', 'Bank', 'ASSET', TRUE, 0),
			('old-bank', '1112.00', 'Old bank', 'ASSET', FALSE, 0),
			('ap', '2110', 'Payables', 'LIABILITY', TRUE, 0),
			('sales', '4100', 'Sales', 'REVENUE', TRUE, 0)`)
	s.Require().NoError(err)
}

func (s *RepositoriesIntegrationSuite) entry(id, coaID string, date time.Time, debit, credit string, key domain.GroupKey) domain.JournalEntry {
	branch := "hq"
	return domain.JournalEntry{
		ID:          id,
		COAID:       coaID,
		Date:        date,
		Debit:       decimal.RequireFromString(debit),
		Credit:      decimal.RequireFromString(credit),
		JournalType: key.JournalType,
		Source:      key.Source,
		Tags:        domain.Dimensions{BranchID: &branch},
		Reference:   "REF-" + key.Source.ID,
		AuditFields: domain.AuditFields{CreatedAt: date, CreatedBy: "u1", LastUpdatedAt: date, LastUpdatedBy: "u1"},
	}
}

// post writes one balanced cash/sales group in its own transaction.
func (s *RepositoriesIntegrationSuite) post(sourceID string, date time.Time, amount string) domain.GroupKey {
	key := domain.GroupKey{
		Source:      domain.SourceRef{Kind: domain.SourceCashBankTransaction, ID: sourceID},
		JournalType: domain.JournalCashBank,
	}
	repo := s.repos.EntryRepo
	tx, err := repo.Begin(s.ctx)
	s.Require().NoError(err)
	defer repo.Rollback(s.ctx, tx)

	s.Require().NoError(repo.LockGroup(s.ctx, tx, key))
	s.Require().NoError(repo.InsertEntries(s.ctx, tx, []domain.JournalEntry{
		s.entry(sourceID+"-d", "cash", date, amount, "0", key),
		s.entry(sourceID+"-c", "sales", date, "0", amount, key),
	}))
	s.Require().NoError(repo.Commit(s.ctx, tx))
	return key
}

func (s *RepositoriesIntegrationSuite) TestCOA_NormalizedCodeLookup() {
	account, err := s.repos.COARepo.FindActiveByCode(s.ctx, "1111")
	s.Require().NoError(err)
	s.Equal("cash", account.ID)

	account, err = s.repos.COARepo.FindFirstActiveByCodePrefix(s.ctx, "1112")
	s.Require().NoError(err)
	s.Equal("bank", account.ID, "inactive accounts are never candidates")

	_, err = s.repos.COARepo.FindActiveByCode(s.ctx, "9999")
	s.ErrorIs(err, apperrors.ErrNotFound)

	byID, err := s.repos.COARepo.FindAccountsByIDs(s.ctx, []string{"cash", "missing"})
	s.Require().NoError(err)
	s.Len(byID, 1)
	s.True(byID["cash"].OpeningBalance.Equal(decimal.NewFromInt(100)))
}

func (s *RepositoriesIntegrationSuite) TestEntries_IdempotencyPrimitives() {
	day := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	key := s.post("cb-1", day, "250")
	repo := s.repos.EntryRepo

	tx, err := repo.Begin(s.ctx)
	s.Require().NoError(err)
	defer repo.Rollback(s.ctx, tx)

	live, err := repo.HasLiveEntries(s.ctx, tx, key)
	s.Require().NoError(err)
	s.True(live)

	deleted, err := repo.SoftDeleteGroup(s.ctx, tx, key, "u2", day)
	s.Require().NoError(err)
	s.Equal(int64(2), deleted)

	live, err = repo.HasLiveEntries(s.ctx, tx, key)
	s.Require().NoError(err)
	s.False(live)
	s.Require().NoError(repo.Commit(s.ctx, tx))

	entries, err := repo.ListEntriesBySource(s.ctx, key.Source)
	s.Require().NoError(err)
	s.Empty(entries, "soft-deleted entries are not listed")
}

func (s *RepositoriesIntegrationSuite) TestEntries_RejectsOneSidedViolation() {
	key := domain.GroupKey{Source: domain.SourceRef{Kind: domain.SourceDeposit, ID: "d-1"}, JournalType: domain.JournalDeposit}
	repo := s.repos.EntryRepo
	tx, err := repo.Begin(s.ctx)
	s.Require().NoError(err)
	defer repo.Rollback(s.ctx, tx)

	bad := s.entry("bad", "cash", time.Now(), "10", "10", key)
	s.Error(repo.InsertEntries(s.ctx, tx, []domain.JournalEntry{bad}))
}

func (s *RepositoriesIntegrationSuite) TestEntries_NextSequencePerPrefixAndDay() {
	repo := s.repos.EntryRepo
	day := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)

	tx, err := repo.Begin(s.ctx)
	s.Require().NoError(err)
	defer repo.Rollback(s.ctx, tx)

	for want := 1; want <= 3; want++ {
		got, err := repo.NextSequence(s.ctx, tx, "CB", day)
		s.Require().NoError(err)
		s.Equal(want, got)
	}
	other, err := repo.NextSequence(s.ctx, tx, "TRF", day)
	s.Require().NoError(err)
	s.Equal(1, other)
	nextDay, err := repo.NextSequence(s.ctx, tx, "CB", day.AddDate(0, 0, 1))
	s.Require().NoError(err)
	s.Equal(1, nextDay)
}

func (s *RepositoriesIntegrationSuite) TestEntries_AccountDrillDownPages() {
	for i, day := range []int{3, 5, 7} {
		s.post("cb-"+string(rune('a'+i)), time.Date(2025, 1, day, 0, 0, 0, 0, time.UTC), "100")
	}
	filter := domain.EntryFilter{AccountID: "cash", To: time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC), Limit: 2}

	first, next, err := s.repos.EntryRepo.ListEntriesByAccount(s.ctx, filter)
	s.Require().NoError(err)
	s.Require().Len(first, 2)
	s.Require().NotNil(next)
	s.Equal(7, first[0].Date.Day(), "newest first")

	filter.NextToken = next
	second, next, err := s.repos.EntryRepo.ListEntriesByAccount(s.ctx, filter)
	s.Require().NoError(err)
	s.Len(second, 1)
	s.Nil(next)
	s.Equal(3, second[0].Date.Day())

	totals, err := s.repos.EntryRepo.SumAccountEntries(s.ctx, filter)
	s.Require().NoError(err)
	s.True(totals.Debit.Equal(decimal.NewFromInt(300)))
}

func (s *RepositoriesIntegrationSuite) TestReporting_ActivityWindowAndBranch() {
	s.post("jan", time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), "100")
	s.post("feb", time.Date(2025, 2, 15, 0, 0, 0, 0, time.UTC), "40")

	to := time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC)
	all, err := s.repos.ReportingRepo.GetAccountActivity(s.ctx, []domain.AccountType{domain.Asset}, nil, to, nil)
	s.Require().NoError(err)
	s.Require().Len(all, 2, "active assets are listed even without activity")
	byID := make(map[string]domain.AccountActivity, len(all))
	for _, a := range all {
		byID[a.Account.ID] = a
	}
	s.True(byID["cash"].Debit.Equal(decimal.NewFromInt(140)))
	s.True(byID["bank"].Debit.IsZero())

	from := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)
	feb, err := s.repos.ReportingRepo.GetAccountActivity(s.ctx, []domain.AccountType{domain.Revenue}, &from, to, nil)
	s.Require().NoError(err)
	s.Require().Len(feb, 1)
	s.True(feb[0].Credit.Equal(decimal.NewFromInt(40)))

	other := "branch-2"
	none, err := s.repos.ReportingRepo.GetAccountActivity(s.ctx, []domain.AccountType{domain.Revenue}, nil, to, &other)
	s.Require().NoError(err)
	s.True(none[0].Credit.IsZero())
}

func (s *RepositoriesIntegrationSuite) TestDocumentGraph_LinksRoundTrip() {
	invoice := domain.SourceRef{Kind: domain.SourcePurchaseInvoice, ID: "pi-1"}
	mo := "mo-1"
	dept := "ops"
	links := domain.DocumentLinks{
		Source:               domain.SourceRef{Kind: domain.SourceVendorPayment, ID: "vp-1"},
		Tags:                 domain.Dimensions{DepartmentID: &dept},
		ManufacturingOrderID: &mo,
		InvoiceRef:           &invoice,
		CreatedBy:            "u1",
	}

	tx, err := s.repos.EntryRepo.Begin(s.ctx)
	s.Require().NoError(err)
	s.Require().NoError(s.repos.DocumentRepo.UpsertLinks(s.ctx, tx, links))
	s.Require().NoError(s.repos.DocumentRepo.UpsertLinks(s.ctx, tx, links))
	s.Require().NoError(s.repos.EntryRepo.Commit(s.ctx, tx))

	got, err := s.repos.DocumentRepo.FindLinks(s.ctx, links.Source)
	s.Require().NoError(err)
	s.Equal(links, *got)

	_, err = s.repos.DocumentRepo.FindWarehouse(s.ctx, "nowhere")
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *RepositoriesIntegrationSuite) TestAssets_DepreciationLifecycle() {
	_, err := s.pool.Exec(s.ctx, `
		INSERT INTO assets (asset_id, code, name, purchase_cost, salvage_value, monthly_depreciation, purchase_date, book_value)
		VALUES ('a-1', 'FA-001', 'Press', 12000, 1000, 1000, '2024-12-01', 12000)`)
	s.Require().NoError(err)
	repo := s.repos.AssetRepo
	now := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)

	tx, err := s.repos.EntryRepo.Begin(s.ctx)
	s.Require().NoError(err)
	defer s.repos.EntryRepo.Rollback(s.ctx, tx)

	asset, err := repo.LockAsset(s.ctx, tx, "a-1")
	s.Require().NoError(err)
	s.True(asset.UsageDate.IsZero())

	_, err = repo.FindRecordedDepreciation(s.ctx, tx, "a-1", "2025-01")
	s.ErrorIs(err, apperrors.ErrNotFound)

	dep := domain.AssetDepreciation{
		ID: "dep-1", AssetID: "a-1", Period: "2025-01", Date: now,
		Amount: decimal.NewFromInt(1000), AccumulatedTotal: decimal.NewFromInt(1000), BookValue: decimal.NewFromInt(11000),
		Reference: "DEP-202501-FA-001", Status: domain.DepreciationRecorded,
		AuditFields: domain.AuditFields{CreatedAt: now, CreatedBy: "u1", LastUpdatedAt: now, LastUpdatedBy: "u1"},
	}
	s.Require().NoError(repo.InsertDepreciation(s.ctx, tx, dep))

	duplicate := dep
	duplicate.ID = "dep-2"
	s.Require().NoError(repo.MarkDepreciationReversed(s.ctx, tx, "dep-1", "u1", now))
	s.Require().NoError(repo.InsertDepreciation(s.ctx, tx, duplicate), "a reversed month may be recorded again")

	total, err := repo.SumRecordedDepreciation(s.ctx, tx, "a-1")
	s.Require().NoError(err)
	s.True(total.Equal(decimal.NewFromInt(1000)))

	asset.Recompute(total)
	s.Require().NoError(repo.UpdateAssetAggregates(s.ctx, tx, *asset))
	s.Require().NoError(s.repos.EntryRepo.Commit(s.ctx, tx))

	stored, err := repo.FindAssetByID(s.ctx, "a-1")
	s.Require().NoError(err)
	s.True(stored.BookValue.Equal(decimal.NewFromInt(11000)))

	active, err := repo.ListActiveAssets(s.ctx)
	s.Require().NoError(err)
	s.Len(active, 1)

	tx, err = s.repos.EntryRepo.Begin(s.ctx)
	s.Require().NoError(err)
	defer s.repos.EntryRepo.Rollback(s.ctx, tx)
	again := dep
	again.ID = "dep-3"
	s.ErrorIs(repo.InsertDepreciation(s.ctx, tx, again), apperrors.ErrDuplicate)
}

func TestRepositoriesIntegration(t *testing.T) {
	suite.Run(t, new(RepositoriesIntegrationSuite))
}
