package services_test

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/erp_ledger/internal/core/ports/services"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockCOARepository is a mock type for the COARepositoryFacade interface
type MockCOARepository struct {
	mock.Mock
}

func (m *MockCOARepository) FindAccountByID(ctx context.Context, accountID string) (*domain.ChartOfAccount, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChartOfAccount), args.Error(1)
}

func (m *MockCOARepository) FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.ChartOfAccount, error) {
	args := m.Called(ctx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.ChartOfAccount), args.Error(1)
}

func (m *MockCOARepository) FindActiveByCode(ctx context.Context, code string) (*domain.ChartOfAccount, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChartOfAccount), args.Error(1)
}

func (m *MockCOARepository) FindFirstActiveByCodePrefix(ctx context.Context, prefix string) (*domain.ChartOfAccount, error) {
	args := m.Called(ctx, prefix)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChartOfAccount), args.Error(1)
}

func (m *MockCOARepository) ListAccounts(ctx context.Context) ([]domain.ChartOfAccount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ChartOfAccount), args.Error(1)
}

// MockEntryRepository is a mock type for the JournalEntryRepositoryFacade interface
type MockEntryRepository struct {
	mock.Mock
}

func (m *MockEntryRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockEntryRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockEntryRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockEntryRepository) LockGroup(ctx context.Context, tx pgx.Tx, key domain.GroupKey) error {
	args := m.Called(ctx, tx, key)
	return args.Error(0)
}

func (m *MockEntryRepository) HasLiveEntries(ctx context.Context, tx pgx.Tx, key domain.GroupKey) (bool, error) {
	args := m.Called(ctx, tx, key)
	return args.Bool(0), args.Error(1)
}

func (m *MockEntryRepository) SoftDeleteGroup(ctx context.Context, tx pgx.Tx, key domain.GroupKey, deletedBy string, at time.Time) (int64, error) {
	args := m.Called(ctx, tx, key, deletedBy, at)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEntryRepository) SoftDeleteBySource(ctx context.Context, tx pgx.Tx, src domain.SourceRef, deletedBy string, at time.Time) (int64, error) {
	args := m.Called(ctx, tx, src, deletedBy, at)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEntryRepository) InsertEntries(ctx context.Context, tx pgx.Tx, entries []domain.JournalEntry) error {
	args := m.Called(ctx, tx, entries)
	return args.Error(0)
}

func (m *MockEntryRepository) ListEntriesBySource(ctx context.Context, src domain.SourceRef) ([]domain.JournalEntry, error) {
	args := m.Called(ctx, src)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}

func (m *MockEntryRepository) ListEntriesByAccount(ctx context.Context, filter domain.EntryFilter) ([]domain.JournalEntry, *string, error) {
	args := m.Called(ctx, filter)
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	if args.Get(0) == nil {
		return nil, next, args.Error(2)
	}
	return args.Get(0).([]domain.JournalEntry), next, args.Error(2)
}

func (m *MockEntryRepository) SumAccountEntries(ctx context.Context, filter domain.EntryFilter) (domain.AccountActivity, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(domain.AccountActivity), args.Error(1)
}

func (m *MockEntryRepository) NextSequence(ctx context.Context, tx pgx.Tx, prefix string, day time.Time) (int, error) {
	args := m.Called(ctx, tx, prefix, day)
	return args.Int(0), args.Error(1)
}

// MockDocumentRepository is a mock type for the DocumentGraphRepositoryFacade interface
type MockDocumentRepository struct {
	mock.Mock
}

func (m *MockDocumentRepository) FindLinks(ctx context.Context, src domain.SourceRef) (*domain.DocumentLinks, error) {
	args := m.Called(ctx, src)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DocumentLinks), args.Error(1)
}

func (m *MockDocumentRepository) FindWarehouse(ctx context.Context, warehouseID string) (*domain.Warehouse, error) {
	args := m.Called(ctx, warehouseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Warehouse), args.Error(1)
}

func (m *MockDocumentRepository) FindUserDefaults(ctx context.Context, userID string) (*domain.UserDefaults, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserDefaults), args.Error(1)
}

func (m *MockDocumentRepository) UpsertLinks(ctx context.Context, tx pgx.Tx, links domain.DocumentLinks) error {
	args := m.Called(ctx, tx, links)
	return args.Error(0)
}

// MockManufacturingRepository is a mock type for the ManufacturingRepositoryFacade interface
type MockManufacturingRepository struct {
	mock.Mock
}

func (m *MockManufacturingRepository) FindManufacturingOrder(ctx context.Context, moID string) (*domain.ManufacturingOrder, error) {
	args := m.Called(ctx, moID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ManufacturingOrder), args.Error(1)
}

func (m *MockManufacturingRepository) MaterialTotals(ctx context.Context, moID string) (domain.MaterialTotals, error) {
	args := m.Called(ctx, moID)
	return args.Get(0).(domain.MaterialTotals), args.Error(1)
}

func (m *MockManufacturingRepository) SumAllocatedCost(ctx context.Context, moID string) (decimal.Decimal, error) {
	args := m.Called(ctx, moID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockManufacturingRepository) RecordMaterialMovement(ctx context.Context, tx pgx.Tx, issue domain.MaterialIssue) error {
	args := m.Called(ctx, tx, issue)
	return args.Error(0)
}

// MockAssetRepository is a mock type for the AssetRepositoryFacade interface
type MockAssetRepository struct {
	mock.Mock
}

func (m *MockAssetRepository) FindAssetByID(ctx context.Context, assetID string) (*domain.FixedAsset, error) {
	args := m.Called(ctx, assetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FixedAsset), args.Error(1)
}

func (m *MockAssetRepository) ListActiveAssets(ctx context.Context) ([]domain.FixedAsset, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FixedAsset), args.Error(1)
}

func (m *MockAssetRepository) FindDepreciationByID(ctx context.Context, depreciationID string) (*domain.AssetDepreciation, error) {
	args := m.Called(ctx, depreciationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AssetDepreciation), args.Error(1)
}

func (m *MockAssetRepository) LockAsset(ctx context.Context, tx pgx.Tx, assetID string) (*domain.FixedAsset, error) {
	args := m.Called(ctx, tx, assetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FixedAsset), args.Error(1)
}

func (m *MockAssetRepository) FindRecordedDepreciation(ctx context.Context, tx pgx.Tx, assetID, period string) (*domain.AssetDepreciation, error) {
	args := m.Called(ctx, tx, assetID, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AssetDepreciation), args.Error(1)
}

func (m *MockAssetRepository) SumRecordedDepreciation(ctx context.Context, tx pgx.Tx, assetID string) (decimal.Decimal, error) {
	args := m.Called(ctx, tx, assetID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockAssetRepository) InsertDepreciation(ctx context.Context, tx pgx.Tx, dep domain.AssetDepreciation) error {
	args := m.Called(ctx, tx, dep)
	return args.Error(0)
}

func (m *MockAssetRepository) MarkDepreciationReversed(ctx context.Context, tx pgx.Tx, depreciationID, userID string, at time.Time) error {
	args := m.Called(ctx, tx, depreciationID, userID, at)
	return args.Error(0)
}

func (m *MockAssetRepository) UpdateAssetAggregates(ctx context.Context, tx pgx.Tx, asset domain.FixedAsset) error {
	args := m.Called(ctx, tx, asset)
	return args.Error(0)
}

func (m *MockAssetRepository) InsertDisposal(ctx context.Context, tx pgx.Tx, disposal domain.AssetDisposal) error {
	args := m.Called(ctx, tx, disposal)
	return args.Error(0)
}

// MockReportingRepository is a mock type for the ReportingRepository interface
type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) GetAccountActivity(ctx context.Context, types []domain.AccountType, from *time.Time, to time.Time, branchID *string) ([]domain.AccountActivity, error) {
	args := m.Called(ctx, types, from, to, branchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountActivity), args.Error(1)
}

// MockAccountResolver is a mock type for the AccountResolverSvc interface
type MockAccountResolver struct {
	mock.Mock
}

func (m *MockAccountResolver) Resolve(ctx context.Context, req domain.AccountRequest) (*domain.ChartOfAccount, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChartOfAccount), args.Error(1)
}

// stubTags resolves every document to fixed tags.
type stubTags struct {
	tags domain.Dimensions
}

func (s stubTags) Resolve(_ context.Context, _ domain.DocumentLinks, dim domain.Dimension) *string {
	return s.tags.Get(dim)
}

func (s stubTags) ResolveAll(context.Context, domain.DocumentLinks) domain.Dimensions {
	return s.tags
}

// memoryCache is a StatementCache that round-trips values through JSON like the Redis cache does.
type memoryCache struct {
	mu         sync.Mutex
	values     map[string][]byte
	generation int64
	gets       int
	hits       int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{values: map[string][]byte{}}
}

func (c *memoryCache) Get(_ context.Context, key string, dest any) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	raw, ok := c.values[key]
	if !ok || json.Unmarshal(raw, dest) != nil {
		return false
	}
	c.hits++
	return true
}

func (c *memoryCache) Set(_ context.Context, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[key] = raw
}

func (c *memoryCache) Generation(context.Context) int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generation
}

func (c *memoryCache) Invalidate(context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generation++
}

var (
	_ portsrepo.COARepositoryFacade           = (*MockCOARepository)(nil)
	_ portsrepo.JournalEntryRepositoryFacade  = (*MockEntryRepository)(nil)
	_ portsrepo.DocumentGraphRepositoryFacade = (*MockDocumentRepository)(nil)
	_ portsrepo.ManufacturingRepositoryFacade = (*MockManufacturingRepository)(nil)
	_ portsrepo.AssetRepositoryFacade         = (*MockAssetRepository)(nil)
	_ portsrepo.ReportingRepository           = (*MockReportingRepository)(nil)
	_ portsrepo.StatementCache                = (*memoryCache)(nil)
	_ portssvc.AccountResolverSvc             = (*MockAccountResolver)(nil)
	_ portssvc.TagResolverSvc                 = stubTags{}
)

func strPtr(s string) *string { return &s }

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func account(id, code string, t domain.AccountType) *domain.ChartOfAccount {
	return &domain.ChartOfAccount{ID: id, Code: code, Name: code, Type: t, IsActive: true}
}
