package commands_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/erp_ledger/internal/commands"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/erp_ledger/internal/core/ports/services"
	"github.com/SscSPs/erp_ledger/internal/platform/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockAssetService struct {
	portssvc.AssetSvcFacade
	mock.Mock
}

func (m *mockAssetService) GenerateMonthlyDepreciation(ctx context.Context, period string, userID string) (*domain.DepreciationBatchResult, error) {
	args := m.Called(ctx, period, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DepreciationBatchResult), args.Error(1)
}

type mockStatementService struct {
	portssvc.StatementSvcFacade
	mock.Mock
}

func (m *mockStatementService) BalanceSheet(ctx context.Context, opts domain.BalanceSheetOptions) (*domain.BalanceSheetReport, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalanceSheetReport), args.Error(1)
}

func (m *mockStatementService) IncomeStatement(ctx context.Context, opts domain.IncomeStatementOptions) (*domain.IncomeStatementReport, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.IncomeStatementReport), args.Error(1)
}

func (m *mockStatementService) ValidateClassification(ctx context.Context) (*domain.ValidityReport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ValidityReport), args.Error(1)
}

type harness struct {
	assets     *mockAssetService
	statements *mockStatementService
	released   int
}

func (h *harness) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	factory := func(ctx context.Context, cfg *config.Config) (*portssvc.ServiceContainer, func(), error) {
		return &portssvc.ServiceContainer{Asset: h.assets, Statement: h.statements}, func() { h.released++ }, nil
	}
	root := commands.NewRootCommand(commands.WithConfig(&config.Config{}), commands.WithServiceFactory(factory))
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func newHarness() *harness {
	return &harness{assets: new(mockAssetService), statements: new(mockStatementService)}
}

func TestDepreciate_PrintsBatchResult(t *testing.T) {
	h := newHarness()
	h.assets.On("GenerateMonthlyDepreciation", mock.Anything, "2025-01", "ops").
		Return(&domain.DepreciationBatchResult{Period: "2025-01", Success: 2, Skipped: 1, Errors: []string{}}, nil).Once()

	out, err := h.run(t, "depreciate", "--period", "2025-01", "--user", "ops")
	require.NoError(t, err)

	var result domain.DepreciationBatchResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, 2, result.Success)
	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, 1, h.released)
	h.assets.AssertExpectations(t)
}

func TestDepreciate_FailsWhenAnAssetFails(t *testing.T) {
	h := newHarness()
	h.assets.On("GenerateMonthlyDepreciation", mock.Anything, "2025-01", "ledgerctl").
		Return(&domain.DepreciationBatchResult{Period: "2025-01", Success: 1, Failed: 1, Errors: []string{"FA-2: boom"}}, nil).Once()

	_, err := h.run(t, "depreciate", "--period", "2025-01")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 assets failed")
}

func TestDepreciate_RejectsMalformedPeriod(t *testing.T) {
	h := newHarness()

	_, err := h.run(t, "depreciate", "--period", "2025-13")
	require.Error(t, err)
	assert.Equal(t, 0, h.released, "services are not opened for bad input")
	h.assets.AssertNotCalled(t, "GenerateMonthlyDepreciation", mock.Anything, mock.Anything, mock.Anything)
}

func TestBalanceSheet_PassesFlagsThrough(t *testing.T) {
	h := newHarness()
	asOf := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)
	h.statements.On("BalanceSheet", mock.Anything, mock.MatchedBy(func(o domain.BalanceSheetOptions) bool {
		return o.AsOf.Equal(asOf) && o.BranchID != nil && *o.BranchID == "hq" &&
			o.Level == domain.DisplayTotalsOnly && o.ShowZeroBalance
	})).Return(&domain.BalanceSheetReport{TotalAssets: decimal.NewFromInt(1300)}, nil).Once()

	out, err := h.run(t, "balance-sheet", "--as-of", "2025-01-31", "--branch", "hq", "--level", "totals_only", "--show-zero")
	require.NoError(t, err)
	assert.Contains(t, out, `"totalAssets": "1300"`)
	h.statements.AssertExpectations(t)
}

func TestIncomeStatement_DefaultsFromToStartOfMonth(t *testing.T) {
	h := newHarness()
	h.statements.On("IncomeStatement", mock.Anything, mock.MatchedBy(func(o domain.IncomeStatementOptions) bool {
		return o.From.Equal(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)) &&
			o.To.Equal(time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC)) && o.BranchID == nil
	})).Return(&domain.IncomeStatementReport{}, nil).Once()

	_, err := h.run(t, "income-statement", "--to", "2025-03-20")
	require.NoError(t, err)
	h.statements.AssertExpectations(t)
}

func TestIncomeStatement_ServiceErrorIsReturned(t *testing.T) {
	h := newHarness()
	h.statements.On("IncomeStatement", mock.Anything, mock.Anything).Return(nil, errors.New("db down")).Once()

	_, err := h.run(t, "income-statement", "--from", "2025-01-01", "--to", "2025-01-31")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db down")
}

func TestCOAValidity_FailsOnIssues(t *testing.T) {
	h := newHarness()
	h.statements.On("ValidateClassification", mock.Anything).
		Return(&domain.ValidityReport{IsValid: false, Issues: []string{"no equity accounts"}}, nil).Once()

	out, err := h.run(t, "coa-validity")
	require.Error(t, err)
	assert.Contains(t, out, "no equity accounts")
}
