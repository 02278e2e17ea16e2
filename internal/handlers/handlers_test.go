package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/erp_ledger/internal/core/ports/services"
	"github.com/SscSPs/erp_ledger/internal/dto"
	"github.com/SscSPs/erp_ledger/internal/handlers"
	"github.com/SscSPs/erp_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock PostingService ---
type MockPostingService struct {
	portssvc.PostingSvcFacade
	mock.Mock
}

func (m *MockPostingService) result(args mock.Arguments) (*domain.PostingResult, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PostingResult), args.Error(1)
}

func (m *MockPostingService) PostPurchaseInvoice(ctx context.Context, doc domain.PurchaseInvoice) (*domain.PostingResult, error) {
	return m.result(m.Called(ctx, doc))
}

func (m *MockPostingService) PostMaterialReturn(ctx context.Context, doc domain.MaterialIssue) (*domain.PostingResult, error) {
	return m.result(m.Called(ctx, doc))
}

func (m *MockPostingService) ListEntriesBySource(ctx context.Context, src domain.SourceRef) ([]domain.JournalEntry, error) {
	args := m.Called(ctx, src)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}

// --- Mock AssetService ---
type MockAssetService struct {
	portssvc.AssetSvcFacade
	mock.Mock
}

func (m *MockAssetService) PostDisposal(ctx context.Context, disposal domain.AssetDisposal) (*domain.PostingResult, error) {
	args := m.Called(ctx, disposal)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PostingResult), args.Error(1)
}

func (m *MockAssetService) ReverseDepreciation(ctx context.Context, depreciationID string, userID string) (*domain.FixedAsset, error) {
	args := m.Called(ctx, depreciationID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FixedAsset), args.Error(1)
}

// --- Mock StatementService ---
type MockStatementService struct {
	portssvc.StatementSvcFacade
	mock.Mock
}

func (m *MockStatementService) BalanceSheet(ctx context.Context, opts domain.BalanceSheetOptions) (*domain.BalanceSheetReport, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalanceSheetReport), args.Error(1)
}

func (m *MockStatementService) AccountEntries(ctx context.Context, filter domain.EntryFilter) (*domain.AccountDrillDown, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountDrillDown), args.Error(1)
}

// --- Test Suite ---
type HandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	postingSvc    *MockPostingService
	assetSvc      *MockAssetService
	statementSvc  *MockStatementService
	jwtSecret     string
	requestUserID string
}

func (suite *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.requestUserID = "user-42"

	suite.postingSvc = new(MockPostingService)
	suite.assetSvc = new(MockAssetService)
	suite.statementSvc = new(MockStatementService)

	suite.router = gin.New()
	v1 := suite.router.Group("/api/v1", middleware.AuthMiddleware(suite.jwtSecret))
	handlers.RegisterPostingRoutes(v1, suite.postingSvc)
	handlers.RegisterAssetRoutes(v1, suite.assetSvc)
	handlers.RegisterReportingRoutes(v1, suite.statementSvc)
}

// generateTestToken creates a signed JWT for the request user.
func (suite *HandlerTestSuite) generateTestToken() string {
	claims := jwt.RegisteredClaims{
		Issuer:    "ledger-test",
		Subject:   suite.requestUserID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(suite.jwtSecret))
	suite.Require().NoError(err)
	return signed
}

func (suite *HandlerTestSuite) do(method, url string, body any) *httptest.ResponseRecorder {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		suite.Require().NoError(err)
	}
	req, _ := http.NewRequest(method, url, bytes.NewReader(payload))
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken())
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func invoiceBody() map[string]any {
	return map[string]any{
		"id":    "pi-1",
		"date":  "2025-01-15T00:00:00Z",
		"total": "1100",
		"tax":   "100",
	}
}

func postedResult(key domain.GroupKey) *domain.PostingResult {
	return &domain.PostingResult{
		Status:      domain.PostingPosted,
		Source:      key.Source,
		JournalType: key.JournalType,
		Entries: []domain.JournalEntry{
			{ID: "e1", COAID: "inv", Debit: decimal.NewFromInt(1000), Credit: decimal.Zero, Source: key.Source, JournalType: key.JournalType},
			{ID: "e2", COAID: "ap", Debit: decimal.Zero, Credit: decimal.NewFromInt(1000), Source: key.Source, JournalType: key.JournalType},
		},
	}
}

var invoiceKey = domain.GroupKey{
	Source:      domain.SourceRef{Kind: domain.SourcePurchaseInvoice, ID: "pi-1"},
	JournalType: domain.JournalPurchaseInvoice,
}

// --- Test Cases ---

func (suite *HandlerTestSuite) TestPostPurchaseInvoice_CreatedWithTokenUser() {
	suite.postingSvc.On("PostPurchaseInvoice", mock.Anything, mock.MatchedBy(func(doc domain.PurchaseInvoice) bool {
		return doc.ID == "pi-1" && doc.CreatedBy == suite.requestUserID && doc.Total.Equal(decimal.NewFromInt(1100))
	})).Return(postedResult(invoiceKey), nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/postings/purchase-invoices", invoiceBody())

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.PostingResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(domain.PostingPosted, resp.Status)
	suite.Equal("pi-1", resp.SourceID)
	suite.Len(resp.Entries, 2)
	suite.postingSvc.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestPostPurchaseInvoice_SkippedIsOK() {
	suite.postingSvc.On("PostPurchaseInvoice", mock.Anything, mock.Anything).
		Return(domain.Skipped(invoiceKey, "already posted"), nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/postings/purchase-invoices", invoiceBody())

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"status":"skipped"`)
}

func (suite *HandlerTestSuite) TestPostPurchaseInvoice_ErrorStatusMapping() {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"validation", apperrors.NewValidationError("total", "must be positive"), http.StatusUnprocessableEntity},
		{"configuration", &apperrors.ConfigurationError{Capability: "AccountsPayable", Tried: []string{"2110"}}, http.StatusUnprocessableEntity},
		{"unbalanced", &apperrors.UnbalancedEntryError{Debit: decimal.NewFromInt(10), Credit: decimal.NewFromInt(9)}, http.StatusConflict},
		{"not found", apperrors.ErrNotFound, http.StatusNotFound},
		{"unexpected", errors.New("connection reset"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		suite.Run(tc.name, func() {
			suite.SetupTest()
			suite.postingSvc.On("PostPurchaseInvoice", mock.Anything, mock.Anything).Return(nil, tc.err).Once()

			w := suite.do(http.MethodPost, "/api/v1/postings/purchase-invoices", invoiceBody())

			suite.Equal(tc.want, w.Code)
		})
	}
}

func (suite *HandlerTestSuite) TestPostPurchaseInvoice_MalformedBody() {
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/postings/purchase-invoices", bytes.NewBufferString("{"))
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken())
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.postingSvc.AssertNotCalled(suite.T(), "PostPurchaseInvoice", mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestPosting_RequiresToken() {
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/postings/purchase-invoices", bytes.NewBufferString("{}"))
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *HandlerTestSuite) TestPostMaterialReturn_DefaultsMovementType() {
	suite.postingSvc.On("PostMaterialReturn", mock.Anything, mock.MatchedBy(func(doc domain.MaterialIssue) bool {
		return doc.Type == domain.MaterialReturnType
	})).Return(postedResult(domain.GroupKey{
		Source:      domain.SourceRef{Kind: domain.SourceMaterialIssue, ID: "mr-1"},
		JournalType: domain.JournalManufacturingReturn,
	}), nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/postings/material-returns", map[string]any{
		"id":     "mr-1",
		"date":   "2025-01-15T00:00:00Z",
		"status": "completed",
		"items":  []map[string]any{{"productID": "p1", "quantity": "2", "unitCost": "5"}},
	})

	suite.Equal(http.StatusCreated, w.Code)
	suite.postingSvc.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestListEntries_RequiresSource() {
	w := suite.do(http.MethodGet, "/api/v1/entries?sourceKind=deposit", nil)
	suite.Equal(http.StatusBadRequest, w.Code)

	suite.postingSvc.On("ListEntriesBySource", mock.Anything, domain.SourceRef{Kind: domain.SourceDeposit, ID: "d-1"}).
		Return([]domain.JournalEntry{{ID: "e1", Date: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)}}, nil).Once()
	w = suite.do(http.MethodGet, "/api/v1/entries?sourceKind=deposit&sourceID=d-1", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"date":"2025-01-02"`)
}

func (suite *HandlerTestSuite) TestPostDisposal_GeneratesIDAndUsesPathAsset() {
	suite.assetSvc.On("PostDisposal", mock.Anything, mock.MatchedBy(func(d domain.AssetDisposal) bool {
		return d.ID != "" && d.AssetID == "a-1" && d.Type == domain.DisposalSale && d.CreatedBy == suite.requestUserID
	})).Return(postedResult(domain.GroupKey{
		Source:      domain.SourceRef{Kind: domain.SourceAssetDisposal, ID: "x"},
		JournalType: domain.JournalDisposal,
	}), nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/assets/a-1/disposal", map[string]any{
		"date":      "2025-02-01T00:00:00Z",
		"type":      "sale",
		"salePrice": "500",
	})

	suite.Equal(http.StatusCreated, w.Code)
	suite.assetSvc.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestPostDisposal_RejectsUnknownType() {
	w := suite.do(http.MethodPost, "/api/v1/assets/a-1/disposal", map[string]any{
		"date": "2025-02-01T00:00:00Z",
		"type": "theft",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestReverseDepreciation_ReturnsRecomputedAsset() {
	suite.assetSvc.On("ReverseDepreciation", mock.Anything, "dep-1", suite.requestUserID).
		Return(&domain.FixedAsset{ID: "a-1", BookValue: decimal.NewFromInt(12000), Status: domain.AssetActive}, nil).Once()

	w := suite.do(http.MethodDelete, "/api/v1/assets/depreciations/dep-1", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.AssetResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.BookValue.Equal(decimal.NewFromInt(12000)))
}

func (suite *HandlerTestSuite) TestBalanceSheet_ParsesQuery() {
	suite.statementSvc.On("BalanceSheet", mock.Anything, mock.MatchedBy(func(o domain.BalanceSheetOptions) bool {
		return o.AsOf.Equal(time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)) &&
			o.Level == domain.DisplayParentOnly && o.BranchID != nil && *o.BranchID == "hq"
	})).Return(&domain.BalanceSheetReport{Balance: domain.BalanceCheck{IsBalanced: true}}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/reports/balance-sheet?asOf=2025-01-31&level=parent_only&branchID=hq", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"isBalanced":true`)
	suite.statementSvc.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestBalanceSheet_RejectsBadDateAndLevel() {
	suite.Equal(http.StatusBadRequest, suite.do(http.MethodGet, "/api/v1/reports/balance-sheet?asOf=31-01-2025", nil).Code)
	suite.Equal(http.StatusBadRequest, suite.do(http.MethodGet, "/api/v1/reports/balance-sheet?level=everything", nil).Code)
	suite.statementSvc.AssertNotCalled(suite.T(), "BalanceSheet", mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestAccountEntries_DefaultLimitAndToken() {
	token := "abc"
	suite.statementSvc.On("AccountEntries", mock.Anything, mock.MatchedBy(func(f domain.EntryFilter) bool {
		return f.AccountID == "cash" && f.Limit == 50 && f.From == nil
	})).Return(&domain.AccountDrillDown{
		Account:   domain.ChartOfAccount{ID: "cash", Code: "1111"},
		Balance:   decimal.NewFromInt(400),
		NextToken: &token,
	}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/reports/accounts/cash/entries", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.AccountEntriesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("400.00", resp.Balance)
	suite.Require().NotNil(resp.NextToken)
	suite.Equal("abc", *resp.NextToken)
}

func (suite *HandlerTestSuite) TestAccountEntries_LimitAboveMaximum() {
	w := suite.do(http.MethodGet, "/api/v1/reports/accounts/cash/entries?limit=501", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

// --- Run Test Suite ---
func TestHandlers(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
