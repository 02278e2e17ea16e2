package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/erp_ledger/internal/core/ports/services"
	"github.com/SscSPs/erp_ledger/internal/dto"
	"github.com/SscSPs/erp_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests related to financial statements
type reportingHandler struct {
	statementService portssvc.StatementSvcFacade
	now              func() time.Time
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(ss portssvc.StatementSvcFacade) *reportingHandler {
	return &reportingHandler{
		statementService: ss,
		now:              time.Now,
	}
}

// RegisterReportingRoutes registers routes related to financial statements
func RegisterReportingRoutes(rg *gin.RouterGroup, statementService portssvc.StatementSvcFacade) {
	h := newReportingHandler(statementService)

	reportingGroup := rg.Group("/reports")
	{
		reportingGroup.GET("/balance-sheet", h.getBalanceSheet)
		reportingGroup.GET("/balance-sheet/compare", h.compareBalanceSheets)
		reportingGroup.GET("/income-statement", h.getIncomeStatement)
		reportingGroup.GET("/accounts/:accountID/entries", h.getAccountEntries)
		reportingGroup.GET("/ratios", h.getRatios)
		reportingGroup.GET("/coa-validity", h.getCOAValidity)
	}
}

func (h *reportingHandler) today() time.Time {
	now := h.now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// getBalanceSheet godoc
// @Summary Generate balance sheet
// @Description Generates a balance sheet as of a date. Retained earnings are derived from revenue and expense activity; any residual difference is plugged into equity and reported.
// @Tags reports
// @Produce json
// @Param asOf query string false "Report date (YYYY-MM-DD)" default(current date)
// @Param branchID query string false "Branch filter"
// @Param level query string false "Display level" Enums(all, parent_only, totals_only) default(all)
// @Param showZeroBalance query bool false "List accounts with a zero balance"
// @Success 200 {object} domain.BalanceSheetReport
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/balance-sheet [get]
func (h *reportingHandler) getBalanceSheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.BalanceSheetParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Invalid balance sheet parameters", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid parameters. Dates use YYYY-MM-DD: " + err.Error()})
		return
	}
	opts := params.ToOptions(h.today())
	logger = logger.With(slog.String("asOf", opts.AsOf.Format(dto.DateLayout)))
	logger.Info("Received request to generate balance sheet")

	report, err := h.statementService.BalanceSheet(c.Request.Context(), opts)
	if err != nil {
		respondError(c, logger, err, "Failed to generate balance sheet")
		return
	}

	if report.Balance.WasAdjusted {
		logger.Warn("Balance sheet required a plug",
			slog.String("difference", report.Balance.DifferenceBeforeAdjustment.StringFixed(2)))
	}
	c.JSON(http.StatusOK, report)
}

// compareBalanceSheets godoc
// @Summary Compare balance sheets at two dates
// @Tags reports
// @Produce json
// @Param asOf query string false "Current date (YYYY-MM-DD)" default(current date)
// @Param previousAsOf query string true "Previous date (YYYY-MM-DD)"
// @Param branchID query string false "Branch filter"
// @Success 200 {object} domain.PeriodComparison
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/balance-sheet/compare [get]
func (h *reportingHandler) compareBalanceSheets(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.CompareBalanceSheetParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Invalid comparison parameters", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid parameters. previousAsOf is required (YYYY-MM-DD): " + err.Error()})
		return
	}
	current := params.ToOptions(h.today())
	previous := current
	previous.AsOf = params.PreviousAsOf

	comparison, err := h.statementService.CompareBalanceSheets(c.Request.Context(), current, previous)
	if err != nil {
		respondError(c, logger, err, "Failed to compare balance sheets")
		return
	}
	c.JSON(http.StatusOK, comparison)
}

// getIncomeStatement godoc
// @Summary Generate income statement
// @Description Generates a multi-step profit and loss statement for a period, inclusive of both ends.
// @Tags reports
// @Produce json
// @Param from query string false "Start date (YYYY-MM-DD)" default(first day of the month of to)
// @Param to query string false "End date (YYYY-MM-DD)" default(current date)
// @Param branchID query string false "Branch filter"
// @Param showZeroBalance query bool false "List accounts with a zero balance"
// @Success 200 {object} domain.IncomeStatementReport
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 422 {object} map[string]string "Invalid date range"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/income-statement [get]
func (h *reportingHandler) getIncomeStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.IncomeStatementParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Invalid income statement parameters", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid parameters. Dates use YYYY-MM-DD: " + err.Error()})
		return
	}
	opts := params.ToOptions(h.today())
	logger = logger.With(
		slog.String("from", opts.From.Format(dto.DateLayout)),
		slog.String("to", opts.To.Format(dto.DateLayout)),
	)
	logger.Info("Received request to generate income statement")

	report, err := h.statementService.IncomeStatement(c.Request.Context(), opts)
	if err != nil {
		respondError(c, logger, err, "Failed to generate income statement")
		return
	}
	c.JSON(http.StatusOK, report)
}

// getAccountEntries godoc
// @Summary Drill down into an account balance
// @Description Lists the entries behind an account balance, newest first, with token-based pagination.
// @Tags reports
// @Produce json
// @Param accountID path string true "Account ID"
// @Param from query string false "Start date (YYYY-MM-DD), inclusive"
// @Param to query string false "End date (YYYY-MM-DD)" default(current date)
// @Param branchID query string false "Branch filter"
// @Param limit query int false "Page size" default(50) maximum(500)
// @Param nextToken query string false "Token of the next page"
// @Success 200 {object} dto.AccountEntriesResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to list entries"
// @Security BearerAuth
// @Router /reports/accounts/{accountID}/entries [get]
func (h *reportingHandler) getAccountEntries(c *gin.Context) {
	accountID := c.Param("accountID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("account_id", accountID))

	var params dto.AccountEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Invalid drill-down parameters", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid parameters: " + err.Error()})
		return
	}

	drill, err := h.statementService.AccountEntries(c.Request.Context(), params.ToFilter(accountID, h.today()))
	if err != nil {
		respondError(c, logger, err, "Failed to list account entries")
		return
	}

	logger.Debug("Account entries listed", slog.Int("count", len(drill.Entries)))
	c.JSON(http.StatusOK, dto.ToAccountEntriesResponse(drill))
}

// getRatios godoc
// @Summary Compute financial ratios
// @Tags reports
// @Produce json
// @Param from query string false "Margin window start (YYYY-MM-DD)" default(first day of the year of asOf)
// @Param asOf query string false "Ratio date (YYYY-MM-DD)" default(current date)
// @Param branchID query string false "Branch filter"
// @Success 200 {object} domain.FinancialRatios
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to compute ratios"
// @Security BearerAuth
// @Router /reports/ratios [get]
func (h *reportingHandler) getRatios(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.RatiosParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Invalid ratio parameters", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid parameters. Dates use YYYY-MM-DD: " + err.Error()})
		return
	}
	from, asOf := params.Window(h.today())

	ratios, err := h.statementService.Ratios(c.Request.Context(), from, asOf, params.BranchID)
	if err != nil {
		respondError(c, logger, err, "Failed to compute ratios")
		return
	}
	c.JSON(http.StatusOK, ratios)
}

// getCOAValidity godoc
// @Summary Check chart of accounts classification
// @Description Reports whether the chart has the asset, liability, equity and current classifications the statements rely on.
// @Tags reports
// @Produce json
// @Success 200 {object} domain.ValidityReport
// @Failure 500 {object} map[string]string "Failed to validate chart of accounts"
// @Security BearerAuth
// @Router /reports/coa-validity [get]
func (h *reportingHandler) getCOAValidity(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	report, err := h.statementService.ValidateClassification(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to validate chart of accounts")
		return
	}
	if !report.IsValid {
		logger.Warn("Chart of accounts classification incomplete", slog.Int("issues", len(report.Issues)))
	}
	c.JSON(http.StatusOK, report)
}
