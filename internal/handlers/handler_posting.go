package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/erp_ledger/internal/core/ports/services"
	"github.com/SscSPs/erp_ledger/internal/dto"
	"github.com/SscSPs/erp_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// postingHandler handles HTTP requests that post business documents to the ledger.
type postingHandler struct {
	postingService portssvc.PostingSvcFacade
}

// newPostingHandler creates a new postingHandler.
func newPostingHandler(ps portssvc.PostingSvcFacade) *postingHandler {
	return &postingHandler{
		postingService: ps,
	}
}

// RegisterPostingRoutes registers the document posting routes and the entry listing.
func RegisterPostingRoutes(rg *gin.RouterGroup, postingService portssvc.PostingSvcFacade) {
	h := newPostingHandler(postingService)

	postings := rg.Group("/postings")
	{
		postings.POST("/purchase-invoices", h.postPurchaseInvoice)
		postings.POST("/deposits", h.postDeposit)
		postings.POST("/vendor-payments", h.postVendorPayment)
		postings.POST("/customer-receipts", h.postCustomerReceipt)
		postings.POST("/cash-bank", h.postCashBankTransaction)
		postings.POST("/transfers", h.postCashBankTransfer)
		postings.POST("/material-issues", h.postMaterialIssue)
		postings.POST("/material-returns", h.postMaterialReturn)
		postings.POST("/allocations", h.postCostAllocation)
		postings.POST("/production-completions", h.postProductionCompletion)
	}
	rg.GET("/entries", h.listEntries)
}

// creatable is a pointer to a document that records its posting user.
type creatable[T any] interface {
	*T
	SetCreatedBy(userID string)
}

// bindAndPost binds a document, stamps the authenticated user and posts it. A posted group
// answers 201 and an already posted one 200.
func bindAndPost[T any, PT creatable[T]](c *gin.Context, name string, prepare func(*T), post func(context.Context, T) (*domain.PostingResult, error)) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("document", name))

	var doc T
	if err := c.ShouldBindJSON(&doc); err != nil {
		logger.Warn("Failed to bind document JSON", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUser(c, logger)
	if !ok {
		return
	}
	PT(&doc).SetCreatedBy(userID)
	if prepare != nil {
		prepare(&doc)
	}

	result, err := post(c.Request.Context(), doc)
	if err != nil {
		respondError(c, logger, err, "Failed to post "+name)
		return
	}

	logger.Info("Posting finished",
		slog.String("status", string(result.Status)),
		slog.String("source", result.Source.String()),
		slog.Int("entry_count", len(result.Entries)))
	c.JSON(postingStatus(result), dto.ToPostingResponse(result))
}

// postPurchaseInvoice godoc
// @Summary Post a purchase invoice
// @Description Debits inventory or expense lines and tax, credits accounts payable. Already posted invoices are skipped.
// @Tags postings
// @Accept json
// @Produce json
// @Param invoice body domain.PurchaseInvoice true "Purchase invoice"
// @Success 201 {object} dto.PostingResponse "Posted"
// @Success 200 {object} dto.PostingResponse "Already posted"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Entry group does not balance"
// @Failure 422 {object} map[string]string "Business rule or account configuration error"
// @Failure 500 {object} map[string]string "Failed to post"
// @Security BearerAuth
// @Router /postings/purchase-invoices [post]
func (h *postingHandler) postPurchaseInvoice(c *gin.Context) {
	bindAndPost(c, "purchase invoice", nil, h.postingService.PostPurchaseInvoice)
}

// postDeposit godoc
// @Summary Post a deposit
// @Description Posts an advance paid to a supplier or received from a customer.
// @Tags postings
// @Accept json
// @Produce json
// @Param deposit body domain.Deposit true "Deposit"
// @Success 201 {object} dto.PostingResponse
// @Success 200 {object} dto.PostingResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 422 {object} map[string]string "Business rule or account configuration error"
// @Failure 500 {object} map[string]string "Failed to post"
// @Security BearerAuth
// @Router /postings/deposits [post]
func (h *postingHandler) postDeposit(c *gin.Context) {
	bindAndPost(c, "deposit", nil, h.postingService.PostDeposit)
}

// postVendorPayment godoc
// @Summary Post a vendor payment
// @Description Settles accounts payable from cash, bank or a deposit balance, with optional import charges.
// @Tags postings
// @Accept json
// @Produce json
// @Param payment body domain.VendorPayment true "Vendor payment"
// @Success 201 {object} dto.PostingResponse
// @Success 200 {object} dto.PostingResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 422 {object} map[string]string "Business rule or account configuration error"
// @Failure 500 {object} map[string]string "Failed to post"
// @Security BearerAuth
// @Router /postings/vendor-payments [post]
func (h *postingHandler) postVendorPayment(c *gin.Context) {
	bindAndPost(c, "vendor payment", nil, h.postingService.PostVendorPayment)
}

// postCustomerReceipt godoc
// @Summary Post a customer receipt
// @Description Settles accounts receivable into cash, bank or a deposit balance.
// @Tags postings
// @Accept json
// @Produce json
// @Param receipt body domain.CustomerReceipt true "Customer receipt"
// @Success 201 {object} dto.PostingResponse
// @Success 200 {object} dto.PostingResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 422 {object} map[string]string "Business rule or account configuration error"
// @Failure 500 {object} map[string]string "Failed to post"
// @Security BearerAuth
// @Router /postings/customer-receipts [post]
func (h *postingHandler) postCustomerReceipt(c *gin.Context) {
	bindAndPost(c, "customer receipt", nil, h.postingService.PostCustomerReceipt)
}

// postCashBankTransaction godoc
// @Summary Post a cash or bank transaction
// @Description Posts a receipt or disbursement, replacing any earlier posting of the same transaction.
// @Tags postings
// @Accept json
// @Produce json
// @Param transaction body domain.CashBankTransaction true "Cash/bank transaction"
// @Success 201 {object} dto.PostingResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 422 {object} map[string]string "Business rule or account configuration error"
// @Failure 500 {object} map[string]string "Failed to post"
// @Security BearerAuth
// @Router /postings/cash-bank [post]
func (h *postingHandler) postCashBankTransaction(c *gin.Context) {
	bindAndPost(c, "cash/bank transaction", nil, h.postingService.PostCashBankTransaction)
}

// postCashBankTransfer godoc
// @Summary Post a transfer between cash/bank accounts
// @Tags postings
// @Accept json
// @Produce json
// @Param transfer body domain.CashBankTransfer true "Transfer"
// @Success 201 {object} dto.PostingResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 422 {object} map[string]string "Business rule or account configuration error"
// @Failure 500 {object} map[string]string "Failed to post"
// @Security BearerAuth
// @Router /postings/transfers [post]
func (h *postingHandler) postCashBankTransfer(c *gin.Context) {
	bindAndPost(c, "transfer", nil, h.postingService.PostCashBankTransfer)
}

// postMaterialIssue godoc
// @Summary Post a material issue to production
// @Tags postings
// @Accept json
// @Produce json
// @Param issue body domain.MaterialIssue true "Material issue"
// @Success 201 {object} dto.PostingResponse
// @Success 200 {object} dto.PostingResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 422 {object} map[string]string "Business rule or account configuration error"
// @Failure 500 {object} map[string]string "Failed to post"
// @Security BearerAuth
// @Router /postings/material-issues [post]
func (h *postingHandler) postMaterialIssue(c *gin.Context) {
	bindAndPost(c, "material issue", defaultMovementType(domain.MaterialIssueType), h.postingService.PostMaterialIssue)
}

// postMaterialReturn godoc
// @Summary Post a material return from production
// @Tags postings
// @Accept json
// @Produce json
// @Param return body domain.MaterialIssue true "Material return"
// @Success 201 {object} dto.PostingResponse
// @Success 200 {object} dto.PostingResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 422 {object} map[string]string "Business rule or account configuration error"
// @Failure 500 {object} map[string]string "Failed to post"
// @Security BearerAuth
// @Router /postings/material-returns [post]
func (h *postingHandler) postMaterialReturn(c *gin.Context) {
	bindAndPost(c, "material return", defaultMovementType(domain.MaterialReturnType), h.postingService.PostMaterialReturn)
}

func defaultMovementType(t domain.MaterialMovementType) func(*domain.MaterialIssue) {
	return func(doc *domain.MaterialIssue) {
		if doc.Type == "" {
			doc.Type = t
		}
	}
}

// postCostAllocation godoc
// @Summary Post a labor and overhead allocation
// @Tags postings
// @Accept json
// @Produce json
// @Param allocation body domain.CostAllocation true "Cost allocation"
// @Success 201 {object} dto.PostingResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 422 {object} map[string]string "Business rule or account configuration error"
// @Failure 500 {object} map[string]string "Failed to post"
// @Security BearerAuth
// @Router /postings/allocations [post]
func (h *postingHandler) postCostAllocation(c *gin.Context) {
	bindAndPost(c, "cost allocation", nil, h.postingService.PostCostAllocation)
}

// postProductionCompletion godoc
// @Summary Post the completion of a manufacturing order
// @Tags postings
// @Accept json
// @Produce json
// @Param production body domain.Production true "Production"
// @Success 201 {object} dto.PostingResponse
// @Success 200 {object} dto.PostingResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Manufacturing order not found"
// @Failure 422 {object} map[string]string "Business rule or account configuration error"
// @Failure 500 {object} map[string]string "Failed to post"
// @Security BearerAuth
// @Router /postings/production-completions [post]
func (h *postingHandler) postProductionCompletion(c *gin.Context) {
	bindAndPost(c, "production completion", nil, h.postingService.PostProductionCompletion)
}

// listEntries godoc
// @Summary List the entries of a source document
// @Tags entries
// @Produce json
// @Param sourceKind query string true "Source kind, e.g. purchase_invoice"
// @Param sourceID query string true "Source document ID"
// @Success 200 {object} dto.ListEntriesResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to list entries"
// @Security BearerAuth
// @Router /entries [get]
func (h *postingHandler) listEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query parameters for listEntries", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "sourceKind and sourceID are required"})
		return
	}

	src := domain.SourceRef{Kind: domain.SourceKind(params.SourceKind), ID: params.SourceID}
	entries, err := h.postingService.ListEntriesBySource(c.Request.Context(), src)
	if err != nil {
		respondError(c, logger, err, "Failed to list entries")
		return
	}

	logger.Debug("Entries listed", slog.String("source", src.String()), slog.Int("count", len(entries)))
	c.JSON(http.StatusOK, dto.ListEntriesResponse{Entries: dto.ToEntryResponses(entries)})
}
