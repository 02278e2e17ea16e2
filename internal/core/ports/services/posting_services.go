package services

import (
	"context"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
)

// DocumentPostingSvc posts purchasing and settlement documents
type DocumentPostingSvc interface {
	// PostPurchaseInvoice posts a supplier invoice against accounts payable.
	PostPurchaseInvoice(ctx context.Context, doc domain.PurchaseInvoice) (*domain.PostingResult, error)

	// PostDeposit posts an advance paid to a supplier or received from a customer.
	PostDeposit(ctx context.Context, doc domain.Deposit) (*domain.PostingResult, error)

	// PostVendorPayment settles accounts payable from cash, bank or deposit.
	PostVendorPayment(ctx context.Context, doc domain.VendorPayment) (*domain.PostingResult, error)

	// PostCustomerReceipt settles accounts receivable into cash, bank or deposit.
	PostCustomerReceipt(ctx context.Context, doc domain.CustomerReceipt) (*domain.PostingResult, error)
}

// CashBankPostingSvc posts cash and bank movements
type CashBankPostingSvc interface {
	// PostCashBankTransaction posts a receipt or disbursement, replacing any earlier posting.
	PostCashBankTransaction(ctx context.Context, doc domain.CashBankTransaction) (*domain.PostingResult, error)

	// PostCashBankTransfer posts a transfer between two cash/bank accounts.
	PostCashBankTransfer(ctx context.Context, doc domain.CashBankTransfer) (*domain.PostingResult, error)
}

// ManufacturingPostingSvc posts production cost flows
type ManufacturingPostingSvc interface {
	PostMaterialIssue(ctx context.Context, doc domain.MaterialIssue) (*domain.PostingResult, error)
	PostMaterialReturn(ctx context.Context, doc domain.MaterialIssue) (*domain.PostingResult, error)
	PostCostAllocation(ctx context.Context, doc domain.CostAllocation) (*domain.PostingResult, error)
	PostProductionCompletion(ctx context.Context, doc domain.Production) (*domain.PostingResult, error)
}

// EntryReaderSvc exposes posted entries
type EntryReaderSvc interface {
	// ListEntriesBySource retrieves the live entries of a source document.
	ListEntriesBySource(ctx context.Context, src domain.SourceRef) ([]domain.JournalEntry, error)
}

// PostingSvcFacade combines all posting service interfaces
type PostingSvcFacade interface {
	DocumentPostingSvc
	CashBankPostingSvc
	ManufacturingPostingSvc
	EntryReaderSvc
}
