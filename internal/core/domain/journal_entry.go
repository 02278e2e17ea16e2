package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// JournalType tags the business event family that produced an entry group.
type JournalType string

const (
	JournalPurchaseInvoice         JournalType = "purchase_invoice"
	JournalDeposit                 JournalType = "deposit"
	JournalVendorPayment           JournalType = "vendor_payment"
	JournalCustomerReceipt         JournalType = "customer_receipt"
	JournalAssetAcquisition        JournalType = "asset_acquisition"
	JournalDepreciation            JournalType = "depreciation"
	JournalDisposal                JournalType = "disposal"
	JournalCashBank                JournalType = "cashbank"
	JournalTransfer                JournalType = "transfer"
	JournalManufacturingIssue      JournalType = "manufacturing_issue"
	JournalManufacturingReturn     JournalType = "manufacturing_return"
	JournalManufacturingAllocation JournalType = "manufacturing_allocation"
	JournalManufacturingCompletion JournalType = "manufacturing_completion"
)

// SourceKind identifies the kind of document an entry was posted from.
type SourceKind string

const (
	SourcePurchaseInvoice     SourceKind = "purchase_invoice"
	SourceDeposit             SourceKind = "deposit"
	SourceVendorPayment       SourceKind = "vendor_payment"
	SourceCustomerReceipt     SourceKind = "customer_receipt"
	SourceAsset               SourceKind = "asset"
	SourceAssetDepreciation   SourceKind = "asset_depreciation"
	SourceAssetDisposal       SourceKind = "asset_disposal"
	SourceCashBankTransaction SourceKind = "cashbank_transaction"
	SourceCashBankTransfer    SourceKind = "cashbank_transfer"
	SourceMaterialIssue       SourceKind = "material_issue"
	SourceProduction          SourceKind = "production"
	SourceManufacturingOrder  SourceKind = "manufacturing_order"
	SourceCostAllocation      SourceKind = "cost_allocation"
	SourceOtherSale           SourceKind = "other_sale"
	SourcePurchaseReturn      SourceKind = "purchase_return"
)

// SourceRef is the polymorphic link from an entry to its originating document.
type SourceRef struct {
	Kind SourceKind `json:"kind"`
	ID   string     `json:"id"`
}

func (s SourceRef) String() string {
	return fmt.Sprintf("%s:%s", s.Kind, s.ID)
}

// IsZero reports whether the reference is unset.
func (s SourceRef) IsZero() bool {
	return s.Kind == "" || s.ID == ""
}

// GroupKey identifies one entry group.
type GroupKey struct {
	Source      SourceRef
	JournalType JournalType
}

func (k GroupKey) String() string {
	return fmt.Sprintf("%s:%s", k.Source, k.JournalType)
}

// JournalEntry is one debit-or-credit line in the ledger.
type JournalEntry struct {
	ID               string          `json:"id"`
	COAID            string          `json:"coaID"`
	Date             time.Time       `json:"date"`
	Debit            decimal.Decimal `json:"debit"`
	Credit           decimal.Decimal `json:"credit"`
	JournalType      JournalType     `json:"journalType"`
	Source           SourceRef       `json:"source"`
	Tags             Dimensions      `json:"tags"`
	Reference        string          `json:"reference"`
	Description      string          `json:"description"`
	IsReversal       bool            `json:"isReversal"`
	ReversedEntryID  *string         `json:"reversedEntryID,omitempty"`
	ReconciledAt     *time.Time      `json:"reconciledAt,omitempty"`
	ReconciliationID *string         `json:"reconciliationID,omitempty"`
	DeletedAt        *time.Time      `json:"deletedAt,omitempty"`
	AuditFields
}

// Amount returns the non-zero side of the entry.
func (e JournalEntry) Amount() decimal.Decimal {
	if e.Debit.IsPositive() {
		return e.Debit
	}
	return e.Credit
}

// IsDebit reports whether the entry is a debit line.
func (e JournalEntry) IsDebit() bool {
	return e.Debit.IsPositive()
}
