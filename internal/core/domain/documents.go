package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Document is the capability every postable business document exposes to the ledger.
type Document interface {
	SourceRef() SourceRef
	DocumentDate() time.Time
	Links() DocumentLinks
}

// DocumentHeader carries the fields shared by every document.
type DocumentHeader struct {
	ID          string     `json:"id" validate:"required"`
	Number      string     `json:"number"`
	Date        time.Time  `json:"date" validate:"required"`
	Description string     `json:"description"`
	Tags        Dimensions `json:"tags"`
	WarehouseID *string    `json:"warehouseID,omitempty"`
	CreatedBy   string     `json:"createdBy"`
}

func (h DocumentHeader) DocumentDate() time.Time { return h.Date }

// SetCreatedBy records the user posting the document.
func (h *DocumentHeader) SetCreatedBy(userID string) { h.CreatedBy = userID }

func (h DocumentHeader) links(src SourceRef) DocumentLinks {
	return DocumentLinks{
		Source:      src,
		Tags:        h.Tags,
		WarehouseID: h.WarehouseID,
		CreatedBy:   h.CreatedBy,
	}
}

// ReferenceOr returns the document number, or fallback when the number is empty.
func (h DocumentHeader) ReferenceOr(fallback string) string {
	if h.Number != "" {
		return h.Number
	}
	return fallback
}

// PurchaseInvoiceLine is one purchased item of an invoice.
type PurchaseInvoiceLine struct {
	ProductID             string          `json:"productID"`
	Amount                decimal.Decimal `json:"amount"`
	InventoryCOAID        *string         `json:"inventoryCOAID,omitempty"`
	ProductInventoryCOAID *string         `json:"productInventoryCOAID,omitempty"`
	IsAsset               bool            `json:"isAsset"`
}

// PurchaseInvoice is a supplier invoice.
type PurchaseInvoice struct {
	DocumentHeader
	Subtotal       decimal.Decimal       `json:"subtotal"`
	Tax            decimal.Decimal       `json:"tax"`
	Total          decimal.Decimal       `json:"total"`
	HasReceipts    bool                  `json:"hasReceipts"`
	InventoryCOAID *string               `json:"inventoryCOAID,omitempty"`
	PayableCOAID   *string               `json:"payableCOAID,omitempty"`
	Lines          []PurchaseInvoiceLine `json:"lines" validate:"dive"`
}

func (d PurchaseInvoice) SourceRef() SourceRef {
	return SourceRef{Kind: SourcePurchaseInvoice, ID: d.ID}
}

func (d PurchaseInvoice) Links() DocumentLinks { return d.links(d.SourceRef()) }

// DepositParty says whose money a deposit holds.
type DepositParty string

const (
	DepositSupplier DepositParty = "supplier"
	DepositCustomer DepositParty = "customer"
)

// Deposit is an advance paid to a supplier or received from a customer.
type Deposit struct {
	DocumentHeader
	Party      DepositParty    `json:"party" validate:"required,oneof=supplier customer"`
	Amount     decimal.Decimal `json:"amount"`
	DepositCOA *string         `json:"depositCOAID,omitempty"`
	CashCOAID  *string         `json:"cashCOAID,omitempty"`
}

func (d Deposit) SourceRef() SourceRef { return SourceRef{Kind: SourceDeposit, ID: d.ID} }

func (d Deposit) Links() DocumentLinks { return d.links(d.SourceRef()) }

// PaymentMethodDeposit marks a settlement detail paid from a deposit balance.
const PaymentMethodDeposit = "deposit"

// SettlementDetail is one payment-method line of a payment or receipt.
type SettlementDetail struct {
	Method string          `json:"method"`
	COAID  *string         `json:"coaID,omitempty"`
	Amount decimal.Decimal `json:"amount"`
}

// ImportCharges are the import taxes settled together with a vendor payment.
type ImportCharges struct {
	InputVAT    decimal.Decimal `json:"inputVAT"`
	PPh22       decimal.Decimal `json:"pph22"`
	CustomsDuty decimal.Decimal `json:"customsDuty"`
}

// Settlement holds the fields shared by vendor payments and customer receipts.
type Settlement struct {
	DocumentHeader
	Total            decimal.Decimal    `json:"total"`
	Method           string             `json:"method"`
	CashCOAID        *string            `json:"cashCOAID,omitempty"`
	DepositCOAID     *string            `json:"depositCOAID,omitempty"`
	AvailableDeposit *decimal.Decimal   `json:"availableDeposit,omitempty"` // nil means no bound
	Details          []SettlementDetail `json:"details"`
	InvoiceRef       *SourceRef         `json:"invoiceRef,omitempty"`
}

// SettlementTotal is the sum of details, or the header total when no detail carries an amount.
func (s Settlement) SettlementTotal() decimal.Decimal {
	sum := decimal.Zero
	for _, d := range s.Details {
		sum = sum.Add(d.Amount)
	}
	if sum.IsZero() {
		return s.Total
	}
	return sum
}

func (s Settlement) settlementLinks(src SourceRef) DocumentLinks {
	l := s.links(src)
	l.InvoiceRef = s.InvoiceRef
	return l
}

// VendorPayment settles supplier payables.
type VendorPayment struct {
	Settlement
	Import *ImportCharges `json:"import,omitempty"`
}

func (d VendorPayment) SourceRef() SourceRef {
	return SourceRef{Kind: SourceVendorPayment, ID: d.ID}
}

func (d VendorPayment) Links() DocumentLinks { return d.settlementLinks(d.SourceRef()) }

// CustomerReceipt settles customer receivables.
type CustomerReceipt struct {
	Settlement
}

func (d CustomerReceipt) SourceRef() SourceRef {
	return SourceRef{Kind: SourceCustomerReceipt, ID: d.ID}
}

func (d CustomerReceipt) Links() DocumentLinks { return d.settlementLinks(d.SourceRef()) }

// CashDirection is the direction of a cash/bank transaction.
type CashDirection string

const (
	CashIn  CashDirection = "in"
	CashOut CashDirection = "out"
)

// BreakdownLine splits a cash/bank transaction across counter accounts. Correction lines sit on
// the same side as the main account instead of the opposite side.
type BreakdownLine struct {
	COAID       string          `json:"coaID" validate:"required"`
	Amount      decimal.Decimal `json:"amount"`
	Correction  bool            `json:"correction"`
	Description string          `json:"description"`
}

// Signed returns the line's contribution to the breakdown total.
func (l BreakdownLine) Signed() decimal.Decimal {
	if l.Correction {
		return l.Amount.Neg()
	}
	return l.Amount
}

// CashBankTransaction is a cash or bank receipt/disbursement.
type CashBankTransaction struct {
	DocumentHeader
	Direction   CashDirection   `json:"direction" validate:"required,oneof=in out"`
	Amount      decimal.Decimal `json:"amount"`
	MainCOAID   string          `json:"mainCOAID" validate:"required"`
	OffsetCOAID *string         `json:"offsetCOAID,omitempty"`
	Breakdown   []BreakdownLine `json:"breakdown" validate:"dive"`
}

func (d CashBankTransaction) SourceRef() SourceRef {
	return SourceRef{Kind: SourceCashBankTransaction, ID: d.ID}
}

func (d CashBankTransaction) Links() DocumentLinks { return d.links(d.SourceRef()) }

// CashBankTransfer moves funds between two cash/bank accounts.
type CashBankTransfer struct {
	DocumentHeader
	FromCOAID       string          `json:"fromCOAID" validate:"required"`
	ToCOAID         string          `json:"toCOAID" validate:"required,nefield=FromCOAID"`
	Amount          decimal.Decimal `json:"amount"`
	OtherCosts      decimal.Decimal `json:"otherCosts"`
	OtherCostsCOAID *string         `json:"otherCostsCOAID,omitempty"`
}

func (d CashBankTransfer) SourceRef() SourceRef {
	return SourceRef{Kind: SourceCashBankTransfer, ID: d.ID}
}

func (d CashBankTransfer) Links() DocumentLinks { return d.links(d.SourceRef()) }
