package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/SscSPs/erp_ledger/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// settlementSide says which way a settlement moves money.
type settlementSide struct {
	journalType       domain.JournalType
	counterCapability domain.Capability // payable or receivable being settled
	depositCapability domain.Capability
	label             string
	// paying is true for vendor payments: the counter account is debited and cash credited.
	paying bool
}

var (
	vendorPaymentSide = settlementSide{
		journalType:       domain.JournalVendorPayment,
		counterCapability: domain.CapAccountsPayable,
		depositCapability: domain.CapSupplierDeposit,
		label:             "Vendor payment",
		paying:            true,
	}
	customerReceiptSide = settlementSide{
		journalType:       domain.JournalCustomerReceipt,
		counterCapability: domain.CapAccountsReceivable,
		depositCapability: domain.CapCustomerDeposit,
		label:             "Customer receipt",
		paying:            false,
	}
)

// PostVendorPayment debits accounts payable for the payment total and credits the deposit
// portion, each payment account, and any remainder to the default cash/bank account.
func (s *postingService) PostVendorPayment(ctx context.Context, doc domain.VendorPayment) (*domain.PostingResult, error) {
	if err := s.validateDocument(ctx, doc); err != nil {
		return nil, err
	}
	p, cash, err := s.planSettlement(ctx, doc, doc.Settlement, vendorPaymentSide)
	if err != nil {
		return nil, err
	}
	if doc.Import != nil {
		if err := s.addImportCharges(ctx, p, cash, *doc.Import); err != nil {
			return nil, err
		}
	}
	return s.runner.post(ctx, p)
}

// PostCustomerReceipt credits accounts receivable for the receipt total and debits the deposit
// portion, each receiving account, and any remainder to the default cash/bank account.
func (s *postingService) PostCustomerReceipt(ctx context.Context, doc domain.CustomerReceipt) (*domain.PostingResult, error) {
	if err := s.validateDocument(ctx, doc); err != nil {
		return nil, err
	}
	p, _, err := s.planSettlement(ctx, doc, doc.Settlement, customerReceiptSide)
	if err != nil {
		return nil, err
	}
	return s.runner.post(ctx, p)
}

func (s *postingService) planSettlement(ctx context.Context, doc domain.Document, st domain.Settlement, side settlementSide) (*postingPlan, *domain.ChartOfAccount, error) {
	for _, d := range st.Details {
		if d.Amount.IsNegative() {
			return nil, nil, apperrors.NewValidationError("details", "detail amount must not be negative")
		}
		if err := accounting.RequireCents("details", d.Amount); err != nil {
			return nil, nil, err
		}
	}
	if err := accounting.RequireCents("total", st.Total); err != nil {
		return nil, nil, err
	}
	if st.AvailableDeposit != nil {
		if err := accounting.RequireCents("availableDeposit", *st.AvailableDeposit); err != nil {
			return nil, nil, err
		}
	}
	total := st.SettlementTotal()
	if !total.IsPositive() {
		return nil, nil, apperrors.NewValidationError("total", "settlement total must be positive")
	}

	counter, err := s.resolve(ctx, domain.ForCapability(side.counterCapability))
	if err != nil {
		return nil, nil, err
	}
	defaultCash, err := s.resolve(ctx, domain.WithExplicit(domain.CapCashBank, st.CashCOAID))
	if err != nil {
		return nil, nil, err
	}

	depositRequested := decimal.Zero
	byAccount := newAccountAmounts()
	for _, d := range st.Details {
		if !d.Amount.IsPositive() {
			continue
		}
		if d.Method == domain.PaymentMethodDeposit {
			depositRequested = depositRequested.Add(d.Amount)
			continue
		}
		coa := defaultCash
		if d.COAID != nil && *d.COAID != "" {
			coa, err = s.resolve(ctx, domain.WithExplicit(domain.CapCashBank, d.COAID))
			if err != nil {
				return nil, nil, err
			}
		}
		byAccount.add(coa, d.Amount, d.Method)
	}

	depositPortion := decimal.Min(total, depositRequested)
	if st.AvailableDeposit != nil {
		depositPortion = decimal.Min(depositPortion, decimal.Max(*st.AvailableDeposit, decimal.Zero))
	}
	var depositAccount *domain.ChartOfAccount
	if depositPortion.IsPositive() {
		depositAccount, err = s.resolve(ctx, domain.WithExplicit(side.depositCapability, st.DepositCOAID))
		if err != nil {
			if !errors.Is(err, apperrors.ErrConfiguration) {
				return nil, nil, err
			}
			s.LogInfo(ctx, "No deposit account resolved, settling deposit portion through cash",
				slog.String("source", doc.SourceRef().String()),
				slog.String("amount", depositPortion.StringFixed(2)))
			depositPortion = decimal.Zero
		}
	}

	p := newPlan(doc, side.journalType, domain.SkipIfPosted)
	p.reference = st.ReferenceOr(st.ID)
	p.description = fmt.Sprintf("%s %s", side.label, p.reference)

	// cash side: credit for payments, debit for receipts
	cashSide := p.credit
	counterSide := p.debit
	if !side.paying {
		cashSide, counterSide = p.debit, p.credit
	}

	counterSide(counter, total, "")
	settled := decimal.Zero
	if depositPortion.IsPositive() {
		cashSide(depositAccount, depositPortion, "Deposit applied")
		settled = settled.Add(depositPortion)
	}
	byAccount.each(func(coa *domain.ChartOfAccount, amount decimal.Decimal, method string) {
		cashSide(coa, amount, method)
		settled = settled.Add(amount)
	})
	if remainder := total.Sub(settled); remainder.IsPositive() {
		cashSide(defaultCash, remainder, "")
	}

	return p, defaultCash, nil
}

// addImportCharges adds paired lines for import taxes paid together with a vendor payment.
func (s *postingService) addImportCharges(ctx context.Context, p *postingPlan, cash *domain.ChartOfAccount, charges domain.ImportCharges) error {
	items := []struct {
		capability  domain.Capability
		amount      decimal.Decimal
		description string
	}{
		{domain.CapInputVAT, charges.InputVAT, "Import VAT"},
		{domain.CapPrepaidPPh22, charges.PPh22, "Import PPh 22"},
		{domain.CapCustomsDuty, charges.CustomsDuty, "Customs duty"},
	}
	for _, item := range items {
		if item.amount.IsNegative() {
			return apperrors.NewValidationError("import", "%s must not be negative", item.description)
		}
		if err := accounting.RequireCents("import", item.amount); err != nil {
			return err
		}
		if !item.amount.IsPositive() {
			continue
		}
		coa, err := s.resolve(ctx, domain.ForCapability(item.capability))
		if err != nil {
			return err
		}
		p.debit(coa, item.amount, item.description)
		p.credit(cash, item.amount, item.description)
	}
	return nil
}
