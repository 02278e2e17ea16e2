package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/SscSPs/erp_ledger/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// PostPurchaseInvoice debits inventory (or the unbilled clearing account when goods were already
// received), input VAT and purchase fees, and credits accounts payable for the invoice total.
func (s *postingService) PostPurchaseInvoice(ctx context.Context, doc domain.PurchaseInvoice) (*domain.PostingResult, error) {
	if err := s.validateDocument(ctx, doc); err != nil {
		return nil, err
	}
	if doc.Subtotal.IsNegative() || doc.Tax.IsNegative() {
		return nil, apperrors.NewValidationError("subtotal", "subtotal and tax must not be negative")
	}
	if !doc.Total.IsPositive() {
		return nil, apperrors.NewValidationError("total", "invoice total must be positive")
	}
	if err := accounting.RequireCents("total", doc.Subtotal, doc.Tax, doc.Total); err != nil {
		return nil, err
	}
	fees := doc.Total.Sub(doc.Subtotal).Sub(doc.Tax)
	if fees.IsNegative() {
		return nil, apperrors.NewValidationError("total", "total %s is less than subtotal %s plus tax %s",
			doc.Total.StringFixed(2), doc.Subtotal.StringFixed(2), doc.Tax.StringFixed(2))
	}

	p := newPlan(doc, domain.JournalPurchaseInvoice, domain.SkipIfPosted)
	p.reference = doc.ReferenceOr(doc.ID)
	p.description = fmt.Sprintf("Purchase invoice %s", p.reference)

	switch {
	case doc.HasReceipts:
		unbilled, err := s.resolve(ctx, domain.ForCapability(domain.CapUnbilledPayable))
		if err != nil {
			return nil, err
		}
		p.debit(unbilled, doc.Subtotal, "Unbilled receipts cleared")
	case len(doc.Lines) > 0:
		byAccount := newAccountAmounts()
		lineSum := decimal.Zero
		for _, line := range doc.Lines {
			if line.Amount.IsNegative() {
				return nil, apperrors.NewValidationError("lines", "line amount must not be negative")
			}
			if err := accounting.RequireCents("lines", line.Amount); err != nil {
				return nil, err
			}
			capability := domain.CapInventory
			if line.IsAsset {
				capability = domain.CapFixedAsset
			}
			coa, err := s.resolve(ctx, domain.AccountRequest{
				Capability: capability,
				ExplicitID: line.InventoryCOAID,
				DefaultID:  line.ProductInventoryCOAID,
			})
			if err != nil {
				return nil, err
			}
			byAccount.add(coa, line.Amount, "")
			lineSum = lineSum.Add(line.Amount)
		}
		if lineSum.Sub(doc.Subtotal).Abs().GreaterThan(accounting.BalanceTolerance) {
			return nil, apperrors.NewValidationError("lines", "line amounts sum to %s but subtotal is %s",
				lineSum.StringFixed(2), doc.Subtotal.StringFixed(2))
		}
		byAccount.each(func(coa *domain.ChartOfAccount, amount decimal.Decimal, _ string) {
			p.debit(coa, amount, "")
		})
	default:
		inventory, err := s.resolve(ctx, domain.WithExplicit(domain.CapInventory, doc.InventoryCOAID))
		if err != nil {
			return nil, err
		}
		p.debit(inventory, doc.Subtotal, "")
	}

	if doc.Tax.IsPositive() {
		vat, err := s.resolve(ctx, domain.ForCapability(domain.CapInputVAT))
		if err != nil {
			return nil, err
		}
		p.debit(vat, doc.Tax, "Input VAT")
	}
	if fees.IsPositive() {
		feeAccount, err := s.resolve(ctx, domain.ForCapability(domain.CapPurchaseFees))
		if err != nil {
			return nil, err
		}
		p.debit(feeAccount, fees, "Purchase fees")
	}

	payable, err := s.resolve(ctx, domain.WithExplicit(domain.CapAccountsPayable, doc.PayableCOAID))
	if err != nil {
		return nil, err
	}
	p.credit(payable, doc.Total, "")

	return s.runner.post(ctx, p)
}

// PostDeposit records an advance. A supplier deposit moves cash into the deposit asset; a
// customer deposit moves cash in against the deposit liability.
func (s *postingService) PostDeposit(ctx context.Context, doc domain.Deposit) (*domain.PostingResult, error) {
	if err := s.validateDocument(ctx, doc); err != nil {
		return nil, err
	}
	if !doc.Amount.IsPositive() {
		return nil, apperrors.NewValidationError("amount", "deposit amount must be positive")
	}
	if err := accounting.RequireCents("amount", doc.Amount); err != nil {
		return nil, err
	}

	depositCapability := domain.CapSupplierDeposit
	if doc.Party == domain.DepositCustomer {
		depositCapability = domain.CapCustomerDeposit
	}
	deposit, err := s.resolve(ctx, domain.WithExplicit(depositCapability, doc.DepositCOA))
	if err != nil {
		return nil, err
	}
	cash, err := s.resolve(ctx, domain.WithExplicit(domain.CapCashBank, doc.CashCOAID))
	if err != nil {
		return nil, err
	}

	p := newPlan(doc, domain.JournalDeposit, domain.SkipIfPosted)
	p.reference = doc.ReferenceOr(doc.ID)
	p.description = fmt.Sprintf("%s deposit %s", doc.Party, p.reference)

	if doc.Party == domain.DepositCustomer {
		p.debit(cash, doc.Amount, "")
		p.credit(deposit, doc.Amount, "")
	} else {
		p.debit(deposit, doc.Amount, "")
		p.credit(cash, doc.Amount, "")
	}

	return s.runner.post(ctx, p)
}
