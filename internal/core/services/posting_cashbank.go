package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/SscSPs/erp_ledger/internal/utils/accounting"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const (
	cashBankPrefix = "CB"
	transferPrefix = "TRF"
)

// PostCashBankTransaction posts a receipt or disbursement against an offset account or a
// breakdown of counter accounts. Reposting replaces the previous entries.
func (s *postingService) PostCashBankTransaction(ctx context.Context, doc domain.CashBankTransaction) (*domain.PostingResult, error) {
	if err := s.validateDocument(ctx, doc); err != nil {
		return nil, err
	}
	if !doc.Amount.IsPositive() {
		return nil, apperrors.NewValidationError("amount", "amount must be positive")
	}
	if err := accounting.RequireCents("amount", doc.Amount); err != nil {
		return nil, err
	}

	main, err := s.requireAccount(ctx, "mainCOAID", &doc.MainCOAID)
	if err != nil {
		return nil, err
	}

	p := newPlan(doc, domain.JournalCashBank, domain.ReplaceIfPosted)
	p.description = doc.Description
	s.assignReference(p, doc.Number, cashBankPrefix)

	mainSide, counterSide := p.debit, p.credit
	if doc.Direction == domain.CashOut {
		mainSide, counterSide = p.credit, p.debit
	}

	if len(doc.Breakdown) == 0 {
		offset, err := s.requireAccount(ctx, "offsetCOAID", doc.OffsetCOAID)
		if err != nil {
			return nil, err
		}
		mainSide(main, doc.Amount, "")
		counterSide(offset, doc.Amount, "")
		return s.runner.post(ctx, p)
	}

	signed := decimal.Zero
	lines := make([]*domain.ChartOfAccount, len(doc.Breakdown))
	for i, line := range doc.Breakdown {
		if !line.Amount.IsPositive() {
			return nil, apperrors.NewValidationError(fmt.Sprintf("breakdown[%d].amount", i), "amount must be positive")
		}
		if err := accounting.RequireCents(fmt.Sprintf("breakdown[%d].amount", i), line.Amount); err != nil {
			return nil, err
		}
		coaID := line.COAID
		lines[i], err = s.requireAccount(ctx, fmt.Sprintf("breakdown[%d].coaID", i), &coaID)
		if err != nil {
			return nil, err
		}
		signed = signed.Add(line.Signed())
	}
	if signed.Sub(doc.Amount).Abs().GreaterThan(accounting.BalanceTolerance) {
		return nil, apperrors.NewValidationError("breakdown", "breakdown totals %s but amount is %s",
			signed.StringFixed(2), doc.Amount.StringFixed(2))
	}

	mainSide(main, doc.Amount, "")
	for i, line := range doc.Breakdown {
		if line.Correction {
			mainSide(lines[i], line.Amount, line.Description)
		} else {
			counterSide(lines[i], line.Amount, line.Description)
		}
	}
	return s.runner.post(ctx, p)
}

// PostCashBankTransfer credits the source account for the amount plus other costs, debits the
// target account for the amount and the transfer cost account for the other costs.
func (s *postingService) PostCashBankTransfer(ctx context.Context, doc domain.CashBankTransfer) (*domain.PostingResult, error) {
	if err := s.validateDocument(ctx, doc); err != nil {
		return nil, err
	}
	if !doc.Amount.IsPositive() {
		return nil, apperrors.NewValidationError("amount", "amount must be positive")
	}
	if doc.OtherCosts.IsNegative() {
		return nil, apperrors.NewValidationError("otherCosts", "other costs must not be negative")
	}
	if err := accounting.RequireCents("amount", doc.Amount, doc.OtherCosts); err != nil {
		return nil, err
	}

	from, err := s.requireAccount(ctx, "fromCOAID", &doc.FromCOAID)
	if err != nil {
		return nil, err
	}
	to, err := s.requireAccount(ctx, "toCOAID", &doc.ToCOAID)
	if err != nil {
		return nil, err
	}
	var costAccount *domain.ChartOfAccount
	if doc.OtherCosts.IsPositive() {
		costAccount, err = s.resolve(ctx, domain.WithExplicit(domain.CapTransferCost, doc.OtherCostsCOAID))
		if err != nil {
			return nil, err
		}
	}

	p := newPlan(doc, domain.JournalTransfer, domain.ReplaceIfPosted)
	p.description = doc.Description
	s.assignReference(p, doc.Number, transferPrefix)

	p.debit(to, doc.Amount, "")
	if costAccount != nil {
		p.debit(costAccount, doc.OtherCosts, "Transfer costs")
	}
	p.credit(from, doc.Amount.Add(doc.OtherCosts), "")

	return s.runner.post(ctx, p)
}

// assignReference uses the document number, or generates one inside the posting transaction.
func (s *postingService) assignReference(p *postingPlan, number, prefix string) {
	if number != "" {
		p.reference = number
		return
	}
	p.inTx = func(ctx context.Context, tx pgx.Tx, p *postingPlan) (string, error) {
		ref, err := s.runner.nextReference(ctx, tx, prefix, p.date)
		if err != nil {
			return "", err
		}
		p.reference = ref
		return "", nil
	}
}
