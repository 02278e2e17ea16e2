package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/SscSPs/erp_ledger/internal/utils/accounting"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// PostMaterialIssue debits work in progress for the issue total and credits each line's
// inventory account at the line's own cost.
func (s *postingService) PostMaterialIssue(ctx context.Context, doc domain.MaterialIssue) (*domain.PostingResult, error) {
	return s.postMaterialMovement(ctx, doc, domain.MaterialIssueType, domain.JournalManufacturingIssue)
}

// PostMaterialReturn mirrors PostMaterialIssue for materials returned from production.
func (s *postingService) PostMaterialReturn(ctx context.Context, doc domain.MaterialIssue) (*domain.PostingResult, error) {
	return s.postMaterialMovement(ctx, doc, domain.MaterialReturnType, domain.JournalManufacturingReturn)
}

func (s *postingService) postMaterialMovement(ctx context.Context, doc domain.MaterialIssue, want domain.MaterialMovementType, journalType domain.JournalType) (*domain.PostingResult, error) {
	if err := s.validateDocument(ctx, doc); err != nil {
		return nil, err
	}
	if doc.Type != want {
		return nil, apperrors.NewValidationError("type", "expected a material %s, got %s", want, doc.Type)
	}
	if doc.Status != domain.MaterialIssueStatusCompleted {
		return nil, apperrors.NewValidationError("status", "material %s must be completed before posting, status is %q", want, doc.Status)
	}

	mo, err := s.optionalOrder(ctx, doc.ManufacturingOrderID)
	if err != nil {
		return nil, err
	}
	wip, err := s.resolveWIP(ctx, doc.WIPCOAID, mo)
	if err != nil {
		return nil, err
	}

	type costLine struct {
		coa  *domain.ChartOfAccount
		cost decimal.Decimal
		name string
	}
	lines := make([]costLine, 0, len(doc.Items))
	total := decimal.Zero
	for i, item := range doc.Items {
		if item.Quantity.IsNegative() || item.UnitCost.IsNegative() {
			return nil, apperrors.NewValidationError(fmt.Sprintf("items[%d]", i), "quantity and unit cost must not be negative")
		}
		cost := item.Cost()
		if !cost.IsPositive() {
			continue
		}
		coa, err := s.resolve(ctx, domain.AccountRequest{
			Capability: domain.CapRawMaterialInventory,
			ExplicitID: item.InventoryCOAID,
			DefaultID:  item.ProductInventoryCOAID,
		})
		if err != nil {
			return nil, err
		}
		lines = append(lines, costLine{coa: coa, cost: cost, name: item.ProductName})
		total = total.Add(cost)
	}
	if !total.IsPositive() {
		return nil, apperrors.NewValidationError("items", "material %s has no cost to post", want)
	}

	p := newPlan(doc, journalType, domain.ReplaceIfPosted)
	p.reference = doc.ReferenceOr(doc.ID)
	p.description = fmt.Sprintf("Material %s %s", want, p.reference)

	if want == domain.MaterialIssueType {
		p.debit(wip, total, "")
		for _, l := range lines {
			p.credit(l.coa, l.cost, l.name)
		}
	} else {
		for _, l := range lines {
			p.debit(l.coa, l.cost, l.name)
		}
		p.credit(wip, total, "")
	}
	p.afterInsert = func(ctx context.Context, tx pgx.Tx, _ []domain.JournalEntry) error {
		return s.mfgRepo.RecordMaterialMovement(ctx, tx, doc)
	}

	return s.runner.post(ctx, p)
}

// PostCostAllocation debits work in progress and credits the expense account for labor and overhead.
func (s *postingService) PostCostAllocation(ctx context.Context, doc domain.CostAllocation) (*domain.PostingResult, error) {
	if err := s.validateDocument(ctx, doc); err != nil {
		return nil, err
	}
	if doc.LaborCost.IsNegative() || doc.OverheadCost.IsNegative() {
		return nil, apperrors.NewValidationError("laborCost", "labor and overhead must not be negative")
	}
	if err := accounting.RequireCents("laborCost", doc.LaborCost, doc.OverheadCost); err != nil {
		return nil, err
	}
	total := doc.LaborCost.Add(doc.OverheadCost)
	if !total.IsPositive() {
		return nil, apperrors.NewValidationError("laborCost", "allocation total must be positive")
	}

	mo, err := s.optionalOrder(ctx, doc.ManufacturingOrderID)
	if err != nil {
		return nil, err
	}
	wip, err := s.resolveWIP(ctx, nil, mo)
	if err != nil {
		return nil, err
	}
	expense, err := s.resolve(ctx, domain.WithExplicit(domain.CapManufacturingExpense, doc.ExpenseCOAID))
	if err != nil {
		return nil, err
	}

	p := newPlan(doc, domain.JournalManufacturingAllocation, domain.SkipIfPosted)
	p.reference = doc.ReferenceOr(doc.ID)
	p.description = fmt.Sprintf("Labor and overhead allocation %s", p.reference)
	p.debit(wip, total, "")
	p.credit(expense, total, "")

	return s.runner.post(ctx, p)
}

// PostProductionCompletion moves the accumulated production cost of an order from work in
// progress to finished goods.
func (s *postingService) PostProductionCompletion(ctx context.Context, doc domain.Production) (*domain.PostingResult, error) {
	if err := s.validateDocument(ctx, doc); err != nil {
		return nil, err
	}
	if doc.Status != domain.ProductionStatusFinished {
		return nil, apperrors.NewValidationError("status", "production must be finished before posting, status is %q", doc.Status)
	}

	mo, err := s.mfgRepo.FindManufacturingOrder(ctx, doc.ManufacturingOrderID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load manufacturing order", slog.String("mo_id", doc.ManufacturingOrderID))
		return nil, err
	}
	total, err := s.productionCost(ctx, mo)
	if err != nil {
		return nil, err
	}
	if !total.IsPositive() {
		return nil, apperrors.NewValidationError("manufacturingOrderID", "order %s has no production cost to complete", mo.Number)
	}

	wip, err := s.resolveWIP(ctx, nil, mo)
	if err != nil {
		return nil, err
	}
	fgReq := domain.ForCapability(domain.CapFinishedGoods)
	if mo.BOMActive {
		fgReq.DefaultID = mo.FinishedGoodsCOAID
	}
	finished, err := s.resolve(ctx, fgReq)
	if err != nil {
		return nil, err
	}

	p := newPlan(doc, domain.JournalManufacturingCompletion, domain.ReplaceIfPosted)
	p.reference = doc.ReferenceOr(doc.ID)
	p.description = fmt.Sprintf("Production completed for %s", mo.Number)
	p.debit(finished, total, "")
	p.credit(wip, total, "")

	return s.runner.post(ctx, p)
}

// productionCost is net material cost (falling back to the standard cost when nothing net was
// issued) plus labor and overhead per unit, plus allocations linked to the order, floored at zero.
func (s *postingService) productionCost(ctx context.Context, mo *domain.ManufacturingOrder) (decimal.Decimal, error) {
	totals, err := s.mfgRepo.MaterialTotals(ctx, mo.ID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load material totals", slog.String("mo_id", mo.ID))
		return decimal.Zero, err
	}
	allocated, err := s.mfgRepo.SumAllocatedCost(ctx, mo.ID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load allocated cost", slog.String("mo_id", mo.ID))
		return decimal.Zero, err
	}

	material := totals.Issued.Sub(totals.Returned)
	if !material.IsPositive() {
		material = mo.StandardMaterialCost.Mul(mo.Quantity)
	}
	conversion := mo.LaborCost.Add(mo.OverheadCost).Mul(mo.Quantity)

	total := material.Add(conversion).Add(allocated).Round(2)
	return decimal.Max(total, decimal.Zero), nil
}

func (s *postingService) optionalOrder(ctx context.Context, moID *string) (*domain.ManufacturingOrder, error) {
	if moID == nil || *moID == "" {
		return nil, nil
	}
	mo, err := s.mfgRepo.FindManufacturingOrder(ctx, *moID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load manufacturing order", slog.String("mo_id", *moID))
		return nil, err
	}
	return mo, nil
}

// resolveWIP prefers the document's account, then the order's bill of materials account.
func (s *postingService) resolveWIP(ctx context.Context, explicit *string, mo *domain.ManufacturingOrder) (*domain.ChartOfAccount, error) {
	req := domain.WithExplicit(domain.CapWorkInProgress, explicit)
	if mo != nil && mo.BOMActive {
		req.DefaultID = mo.WIPCOAID
	}
	return s.resolve(ctx, req)
}
