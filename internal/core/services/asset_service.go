package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/erp_ledger/internal/core/ports/services"
	"github.com/SscSPs/erp_ledger/internal/utils/accounting"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// assetService posts the fixed asset lifecycle.
type assetService struct {
	BaseService
	runner    *postingRunner
	assetRepo portsrepo.AssetRepositoryFacade
	accounts  portssvc.AccountResolverSvc
	validate  *validator.Validate
}

// AssetServiceOption is a functional option for configuring the asset service
type AssetServiceOption func(*assetService)

// WithAssetClock overrides the clock used for audit timestamps.
func WithAssetClock(now func() time.Time) AssetServiceOption {
	return func(s *assetService) {
		s.runner.now = now
	}
}

// WithAssetIDGenerator overrides how entry and depreciation ids are generated.
func WithAssetIDGenerator(newID func() string) AssetServiceOption {
	return func(s *assetService) {
		s.runner.newID = newID
	}
}

// NewAssetService creates the asset lifecycle service.
func NewAssetService(
	repos portsrepo.RepositoryProvider,
	accounts portssvc.AccountResolverSvc,
	tags portssvc.TagResolverSvc,
	options ...AssetServiceOption,
) portssvc.AssetSvcFacade {
	svc := &assetService{
		runner:    newPostingRunner(repos.EntryRepo, repos.DocumentRepo, tags, repos.StatementCache),
		assetRepo: repos.AssetRepo,
		accounts:  accounts,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.AssetSvcFacade = (*assetService)(nil)

func assetPlan(src domain.SourceRef, journalType domain.JournalType, date time.Time, asset *domain.FixedAsset, createdBy string) *postingPlan {
	return &postingPlan{
		key:  domain.GroupKey{Source: src, JournalType: journalType},
		mode: domain.SkipIfPosted,
		date: date,
		links: domain.DocumentLinks{
			Source:      src,
			Tags:        asset.Tags,
			WarehouseID: asset.WarehouseID,
			CreatedBy:   createdBy,
		},
		createdBy: createdBy,
	}
}

func (s *assetService) loadAsset(ctx context.Context, assetID string) (*domain.FixedAsset, error) {
	asset, err := s.assetRepo.FindAssetByID(ctx, assetID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load asset", slog.String("asset_id", assetID))
		return nil, err
	}
	return asset, nil
}

// PostAcquisition debits the asset account for the purchase cost and credits the funding
// account, or asset payable when none is configured.
func (s *assetService) PostAcquisition(ctx context.Context, req domain.AssetAcquisition) (*domain.PostingResult, error) {
	if err := ValidateStruct(s.validate, req); err != nil {
		return nil, err
	}
	asset, err := s.loadAsset(ctx, req.AssetID)
	if err != nil {
		return nil, err
	}
	if asset.Status == domain.AssetDisposed {
		return nil, apperrors.NewValidationError("assetID", "asset %s is disposed", asset.Code)
	}
	if !asset.PurchaseCost.IsPositive() {
		return nil, apperrors.NewValidationError("purchaseCost", "asset %s has no purchase cost", asset.Code)
	}

	assetAccount, err := s.accounts.Resolve(ctx, domain.WithExplicit(domain.CapFixedAsset, asset.AssetCOAID))
	if err != nil {
		return nil, err
	}
	funding, err := s.accounts.Resolve(ctx, domain.AccountRequest{
		Capability: domain.CapAssetPayable,
		ExplicitID: req.FundingCOAID,
		DefaultID:  asset.FundingCOAID,
	})
	if err != nil {
		return nil, err
	}

	p := assetPlan(domain.SourceRef{Kind: domain.SourceAsset, ID: asset.ID}, domain.JournalAssetAcquisition, req.Date, asset, req.CreatedBy)
	p.reference = req.Reference
	if p.reference == "" {
		p.reference = "ACQ-" + asset.Code
	}
	p.description = fmt.Sprintf("Acquisition of %s", asset.Name)
	p.debit(assetAccount, asset.PurchaseCost, "")
	p.credit(funding, asset.PurchaseCost, "")

	return s.runner.post(ctx, p)
}

// PostDepreciation posts one month of depreciation. A second posting for the same asset and
// period is skipped.
func (s *assetService) PostDepreciation(ctx context.Context, req domain.DepreciationRequest) (*domain.PostingResult, error) {
	if err := ValidateStruct(s.validate, req); err != nil {
		return nil, err
	}
	asset, err := s.loadAsset(ctx, req.AssetID)
	if err != nil {
		return nil, err
	}
	expense, err := s.accounts.Resolve(ctx, domain.WithExplicit(domain.CapDepreciationExpense, asset.ExpenseCOAID))
	if err != nil {
		return nil, err
	}
	accumulated, err := s.accounts.Resolve(ctx, domain.WithExplicit(domain.CapAccumulatedDepreciation, asset.AccumulatedCOAID))
	if err != nil {
		return nil, err
	}

	period := domain.PeriodOf(req.Date)
	dep := domain.AssetDepreciation{
		ID:      s.runner.newID(),
		AssetID: asset.ID,
		Period:  period,
		Date:    req.Date,
		Status:  domain.DepreciationRecorded,
	}
	p := assetPlan(domain.SourceRef{Kind: domain.SourceAssetDepreciation, ID: dep.ID}, domain.JournalDepreciation, req.Date, asset, req.CreatedBy)

	var locked *domain.FixedAsset
	p.inTx = func(ctx context.Context, tx pgx.Tx, p *postingPlan) (string, error) {
		locked, err = s.assetRepo.LockAsset(ctx, tx, asset.ID)
		if err != nil {
			return "", err
		}
		existing, err := s.assetRepo.FindRecordedDepreciation(ctx, tx, locked.ID, period)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return "", err
		}
		if existing != nil {
			return fmt.Sprintf("depreciation for %s already recorded as %s", period, existing.Reference), nil
		}
		amount, err := checkDepreciable(locked, req.Date)
		if err != nil {
			return "", err
		}

		dep.Amount = amount
		dep.Reference = fmt.Sprintf("DEP-%s-%s", req.Date.Format("200601"), locked.Code)
		p.reference = dep.Reference
		p.description = fmt.Sprintf("Depreciation %s for %s", period, locked.Name)
		p.debit(expense, amount, "")
		p.credit(accumulated, amount, "")
		return "", nil
	}
	p.afterInsert = func(ctx context.Context, tx pgx.Tx, _ []domain.JournalEntry) error {
		recorded, err := s.assetRepo.SumRecordedDepreciation(ctx, tx, locked.ID)
		if err != nil {
			return err
		}
		total := recorded.Add(dep.Amount)
		now := s.runner.now()
		dep.AccumulatedTotal = total
		dep.BookValue = locked.PurchaseCost.Sub(total)
		dep.AuditFields = domain.AuditFields{CreatedAt: now, CreatedBy: req.CreatedBy, LastUpdatedAt: now, LastUpdatedBy: req.CreatedBy}
		if err := s.assetRepo.InsertDepreciation(ctx, tx, dep); err != nil {
			return err
		}
		locked.Recompute(total)
		return s.assetRepo.UpdateAssetAggregates(ctx, tx, *locked)
	}

	return s.runner.post(ctx, p)
}

// checkDepreciable returns the monthly amount when the asset may be depreciated on date.
func checkDepreciable(asset *domain.FixedAsset, date time.Time) (decimal.Decimal, error) {
	if asset.Status != domain.AssetActive {
		return decimal.Zero, apperrors.NewValidationError("status", "asset %s is %s", asset.Code, asset.Status)
	}
	if asset.InTransfer {
		return decimal.Zero, apperrors.NewValidationError("status", "asset %s is in transfer", asset.Code)
	}
	inUse := asset.UsageDate
	if inUse.IsZero() {
		inUse = asset.PurchaseDate
	}
	if date.Before(inUse) {
		return decimal.Zero, apperrors.NewValidationError("date", "asset %s is not in use until %s", asset.Code, inUse.Format(time.DateOnly))
	}
	amount := asset.MonthlyAmount()
	if !amount.IsPositive() {
		return decimal.Zero, apperrors.NewValidationError("monthlyDepreciation", "asset %s has no monthly depreciation", asset.Code)
	}
	after := asset.PurchaseCost.Sub(asset.AccumulatedDepreciation).Sub(amount)
	if after.LessThan(asset.SalvageValue) {
		return decimal.Zero, apperrors.NewValidationError("monthlyDepreciation",
			"depreciating %s would take book value to %s, below salvage value %s",
			amount.StringFixed(2), after.StringFixed(2), asset.SalvageValue.StringFixed(2))
	}
	return amount, nil
}

// ReverseDepreciation marks a depreciation reversed, removes its entries and recomputes the
// asset aggregates from the remaining recorded depreciations.
func (s *assetService) ReverseDepreciation(ctx context.Context, depreciationID string, userID string) (*domain.FixedAsset, error) {
	dep, err := s.assetRepo.FindDepreciationByID(ctx, depreciationID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load depreciation", slog.String("depreciation_id", depreciationID))
		return nil, err
	}
	if dep.Status != domain.DepreciationRecorded {
		return nil, apperrors.NewValidationError("depreciationID", "depreciation %s is already %s", dep.Reference, dep.Status)
	}

	var asset *domain.FixedAsset
	err = s.runner.withTx(ctx, func(tx pgx.Tx) error {
		asset, err = s.assetRepo.LockAsset(ctx, tx, dep.AssetID)
		if err != nil {
			return err
		}
		if asset.Status == domain.AssetDisposed {
			return apperrors.NewValidationError("assetID", "asset %s is disposed", asset.Code)
		}
		now := s.runner.now()
		if err := s.assetRepo.MarkDepreciationReversed(ctx, tx, dep.ID, userID, now); err != nil {
			return err
		}
		src := domain.SourceRef{Kind: domain.SourceAssetDepreciation, ID: dep.ID}
		if _, err := s.runner.entryRepo.SoftDeleteBySource(ctx, tx, src, userID, now); err != nil {
			return err
		}
		recorded, err := s.assetRepo.SumRecordedDepreciation(ctx, tx, asset.ID)
		if err != nil {
			return err
		}
		asset.Recompute(recorded)
		return s.assetRepo.UpdateAssetAggregates(ctx, tx, *asset)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to reverse depreciation", slog.String("depreciation_id", depreciationID))
		return nil, err
	}

	s.LogInfo(ctx, "Depreciation reversed",
		slog.String("depreciation_id", dep.ID),
		slog.String("asset_id", asset.ID),
		slog.String("book_value", asset.BookValue.StringFixed(2)))
	return asset, nil
}

// GenerateMonthlyDepreciation posts depreciation dated the last day of period for every active asset.
func (s *assetService) GenerateMonthlyDepreciation(ctx context.Context, period string, userID string) (*domain.DepreciationBatchResult, error) {
	start, err := time.Parse("2006-01", period)
	if err != nil {
		return nil, apperrors.NewValidationError("period", "period must be formatted as YYYY-MM")
	}
	date := start.AddDate(0, 1, -1)

	assets, err := s.assetRepo.ListActiveAssets(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list active assets")
		return nil, err
	}

	result := &domain.DepreciationBatchResult{Period: period, Errors: []string{}}
	for _, asset := range assets {
		res, err := s.PostDepreciation(ctx, domain.DepreciationRequest{AssetID: asset.ID, Date: date, CreatedBy: userID})
		switch {
		case err != nil:
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", asset.Code, err))
		case res.Status == domain.PostingSkipped:
			result.Skipped++
		default:
			result.Success++
		}
	}

	s.LogInfo(ctx, "Monthly depreciation generated",
		slog.String("period", period),
		slog.Int("success", result.Success),
		slog.Int("skipped", result.Skipped),
		slog.Int("failed", result.Failed))
	return result, nil
}

// PostDisposal removes an asset from the books. Gain is credited and loss debited by sign.
func (s *assetService) PostDisposal(ctx context.Context, disposal domain.AssetDisposal) (*domain.PostingResult, error) {
	if err := ValidateStruct(s.validate, disposal); err != nil {
		return nil, err
	}
	if disposal.SalePrice.IsNegative() {
		return nil, apperrors.NewValidationError("salePrice", "sale price must not be negative")
	}
	if err := accounting.RequireCents("salePrice", disposal.SalePrice); err != nil {
		return nil, err
	}
	asset, err := s.loadAsset(ctx, disposal.AssetID)
	if err != nil {
		return nil, err
	}
	if err := checkDisposable(asset); err != nil {
		return nil, err
	}

	preview := disposal
	preview.ComputeGainLoss(*asset)
	accounts, err := s.disposalAccounts(ctx, asset, preview)
	if err != nil {
		return nil, err
	}

	src := domain.SourceRef{Kind: domain.SourceAssetDisposal, ID: disposal.ID}
	p := assetPlan(src, domain.JournalDisposal, disposal.Date, asset, disposal.CreatedBy)
	p.links.Tags = mergeTags(disposal.Tags, asset.Tags)
	p.reference = disposal.Number
	if p.reference == "" {
		p.reference = "DSP-" + asset.Code
	}
	p.description = fmt.Sprintf("Disposal (%s) of %s", disposal.Type, asset.Name)

	var locked *domain.FixedAsset
	p.inTx = func(ctx context.Context, tx pgx.Tx, p *postingPlan) (string, error) {
		locked, err = s.assetRepo.LockAsset(ctx, tx, asset.ID)
		if err != nil {
			return "", err
		}
		if err := checkDisposable(locked); err != nil {
			return "", err
		}
		disposal.ComputeGainLoss(*locked)
		return "", accounts.lines(p, locked, disposal)
	}
	p.afterInsert = func(ctx context.Context, tx pgx.Tx, _ []domain.JournalEntry) error {
		disposal.Number = p.reference
		if err := s.assetRepo.InsertDisposal(ctx, tx, disposal); err != nil {
			return err
		}
		locked.Status = domain.AssetDisposed
		return s.assetRepo.UpdateAssetAggregates(ctx, tx, *locked)
	}

	return s.runner.post(ctx, p)
}

func checkDisposable(asset *domain.FixedAsset) error {
	if asset.Status == domain.AssetDisposed {
		return apperrors.NewValidationError("assetID", "asset %s is already disposed", asset.Code)
	}
	if asset.InTransfer {
		return apperrors.NewValidationError("assetID", "asset %s is in transfer", asset.Code)
	}
	return nil
}

type disposalAccounts struct {
	asset       *domain.ChartOfAccount
	accumulated *domain.ChartOfAccount
	cash        *domain.ChartOfAccount
	gain        *domain.ChartOfAccount
	loss        *domain.ChartOfAccount
}

// disposalAccounts resolves the accounts the previewed disposal needs.
func (s *assetService) disposalAccounts(ctx context.Context, asset *domain.FixedAsset, preview domain.AssetDisposal) (*disposalAccounts, error) {
	var (
		a   disposalAccounts
		err error
	)
	if a.asset, err = s.accounts.Resolve(ctx, domain.WithExplicit(domain.CapFixedAsset, asset.AssetCOAID)); err != nil {
		return nil, err
	}
	if asset.AccumulatedDepreciation.IsPositive() {
		if a.accumulated, err = s.accounts.Resolve(ctx, domain.WithExplicit(domain.CapAccumulatedDepreciation, asset.AccumulatedCOAID)); err != nil {
			return nil, err
		}
	}
	if preview.SalePrice.IsPositive() {
		if a.cash, err = s.accounts.Resolve(ctx, domain.WithExplicit(domain.CapCashBank, preview.CashCOAID)); err != nil {
			return nil, err
		}
	}
	switch preview.GainLossType {
	case domain.GainLossGain:
		a.gain, err = s.accounts.Resolve(ctx, domain.ForCapability(domain.CapDisposalGain))
	case domain.GainLossLoss:
		a.loss, err = s.accounts.Resolve(ctx, domain.ForCapability(domain.CapDisposalLoss))
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// lines adds the disposal entries for the locked asset. The asset must not have changed in a way
// that needs an account the preview did not resolve.
func (a *disposalAccounts) lines(p *postingPlan, asset *domain.FixedAsset, d domain.AssetDisposal) error {
	changed := (asset.AccumulatedDepreciation.IsPositive() && a.accumulated == nil) ||
		(d.GainLossType == domain.GainLossGain && a.gain == nil) ||
		(d.GainLossType == domain.GainLossLoss && a.loss == nil)
	if changed {
		return apperrors.NewValidationError("assetID", "asset %s changed while disposing, retry", asset.Code)
	}

	if a.accumulated != nil {
		p.debit(a.accumulated, asset.AccumulatedDepreciation, "Accumulated depreciation")
	}
	if a.cash != nil {
		p.debit(a.cash, d.SalePrice, "Sale proceeds")
	}
	if d.GainLossType == domain.GainLossLoss {
		p.debit(a.loss, d.GainLossAmount.Abs(), "Loss on disposal")
	}
	p.credit(a.asset, asset.PurchaseCost, "Asset cost")
	if d.GainLossType == domain.GainLossGain {
		p.credit(a.gain, d.GainLossAmount, "Gain on disposal")
	}
	return nil
}

// mergeTags fills the unset dimensions of primary from fallback.
func mergeTags(primary, fallback domain.Dimensions) domain.Dimensions {
	for _, dim := range domain.AllDimensions {
		if primary.Get(dim) == nil {
			primary.Set(dim, fallback.Get(dim))
		}
	}
	return primary
}
