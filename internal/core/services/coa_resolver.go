package services

import (
	"context"
	"errors"
	"log/slog"
	"slices"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/erp_ledger/internal/core/ports/services"
)

// coaResolver implements portssvc.AccountResolverSvc
type coaResolver struct {
	BaseService
	coaRepo    portsrepo.COAReader
	candidates map[domain.Capability][]string
}

// COAResolverOption is a functional option for configuring the account resolver
type COAResolverOption func(*coaResolver)

// WithCandidateOverrides replaces the candidate codes of the given capabilities.
func WithCandidateOverrides(overrides map[string][]string) COAResolverOption {
	return func(r *coaResolver) {
		for capability, codes := range overrides {
			if len(codes) == 0 {
				continue
			}
			r.candidates[domain.Capability(capability)] = slices.Clone(codes)
		}
	}
}

// NewCOAResolver creates an account resolver backed by the declared capability table.
func NewCOAResolver(repo portsrepo.COAReader, options ...COAResolverOption) portssvc.AccountResolverSvc {
	r := &coaResolver{
		coaRepo:    repo,
		candidates: make(map[domain.Capability][]string, len(domain.DefaultCandidates)),
	}
	for capability, codes := range domain.DefaultCandidates {
		r.candidates[capability] = slices.Clone(codes)
	}
	for _, option := range options {
		option(r)
	}
	return r
}

var _ portssvc.AccountResolverSvc = (*coaResolver)(nil)

// Resolve tries the explicit id, then the default id, then the capability's candidate codes by
// exact match and finally by prefix match.
func (r *coaResolver) Resolve(ctx context.Context, req domain.AccountRequest) (*domain.ChartOfAccount, error) {
	for _, id := range []*string{req.ExplicitID, req.DefaultID} {
		if id == nil || *id == "" {
			continue
		}
		account, err := r.coaRepo.FindAccountByID(ctx, *id)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				r.LogDebug(ctx, "Configured account not found, falling through", slog.String("coa_id", *id))
				continue
			}
			return nil, err
		}
		if !account.IsActive {
			r.LogDebug(ctx, "Configured account is inactive, falling through", slog.String("coa_id", *id))
			continue
		}
		return account, nil
	}

	if req.Capability == "" {
		id := ""
		if req.ExplicitID != nil {
			id = *req.ExplicitID
		}
		return nil, apperrors.NewValidationError("coaID", "account %s does not exist or is inactive", id)
	}

	codes := r.candidates[req.Capability]
	for _, code := range codes {
		account, err := r.coaRepo.FindActiveByCode(ctx, code)
		if err == nil {
			return account, nil
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
	}
	for _, code := range codes {
		account, err := r.coaRepo.FindFirstActiveByCodePrefix(ctx, code)
		if err == nil {
			return account, nil
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
	}

	cfgErr := &apperrors.ConfigurationError{Capability: string(req.Capability), Tried: slices.Clone(codes)}
	r.LogError(ctx, cfgErr, "No account resolved for capability", slog.String("capability", string(req.Capability)))
	return nil, cfgErr
}
