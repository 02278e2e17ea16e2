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
	"github.com/go-playground/validator/v10"
)

// postingService turns business documents into balanced entry groups.
type postingService struct {
	BaseService
	runner   *postingRunner
	accounts portssvc.AccountResolverSvc
	mfgRepo  portsrepo.ManufacturingRepositoryFacade
	validate *validator.Validate
}

// PostingServiceOption is a functional option for configuring the posting service
type PostingServiceOption func(*postingService)

// WithPostingClock overrides the clock used for audit timestamps.
func WithPostingClock(now func() time.Time) PostingServiceOption {
	return func(s *postingService) {
		s.runner.now = now
	}
}

// WithPostingIDGenerator overrides how entry ids are generated.
func WithPostingIDGenerator(newID func() string) PostingServiceOption {
	return func(s *postingService) {
		s.runner.newID = newID
	}
}

// NewPostingService creates the posting service for documents, cash/bank and manufacturing flows.
func NewPostingService(
	repos portsrepo.RepositoryProvider,
	accounts portssvc.AccountResolverSvc,
	tags portssvc.TagResolverSvc,
	options ...PostingServiceOption,
) portssvc.PostingSvcFacade {
	svc := &postingService{
		runner:   newPostingRunner(repos.EntryRepo, repos.DocumentRepo, tags, repos.StatementCache),
		accounts: accounts,
		mfgRepo:  repos.ManufacturingRepo,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.PostingSvcFacade = (*postingService)(nil)

// ListEntriesBySource retrieves the live entries of a source document.
func (s *postingService) ListEntriesBySource(ctx context.Context, src domain.SourceRef) ([]domain.JournalEntry, error) {
	if src.IsZero() {
		return nil, apperrors.NewValidationError("source", "source kind and id are required")
	}
	entries, err := s.runner.entryRepo.ListEntriesBySource(ctx, src)
	if err != nil {
		s.LogError(ctx, err, "Failed to list entries by source", slog.String("source", src.String()))
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	return entries, nil
}

func (s *postingService) resolve(ctx context.Context, req domain.AccountRequest) (*domain.ChartOfAccount, error) {
	return s.accounts.Resolve(ctx, req)
}

// requireAccount resolves an account the document must name explicitly.
func (s *postingService) requireAccount(ctx context.Context, field string, id *string) (*domain.ChartOfAccount, error) {
	if id == nil || *id == "" {
		return nil, apperrors.NewValidationError(field, "account is required")
	}
	account, err := s.accounts.Resolve(ctx, domain.AccountRequest{ExplicitID: id})
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			return nil, apperrors.NewValidationError(field, "account %s does not exist or is inactive", *id)
		}
		return nil, err
	}
	return account, nil
}

func (s *postingService) validateDocument(ctx context.Context, doc any) error {
	if err := ValidateStruct(s.validate, doc); err != nil {
		s.LogDebug(ctx, "Document failed validation", slog.String("error", err.Error()))
		return err
	}
	return nil
}
