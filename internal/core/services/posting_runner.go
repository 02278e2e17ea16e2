package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/erp_ledger/internal/core/ports/services"
	"github.com/SscSPs/erp_ledger/internal/utils/accounting"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// planLine is one side of one account in a prepared entry group.
type planLine struct {
	coaID       string
	debit       decimal.Decimal
	credit      decimal.Decimal
	description string
}

// postingPlan is an entry group prepared outside the transaction. Every account is resolved
// before the plan reaches the runner.
type postingPlan struct {
	key         domain.GroupKey
	mode        domain.IdempotencyMode
	date        time.Time
	reference   string
	description string
	links       domain.DocumentLinks
	createdBy   string
	lines       []planLine

	// inTx runs after the lock and idempotency check. A non-empty skip message ends the
	// posting as skipped without writing.
	inTx func(ctx context.Context, tx pgx.Tx, p *postingPlan) (skip string, err error)

	// afterInsert runs flow side effects in the same transaction as the entries.
	afterInsert func(ctx context.Context, tx pgx.Tx, entries []domain.JournalEntry) error
}

func newPlan(doc domain.Document, journalType domain.JournalType, mode domain.IdempotencyMode) *postingPlan {
	links := doc.Links()
	return &postingPlan{
		key:       domain.GroupKey{Source: doc.SourceRef(), JournalType: journalType},
		mode:      mode,
		date:      doc.DocumentDate(),
		links:     links,
		createdBy: links.CreatedBy,
	}
}

func (p *postingPlan) debit(coa *domain.ChartOfAccount, amount decimal.Decimal, description string) {
	if !amount.IsPositive() {
		return
	}
	p.lines = append(p.lines, planLine{coaID: coa.ID, debit: amount, credit: decimal.Zero, description: description})
}

func (p *postingPlan) credit(coa *domain.ChartOfAccount, amount decimal.Decimal, description string) {
	if !amount.IsPositive() {
		return
	}
	p.lines = append(p.lines, planLine{coaID: coa.ID, debit: decimal.Zero, credit: amount, description: description})
}

// accountAmounts accumulates amounts per account, keeping first-seen order.
type accountAmounts struct {
	order    []*domain.ChartOfAccount
	amounts  map[string]decimal.Decimal
	firstFor map[string]string
}

func newAccountAmounts() *accountAmounts {
	return &accountAmounts{amounts: map[string]decimal.Decimal{}, firstFor: map[string]string{}}
}

func (a *accountAmounts) add(coa *domain.ChartOfAccount, amount decimal.Decimal, description string) {
	if _, ok := a.amounts[coa.ID]; !ok {
		a.order = append(a.order, coa)
		a.amounts[coa.ID] = decimal.Zero
		a.firstFor[coa.ID] = description
	}
	a.amounts[coa.ID] = a.amounts[coa.ID].Add(amount)
}

func (a *accountAmounts) each(fn func(coa *domain.ChartOfAccount, amount decimal.Decimal, description string)) {
	for _, coa := range a.order {
		fn(coa, a.amounts[coa.ID], a.firstFor[coa.ID])
	}
}

// postingRunner writes prepared entry groups. It is shared by every posting service.
type postingRunner struct {
	BaseService
	entryRepo portsrepo.JournalEntryRepositoryFacade
	docRepo   portsrepo.DocumentGraphWriter
	tags      portssvc.TagResolverSvc
	cache     portsrepo.StatementCache
	now       func() time.Time
	newID     func() string
}

func newPostingRunner(entryRepo portsrepo.JournalEntryRepositoryFacade, docRepo portsrepo.DocumentGraphWriter, tags portssvc.TagResolverSvc, cache portsrepo.StatementCache) *postingRunner {
	return &postingRunner{
		entryRepo: entryRepo,
		docRepo:   docRepo,
		tags:      tags,
		cache:     cache,
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

// post locks the entry group, applies the idempotency mode, inserts the balanced entries with
// their document links and side effects, and commits.
func (r *postingRunner) post(ctx context.Context, p *postingPlan) (*domain.PostingResult, error) {
	tags := r.tags.ResolveAll(ctx, p.links)
	logAttrs := []any{
		slog.String("source", p.key.Source.String()),
		slog.String("journal_type", string(p.key.JournalType)),
	}

	tx, err := r.entryRepo.Begin(ctx)
	if err != nil {
		r.LogError(ctx, err, "Failed to begin posting transaction", logAttrs...)
		return nil, err
	}
	defer func() {
		_ = r.entryRepo.Rollback(ctx, tx)
	}()

	if err := r.entryRepo.LockGroup(ctx, tx, p.key); err != nil {
		r.LogError(ctx, err, "Failed to lock entry group", logAttrs...)
		return nil, err
	}

	now := r.now()
	switch p.mode {
	case domain.SkipIfPosted:
		exists, err := r.entryRepo.HasLiveEntries(ctx, tx, p.key)
		if err != nil {
			r.LogError(ctx, err, "Failed to check existing entries", logAttrs...)
			return nil, err
		}
		if exists {
			r.LogInfo(ctx, "Entry group already posted, skipping", logAttrs...)
			return domain.Skipped(p.key, "already posted"), nil
		}
	case domain.ReplaceIfPosted:
		removed, err := r.entryRepo.SoftDeleteGroup(ctx, tx, p.key, p.createdBy, now)
		if err != nil {
			r.LogError(ctx, err, "Failed to remove previous entries", logAttrs...)
			return nil, err
		}
		if removed > 0 {
			r.LogDebug(ctx, "Replaced previous entries", append(logAttrs, slog.Int64("removed", removed))...)
		}
	}

	if p.inTx != nil {
		skip, err := p.inTx(ctx, tx, p)
		if err != nil {
			r.LogError(ctx, err, "Posting precondition failed", logAttrs...)
			return nil, err
		}
		if skip != "" {
			r.LogInfo(ctx, "Posting skipped", append(logAttrs, slog.String("reason", skip))...)
			return domain.Skipped(p.key, skip), nil
		}
	}

	entries := r.buildEntries(p, tags, now)
	if err := accounting.ValidateEntryGroup(entries); err != nil {
		r.LogError(ctx, err, "Entry group rejected", logAttrs...)
		return nil, err
	}

	if err := r.entryRepo.InsertEntries(ctx, tx, entries); err != nil {
		r.LogError(ctx, err, "Failed to insert entries", logAttrs...)
		return nil, err
	}
	if err := r.docRepo.UpsertLinks(ctx, tx, p.links); err != nil {
		r.LogError(ctx, err, "Failed to record document links", logAttrs...)
		return nil, err
	}
	if p.afterInsert != nil {
		if err := p.afterInsert(ctx, tx, entries); err != nil {
			r.LogError(ctx, err, "Posting side effect failed", logAttrs...)
			return nil, err
		}
	}

	if err := r.entryRepo.Commit(ctx, tx); err != nil {
		r.LogError(ctx, err, "Failed to commit posting", logAttrs...)
		return nil, err
	}
	r.cache.Invalidate(ctx)

	debit, _ := accounting.SumEntries(entries)
	r.LogInfo(ctx, "Entry group posted", append(logAttrs,
		slog.Int("entry_count", len(entries)),
		slog.String("amount", debit.StringFixed(2)))...)

	return &domain.PostingResult{
		Status:      domain.PostingPosted,
		Source:      p.key.Source,
		JournalType: p.key.JournalType,
		Entries:     entries,
	}, nil
}

func (r *postingRunner) buildEntries(p *postingPlan, tags domain.Dimensions, now time.Time) []domain.JournalEntry {
	entries := make([]domain.JournalEntry, 0, len(p.lines))
	for _, line := range p.lines {
		description := line.description
		if description == "" {
			description = p.description
		}
		entries = append(entries, domain.JournalEntry{
			ID:          r.newID(),
			COAID:       line.coaID,
			Date:        p.date,
			Debit:       line.debit,
			Credit:      line.credit,
			JournalType: p.key.JournalType,
			Source:      p.key.Source,
			Tags:        tags,
			Reference:   p.reference,
			Description: description,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     p.createdBy,
				LastUpdatedAt: now,
				LastUpdatedBy: p.createdBy,
			},
		})
	}
	return entries
}

// withTx runs fn in a transaction, committing when it succeeds.
func (r *postingRunner) withTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.entryRepo.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = r.entryRepo.Rollback(ctx, tx)
	}()

	if err := fn(tx); err != nil {
		return err
	}
	if err := r.entryRepo.Commit(ctx, tx); err != nil {
		return err
	}
	r.cache.Invalidate(ctx)
	return nil
}

// nextReference formats a per-day document number such as CB-20250131-0001.
func (r *postingRunner) nextReference(ctx context.Context, tx pgx.Tx, prefix string, day time.Time) (string, error) {
	seq, err := r.entryRepo.NextSequence(ctx, tx, prefix, day)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-%s-%04d", prefix, day.Format("20060102"), seq), nil
}
