package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/erp_ledger/internal/models"
	"github.com/SscSPs/erp_ledger/internal/utils/mapping"
	"github.com/SscSPs/erp_ledger/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const entryColumns = `entry_id, coa_id, entry_date, debit, credit, journal_type, source_kind, source_id,
	branch_id, department_id, project_id, reference, description, is_reversal, reversed_entry_id,
	reconciled_at, reconciliation_id, deleted_at, created_at, created_by, last_updated_at, last_updated_by`

type PgxJournalEntryRepository struct {
	BaseRepository
}

// newPgxJournalEntryRepository creates a new repository for journal entries.
func newPgxJournalEntryRepository(pool *pgxpool.Pool) portsrepo.JournalEntryRepositoryFacade {
	return &PgxJournalEntryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.JournalEntryRepositoryFacade = (*PgxJournalEntryRepository)(nil)

// LockGroup serializes postings of the same group until the transaction ends.
func (r *PgxJournalEntryRepository) LockGroup(ctx context.Context, tx pgx.Tx, key domain.GroupKey) error {
	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtextextended($1, 0))`, key.String()); err != nil {
		return apperrors.NewAppError(500, "failed to lock entry group "+key.String(), err)
	}
	return nil
}

// HasLiveEntries reports whether the group has non-deleted entries.
func (r *PgxJournalEntryRepository) HasLiveEntries(ctx context.Context, tx pgx.Tx, key domain.GroupKey) (bool, error) {
	var exists bool
	err := tx.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM journal_entries
			WHERE source_kind = $1 AND source_id = $2 AND journal_type = $3 AND deleted_at IS NULL
		)`, key.Source.Kind, key.Source.ID, key.JournalType).Scan(&exists)
	if err != nil {
		return false, wrapf(err, "failed to check entries of %s", key)
	}
	return exists, nil
}

// SoftDeleteGroup marks the live entries of one group as deleted.
func (r *PgxJournalEntryRepository) SoftDeleteGroup(ctx context.Context, tx pgx.Tx, key domain.GroupKey, deletedBy string, at time.Time) (int64, error) {
	tag, err := tx.Exec(ctx, `
		UPDATE journal_entries
		SET deleted_at = $4, deleted_by = $5, last_updated_at = $4, last_updated_by = $5
		WHERE source_kind = $1 AND source_id = $2 AND journal_type = $3 AND deleted_at IS NULL`,
		key.Source.Kind, key.Source.ID, key.JournalType, at, deletedBy)
	if err != nil {
		return 0, wrapf(err, "failed to delete entries of %s", key)
	}
	return tag.RowsAffected(), nil
}

// SoftDeleteBySource marks every live entry of a source as deleted.
func (r *PgxJournalEntryRepository) SoftDeleteBySource(ctx context.Context, tx pgx.Tx, src domain.SourceRef, deletedBy string, at time.Time) (int64, error) {
	tag, err := tx.Exec(ctx, `
		UPDATE journal_entries
		SET deleted_at = $3, deleted_by = $4, last_updated_at = $3, last_updated_by = $4
		WHERE source_kind = $1 AND source_id = $2 AND deleted_at IS NULL`,
		src.Kind, src.ID, at, deletedBy)
	if err != nil {
		return 0, wrapf(err, "failed to delete entries of %s", src)
	}
	return tag.RowsAffected(), nil
}

// InsertEntries writes an entry group in one batch.
func (r *PgxJournalEntryRepository) InsertEntries(ctx context.Context, tx pgx.Tx, entries []domain.JournalEntry) error {
	if len(entries) == 0 {
		return nil
	}
	query := `
		INSERT INTO journal_entries (` + entryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)`

	batch := &pgx.Batch{}
	for _, entry := range entries {
		m := mapping.ToModelJournalEntry(entry)
		batch.Queue(query,
			m.EntryID, m.COAID, m.EntryDate, m.Debit, m.Credit, m.JournalType, m.SourceKind, m.SourceID,
			m.BranchID, m.DepartmentID, m.ProjectID, m.Reference, m.Description, m.IsReversal, m.ReversedEntryID,
			m.ReconciledAt, m.ReconciliationID, m.DeletedAt, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
		)
	}
	// Close reports the first failed insert of the batch.
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return wrapf(err, "failed to insert entries of %s", entries[0].Source)
	}
	return nil
}

// ListEntriesBySource retrieves the live entries of a source document.
func (r *PgxJournalEntryRepository) ListEntriesBySource(ctx context.Context, src domain.SourceRef) ([]domain.JournalEntry, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT `+entryColumns+`
		FROM journal_entries
		WHERE source_kind = $1 AND source_id = $2 AND deleted_at IS NULL
		ORDER BY journal_type, created_at, entry_id`, src.Kind, src.ID)
	if err != nil {
		return nil, wrapf(err, "failed to list entries of %s", src)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.JournalEntry])
	if err != nil {
		return nil, wrapf(err, "failed to scan entries of %s", src)
	}
	return mapping.ToDomainJournalEntries(ms), nil
}

// accountWindow builds the shared WHERE clause of account drill-down queries.
func accountWindow(filter domain.EntryFilter) (string, []any) {
	where := `coa_id = $1 AND deleted_at IS NULL AND entry_date <= $2
		AND ($3::date IS NULL OR entry_date >= $3)
		AND ($4::text IS NULL OR branch_id = $4)`
	return where, []any{filter.AccountID, filter.To, filter.From, filter.BranchID}
}

// ListEntriesByAccount retrieves entries of one account newest first. The token encodes the
// last returned (date, created_at, id) position.
func (r *PgxJournalEntryRepository) ListEntriesByAccount(ctx context.Context, filter domain.EntryFilter) ([]domain.JournalEntry, *string, error) {
	where, args := accountWindow(filter)
	if filter.NextToken != nil && *filter.NextToken != "" {
		cursor, err := pagination.DecodeEntryCursor(*filter.NextToken)
		if err != nil {
			return nil, nil, apperrors.NewValidationError("nextToken", "%v", err)
		}
		where += ` AND (entry_date, created_at, entry_id) < ($5::date, $6::timestamptz, $7::text)`
		args = append(args, cursor.EntryDate, cursor.CreatedAt, cursor.EntryID)
	}
	args = append(args, filter.Limit+1)

	query := fmt.Sprintf(`
		SELECT %s
		FROM journal_entries
		WHERE %s
		ORDER BY entry_date DESC, created_at DESC, entry_id DESC
		LIMIT $%d`, entryColumns, where, len(args))

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, wrapf(err, "failed to list entries of account %s", filter.AccountID)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.JournalEntry])
	if err != nil {
		return nil, nil, wrapf(err, "failed to scan entries of account %s", filter.AccountID)
	}

	var next *string
	if len(ms) > filter.Limit {
		ms = ms[:filter.Limit]
		last := ms[len(ms)-1]
		token := pagination.EntryCursor{EntryDate: last.EntryDate, CreatedAt: last.CreatedAt, EntryID: last.EntryID}.Encode()
		next = &token
	}
	return mapping.ToDomainJournalEntries(ms), next, nil
}

// SumAccountEntries totals one account over the filter window, ignoring pagination.
func (r *PgxJournalEntryRepository) SumAccountEntries(ctx context.Context, filter domain.EntryFilter) (domain.AccountActivity, error) {
	where, args := accountWindow(filter)
	activity := domain.AccountActivity{Debit: decimal.Zero, Credit: decimal.Zero}
	err := r.Pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(debit), 0), COALESCE(SUM(credit), 0)
		FROM journal_entries
		WHERE `+where, args...).Scan(&activity.Debit, &activity.Credit)
	if err != nil {
		return activity, wrapf(err, "failed to total entries of account %s", filter.AccountID)
	}
	activity.Account.ID = filter.AccountID
	return activity, nil
}

// NextSequence hands out per-prefix, per-day numbers. The row lock taken by the upsert
// serializes concurrent callers until their transactions end.
func (r *PgxJournalEntryRepository) NextSequence(ctx context.Context, tx pgx.Tx, prefix string, day time.Time) (int, error) {
	var seq int
	err := tx.QueryRow(ctx, `
		INSERT INTO document_sequences (prefix, seq_date, last_value)
		VALUES ($1, $2, 1)
		ON CONFLICT (prefix, seq_date) DO UPDATE SET last_value = document_sequences.last_value + 1
		RETURNING last_value`, prefix, day).Scan(&seq)
	if err != nil {
		return 0, wrapf(err, "failed to allocate %s sequence", prefix)
	}
	return seq, nil
}
