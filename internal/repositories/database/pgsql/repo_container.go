package pgsql

import (
	portsrepo "github.com/SscSPs/erp_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every Postgres repository together with the statement cache.
func NewRepositoryProvider(dbPool *pgxpool.Pool, cache portsrepo.StatementCache) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		COARepo:           newPgxCOARepository(dbPool),
		EntryRepo:         newPgxJournalEntryRepository(dbPool),
		DocumentRepo:      newPgxDocumentGraphRepository(dbPool),
		ManufacturingRepo: newPgxManufacturingRepository(dbPool),
		AssetRepo:         newPgxAssetRepository(dbPool),
		ReportingRepo:     newReportingRepository(dbPool),
		StatementCache:    cache,
	}
}
