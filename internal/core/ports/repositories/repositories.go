package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	COARepo           COARepositoryFacade
	EntryRepo         JournalEntryRepositoryFacade
	DocumentRepo      DocumentGraphRepositoryFacade
	ManufacturingRepo ManufacturingRepositoryFacade
	AssetRepo         AssetRepositoryFacade
	ReportingRepo     ReportingRepository
	StatementCache    StatementCache
}
