package services

import (
	portsrepo "github.com/SscSPs/erp_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/erp_ledger/internal/core/ports/services"
	"github.com/SscSPs/erp_ledger/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Resolvers first since every posting flow depends on them
	container.COA = NewCOAResolver(repos.COARepo, WithCandidateOverrides(cfg.COACandidates))
	container.Dimensions = NewTagResolver(repos.DocumentRepo, repos.ManufacturingRepo)

	container.Posting = NewPostingService(repos, container.COA, container.Dimensions)
	container.Asset = NewAssetService(repos, container.COA, container.Dimensions)
	container.Statement = NewStatementService(repos)

	return container
}
