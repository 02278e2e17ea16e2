package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	portsrepo "github.com/SscSPs/erp_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/erp_ledger/internal/core/ports/services"
	"github.com/SscSPs/erp_ledger/internal/core/services"
	"github.com/SscSPs/erp_ledger/internal/platform/config"
	"github.com/SscSPs/erp_ledger/internal/repositories/cache"
	"github.com/SscSPs/erp_ledger/internal/repositories/database/pgsql"
	"github.com/SscSPs/erp_ledger/pkg/database"
	"github.com/spf13/cobra"
)

// Version is stamped at build time with -ldflags "-X ...commands.Version=...".
var Version = "dev"

// ServiceFactory opens the services a command runs against and returns a func releasing them.
type ServiceFactory func(ctx context.Context, cfg *config.Config) (*portssvc.ServiceContainer, func(), error)

type app struct {
	loadConfig func() (*config.Config, error)
	open       ServiceFactory
	logger     *slog.Logger
}

// Option customizes the root command.
type Option func(*app)

// WithServiceFactory replaces the database-backed services.
func WithServiceFactory(f ServiceFactory) Option {
	return func(a *app) { a.open = f }
}

// WithConfig skips environment loading and uses cfg.
func WithConfig(cfg *config.Config) Option {
	return func(a *app) {
		a.loadConfig = func() (*config.Config, error) { return cfg, nil }
	}
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand(opts ...Option) *cobra.Command {
	a := &app{
		loadConfig: config.LoadConfig,
		open:       openDatabaseServices,
		logger:     slog.New(slog.NewJSONHandler(os.Stderr, nil)),
	}
	for _, opt := range opts {
		opt(a)
	}

	rootCmd := &cobra.Command{
		Use:     "ledgerctl",
		Short:   "Operate the ERP ledger: migrations, depreciation runs and statements",
		Version: Version,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		a.newMigrateCommand(),
		a.newDepreciateCommand(),
		a.newBalanceSheetCommand(),
		a.newIncomeStatementCommand(),
		a.newCOAValidityCommand(),
	)

	return rootCmd
}

// withServices loads the configuration, opens the services and runs fn against them.
func (a *app) withServices(ctx context.Context, fn func(*portssvc.ServiceContainer) error) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	svc, release, err := a.open(ctx, cfg)
	if err != nil {
		return err
	}
	defer release()
	return fn(svc)
}

func openDatabaseServices(ctx context.Context, cfg *config.Config) (*portssvc.ServiceContainer, func(), error) {
	pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, true)
	if err != nil {
		return nil, nil, fmt.Errorf("connecting to database: %w", err)
	}
	// Postings from the CLI still have to retire cached statements.
	var statementCache portsrepo.StatementCache = cache.NoopStatementCache{}
	if cfg.RedisURL != "" {
		client, err := cache.NewRedisClient(cfg.RedisURL)
		if err != nil {
			database.ClosePgxPool(pool)
			return nil, nil, fmt.Errorf("connecting to redis: %w", err)
		}
		statementCache = cache.NewRedisStatementCache(client, cfg.StatementCacheTTL)
	}
	repos := pgsql.NewRepositoryProvider(pool, statementCache)
	return services.NewServiceContainer(cfg, repos), func() { database.ClosePgxPool(pool) }, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
