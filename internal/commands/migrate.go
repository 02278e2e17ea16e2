package commands

import (
	"fmt"
	"log/slog"

	"github.com/SscSPs/erp_ledger/pkg/database"
	"github.com/spf13/cobra"
)

func (a *app) newMigrateCommand() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if path == "" {
				path = cfg.MigrationsPath
			}
			applied, err := database.RunMigrations(cfg.DatabaseURL, path, a.logger)
			if err != nil {
				return err
			}
			a.logger.Info("Migrate finished", slog.Bool("applied", applied), slog.String("path", path))
			if applied {
				fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "no new migrations")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "path", "", "migrations source URL (defaults to MIGRATIONS_PATH)")

	return cmd
}
