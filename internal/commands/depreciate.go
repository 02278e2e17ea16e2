package commands

import (
	"fmt"
	"log/slog"
	"time"

	portssvc "github.com/SscSPs/erp_ledger/internal/core/ports/services"
	"github.com/spf13/cobra"
)

func (a *app) newDepreciateCommand() *cobra.Command {
	var period string
	var userID string

	cmd := &cobra.Command{
		Use:   "depreciate",
		Short: "Post monthly depreciation for every active asset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := time.Parse("2006-01", period); err != nil {
				return fmt.Errorf("invalid --period %q, want YYYY-MM", period)
			}
			return a.withServices(cmd.Context(), func(svc *portssvc.ServiceContainer) error {
				result, err := svc.Asset.GenerateMonthlyDepreciation(cmd.Context(), period, userID)
				if err != nil {
					return fmt.Errorf("generating depreciation for %s: %w", period, err)
				}
				a.logger.Info("Depreciation batch finished",
					slog.String("period", result.Period),
					slog.Int("success", result.Success),
					slog.Int("skipped", result.Skipped),
					slog.Int("failed", result.Failed))
				if err := printJSON(cmd.OutOrStdout(), result); err != nil {
					return err
				}
				if result.Failed > 0 {
					return fmt.Errorf("%d of %d assets failed", result.Failed, result.Success+result.Skipped+result.Failed)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&period, "period", "", "period to depreciate, YYYY-MM (required)")
	_ = cmd.MarkFlagRequired("period")
	cmd.Flags().StringVar(&userID, "user", "ledgerctl", "user recorded as the creator of the entries")

	return cmd
}
