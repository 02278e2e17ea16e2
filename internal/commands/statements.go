package commands

import (
	"fmt"
	"time"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/erp_ledger/internal/core/ports/services"
	"github.com/spf13/cobra"
)

const dateLayout = "2006-01-02"

func parseDateFlag(name, value string, fallback time.Time) (time.Time, error) {
	if value == "" {
		return fallback, nil
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --%s %q, want YYYY-MM-DD", name, value)
	}
	return t, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func (a *app) newBalanceSheetCommand() *cobra.Command {
	var asOf, branch, level string
	var showZero bool

	cmd := &cobra.Command{
		Use:   "balance-sheet",
		Short: "Print the balance sheet as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := parseDateFlag("as-of", asOf, today())
			if err != nil {
				return err
			}
			opts := domain.BalanceSheetOptions{
				AsOf:            date,
				BranchID:        optional(branch),
				Level:           domain.DisplayLevel(level),
				ShowZeroBalance: showZero,
			}
			return a.withServices(cmd.Context(), func(svc *portssvc.ServiceContainer) error {
				report, err := svc.Statement.BalanceSheet(cmd.Context(), opts)
				if err != nil {
					return fmt.Errorf("building balance sheet: %w", err)
				}
				return printJSON(cmd.OutOrStdout(), report)
			})
		},
	}

	cmd.Flags().StringVar(&asOf, "as-of", "", "statement date, YYYY-MM-DD (defaults to today)")
	cmd.Flags().StringVar(&branch, "branch", "", "branch filter")
	cmd.Flags().StringVar(&level, "level", string(domain.DisplayAll), "display level: all, parent_only or totals_only")
	cmd.Flags().BoolVar(&showZero, "show-zero", false, "list accounts with a zero balance")

	return cmd
}

func (a *app) newIncomeStatementCommand() *cobra.Command {
	var from, to, branch string
	var showZero bool

	cmd := &cobra.Command{
		Use:   "income-statement",
		Short: "Print the income statement for a period as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			end, err := parseDateFlag("to", to, today())
			if err != nil {
				return err
			}
			start, err := parseDateFlag("from", from, time.Date(end.Year(), end.Month(), 1, 0, 0, 0, 0, time.UTC))
			if err != nil {
				return err
			}
			opts := domain.IncomeStatementOptions{
				From:            start,
				To:              end,
				BranchID:        optional(branch),
				ShowZeroBalance: showZero,
			}
			return a.withServices(cmd.Context(), func(svc *portssvc.ServiceContainer) error {
				report, err := svc.Statement.IncomeStatement(cmd.Context(), opts)
				if err != nil {
					return fmt.Errorf("building income statement: %w", err)
				}
				return printJSON(cmd.OutOrStdout(), report)
			})
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "first day, YYYY-MM-DD (defaults to the first of the month of --to)")
	cmd.Flags().StringVar(&to, "to", "", "last day, YYYY-MM-DD (defaults to today)")
	cmd.Flags().StringVar(&branch, "branch", "", "branch filter")
	cmd.Flags().BoolVar(&showZero, "show-zero", false, "list accounts with a zero balance")

	return cmd
}

func (a *app) newCOAValidityCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "coa-validity",
		Short: "Check that the chart of accounts supports the statements",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withServices(cmd.Context(), func(svc *portssvc.ServiceContainer) error {
				report, err := svc.Statement.ValidateClassification(cmd.Context())
				if err != nil {
					return fmt.Errorf("validating chart of accounts: %w", err)
				}
				if err := printJSON(cmd.OutOrStdout(), report); err != nil {
					return err
				}
				if !report.IsValid {
					return fmt.Errorf("chart of accounts has %d classification issues", len(report.Issues))
				}
				return nil
			})
		},
	}
}
