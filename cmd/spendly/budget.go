package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"spendly/internal/models"
)

func newBudgetCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Manage category budgets",
	}
	cmd.AddCommand(newBudgetSetCmd(c), newBudgetStatusCmd(c))
	return cmd
}

func newBudgetSetCmd(c *cli) *cobra.Command {
	var period string

	cmd := &cobra.Command{
		Use:   "set <category> <limit>",
		Short: "Create or update the budget for a category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid limit %q", args[1])
			}
			store, err := c.signedInStore()
			if err != nil {
				return err
			}
			b, err := store.SetBudget(args[0], limit, models.BudgetPeriod(period))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Budget %s: %.2f %s (spent %.2f)\n", b.Category, b.Limit, b.Period, b.Spent)
			return nil
		},
	}
	cmd.Flags().StringVar(&period, "period", "monthly", "weekly, monthly or yearly")
	return cmd
}

func newBudgetStatusCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show spending against each budget for the current period",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := c.signedInStore()
			if err != nil {
				return err
			}
			budgets := store.BudgetStatus()
			if len(budgets) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No budgets")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "CATEGORY\tPERIOD\tSPENT\tLIMIT\tREMAINING\tUSED")
			for _, b := range budgets {
				fmt.Fprintf(w, "%s\t%s\t%.2f\t%.2f\t%.2f\t%.0f%%\n", b.Category, b.Period, b.Spent, b.Limit, b.Remaining(), b.Percentage())
			}
			return w.Flush()
		},
	}
}
