package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"spendly/internal/snapshot"
)

func newExpenseCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expense",
		Short: "Record and list expenses",
	}
	cmd.AddCommand(newExpenseAddCmd(c), newExpenseListCmd(c), newExpenseRemoveCmd(c))
	return cmd
}

func newExpenseAddCmd(c *cli) *cobra.Command {
	var e snapshot.Expense

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record an expense",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := c.signedInStore()
			if err != nil {
				return err
			}
			added, err := store.AddExpense(e)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added expense %s: %.2f %s on %s\n", added.ID, added.Amount, added.Category, added.Date)
			return nil
		},
	}
	cmd.Flags().Float64Var(&e.Amount, "amount", 0, "amount spent")
	cmd.Flags().StringVar(&e.Category, "category", "", "category, e.g. food")
	cmd.Flags().StringVar(&e.Description, "description", "", "optional note")
	cmd.Flags().StringVar(&e.Date, "date", "", "day of the expense, YYYY-MM-DD (default today)")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("category")
	return cmd
}

func newExpenseListCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List expenses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := c.signedInStore()
			if err != nil {
				return err
			}
			expenses := store.Data().Expenses
			if len(expenses) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No expenses")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tDATE\tCATEGORY\tAMOUNT\tDESCRIPTION")
			for _, e := range expenses {
				fmt.Fprintf(w, "%s\t%s\t%s\t%.2f\t%s\n", e.ID, e.Date, e.Category, e.Amount, e.Description)
			}
			return w.Flush()
		},
	}
}

func newExpenseRemoveCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove"},
		Short:   "Delete an expense locally",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.signedInStore()
			if err != nil {
				return err
			}
			if err := store.DeleteExpense(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted expense %s (not removed from the server)\n", args[0])
			return nil
		},
	}
}
