package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"spendly/internal/snapshot"
)

func newGoalCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Manage savings goals",
	}
	cmd.AddCommand(newGoalAddCmd(c), newGoalContributeCmd(c), newGoalListCmd(c))
	return cmd
}

func newGoalAddCmd(c *cli) *cobra.Command {
	var g snapshot.Goal

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a savings goal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := c.signedInStore()
			if err != nil {
				return err
			}
			added, err := store.AddGoal(g)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added goal %s: %s (target %.2f)\n", added.ID, added.Name, added.TargetAmount)
			return nil
		},
	}
	cmd.Flags().StringVar(&g.Name, "name", "", "goal name")
	cmd.Flags().Float64Var(&g.TargetAmount, "target", 0, "target amount")
	cmd.Flags().Float64Var(&g.CurrentAmount, "current", 0, "amount already saved")
	cmd.Flags().StringVar(&g.Deadline, "deadline", "", "optional deadline, YYYY-MM-DD")
	cmd.Flags().StringVar(&g.Color, "color", "", "optional hex color, e.g. #3b82f6")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("target")
	return cmd
}

func newGoalContributeCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "contribute <id> <amount>",
		Short: "Add money to a goal",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid amount %q", args[1])
			}
			store, err := c.signedInStore()
			if err != nil {
				return err
			}
			g, err := store.Contribute(args[0], amount)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %.2f of %.2f\n", g.Name, g.CurrentAmount, g.TargetAmount)
			if g.Complete() {
				fmt.Fprintln(cmd.OutOrStdout(), "Goal complete!")
			}
			return nil
		},
	}
}

func newGoalListCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List savings goals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := c.signedInStore()
			if err != nil {
				return err
			}
			goals := store.Data().Goals
			if len(goals) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No goals")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tSAVED\tTARGET\tDEADLINE\tDONE")
			for _, g := range goals {
				fmt.Fprintf(w, "%s\t%s\t%.2f\t%.2f\t%s\t%v\n", g.ID, g.Name, g.CurrentAmount, g.TargetAmount, g.Deadline, g.Complete())
			}
			return w.Flush()
		},
	}
}
