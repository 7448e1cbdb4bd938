package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"spendly/internal/logger"
	"spendly/internal/snapshot"
)

func newPushCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "push",
		Short: "Upload the local data set to the server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := c.signedInStore()
			if err != nil {
				return err
			}

			req := store.Snapshot(store.UserID())
			counts, err := c.client().Push(cmd.Context(), req)
			if err != nil {
				return err
			}
			if err := store.MarkSynced(); err != nil {
				return err
			}

			logger.Get().Debugw("Pushed snapshot", "user_id", req.UserID, "expenses", counts.Expenses)
			fmt.Fprintf(cmd.OutOrStdout(), "Pushed %d expenses, %d budgets, %d goals", counts.Expenses, counts.Budgets, counts.Goals)
			if counts.Profile {
				fmt.Fprint(cmd.OutOrStdout(), " and the profile")
			}
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}
}

func newPullCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "pull",
		Short: "Replace local data with the server's copy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := c.signedInStore()
			if err != nil {
				return err
			}

			data, err := c.client().Pull(cmd.Context(), store.UserID())
			if err != nil {
				return err
			}
			if err := store.Replace(data); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Pulled %d expenses, %d budgets, %d goals\n", len(data.Expenses), len(data.Budgets), len(data.Goals))
			return nil
		},
	}
}

func newStatusCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Summarize the local data set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := c.signedInStore()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "User: %s\n", store.UserID())
			if at := store.SyncedAt(); at != nil {
				fmt.Fprintf(out, "Last sync: %s\n", at.Local().Format(time.RFC1123))
			} else {
				fmt.Fprintln(out, "Last sync: never")
			}
			fmt.Fprintln(out, strings.TrimSpace(snapshot.Summarize(*store.Data(), time.Now()).String()))
			return nil
		},
	}
}
