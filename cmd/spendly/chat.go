package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"spendly/internal/snapshot"
)

func newChatCmd(c *cli) *cobra.Command {
	var private bool

	cmd := &cobra.Command{
		Use:   "chat <message...>",
		Short: "Ask the assistant about your spending",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var data *snapshot.Data
			if !private {
				store, err := c.openStore()
				if err != nil {
					return err
				}
				data = store.Data()
			}

			reply, err := c.client().Chat(cmd.Context(), strings.Join(args, " "), nil, data)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), reply)
			return nil
		},
	}
	cmd.Flags().BoolVar(&private, "private", false, "do not share local data with the assistant")
	return cmd
}
