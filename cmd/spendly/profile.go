package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"spendly/internal/localstore"
	"spendly/internal/snapshot"
)

func newProfileCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage the profile synced with settings",
	}
	cmd.AddCommand(newProfileSetCmd(c))
	return cmd
}

func newProfileSetCmd(c *cli) *cobra.Command {
	var p snapshot.Profile

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Replace the local profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := c.signedInStore()
			if err != nil {
				return err
			}
			if err := store.SetProfile(p); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Profile saved")
			return nil
		},
	}
	cmd.Flags().StringVar(&p.Name, "name", "", "display name")
	cmd.Flags().StringVar(&p.Email, "email", "", "email address")
	cmd.Flags().StringVar(&p.PhotoURL, "photo-url", "", "profile photo URL")
	cmd.Flags().StringVar(&p.Provider, "provider", "", "sign-in provider")
	cmd.Flags().Float64Var(&p.MonthlyIncome, "income", 0, "monthly income")
	cmd.Flags().StringVar(&p.Currency, "currency", "", "ISO 4217 currency code")
	cmd.Flags().BoolVar(&p.OnboardingCompleted, "onboarded", false, "mark onboarding as completed")
	return cmd
}

func newThemeCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:       "theme <light|dark>",
		Short:     "Set the display theme",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(localstore.ThemeLight), string(localstore.ThemeDark)},
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.openStore()
			if err != nil {
				return err
			}
			if err := store.SetTheme(localstore.Theme(args[0])); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Theme set to %s\n", args[0])
			return nil
		},
	}
}
