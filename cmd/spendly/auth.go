package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"spendly/internal/middleware"
)

func newLoginCmd(c *cli) *cobra.Command {
	var userID string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in as a user; switching users clears local data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := c.openStore()
			if err != nil {
				return err
			}
			if err := store.SignIn(userID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s\n", store.UserID())
			return nil
		},
	}
	cmd.Flags().StringVar(&userID, "user-id", "", "user id issued by the identity provider")
	_ = cmd.MarkFlagRequired("user-id")
	return cmd
}

func newLogoutCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and clear local data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := c.openStore()
			if err != nil {
				return err
			}
			if err := store.SignOut(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Signed out")
			return nil
		},
	}
}

// newTokenCmd mints a session token for servers running with AUTH_MODE=jwt.
// It needs the server's JWT secret, so it is meant for operators and local
// development.
func newTokenCmd(c *cli) *cobra.Command {
	var (
		userID string
		email  string
		ttl    time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a session token signed with JWT_SECRET",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			secret := os.Getenv("JWT_SECRET")
			if secret == "" {
				return fmt.Errorf("JWT_SECRET is not set")
			}
			if userID == "" {
				store, err := c.openStore()
				if err != nil {
					return err
				}
				userID = store.UserID()
			}
			if userID == "" {
				return fmt.Errorf("--user-id is required when not signed in")
			}

			token, err := middleware.GenerateSessionToken(secret, userID, email, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().StringVar(&userID, "user-id", "", "token subject (defaults to the signed-in user)")
	cmd.Flags().StringVar(&email, "email", "", "email claim")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime")
	return cmd
}
