package cmd

import (
	"fmt"
	"time"

	"riskprojection/api"
	"riskprojection/internal"

	"github.com/spf13/cobra"
)

func newTokenCmd() *cobra.Command {
	var (
		subject string
		ttl     time.Duration
		secret  string
	)
	c := &cobra.Command{
		Use:   "token",
		Short: "Sign an admin token for the write endpoints",
		RunE: func(cmd *cobra.Command, args []string) error {
			if secret == "" {
				secrets, err := internal.LoadSecrets()
				if err != nil {
					return fmt.Errorf("failed to load secrets: %w", err)
				}
				secret = secrets.Jwt
			}

			token, err := api.NewAdminToken(secret, subject, ttl)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	c.Flags().StringVar(&subject, "subject", "cli", "subject stored in the token")
	c.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "how long the token is valid")
	c.Flags().StringVar(&secret, "secret", "", "signing secret (default is the jwt from the secrets file)")

	return c
}
