package cli

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/finance-tracker/ledger/internal/integration/adapters"
)

// newTokenCommand mints bearer tokens for local testing. It signs with
// JWT_SECRET, so it is only useful where that secret is known.
func newTokenCommand(a *app) *cobra.Command {
	var (
		user    string
		isAdmin bool
		ttl     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a development bearer token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			id := uuid.New()
			if user != "" {
				parsed, err := uuid.Parse(user)
				if err != nil {
					return fmt.Errorf("--user must be a UUID")
				}
				id = parsed
			}

			token, err := adapters.NewTokenService(a.cfg.JWT.Secret).GenerateAccessToken(cmd.Context(), id, isAdmin, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().StringVar(&user, "user", "", "user id (random when empty)")
	cmd.Flags().BoolVar(&isAdmin, "admin", false, "grant the admin role")
	cmd.Flags().DurationVar(&ttl, "ttl", time.Hour, "token lifetime")
	return cmd
}
