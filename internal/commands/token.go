package commands

import (
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/money_ledger/internal/middleware"
	"github.com/SscSPs/money_ledger/internal/platform/config"
	"github.com/spf13/cobra"
)

func newTokenCommand() *cobra.Command {
	var userID, scopeID string
	var ttl time.Duration

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint an access token signed with JWT_SECRET for local development",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if ttl <= 0 {
				return errors.New("--ttl must be positive")
			}
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			if cfg.IsProduction {
				return errors.New("refusing to mint tokens with IS_PRODUCTION set")
			}
			if scopeID == "" {
				scopeID = userID
			}
			token, err := middleware.IssueToken(cfg.JWTSecret, cfg.JWTIssuer, userID, scopeID, ttl)
			if err != nil {
				return fmt.Errorf("signing token: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "subject of the token (required)")
	_ = cmd.MarkFlagRequired("user")
	cmd.Flags().StringVar(&scopeID, "scope", "", "scope claim, defaults to the user")
	cmd.Flags().DurationVar(&ttl, "ttl", time.Hour, "token lifetime")

	return cmd
}
