package commands

import (
	"github.com/SscSPs/money_ledger/internal/platform/config"
	"github.com/SscSPs/money_ledger/pkg/database"
	"github.com/spf13/cobra"
)

func newMigrateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			return database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, cliLogger(cmd))
		},
	}
	return cmd
}
