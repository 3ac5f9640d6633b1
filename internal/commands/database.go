package commands

import (
	"context"
	"log/slog"

	"github.com/SscSPs/money_ledger/internal/platform/config"
	"github.com/SscSPs/money_ledger/pkg/database"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// addDatabaseFlag registers --database-url, which overrides PGSQL_URL from the environment.
func addDatabaseFlag(cmd *cobra.Command) {
	cmd.PersistentFlags().String("database-url", "", "PostgreSQL URL (defaults to PGSQL_URL)")
	_ = viper.BindPFlag("PGSQL_URL", cmd.PersistentFlags().Lookup("database-url"))
}

func openPool(ctx context.Context) (*config.Config, *pgxpool.Pool, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, true)
	if err != nil {
		return nil, nil, err
	}
	return cfg, pool, nil
}

func cliLogger(cmd *cobra.Command) *slog.Logger {
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))
}
