package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/SscSPs/money_ledger/internal/adapters/database/pgsql"
	"github.com/SscSPs/money_ledger/internal/core/domain"
	"github.com/SscSPs/money_ledger/internal/core/services"
	"github.com/SscSPs/money_ledger/internal/dto"
	"github.com/SscSPs/money_ledger/internal/middleware"
	"github.com/SscSPs/money_ledger/internal/utils/accounting"
	"github.com/SscSPs/money_ledger/pkg/database"
	"github.com/spf13/cobra"
)

type exportOptions struct {
	scope  string
	from   string
	to     string
	source string
	format string
	output string
}

func newExportCommand() *cobra.Command {
	var opts exportOptions

	cmd := &cobra.Command{
		Use:       "export <profit_loss|balance_sheet>",
		Short:     "Export a financial statement straight from the database",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(domain.ProfitLossStatement), string(domain.BalanceSheetStatement)},
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := opts.statementParams(args[0])
			if err != nil {
				return err
			}
			if opts.format != "csv" && opts.format != "json" {
				return fmt.Errorf("unknown format %q, expected csv or json", opts.format)
			}

			ctx := middleware.WithLogger(cmd.Context(), cliLogger(cmd))
			_, pool, err := openPool(ctx)
			if err != nil {
				return err
			}
			defer database.ClosePgxPool(pool)

			repos := pgsql.NewRepositoryProvider(pool)
			svc := services.NewStatementService(repos.AccountRepo, repos.JournalRepo, repos.TransactionRepo, repos.AssetRepo)
			session := domain.Session{UserID: opts.scope, ScopeID: opts.scope}

			rows, err := svc.ExportFinancialStatement(ctx, session, params)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if opts.output != "" {
				f, err := os.Create(opts.output)
				if err != nil {
					return fmt.Errorf("creating %s: %w", opts.output, err)
				}
				defer f.Close()
				out = f
			}
			return writeRows(out, rows, opts.format)
		},
	}

	cmd.Flags().StringVar(&opts.scope, "scope", "", "user or client whose books are exported (required)")
	_ = cmd.MarkFlagRequired("scope")
	cmd.Flags().StringVar(&opts.from, "from", "", "period start, YYYY-MM-DD or RFC 3339")
	cmd.Flags().StringVar(&opts.to, "to", "", "period end, inclusive")
	cmd.Flags().StringVar(&opts.source, "source", "", "profit and loss source: transactions or journal")
	cmd.Flags().StringVar(&opts.format, "format", "csv", "output format: csv or json")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write to a file instead of stdout")

	return cmd
}

func (o exportOptions) statementParams(statementType string) (domain.StatementParams, error) {
	period, err := dto.ParseDateRange(o.from, o.to)
	if err != nil {
		return domain.StatementParams{}, err
	}
	return domain.StatementParams{
		Type:        domain.StatementType(statementType),
		PeriodStart: period.From,
		PeriodEnd:   period.To,
		Source:      domain.StatementSource(o.source),
	}, nil
}

func writeRows(w io.Writer, rows []domain.ExportRow, format string) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}
	return accounting.WriteCSV(w, rows)
}
