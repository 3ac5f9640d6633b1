package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/SscSPs/money_ledger/internal/core/domain"
	"github.com/SscSPs/money_ledger/internal/dto"
	"github.com/SscSPs/money_ledger/internal/utils/accounting"
	"github.com/spf13/cobra"
)

// localScope is the scope given to accounts loaded from a file.
const localScope = "local"

func newValidateCommand() *cobra.Command {
	var accountsFile string
	var strict bool

	cmd := &cobra.Command{
		Use:   "validate <entry.json>",
		Short: "Check a journal entry against the double-entry rules without touching the database",
		Long: `Reads a journal entry in the same JSON shape the API accepts and applies the posting rules.
With --accounts, account references are resolved against a chart exported from GET /api/v1/accounts
and the balance changes the entry would post are printed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd.OutOrStdout(), args[0], accountsFile, strict)
		},
	}

	cmd.Flags().StringVar(&accountsFile, "accounts", "", "JSON file with the chart of accounts")
	cmd.Flags().BoolVar(&strict, "strict", false, "reject lines that carry both a debit and a credit")

	return cmd
}

func runValidate(out io.Writer, entryFile, accountsFile string, strict bool) error {
	var req dto.CreateJournalEntryRequest
	if err := readJSON(entryFile, &req); err != nil {
		return err
	}

	opts := []accounting.ValidatorOption{accounting.WithStrictLineSides(strict)}
	var chart *accounting.ChartOfAccounts
	if accountsFile != "" {
		accounts, err := loadAccounts(accountsFile)
		if err != nil {
			return err
		}
		chart = accounting.NewChartOfAccounts(localScope, accounts)
		opts = append(opts, accounting.WithChart(chart))
	}

	validator := accounting.NewEntryValidator(opts...)
	lines := dto.ToDomainLines(req.Lines)

	var err error
	if req.Status == domain.Draft {
		err = validator.ValidateDraft(req.Description, lines)
	} else {
		err = validator.Validate(req.Description, lines)
	}
	if err != nil {
		var ve *accounting.ValidationError
		if errors.As(err, &ve) {
			fmt.Fprintf(out, "INVALID (%s): %s\n", ve.Reason, ve.Message)
		}
		return err
	}

	fmt.Fprintf(out, "OK: %d lines\n", len(lines))
	if chart == nil || req.Status == domain.Draft {
		return nil
	}

	resolved, err := accounting.ResolveLines(lines, chart)
	if err != nil {
		return err
	}
	changes, err := accounting.CalculateBalanceChanges(resolved, chart)
	if err != nil {
		return err
	}
	ids := make([]string, 0, len(changes))
	for id := range changes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		acc, _ := chart.ByID(id)
		fmt.Fprintf(out, "  %-8s %-24s %s\n", acc.Code, acc.Name, changes[id].StringFixed(2))
	}
	return nil
}

// loadAccounts accepts either a bare JSON array of accounts or the {"accounts": [...]} body
// returned by the API.
func loadAccounts(path string) ([]domain.Account, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var accounts []domain.Account
	if err := json.Unmarshal(raw, &accounts); err != nil {
		var wrapped struct {
			Accounts []domain.Account `json:"accounts"`
		}
		if werr := json.Unmarshal(raw, &wrapped); werr != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		accounts = wrapped.Accounts
	}
	for i := range accounts {
		accounts[i].ScopeID = localScope
	}
	return accounts, nil
}

func readJSON(path string, v any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}
