// Package accounting holds the double-entry rules shared by services, repositories and the CLI:
// signed balance effects, journal entry validation, the chart of accounts and statement
// aggregation.
package accounting

import (
	"fmt"

	"github.com/SscSPs/money_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CalculateSignedAmount returns the effect of a journal line on the balance of its account.
// This is used in both services and repositories to ensure consistent accounting logic.
func CalculateSignedAmount(line domain.JournalEntryLine, accountType domain.AccountType) (decimal.Decimal, error) {
	if !accountType.IsValid() {
		return decimal.Zero, fmt.Errorf("unknown account type '%s' encountered for account ID %s", accountType, line.AccountID)
	}

	// DEBIT to ASSET/EXPENSE -> Positive (+)
	// CREDIT to LIABILITY/EQUITY/INCOME -> Positive (+)
	net := line.DebitAmount.Sub(line.CreditAmount)
	if accountType.IsDebitNormal() {
		return net, nil
	}
	return net.Neg(), nil
}

// CalculateBalanceChanges sums the signed effect of all lines per account ID.
// Every line must already carry a resolved AccountID present in the chart.
func CalculateBalanceChanges(lines []domain.JournalEntryLine, chart *ChartOfAccounts) (map[string]decimal.Decimal, error) {
	changes := make(map[string]decimal.Decimal)
	for _, line := range lines {
		acc, ok := chart.ByID(line.AccountID)
		if !ok {
			return nil, fmt.Errorf("account %s not found in chart of accounts", line.AccountID)
		}
		signed, err := CalculateSignedAmount(line, acc.AccountType)
		if err != nil {
			return nil, err
		}
		changes[line.AccountID] = changes[line.AccountID].Add(signed)
	}
	return changes, nil
}

// NegateChanges flips the sign of every balance change, used when voiding an entry.
func NegateChanges(changes map[string]decimal.Decimal) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(changes))
	for id, amt := range changes {
		out[id] = amt.Neg()
	}
	return out
}

// ReverseLines swaps debit and credit on every line. Line IDs and journal IDs are cleared.
func ReverseLines(lines []domain.JournalEntryLine) []domain.JournalEntryLine {
	out := make([]domain.JournalEntryLine, len(lines))
	for i, l := range lines {
		out[i] = domain.JournalEntryLine{
			LineNo:       l.LineNo,
			AccountRef:   l.AccountRef,
			AccountID:    l.AccountID,
			Description:  l.Description,
			DebitAmount:  l.CreditAmount,
			CreditAmount: l.DebitAmount,
		}
	}
	return out
}
