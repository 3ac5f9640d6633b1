package accounting

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/SscSPs/money_ledger/internal/core/domain"
)

// ExportHeader is the column header of a statement export.
var ExportHeader = []string{"Section", "Account", "Amount"}

// FlattenStatement turns a statement into {Section, Account, Amount} rows: every line item
// followed by the summary totals of the statement type.
func FlattenStatement(stmt *domain.FinancialStatement) []domain.ExportRow {
	rows := make([]domain.ExportRow, 0, len(stmt.LineItems)+5)
	for _, item := range stmt.LineItems {
		rows = append(rows, domain.ExportRow{Section: item.Section, Account: item.Category, Amount: item.Amount})
	}

	switch {
	case stmt.ProfitAndLoss != nil:
		p := stmt.ProfitAndLoss
		rows = append(rows,
			domain.ExportRow{Section: domain.SectionSummary, Account: "Total Income", Amount: p.TotalIncome},
			domain.ExportRow{Section: domain.SectionSummary, Account: "Total Expense", Amount: p.TotalExpense},
			domain.ExportRow{Section: domain.SectionSummary, Account: "Net Profit", Amount: p.NetProfit},
		)
	case stmt.BalanceSheet != nil:
		b := stmt.BalanceSheet
		rows = append(rows,
			domain.ExportRow{Section: domain.SectionSummary, Account: "Total Current Assets", Amount: b.TotalCurrentAssets},
			domain.ExportRow{Section: domain.SectionSummary, Account: "Total Fixed Assets", Amount: b.TotalFixedAssets},
			domain.ExportRow{Section: domain.SectionSummary, Account: "Total Assets", Amount: b.TotalAssets},
			domain.ExportRow{Section: domain.SectionSummary, Account: "Total Liabilities", Amount: b.TotalLiabilities},
			domain.ExportRow{Section: domain.SectionEquity, Account: "Total Equity", Amount: b.TotalEquity},
		)
	}
	return rows
}

// WriteCSV writes export rows, header included. Amounts use two decimal places.
func WriteCSV(w io.Writer, rows []domain.ExportRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(ExportHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, row := range rows {
		if err := cw.Write([]string{row.Section, row.Account, row.Amount.StringFixed(2)}); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
