package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatementType identifies a financial statement.
type StatementType string

const (
	ProfitLossStatement   StatementType = "profit_loss"
	BalanceSheetStatement StatementType = "balance_sheet"
)

// IsValid reports whether t is a supported statement type.
func (t StatementType) IsValid() bool {
	return t == ProfitLossStatement || t == BalanceSheetStatement
}

// StatementSource selects what a profit and loss statement is aggregated from.
type StatementSource string

const (
	SourceTransactions StatementSource = "transactions"
	SourceJournal      StatementSource = "journal"
)

// IsValid reports whether s is a supported source.
func (s StatementSource) IsValid() bool {
	return s == SourceTransactions || s == SourceJournal
}

// StatementParams describes which statement to generate. A zero period bound is open.
// Balance sheets always reflect current balances; the period is recorded as metadata.
type StatementParams struct {
	Type        StatementType
	PeriodStart time.Time
	PeriodEnd   time.Time
	Source      StatementSource // Defaults to SourceTransactions
}

// Period returns the statement period as a DateRange.
func (p StatementParams) Period() DateRange {
	return DateRange{From: p.PeriodStart, To: p.PeriodEnd}
}

// Statement sections used in line items and exports.
const (
	SectionIncome        = "Income"
	SectionExpense       = "Expense"
	SectionCurrentAssets = "Current Assets"
	SectionFixedAssets   = "Fixed Assets"
	SectionLiabilities   = "Liabilities"
	SectionEquity        = "Equity"
	SectionSummary       = "Summary"
)

// CategoryAmount is a category (or account name) with its aggregated amount.
type CategoryAmount struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// ProfitAndLoss summarises income and expenses over a period.
// Category slices keep first-seen order.
type ProfitAndLoss struct {
	IncomeByCategory  []CategoryAmount `json:"incomeByCategory"`
	ExpenseByCategory []CategoryAmount `json:"expenseByCategory"`
	TotalIncome       decimal.Decimal  `json:"totalIncome"`
	TotalExpense      decimal.Decimal  `json:"totalExpense"`
	NetProfit         decimal.Decimal  `json:"netProfit"`
}

// BalanceSheet states assets, liabilities and equity at a point in time.
type BalanceSheet struct {
	CurrentAssets      []CategoryAmount `json:"currentAssets"`
	FixedAssets        []CategoryAmount `json:"fixedAssets"`
	Liabilities        []CategoryAmount `json:"liabilities"`
	TotalCurrentAssets decimal.Decimal  `json:"totalCurrentAssets"`
	TotalFixedAssets   decimal.Decimal  `json:"totalFixedAssets"`
	TotalAssets        decimal.Decimal  `json:"totalAssets"`
	TotalLiabilities   decimal.Decimal  `json:"totalLiabilities"`
	TotalEquity        decimal.Decimal  `json:"totalEquity"`
	// EquityIsResidual is true while equity is derived as assets minus liabilities
	// instead of being read from equity accounts.
	EquityIsResidual bool `json:"equityIsResidual"`
}

// LineItem is one flattened row of a statement.
type LineItem struct {
	Section  string          `json:"section"`
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// FinancialStatement is a derived, read-only report. It is recomputed on demand.
type FinancialStatement struct {
	Type          StatementType   `json:"type"`
	ScopeID       string          `json:"scopeID"`
	PeriodStart   time.Time       `json:"periodStart"`
	PeriodEnd     time.Time       `json:"periodEnd"`
	Source        StatementSource `json:"source,omitempty"`
	LineItems     []LineItem      `json:"lineItems"`
	ProfitAndLoss *ProfitAndLoss  `json:"profitAndLoss,omitempty"`
	BalanceSheet  *BalanceSheet   `json:"balanceSheet,omitempty"`
	GeneratedAt   time.Time       `json:"generatedAt"`
	GeneratedBy   string          `json:"generatedBy"`
}

// ExportRow is the spreadsheet-friendly shape of a statement line.
type ExportRow struct {
	Section string          `json:"Section"`
	Account string          `json:"Account"`
	Amount  decimal.Decimal `json:"Amount"`
}
