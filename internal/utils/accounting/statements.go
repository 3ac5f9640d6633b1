package accounting

import (
	"github.com/SscSPs/money_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// categoryTotals accumulates amounts per category while remembering first-seen order.
type categoryTotals struct {
	order  []string
	totals map[string]decimal.Decimal
}

func newCategoryTotals() *categoryTotals {
	return &categoryTotals{totals: make(map[string]decimal.Decimal)}
}

func (c *categoryTotals) add(category string, amount decimal.Decimal) {
	if _, seen := c.totals[category]; !seen {
		c.order = append(c.order, category)
	}
	c.totals[category] = c.totals[category].Add(amount)
}

func (c *categoryTotals) items() ([]domain.CategoryAmount, decimal.Decimal) {
	out := make([]domain.CategoryAmount, 0, len(c.order))
	total := decimal.Zero
	for _, cat := range c.order {
		amt := c.totals[cat]
		out = append(out, domain.CategoryAmount{Category: cat, Amount: amt})
		total = total.Add(amt)
	}
	return out, total
}

// ProfitAndLossFromTransactions groups transactions by category into income and expense.
// Cancelled transactions and transactions outside the period are skipped. Expense amounts
// are normalised to positive magnitudes before aggregation.
func ProfitAndLossFromTransactions(txns []domain.Transaction, period domain.DateRange) domain.ProfitAndLoss {
	income, expense := newCategoryTotals(), newCategoryTotals()
	for _, txn := range txns {
		if txn.Status == domain.Cancelled || !period.Contains(txn.Date) {
			continue
		}
		switch txn.Type {
		case domain.IncomeTransaction:
			income.add(txn.Category, txn.Amount)
		case domain.ExpenseTransaction:
			expense.add(txn.Category, txn.Amount.Abs())
		}
	}
	return buildProfitAndLoss(income, expense)
}

// ProfitAndLossFromJournal aggregates posted journal lines on income and expense accounts,
// using the account name as category. Lines on unknown accounts are skipped.
// Expense categories are reported as magnitudes.
func ProfitAndLossFromJournal(entries []domain.JournalEntry, chart *ChartOfAccounts, period domain.DateRange) domain.ProfitAndLoss {
	income, expense := newCategoryTotals(), newCategoryTotals()
	for _, entry := range entries {
		if entry.Status != domain.Posted || !period.Contains(entry.Date) {
			continue
		}
		for _, line := range entry.Lines {
			acc, ok := chart.ByID(line.AccountID)
			if !ok {
				continue
			}
			switch acc.AccountType.Class() {
			case domain.Income:
				income.add(acc.Name, line.CreditAmount.Sub(line.DebitAmount))
			case domain.Expense:
				expense.add(acc.Name, line.DebitAmount.Sub(line.CreditAmount))
			}
		}
	}
	for cat, amt := range expense.totals {
		expense.totals[cat] = amt.Abs()
	}
	return buildProfitAndLoss(income, expense)
}

func buildProfitAndLoss(income, expense *categoryTotals) domain.ProfitAndLoss {
	incomeItems, totalIncome := income.items()
	expenseItems, totalExpense := expense.items()
	return domain.ProfitAndLoss{
		IncomeByCategory:  incomeItems,
		ExpenseByCategory: expenseItems,
		TotalIncome:       totalIncome,
		TotalExpense:      totalExpense,
		NetProfit:         totalIncome.Sub(totalExpense),
	}
}

// BalanceSheetInput is the source data for a balance sheet.
type BalanceSheetInput struct {
	Accounts    []domain.Account
	FixedAssets []domain.FixedAsset
	Liabilities []domain.LiabilityRecord
}

// BuildBalanceSheet partitions accounts and records into current assets, fixed assets and
// liabilities. Equity is the residual of assets minus liabilities.
//
// Current assets are checking and savings accounts. Fixed assets are fixed asset records
// plus any other asset-class account. Liabilities are liability records plus liability-class
// accounts, reported as magnitudes. Income, expense and equity accounts are not listed.
func BuildBalanceSheet(in BalanceSheetInput) domain.BalanceSheet {
	current, fixed, liabilities := newCategoryTotals(), newCategoryTotals(), newCategoryTotals()

	for _, acc := range in.Accounts {
		switch {
		case acc.AccountType.IsCurrentAsset():
			current.add(acc.Name, acc.Balance)
		case acc.AccountType.Class() == domain.Asset:
			fixed.add(acc.Name, acc.Balance)
		case acc.AccountType.Class() == domain.Liability:
			liabilities.add(acc.Name, acc.Balance.Abs())
		}
	}
	for _, fa := range in.FixedAssets {
		fixed.add(fa.Name, fa.Value)
	}
	for _, l := range in.Liabilities {
		liabilities.add(l.Name, l.Balance.Abs())
	}

	currentItems, totalCurrent := current.items()
	fixedItems, totalFixed := fixed.items()
	liabilityItems, totalLiabilities := liabilities.items()
	totalAssets := totalCurrent.Add(totalFixed)

	return domain.BalanceSheet{
		CurrentAssets:      currentItems,
		FixedAssets:        fixedItems,
		Liabilities:        liabilityItems,
		TotalCurrentAssets: totalCurrent,
		TotalFixedAssets:   totalFixed,
		TotalAssets:        totalAssets,
		TotalLiabilities:   totalLiabilities,
		TotalEquity:        totalAssets.Sub(totalLiabilities),
		EquityIsResidual:   true,
	}
}

// ProfitAndLossLineItems flattens a P&L into category line items.
func ProfitAndLossLineItems(pnl domain.ProfitAndLoss) []domain.LineItem {
	items := make([]domain.LineItem, 0, len(pnl.IncomeByCategory)+len(pnl.ExpenseByCategory))
	items = appendSection(items, domain.SectionIncome, pnl.IncomeByCategory)
	return appendSection(items, domain.SectionExpense, pnl.ExpenseByCategory)
}

// BalanceSheetLineItems flattens a balance sheet into category line items.
func BalanceSheetLineItems(bs domain.BalanceSheet) []domain.LineItem {
	items := make([]domain.LineItem, 0, len(bs.CurrentAssets)+len(bs.FixedAssets)+len(bs.Liabilities))
	items = appendSection(items, domain.SectionCurrentAssets, bs.CurrentAssets)
	items = appendSection(items, domain.SectionFixedAssets, bs.FixedAssets)
	return appendSection(items, domain.SectionLiabilities, bs.Liabilities)
}

func appendSection(items []domain.LineItem, section string, amounts []domain.CategoryAmount) []domain.LineItem {
	for _, a := range amounts {
		items = append(items, domain.LineItem{Section: section, Category: a.Category, Amount: a.Amount})
	}
	return items
}
