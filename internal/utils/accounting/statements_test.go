package accounting_test

import (
	"testing"
	"time"

	"github.com/SscSPs/money_ledger/internal/core/domain"
	"github.com/SscSPs/money_ledger/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func day(n int) time.Time {
	return time.Date(2025, time.January, n, 0, 0, 0, 0, time.UTC)
}

func TestProfitAndLossFromTransactions(t *testing.T) {
	txns := []domain.Transaction{
		{Type: domain.IncomeTransaction, Amount: d("5000"), Category: "Salary", Status: domain.Cleared, Date: day(2)},
		{Type: domain.ExpenseTransaction, Amount: d("-75.5"), Category: "Food", Status: domain.Cleared, Date: day(3)},
	}

	pnl := accounting.ProfitAndLossFromTransactions(txns, domain.DateRange{})

	assert.True(t, pnl.TotalIncome.Equal(d("5000")))
	assert.True(t, pnl.TotalExpense.Equal(d("75.5")))
	assert.True(t, pnl.NetProfit.Equal(d("4924.5")))
	require.Len(t, pnl.ExpenseByCategory, 1)
	assert.Equal(t, "Food", pnl.ExpenseByCategory[0].Category)
	assert.False(t, pnl.ExpenseByCategory[0].Amount.IsNegative())
}

func TestProfitAndLossFromTransactions_Empty(t *testing.T) {
	pnl := accounting.ProfitAndLossFromTransactions(nil, domain.DateRange{})

	assert.True(t, pnl.TotalIncome.IsZero())
	assert.True(t, pnl.TotalExpense.IsZero())
	assert.True(t, pnl.NetProfit.IsZero())
	assert.Empty(t, pnl.IncomeByCategory)
	assert.Empty(t, pnl.ExpenseByCategory)
}

func TestProfitAndLossFromTransactions_FiltersAndOrder(t *testing.T) {
	txns := []domain.Transaction{
		{Type: domain.ExpenseTransaction, Amount: d("10"), Category: "Rent", Status: domain.Cleared, Date: day(5)},
		{Type: domain.ExpenseTransaction, Amount: d("-5"), Category: "Food", Status: domain.Pending, Date: day(6)},
		{Type: domain.ExpenseTransaction, Amount: d("7"), Category: "Rent", Status: domain.Cleared, Date: day(7)},
		{Type: domain.ExpenseTransaction, Amount: d("100"), Category: "Travel", Status: domain.Cancelled, Date: day(7)},
		{Type: domain.IncomeTransaction, Amount: d("999"), Category: "Bonus", Status: domain.Cleared, Date: day(30)},
		{Type: domain.ExpenseTransaction, Amount: d("3"), Category: "Early", Status: domain.Cleared, Date: day(1)},
	}

	pnl := accounting.ProfitAndLossFromTransactions(txns, domain.DateRange{From: day(2), To: day(10)})

	assert.Equal(t, []domain.CategoryAmount{
		{Category: "Rent", Amount: d("17")},
		{Category: "Food", Amount: d("5")},
	}, pnl.ExpenseByCategory)
	assert.Empty(t, pnl.IncomeByCategory)
	assert.True(t, pnl.NetProfit.Equal(d("-22")))
}

func TestProfitAndLossFromJournal(t *testing.T) {
	chart := testChart()
	entries := []domain.JournalEntry{
		{
			Status: domain.Posted, Date: day(3),
			Lines: []domain.JournalEntryLine{
				{AccountID: "acc-cash", DebitAmount: d("300"), CreditAmount: decimal.Zero},
				{AccountID: "acc-revenue", DebitAmount: decimal.Zero, CreditAmount: d("300")},
			},
		},
		{
			Status: domain.Posted, Date: day(4),
			Lines: []domain.JournalEntryLine{
				{AccountID: "acc-supplies", DebitAmount: d("40"), CreditAmount: decimal.Zero},
				{AccountID: "acc-cash", DebitAmount: decimal.Zero, CreditAmount: d("40")},
				{AccountID: "acc-unknown", DebitAmount: d("1"), CreditAmount: d("1")},
			},
		},
		{
			Status: domain.Void, Date: day(4),
			Lines: []domain.JournalEntryLine{
				{AccountID: "acc-supplies", DebitAmount: d("500"), CreditAmount: decimal.Zero},
				{AccountID: "acc-cash", DebitAmount: decimal.Zero, CreditAmount: d("500")},
			},
		},
		{
			Status: domain.Draft, Date: day(4),
			Lines: []domain.JournalEntryLine{
				{AccountID: "acc-revenue", DebitAmount: decimal.Zero, CreditAmount: d("500")},
			},
		},
	}

	pnl := accounting.ProfitAndLossFromJournal(entries, chart, domain.DateRange{})

	assert.Equal(t, []domain.CategoryAmount{{Category: "Revenue", Amount: d("300")}}, pnl.IncomeByCategory)
	assert.Equal(t, []domain.CategoryAmount{{Category: "Office Supplies", Amount: d("40")}}, pnl.ExpenseByCategory)
	assert.True(t, pnl.NetProfit.Equal(d("260")))
}

func TestProfitAndLossFromJournal_RefundedExpenseIsMagnitude(t *testing.T) {
	entries := []domain.JournalEntry{{
		Status: domain.Posted, Date: day(3),
		Lines: []domain.JournalEntryLine{
			{AccountID: "acc-cash", DebitAmount: d("25"), CreditAmount: decimal.Zero},
			{AccountID: "acc-supplies", DebitAmount: decimal.Zero, CreditAmount: d("25")},
		},
	}}

	pnl := accounting.ProfitAndLossFromJournal(entries, testChart(), domain.DateRange{})

	require.Len(t, pnl.ExpenseByCategory, 1)
	assert.True(t, pnl.ExpenseByCategory[0].Amount.Equal(d("25")))
	assert.True(t, pnl.NetProfit.Equal(pnl.TotalIncome.Sub(pnl.TotalExpense)))
}

func TestBuildBalanceSheet(t *testing.T) {
	bs := accounting.BuildBalanceSheet(accounting.BalanceSheetInput{
		Accounts:    []domain.Account{{Name: "Checking", AccountType: domain.Checking, Balance: d("1000")}},
		FixedAssets: []domain.FixedAsset{{Name: "Van", Value: d("5000")}},
		Liabilities: []domain.LiabilityRecord{{Name: "Loan", Balance: d("2000")}},
	})

	assert.True(t, bs.TotalCurrentAssets.Equal(d("1000")))
	assert.True(t, bs.TotalFixedAssets.Equal(d("5000")))
	assert.True(t, bs.TotalAssets.Equal(d("6000")))
	assert.True(t, bs.TotalLiabilities.Equal(d("2000")))
	assert.True(t, bs.TotalEquity.Equal(d("4000")))
	assert.True(t, bs.TotalLiabilities.Add(bs.TotalEquity).Equal(bs.TotalAssets))
	assert.True(t, bs.EquityIsResidual)
}

func TestBuildBalanceSheet_Classification(t *testing.T) {
	bs := accounting.BuildBalanceSheet(accounting.BalanceSheetInput{
		Accounts: []domain.Account{
			{Name: "Savings", AccountType: domain.Savings, Balance: d("200")},
			{Name: "Brokerage", AccountType: domain.Investment, Balance: d("300")},
			{Name: "Visa", AccountType: domain.Credit, Balance: d("-150")},
			{Name: "Payables", AccountType: domain.Liability, Balance: d("50")},
			{Name: "Sales", AccountType: domain.Income, Balance: d("9999")},
			{Name: "Owner", AccountType: domain.Equity, Balance: d("1")},
		},
	})

	assert.Equal(t, []domain.CategoryAmount{{Category: "Savings", Amount: d("200")}}, bs.CurrentAssets)
	assert.Equal(t, []domain.CategoryAmount{{Category: "Brokerage", Amount: d("300")}}, bs.FixedAssets)
	assert.Equal(t, []domain.CategoryAmount{
		{Category: "Visa", Amount: d("150")},
		{Category: "Payables", Amount: d("50")},
	}, bs.Liabilities)
	assert.True(t, bs.TotalAssets.Equal(bs.TotalCurrentAssets.Add(bs.TotalFixedAssets)))
	assert.True(t, bs.TotalEquity.Equal(d("300")))
}

func TestLineItems(t *testing.T) {
	pnl := accounting.ProfitAndLossFromTransactions([]domain.Transaction{
		{Type: domain.IncomeTransaction, Amount: d("10"), Category: "Salary", Status: domain.Cleared},
		{Type: domain.ExpenseTransaction, Amount: d("4"), Category: "Food", Status: domain.Cleared},
	}, domain.DateRange{})

	assert.Equal(t, []domain.LineItem{
		{Section: domain.SectionIncome, Category: "Salary", Amount: d("10")},
		{Section: domain.SectionExpense, Category: "Food", Amount: d("4")},
	}, accounting.ProfitAndLossLineItems(pnl))

	bs := accounting.BuildBalanceSheet(accounting.BalanceSheetInput{
		Accounts:    []domain.Account{{Name: "Checking", AccountType: domain.Checking, Balance: d("1")}},
		FixedAssets: []domain.FixedAsset{{Name: "Van", Value: d("2")}},
		Liabilities: []domain.LiabilityRecord{{Name: "Loan", Balance: d("3")}},
	})
	assert.Equal(t, []domain.LineItem{
		{Section: domain.SectionCurrentAssets, Category: "Checking", Amount: d("1")},
		{Section: domain.SectionFixedAssets, Category: "Van", Amount: d("2")},
		{Section: domain.SectionLiabilities, Category: "Loan", Amount: d("3")},
	}, accounting.BalanceSheetLineItems(bs))
}
