package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/money_ledger/internal/apperrors"
	"github.com/SscSPs/money_ledger/internal/core/domain"
	"github.com/SscSPs/money_ledger/internal/core/services"
	"github.com/SscSPs/money_ledger/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func foodBudget(allocated string) domain.Budget {
	return domain.Budget{
		BudgetID:        "b-1",
		Category:        "Food",
		AllocatedAmount: dec(allocated),
		PeriodStart:     time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		PeriodEnd:       time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC),
	}
}

func TestBudgetProgressFor(t *testing.T) {
	jan := func(d, h int) time.Time { return time.Date(2025, 1, d, h, 0, 0, 0, time.UTC) }
	txns := []domain.Transaction{
		{Category: "Food", Amount: dec("-120.50"), Type: domain.ExpenseTransaction, Status: domain.Cleared, Date: jan(3, 9)},
		{Category: "food ", Amount: dec("79.50"), Type: domain.ExpenseTransaction, Status: domain.Pending, Date: jan(31, 20)},
		{Category: "Food", Amount: dec("500"), Type: domain.ExpenseTransaction, Status: domain.Cancelled, Date: jan(4, 9)},
		{Category: "Food", Amount: dec("50"), Type: domain.IncomeTransaction, Status: domain.Cleared, Date: jan(5, 9)},
		{Category: "Rent", Amount: dec("900"), Type: domain.ExpenseTransaction, Status: domain.Cleared, Date: jan(5, 9)},
		{Category: "Food", Amount: dec("10"), Type: domain.ExpenseTransaction, Status: domain.Cleared, Date: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)},
	}

	tests := []struct {
		name      string
		allocated string
		percent   string
		remaining string
		over      bool
	}{
		{name: "under budget", allocated: "400", percent: "50", remaining: "200"},
		{name: "over budget", allocated: "150", percent: "133.33", remaining: "-50", over: true},
		{name: "nothing allocated", allocated: "0", percent: "100", remaining: "-200", over: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := services.BudgetProgressFor(foodBudget(tt.allocated), txns)
			assert.True(t, p.Spent.Equal(dec("200")), "spent %s", p.Spent)
			assert.True(t, p.Budget.SpentAmount.Equal(dec("200")))
			assert.True(t, p.PercentUsed.Equal(dec(tt.percent)), "percent %s", p.PercentUsed)
			assert.True(t, p.Remaining.Equal(dec(tt.remaining)), "remaining %s", p.Remaining)
			assert.Equal(t, tt.over, p.OverBudget)
		})
	}

	empty := services.BudgetProgressFor(foodBudget("0"), nil)
	assert.True(t, empty.PercentUsed.IsZero())
	assert.False(t, empty.OverBudget)
}

func TestBudgetService_ListBudgetProgress(t *testing.T) {
	ctx := context.Background()
	budgetRepo := new(MockBudgetRepository)
	txnRepo := new(MockTransactionRepository)
	svc := services.NewBudgetService(budgetRepo, txnRepo)

	feb := foodBudget("100")
	feb.BudgetID = "b-2"
	feb.PeriodStart = time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	feb.PeriodEnd = time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC)

	budgetRepo.On("ListBudgets", ctx, testUserID, (*time.Time)(nil)).Return([]domain.Budget{foodBudget("400"), feb}, nil).Once()
	txnRepo.On("ListTransactions", ctx, testUserID, mock.MatchedBy(func(r *domain.DateRange) bool {
		return r.From.Equal(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)) &&
			r.To.Equal(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC).Add(-time.Nanosecond))
	})).Return([]domain.Transaction{
		{Category: "Food", Amount: dec("40"), Type: domain.ExpenseTransaction, Status: domain.Cleared, Date: time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC)},
	}, nil).Once()

	progress, err := svc.ListBudgetProgress(ctx, ownSession(), nil)

	require.NoError(t, err)
	require.Len(t, progress, 2)
	assert.True(t, progress[0].Spent.IsZero())
	assert.True(t, progress[1].Spent.Equal(dec("40")))
	budgetRepo.AssertExpectations(t)
	txnRepo.AssertExpectations(t)
}

func TestBudgetService_ListBudgetProgress_Empty(t *testing.T) {
	ctx := context.Background()
	budgetRepo := new(MockBudgetRepository)
	txnRepo := new(MockTransactionRepository)
	svc := services.NewBudgetService(budgetRepo, txnRepo)
	activeOn := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	budgetRepo.On("ListBudgets", ctx, testUserID, &activeOn).Return([]domain.Budget{}, nil).Once()

	progress, err := svc.ListBudgetProgress(ctx, ownSession(), &activeOn)

	require.NoError(t, err)
	assert.NotNil(t, progress)
	assert.Empty(t, progress)
	txnRepo.AssertNotCalled(t, "ListTransactions", mock.Anything, mock.Anything, mock.Anything)
}

func TestBudgetService_CreateBudget(t *testing.T) {
	ctx := context.Background()
	budgetRepo := new(MockBudgetRepository)
	svc := services.NewBudgetService(budgetRepo, new(MockTransactionRepository))

	budgetRepo.On("SaveBudget", ctx, mock.MatchedBy(func(b domain.Budget) bool {
		return b.Category == "Travel" && b.ScopeID == testUserID && b.BudgetID != ""
	})).Return(nil).Once()

	b, err := svc.CreateBudget(ctx, ownSession(), dto.CreateBudgetRequest{
		Category:        " Travel ",
		AllocatedAmount: dec("250"),
		PeriodStart:     time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		PeriodEnd:       time.Date(2025, 7, 31, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, "Travel", b.Category)

	_, err = svc.CreateBudget(ctx, ownSession(), dto.CreateBudgetRequest{
		Category:    "Travel",
		PeriodStart: time.Date(2025, 7, 31, 0, 0, 0, 0, time.UTC),
		PeriodEnd:   time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	budgetRepo.AssertExpectations(t)
}
