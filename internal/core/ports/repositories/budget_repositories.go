package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/money_ledger/internal/core/domain"
)

// BudgetRepository persists budgets.
type BudgetRepository interface {
	SaveBudget(ctx context.Context, budget domain.Budget) error

	// ListBudgets returns the scope's budgets. When activeOn is set only budgets whose period
	// contains it are returned.
	ListBudgets(ctx context.Context, scopeID string, activeOn *time.Time) ([]domain.Budget, error)
}
