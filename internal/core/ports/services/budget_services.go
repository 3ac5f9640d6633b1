package services

import (
	"context"
	"time"

	"github.com/SscSPs/money_ledger/internal/core/domain"
	"github.com/SscSPs/money_ledger/internal/dto"
)

// BudgetSvcFacade manages budgets and their spending.
type BudgetSvcFacade interface {
	CreateBudget(ctx context.Context, session domain.Session, req dto.CreateBudgetRequest) (*domain.Budget, error)

	// ListBudgetProgress returns budgets with spending computed from matching transactions.
	ListBudgetProgress(ctx context.Context, session domain.Session, activeOn *time.Time) ([]domain.BudgetProgress, error)
}
