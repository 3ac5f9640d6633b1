package dto

import (
	"time"

	"github.com/SscSPs/money_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateBudgetRequest defines the data needed to create a budget.
type CreateBudgetRequest struct {
	Category        string          `json:"category" binding:"required"`
	AllocatedAmount decimal.Decimal `json:"allocatedAmount" binding:"gte=0"`
	PeriodStart     time.Time       `json:"periodStart" binding:"required"`
	PeriodEnd       time.Time       `json:"periodEnd" binding:"required,gtefield=PeriodStart"`
}

// ListBudgetsParams defines query parameters for listing budget progress.
type ListBudgetsParams struct {
	ActiveOn string `form:"activeOn"`
}

// ListBudgetsResponse wraps budgets with their spending progress.
type ListBudgetsResponse struct {
	Budgets []domain.BudgetProgress `json:"budgets"`
}
