package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Budget is a row of the budgets table.
type Budget struct {
	BudgetID        string          `db:"budget_id" validate:"required"`
	ScopeID         string          `db:"scope_id" validate:"required"`
	Category        string          `db:"category" validate:"required"`
	AllocatedAmount decimal.Decimal `db:"allocated_amount" validate:"gte=0"`
	SpentAmount     decimal.Decimal `db:"spent_amount"`
	PeriodStart     time.Time       `db:"period_start"`
	PeriodEnd       time.Time       `db:"period_end"`
	AuditFields
}
