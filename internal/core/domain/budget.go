package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Budget allocates an amount to a category for a period.
type Budget struct {
	BudgetID        string          `json:"budgetID"`
	ScopeID         string          `json:"scopeID"`
	Category        string          `json:"category"`
	AllocatedAmount decimal.Decimal `json:"allocatedAmount"`
	SpentAmount     decimal.Decimal `json:"spentAmount"`
	PeriodStart     time.Time       `json:"periodStart"`
	PeriodEnd       time.Time       `json:"periodEnd"`
	AuditFields
}

// Period returns the budget period as a DateRange.
func (b Budget) Period() DateRange {
	return DateRange{From: b.PeriodStart, To: b.PeriodEnd}
}

// BudgetProgress is a budget with its spending derived from transactions.
type BudgetProgress struct {
	Budget      Budget          `json:"budget"`
	Spent       decimal.Decimal `json:"spent"`
	Remaining   decimal.Decimal `json:"remaining"`
	PercentUsed decimal.Decimal `json:"percentUsed"`
	OverBudget  bool            `json:"overBudget"`
}
