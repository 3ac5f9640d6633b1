package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether a budgeting transaction is income or an expense.
type TransactionType string

const (
	IncomeTransaction  TransactionType = "INCOME"
	ExpenseTransaction TransactionType = "EXPENSE"
)

// TransactionStatus tracks the clearing state of a transaction.
type TransactionStatus string

const (
	Pending   TransactionStatus = "PENDING"
	Cleared   TransactionStatus = "CLEARED"
	Cancelled TransactionStatus = "CANCELLED"
)

// Transaction is a single-sided record used by budgeting and reporting.
// It is not reconciled with journal entries.
type Transaction struct {
	TransactionID string            `json:"transactionID"`
	ScopeID       string            `json:"scopeID"`
	AccountID     string            `json:"accountID"`
	Category      string            `json:"category"`
	Description   string            `json:"description"`
	Amount        decimal.Decimal   `json:"amount"` // Expenses may be stored negative
	Type          TransactionType   `json:"type"`
	Status        TransactionStatus `json:"status"`
	Date          time.Time         `json:"date"`
	AuditFields
}

// DateRange is an inclusive date interval. A zero bound is open.
type DateRange struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// Contains reports whether t falls inside the range.
func (r DateRange) Contains(t time.Time) bool {
	if !r.From.IsZero() && t.Before(r.From) {
		return false
	}
	if !r.To.IsZero() && t.After(r.To) {
		return false
	}
	return true
}
