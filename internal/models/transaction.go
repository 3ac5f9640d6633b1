package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a row of the transactions table.
type Transaction struct {
	TransactionID   string          `db:"transaction_id" validate:"required"`
	ScopeID         string          `db:"scope_id" validate:"required"`
	AccountID       *string         `db:"account_id"`
	Category        string          `db:"category" validate:"required"`
	Description     string          `db:"description"`
	Amount          decimal.Decimal `db:"amount"`
	TransactionType string          `db:"transaction_type" validate:"required,oneof=INCOME EXPENSE"`
	Status          string          `db:"status" validate:"required,oneof=PENDING CLEARED CANCELLED"`
	TransactionDate time.Time       `db:"transaction_date"`
	AuditFields
}
