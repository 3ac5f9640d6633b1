package dto

import (
	"time"

	"github.com/SscSPs/money_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to record a budgeting transaction.
// Expense amounts may be sent negative; reports use their magnitude.
type CreateTransactionRequest struct {
	AccountID   string                   `json:"accountID"`
	Category    string                   `json:"category" binding:"required"`
	Description string                   `json:"description"`
	Amount      decimal.Decimal          `json:"amount"`
	Type        domain.TransactionType   `json:"type" binding:"required,oneof=INCOME EXPENSE"`
	Status      domain.TransactionStatus `json:"status" binding:"omitempty,oneof=PENDING CLEARED CANCELLED"` // Defaults to CLEARED
	Date        time.Time                `json:"date"`                                                       // Defaults to now
}

// ListTransactionsParams defines query parameters for listing transactions.
// Dates are YYYY-MM-DD or RFC 3339; a date-only "to" includes the whole day.
type ListTransactionsParams struct {
	From string `form:"from"`
	To   string `form:"to"`
}

// ListTransactionsResponse wraps the list of transactions.
type ListTransactionsResponse struct {
	Transactions []domain.Transaction `json:"transactions"`
}
