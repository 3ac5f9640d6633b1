package repositories

import (
	"context"

	"github.com/SscSPs/money_ledger/internal/core/domain"
)

// TransactionRepository persists single-sided budgeting transactions.
type TransactionRepository interface {
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// ListTransactions returns the scope's transactions ordered by date. A nil period returns all of them.
	ListTransactions(ctx context.Context, scopeID string, period *domain.DateRange) ([]domain.Transaction, error)
}
