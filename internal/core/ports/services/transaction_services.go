package services

import (
	"context"

	"github.com/SscSPs/money_ledger/internal/core/domain"
	"github.com/SscSPs/money_ledger/internal/dto"
)

// TransactionSvcFacade manages single-sided budgeting transactions.
type TransactionSvcFacade interface {
	CreateTransaction(ctx context.Context, session domain.Session, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	// ListTransactions returns the scope's transactions, optionally restricted to a date range.
	ListTransactions(ctx context.Context, session domain.Session, period *domain.DateRange) ([]domain.Transaction, error)
}
