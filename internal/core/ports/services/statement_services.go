package services

import (
	"context"

	"github.com/SscSPs/money_ledger/internal/core/domain"
)

// StatementSvcFacade derives financial statements on demand.
type StatementSvcFacade interface {
	// GenerateFinancialStatement builds a profit and loss statement or balance sheet for the session's scope.
	GenerateFinancialStatement(ctx context.Context, session domain.Session, params domain.StatementParams) (*domain.FinancialStatement, error)

	// ExportFinancialStatement generates a statement and flattens it into {Section, Account, Amount} rows.
	ExportFinancialStatement(ctx context.Context, session domain.Session, params domain.StatementParams) ([]domain.ExportRow, error)
}
