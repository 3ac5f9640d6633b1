package services

import (
	"context"

	"github.com/SscSPs/money_ledger/internal/core/domain"
	"github.com/SscSPs/money_ledger/internal/dto"
	"github.com/SscSPs/money_ledger/internal/utils/accounting"
)

// AccountReaderSvc defines read operations for account data
type AccountReaderSvc interface {
	// GetAccount retrieves an account of the session's scope by ID.
	GetAccount(ctx context.Context, session domain.Session, accountID string) (*domain.Account, error)

	// ListAccounts retrieves every account of the session's scope.
	ListAccounts(ctx context.Context, session domain.Session) ([]domain.Account, error)

	// GetChartOfAccounts builds the lookup used to resolve journal lines and classify accounts.
	GetChartOfAccounts(ctx context.Context, session domain.Session) (*accounting.ChartOfAccounts, error)
}

// AccountWriterSvc defines write operations for account data
type AccountWriterSvc interface {
	// CreateAccount persists a new account with a zero balance.
	CreateAccount(ctx context.Context, session domain.Session, req dto.CreateAccountRequest) (*domain.Account, error)
}

// AccountSvcFacade combines all account-related service interfaces
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}
