package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/money_ledger/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByID retrieves an account of the scope by its unique identifier.
	FindAccountByID(ctx context.Context, scopeID, accountID string) (*domain.Account, error)

	// ListAccounts retrieves every account of a scope ordered by code.
	ListAccounts(ctx context.Context, scopeID string) ([]domain.Account, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// SaveAccount persists a new account. A duplicate code within the scope returns apperrors.ErrDuplicate.
	SaveAccount(ctx context.Context, account domain.Account) error
}

// AccountTransactionSupport defines operations that support journal postings
type AccountTransactionSupport interface {
	// FindAccountsByIDsForUpdate selects accounts of a scope and locks them for update within a transaction.
	FindAccountsByIDsForUpdate(ctx context.Context, tx pgx.Tx, scopeID string, accountIDs []string) (map[string]domain.Account, error)

	// UpdateAccountBalancesInTx adds the given deltas to the account balances within a transaction.
	UpdateAccountBalancesInTx(ctx context.Context, tx pgx.Tx, balanceChanges map[string]decimal.Decimal, userID string, now time.Time) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
	AccountTransactionSupport
}
