package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/money_ledger/internal/core/domain"
)

// StatementCache stores generated statements for a short time.
// Implementations must treat a miss as (nil, false, nil).
type StatementCache interface {
	Get(ctx context.Context, scopeID, key string) (*domain.FinancialStatement, bool, error)
	Set(ctx context.Context, scopeID, key string, stmt *domain.FinancialStatement, ttl time.Duration) error

	// InvalidateScope drops every cached statement of the scope.
	InvalidateScope(ctx context.Context, scopeID string) error
}
