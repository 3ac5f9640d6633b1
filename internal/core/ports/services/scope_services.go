package services

import (
	"context"

	"github.com/SscSPs/money_ledger/internal/core/domain"
)

// ScopeAuthorizerSvc decides whether a session may act on its scope.
type ScopeAuthorizerSvc interface {
	// AuthorizeScope returns apperrors.ErrForbidden unless the session's user has at least the required role.
	AuthorizeScope(ctx context.Context, session domain.Session, required domain.ScopeRole) error
}
