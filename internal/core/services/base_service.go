package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/money_ledger/internal/apperrors"
	"github.com/SscSPs/money_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/money_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/money_ledger/internal/core/ports/services"
	"github.com/SscSPs/money_ledger/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	ScopeAuthorizer portssvc.ScopeAuthorizerSvc
	StatementCache  portsrepo.StatementCache
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	s.GetLogger(ctx).Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// AuthorizeSession checks that the session's user holds the required role on the session's scope.
// Without an authorizer only the user's own scope is accessible.
func (s *BaseService) AuthorizeSession(ctx context.Context, session domain.Session, required domain.ScopeRole) error {
	if session.UserID == "" || session.ScopeID == "" {
		return apperrors.ErrUnauthorized
	}
	if s.ScopeAuthorizer != nil {
		return s.ScopeAuthorizer.AuthorizeScope(ctx, session, required)
	}
	if session.ScopeID == session.UserID {
		return nil
	}
	s.LogDebug(ctx, "No scope authorizer provided, access to foreign scope denied",
		slog.String("user_id", session.UserID),
		slog.String("scope_id", session.ScopeID))
	return apperrors.ErrForbidden
}

// InvalidateStatements drops the scope's cached statements after a change that affects them.
// Failures are logged only; cached statements still expire after their TTL.
func (s *BaseService) InvalidateStatements(ctx context.Context, scopeID string) {
	if s.StatementCache == nil {
		return
	}
	if err := s.StatementCache.InvalidateScope(ctx, scopeID); err != nil {
		s.LogError(ctx, err, "Failed to invalidate cached statements", slog.String("scope_id", scopeID))
	}
}
