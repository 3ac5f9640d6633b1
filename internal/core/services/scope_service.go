package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SscSPs/money_ledger/internal/apperrors"
	"github.com/SscSPs/money_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/money_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/money_ledger/internal/core/ports/services"
)

// scopeService decides access to a scope's books from ownership and memberships.
type scopeService struct {
	BaseService
	memberRepo portsrepo.ScopeMemberRepository
}

// NewScopeService creates a new scope authorizer.
func NewScopeService(memberRepo portsrepo.ScopeMemberRepository) portssvc.ScopeAuthorizerSvc {
	return &scopeService{memberRepo: memberRepo}
}

var _ portssvc.ScopeAuthorizerSvc = (*scopeService)(nil)

// AuthorizeScope checks if a user has required permissions for a scope
func (s *scopeService) AuthorizeScope(ctx context.Context, session domain.Session, required domain.ScopeRole) error {
	if session.UserID == "" || session.ScopeID == "" {
		return apperrors.ErrUnauthorized
	}
	// Everyone owns their personal books.
	if session.ScopeID == session.UserID {
		return nil
	}
	if s.memberRepo == nil {
		return apperrors.ErrForbidden
	}

	membership, err := s.memberRepo.FindScopeMembership(ctx, session.UserID, session.ScopeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogDebug(ctx, "User not a member of scope",
				slog.String("user_id", session.UserID),
				slog.String("scope_id", session.ScopeID))
			return apperrors.ErrForbidden
		}
		s.LogError(ctx, err, "Failed to find scope membership",
			slog.String("user_id", session.UserID),
			slog.String("scope_id", session.ScopeID))
		return err
	}

	if !membership.Role.Satisfies(required) {
		s.LogDebug(ctx, "User does not have required role",
			slog.String("user_id", session.UserID),
			slog.String("scope_id", session.ScopeID),
			slog.String("user_role", string(membership.Role)),
			slog.String("required_role", string(required)))
		return apperrors.ErrForbidden
	}
	return nil
}
