package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/money_ledger/internal/apperrors"
	"github.com/SscSPs/money_ledger/internal/core/domain"
	"github.com/SscSPs/money_ledger/internal/core/services"
	"github.com/stretchr/testify/assert"
)

func TestScopeService_AuthorizeScope(t *testing.T) {
	ctx := context.Background()
	client := domain.Session{UserID: testUserID, ScopeID: "client-1"}

	tests := []struct {
		name       string
		session    domain.Session
		required   domain.ScopeRole
		membership *domain.ScopeMembership
		repoErr    error
		wantErr    error
		skipRepo   bool
	}{
		{name: "own scope", session: ownSession(), required: domain.RoleAdmin, skipRepo: true},
		{name: "missing user", session: domain.Session{ScopeID: "client-1"}, required: domain.RoleReadOnly, wantErr: apperrors.ErrUnauthorized, skipRepo: true},
		{name: "member writes", session: client, required: domain.RoleMember, membership: &domain.ScopeMembership{Role: domain.RoleMember}},
		{name: "readonly cannot write", session: client, required: domain.RoleMember, membership: &domain.ScopeMembership{Role: domain.RoleReadOnly}, wantErr: apperrors.ErrForbidden},
		{name: "readonly reads", session: client, required: domain.RoleReadOnly, membership: &domain.ScopeMembership{Role: domain.RoleReadOnly}},
		{name: "not a member", session: client, required: domain.RoleReadOnly, repoErr: apperrors.ErrNotFound, wantErr: apperrors.ErrForbidden},
		{name: "repository failure", session: client, required: domain.RoleReadOnly, repoErr: assert.AnError, wantErr: assert.AnError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockScopeMemberRepository)
			if !tt.skipRepo {
				if tt.membership != nil {
					repo.On("FindScopeMembership", ctx, tt.session.UserID, tt.session.ScopeID).Return(tt.membership, nil).Once()
				} else {
					repo.On("FindScopeMembership", ctx, tt.session.UserID, tt.session.ScopeID).Return(nil, tt.repoErr).Once()
				}
			}

			err := services.NewScopeService(repo).AuthorizeScope(ctx, tt.session, tt.required)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			repo.AssertExpectations(t)
		})
	}
}
