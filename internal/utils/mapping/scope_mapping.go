package mapping

import (
	"github.com/SscSPs/money_ledger/internal/core/domain"
	"github.com/SscSPs/money_ledger/internal/models"
)

// ToDomainScopeMembership validates a model ScopeMember and converts it to a domain ScopeMembership
func ToDomainScopeMembership(m models.ScopeMember) (domain.ScopeMembership, error) {
	if err := checkRow("scope_members", m.ScopeID+"/"+m.UserID, m); err != nil {
		return domain.ScopeMembership{}, err
	}
	return domain.ScopeMembership{
		UserID:   m.UserID,
		ScopeID:  m.ScopeID,
		Role:     domain.ScopeRole(m.Role),
		JoinedAt: m.JoinedAt,
	}, nil
}
