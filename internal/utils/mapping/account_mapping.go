package mapping

import (
	"github.com/SscSPs/money_ledger/internal/core/domain"
	"github.com/SscSPs/money_ledger/internal/models"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:    d.AccountID,
		ScopeID:      d.ScopeID,
		Code:         d.Code,
		Name:         d.Name,
		AccountType:  string(d.AccountType),
		CurrencyCode: d.CurrencyCode,
		Description:  d.Description,
		IsActive:     d.IsActive,
		Balance:      d.Balance,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccount validates a model Account and converts it to a domain Account
func ToDomainAccount(m models.Account) (domain.Account, error) {
	if err := checkRow("accounts", m.AccountID, m); err != nil {
		return domain.Account{}, err
	}
	return domain.Account{
		AccountID:    m.AccountID,
		ScopeID:      m.ScopeID,
		Code:         m.Code,
		Name:         m.Name,
		AccountType:  domain.AccountType(m.AccountType),
		CurrencyCode: m.CurrencyCode,
		Description:  m.Description,
		IsActive:     m.IsActive,
		Balance:      m.Balance,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}, nil
}

// ToDomainAccountSlice converts a slice of model Accounts, failing on the first invalid row
func ToDomainAccountSlice(ms []models.Account) ([]domain.Account, error) {
	ds := make([]domain.Account, len(ms))
	for i, m := range ms {
		d, err := ToDomainAccount(m)
		if err != nil {
			return nil, err
		}
		ds[i] = d
	}
	return ds, nil
}
