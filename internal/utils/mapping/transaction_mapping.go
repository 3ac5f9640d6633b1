package mapping

import (
	"github.com/SscSPs/money_ledger/internal/core/domain"
	"github.com/SscSPs/money_ledger/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	var accountID *string
	if d.AccountID != "" {
		accountID = &d.AccountID
	}
	return models.Transaction{
		TransactionID:   d.TransactionID,
		ScopeID:         d.ScopeID,
		AccountID:       accountID,
		Category:        d.Category,
		Description:     d.Description,
		Amount:          d.Amount,
		TransactionType: string(d.Type),
		Status:          string(d.Status),
		TransactionDate: d.Date,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction validates a model Transaction and converts it to a domain Transaction
func ToDomainTransaction(m models.Transaction) (domain.Transaction, error) {
	if err := checkRow("transactions", m.TransactionID, m); err != nil {
		return domain.Transaction{}, err
	}
	var accountID string
	if m.AccountID != nil {
		accountID = *m.AccountID
	}
	return domain.Transaction{
		TransactionID: m.TransactionID,
		ScopeID:       m.ScopeID,
		AccountID:     accountID,
		Category:      m.Category,
		Description:   m.Description,
		Amount:        m.Amount,
		Type:          domain.TransactionType(m.TransactionType),
		Status:        domain.TransactionStatus(m.Status),
		Date:          m.TransactionDate,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}, nil
}

// ToDomainTransactionSlice converts a slice of model Transactions, failing on the first invalid row
func ToDomainTransactionSlice(ms []models.Transaction) ([]domain.Transaction, error) {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		d, err := ToDomainTransaction(m)
		if err != nil {
			return nil, err
		}
		ds[i] = d
	}
	return ds, nil
}
