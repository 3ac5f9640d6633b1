package mapping

import (
	"github.com/SscSPs/money_ledger/internal/core/domain"
	"github.com/SscSPs/money_ledger/internal/models"
)

func ToModelBudget(d domain.Budget) models.Budget {
	return models.Budget{
		BudgetID:        d.BudgetID,
		ScopeID:         d.ScopeID,
		Category:        d.Category,
		AllocatedAmount: d.AllocatedAmount,
		SpentAmount:     d.SpentAmount,
		PeriodStart:     d.PeriodStart,
		PeriodEnd:       d.PeriodEnd,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainBudget(m models.Budget) (domain.Budget, error) {
	if err := checkRow("budgets", m.BudgetID, m); err != nil {
		return domain.Budget{}, err
	}
	return domain.Budget{
		BudgetID:        m.BudgetID,
		ScopeID:         m.ScopeID,
		Category:        m.Category,
		AllocatedAmount: m.AllocatedAmount,
		SpentAmount:     m.SpentAmount,
		PeriodStart:     m.PeriodStart,
		PeriodEnd:       m.PeriodEnd,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}, nil
}

func ToDomainBudgetSlice(ms []models.Budget) ([]domain.Budget, error) {
	ds := make([]domain.Budget, len(ms))
	for i, m := range ms {
		d, err := ToDomainBudget(m)
		if err != nil {
			return nil, err
		}
		ds[i] = d
	}
	return ds, nil
}
