package mapping

import (
	"github.com/SscSPs/money_ledger/internal/core/domain"
	"github.com/SscSPs/money_ledger/internal/models"
)

func ToDomainFixedAsset(m models.FixedAsset) (domain.FixedAsset, error) {
	if err := checkRow("fixed_assets", m.AssetID, m); err != nil {
		return domain.FixedAsset{}, err
	}
	d := domain.FixedAsset{
		AssetID:     m.AssetID,
		ScopeID:     m.ScopeID,
		Name:        m.Name,
		Value:       m.Value,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
	if m.AcquiredAt != nil {
		d.AcquiredAt = *m.AcquiredAt
	}
	return d, nil
}

func ToDomainFixedAssetSlice(ms []models.FixedAsset) ([]domain.FixedAsset, error) {
	ds := make([]domain.FixedAsset, len(ms))
	for i, m := range ms {
		d, err := ToDomainFixedAsset(m)
		if err != nil {
			return nil, err
		}
		ds[i] = d
	}
	return ds, nil
}

func ToDomainLiability(m models.Liability) (domain.LiabilityRecord, error) {
	if err := checkRow("liabilities", m.LiabilityID, m); err != nil {
		return domain.LiabilityRecord{}, err
	}
	return domain.LiabilityRecord{
		LiabilityID: m.LiabilityID,
		ScopeID:     m.ScopeID,
		Name:        m.Name,
		Balance:     m.Balance,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}, nil
}

func ToDomainLiabilitySlice(ms []models.Liability) ([]domain.LiabilityRecord, error) {
	ds := make([]domain.LiabilityRecord, len(ms))
	for i, m := range ms {
		d, err := ToDomainLiability(m)
		if err != nil {
			return nil, err
		}
		ds[i] = d
	}
	return ds, nil
}
