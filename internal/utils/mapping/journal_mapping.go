package mapping

import (
	"github.com/SscSPs/money_ledger/internal/core/domain"
	"github.com/SscSPs/money_ledger/internal/models"
)

// ToModelJournalEntry converts a domain JournalEntry to a model JournalEntry. Lines are
// converted separately with ToModelJournalLine.
func ToModelJournalEntry(d domain.JournalEntry) models.JournalEntry {
	return models.JournalEntry{
		JournalID:    d.JournalID,
		ScopeID:      d.ScopeID,
		JournalDate:  d.Date,
		Description:  d.Description,
		Status:       string(d.Status),
		Amount:       d.Amount,
		ReversalOfID: d.ReversalOfID,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToModelJournalLine converts a domain line of a journal to a model JournalLine
func ToModelJournalLine(d domain.JournalEntryLine, audit domain.AuditFields) models.JournalLine {
	var desc *string
	if d.Description != "" {
		desc = &d.Description
	}
	return models.JournalLine{
		LineID:       d.LineID,
		JournalID:    d.JournalID,
		LineNo:       d.LineNo,
		AccountID:    d.AccountID,
		AccountRef:   d.AccountRef,
		Description:  desc,
		DebitAmount:  d.DebitAmount,
		CreditAmount: d.CreditAmount,
		CreatedAt:    audit.CreatedAt,
		CreatedBy:    audit.CreatedBy,
	}
}

// ToDomainJournalLine validates a model JournalLine and converts it to a domain line
func ToDomainJournalLine(m models.JournalLine) (domain.JournalEntryLine, error) {
	if err := checkRow("journal_lines", m.LineID, m); err != nil {
		return domain.JournalEntryLine{}, err
	}
	var desc string
	if m.Description != nil {
		desc = *m.Description
	}
	return domain.JournalEntryLine{
		LineID:       m.LineID,
		JournalID:    m.JournalID,
		LineNo:       m.LineNo,
		AccountRef:   m.AccountRef,
		AccountID:    m.AccountID,
		Description:  desc,
		DebitAmount:  m.DebitAmount,
		CreditAmount: m.CreditAmount,
	}, nil
}

// ToDomainJournalEntry validates a model JournalEntry with its lines and converts both.
func ToDomainJournalEntry(m models.JournalEntry, lines []models.JournalLine) (domain.JournalEntry, error) {
	if err := checkRow("journal_entries", m.JournalID, m); err != nil {
		return domain.JournalEntry{}, err
	}
	d := domain.JournalEntry{
		JournalID:    m.JournalID,
		ScopeID:      m.ScopeID,
		Date:         m.JournalDate,
		Description:  m.Description,
		Status:       domain.JournalStatus(m.Status),
		Amount:       m.Amount,
		ReversalOfID: m.ReversalOfID,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
		Lines:        make([]domain.JournalEntryLine, 0, len(lines)),
	}
	for _, ml := range lines {
		l, err := ToDomainJournalLine(ml)
		if err != nil {
			return domain.JournalEntry{}, err
		}
		d.Lines = append(d.Lines, l)
	}
	return d, nil
}
