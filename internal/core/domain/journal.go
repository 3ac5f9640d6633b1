package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalStatus indicates the state of a journal entry.
type JournalStatus string

const (
	Draft  JournalStatus = "DRAFT"
	Posted JournalStatus = "POSTED"
	Void   JournalStatus = "VOID"
)

// IsValid reports whether s is a known journal status.
func (s JournalStatus) IsValid() bool {
	return s == Draft || s == Posted || s == Void
}

// JournalEntryLine is one side of a double-entry posting.
type JournalEntryLine struct {
	LineID       string          `json:"lineID"`
	JournalID    string          `json:"journalID"`
	LineNo       int             `json:"lineNo"`     // 1-based, preserves submission order
	AccountRef   string          `json:"accountRef"` // Account ID or code as submitted
	AccountID    string          `json:"accountID"`  // Resolved account ID
	Description  string          `json:"description"`
	DebitAmount  decimal.Decimal `json:"debitAmount"`
	CreditAmount decimal.Decimal `json:"creditAmount"`
}

// JournalEntry represents a single, balanced financial event composed of multiple lines.
type JournalEntry struct {
	JournalID    string             `json:"journalID"`
	ScopeID      string             `json:"scopeID"`
	Date         time.Time          `json:"date"`
	Description  string             `json:"description"`
	Status       JournalStatus      `json:"status"`
	Amount       decimal.Decimal    `json:"amount"`                 // Total debits
	ReversalOfID *string            `json:"reversalOfID,omitempty"` // Set on a reversing entry
	Lines        []JournalEntryLine `json:"lines,omitempty"`
	AuditFields
}

// TotalDebits sums the debit side of all lines.
func (j *JournalEntry) TotalDebits() decimal.Decimal {
	total := decimal.Zero
	for _, l := range j.Lines {
		total = total.Add(l.DebitAmount)
	}
	return total
}

// TotalCredits sums the credit side of all lines.
func (j *JournalEntry) TotalCredits() decimal.Decimal {
	total := decimal.Zero
	for _, l := range j.Lines {
		total = total.Add(l.CreditAmount)
	}
	return total
}
