package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry is a row of the journal_entries table.
type JournalEntry struct {
	JournalID    string          `db:"journal_id" validate:"required"`
	ScopeID      string          `db:"scope_id" validate:"required"`
	JournalDate  time.Time       `db:"journal_date"`
	Description  string          `db:"description" validate:"required"`
	Status       string          `db:"status" validate:"required,oneof=DRAFT POSTED VOID"`
	Amount       decimal.Decimal `db:"amount" validate:"gte=0"`
	ReversalOfID *string         `db:"reversal_of_id" validate:"omitempty,min=1"`
	AuditFields
}

// JournalLine is a row of the journal_lines table.
type JournalLine struct {
	LineID       string          `db:"line_id" validate:"required"`
	JournalID    string          `db:"journal_id" validate:"required"`
	LineNo       int             `db:"line_no" validate:"gte=1"`
	AccountID    string          `db:"account_id" validate:"required"`
	AccountRef   string          `db:"account_ref"`
	Description  *string         `db:"description"`
	DebitAmount  decimal.Decimal `db:"debit_amount" validate:"gte=0"`
	CreditAmount decimal.Decimal `db:"credit_amount" validate:"gte=0"`
	CreatedAt    time.Time       `db:"created_at"`
	CreatedBy    string          `db:"created_by" validate:"required"`
}
