package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/money_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// JournalListFilter narrows a journal entry listing.
type JournalListFilter struct {
	Status    *domain.JournalStatus
	Limit     int
	NextToken *string
}

// JournalReader defines read operations for journal data
type JournalReader interface {
	// FindJournalEntryByID retrieves a journal entry of the scope with its lines.
	FindJournalEntryByID(ctx context.Context, scopeID, journalID string) (*domain.JournalEntry, error)

	// FindReversalOf returns the non-void entry reversing journalID, or apperrors.ErrNotFound.
	FindReversalOf(ctx context.Context, scopeID, journalID string) (*domain.JournalEntry, error)

	// ListJournalEntries retrieves a page of entries, newest first, without their lines.
	// It returns the entries, a token for the next page, and an error.
	ListJournalEntries(ctx context.Context, scopeID string, filter JournalListFilter) ([]domain.JournalEntry, *string, error)

	// ListPostedJournalEntries retrieves posted entries with their lines dated within the period.
	ListPostedJournalEntries(ctx context.Context, scopeID string, period domain.DateRange) ([]domain.JournalEntry, error)
}

// JournalWriter defines write operations for journal data.
// Balance changes are applied atomically with the entry change, locking the affected accounts.
type JournalWriter interface {
	// SaveJournalEntry persists a new entry and its lines and applies balanceChanges. A reversing
	// entry returns apperrors.ErrConflict unless the original is posted and not already reversed.
	SaveJournalEntry(ctx context.Context, entry domain.JournalEntry, balanceChanges map[string]decimal.Decimal) error

	// ReplaceDraftJournalEntry overwrites the header and lines of a draft.
	// It returns apperrors.ErrConflict if the entry is no longer a draft.
	ReplaceDraftJournalEntry(ctx context.Context, entry domain.JournalEntry) error

	// UpdateJournalEntryStatus moves an entry from one status to another and applies balanceChanges.
	// It returns apperrors.ErrConflict if the entry is not in the from status, or when voiding an
	// entry that still has a non-void reversal.
	UpdateJournalEntryStatus(ctx context.Context, scopeID, journalID string, from, to domain.JournalStatus, balanceChanges map[string]decimal.Decimal, userID string, now time.Time) error
}

// JournalRepositoryFacade combines all journal-related repository interfaces
type JournalRepositoryFacade interface {
	JournalReader
	JournalWriter
}
