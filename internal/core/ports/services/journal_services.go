package services

import (
	"context"

	"github.com/SscSPs/money_ledger/internal/core/domain"
	"github.com/SscSPs/money_ledger/internal/dto"
)

// JournalReaderSvc defines read operations for journal data
type JournalReaderSvc interface {
	GetJournalEntry(ctx context.Context, session domain.Session, journalID string) (*domain.JournalEntry, error)
	ListJournalEntries(ctx context.Context, session domain.Session, params dto.ListJournalEntriesParams) (*dto.ListJournalEntriesResponse, error)
}

// JournalWriterSvc defines write operations and lifecycle transitions of journal entries.
// Illegal transitions return apperrors.ErrConflict.
type JournalWriterSvc interface {
	// CreateJournalEntry validates and records an entry. Posted entries update account balances.
	CreateJournalEntry(ctx context.Context, session domain.Session, req dto.CreateJournalEntryRequest) (*domain.JournalEntry, error)

	// UpdateDraftJournalEntry replaces the description, date and lines of a draft.
	UpdateDraftJournalEntry(ctx context.Context, session domain.Session, journalID string, req dto.UpdateDraftJournalEntryRequest) (*domain.JournalEntry, error)

	// PostJournalEntry moves a draft to posted after full validation.
	PostJournalEntry(ctx context.Context, session domain.Session, journalID string) (*domain.JournalEntry, error)

	// VoidJournalEntry moves a posted entry to void and reverts its balance changes.
	VoidJournalEntry(ctx context.Context, session domain.Session, journalID string) (*domain.JournalEntry, error)

	// ReverseJournalEntry posts a new entry with debits and credits swapped.
	ReverseJournalEntry(ctx context.Context, session domain.Session, journalID string) (*domain.JournalEntry, error)
}

// JournalSvcFacade combines all journal-related service interfaces
type JournalSvcFacade interface {
	JournalReaderSvc
	JournalWriterSvc
}
