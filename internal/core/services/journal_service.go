package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/SscSPs/money_ledger/internal/apperrors"
	"github.com/SscSPs/money_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/money_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/money_ledger/internal/core/ports/services"
	"github.com/SscSPs/money_ledger/internal/dto"
	"github.com/SscSPs/money_ledger/internal/utils/accounting"
	"github.com/SscSPs/money_ledger/internal/utils/pagination"
)

// journalService records journal entries and drives their lifecycle.
type journalService struct {
	BaseService
	journalRepo     portsrepo.JournalRepositoryFacade
	accountRepo     portsrepo.AccountReader
	strictLineSides bool
}

// JournalServiceOption is a functional option for configuring the journal service
type JournalServiceOption func(*journalService)

// WithJournalScopeAuthorizer adds the scope authorizer dependency
func WithJournalScopeAuthorizer(authorizer portssvc.ScopeAuthorizerSvc) JournalServiceOption {
	return func(s *journalService) {
		s.ScopeAuthorizer = authorizer
	}
}

// WithJournalStatementCache makes balance-changing operations drop the scope's cached statements.
func WithJournalStatementCache(cache portsrepo.StatementCache) JournalServiceOption {
	return func(s *journalService) {
		s.StatementCache = cache
	}
}

// WithStrictLineSides rejects lines carrying both a debit and a credit.
func WithStrictLineSides(strict bool) JournalServiceOption {
	return func(s *journalService) {
		s.strictLineSides = strict
	}
}

// NewJournalService creates a new JournalService.
func NewJournalService(journalRepo portsrepo.JournalRepositoryFacade, accountRepo portsrepo.AccountReader, options ...JournalServiceOption) portssvc.JournalSvcFacade {
	svc := &journalService{
		journalRepo: journalRepo,
		accountRepo: accountRepo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.JournalSvcFacade = (*journalService)(nil)

func (s *journalService) loadChart(ctx context.Context, scopeID string) (*accounting.ChartOfAccounts, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx, scopeID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load chart of accounts", slog.String("scope_id", scopeID))
		return nil, fmt.Errorf("failed to load chart of accounts: %w", err)
	}
	return accounting.NewChartOfAccounts(scopeID, accounts), nil
}

func (s *journalService) validator(chart *accounting.ChartOfAccounts) *accounting.EntryValidator {
	return accounting.NewEntryValidator(
		accounting.WithChart(chart),
		accounting.WithStrictLineSides(s.strictLineSides),
	)
}

// assignLineIDs gives every line a fresh ID and links it to the journal.
func assignLineIDs(journalID string, lines []domain.JournalEntryLine) {
	for i := range lines {
		lines[i].LineID = uuid.NewString()
		lines[i].JournalID = journalID
	}
}

// CreateJournalEntry validates and records a journal entry.
func (s *journalService) CreateJournalEntry(ctx context.Context, session domain.Session, req dto.CreateJournalEntryRequest) (*domain.JournalEntry, error) {
	if err := s.AuthorizeSession(ctx, session, domain.RoleMember); err != nil {
		s.LogError(ctx, err, "User not authorized to create journal entry",
			slog.String("user_id", session.UserID),
			slog.String("scope_id", session.ScopeID))
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = domain.Posted
	}
	if status != domain.Posted && status != domain.Draft {
		return nil, fmt.Errorf("%w: journal entries can only be created as %s or %s", apperrors.ErrValidation, domain.Draft, domain.Posted)
	}

	chart, err := s.loadChart(ctx, session.ScopeID)
	if err != nil {
		return nil, err
	}

	lines := dto.ToDomainLines(req.Lines)
	if status == domain.Posted {
		err = s.validator(chart).Validate(req.Description, lines)
	} else {
		err = s.validator(chart).ValidateDraft(req.Description, lines)
	}
	if err != nil {
		s.LogDebug(ctx, "Journal entry rejected", slog.String("reason", err.Error()))
		return nil, err
	}

	resolved, err := accounting.ResolveLines(lines, chart)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	date := req.Date
	if date.IsZero() {
		date = now
	}
	entry := domain.JournalEntry{
		JournalID:   uuid.NewString(),
		ScopeID:     session.ScopeID,
		Date:        date,
		Description: strings.TrimSpace(req.Description),
		Status:      status,
		Lines:       resolved,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     session.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: session.UserID,
		},
	}
	entry.Amount = entry.TotalDebits()
	assignLineIDs(entry.JournalID, entry.Lines)

	var changes map[string]decimal.Decimal
	if status == domain.Posted {
		changes, err = accounting.CalculateBalanceChanges(entry.Lines, chart)
		if err != nil {
			s.LogError(ctx, err, "Failed to calculate balance changes", slog.String("journal_id", entry.JournalID))
			return nil, fmt.Errorf("failed to calculate balance changes: %w", err)
		}
	}

	if err := s.journalRepo.SaveJournalEntry(ctx, entry, changes); err != nil {
		s.LogError(ctx, err, "Failed to save journal entry",
			slog.String("journal_id", entry.JournalID),
			slog.String("scope_id", session.ScopeID))
		return nil, fmt.Errorf("failed to save journal entry: %w", err)
	}
	if status == domain.Posted {
		s.InvalidateStatements(ctx, session.ScopeID)
	}

	s.LogInfo(ctx, "Journal entry created successfully",
		slog.String("journal_id", entry.JournalID),
		slog.String("status", string(entry.Status)),
		slog.Int("line_count", len(entry.Lines)))
	return &entry, nil
}

// GetJournalEntry retrieves a journal entry with its lines.
func (s *journalService) GetJournalEntry(ctx context.Context, session domain.Session, journalID string) (*domain.JournalEntry, error) {
	if err := s.AuthorizeSession(ctx, session, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	entry, err := s.journalRepo.FindJournalEntryByID(ctx, session.ScopeID, journalID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find journal entry", slog.String("journal_id", journalID))
		return nil, fmt.Errorf("failed to find journal entry: %w", err)
	}
	return entry, nil
}

// ListJournalEntries retrieves a page of journal entries, newest first.
func (s *journalService) ListJournalEntries(ctx context.Context, session domain.Session, params dto.ListJournalEntriesParams) (*dto.ListJournalEntriesResponse, error) {
	if err := s.AuthorizeSession(ctx, session, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	filter := portsrepo.JournalListFilter{Limit: pagination.ClampLimit(params.Limit)}
	if params.Status != "" {
		status := domain.JournalStatus(params.Status)
		if !status.IsValid() {
			return nil, fmt.Errorf("%w: unknown journal status %q", apperrors.ErrValidation, params.Status)
		}
		filter.Status = &status
	}
	if params.NextToken != "" {
		if _, err := pagination.DecodeToken(params.NextToken); err != nil {
			return nil, fmt.Errorf("%w: invalid nextToken: %v", apperrors.ErrValidation, err)
		}
		filter.NextToken = &params.NextToken
	}

	entries, nextToken, err := s.journalRepo.ListJournalEntries(ctx, session.ScopeID, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list journal entries", slog.String("scope_id", session.ScopeID))
		return nil, fmt.Errorf("failed to list journal entries: %w", err)
	}

	resp := &dto.ListJournalEntriesResponse{
		Entries:   make([]dto.JournalEntryResponse, len(entries)),
		NextToken: nextToken,
	}
	for i := range entries {
		resp.Entries[i] = dto.ToJournalEntryResponse(&entries[i])
	}
	return resp, nil
}

// findForTransition loads an entry and checks it is in the expected status.
func (s *journalService) findForTransition(ctx context.Context, session domain.Session, journalID string, expected domain.JournalStatus, action string) (*domain.JournalEntry, error) {
	if err := s.AuthorizeSession(ctx, session, domain.RoleMember); err != nil {
		s.LogError(ctx, err, "User not authorized to "+action+" journal entry",
			slog.String("user_id", session.UserID),
			slog.String("journal_id", journalID))
		return nil, err
	}
	entry, err := s.journalRepo.FindJournalEntryByID(ctx, session.ScopeID, journalID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find journal entry", slog.String("journal_id", journalID))
		return nil, fmt.Errorf("failed to find journal entry: %w", err)
	}
	if entry.Status != expected {
		return nil, apperrors.NewConflictError(fmt.Sprintf("cannot %s a journal entry in status %s", action, entry.Status))
	}
	return entry, nil
}

// UpdateDraftJournalEntry replaces the editable fields of a draft.
func (s *journalService) UpdateDraftJournalEntry(ctx context.Context, session domain.Session, journalID string, req dto.UpdateDraftJournalEntryRequest) (*domain.JournalEntry, error) {
	entry, err := s.findForTransition(ctx, session, journalID, domain.Draft, "edit")
	if err != nil {
		return nil, err
	}

	chart, err := s.loadChart(ctx, session.ScopeID)
	if err != nil {
		return nil, err
	}
	lines := dto.ToDomainLines(req.Lines)
	if err := s.validator(chart).ValidateDraft(req.Description, lines); err != nil {
		return nil, err
	}
	resolved, err := accounting.ResolveLines(lines, chart)
	if err != nil {
		return nil, err
	}

	entry.Description = strings.TrimSpace(req.Description)
	if req.Date != nil {
		entry.Date = *req.Date
	}
	entry.Lines = resolved
	entry.Amount = entry.TotalDebits()
	assignLineIDs(entry.JournalID, entry.Lines)
	entry.LastUpdatedAt = time.Now().UTC()
	entry.LastUpdatedBy = session.UserID

	if err := s.journalRepo.ReplaceDraftJournalEntry(ctx, *entry); err != nil {
		s.LogError(ctx, err, "Failed to update draft journal entry", slog.String("journal_id", journalID))
		return nil, fmt.Errorf("failed to update draft journal entry: %w", err)
	}

	s.LogInfo(ctx, "Draft journal entry updated", slog.String("journal_id", journalID))
	return entry, nil
}

// PostJournalEntry validates a draft in full and posts it.
func (s *journalService) PostJournalEntry(ctx context.Context, session domain.Session, journalID string) (*domain.JournalEntry, error) {
	entry, err := s.findForTransition(ctx, session, journalID, domain.Draft, "post")
	if err != nil {
		return nil, err
	}

	chart, err := s.loadChart(ctx, session.ScopeID)
	if err != nil {
		return nil, err
	}
	if err := s.validator(chart).Validate(entry.Description, entry.Lines); err != nil {
		s.LogDebug(ctx, "Draft rejected on post", slog.String("journal_id", journalID), slog.String("reason", err.Error()))
		return nil, err
	}
	changes, err := accounting.CalculateBalanceChanges(entry.Lines, chart)
	if err != nil {
		s.LogError(ctx, err, "Failed to calculate balance changes", slog.String("journal_id", journalID))
		return nil, fmt.Errorf("failed to calculate balance changes: %w", err)
	}

	return s.transition(ctx, session, entry, domain.Posted, changes)
}

// ensureNotReversed returns a conflict when a non-void reversal of journalID exists.
func (s *journalService) ensureNotReversed(ctx context.Context, scopeID, journalID string) error {
	existing, err := s.journalRepo.FindReversalOf(ctx, scopeID, journalID)
	if err == nil {
		return apperrors.NewConflictError(fmt.Sprintf("journal entry already reversed by %s", existing.JournalID))
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to look up existing reversal", slog.String("journal_id", journalID))
		return fmt.Errorf("failed to look up existing reversal: %w", err)
	}
	return nil
}

// VoidJournalEntry voids a posted entry and reverts its balance changes. An entry with a
// live reversal cannot be voided; void the reversal first.
func (s *journalService) VoidJournalEntry(ctx context.Context, session domain.Session, journalID string) (*domain.JournalEntry, error) {
	entry, err := s.findForTransition(ctx, session, journalID, domain.Posted, "void")
	if err != nil {
		return nil, err
	}
	if err := s.ensureNotReversed(ctx, session.ScopeID, journalID); err != nil {
		return nil, err
	}

	chart, err := s.loadChart(ctx, session.ScopeID)
	if err != nil {
		return nil, err
	}
	changes, err := accounting.CalculateBalanceChanges(entry.Lines, chart)
	if err != nil {
		s.LogError(ctx, err, "Failed to calculate balance changes", slog.String("journal_id", journalID))
		return nil, fmt.Errorf("failed to calculate balance changes: %w", err)
	}

	return s.transition(ctx, session, entry, domain.Void, accounting.NegateChanges(changes))
}

func (s *journalService) transition(ctx context.Context, session domain.Session, entry *domain.JournalEntry, to domain.JournalStatus, changes map[string]decimal.Decimal) (*domain.JournalEntry, error) {
	now := time.Now().UTC()
	if err := s.journalRepo.UpdateJournalEntryStatus(ctx, session.ScopeID, entry.JournalID, entry.Status, to, changes, session.UserID, now); err != nil {
		s.LogError(ctx, err, "Failed to update journal entry status",
			slog.String("journal_id", entry.JournalID),
			slog.String("from", string(entry.Status)),
			slog.String("to", string(to)))
		return nil, fmt.Errorf("failed to update journal entry status: %w", err)
	}
	s.InvalidateStatements(ctx, session.ScopeID)

	s.LogInfo(ctx, "Journal entry status updated",
		slog.String("journal_id", entry.JournalID),
		slog.String("from", string(entry.Status)),
		slog.String("to", string(to)))
	entry.Status = to
	entry.LastUpdatedAt = now
	entry.LastUpdatedBy = session.UserID
	return entry, nil
}

// ReverseJournalEntry posts a new entry that cancels out a posted one.
func (s *journalService) ReverseJournalEntry(ctx context.Context, session domain.Session, journalID string) (*domain.JournalEntry, error) {
	original, err := s.findForTransition(ctx, session, journalID, domain.Posted, "reverse")
	if err != nil {
		return nil, err
	}
	if original.ReversalOfID != nil {
		return nil, apperrors.NewConflictError("a reversing journal entry cannot be reversed")
	}
	if err := s.ensureNotReversed(ctx, session.ScopeID, journalID); err != nil {
		return nil, err
	}

	chart, err := s.loadChart(ctx, session.ScopeID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	reversal := domain.JournalEntry{
		JournalID:    uuid.NewString(),
		ScopeID:      session.ScopeID,
		Date:         now,
		Description:  "Reversal of " + original.Description,
		Status:       domain.Posted,
		ReversalOfID: &original.JournalID,
		Lines:        accounting.ReverseLines(original.Lines),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     session.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: session.UserID,
		},
	}
	reversal.Amount = reversal.TotalDebits()
	assignLineIDs(reversal.JournalID, reversal.Lines)

	changes, err := accounting.CalculateBalanceChanges(reversal.Lines, chart)
	if err != nil {
		s.LogError(ctx, err, "Failed to calculate balance changes", slog.String("journal_id", journalID))
		return nil, fmt.Errorf("failed to calculate balance changes: %w", err)
	}

	if err := s.journalRepo.SaveJournalEntry(ctx, reversal, changes); err != nil {
		s.LogError(ctx, err, "Failed to save reversing journal entry", slog.String("journal_id", journalID))
		return nil, fmt.Errorf("failed to save reversing journal entry: %w", err)
	}
	s.InvalidateStatements(ctx, session.ScopeID)

	s.LogInfo(ctx, "Journal entry reversed",
		slog.String("journal_id", journalID),
		slog.String("reversal_id", reversal.JournalID))
	return &reversal, nil
}
