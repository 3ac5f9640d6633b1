package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/money_ledger/internal/apperrors"
	"github.com/SscSPs/money_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/money_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/money_ledger/internal/models"
	"github.com/SscSPs/money_ledger/internal/utils/mapping"
	"github.com/SscSPs/money_ledger/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const journalColumns = `journal_id, scope_id, journal_date, description, status, amount, reversal_of_id,
		created_at, created_by, last_updated_at, last_updated_by`

const journalLineColumns = `line_id, journal_id, line_no, account_id, account_ref, description,
		debit_amount, credit_amount, created_at, created_by`

// reversalIndex guarantees at most one non-void reversal per journal entry.
const reversalIndex = "idx_journal_entries_reversal"

type PgxJournalRepository struct {
	BaseRepository
	accountRepo *PgxAccountRepository
}

func newPgxJournalRepository(pool *pgxpool.Pool, accountRepo *PgxAccountRepository) portsrepo.JournalRepositoryFacade {
	return &PgxJournalRepository{
		BaseRepository: BaseRepository{Pool: pool},
		accountRepo:    accountRepo,
	}
}

var _ portsrepo.JournalRepositoryFacade = (*PgxJournalRepository)(nil)

// SaveJournalEntry saves a journal entry and its lines, then applies balance changes, all in one transaction.
func (r *PgxJournalRepository) SaveJournalEntry(ctx context.Context, entry domain.JournalEntry, balanceChanges map[string]decimal.Decimal) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if entry.ReversalOfID != nil {
		if err := r.lockReversible(ctx, tx, entry.ScopeID, *entry.ReversalOfID); err != nil {
			return err
		}
	}

	m := mapping.ToModelJournalEntry(entry)
	insertEntry := `INSERT INTO journal_entries (` + journalColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);`
	_, err = tx.Exec(ctx, insertEntry,
		m.JournalID, m.ScopeID, m.JournalDate, m.Description, m.Status, m.Amount, m.ReversalOfID,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err, reversalIndex) {
			return apperrors.NewConflictError("journal entry has already been reversed")
		}
		return apperrors.NewAppError(500, "failed to insert journal entry "+m.JournalID, err)
	}

	if err := r.insertLines(ctx, tx, entry); err != nil {
		return err
	}

	if err := r.accountRepo.lockAndApply(ctx, tx, entry.ScopeID, balanceChanges, entry.CreatedBy, entry.CreatedAt); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

func (r *PgxJournalRepository) insertLines(ctx context.Context, tx pgx.Tx, entry domain.JournalEntry) error {
	if len(entry.Lines) == 0 {
		return nil
	}
	insertLine := `INSERT INTO journal_lines (` + journalLineColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);`

	batch := &pgx.Batch{}
	for _, line := range entry.Lines {
		ml := mapping.ToModelJournalLine(line, entry.AuditFields)
		batch.Queue(insertLine,
			ml.LineID, ml.JournalID, ml.LineNo, ml.AccountID, ml.AccountRef, ml.Description,
			ml.DebitAmount, ml.CreditAmount, ml.CreatedAt, ml.CreatedBy,
		)
	}

	br := tx.SendBatch(ctx, batch)
	for i := range entry.Lines {
		if _, err := br.Exec(); err != nil {
			br.Close()
			return apperrors.NewAppError(500, fmt.Sprintf("failed to insert journal line %d", i+1), err)
		}
	}
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to close journal line batch", err)
	}
	return nil
}

// lockStatus locks the entry header and returns its current status.
func (r *PgxJournalRepository) lockStatus(ctx context.Context, tx pgx.Tx, scopeID, journalID string) (domain.JournalStatus, error) {
	var status string
	err := tx.QueryRow(ctx,
		`SELECT status FROM journal_entries WHERE scope_id = $1 AND journal_id = $2 FOR UPDATE;`,
		scopeID, journalID,
	).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.NewNotFoundError("journal entry " + journalID + " not found")
		}
		return "", apperrors.NewAppError(500, "failed to lock journal entry "+journalID, err)
	}
	return domain.JournalStatus(status), nil
}

// lockReversible locks the entry being reversed and checks it is still posted with no live reversal.
func (r *PgxJournalRepository) lockReversible(ctx context.Context, tx pgx.Tx, scopeID, originalID string) error {
	status, err := r.lockStatus(ctx, tx, scopeID, originalID)
	if err != nil {
		return err
	}
	if status != domain.Posted {
		return apperrors.NewConflictError(fmt.Sprintf("journal entry %s is %s and cannot be reversed", originalID, status))
	}
	return r.checkNoLiveReversal(ctx, tx, scopeID, originalID)
}

// checkNoLiveReversal returns a conflict when a non-void reversal of journalID exists.
// Callers must hold the row lock of journalID.
func (r *PgxJournalRepository) checkNoLiveReversal(ctx context.Context, tx pgx.Tx, scopeID, journalID string) error {
	var reversalID string
	err := tx.QueryRow(ctx,
		`SELECT journal_id FROM journal_entries WHERE scope_id = $1 AND reversal_of_id = $2 AND status <> $3 LIMIT 1;`,
		scopeID, journalID, string(domain.Void),
	).Scan(&reversalID)
	if err == nil {
		return apperrors.NewConflictError(fmt.Sprintf("journal entry %s has been reversed by %s", journalID, reversalID))
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return nil
	}
	return apperrors.NewAppError(500, "failed to look up reversal of journal entry "+journalID, err)
}

// ReplaceDraftJournalEntry overwrites the header and all lines of a draft entry.
func (r *PgxJournalRepository) ReplaceDraftJournalEntry(ctx context.Context, entry domain.JournalEntry) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	status, err := r.lockStatus(ctx, tx, entry.ScopeID, entry.JournalID)
	if err != nil {
		return err
	}
	if status != domain.Draft {
		return apperrors.NewConflictError(fmt.Sprintf("journal entry %s is %s, only drafts can be edited", entry.JournalID, status))
	}

	m := mapping.ToModelJournalEntry(entry)
	_, err = tx.Exec(ctx, `
		UPDATE journal_entries
		SET journal_date = $3, description = $4, amount = $5, last_updated_at = $6, last_updated_by = $7
		WHERE scope_id = $1 AND journal_id = $2;`,
		m.ScopeID, m.JournalID, m.JournalDate, m.Description, m.Amount, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update journal entry "+m.JournalID, err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM journal_lines WHERE journal_id = $1;`, m.JournalID); err != nil {
		return apperrors.NewAppError(500, "failed to delete lines of journal entry "+m.JournalID, err)
	}

	// Replacement lines are stamped with the editor and the edit time.
	lineAudit := entry.AuditFields
	lineAudit.CreatedAt = entry.LastUpdatedAt
	lineAudit.CreatedBy = entry.LastUpdatedBy
	replaced := entry
	replaced.AuditFields = lineAudit
	if err := r.insertLines(ctx, tx, replaced); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// UpdateJournalEntryStatus moves an entry between statuses and applies balance changes atomically.
func (r *PgxJournalRepository) UpdateJournalEntryStatus(ctx context.Context, scopeID, journalID string, from, to domain.JournalStatus, balanceChanges map[string]decimal.Decimal, userID string, now time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	status, err := r.lockStatus(ctx, tx, scopeID, journalID)
	if err != nil {
		return err
	}
	if status != from {
		return apperrors.NewConflictError(fmt.Sprintf("journal entry %s is %s, expected %s", journalID, status, from))
	}
	if to == domain.Void {
		if err := r.checkNoLiveReversal(ctx, tx, scopeID, journalID); err != nil {
			return err
		}
	}

	_, err = tx.Exec(ctx, `
		UPDATE journal_entries
		SET status = $3, last_updated_at = $4, last_updated_by = $5
		WHERE scope_id = $1 AND journal_id = $2;`,
		scopeID, journalID, string(to), now, userID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update status of journal entry "+journalID, err)
	}

	if err := r.accountRepo.lockAndApply(ctx, tx, scopeID, balanceChanges, userID, now); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// FindJournalEntryByID retrieves a journal entry of the scope with its lines ordered by line number.
func (r *PgxJournalRepository) FindJournalEntryByID(ctx context.Context, scopeID, journalID string) (*domain.JournalEntry, error) {
	return r.findOne(ctx, `SELECT `+journalColumns+` FROM journal_entries WHERE scope_id = $1 AND journal_id = $2;`, scopeID, journalID)
}

// FindReversalOf returns the non-void entry whose reversal_of_id points at journalID.
func (r *PgxJournalRepository) FindReversalOf(ctx context.Context, scopeID, journalID string) (*domain.JournalEntry, error) {
	return r.findOne(ctx, `SELECT `+journalColumns+` FROM journal_entries
		WHERE scope_id = $1 AND reversal_of_id = $2 AND status <> 'VOID';`, scopeID, journalID)
}

func (r *PgxJournalRepository) findOne(ctx context.Context, query, scopeID, id string) (*domain.JournalEntry, error) {
	rows, _ := r.Pool.Query(ctx, query, scopeID, id)
	m, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.JournalEntry])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("journal entry " + id + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to find journal entry "+id, err)
	}

	linesByJournal, err := r.linesFor(ctx, []string{m.JournalID})
	if err != nil {
		return nil, err
	}

	entry, err := mapping.ToDomainJournalEntry(m, linesByJournal[m.JournalID])
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// linesFor loads the lines of the given entries grouped by journal ID.
func (r *PgxJournalRepository) linesFor(ctx context.Context, journalIDs []string) (map[string][]models.JournalLine, error) {
	grouped := make(map[string][]models.JournalLine, len(journalIDs))
	if len(journalIDs) == 0 {
		return grouped, nil
	}
	rows, _ := r.Pool.Query(ctx,
		`SELECT `+journalLineColumns+` FROM journal_lines WHERE journal_id = ANY($1) ORDER BY journal_id, line_no;`,
		journalIDs,
	)
	lines, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.JournalLine])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query journal lines", err)
	}
	for _, l := range lines {
		grouped[l.JournalID] = append(grouped[l.JournalID], l)
	}
	return grouped, nil
}

// ListJournalEntries retrieves a page of entry headers ordered by date, creation time and ID, newest first.
func (r *PgxJournalRepository) ListJournalEntries(ctx context.Context, scopeID string, filter portsrepo.JournalListFilter) ([]domain.JournalEntry, *string, error) {
	limit := pagination.ClampLimit(filter.Limit)

	var status *string
	if filter.Status != nil {
		s := string(*filter.Status)
		status = &s
	}

	var cursorDate, cursorCreated *time.Time
	var cursorID *string
	if filter.NextToken != nil && *filter.NextToken != "" {
		c, err := pagination.DecodeToken(*filter.NextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		cursorDate, cursorCreated, cursorID = &c.Date, &c.CreatedAt, &c.ID
	}

	query := `
		SELECT ` + journalColumns + `
		FROM journal_entries
		WHERE scope_id = $1
		  AND ($2::text IS NULL OR status = $2)
		  AND ($3::timestamptz IS NULL OR (journal_date, created_at, journal_id) < ($3, $4, $5))
		ORDER BY journal_date DESC, created_at DESC, journal_id DESC
		LIMIT $6;
	`
	// Fetch one extra row to know whether another page exists.
	rows, _ := r.Pool.Query(ctx, query, scopeID, status, cursorDate, cursorCreated, cursorID, limit+1)
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.JournalEntry])
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to list journal entries", err)
	}

	var nextToken *string
	if len(ms) > limit {
		last := ms[limit-1]
		token := pagination.EncodeToken(pagination.Cursor{Date: last.JournalDate, CreatedAt: last.CreatedAt, ID: last.JournalID})
		nextToken = &token
		ms = ms[:limit]
	}

	entries := make([]domain.JournalEntry, 0, len(ms))
	for _, m := range ms {
		entry, err := mapping.ToDomainJournalEntry(m, nil)
		if err != nil {
			return nil, nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nextToken, nil
}

// ListPostedJournalEntries retrieves posted entries with their lines whose date lies in the period.
// Zero bounds are open.
func (r *PgxJournalRepository) ListPostedJournalEntries(ctx context.Context, scopeID string, period domain.DateRange) ([]domain.JournalEntry, error) {
	query := `
		SELECT ` + journalColumns + `
		FROM journal_entries
		WHERE scope_id = $1
		  AND status = 'POSTED'
		  AND ($2::timestamptz IS NULL OR journal_date >= $2)
		  AND ($3::timestamptz IS NULL OR journal_date <= $3)
		ORDER BY journal_date, created_at;
	`
	rows, _ := r.Pool.Query(ctx, query, scopeID, nullableTime(period.From), nullableTime(period.To))
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.JournalEntry])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list posted journal entries", err)
	}

	ids := make([]string, len(ms))
	for i, m := range ms {
		ids[i] = m.JournalID
	}
	linesByJournal, err := r.linesFor(ctx, ids)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.JournalEntry, 0, len(ms))
	for _, m := range ms {
		entry, err := mapping.ToDomainJournalEntry(m, linesByJournal[m.JournalID])
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
