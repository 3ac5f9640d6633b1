package pgsql

import (
	"context"

	"github.com/SscSPs/money_ledger/internal/apperrors"
	"github.com/SscSPs/money_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/money_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/money_ledger/internal/models"
	"github.com/SscSPs/money_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const transactionColumns = `transaction_id, scope_id, account_id, category, description, amount, transaction_type,
		status, transaction_date, created_at, created_by, last_updated_at, last_updated_by`

type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepository {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionRepository = (*PgxTransactionRepository)(nil)

func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	query := `INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);`
	_, err := r.Pool.Exec(ctx, query,
		m.TransactionID, m.ScopeID, m.AccountID, m.Category, m.Description, m.Amount, m.TransactionType,
		m.Status, m.TransactionDate, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save transaction "+m.TransactionID, err)
	}
	return nil
}

// ListTransactions returns the scope's transactions ordered by date, optionally limited to a period.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, scopeID string, period *domain.DateRange) ([]domain.Transaction, error) {
	var from, to any
	if period != nil {
		from, to = nullableTime(period.From), nullableTime(period.To)
	}
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE scope_id = $1
		  AND ($2::timestamptz IS NULL OR transaction_date >= $2)
		  AND ($3::timestamptz IS NULL OR transaction_date <= $3)
		ORDER BY transaction_date, created_at;
	`
	rows, _ := r.Pool.Query(ctx, query, scopeID, from, to)
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Transaction])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list transactions", err)
	}
	return mapping.ToDomainTransactionSlice(ms)
}
