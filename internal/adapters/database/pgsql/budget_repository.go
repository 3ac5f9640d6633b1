package pgsql

import (
	"context"
	"time"

	"github.com/SscSPs/money_ledger/internal/apperrors"
	"github.com/SscSPs/money_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/money_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/money_ledger/internal/models"
	"github.com/SscSPs/money_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const budgetColumns = `budget_id, scope_id, category, allocated_amount, spent_amount, period_start, period_end,
		created_at, created_by, last_updated_at, last_updated_by`

type PgxBudgetRepository struct {
	BaseRepository
}

func newPgxBudgetRepository(pool *pgxpool.Pool) portsrepo.BudgetRepository {
	return &PgxBudgetRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.BudgetRepository = (*PgxBudgetRepository)(nil)

func (r *PgxBudgetRepository) SaveBudget(ctx context.Context, budget domain.Budget) error {
	m := mapping.ToModelBudget(budget)
	query := `INSERT INTO budgets (` + budgetColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);`
	_, err := r.Pool.Exec(ctx, query,
		m.BudgetID, m.ScopeID, m.Category, m.AllocatedAmount, m.SpentAmount, m.PeriodStart, m.PeriodEnd,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save budget "+m.BudgetID, err)
	}
	return nil
}

func (r *PgxBudgetRepository) ListBudgets(ctx context.Context, scopeID string, activeOn *time.Time) ([]domain.Budget, error) {
	query := `
		SELECT ` + budgetColumns + `
		FROM budgets
		WHERE scope_id = $1
		  AND ($2::timestamptz IS NULL OR (period_start <= $2 AND period_end >= $2))
		ORDER BY period_start, category;
	`
	rows, _ := r.Pool.Query(ctx, query, scopeID, activeOn)
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Budget])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list budgets", err)
	}
	return mapping.ToDomainBudgetSlice(ms)
}
