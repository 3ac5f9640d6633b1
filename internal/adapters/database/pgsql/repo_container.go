package pgsql

import (
	portsrepo "github.com/SscSPs/money_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider creates a new repository provider with all repositories initialized.
// The statement cache is wired separately because it does not live in Postgres.
func NewRepositoryProvider(dbPool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	accountRepo := newPgxAccountRepository(dbPool)
	return &portsrepo.RepositoryProvider{
		AccountRepo:     accountRepo,
		JournalRepo:     newPgxJournalRepository(dbPool, accountRepo),
		TransactionRepo: newPgxTransactionRepository(dbPool),
		AssetRepo:       newPgxAssetRepository(dbPool),
		BudgetRepo:      newPgxBudgetRepository(dbPool),
		ProfileRepo:     newPgxProfileRepository(dbPool),
		ScopeMemberRepo: newPgxScopeMemberRepository(dbPool),
	}
}
