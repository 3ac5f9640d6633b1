package services

import (
	portsrepo "github.com/SscSPs/money_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/money_ledger/internal/core/ports/services"
	"github.com/SscSPs/money_ledger/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The scope authorizer comes first since every other service depends on it
	container.Scope = NewScopeService(repos.ScopeMemberRepo)

	container.Account = NewAccountService(
		repos.AccountRepo,
		WithAccountScopeAuthorizer(container.Scope),
		WithAccountStatementCache(repos.StatementCache),
	)
	container.Journal = NewJournalService(
		repos.JournalRepo,
		repos.AccountRepo,
		WithJournalScopeAuthorizer(container.Scope),
		WithJournalStatementCache(repos.StatementCache),
		WithStrictLineSides(cfg.StrictLineSides),
	)
	container.Transaction = NewTransactionService(
		repos.TransactionRepo,
		repos.AccountRepo,
		WithTransactionScopeAuthorizer(container.Scope),
		WithTransactionStatementCache(repos.StatementCache),
	)
	container.Statement = NewStatementService(
		repos.AccountRepo,
		repos.JournalRepo,
		repos.TransactionRepo,
		repos.AssetRepo,
		WithStatementScopeAuthorizer(container.Scope),
		WithStatementCache(repos.StatementCache, cfg.StatementCacheTTL),
	)
	container.Budget = NewBudgetService(
		repos.BudgetRepo,
		repos.TransactionRepo,
		WithBudgetScopeAuthorizer(container.Scope),
	)
	container.Profile = NewProfileService(repos.ProfileRepo)

	return container
}
