package repository

import "context"

// TransactionManager scopes a unit of work to one database transaction.
type TransactionManager interface {
	// Execute commits when fn returns nil and rolls back otherwise. The
	// factory handed to fn yields repositories bound to the open transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out transaction-bound repositories.
type RepositoryFactory interface {
	UserRepo() UserRepository
	ProjectRepo() ProjectRepository
}
