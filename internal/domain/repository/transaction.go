package repository

import "context"

// TransactionManager runs work inside a database transaction so usecases
// stay independent of the driver.
type TransactionManager interface {
	// Execute commits when fn returns nil and rolls back otherwise.
	// Repositories obtained from the factory share the transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to one transaction.
type RepositoryFactory interface {
	TenantRepo() TenantRepository
}
