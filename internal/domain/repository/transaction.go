package repository

import "context"

// RepositoryFactory creates repository instances bound to one transaction.
type RepositoryFactory interface {
	NewLicenseRepository() LicenseRepository
	NewClientRepository() ClientRepository
}

// TransactionManager runs a unit of work inside a single database
// transaction. Used where a license mutation must stay consistent with the
// referenced client record.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}
