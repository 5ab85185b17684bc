package repositories

import "context"

// TransactionManager defines the ability to run a function within a database
// transaction. Repositories that need multi-statement atomicity (tenant
// provisioning) expose this alongside their facade.
type TransactionManager interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
