package shared

import "context"

// TxManager runs a function inside one database transaction. Repositories
// called with the ctx passed to fn take part in that transaction.
type TxManager interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
