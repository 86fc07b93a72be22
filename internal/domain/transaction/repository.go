package transaction

import "context"

type TransactionRepository interface {
	Create(ctx context.Context, tx *Transaction) error
	Update(ctx context.Context, tx *Transaction) error
	GetByID(ctx context.Context, id uint) (*Transaction, error)
	GetByReference(ctx context.Context, reference string) (*Transaction, error)
	// ListByReference returns every transaction carrying the reference;
	// the caller decides how to treat zero or multiple matches.
	ListByReference(ctx context.Context, reference string) ([]*Transaction, error)
	// ListPendingWithAcquirerReference returns pending transactions that
	// already hold a gateway charge id, i.e. the ones worth polling the
	// event log for.
	ListPendingWithAcquirerReference(ctx context.Context) ([]*Transaction, error)
}
