package acquirer

import "context"

type AcquirerRepository interface {
	Create(ctx context.Context, acq *Acquirer) error
	Update(ctx context.Context, acq *Acquirer) error
	GetByID(ctx context.Context, id uint) (*Acquirer, error)
	GetByProvider(ctx context.Context, provider string) (*Acquirer, error)
}
