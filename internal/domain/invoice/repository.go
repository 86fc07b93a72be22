package invoice

import "context"

type InvoiceRepository interface {
	GetByID(ctx context.Context, id uint) (*Invoice, error)
	Update(ctx context.Context, inv *Invoice) error
	// PostMessage appends a note to the invoice's message log, e.g. the
	// amount-mismatch diagnostic left when confirmation is refused.
	PostMessage(ctx context.Context, invoiceID uint, subject, body string) error
}
