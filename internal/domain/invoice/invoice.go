package invoice

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"sepapay/internal/shared/biztime"
)

type InvoiceState string

const (
	InvoiceStateDraft  InvoiceState = "draft"
	InvoiceStateOpen   InvoiceState = "open"
	InvoiceStatePaid   InvoiceState = "paid"
	InvoiceStateCancel InvoiceState = "cancel"
)

func (s InvoiceState) IsValid() bool {
	switch s {
	case InvoiceStateDraft, InvoiceStateOpen, InvoiceStatePaid, InvoiceStateCancel:
		return true
	default:
		return false
	}
}

// Invoice is an external record owned by the host accounting module.
// The payment subsystem only reads state and amount_total, appends
// messages, and flips state to paid after a settled charge.
type Invoice struct {
	id          uint
	number      string
	partnerID   uint
	state       InvoiceState
	amountTotal decimal.Decimal

	createdAt time.Time
	updatedAt time.Time
}

func (i *Invoice) IsOpen() bool {
	return i.state == InvoiceStateOpen
}

// MarkPaid settles the invoice after a succeeded charge event.
func (i *Invoice) MarkPaid() error {
	if i.state != InvoiceStateOpen {
		return fmt.Errorf("cannot pay invoice with state %s", i.state)
	}
	i.state = InvoiceStatePaid
	i.updatedAt = biztime.NowUTC()
	return nil
}

func (i *Invoice) ID() uint {
	return i.id
}

func (i *Invoice) Number() string {
	return i.number
}

func (i *Invoice) PartnerID() uint {
	return i.partnerID
}

func (i *Invoice) State() InvoiceState {
	return i.state
}

func (i *Invoice) AmountTotal() decimal.Decimal {
	return i.amountTotal
}

func (i *Invoice) CreatedAt() time.Time {
	return i.createdAt
}

func (i *Invoice) UpdatedAt() time.Time {
	return i.updatedAt
}

func ReconstructInvoice(id uint, number string, partnerID uint, state InvoiceState, amountTotal decimal.Decimal, createdAt, updatedAt time.Time) *Invoice {
	return &Invoice{
		id:          id,
		number:      number,
		partnerID:   partnerID,
		state:       state,
		amountTotal: amountTotal,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}
