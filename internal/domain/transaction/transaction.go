package transaction

import (
	"fmt"
	"time"

	vo "sepapay/internal/domain/transaction/valueobjects"
	"sepapay/internal/shared/biztime"
)

// Transaction is the local record of one charge attempt against a
// stored payment token and its outcome.
type Transaction struct {
	id        uint
	reference string

	acquirerID   uint
	tokenID      *uint
	invoiceID    *uint
	partnerID    uint
	partnerEmail string

	amount vo.Amount
	state  vo.TxState
	// stateMessage carries the gateway's error message when state is error.
	stateMessage string
	// acquirerReference is the gateway charge id once a charge was attempted.
	acquirerReference string
	dateValidate      *time.Time

	createdAt time.Time
	updatedAt time.Time
}

func NewTransaction(reference string, acquirerID, partnerID uint, partnerEmail string, amount vo.Amount, tokenID, invoiceID *uint) (*Transaction, error) {
	if reference == "" {
		return nil, fmt.Errorf("reference is required")
	}
	if acquirerID == 0 {
		return nil, fmt.Errorf("acquirer ID is required")
	}
	if partnerID == 0 {
		return nil, fmt.Errorf("partner ID is required")
	}
	if !amount.IsPositive() {
		return nil, fmt.Errorf("amount must be positive")
	}

	now := biztime.NowUTC()

	return &Transaction{
		reference:    reference,
		acquirerID:   acquirerID,
		tokenID:      tokenID,
		invoiceID:    invoiceID,
		partnerID:    partnerID,
		partnerEmail: partnerEmail,
		amount:       amount,
		state:        vo.TxStateDraft,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// IsResolved reports whether the transaction has already left the
// draft/pending/refunding window. A resolved transaction ignores any
// further gateway confirmations.
func (t *Transaction) IsResolved() bool {
	return !t.state.IsResolvable()
}

// MarkPending records a gateway charge waiting for confirmation.
func (t *Transaction) MarkPending(chargeID string) error {
	if t.IsResolved() {
		return fmt.Errorf("cannot mark transaction as pending with state %s", t.state)
	}

	now := biztime.NowUTC()
	t.state = vo.TxStatePending
	t.acquirerReference = chargeID
	t.dateValidate = &now
	t.updatedAt = now

	return nil
}

// MarkError records a gateway-reported failure. chargeID may be empty
// when the gateway response carried no id.
func (t *Transaction) MarkError(message, chargeID string) error {
	if t.IsResolved() {
		return fmt.Errorf("cannot mark transaction as error with state %s", t.state)
	}

	now := biztime.NowUTC()
	t.state = vo.TxStateError
	t.stateMessage = message
	if chargeID != "" {
		t.acquirerReference = chargeID
	}
	t.dateValidate = &now
	t.updatedAt = now

	return nil
}

// MarkDone settles the transaction after the gateway reported the
// charge succeeded.
func (t *Transaction) MarkDone() error {
	if t.state != vo.TxStatePending {
		return fmt.Errorf("cannot mark transaction as done with state %s", t.state)
	}

	now := biztime.NowUTC()
	t.state = vo.TxStateDone
	t.updatedAt = now

	return nil
}

func (t *Transaction) ID() uint {
	return t.id
}

func (t *Transaction) Reference() string {
	return t.reference
}

func (t *Transaction) AcquirerID() uint {
	return t.acquirerID
}

func (t *Transaction) TokenID() *uint {
	return t.tokenID
}

func (t *Transaction) InvoiceID() *uint {
	return t.invoiceID
}

func (t *Transaction) PartnerID() uint {
	return t.partnerID
}

func (t *Transaction) PartnerEmail() string {
	return t.partnerEmail
}

func (t *Transaction) Amount() vo.Amount {
	return t.amount
}

func (t *Transaction) State() vo.TxState {
	return t.state
}

func (t *Transaction) StateMessage() string {
	return t.stateMessage
}

func (t *Transaction) AcquirerReference() string {
	return t.acquirerReference
}

func (t *Transaction) DateValidate() *time.Time {
	return t.dateValidate
}

func (t *Transaction) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Transaction) UpdatedAt() time.Time {
	return t.updatedAt
}

// SetID sets the transaction ID after persistence (used by repository after Create)
func (t *Transaction) SetID(id uint) {
	t.id = id
}

// ReconstructParams carries persisted state for rehydration.
type ReconstructParams struct {
	ID                uint
	Reference         string
	AcquirerID        uint
	TokenID           *uint
	InvoiceID         *uint
	PartnerID         uint
	PartnerEmail      string
	Amount            vo.Amount
	State             vo.TxState
	StateMessage      string
	AcquirerReference string
	DateValidate      *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func ReconstructTransaction(p ReconstructParams) *Transaction {
	return &Transaction{
		id:                p.ID,
		reference:         p.Reference,
		acquirerID:        p.AcquirerID,
		tokenID:           p.TokenID,
		invoiceID:         p.InvoiceID,
		partnerID:         p.PartnerID,
		partnerEmail:      p.PartnerEmail,
		amount:            p.Amount,
		state:             p.State,
		stateMessage:      p.StateMessage,
		acquirerReference: p.AcquirerReference,
		dateValidate:      p.DateValidate,
		createdAt:         p.CreatedAt,
		updatedAt:         p.UpdatedAt,
	}
}
