// Package gateway defines the port to the payment gateway: one typed
// request/response pair per remote operation, validated at the
// boundary. Credentials travel with every call instead of living in
// shared mutable state.
package gateway

import "context"

// PaymentGateway is the narrow contract this module consumes from the
// hosted payment API: source creation, customer creation, charge
// creation and event listing. No retries, no local timeout override
// beyond the client's own.
type PaymentGateway interface {
	CreateSource(ctx context.Context, creds Credentials, req CreateSourceRequest) (*Source, error)
	CreateCustomer(ctx context.Context, creds Credentials, req CreateCustomerRequest) (*Customer, error)
	// CreateCharge returns the decoded charge even when the gateway
	// reports a failure in the body; the caller interprets Err/Status.
	CreateCharge(ctx context.Context, creds Credentials, req CreateChargeRequest) (*Charge, error)
	ListEvents(ctx context.Context, creds Credentials, req ListEventsRequest) (*EventList, error)
}

// Credentials carries the per-call API credential, eliminating
// cross-request credential bleed under concurrent handling.
type Credentials struct {
	SecretKey string
}

// Error is the gateway's error object as embedded in responses.
type Error struct {
	Type    string `json:"type"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// CreateSourceRequest asks the gateway to enroll a bank account for
// SEPA debit. Currency is fixed to eur by the callers.
type CreateSourceRequest struct {
	Type                      string
	IBAN                      string
	Currency                  string
	OwnerName                 string
	OwnerEmail                string
	MandateNotificationMethod string
}

type SourceOwner struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type SEPADebit struct {
	Last4 string `json:"last4"`
}

// Source is the gateway-side object representing an enrolled bank
// account.
type Source struct {
	ID        string      `json:"id"`
	Object    string      `json:"object"`
	Type      string      `json:"type"`
	Status    string      `json:"status"`
	Owner     SourceOwner `json:"owner"`
	SEPADebit SEPADebit   `json:"sepa_debit"`
	Err       *Error      `json:"error,omitempty"`
}

type CreateCustomerRequest struct {
	SourceID string
	Email    string
}

type Customer struct {
	ID     string `json:"id"`
	Object string `json:"object"`
	Err    *Error `json:"error,omitempty"`
}

// CreateChargeRequest debits a stored customer/source pair. Amount is
// in the gateway's minor-unit convention.
type CreateChargeRequest struct {
	Amount      int64
	Currency    string
	CustomerID  string
	SourceID    string
	Description string
}

type Charge struct {
	ID     string `json:"id"`
	Object string `json:"object"`
	Status string `json:"status"`
	Err    *Error `json:"error,omitempty"`
}

// ListEventsRequest bounds the event scan. EndingBefore carries the
// newest previously seen event id; empty means a full scan.
type ListEventsRequest struct {
	EndingBefore string
	Limit        int
}

type EventObject struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type EventData struct {
	Object EventObject `json:"object"`
}

type Event struct {
	ID   string    `json:"id"`
	Type string    `json:"type"`
	Data EventData `json:"data"`
}

// EventList is returned newest first. A gateway-side refusal (bad
// credential, malformed cursor) arrives as Err with an empty Data.
type EventList struct {
	Data    []Event `json:"data"`
	HasMore bool    `json:"has_more"`
	Err     *Error  `json:"error,omitempty"`
}
