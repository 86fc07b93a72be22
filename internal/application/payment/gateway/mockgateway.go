package gateway

import (
	"context"
	"fmt"
)

// MockGateway is a configurable in-memory PaymentGateway for tests and
// local development.
type MockGateway struct {
	SourceResp   *Source
	CustomerResp *Customer
	ChargeResp   *Charge
	EventsResp   *EventList

	SourceErr   error
	CustomerErr error
	ChargeErr   error
	EventsErr   error

	SourceCalls   []CreateSourceRequest
	CustomerCalls []CreateCustomerRequest
	ChargeCalls   []CreateChargeRequest
	EventsCalls   []ListEventsRequest
}

func NewMockGateway() *MockGateway {
	return &MockGateway{}
}

var _ PaymentGateway = (*MockGateway)(nil)

func (m *MockGateway) CreateSource(ctx context.Context, creds Credentials, req CreateSourceRequest) (*Source, error) {
	m.SourceCalls = append(m.SourceCalls, req)
	if m.SourceErr != nil {
		return nil, m.SourceErr
	}
	if m.SourceResp != nil {
		return m.SourceResp, nil
	}
	last4 := ""
	if len(req.IBAN) >= 4 {
		last4 = req.IBAN[len(req.IBAN)-4:]
	}
	return &Source{
		ID:        fmt.Sprintf("src_mock_%d", len(m.SourceCalls)),
		Object:    "source",
		Type:      "sepa_debit",
		Status:    "chargeable",
		Owner:     SourceOwner{Name: req.OwnerName, Email: req.OwnerEmail},
		SEPADebit: SEPADebit{Last4: last4},
	}, nil
}

func (m *MockGateway) CreateCustomer(ctx context.Context, creds Credentials, req CreateCustomerRequest) (*Customer, error) {
	m.CustomerCalls = append(m.CustomerCalls, req)
	if m.CustomerErr != nil {
		return nil, m.CustomerErr
	}
	if m.CustomerResp != nil {
		return m.CustomerResp, nil
	}
	return &Customer{
		ID:     fmt.Sprintf("cus_mock_%d", len(m.CustomerCalls)),
		Object: "customer",
	}, nil
}

func (m *MockGateway) CreateCharge(ctx context.Context, creds Credentials, req CreateChargeRequest) (*Charge, error) {
	m.ChargeCalls = append(m.ChargeCalls, req)
	if m.ChargeErr != nil {
		return nil, m.ChargeErr
	}
	if m.ChargeResp != nil {
		return m.ChargeResp, nil
	}
	return &Charge{
		ID:     fmt.Sprintf("ch_mock_%d", len(m.ChargeCalls)),
		Object: "charge",
		Status: "pending",
	}, nil
}

func (m *MockGateway) ListEvents(ctx context.Context, creds Credentials, req ListEventsRequest) (*EventList, error) {
	m.EventsCalls = append(m.EventsCalls, req)
	if m.EventsErr != nil {
		return nil, m.EventsErr
	}
	if m.EventsResp != nil {
		return m.EventsResp, nil
	}
	return &EventList{}, nil
}
