package usecases

import (
	"context"

	"sepapay/internal/domain/acquirer"
	"sepapay/internal/domain/invoice"
	"sepapay/internal/domain/token"
	"sepapay/internal/domain/transaction"
	"sepapay/internal/shared/logger"
)

type mockAcquirerRepository struct {
	CreateFunc        func(ctx context.Context, acq *acquirer.Acquirer) error
	UpdateFunc        func(ctx context.Context, acq *acquirer.Acquirer) error
	GetByIDFunc       func(ctx context.Context, id uint) (*acquirer.Acquirer, error)
	GetByProviderFunc func(ctx context.Context, provider string) (*acquirer.Acquirer, error)
}

func (m *mockAcquirerRepository) Create(ctx context.Context, acq *acquirer.Acquirer) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, acq)
	}
	return nil
}

func (m *mockAcquirerRepository) Update(ctx context.Context, acq *acquirer.Acquirer) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, acq)
	}
	return nil
}

func (m *mockAcquirerRepository) GetByID(ctx context.Context, id uint) (*acquirer.Acquirer, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockAcquirerRepository) GetByProvider(ctx context.Context, provider string) (*acquirer.Acquirer, error) {
	if m.GetByProviderFunc != nil {
		return m.GetByProviderFunc(ctx, provider)
	}
	return nil, nil
}

type mockTokenRepository struct {
	CreateFunc         func(ctx context.Context, tk *token.Token) error
	UpdateFunc         func(ctx context.Context, tk *token.Token) error
	GetByIDFunc        func(ctx context.Context, id uint) (*token.Token, error)
	GetByPartnerIDFunc func(ctx context.Context, partnerID uint) ([]*token.Token, error)
}

func (m *mockTokenRepository) Create(ctx context.Context, tk *token.Token) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tk)
	}
	return nil
}

func (m *mockTokenRepository) Update(ctx context.Context, tk *token.Token) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, tk)
	}
	return nil
}

func (m *mockTokenRepository) GetByID(ctx context.Context, id uint) (*token.Token, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTokenRepository) GetByPartnerID(ctx context.Context, partnerID uint) ([]*token.Token, error) {
	if m.GetByPartnerIDFunc != nil {
		return m.GetByPartnerIDFunc(ctx, partnerID)
	}
	return nil, nil
}

type mockTransactionRepository struct {
	CreateFunc                           func(ctx context.Context, tx *transaction.Transaction) error
	UpdateFunc                           func(ctx context.Context, tx *transaction.Transaction) error
	GetByIDFunc                          func(ctx context.Context, id uint) (*transaction.Transaction, error)
	GetByReferenceFunc                   func(ctx context.Context, reference string) (*transaction.Transaction, error)
	ListByReferenceFunc                  func(ctx context.Context, reference string) ([]*transaction.Transaction, error)
	ListPendingWithAcquirerReferenceFunc func(ctx context.Context) ([]*transaction.Transaction, error)
}

func (m *mockTransactionRepository) Create(ctx context.Context, tx *transaction.Transaction) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx)
	}
	return nil
}

func (m *mockTransactionRepository) Update(ctx context.Context, tx *transaction.Transaction) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, tx)
	}
	return nil
}

func (m *mockTransactionRepository) GetByID(ctx context.Context, id uint) (*transaction.Transaction, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTransactionRepository) GetByReference(ctx context.Context, reference string) (*transaction.Transaction, error) {
	if m.GetByReferenceFunc != nil {
		return m.GetByReferenceFunc(ctx, reference)
	}
	return nil, nil
}

func (m *mockTransactionRepository) ListByReference(ctx context.Context, reference string) ([]*transaction.Transaction, error) {
	if m.ListByReferenceFunc != nil {
		return m.ListByReferenceFunc(ctx, reference)
	}
	return nil, nil
}

func (m *mockTransactionRepository) ListPendingWithAcquirerReference(ctx context.Context) ([]*transaction.Transaction, error) {
	if m.ListPendingWithAcquirerReferenceFunc != nil {
		return m.ListPendingWithAcquirerReferenceFunc(ctx)
	}
	return nil, nil
}

type mockInvoiceRepository struct {
	GetByIDFunc     func(ctx context.Context, id uint) (*invoice.Invoice, error)
	UpdateFunc      func(ctx context.Context, inv *invoice.Invoice) error
	PostMessageFunc func(ctx context.Context, invoiceID uint, subject, body string) error
}

func (m *mockInvoiceRepository) GetByID(ctx context.Context, id uint) (*invoice.Invoice, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockInvoiceRepository) Update(ctx context.Context, inv *invoice.Invoice) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, inv)
	}
	return nil
}

func (m *mockInvoiceRepository) PostMessage(ctx context.Context, invoiceID uint, subject, body string) error {
	if m.PostMessageFunc != nil {
		return m.PostMessageFunc(ctx, invoiceID, subject, body)
	}
	return nil
}

type mockCursorStore struct {
	GetCursorFunc func(ctx context.Context) (string, error)
	SetCursorFunc func(ctx context.Context, eventID string) error

	SetCalls []string
}

func (m *mockCursorStore) GetCursor(ctx context.Context) (string, error) {
	if m.GetCursorFunc != nil {
		return m.GetCursorFunc(ctx)
	}
	return "", nil
}

func (m *mockCursorStore) SetCursor(ctx context.Context, eventID string) error {
	m.SetCalls = append(m.SetCalls, eventID)
	if m.SetCursorFunc != nil {
		return m.SetCursorFunc(ctx, eventID)
	}
	return nil
}

type mockTransactionRunner struct {
	Calls int
}

func (m *mockTransactionRunner) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.Calls++
	return fn(ctx)
}

type mockChargeNotifier struct {
	FailedCalls  []string
	ExpiredCalls []string
}

func (m *mockChargeNotifier) NotifyChargeFailed(ctx context.Context, tx *transaction.Transaction) error {
	m.FailedCalls = append(m.FailedCalls, tx.Reference())
	return nil
}

func (m *mockChargeNotifier) NotifyChargeExpired(ctx context.Context, tx *transaction.Transaction) error {
	m.ExpiredCalls = append(m.ExpiredCalls, tx.Reference())
	return nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) Fatal(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Fatalw(msg string, keysAndValues ...interface{}) {}

type fixedReferenceGenerator struct {
	reference string
}

func (g *fixedReferenceGenerator) Generate(prefix string) string {
	return g.reference
}
