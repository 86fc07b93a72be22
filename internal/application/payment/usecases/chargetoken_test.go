package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sepapay/internal/application/payment/gateway"
	"sepapay/internal/domain/token"
	"sepapay/internal/domain/transaction"
	vo "sepapay/internal/domain/transaction/valueobjects"
)

func testToken(id, acquirerID, partnerID uint, verified bool) *token.Token {
	now := time.Now().UTC()
	return token.ReconstructToken(id, acquirerID, partnerID,
		"cus_AJ78ZaALpqgCdX", "src_18cPPvGuXPsxemWqTbDRzZzL", "XXXXXXXXXXXX2606",
		verified, now, now)
}

func testTransaction(id uint, reference string, amount string, state vo.TxState, tokenID, invoiceID *uint) *transaction.Transaction {
	now := time.Now().UTC()
	value, _ := decimal.NewFromString(amount)
	return transaction.ReconstructTransaction(transaction.ReconstructParams{
		ID:           id,
		Reference:    reference,
		AcquirerID:   1,
		TokenID:      tokenID,
		InvoiceID:    invoiceID,
		PartnerID:    7,
		PartnerEmail: "jenny.rosen@example.com",
		Amount:       vo.NewAmount(value, "EUR"),
		State:        state,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
}

func uintPtr(v uint) *uint { return &v }

func TestChargeTokenUseCase_Execute_PendingCharge(t *testing.T) {
	tk := testToken(3, 1, 7, false)
	tx := testTransaction(10, "TX100", "19.99", vo.TxStateDraft, uintPtr(3), nil)

	var updatedTx *transaction.Transaction
	var updatedToken *token.Token
	txRepo := &mockTransactionRepository{
		GetByReferenceFunc: func(ctx context.Context, reference string) (*transaction.Transaction, error) {
			return tx, nil
		},
		UpdateFunc: func(ctx context.Context, t *transaction.Transaction) error {
			updatedTx = t
			return nil
		},
	}
	tokenRepo := &mockTokenRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*token.Token, error) {
			return tk, nil
		},
		UpdateFunc: func(ctx context.Context, t *token.Token) error {
			updatedToken = t
			return nil
		},
	}

	gw := gateway.NewMockGateway()
	gw.ChargeResp = &gateway.Charge{ID: "ch_1APJ5mGuXPsxemWqnlgvzzxV", Object: "charge", Status: "pending"}

	var callbackRef string
	callback := func(ctx context.Context, t *transaction.Transaction) error {
		callbackRef = t.Reference()
		return nil
	}

	runner := &mockTransactionRunner{}
	uc := NewChargeTokenUseCase(acquirerRepoReturning(testAcquirer(1)), tokenRepo, txRepo, gw, runner, callback, &mockLogger{})

	result, accepted, err := uc.Execute(context.Background(), "TX100")

	require.NoError(t, err)
	assert.True(t, accepted)
	assert.Equal(t, vo.TxStatePending, result.State())
	assert.Equal(t, "ch_1APJ5mGuXPsxemWqnlgvzzxV", result.AcquirerReference())
	assert.NotNil(t, result.DateValidate())
	assert.Equal(t, "TX100", callbackRef)
	require.NotNil(t, updatedTx)
	require.NotNil(t, updatedToken)
	assert.True(t, updatedToken.Verified())
	// One unit of work covers the transaction and token writes.
	assert.Equal(t, 1, runner.Calls)

	require.Len(t, gw.ChargeCalls, 1)
	charge := gw.ChargeCalls[0]
	assert.Equal(t, int64(1999), charge.Amount)
	assert.Equal(t, "eur", charge.Currency)
	assert.Equal(t, "cus_AJ78ZaALpqgCdX", charge.CustomerID)
	assert.Equal(t, "src_18cPPvGuXPsxemWqTbDRzZzL", charge.SourceID)
	assert.Equal(t, "TX100", charge.Description)
}

func TestChargeTokenUseCase_Execute_GatewayRefusesCharge(t *testing.T) {
	tk := testToken(3, 1, 7, true)
	tx := testTransaction(10, "TX101", "19.99", vo.TxStateDraft, uintPtr(3), nil)

	txRepo := &mockTransactionRepository{
		GetByReferenceFunc: func(ctx context.Context, reference string) (*transaction.Transaction, error) {
			return tx, nil
		},
	}
	tokenRepo := &mockTokenRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*token.Token, error) {
			return tk, nil
		},
	}

	gw := gateway.NewMockGateway()
	gw.ChargeResp = &gateway.Charge{
		ID:     "ch_failed",
		Object: "charge",
		Status: "failed",
		Err:    &gateway.Error{Type: "card_error", Code: "insufficient_funds", Message: "The account has insufficient funds."},
	}

	uc := NewChargeTokenUseCase(acquirerRepoReturning(testAcquirer(1)), tokenRepo, txRepo, gw, &mockTransactionRunner{}, nil, &mockLogger{})

	result, accepted, err := uc.Execute(context.Background(), "TX101")

	require.NoError(t, err)
	assert.False(t, accepted)
	assert.Equal(t, vo.TxStateError, result.State())
	assert.Equal(t, "The account has insufficient funds.", result.StateMessage())
	assert.Equal(t, "ch_failed", result.AcquirerReference())
}

func TestChargeTokenUseCase_Execute_NoToken(t *testing.T) {
	tx := testTransaction(10, "TX102", "19.99", vo.TxStateDraft, nil, nil)

	txRepo := &mockTransactionRepository{
		GetByReferenceFunc: func(ctx context.Context, reference string) (*transaction.Transaction, error) {
			return tx, nil
		},
	}

	gw := gateway.NewMockGateway()
	uc := NewChargeTokenUseCase(acquirerRepoReturning(testAcquirer(1)), &mockTokenRepository{}, txRepo, gw, &mockTransactionRunner{}, nil, &mockLogger{})

	_, accepted, err := uc.Execute(context.Background(), "TX102")

	require.Error(t, err)
	assert.False(t, accepted)
	assert.Empty(t, gw.ChargeCalls)
}

func TestChargeTokenUseCase_InterpretChargeResponse_ResolvedIsNoOp(t *testing.T) {
	tests := []struct {
		name  string
		state vo.TxState
	}{
		{name: "done", state: vo.TxStateDone},
		{name: "error", state: vo.TxStateError},
		{name: "cancel", state: vo.TxStateCancel},
		{name: "authorized", state: vo.TxStateAuthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := testTransaction(10, "TX103", "19.99", tt.state, uintPtr(3), nil)

			updated := false
			txRepo := &mockTransactionRepository{
				UpdateFunc: func(ctx context.Context, t *transaction.Transaction) error {
					updated = true
					return nil
				},
			}

			uc := NewChargeTokenUseCase(acquirerRepoReturning(testAcquirer(1)), &mockTokenRepository{}, txRepo, gateway.NewMockGateway(), &mockTransactionRunner{}, nil, &mockLogger{})

			ok, err := uc.InterpretChargeResponse(context.Background(), tx, nil,
				&gateway.Charge{ID: "ch_late", Status: "pending"})

			require.NoError(t, err)
			assert.True(t, ok)
			assert.False(t, updated)
			assert.Equal(t, tt.state, tx.State())
		})
	}
}

func TestChargeTokenUseCase_InterpretChargeResponse_UnrecognizedResponse(t *testing.T) {
	tx := testTransaction(10, "TX104", "19.99", vo.TxStateDraft, uintPtr(3), nil)

	uc := NewChargeTokenUseCase(acquirerRepoReturning(testAcquirer(1)), &mockTokenRepository{}, &mockTransactionRepository{}, gateway.NewMockGateway(), &mockTransactionRunner{}, nil, &mockLogger{})

	ok, err := uc.InterpretChargeResponse(context.Background(), tx, nil,
		&gateway.Charge{ID: "ch_weird", Status: "succeeded"})

	require.Error(t, err)
	assert.False(t, ok)
}
