package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sepapay/internal/domain/transaction"
	vo "sepapay/internal/domain/transaction/valueobjects"
	apperrors "sepapay/internal/shared/errors"
)

func TestFindTransactionUseCase_Execute_Found(t *testing.T) {
	tx := testTransaction(10, "TX400", "19.99", vo.TxStateDraft, uintPtr(3), nil)

	txRepo := &mockTransactionRepository{
		ListByReferenceFunc: func(ctx context.Context, reference string) ([]*transaction.Transaction, error) {
			return []*transaction.Transaction{tx}, nil
		},
	}

	uc := NewFindTransactionUseCase(txRepo, &mockLogger{})

	result, err := uc.Execute(context.Background(), GatewayFeedback{Reference: "TX400"})

	require.NoError(t, err)
	assert.Equal(t, tx, result)
}

func TestFindTransactionUseCase_Execute_MissingReference(t *testing.T) {
	uc := NewFindTransactionUseCase(&mockTransactionRepository{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), GatewayFeedback{})

	require.Error(t, err)
	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)
	assert.Equal(t, "received gateway data with no transaction reference", appErr.Message)
}

func TestFindTransactionUseCase_Execute_MissingReferenceWithGatewayError(t *testing.T) {
	uc := NewFindTransactionUseCase(&mockTransactionRepository{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), GatewayFeedback{ErrorMessage: "The charge was declined."})

	require.Error(t, err)
	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Contains(t, appErr.Message, "gateway error: The charge was declined.")
}

func TestFindTransactionUseCase_Execute_NoMatch(t *testing.T) {
	uc := NewFindTransactionUseCase(&mockTransactionRepository{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), GatewayFeedback{Reference: "TX404"})

	require.Error(t, err)
	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, "no transaction found matching reference TX404", appErr.Message)
}

func TestFindTransactionUseCase_Execute_MultipleMatches(t *testing.T) {
	txRepo := &mockTransactionRepository{
		ListByReferenceFunc: func(ctx context.Context, reference string) ([]*transaction.Transaction, error) {
			return []*transaction.Transaction{
				testTransaction(10, "TX405", "19.99", vo.TxStateDraft, nil, nil),
				testTransaction(11, "TX405", "19.99", vo.TxStateDraft, nil, nil),
			}, nil
		},
	}
	uc := NewFindTransactionUseCase(txRepo, &mockLogger{})

	_, err := uc.Execute(context.Background(), GatewayFeedback{Reference: "TX405"})

	require.Error(t, err)
	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, "2 transactions found matching reference TX405", appErr.Message)
}

func TestFindTransactionUseCase_InvalidParameters(t *testing.T) {
	uc := NewFindTransactionUseCase(&mockTransactionRepository{}, &mockLogger{})
	tx := testTransaction(10, "TX406", "19.99", vo.TxStateDraft, nil, nil)

	assert.Empty(t, uc.InvalidParameters(tx, GatewayFeedback{Reference: "TX406"}))
	assert.Equal(t, []string{"reference"}, uc.InvalidParameters(tx, GatewayFeedback{Reference: "TX999"}))
}
