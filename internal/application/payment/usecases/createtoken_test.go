package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sepapay/internal/application/payment/gateway"
	"sepapay/internal/domain/acquirer"
	apperrors "sepapay/internal/shared/errors"
)

func testAcquirer(id uint) *acquirer.Acquirer {
	now := time.Now().UTC()
	return acquirer.ReconstructAcquirer(id, acquirer.ProviderStripe, "Test Company",
		"sk_test_123", "pk_test_123", "", false, true, now, now)
}

func acquirerRepoReturning(acq *acquirer.Acquirer) *mockAcquirerRepository {
	return &mockAcquirerRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*acquirer.Acquirer, error) {
			return acq, nil
		},
		GetByProviderFunc: func(ctx context.Context, provider string) (*acquirer.Acquirer, error) {
			return acq, nil
		},
	}
}

func TestCreateTokenUseCase_Execute_Success(t *testing.T) {
	gw := gateway.NewMockGateway()
	gw.SourceResp = &gateway.Source{
		ID:        "src_18cPPvGuXPsxemWqTbDRzZzL",
		Object:    "source",
		Type:      "sepa_debit",
		Status:    "chargeable",
		Owner:     gateway.SourceOwner{Name: "Jenny Rosen", Email: "jenny.rosen@example.com"},
		SEPADebit: gateway.SEPADebit{Last4: "2606"},
	}
	gw.CustomerResp = &gateway.Customer{ID: "cus_AJ78ZaALpqgCdX", Object: "customer"}

	tokenRepo := &mockTokenRepository{}
	uc := NewCreateTokenUseCase(acquirerRepoReturning(testAcquirer(1)), tokenRepo, gw, &mockLogger{})

	tk, err := uc.Execute(context.Background(), CreateTokenCommand{
		AcquirerID:   1,
		PartnerID:    7,
		PartnerName:  "Jenny Rosen",
		PartnerEmail: "jenny.rosen@example.com",
		IBAN:         "FR1420041010050500013M02606",
	})

	require.NoError(t, err)
	require.NotNil(t, tk)
	assert.Equal(t, "cus_AJ78ZaALpqgCdX", tk.AcquirerRef())
	assert.Equal(t, "src_18cPPvGuXPsxemWqTbDRzZzL", tk.Name())
	assert.Equal(t, "XXXXXXXXXXXX2606", tk.ShortName())
	assert.False(t, tk.Verified())

	require.Len(t, gw.SourceCalls, 1)
	src := gw.SourceCalls[0]
	assert.Equal(t, "sepa_debit", src.Type)
	assert.Equal(t, "eur", src.Currency)
	assert.Equal(t, "FR1420041010050500013M02606", src.IBAN)
	assert.Equal(t, "Jenny Rosen", src.OwnerName)
	assert.Equal(t, "email", src.MandateNotificationMethod)

	require.Len(t, gw.CustomerCalls, 1)
	assert.Equal(t, "src_18cPPvGuXPsxemWqTbDRzZzL", gw.CustomerCalls[0].SourceID)
	assert.Equal(t, "jenny.rosen@example.com", gw.CustomerCalls[0].Email)
}

func TestCreateTokenUseCase_Execute_NoEmailSkipsMandateNotification(t *testing.T) {
	gw := gateway.NewMockGateway()
	uc := NewCreateTokenUseCase(acquirerRepoReturning(testAcquirer(1)), &mockTokenRepository{}, gw, &mockLogger{})

	_, err := uc.Execute(context.Background(), CreateTokenCommand{
		AcquirerID:  1,
		PartnerID:   7,
		PartnerName: "Jenny Rosen",
		IBAN:        "DE89370400440532013000",
	})

	require.NoError(t, err)
	require.Len(t, gw.SourceCalls, 1)
	assert.Empty(t, gw.SourceCalls[0].OwnerEmail)
	assert.Empty(t, gw.SourceCalls[0].MandateNotificationMethod)
}

func TestCreateTokenUseCase_Execute_NoIBAN(t *testing.T) {
	gw := gateway.NewMockGateway()
	uc := NewCreateTokenUseCase(acquirerRepoReturning(testAcquirer(1)), &mockTokenRepository{}, gw, &mockLogger{})

	tk, err := uc.Execute(context.Background(), CreateTokenCommand{
		AcquirerID:  1,
		PartnerID:   7,
		PartnerName: "Jenny Rosen",
	})

	require.Error(t, err)
	assert.Nil(t, tk)
	assert.Empty(t, gw.SourceCalls)

	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrorTypeGateway, appErr.Type)
	assert.Equal(t, "No payment token provided", appErr.Message)
}

func TestCreateTokenUseCase_Execute_GatewayRejectsSource(t *testing.T) {
	gw := gateway.NewMockGateway()
	gw.SourceResp = &gateway.Source{
		Err: &gateway.Error{Type: "invalid_request_error", Message: "Invalid IBAN provided."},
	}
	uc := NewCreateTokenUseCase(acquirerRepoReturning(testAcquirer(1)), &mockTokenRepository{}, gw, &mockLogger{})

	tk, err := uc.Execute(context.Background(), CreateTokenCommand{
		AcquirerID:  1,
		PartnerID:   7,
		PartnerName: "Jenny Rosen",
		IBAN:        "not-an-iban",
	})

	require.Error(t, err)
	assert.Nil(t, tk)
	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, "Invalid IBAN provided.", appErr.Message)
	assert.Empty(t, gw.CustomerCalls)
}

func TestCreateTokenUseCase_Execute_UnexpectedSourceObject(t *testing.T) {
	tests := []struct {
		name string
		src  *gateway.Source
	}{
		{
			name: "not a source object",
			src:  &gateway.Source{ID: "tok_123", Object: "token", Type: "sepa_debit"},
		},
		{
			name: "not a sepa debit source",
			src:  &gateway.Source{ID: "src_123", Object: "source", Type: "card"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := gateway.NewMockGateway()
			gw.SourceResp = tt.src
			uc := NewCreateTokenUseCase(acquirerRepoReturning(testAcquirer(1)), &mockTokenRepository{}, gw, &mockLogger{})

			tk, err := uc.Execute(context.Background(), CreateTokenCommand{
				AcquirerID:  1,
				PartnerID:   7,
				PartnerName: "Jenny Rosen",
				IBAN:        "DE89370400440532013000",
			})

			require.Error(t, err)
			assert.Nil(t, tk)
			appErr, ok := err.(*apperrors.AppError)
			require.True(t, ok)
			assert.Equal(t, apperrors.ErrorTypeGateway, appErr.Type)
			assert.Equal(t, "We are unable to process your payment information.", appErr.Message)
			assert.Empty(t, gw.CustomerCalls)
		})
	}
}

func TestCreateTokenUseCase_Execute_CustomerCreationFails(t *testing.T) {
	gw := gateway.NewMockGateway()
	gw.CustomerResp = &gateway.Customer{
		Err: &gateway.Error{Type: "api_error", Message: "Something went wrong on our end."},
	}
	uc := NewCreateTokenUseCase(acquirerRepoReturning(testAcquirer(1)), &mockTokenRepository{}, gw, &mockLogger{})

	tk, err := uc.Execute(context.Background(), CreateTokenCommand{
		AcquirerID:  1,
		PartnerID:   7,
		PartnerName: "Jenny Rosen",
		IBAN:        "DE89370400440532013000",
	})

	require.Error(t, err)
	assert.Nil(t, tk)
	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, "Something went wrong on our end.", appErr.Message)
}
