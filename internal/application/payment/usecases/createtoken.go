package usecases

import (
	"context"
	"fmt"

	"sepapay/internal/application/payment/gateway"
	"sepapay/internal/domain/acquirer"
	"sepapay/internal/domain/token"
	apperrors "sepapay/internal/shared/errors"
	"sepapay/internal/shared/logger"
)

// unprocessableSourceMessage is the caller-facing message for source
// objects the module cannot turn into a token; the internal detail goes
// to the log only.
const unprocessableSourceMessage = "We are unable to process your payment information."

type CreateTokenCommand struct {
	AcquirerID   uint
	PartnerID    uint
	PartnerName  string
	PartnerEmail string
	IBAN         string
}

type CreateTokenUseCase struct {
	acquirerRepo acquirer.AcquirerRepository
	tokenRepo    token.TokenRepository
	gateway      gateway.PaymentGateway
	logger       logger.Interface
}

func NewCreateTokenUseCase(
	acquirerRepo acquirer.AcquirerRepository,
	tokenRepo token.TokenRepository,
	gw gateway.PaymentGateway,
	logger logger.Interface,
) *CreateTokenUseCase {
	return &CreateTokenUseCase{
		acquirerRepo: acquirerRepo,
		tokenRepo:    tokenRepo,
		gateway:      gw,
		logger:       logger,
	}
}

// Execute enrolls an IBAN at the gateway as a SEPA-debit source, wraps
// it in a gateway customer and persists the local token referencing
// that customer. Each remote call is a single round-trip with no retry.
func (uc *CreateTokenUseCase) Execute(ctx context.Context, cmd CreateTokenCommand) (*token.Token, error) {
	acq, err := uc.acquirerRepo.GetByID(ctx, cmd.AcquirerID)
	if err != nil {
		uc.logger.Errorw("failed to get acquirer", "error", err, "acquirer_id", cmd.AcquirerID)
		return nil, fmt.Errorf("failed to get acquirer: %w", err)
	}

	creds := gateway.Credentials{SecretKey: acq.SecretKey()}

	var src *gateway.Source
	if cmd.IBAN != "" {
		req := gateway.CreateSourceRequest{
			Type:      "sepa_debit",
			IBAN:      cmd.IBAN,
			Currency:  "eur",
			OwnerName: cmd.PartnerName,
		}
		if cmd.PartnerEmail != "" {
			req.OwnerEmail = cmd.PartnerEmail
			req.MandateNotificationMethod = "email"
		}

		src, err = uc.gateway.CreateSource(ctx, creds, req)
		if err != nil {
			uc.logger.Errorw("failed to create source", "error", err, "partner_id", cmd.PartnerID)
			return nil, fmt.Errorf("failed to create source: %w", err)
		}
	}
	// Without an IBAN no source is ever requested, so the check below
	// always fails. Kept as-is: the upstream system behaves the same
	// way and callers are expected to have validated the IBAN field.

	if src == nil {
		uc.logger.Errorw("no payment source obtained", "partner_id", cmd.PartnerID)
		return nil, apperrors.NewGatewayError("No payment token provided")
	}

	if src.Err != nil {
		uc.logger.Errorw("source creation returned an error", "gateway_message", src.Err.Message, "gateway_code", src.Err.Code)
		return nil, apperrors.NewGatewayError(src.Err.Message)
	}
	if src.Object != "source" {
		uc.logger.Errorw("cannot create a customer for this object type", "object", src.Object)
		return nil, apperrors.NewGatewayError(unprocessableSourceMessage, fmt.Sprintf("unexpected object type %q", src.Object))
	}
	if src.Type != "sepa_debit" {
		uc.logger.Errorw("cannot create a customer for this source type", "type", src.Type)
		return nil, apperrors.NewGatewayError(unprocessableSourceMessage, fmt.Sprintf("unexpected source type %q", src.Type))
	}

	customer, err := uc.gateway.CreateCustomer(ctx, creds, gateway.CreateCustomerRequest{
		SourceID: src.ID,
		Email:    src.Owner.Email,
	})
	if err != nil {
		uc.logger.Errorw("failed to create customer", "error", err, "source_id", src.ID)
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}
	if customer.Err != nil {
		uc.logger.Errorw("customer creation returned an error", "gateway_message", customer.Err.Message, "gateway_code", customer.Err.Code)
		return nil, apperrors.NewGatewayError(customer.Err.Message)
	}

	shortName := "XXXXXXXXXXXX" + src.SEPADebit.Last4

	tk, err := token.NewToken(acq.ID(), cmd.PartnerID, customer.ID, src.ID, shortName)
	if err != nil {
		return nil, fmt.Errorf("failed to build token: %w", err)
	}

	if err := uc.tokenRepo.Create(ctx, tk); err != nil {
		uc.logger.Errorw("failed to save token", "error", err)
		return nil, fmt.Errorf("failed to save token: %w", err)
	}

	uc.logger.Infow("payment token created",
		"token_id", tk.ID(),
		"partner_id", cmd.PartnerID,
		"acquirer_ref", tk.AcquirerRef(),
		"short_name", tk.ShortName(),
	)

	return tk, nil
}
