package usecases

import (
	"context"
	"fmt"

	"sepapay/internal/application/payment/gateway"
	"sepapay/internal/domain/acquirer"
	"sepapay/internal/domain/token"
	"sepapay/internal/domain/transaction"
	apperrors "sepapay/internal/shared/errors"
	"sepapay/internal/shared/logger"
)

// ChargeTokenUseCase debits a stored token for the amount of a draft
// transaction and records the gateway's verdict on the transaction.
type ChargeTokenUseCase struct {
	acquirerRepo acquirer.AcquirerRepository
	tokenRepo    token.TokenRepository
	txRepo       transaction.TransactionRepository
	gateway      gateway.PaymentGateway
	txRunner     TransactionRunner
	callback     PostConfirmCallback
	logger       logger.Interface
}

func NewChargeTokenUseCase(
	acquirerRepo acquirer.AcquirerRepository,
	tokenRepo token.TokenRepository,
	txRepo transaction.TransactionRepository,
	gw gateway.PaymentGateway,
	txRunner TransactionRunner,
	callback PostConfirmCallback,
	logger logger.Interface,
) *ChargeTokenUseCase {
	return &ChargeTokenUseCase{
		acquirerRepo: acquirerRepo,
		tokenRepo:    tokenRepo,
		txRepo:       txRepo,
		gateway:      gw,
		txRunner:     txRunner,
		callback:     callback,
		logger:       logger,
	}
}

// Execute sends the charge for the transaction identified by reference
// and applies the response. The bool result reports whether the charge
// is now pending confirmation (or was already resolved, which counts as
// success since the transaction needs no further action).
func (uc *ChargeTokenUseCase) Execute(ctx context.Context, reference string) (*transaction.Transaction, bool, error) {
	tx, err := uc.txRepo.GetByReference(ctx, reference)
	if err != nil {
		uc.logger.Errorw("failed to get transaction", "error", err, "reference", reference)
		return nil, false, fmt.Errorf("failed to get transaction: %w", err)
	}

	if tx.TokenID() == nil {
		return tx, false, apperrors.NewValidationError("transaction has no payment token", reference)
	}

	tk, err := uc.tokenRepo.GetByID(ctx, *tx.TokenID())
	if err != nil {
		uc.logger.Errorw("failed to get token", "error", err, "token_id", *tx.TokenID())
		return nil, false, fmt.Errorf("failed to get token: %w", err)
	}

	acq, err := uc.acquirerRepo.GetByID(ctx, tx.AcquirerID())
	if err != nil {
		uc.logger.Errorw("failed to get acquirer", "error", err, "acquirer_id", tx.AcquirerID())
		return nil, false, fmt.Errorf("failed to get acquirer: %w", err)
	}

	creds := gateway.Credentials{SecretKey: acq.SecretKey()}

	charge, err := uc.gateway.CreateCharge(ctx, creds, gateway.CreateChargeRequest{
		Amount:      tx.Amount().MinorUnits(),
		Currency:    "eur",
		CustomerID:  tk.AcquirerRef(),
		SourceID:    tk.Name(),
		Description: tx.Reference(),
	})
	if err != nil {
		uc.logger.Errorw("failed to create charge", "error", err, "reference", reference)
		return nil, false, fmt.Errorf("failed to create charge: %w", err)
	}

	ok, err := uc.InterpretChargeResponse(ctx, tx, tk, charge)
	return tx, ok, err
}

// InterpretChargeResponse applies one gateway charge response to the
// transaction. Resolved transactions are left untouched. A pending
// status moves the transaction to pending, verifies the token and runs
// the registered callback; anything else carrying a gateway error moves
// it to error with the gateway's message.
func (uc *ChargeTokenUseCase) InterpretChargeResponse(ctx context.Context, tx *transaction.Transaction, tk *token.Token, charge *gateway.Charge) (bool, error) {
	if tx.IsResolved() {
		uc.logger.Infow("charge response received for a resolved transaction, skipping",
			"reference", tx.Reference(), "state", tx.State())
		return true, nil
	}

	if charge.Status == "pending" {
		if err := tx.MarkPending(charge.ID); err != nil {
			return false, fmt.Errorf("failed to mark transaction pending: %w", err)
		}

		// The transaction update, the callback and the token verification
		// land together or not at all.
		err := uc.txRunner.RunInTransaction(ctx, func(ctx context.Context) error {
			if err := uc.txRepo.Update(ctx, tx); err != nil {
				uc.logger.Errorw("failed to update transaction", "error", err, "reference", tx.Reference())
				return fmt.Errorf("failed to update transaction: %w", err)
			}

			if uc.callback != nil {
				if err := uc.callback(ctx, tx); err != nil {
					uc.logger.Errorw("post-confirm callback failed", "error", err, "reference", tx.Reference())
					return fmt.Errorf("post-confirm callback failed: %w", err)
				}
			}

			if tk != nil && !tk.Verified() {
				tk.MarkVerified()
				if err := uc.tokenRepo.Update(ctx, tk); err != nil {
					uc.logger.Errorw("failed to mark token verified", "error", err, "token_id", tk.ID())
					return fmt.Errorf("failed to mark token verified: %w", err)
				}
			}
			return nil
		})
		if err != nil {
			return false, err
		}

		uc.logger.Infow("charge accepted, waiting for confirmation",
			"reference", tx.Reference(), "charge_id", charge.ID)
		return true, nil
	}

	if charge.Err == nil {
		uc.logger.Errorw("charge response carries neither a pending status nor an error",
			"reference", tx.Reference(), "status", charge.Status)
		return false, apperrors.NewInternalError("unrecognized charge response", fmt.Sprintf("status %q", charge.Status))
	}

	uc.logger.Warnw("charge refused by gateway",
		"reference", tx.Reference(),
		"gateway_message", charge.Err.Message,
		"gateway_code", charge.Err.Code,
	)
	if err := tx.MarkError(charge.Err.Message, charge.ID); err != nil {
		return false, fmt.Errorf("failed to mark transaction error: %w", err)
	}
	if err := uc.txRepo.Update(ctx, tx); err != nil {
		uc.logger.Errorw("failed to update transaction", "error", err, "reference", tx.Reference())
		return false, fmt.Errorf("failed to update transaction: %w", err)
	}

	return false, nil
}
