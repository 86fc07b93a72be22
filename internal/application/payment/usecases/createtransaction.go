package usecases

import (
	"context"
	"fmt"

	"sepapay/internal/domain/shared/services"
	"sepapay/internal/domain/transaction"
	vo "sepapay/internal/domain/transaction/valueobjects"
	"sepapay/internal/shared/logger"
)

type CreateTransactionCommand struct {
	Reference    string
	AcquirerID   uint
	PartnerID    uint
	PartnerEmail string
	Amount       string
	Currency     string
	TokenID      *uint
	InvoiceID    *uint
}

// CreateTransactionUseCase records a draft charge attempt. It does not
// talk to the gateway; charging is a separate step.
type CreateTransactionUseCase struct {
	txRepo transaction.TransactionRepository
	refGen services.ReferenceGenerator
	logger logger.Interface
}

func NewCreateTransactionUseCase(
	txRepo transaction.TransactionRepository,
	refGen services.ReferenceGenerator,
	logger logger.Interface,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		txRepo: txRepo,
		refGen: refGen,
		logger: logger,
	}
}

func (uc *CreateTransactionUseCase) Execute(ctx context.Context, cmd CreateTransactionCommand) (*transaction.Transaction, error) {
	amount, err := vo.NewAmountFromString(cmd.Amount, cmd.Currency)
	if err != nil {
		return nil, fmt.Errorf("invalid amount: %w", err)
	}

	reference := cmd.Reference
	if reference == "" {
		reference = uc.refGen.Generate("TX")
	}

	tx, err := transaction.NewTransaction(reference, cmd.AcquirerID, cmd.PartnerID, cmd.PartnerEmail, amount, cmd.TokenID, cmd.InvoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to build transaction: %w", err)
	}

	if err := uc.txRepo.Create(ctx, tx); err != nil {
		uc.logger.Errorw("failed to save transaction", "error", err, "reference", reference)
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	uc.logger.Infow("transaction created",
		"transaction_id", tx.ID(),
		"reference", tx.Reference(),
		"amount", tx.Amount().String(),
	)

	return tx, nil
}
