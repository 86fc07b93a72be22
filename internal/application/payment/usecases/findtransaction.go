package usecases

import (
	"context"
	"fmt"

	"sepapay/internal/domain/transaction"
	apperrors "sepapay/internal/shared/errors"
	"sepapay/internal/shared/logger"
)

// GatewayFeedback is the form feedback posted back by the gateway after
// a hosted checkout, reduced to the fields this module consumes.
type GatewayFeedback struct {
	// Reference is the transaction reference round-tripped through the
	// gateway's metadata.
	Reference    string
	Amount       string
	ErrorMessage string
}

// FindTransactionUseCase resolves gateway form feedback back to the
// local transaction it belongs to.
type FindTransactionUseCase struct {
	txRepo transaction.TransactionRepository
	logger logger.Interface
}

func NewFindTransactionUseCase(txRepo transaction.TransactionRepository, logger logger.Interface) *FindTransactionUseCase {
	return &FindTransactionUseCase{txRepo: txRepo, logger: logger}
}

// Execute looks up the transaction named by the feedback's metadata
// reference. A missing reference, no match and multiple matches are all
// validation errors; any gateway error message is folded into the
// missing-reference message.
func (uc *FindTransactionUseCase) Execute(ctx context.Context, feedback GatewayFeedback) (*transaction.Transaction, error) {
	if feedback.Reference == "" {
		msg := "received gateway data with no transaction reference"
		if feedback.ErrorMessage != "" {
			msg = fmt.Sprintf("%s; gateway error: %s", msg, feedback.ErrorMessage)
		}
		uc.logger.Errorw("gateway feedback carries no reference", "gateway_error", feedback.ErrorMessage)
		return nil, apperrors.NewValidationError(msg)
	}

	txs, err := uc.txRepo.ListByReference(ctx, feedback.Reference)
	if err != nil {
		uc.logger.Errorw("failed to search transactions", "error", err, "reference", feedback.Reference)
		return nil, fmt.Errorf("failed to search transactions: %w", err)
	}

	if len(txs) == 0 {
		uc.logger.Errorw("no transaction found for gateway feedback", "reference", feedback.Reference)
		return nil, apperrors.NewValidationError(
			fmt.Sprintf("no transaction found matching reference %s", feedback.Reference))
	}
	if len(txs) > 1 {
		uc.logger.Errorw("multiple transactions found for gateway feedback",
			"reference", feedback.Reference, "count", len(txs))
		return nil, apperrors.NewValidationError(
			fmt.Sprintf("%d transactions found matching reference %s", len(txs), feedback.Reference))
	}

	return txs[0], nil
}

// InvalidParameters compares the feedback against the resolved
// transaction and returns the names of fields that do not match. An
// empty slice means the feedback is consistent.
func (uc *FindTransactionUseCase) InvalidParameters(tx *transaction.Transaction, feedback GatewayFeedback) []string {
	var invalid []string
	if feedback.Reference != tx.Reference() {
		invalid = append(invalid, "reference")
	}
	return invalid
}
