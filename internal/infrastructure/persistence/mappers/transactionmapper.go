package mappers

import (
	"fmt"

	"sepapay/internal/domain/transaction"
	vo "sepapay/internal/domain/transaction/valueobjects"
	"sepapay/internal/infrastructure/persistence/models"
)

func TransactionToModel(t *transaction.Transaction) *models.TransactionModel {
	return &models.TransactionModel{
		ID:                t.ID(),
		Reference:         t.Reference(),
		AcquirerID:        t.AcquirerID(),
		TokenID:           t.TokenID(),
		InvoiceID:         t.InvoiceID(),
		PartnerID:         t.PartnerID(),
		PartnerEmail:      t.PartnerEmail(),
		Amount:            t.Amount().Value(),
		Currency:          t.Amount().Currency(),
		State:             t.State().String(),
		StateMessage:      t.StateMessage(),
		AcquirerReference: t.AcquirerReference(),
		DateValidate:      t.DateValidate(),
		CreatedAt:         t.CreatedAt(),
		UpdatedAt:         t.UpdatedAt(),
	}
}

func TransactionToDomain(model *models.TransactionModel) (*transaction.Transaction, error) {
	state := vo.TxState(model.State)
	if !state.IsValid() {
		return nil, fmt.Errorf("invalid transaction state: %s", model.State)
	}

	return transaction.ReconstructTransaction(transaction.ReconstructParams{
		ID:                model.ID,
		Reference:         model.Reference,
		AcquirerID:        model.AcquirerID,
		TokenID:           model.TokenID,
		InvoiceID:         model.InvoiceID,
		PartnerID:         model.PartnerID,
		PartnerEmail:      model.PartnerEmail,
		Amount:            vo.NewAmount(model.Amount, model.Currency),
		State:             state,
		StateMessage:      model.StateMessage,
		AcquirerReference: model.AcquirerReference,
		DateValidate:      model.DateValidate,
		CreatedAt:         model.CreatedAt,
		UpdatedAt:         model.UpdatedAt,
	}), nil
}
