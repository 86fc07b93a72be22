package mappers

import (
	"fmt"

	"sepapay/internal/domain/invoice"
	"sepapay/internal/infrastructure/persistence/models"
)

func InvoiceToModel(i *invoice.Invoice) *models.InvoiceModel {
	return &models.InvoiceModel{
		ID:          i.ID(),
		Number:      i.Number(),
		PartnerID:   i.PartnerID(),
		State:       string(i.State()),
		AmountTotal: i.AmountTotal(),
		CreatedAt:   i.CreatedAt(),
		UpdatedAt:   i.UpdatedAt(),
	}
}

func InvoiceToDomain(model *models.InvoiceModel) (*invoice.Invoice, error) {
	state := invoice.InvoiceState(model.State)
	if !state.IsValid() {
		return nil, fmt.Errorf("invalid invoice state: %s", model.State)
	}

	return invoice.ReconstructInvoice(
		model.ID,
		model.Number,
		model.PartnerID,
		state,
		model.AmountTotal,
		model.CreatedAt,
		model.UpdatedAt,
	), nil
}
