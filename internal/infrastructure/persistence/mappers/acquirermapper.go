package mappers

import (
	"sepapay/internal/domain/acquirer"
	"sepapay/internal/infrastructure/persistence/models"
)

func AcquirerToModel(a *acquirer.Acquirer) *models.AcquirerModel {
	return &models.AcquirerModel{
		ID:               a.ID(),
		Provider:         a.Provider(),
		CompanyName:      a.CompanyName(),
		SecretKey:        a.SecretKey(),
		PublishableKey:   a.PublishableKey(),
		CheckoutImageURL: a.CheckoutImageURL(),
		CaptureManually:  a.CaptureManually(),
		Enabled:          a.Enabled(),
		CreatedAt:        a.CreatedAt(),
		UpdatedAt:        a.UpdatedAt(),
	}
}

func AcquirerToDomain(model *models.AcquirerModel) *acquirer.Acquirer {
	return acquirer.ReconstructAcquirer(
		model.ID,
		model.Provider,
		model.CompanyName,
		model.SecretKey,
		model.PublishableKey,
		model.CheckoutImageURL,
		model.CaptureManually,
		model.Enabled,
		model.CreatedAt,
		model.UpdatedAt,
	)
}
