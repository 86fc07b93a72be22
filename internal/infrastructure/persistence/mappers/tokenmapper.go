package mappers

import (
	"sepapay/internal/domain/token"
	"sepapay/internal/infrastructure/persistence/models"
)

func TokenToModel(t *token.Token) *models.TokenModel {
	return &models.TokenModel{
		ID:          t.ID(),
		AcquirerID:  t.AcquirerID(),
		PartnerID:   t.PartnerID(),
		AcquirerRef: t.AcquirerRef(),
		Name:        t.Name(),
		ShortName:   t.ShortName(),
		Verified:    t.Verified(),
		CreatedAt:   t.CreatedAt(),
		UpdatedAt:   t.UpdatedAt(),
	}
}

func TokenToDomain(model *models.TokenModel) *token.Token {
	return token.ReconstructToken(
		model.ID,
		model.AcquirerID,
		model.PartnerID,
		model.AcquirerRef,
		model.Name,
		model.ShortName,
		model.Verified,
		model.CreatedAt,
		model.UpdatedAt,
	)
}
