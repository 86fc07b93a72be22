package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"sepapay/internal/domain/token"
	"sepapay/internal/infrastructure/persistence/mappers"
	"sepapay/internal/infrastructure/persistence/models"
	"sepapay/internal/shared/db"
	apperrors "sepapay/internal/shared/errors"
)

type TokenRepository struct {
	db *gorm.DB
}

func NewTokenRepository(db *gorm.DB) *TokenRepository {
	return &TokenRepository{db: db}
}

var _ token.TokenRepository = (*TokenRepository)(nil)

func (r *TokenRepository) Create(ctx context.Context, tk *token.Token) error {
	model := mappers.TokenToModel(tk)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create token: %w", err)
	}

	// Write back the auto-generated ID to the domain object
	tk.SetID(model.ID)

	return nil
}

func (r *TokenRepository) Update(ctx context.Context, tk *token.Token) error {
	model := mappers.TokenToModel(tk)

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.TokenModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"verified":   model.Verified,
			"short_name": model.ShortName,
			"updated_at": model.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update token: %w", result.Error)
	}

	return nil
}

func (r *TokenRepository) GetByID(ctx context.Context, id uint) (*token.Token, error) {
	var model models.TokenModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("token not found")
		}
		return nil, fmt.Errorf("failed to get token: %w", err)
	}

	return mappers.TokenToDomain(&model), nil
}

func (r *TokenRepository) GetByPartnerID(ctx context.Context, partnerID uint) ([]*token.Token, error) {
	var tokenModels []models.TokenModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("partner_id = ?", partnerID).
		Order("created_at DESC").
		Find(&tokenModels).Error; err != nil {
		return nil, fmt.Errorf("failed to get tokens by partner_id: %w", err)
	}

	tokens := make([]*token.Token, len(tokenModels))
	for i, model := range tokenModels {
		tokens[i] = mappers.TokenToDomain(&model)
	}

	return tokens, nil
}
