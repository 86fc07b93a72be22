package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"sepapay/internal/domain/acquirer"
	"sepapay/internal/infrastructure/persistence/mappers"
	"sepapay/internal/infrastructure/persistence/models"
	"sepapay/internal/shared/db"
	apperrors "sepapay/internal/shared/errors"
)

type AcquirerRepository struct {
	db *gorm.DB
}

func NewAcquirerRepository(db *gorm.DB) *AcquirerRepository {
	return &AcquirerRepository{db: db}
}

var _ acquirer.AcquirerRepository = (*AcquirerRepository)(nil)

func (r *AcquirerRepository) Create(ctx context.Context, acq *acquirer.Acquirer) error {
	model := mappers.AcquirerToModel(acq)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create acquirer: %w", err)
	}

	// Write back the auto-generated ID to the domain object
	acq.SetID(model.ID)

	return nil
}

func (r *AcquirerRepository) Update(ctx context.Context, acq *acquirer.Acquirer) error {
	model := mappers.AcquirerToModel(acq)

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.AcquirerModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"company_name":       model.CompanyName,
			"secret_key":         model.SecretKey,
			"publishable_key":    model.PublishableKey,
			"checkout_image_url": model.CheckoutImageURL,
			"capture_manually":   model.CaptureManually,
			"enabled":            model.Enabled,
			"updated_at":         model.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update acquirer: %w", result.Error)
	}

	return nil
}

func (r *AcquirerRepository) GetByID(ctx context.Context, id uint) (*acquirer.Acquirer, error) {
	var model models.AcquirerModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("acquirer not found")
		}
		return nil, fmt.Errorf("failed to get acquirer: %w", err)
	}

	return mappers.AcquirerToDomain(&model), nil
}

func (r *AcquirerRepository) GetByProvider(ctx context.Context, provider string) (*acquirer.Acquirer, error) {
	var model models.AcquirerModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("provider = ? AND enabled = ?", provider, true).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("acquirer not found")
		}
		return nil, fmt.Errorf("failed to get acquirer by provider: %w", err)
	}

	return mappers.AcquirerToDomain(&model), nil
}
