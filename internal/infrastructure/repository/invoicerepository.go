package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"sepapay/internal/domain/invoice"
	"sepapay/internal/infrastructure/persistence/mappers"
	"sepapay/internal/infrastructure/persistence/models"
	"sepapay/internal/shared/biztime"
	"sepapay/internal/shared/db"
	apperrors "sepapay/internal/shared/errors"
)

type InvoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

var _ invoice.InvoiceRepository = (*InvoiceRepository)(nil)

func (r *InvoiceRepository) GetByID(ctx context.Context, id uint) (*invoice.Invoice, error) {
	var model models.InvoiceModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("invoice not found")
		}
		return nil, fmt.Errorf("failed to get invoice: %w", err)
	}

	return mappers.InvoiceToDomain(&model)
}

func (r *InvoiceRepository) Update(ctx context.Context, inv *invoice.Invoice) error {
	model := mappers.InvoiceToModel(inv)

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.InvoiceModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"state":      model.State,
			"updated_at": model.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update invoice: %w", result.Error)
	}

	return nil
}

func (r *InvoiceRepository) PostMessage(ctx context.Context, invoiceID uint, subject, body string) error {
	message := &models.InvoiceMessageModel{
		InvoiceID: invoiceID,
		Subject:   subject,
		Body:      body,
		CreatedAt: biztime.NowUTC(),
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(message).Error; err != nil {
		return fmt.Errorf("failed to post invoice message: %w", err)
	}

	return nil
}
