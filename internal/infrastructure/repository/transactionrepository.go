package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"sepapay/internal/domain/transaction"
	vo "sepapay/internal/domain/transaction/valueobjects"
	"sepapay/internal/infrastructure/persistence/mappers"
	"sepapay/internal/infrastructure/persistence/models"
	"sepapay/internal/shared/db"
	apperrors "sepapay/internal/shared/errors"
)

type TransactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

var _ transaction.TransactionRepository = (*TransactionRepository)(nil)

func (r *TransactionRepository) Create(ctx context.Context, tx *transaction.Transaction) error {
	model := mappers.TransactionToModel(tx)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}

	// Write back the auto-generated ID to the domain object
	tx.SetID(model.ID)

	return nil
}

func (r *TransactionRepository) Update(ctx context.Context, tx *transaction.Transaction) error {
	model := mappers.TransactionToModel(tx)

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.TransactionModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"state":              model.State,
			"state_message":      model.StateMessage,
			"acquirer_reference": model.AcquirerReference,
			"date_validate":      model.DateValidate,
			"updated_at":         model.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update transaction: %w", result.Error)
	}

	// Note: RowsAffected may be 0 when updated values are identical to existing values.

	return nil
}

func (r *TransactionRepository) GetByID(ctx context.Context, id uint) (*transaction.Transaction, error) {
	var model models.TransactionModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("transaction not found")
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	return mappers.TransactionToDomain(&model)
}

func (r *TransactionRepository) GetByReference(ctx context.Context, reference string) (*transaction.Transaction, error) {
	var model models.TransactionModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("reference = ?", reference).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("transaction not found")
		}
		return nil, fmt.Errorf("failed to get transaction by reference: %w", err)
	}

	return mappers.TransactionToDomain(&model)
}

func (r *TransactionRepository) ListByReference(ctx context.Context, reference string) ([]*transaction.Transaction, error) {
	var txModels []models.TransactionModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("reference = ?", reference).
		Find(&txModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list transactions by reference: %w", err)
	}

	txs := make([]*transaction.Transaction, len(txModels))
	for i, model := range txModels {
		tx, err := mappers.TransactionToDomain(&model)
		if err != nil {
			return nil, err
		}
		txs[i] = tx
	}

	return txs, nil
}

func (r *TransactionRepository) ListPendingWithAcquirerReference(ctx context.Context) ([]*transaction.Transaction, error) {
	var txModels []models.TransactionModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("state = ? AND acquirer_reference <> ''", vo.TxStatePending.String()).
		Find(&txModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list pending transactions: %w", err)
	}

	txs := make([]*transaction.Transaction, len(txModels))
	for i, model := range txModels {
		tx, err := mappers.TransactionToDomain(&model)
		if err != nil {
			return nil, err
		}
		txs[i] = tx
	}

	return txs, nil
}
