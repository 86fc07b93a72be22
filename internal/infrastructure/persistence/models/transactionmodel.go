package models

import (
	"time"

	"github.com/shopspring/decimal"

	"sepapay/internal/shared/constants"
)

type TransactionModel struct {
	ID                uint            `gorm:"primaryKey"`
	Reference         string          `gorm:"uniqueIndex;size:64;not null"`
	AcquirerID        uint            `gorm:"index;not null"`
	TokenID           *uint           `gorm:"index"`
	InvoiceID         *uint           `gorm:"index"`
	PartnerID         uint            `gorm:"index;not null"`
	PartnerEmail      string          `gorm:"size:128"`
	Amount            decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Currency          string          `gorm:"size:10;not null;default:'EUR'"`
	State             string          `gorm:"size:20;not null;index"`
	StateMessage      string          `gorm:"type:text"`
	AcquirerReference string          `gorm:"size:128;index"`
	DateValidate      *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (TransactionModel) TableName() string {
	return constants.TableTransactions
}
