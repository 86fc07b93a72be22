package models

import (
	"time"

	"github.com/shopspring/decimal"

	"sepapay/internal/shared/constants"
)

type InvoiceModel struct {
	ID          uint            `gorm:"primaryKey"`
	Number      string          `gorm:"uniqueIndex;size:64;not null"`
	PartnerID   uint            `gorm:"index;not null"`
	State       string          `gorm:"size:20;not null;index"`
	AmountTotal decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (InvoiceModel) TableName() string {
	return constants.TableInvoices
}
