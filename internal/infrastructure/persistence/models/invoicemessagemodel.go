package models

import (
	"time"

	"sepapay/internal/shared/constants"
)

// InvoiceMessageModel is one appended note on an invoice's message log.
type InvoiceMessageModel struct {
	ID        uint   `gorm:"primaryKey"`
	InvoiceID uint   `gorm:"index;not null"`
	Subject   string `gorm:"size:128"`
	Body      string `gorm:"type:text"`
	CreatedAt time.Time
}

func (InvoiceMessageModel) TableName() string {
	return constants.TableInvoiceMessages
}
