package models

import (
	"time"

	"sepapay/internal/shared/constants"
)

type AcquirerModel struct {
	ID               uint   `gorm:"primaryKey"`
	Provider         string `gorm:"size:32;not null;index"`
	CompanyName      string `gorm:"size:128"`
	SecretKey        string `gorm:"size:128;not null"`
	PublishableKey   string `gorm:"size:128;not null"`
	CheckoutImageURL string `gorm:"size:255"`
	CaptureManually  bool   `gorm:"not null;default:false"`
	Enabled          bool   `gorm:"not null;default:true"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (AcquirerModel) TableName() string {
	return constants.TableAcquirers
}
