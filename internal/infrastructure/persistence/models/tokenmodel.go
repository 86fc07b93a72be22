package models

import (
	"time"

	"sepapay/internal/shared/constants"
)

type TokenModel struct {
	ID          uint   `gorm:"primaryKey"`
	AcquirerID  uint   `gorm:"index;not null"`
	PartnerID   uint   `gorm:"index;not null"`
	AcquirerRef string `gorm:"size:128;not null"`
	Name        string `gorm:"size:128;not null"`
	ShortName   string `gorm:"size:64"`
	Verified    bool   `gorm:"not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (TokenModel) TableName() string {
	return constants.TableTokens
}
