package migration

import (
	"fmt"

	"gorm.io/gorm"

	"sepapay/internal/infrastructure/persistence/models"
	"sepapay/internal/shared/logger"
)

// GormAutoMigrateStrategy migrates the schema straight from the model
// struct definitions. Development only.
type GormAutoMigrateStrategy struct {
	logger logger.Interface
}

func NewGormAutoMigrateStrategy() Strategy {
	return &GormAutoMigrateStrategy{
		logger: logger.NewLogger().With("component", "migration.gorm-auto-migrate"),
	}
}

func (s *GormAutoMigrateStrategy) Migrate(db *gorm.DB, models ...interface{}) error {
	if len(models) == 0 {
		models = AutoMigrateModels()
	}

	s.logger.Infow("starting gorm auto migration", "models_count", len(models))

	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("auto migration failed: %w", err)
	}

	s.logger.Infow("gorm auto migration completed")
	return nil
}

func (s *GormAutoMigrateStrategy) GetName() string {
	return "gorm_auto_migrate"
}

// AutoMigrateModels returns every persistence model the schema carries.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.AcquirerModel{},
		&models.TokenModel{},
		&models.TransactionModel{},
		&models.InvoiceModel{},
		&models.InvoiceMessageModel{},
	}
}
