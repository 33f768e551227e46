package database

import (
	"pos-backend/internal/model"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewConnection initializes a new connection pool using GORM
func NewConnection(dsn string, logger *logrus.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	// Auto-migrate core models
	err = db.AutoMigrate(
		&model.User{},
		&model.RefreshToken{},
		&model.InventoryItem{},
		&model.InventoryAdjustment{},
		&model.Product{},
		&model.Recipe{},
		&model.RecipeIngredient{},
		&model.Sale{},
		&model.SaleItem{},
		&model.SaleConsumption{},
		&model.ConsumedIngredient{},
	)
	if err != nil {
		logger.WithError(err).Warn("failed to auto-migrate models")
	}

	return db, nil
}
