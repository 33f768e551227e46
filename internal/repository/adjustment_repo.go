package repository

import (
	"context"

	"pos-backend/internal/model"

	"gorm.io/gorm"
)

// AdjustmentRepository persists the append-only stock adjustment log
type AdjustmentRepository interface {
	Create(ctx context.Context, adj *model.InventoryAdjustment) error
	List(ctx context.Context, sku string, limit int) ([]model.InventoryAdjustment, error)
}

type adjustmentRepository struct {
	db *gorm.DB
}

func NewAdjustmentRepository(db *gorm.DB) AdjustmentRepository {
	return &adjustmentRepository{db: db}
}

func (r *adjustmentRepository) Create(ctx context.Context, adj *model.InventoryAdjustment) error {
	return GetDB(ctx, r.db).Create(adj).Error
}

func (r *adjustmentRepository) List(ctx context.Context, sku string, limit int) ([]model.InventoryAdjustment, error) {
	if limit <= 0 {
		limit = 50
	}

	db := GetDB(ctx, r.db).Order("created_at desc").Limit(limit)
	if sku != "" {
		db = db.Where("sku = ?", sku)
	}

	var adjustments []model.InventoryAdjustment
	if err := db.Find(&adjustments).Error; err != nil {
		return nil, err
	}
	return adjustments, nil
}
