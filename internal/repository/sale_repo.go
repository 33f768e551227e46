package repository

import (
	"context"
	"time"

	"pos-backend/internal/model"

	"gorm.io/gorm"
)

// SaleRepository persists completed sales. Sales are written once and never
// mutated; there is deliberately no update or delete operation.
type SaleRepository interface {
	// Create writes the sale together with its items and consumption records.
	Create(ctx context.Context, sale *model.Sale) error
	FindBySaleID(ctx context.Context, saleID string) (*model.Sale, error)
	ListSince(ctx context.Context, since time.Time, limit int) ([]model.Sale, error)
	ListByDateRange(ctx context.Context, start, end time.Time) ([]model.Sale, error)
	ListRecent(ctx context.Context, limit int) ([]model.Sale, error)
}

type saleRepository struct {
	db *gorm.DB
}

func NewSaleRepository(db *gorm.DB) SaleRepository {
	return &saleRepository{db: db}
}

func (r *saleRepository) Create(ctx context.Context, sale *model.Sale) error {
	return GetDB(ctx, r.db).Create(sale).Error
}

func (r *saleRepository) preload(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position asc") }).
		Preload("InventoryConsumed").
		Preload("InventoryConsumed.Ingredients")
}

func (r *saleRepository) FindBySaleID(ctx context.Context, saleID string) (*model.Sale, error) {
	var sale model.Sale
	if err := r.preload(GetDB(ctx, r.db)).Where("sale_id = ?", saleID).First(&sale).Error; err != nil {
		return nil, err
	}
	return &sale, nil
}

func (r *saleRepository) ListSince(ctx context.Context, since time.Time, limit int) ([]model.Sale, error) {
	var sales []model.Sale
	db := r.preload(GetDB(ctx, r.db)).
		Where("created_at >= ?", since).
		Order("created_at desc")
	if limit > 0 {
		db = db.Limit(limit)
	}
	if err := db.Find(&sales).Error; err != nil {
		return nil, err
	}
	return sales, nil
}

func (r *saleRepository) ListByDateRange(ctx context.Context, start, end time.Time) ([]model.Sale, error) {
	var sales []model.Sale
	err := r.preload(GetDB(ctx, r.db)).
		Where("created_at >= ? AND created_at <= ?", start, end).
		Order("created_at desc").
		Find(&sales).Error
	if err != nil {
		return nil, err
	}
	return sales, nil
}

func (r *saleRepository) ListRecent(ctx context.Context, limit int) ([]model.Sale, error) {
	if limit <= 0 {
		limit = 5
	}
	var sales []model.Sale
	err := r.preload(GetDB(ctx, r.db)).
		Order("created_at desc").
		Limit(limit).
		Find(&sales).Error
	if err != nil {
		return nil, err
	}
	return sales, nil
}
