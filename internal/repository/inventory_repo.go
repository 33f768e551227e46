package repository

import (
	"context"

	"pos-backend/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// InventoryRepository is the data access layer for inventory items,
// keyed by SKU.
type InventoryRepository interface {
	Create(ctx context.Context, item *model.InventoryItem) error
	Save(ctx context.Context, item *model.InventoryItem) error
	Delete(ctx context.Context, sku string) error
	FindBySKU(ctx context.Context, sku string) (*model.InventoryItem, error)
	// FindBySKUForUpdate takes a row lock; only meaningful inside a transaction.
	FindBySKUForUpdate(ctx context.Context, sku string) (*model.InventoryItem, error)
	List(ctx context.Context, page, limit int, search, category string) ([]model.InventoryItem, int64, error)
	ListLowStock(ctx context.Context) ([]model.InventoryItem, error)
	UpdateStock(ctx context.Context, sku string, stock decimal.Decimal, status string) error
}

type inventoryRepository struct {
	db *gorm.DB
}

func NewInventoryRepository(db *gorm.DB) InventoryRepository {
	return &inventoryRepository{db: db}
}

func (r *inventoryRepository) Create(ctx context.Context, item *model.InventoryItem) error {
	return GetDB(ctx, r.db).Create(item).Error
}

func (r *inventoryRepository) Save(ctx context.Context, item *model.InventoryItem) error {
	return GetDB(ctx, r.db).Save(item).Error
}

func (r *inventoryRepository) Delete(ctx context.Context, sku string) error {
	return GetDB(ctx, r.db).Where("sku = ?", sku).Delete(&model.InventoryItem{}).Error
}

func (r *inventoryRepository) FindBySKU(ctx context.Context, sku string) (*model.InventoryItem, error) {
	var item model.InventoryItem
	if err := GetDB(ctx, r.db).Where("sku = ?", sku).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *inventoryRepository) FindBySKUForUpdate(ctx context.Context, sku string) (*model.InventoryItem, error) {
	var item model.InventoryItem
	if err := GetDB(ctx, r.db).Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("sku = ?", sku).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *inventoryRepository) List(ctx context.Context, page, limit int, search, category string) ([]model.InventoryItem, int64, error) {
	var items []model.InventoryItem
	var total int64

	db := GetDB(ctx, r.db).Model(&model.InventoryItem{})
	if search != "" {
		db = db.Where("name ILIKE ? OR sku ILIKE ?", "%"+search+"%", "%"+search+"%")
	}
	if category != "" {
		db = db.Where("category = ?", category)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := db.Order("name asc").Offset(offset).Limit(limit).Find(&items).Error; err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func (r *inventoryRepository) ListLowStock(ctx context.Context) ([]model.InventoryItem, error) {
	var items []model.InventoryItem
	err := GetDB(ctx, r.db).
		Where("status = ?", model.ItemStatusLowStock).
		Order("current_stock asc").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *inventoryRepository) UpdateStock(ctx context.Context, sku string, stock decimal.Decimal, status string) error {
	return GetDB(ctx, r.db).Model(&model.InventoryItem{}).
		Where("sku = ?", sku).
		Updates(map[string]interface{}{"current_stock": stock, "status": status}).Error
}
