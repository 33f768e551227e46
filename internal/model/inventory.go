package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ItemStatus constants — derived from current stock vs min stock level
const (
	ItemStatusActive   = "active"
	ItemStatusLowStock = "low-stock"
)

// DefaultMinStockLevel applies when an item has no explicit threshold
var DefaultMinStockLevel = decimal.NewFromInt(10)

// InventoryItem represents a raw material or stocked unit, keyed by SKU
type InventoryItem struct {
	SKU           string          `gorm:"type:varchar(100);primaryKey" json:"sku"`
	Name          string          `gorm:"type:varchar(255);not null" json:"name"`
	CurrentStock  decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"currentStock"`
	Unit          string          `gorm:"type:varchar(50);not null" json:"unit"` // kg, pieces, liters
	CostPerUnit   decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"costPerUnit"`
	Supplier      string          `gorm:"type:varchar(255)" json:"supplier"`
	Category      string          `gorm:"type:varchar(100);default:'Raw Material'" json:"category"`
	MinStockLevel decimal.Decimal `gorm:"type:decimal(18,4);default:10" json:"minStockLevel"`
	MaxStockLevel decimal.Decimal `gorm:"type:decimal(18,4);default:100" json:"maxStockLevel"`
	Status        string          `gorm:"type:varchar(20);not null;index" json:"status"` // active, low-stock
	Location      string          `gorm:"type:varchar(255);default:'Warehouse'" json:"location"`
	Notes         string          `gorm:"type:text" json:"notes"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
	DeletedAt     gorm.DeletedAt  `gorm:"index" json:"-"`
}

// ComputeStatus derives the low-stock status from the item's own threshold,
// falling back to DefaultMinStockLevel when unset. Must be applied after
// every stock mutation so the persisted status is never stale.
func (i *InventoryItem) ComputeStatus() string {
	min := i.MinStockLevel
	if min.IsZero() {
		min = DefaultMinStockLevel
	}
	if i.CurrentStock.LessThanOrEqual(min) {
		return ItemStatusLowStock
	}
	return ItemStatusActive
}
