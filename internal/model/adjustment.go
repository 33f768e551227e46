package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StockOperation enum constants for inventory adjustments
const (
	OpAdd      = "add"
	OpSubtract = "subtract"
	OpSet      = "set"
)

// InventoryAdjustment is an append-only audit entry, one per stock mutation.
// Entries are never updated or deleted.
type InventoryAdjustment struct {
	ID            uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	SKU           string          `gorm:"type:varchar(100);not null;index" json:"sku"`
	ItemName      string          `gorm:"type:varchar(255)" json:"itemName"`
	PreviousStock decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"previousStock"`
	NewStock      decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"newStock"`
	Quantity      decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"quantity"`
	Operation     string          `gorm:"type:varchar(20);not null" json:"operation"` // add, subtract, set
	Reason        string          `gorm:"type:varchar(255)" json:"reason"`
	RecipeID      *string         `gorm:"type:varchar(100);index" json:"recipeId,omitempty"`
	AdjustedBy    string          `gorm:"type:varchar(255);default:'system'" json:"adjustedBy"`
	CreatedAt     time.Time       `gorm:"index" json:"createdAt"`
}
