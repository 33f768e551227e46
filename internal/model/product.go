package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProductStatus constants
const (
	ProductStatusActive   = "active"
	ProductStatusInactive = "inactive"
)

// Product is a sellable catalog entry, keyed by SKU. When HasRecipe is set,
// RecipeID must resolve to a Recipe whose ProductSKU matches.
type Product struct {
	SKU             string          `gorm:"type:varchar(100);primaryKey" json:"sku"`
	Name            string          `gorm:"type:varchar(255);not null" json:"name"`
	Description     string          `gorm:"type:text" json:"description"`
	Price           decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"price"`
	Cost            decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"cost"`
	Category        string          `gorm:"type:varchar(100);default:'Beverage';index" json:"category"`
	Subcategory     string          `gorm:"type:varchar(100)" json:"subcategory"`
	Status          string          `gorm:"type:varchar(20);not null;default:'active';index" json:"status"`
	HasRecipe       bool            `gorm:"not null;default:false;index" json:"hasRecipe"`
	RecipeID        *string         `gorm:"type:varchar(100)" json:"recipeId,omitempty"` // recipe id == product SKU
	ImageURL        string          `gorm:"type:varchar(500)" json:"imageUrl"`
	PreparationTime int             `gorm:"type:int;default:0" json:"preparationTime"` // minutes
	Tags            string          `gorm:"type:text" json:"tags"`
	Notes           string          `gorm:"type:text" json:"notes"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
	DeletedAt       gorm.DeletedAt  `gorm:"index" json:"-"`
}
