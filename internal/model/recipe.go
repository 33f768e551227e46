package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Recipe is the bill of materials for one product. Recipes are keyed by the
// product's SKU, so the recipe id and the product SKU share one identifier
// space (one recipe per product).
type Recipe struct {
	ProductSKU      string             `gorm:"type:varchar(100);primaryKey" json:"productSku"`
	Name            string             `gorm:"type:varchar(255);not null" json:"name"`
	ProductName     string             `gorm:"type:varchar(255)" json:"productName"`
	Description     string             `gorm:"type:text" json:"description"`
	Ingredients     []RecipeIngredient `gorm:"foreignKey:RecipeID;references:ProductSKU;constraint:OnDelete:CASCADE" json:"ingredients"`
	Yield           int                `gorm:"type:int;default:1" json:"yield"` // units produced per execution
	PreparationTime int                `gorm:"type:int;default:0" json:"preparationTime"`
	Instructions    string             `gorm:"type:text" json:"instructions"`
	CostPerUnit     decimal.Decimal    `gorm:"type:decimal(18,4);default:0" json:"costPerUnit"`
	Status          string             `gorm:"type:varchar(20);default:'active'" json:"status"`
	Category        string             `gorm:"type:varchar(100);default:'Beverage';index" json:"category"`
	Notes           string             `gorm:"type:text" json:"notes"`
	CreatedAt       time.Time          `json:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt"`
}

// RecipeIngredient is one line of a recipe: the quantity of an inventory
// item consumed per unit of product produced. Position preserves the order
// the recipe was authored in.
type RecipeIngredient struct {
	ID       uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"-"`
	RecipeID string          `gorm:"type:varchar(100);not null;index" json:"-"`
	Position int             `gorm:"type:int;not null" json:"-"`
	SKU      string          `gorm:"type:varchar(100);not null;index" json:"sku"`
	Name     string          `gorm:"type:varchar(255)" json:"name"`
	Quantity decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"quantity"`
	Unit     string          `gorm:"type:varchar(50)" json:"unit"`
}
