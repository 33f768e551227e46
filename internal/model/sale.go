package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentMethod constants
const (
	PaymentCash   = "Cash"
	PaymentGCash  = "GCash"
	PaymentCard   = "Card"
	PaymentOnline = "Online"
)

// Sale is an immutable transaction record. It is written once at checkout;
// the consumption records are attached within the same batch and the row is
// never mutated afterwards.
type Sale struct {
	SaleID            string            `gorm:"type:varchar(50);primaryKey" json:"saleId"` // SALE-YYYYMMDD-HHMMSS-mmm
	Items             []SaleItem        `gorm:"foreignKey:SaleID;references:SaleID;constraint:OnDelete:CASCADE" json:"items"`
	Total             decimal.Decimal   `gorm:"type:decimal(18,4);not null" json:"total"`
	PaymentMethod     string            `gorm:"type:varchar(50);not null;default:'Cash'" json:"paymentMethod"`
	AmountReceived    decimal.Decimal   `gorm:"type:decimal(18,4);default:0" json:"amountReceived"`
	ReferenceNumber   string            `gorm:"type:varchar(100)" json:"referenceNumber"`
	InventoryConsumed []SaleConsumption `gorm:"foreignKey:SaleID;references:SaleID;constraint:OnDelete:CASCADE" json:"inventoryConsumed"`
	CreatedAt         time.Time         `gorm:"index" json:"createdAt"`
}

// SaleItem is one cart line at the moment of checkout. Price and name are
// copied from the product so later catalog edits do not rewrite history.
type SaleItem struct {
	ID        uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"-"`
	SaleID    string          `gorm:"type:varchar(50);not null;index" json:"-"`
	Position  int             `gorm:"type:int;not null" json:"-"`
	ProductID string          `gorm:"type:varchar(100);not null" json:"productId"`
	SKU       string          `gorm:"type:varchar(100);not null;index" json:"sku"`
	Name      string          `gorm:"type:varchar(255);not null" json:"name"`
	Price     decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"price"`
	Quantity  int             `gorm:"type:int;not null" json:"quantity"`
	HasRecipe bool            `gorm:"not null;default:false" json:"hasRecipe"`
	RecipeID  *string         `gorm:"type:varchar(100)" json:"recipeId,omitempty"`
}

// SaleConsumption records the recipe consumption for one sold product.
type SaleConsumption struct {
	ID          uuid.UUID            `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"-"`
	SaleID      string               `gorm:"type:varchar(50);not null;index" json:"-"`
	ProductSKU  string               `gorm:"type:varchar(100);not null" json:"productSku"`
	ProductName string               `gorm:"type:varchar(255)" json:"productName"`
	Quantity    int                  `gorm:"type:int;not null" json:"quantity"`
	RecipeID    string               `gorm:"type:varchar(100);not null" json:"recipeId"`
	RecipeName  string               `gorm:"type:varchar(255)" json:"recipeName"`
	Ingredients []ConsumedIngredient `gorm:"foreignKey:ConsumptionID;constraint:OnDelete:CASCADE" json:"consumedIngredients"`
}

// ConsumedIngredient records the stock movement of a single ingredient.
type ConsumedIngredient struct {
	ID            uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"-"`
	ConsumptionID uuid.UUID       `gorm:"type:uuid;not null;index" json:"-"`
	SKU           string          `gorm:"type:varchar(100);not null" json:"sku"`
	Name          string          `gorm:"type:varchar(255)" json:"name"`
	Quantity      decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"quantity"`
	Unit          string          `gorm:"type:varchar(50)" json:"unit"`
	PreviousStock decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"previousStock"`
	NewStock      decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"newStock"`
}
