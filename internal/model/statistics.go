package model

import "github.com/shopspring/decimal"

// Report projections. These are scan targets for aggregate queries, not
// persisted tables.

type SalesSummary struct {
	TotalSales         decimal.Decimal `json:"totalSales"`
	TransactionCount   int             `json:"transactionCount"`
	AverageTransaction decimal.Decimal `json:"averageTransaction"`
}

type ProductRanking struct {
	SKU           string          `json:"sku"`
	Name          string          `json:"name"`
	TotalQuantity int             `json:"totalQuantity"`
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
	TotalSales    int             `json:"totalSales"`
}

type IngredientConsumption struct {
	SKU           string          `json:"sku"`
	Name          string          `json:"name"`
	Unit          string          `json:"unit"`
	TotalQuantity decimal.Decimal `json:"totalQuantity"`
	TotalCost     decimal.Decimal `json:"totalCost"`
}
