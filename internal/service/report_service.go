package service

import (
	"context"
	"time"

	"pos-backend/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ReportService interface {
	TodaySummary(ctx context.Context) (model.SalesSummary, error)
	TopSellingProducts(ctx context.Context, limit int, dateRange string) ([]model.ProductRanking, error)
	ConsumptionReport(ctx context.Context, dateRange string) ([]model.IngredientConsumption, error)
	SalesByDateRange(ctx context.Context, start, end time.Time) ([]model.Sale, error)
	RecentTransactions(ctx context.Context, limit int) ([]model.Sale, error)
}

type reportService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewReportService(db *gorm.DB) ReportService {
	return &reportService{db: db, now: time.Now}
}

// TodaySummary aggregates totals for sales recorded since local midnight
func (s *reportService) TodaySummary(ctx context.Context) (model.SalesSummary, error) {
	now := s.now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var row struct {
		TotalSales decimal.Decimal
		Count      int
	}
	err := s.db.WithContext(ctx).Model(&model.Sale{}).
		Select("COALESCE(SUM(total), 0) as total_sales, COUNT(*) as count").
		Where("created_at >= ?", start).
		Scan(&row).Error
	if err != nil {
		return model.SalesSummary{}, err
	}

	summary := model.SalesSummary{
		TotalSales:       row.TotalSales,
		TransactionCount: row.Count,
	}
	if row.Count > 0 {
		summary.AverageTransaction = row.TotalSales.Div(decimal.NewFromInt(int64(row.Count)))
	}
	return summary, nil
}

func (s *reportService) TopSellingProducts(ctx context.Context, limit int, dateRange string) ([]model.ProductRanking, error) {
	if limit <= 0 {
		limit = 5
	}
	start, ok := rangeStart(s.now(), dateRange)
	if !ok {
		start, _ = rangeStart(s.now(), "month")
	}

	var rankings []model.ProductRanking
	err := s.db.WithContext(ctx).Table("sale_items").
		Select("sale_items.sku as sku, MAX(sale_items.name) as name, SUM(sale_items.quantity) as total_quantity, SUM(sale_items.price * sale_items.quantity) as total_revenue, COUNT(DISTINCT sale_items.sale_id) as total_sales").
		Joins("JOIN sales ON sales.sale_id = sale_items.sale_id").
		Where("sales.created_at >= ?", start).
		Group("sale_items.sku").
		Order("total_revenue DESC").
		Limit(limit).
		Scan(&rankings).Error
	if err != nil {
		return nil, err
	}
	return rankings, nil
}

// ConsumptionReport aggregates ingredient quantities consumed by sales in
// the period, priced at each item's current cost per unit
func (s *reportService) ConsumptionReport(ctx context.Context, dateRange string) ([]model.IngredientConsumption, error) {
	start, ok := rangeStart(s.now(), dateRange)
	if !ok {
		start, _ = rangeStart(s.now(), "month")
	}

	var consumption []model.IngredientConsumption
	err := s.db.WithContext(ctx).Table("consumed_ingredients").
		Select("consumed_ingredients.sku as sku, MAX(consumed_ingredients.name) as name, MAX(consumed_ingredients.unit) as unit, SUM(consumed_ingredients.quantity) as total_quantity, COALESCE(MAX(inventory_items.cost_per_unit), 0) * SUM(consumed_ingredients.quantity) as total_cost").
		Joins("JOIN sale_consumptions ON sale_consumptions.id = consumed_ingredients.consumption_id").
		Joins("JOIN sales ON sales.sale_id = sale_consumptions.sale_id").
		Joins("LEFT JOIN inventory_items ON inventory_items.sku = consumed_ingredients.sku AND inventory_items.deleted_at IS NULL").
		Where("sales.created_at >= ?", start).
		Group("consumed_ingredients.sku").
		Order("total_quantity DESC").
		Scan(&consumption).Error
	if err != nil {
		return nil, err
	}
	return consumption, nil
}

// RecentTransactions returns the newest sales, items included, for the
// dashboard feed
func (s *reportService) RecentTransactions(ctx context.Context, limit int) ([]model.Sale, error) {
	if limit <= 0 {
		limit = 10
	}

	var sales []model.Sale
	err := s.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position asc") }).
		Order("created_at desc").
		Limit(limit).
		Find(&sales).Error
	if err != nil {
		return nil, err
	}
	return sales, nil
}

func (s *reportService) SalesByDateRange(ctx context.Context, start, end time.Time) ([]model.Sale, error) {
	var sales []model.Sale
	err := s.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position asc") }).
		Preload("InventoryConsumed").
		Preload("InventoryConsumed.Ingredients").
		Where("created_at >= ? AND created_at <= ?", start, end).
		Order("created_at desc").
		Find(&sales).Error
	if err != nil {
		return nil, err
	}
	return sales, nil
}
