package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"pos-backend/internal/model"
	"pos-backend/internal/repository"
	ws "pos-backend/internal/websocket"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// DTOs
type SaleItemRequest struct {
	ProductID string          `json:"productId"`
	SKU       string          `json:"sku" binding:"required"`
	Name      string          `json:"name" binding:"required"`
	Price     decimal.Decimal `json:"price" binding:"required"`
	Quantity  int             `json:"quantity" binding:"required,gt=0"`
	HasRecipe bool            `json:"hasRecipe"`
	RecipeID  *string         `json:"recipeId"`
}

type PaymentDetails struct {
	PaymentMethod   string          `json:"paymentMethod" binding:"required"`
	AmountReceived  decimal.Decimal `json:"amountReceived"`
	ReferenceNumber string          `json:"referenceNumber"`
}

type ProcessSaleRequest struct {
	Items   []SaleItemRequest `json:"items" binding:"required,min=1,dive"`
	Payment PaymentDetails    `json:"payment" binding:"required"`
}

// SaleResult distinguishes a fully committed sale from a degraded one. A
// degraded sale was recorded without its inventory effects after the batch
// commit failed; Reason carries the batch error. Stock can drift from sold
// quantity in that case, which is the accepted availability-over-consistency
// tradeoff of the checkout path.
type SaleResult struct {
	SaleID    string `json:"saleId"`
	Committed bool   `json:"committed"`
	Degraded  bool   `json:"degraded"`
	Reason    string `json:"reason,omitempty"`
}

type SaleService interface {
	// ProcessSale records a sale and consumes recipe ingredients from
	// inventory in one batch. On batch failure it makes a single fallback
	// attempt to record the sale alone; if that also fails, the original
	// batch error is returned. There is no retry loop.
	ProcessSale(ctx context.Context, userID string, req ProcessSaleRequest) (*SaleResult, error)
	GetSale(ctx context.Context, saleID string) (*model.Sale, error)
	ListSales(ctx context.Context, dateRange string, limit int) ([]model.Sale, error)
}

type saleService struct {
	saleRepo       repository.SaleRepository
	recipeRepo     repository.RecipeRepository
	inventoryRepo  repository.InventoryRepository
	adjustmentRepo repository.AdjustmentRepository
	txManager      repository.TransactionManager
	hub            *ws.Hub
	logger         *logrus.Logger
	now            func() time.Time
}

func NewSaleService(
	saleRepo repository.SaleRepository,
	recipeRepo repository.RecipeRepository,
	inventoryRepo repository.InventoryRepository,
	adjustmentRepo repository.AdjustmentRepository,
	txManager repository.TransactionManager,
	hub *ws.Hub,
	logger *logrus.Logger,
) SaleService {
	return &saleService{
		saleRepo:       saleRepo,
		recipeRepo:     recipeRepo,
		inventoryRepo:  inventoryRepo,
		adjustmentRepo: adjustmentRepo,
		txManager:      txManager,
		hub:            hub,
		logger:         logger,
		now:            time.Now,
	}
}

// GenerateSaleID builds a sale identifier from a timestamp:
// SALE-YYYYMMDD-HHMMSS-mmm. Collisions require two sales in the same
// millisecond within one process, which is accepted as practically unique.
func GenerateSaleID(t time.Time) string {
	return fmt.Sprintf("SALE-%s-%s-%03d",
		t.Format("20060102"), t.Format("150405"), t.Nanosecond()/int(time.Millisecond))
}

func (s *saleService) ProcessSale(ctx context.Context, userID string, req ProcessSaleRequest) (*SaleResult, error) {
	now := s.now()
	saleID := GenerateSaleID(now)

	items := make([]model.SaleItem, 0, len(req.Items))
	total := decimal.Zero
	for i, item := range req.Items {
		items = append(items, model.SaleItem{
			SaleID:    saleID,
			Position:  i,
			ProductID: item.ProductID,
			SKU:       item.SKU,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
			HasRecipe: item.HasRecipe,
			RecipeID:  item.RecipeID,
		})
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	sale := &model.Sale{
		SaleID:          saleID,
		Items:           items,
		Total:           total,
		PaymentMethod:   req.Payment.PaymentMethod,
		AmountReceived:  req.Payment.AmountReceived,
		ReferenceNumber: req.Payment.ReferenceNumber,
	}

	// Batch: sale + stock decrements + consumption records, all or nothing.
	// Items are consumed strictly in cart order; ingredient rows are locked
	// for the duration of the batch so concurrent sales serialize on the
	// SKUs they share.
	var adjustments []model.InventoryAdjustment
	batchErr := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		consumed := make([]model.SaleConsumption, 0)
		for _, item := range req.Items {
			if !item.HasRecipe || item.RecipeID == nil || *item.RecipeID == "" {
				continue
			}

			recipe, ingredients, adjs, err := s.consumeRecipe(txCtx, *item.RecipeID, item.Quantity, userID)
			if err != nil {
				return err
			}

			consumed = append(consumed, model.SaleConsumption{
				SaleID:      saleID,
				ProductSKU:  item.SKU,
				ProductName: item.Name,
				Quantity:    item.Quantity,
				RecipeID:    recipe.ProductSKU,
				RecipeName:  recipe.Name,
				Ingredients: ingredients,
			})
			adjustments = append(adjustments, adjs...)
		}

		sale.InventoryConsumed = consumed
		return s.saleRepo.Create(txCtx, sale)
	})

	if batchErr != nil {
		// One-shot fallback: record the sale without inventory effects.
		fallback := *sale
		fallback.InventoryConsumed = nil
		if fbErr := s.saleRepo.Create(ctx, &fallback); fbErr != nil {
			s.logger.WithError(fbErr).WithField("saleId", saleID).Error("sale fallback write failed")
			return nil, batchErr
		}

		s.logger.WithError(batchErr).WithField("saleId", saleID).
			Warn("sale batch failed; sale recorded without inventory consumption")
		s.broadcastSale(&fallback)
		return &SaleResult{SaleID: saleID, Committed: true, Degraded: true, Reason: batchErr.Error()}, nil
	}

	// The adjustment log is best-effort: a failed entry is reported and
	// skipped, never unwound.
	for i := range adjustments {
		if err := s.adjustmentRepo.Create(ctx, &adjustments[i]); err != nil {
			s.logger.WithError(err).WithFields(logrus.Fields{
				"saleId": saleID,
				"sku":    adjustments[i].SKU,
			}).Warn("failed to log sale consumption adjustment")
		}
	}

	s.broadcastSale(sale)
	return &SaleResult{SaleID: saleID, Committed: true}, nil
}

// consumeRecipe decrements stock for every ingredient of one recipe,
// scaled by the number of product units sold. Stock is floored at zero.
// The ingredient list is walked in recipe order.
func (s *saleService) consumeRecipe(ctx context.Context, recipeID string, quantity int, userID string) (*model.Recipe, []model.ConsumedIngredient, []model.InventoryAdjustment, error) {
	recipe, err := s.recipeRepo.FindByProductSKU(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, nil, fmt.Errorf("%w: %s", ErrRecipeNotFound, recipeID)
		}
		return nil, nil, nil, fmt.Errorf("database error: %w", err)
	}

	adjustedBy := userID
	if adjustedBy == "" {
		adjustedBy = "system"
	}

	qty := decimal.NewFromInt(int64(quantity))
	consumed := make([]model.ConsumedIngredient, 0, len(recipe.Ingredients))
	adjustments := make([]model.InventoryAdjustment, 0, len(recipe.Ingredients))

	for _, ingredient := range recipe.Ingredients {
		item, err := s.inventoryRepo.FindBySKUForUpdate(ctx, ingredient.SKU)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, nil, nil, fmt.Errorf("%w: %s", ErrItemNotFound, ingredient.SKU)
			}
			return nil, nil, nil, fmt.Errorf("database error: %w", err)
		}

		consumedQuantity := ingredient.Quantity.Mul(qty)
		newStock := item.CurrentStock.Sub(consumedQuantity)
		if newStock.IsNegative() {
			newStock = decimal.Zero
		}

		previousStock := item.CurrentStock
		item.CurrentStock = newStock
		if err := s.inventoryRepo.UpdateStock(ctx, ingredient.SKU, newStock, item.ComputeStatus()); err != nil {
			return nil, nil, nil, fmt.Errorf("failed to update stock for %s: %w", ingredient.SKU, err)
		}

		consumed = append(consumed, model.ConsumedIngredient{
			SKU:           ingredient.SKU,
			Name:          ingredient.Name,
			Quantity:      consumedQuantity,
			Unit:          ingredient.Unit,
			PreviousStock: previousStock,
			NewStock:      newStock,
		})

		rid := recipeID
		adjustments = append(adjustments, model.InventoryAdjustment{
			SKU:           ingredient.SKU,
			ItemName:      item.Name,
			PreviousStock: previousStock,
			NewStock:      newStock,
			Quantity:      consumedQuantity,
			Operation:     model.OpSubtract,
			Reason:        fmt.Sprintf("Sale consumption: %s", recipe.Name),
			RecipeID:      &rid,
			AdjustedBy:    adjustedBy,
		})
	}

	return recipe, consumed, adjustments, nil
}

func (s *saleService) GetSale(ctx context.Context, saleID string) (*model.Sale, error) {
	sale, err := s.saleRepo.FindBySaleID(ctx, saleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("sale not found: %s", saleID)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return sale, nil
}

func (s *saleService) ListSales(ctx context.Context, dateRange string, limit int) ([]model.Sale, error) {
	since, ok := rangeStart(s.now(), dateRange)
	if !ok {
		return s.saleRepo.ListRecent(ctx, limit)
	}
	return s.saleRepo.ListSince(ctx, since, limit)
}

// rangeStart maps a named date range onto its start instant
func rangeStart(now time.Time, dateRange string) (time.Time, bool) {
	switch dateRange {
	case "today":
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()), true
	case "week":
		return time.Date(now.Year(), now.Month(), now.Day()-7, 0, 0, 0, 0, now.Location()), true
	case "month":
		return time.Date(now.Year(), now.Month()-1, now.Day(), 0, 0, 0, 0, now.Location()), true
	default:
		return time.Time{}, false
	}
}

func (s *saleService) broadcastSale(sale *model.Sale) {
	if s.hub == nil {
		return
	}
	payload, err := json.Marshal(InventoryEvent{Event: "sale.completed", Data: sale})
	if err != nil {
		s.logger.WithError(err).Warn("failed to marshal sale event")
		return
	}
	s.hub.Publish(payload)
}
