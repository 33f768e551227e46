package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"pos-backend/internal/model"
	"pos-backend/internal/repository"
	ws "pos-backend/internal/websocket"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Sentinel errors shared across the inventory/recipe/sale services
var (
	ErrItemNotFound    = errors.New("inventory item not found")
	ErrRecipeNotFound  = errors.New("recipe not found")
	ErrProductNotFound = errors.New("product not found")
)

// DTOs
type AddInventoryItemRequest struct {
	SKU           string          `json:"sku" binding:"required"`
	Name          string          `json:"name" binding:"required"`
	CurrentStock  decimal.Decimal `json:"currentStock"`
	Unit          string          `json:"unit" binding:"required"`
	CostPerUnit   decimal.Decimal `json:"costPerUnit"`
	Supplier      string          `json:"supplier"`
	Category      string          `json:"category"`
	MinStockLevel decimal.Decimal `json:"minStockLevel"`
	MaxStockLevel decimal.Decimal `json:"maxStockLevel"`
	Location      string          `json:"location"`
	Notes         string          `json:"notes"`
}

type UpdateInventoryItemRequest struct {
	Name          *string          `json:"name"`
	CurrentStock  *decimal.Decimal `json:"currentStock"`
	Unit          *string          `json:"unit"`
	CostPerUnit   *decimal.Decimal `json:"costPerUnit"`
	Supplier      *string          `json:"supplier"`
	Category      *string          `json:"category"`
	MinStockLevel *decimal.Decimal `json:"minStockLevel"`
	MaxStockLevel *decimal.Decimal `json:"maxStockLevel"`
	Location      *string          `json:"location"`
	Notes         *string          `json:"notes"`
}

type AdjustStockRequest struct {
	Quantity  decimal.Decimal `json:"quantity" binding:"required"`
	Operation string          `json:"operation" binding:"required,oneof=add subtract set"`
	Reason    string          `json:"reason"`
}

// Websocket payload
type InventoryEvent struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

type InventoryService interface {
	AddItem(ctx context.Context, req AddInventoryItemRequest) (*model.InventoryItem, error)
	UpdateItem(ctx context.Context, sku string, req UpdateInventoryItemRequest) (*model.InventoryItem, error)
	DeleteItem(ctx context.Context, sku string) error
	GetItem(ctx context.Context, sku string) (*model.InventoryItem, error)
	ListItems(ctx context.Context, page, limit int, search, category string) ([]model.InventoryItem, int64, error)
	ListLowStock(ctx context.Context) ([]model.InventoryItem, error)
	// AdjustStock applies add/subtract/set to an item's stock. Subtract is
	// floored at zero; excess demand is clamped, not rejected. Returns the
	// new stock level.
	AdjustStock(ctx context.Context, sku string, req AdjustStockRequest, adjustedBy string) (decimal.Decimal, error)
	GetAdjustments(ctx context.Context, sku string, limit int) ([]model.InventoryAdjustment, error)
}

type inventoryService struct {
	inventoryRepo  repository.InventoryRepository
	adjustmentRepo repository.AdjustmentRepository
	hub            *ws.Hub
	logger         *logrus.Logger
}

func NewInventoryService(
	inventoryRepo repository.InventoryRepository,
	adjustmentRepo repository.AdjustmentRepository,
	hub *ws.Hub,
	logger *logrus.Logger,
) InventoryService {
	return &inventoryService{
		inventoryRepo:  inventoryRepo,
		adjustmentRepo: adjustmentRepo,
		hub:            hub,
		logger:         logger,
	}
}

func (s *inventoryService) AddItem(ctx context.Context, req AddInventoryItemRequest) (*model.InventoryItem, error) {
	if req.CurrentStock.IsNegative() {
		return nil, errors.New("currentStock must not be negative")
	}
	if req.CostPerUnit.IsNegative() {
		return nil, errors.New("costPerUnit must not be negative")
	}

	item := &model.InventoryItem{
		SKU:           req.SKU,
		Name:          req.Name,
		CurrentStock:  req.CurrentStock,
		Unit:          req.Unit,
		CostPerUnit:   req.CostPerUnit,
		Supplier:      req.Supplier,
		Category:      req.Category,
		MinStockLevel: req.MinStockLevel,
		MaxStockLevel: req.MaxStockLevel,
		Location:      req.Location,
		Notes:         req.Notes,
	}
	if item.Category == "" {
		item.Category = "Raw Material"
	}
	if item.Location == "" {
		item.Location = "Warehouse"
	}
	if item.MinStockLevel.IsZero() {
		item.MinStockLevel = model.DefaultMinStockLevel
	}
	if item.MaxStockLevel.IsZero() {
		item.MaxStockLevel = decimal.NewFromInt(100)
	}
	item.Status = item.ComputeStatus()

	if err := s.inventoryRepo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create inventory item: %w", err)
	}

	s.broadcast("inventory.added", item)
	return item, nil
}

func (s *inventoryService) UpdateItem(ctx context.Context, sku string, req UpdateInventoryItemRequest) (*model.InventoryItem, error) {
	item, err := s.inventoryRepo.FindBySKU(ctx, sku)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrItemNotFound, sku)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.CurrentStock != nil {
		if req.CurrentStock.IsNegative() {
			return nil, errors.New("currentStock must not be negative")
		}
		item.CurrentStock = *req.CurrentStock
	}
	if req.Unit != nil {
		item.Unit = *req.Unit
	}
	if req.CostPerUnit != nil {
		item.CostPerUnit = *req.CostPerUnit
	}
	if req.Supplier != nil {
		item.Supplier = *req.Supplier
	}
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.MinStockLevel != nil {
		item.MinStockLevel = *req.MinStockLevel
	}
	if req.MaxStockLevel != nil {
		item.MaxStockLevel = *req.MaxStockLevel
	}
	if req.Location != nil {
		item.Location = *req.Location
	}
	if req.Notes != nil {
		item.Notes = *req.Notes
	}

	// Status is derived state: recompute on every mutation, never leave stale
	item.Status = item.ComputeStatus()

	if err := s.inventoryRepo.Save(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to update inventory item: %w", err)
	}

	s.broadcast("inventory.updated", item)
	return item, nil
}

func (s *inventoryService) DeleteItem(ctx context.Context, sku string) error {
	if _, err := s.inventoryRepo.FindBySKU(ctx, sku); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: %s", ErrItemNotFound, sku)
		}
		return fmt.Errorf("database error: %w", err)
	}
	if err := s.inventoryRepo.Delete(ctx, sku); err != nil {
		return fmt.Errorf("failed to delete inventory item: %w", err)
	}
	s.broadcast("inventory.deleted", map[string]string{"sku": sku})
	return nil
}

func (s *inventoryService) GetItem(ctx context.Context, sku string) (*model.InventoryItem, error) {
	item, err := s.inventoryRepo.FindBySKU(ctx, sku)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrItemNotFound, sku)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return item, nil
}

func (s *inventoryService) ListItems(ctx context.Context, page, limit int, search, category string) ([]model.InventoryItem, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}
	return s.inventoryRepo.List(ctx, page, limit, search, category)
}

func (s *inventoryService) ListLowStock(ctx context.Context) ([]model.InventoryItem, error) {
	return s.inventoryRepo.ListLowStock(ctx)
}

func (s *inventoryService) AdjustStock(ctx context.Context, sku string, req AdjustStockRequest, adjustedBy string) (decimal.Decimal, error) {
	item, err := s.inventoryRepo.FindBySKU(ctx, sku)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return decimal.Zero, fmt.Errorf("%w: %s", ErrItemNotFound, sku)
		}
		return decimal.Zero, fmt.Errorf("database error: %w", err)
	}

	previousStock := item.CurrentStock
	newStock, err := applyStockOperation(previousStock, req.Quantity, req.Operation)
	if err != nil {
		return decimal.Zero, err
	}

	item.CurrentStock = newStock
	status := item.ComputeStatus()
	if err := s.inventoryRepo.UpdateStock(ctx, sku, newStock, status); err != nil {
		return decimal.Zero, fmt.Errorf("failed to adjust stock for %s: %w", sku, err)
	}

	reason := req.Reason
	if reason == "" {
		reason = "manual"
	}
	if adjustedBy == "" {
		adjustedBy = "system"
	}

	// Adjustment logging is best-effort: a failed log entry never rolls
	// back the stock mutation.
	adj := &model.InventoryAdjustment{
		SKU:           sku,
		ItemName:      item.Name,
		PreviousStock: previousStock,
		NewStock:      newStock,
		Quantity:      req.Quantity,
		Operation:     req.Operation,
		Reason:        reason,
		AdjustedBy:    adjustedBy,
	}
	if err := s.adjustmentRepo.Create(ctx, adj); err != nil {
		s.logger.WithError(err).WithField("sku", sku).Warn("failed to log inventory adjustment")
	}

	item.Status = status
	s.broadcast("inventory.adjusted", item)
	return newStock, nil
}

func (s *inventoryService) GetAdjustments(ctx context.Context, sku string, limit int) ([]model.InventoryAdjustment, error) {
	return s.adjustmentRepo.List(ctx, sku, limit)
}

// applyStockOperation computes the resulting stock level. Subtract never
// drives stock below zero regardless of the quantity requested.
func applyStockOperation(current, quantity decimal.Decimal, operation string) (decimal.Decimal, error) {
	switch operation {
	case model.OpAdd:
		return current.Add(quantity), nil
	case model.OpSubtract:
		newStock := current.Sub(quantity)
		if newStock.IsNegative() {
			newStock = decimal.Zero
		}
		return newStock, nil
	case model.OpSet:
		if quantity.IsNegative() {
			return decimal.Zero, errors.New("cannot set stock to a negative value")
		}
		return quantity, nil
	default:
		return decimal.Zero, fmt.Errorf("unknown stock operation: %s", operation)
	}
}

func (s *inventoryService) broadcast(event string, data interface{}) {
	if s.hub == nil {
		return
	}
	payload, err := json.Marshal(InventoryEvent{Event: event, Data: data})
	if err != nil {
		s.logger.WithError(err).Warn("failed to marshal inventory event")
		return
	}
	s.hub.Publish(payload)
}
