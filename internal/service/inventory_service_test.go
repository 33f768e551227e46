package service

import (
	"context"
	"errors"
	"testing"

	"pos-backend/internal/model"

	"github.com/shopspring/decimal"
)

func seedItem(t *testing.T, repo *fakeInventoryRepo, sku string, stock, min float64) {
	t.Helper()
	item := &model.InventoryItem{
		SKU:           sku,
		Name:          "Item " + sku,
		CurrentStock:  decimal.NewFromFloat(stock),
		Unit:          "kg",
		CostPerUnit:   decimal.NewFromFloat(2.5),
		MinStockLevel: decimal.NewFromFloat(min),
	}
	item.Status = item.ComputeStatus()
	if err := repo.Create(context.Background(), item); err != nil {
		t.Fatalf("seed item %s: %v", sku, err)
	}
}

func TestAddItemDefaultsAndStatus(t *testing.T) {
	repo := newFakeInventoryRepo()
	svc := NewInventoryService(repo, newFakeAdjustmentRepo(), nil, testLogger())

	item, err := svc.AddItem(context.Background(), AddInventoryItemRequest{
		SKU:          "TEA001",
		Name:         "Black Tea Leaves",
		CurrentStock: decimal.NewFromInt(5),
		Unit:         "kg",
	})
	if err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	if !item.MinStockLevel.Equal(model.DefaultMinStockLevel) {
		t.Errorf("MinStockLevel = %s, want %s", item.MinStockLevel, model.DefaultMinStockLevel)
	}
	if item.Category != "Raw Material" {
		t.Errorf("Category = %q, want Raw Material", item.Category)
	}
	// Stock 5 with min 10 is low-stock from the moment of creation
	if item.Status != model.ItemStatusLowStock {
		t.Errorf("Status = %q, want %q", item.Status, model.ItemStatusLowStock)
	}
}

func TestAddItemRejectsNegativeStock(t *testing.T) {
	svc := NewInventoryService(newFakeInventoryRepo(), newFakeAdjustmentRepo(), nil, testLogger())

	_, err := svc.AddItem(context.Background(), AddInventoryItemRequest{
		SKU:          "TEA001",
		Name:         "Black Tea Leaves",
		CurrentStock: decimal.NewFromInt(-1),
		Unit:         "kg",
	})
	if err == nil {
		t.Fatal("expected error for negative stock")
	}
}

func TestAdjustStockOperations(t *testing.T) {
	tests := []struct {
		name      string
		start     float64
		quantity  float64
		operation string
		want      string
	}{
		{"add", 25, 5, model.OpAdd, "30"},
		{"subtract exact decimal", 25, 0.02, model.OpSubtract, "24.98"},
		{"subtract clamps at zero", 25, 999999, model.OpSubtract, "0"},
		{"set", 25, 42.5, model.OpSet, "42.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeInventoryRepo()
			seedItem(t, repo, "TEA001", tt.start, 10)
			svc := NewInventoryService(repo, newFakeAdjustmentRepo(), nil, testLogger())

			newStock, err := svc.AdjustStock(context.Background(), "TEA001", AdjustStockRequest{
				Quantity:  decimal.NewFromFloat(tt.quantity),
				Operation: tt.operation,
			}, "user-1")
			if err != nil {
				t.Fatalf("AdjustStock: %v", err)
			}

			want, _ := decimal.NewFromString(tt.want)
			if !newStock.Equal(want) {
				t.Errorf("newStock = %s, want %s", newStock, want)
			}
			if !repo.stock("TEA001").Equal(want) {
				t.Errorf("persisted stock = %s, want %s", repo.stock("TEA001"), want)
			}
		})
	}
}

func TestAdjustStockRejectsNegativeSet(t *testing.T) {
	repo := newFakeInventoryRepo()
	seedItem(t, repo, "TEA001", 25, 10)
	svc := NewInventoryService(repo, newFakeAdjustmentRepo(), nil, testLogger())

	_, err := svc.AdjustStock(context.Background(), "TEA001", AdjustStockRequest{
		Quantity:  decimal.NewFromInt(-3),
		Operation: model.OpSet,
	}, "user-1")
	if err == nil {
		t.Fatal("expected error setting negative stock")
	}
	if !repo.stock("TEA001").Equal(decimal.NewFromInt(25)) {
		t.Errorf("stock changed on rejected set: %s", repo.stock("TEA001"))
	}
}

func TestAdjustStockRecomputesStatus(t *testing.T) {
	repo := newFakeInventoryRepo()
	seedItem(t, repo, "TEA001", 25, 10)
	svc := NewInventoryService(repo, newFakeAdjustmentRepo(), nil, testLogger())

	if _, err := svc.AdjustStock(context.Background(), "TEA001", AdjustStockRequest{
		Quantity:  decimal.NewFromInt(20),
		Operation: model.OpSubtract,
	}, ""); err != nil {
		t.Fatalf("AdjustStock: %v", err)
	}

	item, err := svc.GetItem(context.Background(), "TEA001")
	if err != nil {
		t.Fatalf("GetItem: %v", err)
	}
	if item.Status != model.ItemStatusLowStock {
		t.Errorf("Status = %q, want %q after falling to 5", item.Status, model.ItemStatusLowStock)
	}

	// Refill back above the threshold
	if _, err := svc.AdjustStock(context.Background(), "TEA001", AdjustStockRequest{
		Quantity:  decimal.NewFromInt(50),
		Operation: model.OpSet,
	}, ""); err != nil {
		t.Fatalf("AdjustStock: %v", err)
	}
	item, _ = svc.GetItem(context.Background(), "TEA001")
	if item.Status != model.ItemStatusActive {
		t.Errorf("Status = %q, want %q after refill", item.Status, model.ItemStatusActive)
	}
}

func TestAdjustStockWritesAuditEntry(t *testing.T) {
	repo := newFakeInventoryRepo()
	adjustments := newFakeAdjustmentRepo()
	seedItem(t, repo, "TEA001", 25, 10)
	svc := NewInventoryService(repo, adjustments, nil, testLogger())

	if _, err := svc.AdjustStock(context.Background(), "TEA001", AdjustStockRequest{
		Quantity:  decimal.NewFromInt(5),
		Operation: model.OpSubtract,
		Reason:    "spoilage",
	}, "user-1"); err != nil {
		t.Fatalf("AdjustStock: %v", err)
	}

	entries, err := svc.GetAdjustments(context.Background(), "TEA001", 10)
	if err != nil {
		t.Fatalf("GetAdjustments: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d adjustments, want 1", len(entries))
	}
	adj := entries[0]
	if !adj.PreviousStock.Equal(decimal.NewFromInt(25)) || !adj.NewStock.Equal(decimal.NewFromInt(20)) {
		t.Errorf("adjustment stocks = %s -> %s, want 25 -> 20", adj.PreviousStock, adj.NewStock)
	}
	if adj.Reason != "spoilage" || adj.AdjustedBy != "user-1" {
		t.Errorf("adjustment meta = %q/%q", adj.Reason, adj.AdjustedBy)
	}
}

func TestAdjustStockSurvivesLogFailure(t *testing.T) {
	repo := newFakeInventoryRepo()
	adjustments := newFakeAdjustmentRepo()
	adjustments.createErr = errors.New("log table unavailable")
	seedItem(t, repo, "TEA001", 25, 10)
	svc := NewInventoryService(repo, adjustments, nil, testLogger())

	newStock, err := svc.AdjustStock(context.Background(), "TEA001", AdjustStockRequest{
		Quantity:  decimal.NewFromInt(5),
		Operation: model.OpSubtract,
	}, "user-1")
	if err != nil {
		t.Fatalf("AdjustStock should not fail when logging fails: %v", err)
	}
	if !newStock.Equal(decimal.NewFromInt(20)) {
		t.Errorf("newStock = %s, want 20", newStock)
	}
}

func TestAdjustStockUnknownItem(t *testing.T) {
	svc := NewInventoryService(newFakeInventoryRepo(), newFakeAdjustmentRepo(), nil, testLogger())

	_, err := svc.AdjustStock(context.Background(), "NOPE", AdjustStockRequest{
		Quantity:  decimal.NewFromInt(1),
		Operation: model.OpAdd,
	}, "")
	if !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("err = %v, want ErrItemNotFound", err)
	}
}

func TestUpdateItemRecomputesStatus(t *testing.T) {
	repo := newFakeInventoryRepo()
	seedItem(t, repo, "MILK001", 50, 10)
	svc := NewInventoryService(repo, newFakeAdjustmentRepo(), nil, testLogger())

	// Raising the threshold above current stock flips the item to low-stock
	newMin := decimal.NewFromInt(60)
	item, err := svc.UpdateItem(context.Background(), "MILK001", UpdateInventoryItemRequest{
		MinStockLevel: &newMin,
	})
	if err != nil {
		t.Fatalf("UpdateItem: %v", err)
	}
	if item.Status != model.ItemStatusLowStock {
		t.Errorf("Status = %q, want %q", item.Status, model.ItemStatusLowStock)
	}
}

func TestListLowStock(t *testing.T) {
	repo := newFakeInventoryRepo()
	seedItem(t, repo, "TEA001", 5, 10)
	seedItem(t, repo, "MILK001", 2, 10)
	seedItem(t, repo, "SUGAR001", 80, 10)
	svc := NewInventoryService(repo, newFakeAdjustmentRepo(), nil, testLogger())

	items, err := svc.ListLowStock(context.Background())
	if err != nil {
		t.Fatalf("ListLowStock: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("got %d low-stock items, want 2", len(items))
	}
	// Most depleted first
	if items[0].SKU != "MILK001" || items[1].SKU != "TEA001" {
		t.Errorf("order = %s, %s; want MILK001, TEA001", items[0].SKU, items[1].SKU)
	}
}

func TestComputeStatusBoundary(t *testing.T) {
	item := model.InventoryItem{
		CurrentStock:  decimal.NewFromInt(10),
		MinStockLevel: decimal.NewFromInt(10),
	}
	// Stock equal to the threshold counts as low
	if got := item.ComputeStatus(); got != model.ItemStatusLowStock {
		t.Errorf("ComputeStatus at threshold = %q, want %q", got, model.ItemStatusLowStock)
	}

	item.CurrentStock = decimal.NewFromFloat(10.01)
	if got := item.ComputeStatus(); got != model.ItemStatusActive {
		t.Errorf("ComputeStatus above threshold = %q, want %q", got, model.ItemStatusActive)
	}
}
