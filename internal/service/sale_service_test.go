package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"pos-backend/internal/model"

	"github.com/shopspring/decimal"
)

type saleFixture struct {
	svc         SaleService
	sales       *fakeSaleRepo
	recipes     *fakeRecipeRepo
	inventory   *fakeInventoryRepo
	adjustments *fakeAdjustmentRepo
}

func newSaleFixture(t *testing.T) *saleFixture {
	t.Helper()
	f := &saleFixture{
		sales:       newFakeSaleRepo(),
		recipes:     newFakeRecipeRepo(),
		inventory:   newFakeInventoryRepo(),
		adjustments: newFakeAdjustmentRepo(),
	}
	f.svc = NewSaleService(f.sales, f.recipes, f.inventory, f.adjustments,
		newFakeTxManager(f.inventory), nil, testLogger())
	return f
}

func recipeID(sku string) *string { return &sku }

func teaOnlyRecipe(t *testing.T, repo *fakeRecipeRepo) {
	t.Helper()
	recipe := &model.Recipe{
		ProductSKU: "MILKTEA001",
		Name:       "Classic Milk Tea",
		Yield:      1,
		Ingredients: []model.RecipeIngredient{
			{RecipeID: "MILKTEA001", Position: 0, SKU: "TEA001", Name: "Black Tea Leaves", Quantity: decimal.NewFromFloat(0.01), Unit: "kg"},
		},
	}
	if err := repo.Create(context.Background(), recipe); err != nil {
		t.Fatalf("seed recipe: %v", err)
	}
}

func TestGenerateSaleIDFormat(t *testing.T) {
	ts := time.Date(2026, 8, 28, 14, 30, 52, 7*int(time.Millisecond), time.UTC)
	got := GenerateSaleID(ts)
	want := "SALE-20260828-143052-007"
	if got != want {
		t.Errorf("GenerateSaleID = %q, want %q", got, want)
	}
}

func TestProcessSaleConsumesIngredients(t *testing.T) {
	f := newSaleFixture(t)
	teaOnlyRecipe(t, f.recipes)
	seedItem(t, f.inventory, "TEA001", 25, 10)

	result, err := f.svc.ProcessSale(context.Background(), "user-1", ProcessSaleRequest{
		Items: []SaleItemRequest{
			{SKU: "MILKTEA001", Name: "Classic Milk Tea", Price: decimal.NewFromInt(120), Quantity: 2,
				HasRecipe: true, RecipeID: recipeID("MILKTEA001")},
		},
		Payment: PaymentDetails{PaymentMethod: model.PaymentCash, AmountReceived: decimal.NewFromInt(250)},
	})
	if err != nil {
		t.Fatalf("ProcessSale: %v", err)
	}
	if !result.Committed || result.Degraded {
		t.Fatalf("result = %+v, want committed and not degraded", result)
	}

	// 25 - 0.01*2 = 24.98, exactly
	if !f.inventory.stock("TEA001").Equal(decimal.NewFromFloat(24.98)) {
		t.Errorf("stock = %s, want 24.98", f.inventory.stock("TEA001"))
	}

	sale, err := f.svc.GetSale(context.Background(), result.SaleID)
	if err != nil {
		t.Fatalf("GetSale: %v", err)
	}
	if !sale.Total.Equal(decimal.NewFromInt(240)) {
		t.Errorf("Total = %s, want 240", sale.Total)
	}
	if len(sale.InventoryConsumed) != 1 {
		t.Fatalf("got %d consumption records, want 1", len(sale.InventoryConsumed))
	}
	consumption := sale.InventoryConsumed[0]
	if consumption.RecipeName != "Classic Milk Tea" || consumption.Quantity != 2 {
		t.Errorf("consumption = %+v", consumption)
	}
	if len(consumption.Ingredients) != 1 {
		t.Fatalf("got %d consumed ingredients, want 1", len(consumption.Ingredients))
	}
	ing := consumption.Ingredients[0]
	if !ing.Quantity.Equal(decimal.NewFromFloat(0.02)) {
		t.Errorf("consumed quantity = %s, want 0.02", ing.Quantity)
	}
	if !ing.PreviousStock.Equal(decimal.NewFromInt(25)) || !ing.NewStock.Equal(decimal.NewFromFloat(24.98)) {
		t.Errorf("consumed stocks = %s -> %s, want 25 -> 24.98", ing.PreviousStock, ing.NewStock)
	}

	// One adjustment, written after commit
	entries, _ := f.adjustments.List(context.Background(), "TEA001", 10)
	if len(entries) != 1 {
		t.Fatalf("got %d adjustments, want 1", len(entries))
	}
	adj := entries[0]
	if adj.Operation != model.OpSubtract || !adj.Quantity.Equal(decimal.NewFromFloat(0.02)) {
		t.Errorf("adjustment = %+v", adj)
	}
	if adj.Reason != "Sale consumption: Classic Milk Tea" {
		t.Errorf("adjustment reason = %q", adj.Reason)
	}
	if adj.RecipeID == nil || *adj.RecipeID != "MILKTEA001" {
		t.Errorf("adjustment recipe id = %v", adj.RecipeID)
	}
}

func TestProcessSaleSimpleProductSkipsInventory(t *testing.T) {
	f := newSaleFixture(t)
	seedItem(t, f.inventory, "TEA001", 25, 10)

	result, err := f.svc.ProcessSale(context.Background(), "user-1", ProcessSaleRequest{
		Items: []SaleItemRequest{
			{SKU: "WATER001", Name: "Bottled Water", Price: decimal.NewFromInt(20), Quantity: 3},
		},
		Payment: PaymentDetails{PaymentMethod: model.PaymentCash},
	})
	if err != nil {
		t.Fatalf("ProcessSale: %v", err)
	}
	if result.Degraded {
		t.Error("simple product sale marked degraded")
	}

	if !f.inventory.stock("TEA001").Equal(decimal.NewFromInt(25)) {
		t.Errorf("stock changed by recipe-less sale: %s", f.inventory.stock("TEA001"))
	}
	sale, _ := f.svc.GetSale(context.Background(), result.SaleID)
	if len(sale.InventoryConsumed) != 0 {
		t.Errorf("got %d consumption records, want 0", len(sale.InventoryConsumed))
	}
	if !sale.Total.Equal(decimal.NewFromInt(60)) {
		t.Errorf("Total = %s, want 60", sale.Total)
	}
}

func TestProcessSaleClampsStockAtZero(t *testing.T) {
	f := newSaleFixture(t)
	teaOnlyRecipe(t, f.recipes)
	seedItem(t, f.inventory, "TEA001", 0.015, 10)

	// Two units need 0.02 but only 0.015 remains; the sale still goes
	// through and stock floors at zero.
	result, err := f.svc.ProcessSale(context.Background(), "user-1", ProcessSaleRequest{
		Items: []SaleItemRequest{
			{SKU: "MILKTEA001", Name: "Classic Milk Tea", Price: decimal.NewFromInt(120), Quantity: 2,
				HasRecipe: true, RecipeID: recipeID("MILKTEA001")},
		},
		Payment: PaymentDetails{PaymentMethod: model.PaymentGCash, ReferenceNumber: "REF-1"},
	})
	if err != nil {
		t.Fatalf("ProcessSale: %v", err)
	}
	if result.Degraded {
		t.Error("insufficient stock should clamp, not degrade")
	}
	if !f.inventory.stock("TEA001").IsZero() {
		t.Errorf("stock = %s, want 0", f.inventory.stock("TEA001"))
	}
}

func TestProcessSaleFallsBackWhenIngredientMissing(t *testing.T) {
	f := newSaleFixture(t)
	teaOnlyRecipe(t, f.recipes)
	// TEA001 intentionally has no inventory record, so the batch fails.

	result, err := f.svc.ProcessSale(context.Background(), "user-1", ProcessSaleRequest{
		Items: []SaleItemRequest{
			{SKU: "MILKTEA001", Name: "Classic Milk Tea", Price: decimal.NewFromInt(120), Quantity: 1,
				HasRecipe: true, RecipeID: recipeID("MILKTEA001")},
		},
		Payment: PaymentDetails{PaymentMethod: model.PaymentCash},
	})
	if err != nil {
		t.Fatalf("ProcessSale should fall back, got error: %v", err)
	}
	if !result.Committed || !result.Degraded {
		t.Fatalf("result = %+v, want committed and degraded", result)
	}
	if result.Reason == "" {
		t.Error("degraded result carries no reason")
	}

	sale, err := f.svc.GetSale(context.Background(), result.SaleID)
	if err != nil {
		t.Fatalf("GetSale: %v", err)
	}
	if len(sale.InventoryConsumed) != 0 {
		t.Errorf("degraded sale has %d consumption records, want 0", len(sale.InventoryConsumed))
	}
	if !sale.Total.Equal(decimal.NewFromInt(120)) {
		t.Errorf("Total = %s, want 120", sale.Total)
	}

	// No adjustments when the batch never committed
	entries, _ := f.adjustments.List(context.Background(), "", 10)
	if len(entries) != 0 {
		t.Errorf("got %d adjustments after failed batch, want 0", len(entries))
	}
}

func TestProcessSaleUnknownRecipeFallsBack(t *testing.T) {
	f := newSaleFixture(t)

	result, err := f.svc.ProcessSale(context.Background(), "user-1", ProcessSaleRequest{
		Items: []SaleItemRequest{
			{SKU: "GHOST001", Name: "Ghost Drink", Price: decimal.NewFromInt(99), Quantity: 1,
				HasRecipe: true, RecipeID: recipeID("GHOST001")},
		},
		Payment: PaymentDetails{PaymentMethod: model.PaymentCard},
	})
	if err != nil {
		t.Fatalf("ProcessSale: %v", err)
	}
	if !result.Degraded {
		t.Fatal("expected degraded result for unknown recipe")
	}
	if f.sales.count() != 1 {
		t.Errorf("got %d sales recorded, want 1", f.sales.count())
	}
}

func TestProcessSaleConsumesInCartOrder(t *testing.T) {
	f := newSaleFixture(t)
	teaOnlyRecipe(t, f.recipes)
	coffee := &model.Recipe{
		ProductSKU: "COFFEE001",
		Name:       "Americano",
		Yield:      1,
		Ingredients: []model.RecipeIngredient{
			{RecipeID: "COFFEE001", Position: 0, SKU: "BEANS001", Name: "Coffee Beans", Quantity: decimal.NewFromFloat(0.02), Unit: "kg"},
		},
	}
	if err := f.recipes.Create(context.Background(), coffee); err != nil {
		t.Fatalf("seed: %v", err)
	}
	seedItem(t, f.inventory, "TEA001", 25, 10)
	seedItem(t, f.inventory, "BEANS001", 10, 2)

	result, err := f.svc.ProcessSale(context.Background(), "user-1", ProcessSaleRequest{
		Items: []SaleItemRequest{
			{SKU: "COFFEE001", Name: "Americano", Price: decimal.NewFromInt(90), Quantity: 1,
				HasRecipe: true, RecipeID: recipeID("COFFEE001")},
			{SKU: "MILKTEA001", Name: "Classic Milk Tea", Price: decimal.NewFromInt(120), Quantity: 1,
				HasRecipe: true, RecipeID: recipeID("MILKTEA001")},
		},
		Payment: PaymentDetails{PaymentMethod: model.PaymentCash},
	})
	if err != nil {
		t.Fatalf("ProcessSale: %v", err)
	}

	sale, _ := f.svc.GetSale(context.Background(), result.SaleID)
	if len(sale.InventoryConsumed) != 2 {
		t.Fatalf("got %d consumption records, want 2", len(sale.InventoryConsumed))
	}
	if sale.InventoryConsumed[0].ProductSKU != "COFFEE001" || sale.InventoryConsumed[1].ProductSKU != "MILKTEA001" {
		t.Errorf("consumption order = %s, %s; want cart order",
			sale.InventoryConsumed[0].ProductSKU, sale.InventoryConsumed[1].ProductSKU)
	}
}

func TestProcessSaleConcurrentDecrementsBothLand(t *testing.T) {
	f := newSaleFixture(t)
	teaOnlyRecipe(t, f.recipes)
	seedItem(t, f.inventory, "TEA001", 25, 10)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.svc.ProcessSale(context.Background(), "user-1", ProcessSaleRequest{
				Items: []SaleItemRequest{
					{SKU: "MILKTEA001", Name: "Classic Milk Tea", Price: decimal.NewFromInt(120), Quantity: 1,
						HasRecipe: true, RecipeID: recipeID("MILKTEA001")},
				},
				Payment: PaymentDetails{PaymentMethod: model.PaymentCash},
			})
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Fatalf("sale %d: %v", i, err)
		}
	}
	// Neither decrement may be lost: 25 - 0.01 - 0.01 = 24.98
	if !f.inventory.stock("TEA001").Equal(decimal.NewFromFloat(24.98)) {
		t.Errorf("stock = %s, want 24.98 after two concurrent sales", f.inventory.stock("TEA001"))
	}
}

func TestListSalesRanges(t *testing.T) {
	f := newSaleFixture(t)
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	f.svc.(*saleService).now = func() time.Time { return now }

	write := func(id string, at time.Time) {
		if err := f.sales.Create(context.Background(), &model.Sale{SaleID: id, CreatedAt: at}); err != nil {
			t.Fatalf("seed sale: %v", err)
		}
	}
	write("SALE-A", now.Add(-2*time.Hour))           // today
	write("SALE-B", now.Add(-3*24*time.Hour))        // this week
	write("SALE-C", now.Add(-20*24*time.Hour))       // this month
	write("SALE-D", now.Add(-60*24*time.Hour))       // older

	cases := []struct {
		dateRange string
		want      int
	}{
		{"today", 1},
		{"week", 2},
		{"month", 3},
		{"", 4}, // recent, no cutoff
	}
	for _, tc := range cases {
		got, err := f.svc.ListSales(context.Background(), tc.dateRange, 50)
		if err != nil {
			t.Fatalf("ListSales(%q): %v", tc.dateRange, err)
		}
		if len(got) != tc.want {
			t.Errorf("ListSales(%q) = %d sales, want %d", tc.dateRange, len(got), tc.want)
		}
	}
}

func TestRangeStart(t *testing.T) {
	now := time.Date(2026, 8, 28, 15, 45, 0, 0, time.UTC)

	start, ok := rangeStart(now, "today")
	if !ok || !start.Equal(time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("today start = %v", start)
	}
	start, ok = rangeStart(now, "week")
	if !ok || !start.Equal(time.Date(2026, 8, 21, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("week start = %v", start)
	}
	if _, ok := rangeStart(now, "fortnight"); ok {
		t.Error("unknown range should not resolve")
	}
}
