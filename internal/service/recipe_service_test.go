package service

import (
	"context"
	"errors"
	"testing"

	"pos-backend/internal/model"

	"github.com/shopspring/decimal"
)

func seedMilkTeaRecipe(t *testing.T, repo *fakeRecipeRepo) {
	t.Helper()
	recipe := &model.Recipe{
		ProductSKU:  "MILKTEA001",
		Name:        "Classic Milk Tea",
		ProductName: "Classic Milk Tea",
		Yield:       1,
		Status:      "active",
		Category:    "Beverage",
		Ingredients: []model.RecipeIngredient{
			{RecipeID: "MILKTEA001", Position: 0, SKU: "TEA001", Name: "Black Tea Leaves", Quantity: decimal.NewFromFloat(0.01), Unit: "kg"},
			{RecipeID: "MILKTEA001", Position: 1, SKU: "MILK001", Name: "Fresh Milk", Quantity: decimal.NewFromFloat(0.2), Unit: "l"},
			{RecipeID: "MILKTEA001", Position: 2, SKU: "SUGAR001", Name: "Sugar", Quantity: decimal.NewFromFloat(0.03), Unit: "kg"},
		},
	}
	if err := repo.Create(context.Background(), recipe); err != nil {
		t.Fatalf("seed recipe: %v", err)
	}
}

func TestAddRecipePreservesIngredientOrder(t *testing.T) {
	repo := newFakeRecipeRepo()
	svc := NewRecipeService(repo, newFakeInventoryRepo())

	_, err := svc.AddRecipe(context.Background(), AddRecipeRequest{
		Name:       "Classic Milk Tea",
		ProductSKU: "MILKTEA001",
		Ingredients: []RecipeIngredientRequest{
			{SKU: "TEA001", Name: "Black Tea Leaves", Quantity: decimal.NewFromFloat(0.01), Unit: "kg"},
			{SKU: "MILK001", Name: "Fresh Milk", Quantity: decimal.NewFromFloat(0.2), Unit: "l"},
			{SKU: "SUGAR001", Name: "Sugar", Quantity: decimal.NewFromFloat(0.03), Unit: "kg"},
		},
	})
	if err != nil {
		t.Fatalf("AddRecipe: %v", err)
	}

	got, err := svc.GetRecipe(context.Background(), "MILKTEA001")
	if err != nil {
		t.Fatalf("GetRecipe: %v", err)
	}
	wantOrder := []string{"TEA001", "MILK001", "SUGAR001"}
	if len(got.Ingredients) != len(wantOrder) {
		t.Fatalf("got %d ingredients, want %d", len(got.Ingredients), len(wantOrder))
	}
	for i, sku := range wantOrder {
		if got.Ingredients[i].SKU != sku {
			t.Errorf("ingredient[%d] = %s, want %s", i, got.Ingredients[i].SKU, sku)
		}
		if got.Ingredients[i].Position != i {
			t.Errorf("ingredient[%d].Position = %d, want %d", i, got.Ingredients[i].Position, i)
		}
	}
	if got.Yield != 1 {
		t.Errorf("Yield = %d, want default 1", got.Yield)
	}
}

func TestAddRecipeRejectsNonPositiveQuantity(t *testing.T) {
	svc := NewRecipeService(newFakeRecipeRepo(), newFakeInventoryRepo())

	_, err := svc.AddRecipe(context.Background(), AddRecipeRequest{
		Name:       "Broken",
		ProductSKU: "X001",
		Ingredients: []RecipeIngredientRequest{
			{SKU: "TEA001", Quantity: decimal.Zero, Unit: "kg"},
		},
	})
	if err == nil {
		t.Fatal("expected error for zero ingredient quantity")
	}
}

func TestUpdateRecipeReplacesIngredients(t *testing.T) {
	repo := newFakeRecipeRepo()
	seedMilkTeaRecipe(t, repo)
	svc := NewRecipeService(repo, newFakeInventoryRepo())

	_, err := svc.UpdateRecipe(context.Background(), "MILKTEA001", UpdateRecipeRequest{
		Ingredients: []RecipeIngredientRequest{
			{SKU: "TEA001", Name: "Black Tea Leaves", Quantity: decimal.NewFromFloat(0.02), Unit: "kg"},
		},
	})
	if err != nil {
		t.Fatalf("UpdateRecipe: %v", err)
	}

	got, _ := svc.GetRecipe(context.Background(), "MILKTEA001")
	if len(got.Ingredients) != 1 {
		t.Fatalf("got %d ingredients after replace, want 1", len(got.Ingredients))
	}
	if !got.Ingredients[0].Quantity.Equal(decimal.NewFromFloat(0.02)) {
		t.Errorf("quantity = %s, want 0.02", got.Ingredients[0].Quantity)
	}
}

func TestCheckAvailabilityAllSufficient(t *testing.T) {
	recipes := newFakeRecipeRepo()
	inventory := newFakeInventoryRepo()
	seedMilkTeaRecipe(t, recipes)
	seedItem(t, inventory, "TEA001", 25, 10)
	seedItem(t, inventory, "MILK001", 50, 10)
	seedItem(t, inventory, "SUGAR001", 80, 10)
	svc := NewRecipeService(recipes, inventory)

	result, err := svc.CheckAvailability(context.Background(), "MILKTEA001", 2)
	if err != nil {
		t.Fatalf("CheckAvailability: %v", err)
	}
	if !result.CanMake {
		t.Error("CanMake = false, want true")
	}
	if len(result.MissingIngredients) != 0 || len(result.InsufficientIngredients) != 0 {
		t.Errorf("shortages reported: missing=%d insufficient=%d",
			len(result.MissingIngredients), len(result.InsufficientIngredients))
	}
	// 2.5 * (0.01 + 0.2 + 0.03) * 2 = 1.2
	if !result.TotalCost.Equal(decimal.NewFromFloat(1.2)) {
		t.Errorf("TotalCost = %s, want 1.2", result.TotalCost)
	}
}

func TestCheckAvailabilityShortfall(t *testing.T) {
	recipes := newFakeRecipeRepo()
	inventory := newFakeInventoryRepo()
	seedMilkTeaRecipe(t, recipes)
	seedItem(t, inventory, "TEA001", 25, 10)
	seedItem(t, inventory, "MILK001", 0.1, 10) // needs 0.2
	seedItem(t, inventory, "SUGAR001", 80, 10)
	svc := NewRecipeService(recipes, inventory)

	result, err := svc.CheckAvailability(context.Background(), "MILKTEA001", 1)
	if err != nil {
		t.Fatalf("CheckAvailability: %v", err)
	}
	if result.CanMake {
		t.Error("CanMake = true, want false")
	}
	if len(result.InsufficientIngredients) != 1 {
		t.Fatalf("got %d insufficient, want 1", len(result.InsufficientIngredients))
	}
	short := result.InsufficientIngredients[0]
	if short.SKU != "MILK001" {
		t.Errorf("shortage SKU = %s, want MILK001", short.SKU)
	}
	if !short.Shortfall.Equal(decimal.NewFromFloat(0.1)) {
		t.Errorf("Shortfall = %s, want 0.1", short.Shortfall)
	}
}

func TestCheckAvailabilityMissingIngredient(t *testing.T) {
	recipes := newFakeRecipeRepo()
	inventory := newFakeInventoryRepo()
	seedMilkTeaRecipe(t, recipes)
	seedItem(t, inventory, "TEA001", 25, 10)
	seedItem(t, inventory, "SUGAR001", 80, 10)
	// MILK001 has no inventory record at all
	svc := NewRecipeService(recipes, inventory)

	result, err := svc.CheckAvailability(context.Background(), "MILKTEA001", 1)
	if err != nil {
		t.Fatalf("CheckAvailability: %v", err)
	}
	if result.CanMake {
		t.Error("CanMake = true, want false")
	}
	if len(result.MissingIngredients) != 1 || result.MissingIngredients[0].SKU != "MILK001" {
		t.Fatalf("missing = %+v, want MILK001", result.MissingIngredients)
	}
	if !result.MissingIngredients[0].Available.IsZero() {
		t.Errorf("missing Available = %s, want 0", result.MissingIngredients[0].Available)
	}
}

func TestCheckAvailabilityIsIdempotent(t *testing.T) {
	recipes := newFakeRecipeRepo()
	inventory := newFakeInventoryRepo()
	seedMilkTeaRecipe(t, recipes)
	seedItem(t, inventory, "TEA001", 25, 10)
	seedItem(t, inventory, "MILK001", 50, 10)
	seedItem(t, inventory, "SUGAR001", 80, 10)
	svc := NewRecipeService(recipes, inventory)

	first, err := svc.CheckAvailability(context.Background(), "MILKTEA001", 3)
	if err != nil {
		t.Fatalf("CheckAvailability: %v", err)
	}
	second, err := svc.CheckAvailability(context.Background(), "MILKTEA001", 3)
	if err != nil {
		t.Fatalf("CheckAvailability: %v", err)
	}
	if first.CanMake != second.CanMake || !first.TotalCost.Equal(second.TotalCost) {
		t.Errorf("results differ across identical checks: %+v vs %+v", first, second)
	}
	// The check must not touch stock
	if !inventory.stock("TEA001").Equal(decimal.NewFromInt(25)) {
		t.Errorf("stock mutated by availability check: %s", inventory.stock("TEA001"))
	}
}

func TestCheckAvailabilityDefaultsQuantityToOne(t *testing.T) {
	recipes := newFakeRecipeRepo()
	inventory := newFakeInventoryRepo()
	seedMilkTeaRecipe(t, recipes)
	seedItem(t, inventory, "TEA001", 25, 10)
	seedItem(t, inventory, "MILK001", 50, 10)
	seedItem(t, inventory, "SUGAR001", 80, 10)
	svc := NewRecipeService(recipes, inventory)

	zero, err := svc.CheckAvailability(context.Background(), "MILKTEA001", 0)
	if err != nil {
		t.Fatalf("CheckAvailability: %v", err)
	}
	one, _ := svc.CheckAvailability(context.Background(), "MILKTEA001", 1)
	if !zero.TotalCost.Equal(one.TotalCost) {
		t.Errorf("quantity 0 cost %s != quantity 1 cost %s", zero.TotalCost, one.TotalCost)
	}
}

func TestCheckAvailabilityUnknownRecipe(t *testing.T) {
	svc := NewRecipeService(newFakeRecipeRepo(), newFakeInventoryRepo())

	_, err := svc.CheckAvailability(context.Background(), "NOPE", 1)
	if !errors.Is(err, ErrRecipeNotFound) {
		t.Fatalf("err = %v, want ErrRecipeNotFound", err)
	}
}

func TestCalculateRecipeCostSkipsMissingItems(t *testing.T) {
	recipes := newFakeRecipeRepo()
	inventory := newFakeInventoryRepo()
	seedMilkTeaRecipe(t, recipes)
	seedItem(t, inventory, "TEA001", 25, 10)
	// MILK001 and SUGAR001 have no inventory records
	svc := NewRecipeService(recipes, inventory)

	cost, err := svc.CalculateRecipeCost(context.Background(), "MILKTEA001")
	if err != nil {
		t.Fatalf("CalculateRecipeCost: %v", err)
	}
	// Only TEA001 contributes: 2.5 * 0.01 = 0.025
	if !cost.Equal(decimal.NewFromFloat(0.025)) {
		t.Errorf("cost = %s, want 0.025", cost)
	}
}

func TestListRecipesByIngredient(t *testing.T) {
	repo := newFakeRecipeRepo()
	seedMilkTeaRecipe(t, repo)
	other := &model.Recipe{
		ProductSKU: "COFFEE001",
		Name:       "Americano",
		Ingredients: []model.RecipeIngredient{
			{RecipeID: "COFFEE001", SKU: "BEANS001", Quantity: decimal.NewFromFloat(0.02), Unit: "kg"},
		},
	}
	if err := repo.Create(context.Background(), other); err != nil {
		t.Fatalf("seed: %v", err)
	}
	svc := NewRecipeService(repo, newFakeInventoryRepo())

	got, err := svc.ListRecipesByIngredient(context.Background(), "MILK001")
	if err != nil {
		t.Fatalf("ListRecipesByIngredient: %v", err)
	}
	if len(got) != 1 || got[0].ProductSKU != "MILKTEA001" {
		t.Errorf("got %+v, want only MILKTEA001", got)
	}
}
