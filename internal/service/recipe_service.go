package service

import (
	"context"
	"errors"
	"fmt"

	"pos-backend/internal/model"
	"pos-backend/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DTOs
type RecipeIngredientRequest struct {
	SKU      string          `json:"sku" binding:"required"`
	Name     string          `json:"name"`
	Quantity decimal.Decimal `json:"quantity" binding:"required"`
	Unit     string          `json:"unit"`
}

type AddRecipeRequest struct {
	Name            string                    `json:"name" binding:"required"`
	ProductSKU      string                    `json:"productSku" binding:"required"`
	ProductName     string                    `json:"productName"`
	Description     string                    `json:"description"`
	Ingredients     []RecipeIngredientRequest `json:"ingredients" binding:"required,min=1,dive"`
	Yield           int                       `json:"yield"`
	PreparationTime int                       `json:"preparationTime"`
	Instructions    string                    `json:"instructions"`
	CostPerUnit     decimal.Decimal           `json:"costPerUnit"`
	Category        string                    `json:"category"`
	Notes           string                    `json:"notes"`
}

type UpdateRecipeRequest struct {
	Name            *string                   `json:"name"`
	ProductName     *string                   `json:"productName"`
	Description     *string                   `json:"description"`
	Ingredients     []RecipeIngredientRequest `json:"ingredients"`
	Yield           *int                      `json:"yield"`
	PreparationTime *int                      `json:"preparationTime"`
	Instructions    *string                   `json:"instructions"`
	CostPerUnit     *decimal.Decimal          `json:"costPerUnit"`
	Status          *string                   `json:"status"`
	Category        *string                   `json:"category"`
	Notes           *string                   `json:"notes"`
}

// IngredientShortage describes one ingredient that blocks making a recipe
type IngredientShortage struct {
	SKU       string          `json:"sku"`
	Name      string          `json:"name"`
	Required  decimal.Decimal `json:"required"`
	Available decimal.Decimal `json:"available"`
	Shortfall decimal.Decimal `json:"shortfall,omitempty"`
}

// AvailabilityResult reports whether a recipe can be made from current
// stock. TotalCost reflects the full theoretical consumption, accumulated
// regardless of sufficiency. The check is advisory: the sale processor does
// not re-verify before consuming.
type AvailabilityResult struct {
	CanMake                 bool                 `json:"canMake"`
	MissingIngredients      []IngredientShortage `json:"missingIngredients"`
	InsufficientIngredients []IngredientShortage `json:"insufficientIngredients"`
	TotalCost               decimal.Decimal      `json:"totalCost"`
}

type RecipeService interface {
	AddRecipe(ctx context.Context, req AddRecipeRequest) (*model.Recipe, error)
	UpdateRecipe(ctx context.Context, recipeID string, req UpdateRecipeRequest) (*model.Recipe, error)
	DeleteRecipe(ctx context.Context, recipeID string) error
	// GetRecipe resolves by recipe id, which is the product SKU.
	GetRecipe(ctx context.Context, recipeID string) (*model.Recipe, error)
	ListRecipes(ctx context.Context, category string) ([]model.Recipe, error)
	ListRecipesByIngredient(ctx context.Context, ingredientSKU string) ([]model.Recipe, error)
	CalculateRecipeCost(ctx context.Context, recipeID string) (decimal.Decimal, error)
	CheckAvailability(ctx context.Context, recipeID string, quantity int) (*AvailabilityResult, error)
}

type recipeService struct {
	recipeRepo    repository.RecipeRepository
	inventoryRepo repository.InventoryRepository
}

func NewRecipeService(recipeRepo repository.RecipeRepository, inventoryRepo repository.InventoryRepository) RecipeService {
	return &recipeService{recipeRepo: recipeRepo, inventoryRepo: inventoryRepo}
}

func buildIngredients(recipeID string, reqs []RecipeIngredientRequest) ([]model.RecipeIngredient, error) {
	ingredients := make([]model.RecipeIngredient, 0, len(reqs))
	for i, ing := range reqs {
		if !ing.Quantity.IsPositive() {
			return nil, fmt.Errorf("ingredient %s: quantity must be positive", ing.SKU)
		}
		ingredients = append(ingredients, model.RecipeIngredient{
			RecipeID: recipeID,
			Position: i,
			SKU:      ing.SKU,
			Name:     ing.Name,
			Quantity: ing.Quantity,
			Unit:     ing.Unit,
		})
	}
	return ingredients, nil
}

func (s *recipeService) AddRecipe(ctx context.Context, req AddRecipeRequest) (*model.Recipe, error) {
	ingredients, err := buildIngredients(req.ProductSKU, req.Ingredients)
	if err != nil {
		return nil, err
	}

	recipe := &model.Recipe{
		ProductSKU:      req.ProductSKU,
		Name:            req.Name,
		ProductName:     req.ProductName,
		Description:     req.Description,
		Ingredients:     ingredients,
		Yield:           req.Yield,
		PreparationTime: req.PreparationTime,
		Instructions:    req.Instructions,
		CostPerUnit:     req.CostPerUnit,
		Status:          "active",
		Category:        req.Category,
		Notes:           req.Notes,
	}
	if recipe.Yield <= 0 {
		recipe.Yield = 1
	}
	if recipe.Category == "" {
		recipe.Category = "Beverage"
	}

	if err := s.recipeRepo.Create(ctx, recipe); err != nil {
		return nil, fmt.Errorf("failed to create recipe: %w", err)
	}
	return recipe, nil
}

func (s *recipeService) UpdateRecipe(ctx context.Context, recipeID string, req UpdateRecipeRequest) (*model.Recipe, error) {
	recipe, err := s.recipeRepo.FindByProductSKU(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrRecipeNotFound, recipeID)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if req.Name != nil {
		recipe.Name = *req.Name
	}
	if req.ProductName != nil {
		recipe.ProductName = *req.ProductName
	}
	if req.Description != nil {
		recipe.Description = *req.Description
	}
	if req.Yield != nil && *req.Yield > 0 {
		recipe.Yield = *req.Yield
	}
	if req.PreparationTime != nil {
		recipe.PreparationTime = *req.PreparationTime
	}
	if req.Instructions != nil {
		recipe.Instructions = *req.Instructions
	}
	if req.CostPerUnit != nil {
		recipe.CostPerUnit = *req.CostPerUnit
	}
	if req.Status != nil {
		recipe.Status = *req.Status
	}
	if req.Category != nil {
		recipe.Category = *req.Category
	}
	if req.Notes != nil {
		recipe.Notes = *req.Notes
	}

	if req.Ingredients != nil {
		ingredients, err := buildIngredients(recipeID, req.Ingredients)
		if err != nil {
			return nil, err
		}
		if err := s.recipeRepo.ReplaceIngredients(ctx, recipeID, ingredients); err != nil {
			return nil, fmt.Errorf("failed to replace ingredients: %w", err)
		}
		recipe.Ingredients = ingredients
	}

	saved := *recipe
	saved.Ingredients = nil // ingredients handled separately above
	if err := s.recipeRepo.Save(ctx, &saved); err != nil {
		return nil, fmt.Errorf("failed to update recipe: %w", err)
	}
	return recipe, nil
}

func (s *recipeService) DeleteRecipe(ctx context.Context, recipeID string) error {
	if _, err := s.recipeRepo.FindByProductSKU(ctx, recipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: %s", ErrRecipeNotFound, recipeID)
		}
		return fmt.Errorf("database error: %w", err)
	}
	return s.recipeRepo.Delete(ctx, recipeID)
}

func (s *recipeService) GetRecipe(ctx context.Context, recipeID string) (*model.Recipe, error) {
	recipe, err := s.recipeRepo.FindByProductSKU(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrRecipeNotFound, recipeID)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return recipe, nil
}

func (s *recipeService) ListRecipes(ctx context.Context, category string) ([]model.Recipe, error) {
	if category != "" {
		return s.recipeRepo.ListByCategory(ctx, category)
	}
	return s.recipeRepo.List(ctx)
}

func (s *recipeService) ListRecipesByIngredient(ctx context.Context, ingredientSKU string) ([]model.Recipe, error) {
	return s.recipeRepo.ListByIngredient(ctx, ingredientSKU)
}

// CalculateRecipeCost totals the ingredient cost of one recipe execution at
// current inventory unit costs. Ingredients with no inventory record
// contribute nothing.
func (s *recipeService) CalculateRecipeCost(ctx context.Context, recipeID string) (decimal.Decimal, error) {
	recipe, err := s.GetRecipe(ctx, recipeID)
	if err != nil {
		return decimal.Zero, err
	}

	totalCost := decimal.Zero
	for _, ingredient := range recipe.Ingredients {
		item, err := s.inventoryRepo.FindBySKU(ctx, ingredient.SKU)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return decimal.Zero, fmt.Errorf("database error: %w", err)
		}
		totalCost = totalCost.Add(item.CostPerUnit.Mul(ingredient.Quantity))
	}
	return totalCost, nil
}

func (s *recipeService) CheckAvailability(ctx context.Context, recipeID string, quantity int) (*AvailabilityResult, error) {
	if quantity <= 0 {
		quantity = 1
	}

	recipe, err := s.GetRecipe(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	qty := decimal.NewFromInt(int64(quantity))
	result := &AvailabilityResult{
		CanMake:                 true,
		MissingIngredients:      []IngredientShortage{},
		InsufficientIngredients: []IngredientShortage{},
		TotalCost:               decimal.Zero,
	}

	for _, ingredient := range recipe.Ingredients {
		required := ingredient.Quantity.Mul(qty)

		item, err := s.inventoryRepo.FindBySKU(ctx, ingredient.SKU)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				result.CanMake = false
				result.MissingIngredients = append(result.MissingIngredients, IngredientShortage{
					SKU:       ingredient.SKU,
					Name:      ingredient.Name,
					Required:  required,
					Available: decimal.Zero,
				})
				continue
			}
			return nil, fmt.Errorf("database error: %w", err)
		}

		available := item.CurrentStock
		if available.LessThan(required) {
			result.CanMake = false
			result.InsufficientIngredients = append(result.InsufficientIngredients, IngredientShortage{
				SKU:       ingredient.SKU,
				Name:      ingredient.Name,
				Required:  required,
				Available: available,
				Shortfall: required.Sub(available),
			})
		}

		// Cost reflects full theoretical consumption even when short
		result.TotalCost = result.TotalCost.Add(item.CostPerUnit.Mul(required))
	}

	return result, nil
}
