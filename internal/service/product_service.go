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

// DTOs
type AddProductRequest struct {
	SKU             string          `json:"sku" binding:"required"`
	Name            string          `json:"name" binding:"required"`
	Description     string          `json:"description"`
	Price           decimal.Decimal `json:"price" binding:"required"`
	Cost            decimal.Decimal `json:"cost"`
	Category        string          `json:"category"`
	Subcategory     string          `json:"subcategory"`
	HasRecipe       bool            `json:"hasRecipe"`
	RecipeID        *string         `json:"recipeId"`
	ImageURL        string          `json:"imageUrl"`
	PreparationTime int             `json:"preparationTime"`
	Tags            string          `json:"tags"`
	Notes           string          `json:"notes"`
}

type UpdateProductRequest struct {
	Name            *string          `json:"name"`
	Description     *string          `json:"description"`
	Price           *decimal.Decimal `json:"price"`
	Cost            *decimal.Decimal `json:"cost"`
	Category        *string          `json:"category"`
	Subcategory     *string          `json:"subcategory"`
	Status          *string          `json:"status"`
	HasRecipe       *bool            `json:"hasRecipe"`
	RecipeID        *string          `json:"recipeId"`
	ImageURL        *string          `json:"imageUrl"`
	PreparationTime *int             `json:"preparationTime"`
	Tags            *string          `json:"tags"`
	Notes           *string          `json:"notes"`
}

// ProductAvailability is the product-level view over the recipe
// availability check. Products without a recipe are always available.
type ProductAvailability struct {
	Available               bool                 `json:"available"`
	CanMake                 int                  `json:"canMake"`
	Reason                  string               `json:"reason"`
	MissingIngredients      []IngredientShortage `json:"missingIngredients,omitempty"`
	InsufficientIngredients []IngredientShortage `json:"insufficientIngredients,omitempty"`
	TotalCost               decimal.Decimal      `json:"totalCost"`
}

// ProductWithRecipe bundles a product with its resolved recipe, if any
type ProductWithRecipe struct {
	model.Product
	Recipe *model.Recipe `json:"recipe,omitempty"`
}

type ProductService interface {
	AddProduct(ctx context.Context, req AddProductRequest) (*model.Product, error)
	UpdateProduct(ctx context.Context, sku string, req UpdateProductRequest) (*model.Product, error)
	DeleteProduct(ctx context.Context, sku string) error
	GetProduct(ctx context.Context, sku string) (*model.Product, error)
	GetProductWithRecipe(ctx context.Context, sku string) (*ProductWithRecipe, error)
	ListProducts(ctx context.Context, page, limit int, search, category string) ([]model.Product, int64, error)
	ListProductsWithRecipes(ctx context.Context) ([]model.Product, error)
	ListProductsWithoutRecipes(ctx context.Context) ([]model.Product, error)
	CheckProductAvailability(ctx context.Context, sku string, quantity int) (*ProductAvailability, error)
}

type productService struct {
	productRepo   repository.ProductRepository
	recipeService RecipeService
	hub           *ws.Hub
	logger        *logrus.Logger
}

func NewProductService(
	productRepo repository.ProductRepository,
	recipeService RecipeService,
	hub *ws.Hub,
	logger *logrus.Logger,
) ProductService {
	return &productService{
		productRepo:   productRepo,
		recipeService: recipeService,
		hub:           hub,
		logger:        logger,
	}
}

// validateRecipeRef enforces the catalog invariant: hasRecipe implies the
// recipe id resolves to a recipe whose product SKU matches this product.
func (s *productService) validateRecipeRef(ctx context.Context, productSKU string, hasRecipe bool, recipeID *string) error {
	if !hasRecipe {
		return nil
	}
	if recipeID == nil || *recipeID == "" {
		return errors.New("recipeId is required when hasRecipe is true")
	}
	recipe, err := s.recipeService.GetRecipe(ctx, *recipeID)
	if err != nil {
		return err
	}
	if recipe.ProductSKU != productSKU {
		return fmt.Errorf("recipe %s belongs to product %s, not %s", *recipeID, recipe.ProductSKU, productSKU)
	}
	return nil
}

func (s *productService) AddProduct(ctx context.Context, req AddProductRequest) (*model.Product, error) {
	if req.Price.IsNegative() {
		return nil, errors.New("price must not be negative")
	}
	if err := s.validateRecipeRef(ctx, req.SKU, req.HasRecipe, req.RecipeID); err != nil {
		return nil, err
	}

	product := &model.Product{
		SKU:             req.SKU,
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		Cost:            req.Cost,
		Category:        req.Category,
		Subcategory:     req.Subcategory,
		Status:          model.ProductStatusActive,
		HasRecipe:       req.HasRecipe,
		RecipeID:        req.RecipeID,
		ImageURL:        req.ImageURL,
		PreparationTime: req.PreparationTime,
		Tags:            req.Tags,
		Notes:           req.Notes,
	}
	if product.Category == "" {
		product.Category = "Beverage"
	}
	if !product.HasRecipe {
		product.RecipeID = nil
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.broadcast("product.added", product)
	return product, nil
}

func (s *productService) UpdateProduct(ctx context.Context, sku string, req UpdateProductRequest) (*model.Product, error) {
	product, err := s.productRepo.FindBySKU(ctx, sku)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrProductNotFound, sku)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		if req.Price.IsNegative() {
			return nil, errors.New("price must not be negative")
		}
		product.Price = *req.Price
	}
	if req.Cost != nil {
		product.Cost = *req.Cost
	}
	if req.Category != nil {
		product.Category = *req.Category
	}
	if req.Subcategory != nil {
		product.Subcategory = *req.Subcategory
	}
	if req.Status != nil {
		product.Status = *req.Status
	}
	if req.HasRecipe != nil {
		product.HasRecipe = *req.HasRecipe
	}
	if req.RecipeID != nil {
		product.RecipeID = req.RecipeID
	}
	if req.ImageURL != nil {
		product.ImageURL = *req.ImageURL
	}
	if req.PreparationTime != nil {
		product.PreparationTime = *req.PreparationTime
	}
	if req.Tags != nil {
		product.Tags = *req.Tags
	}
	if req.Notes != nil {
		product.Notes = *req.Notes
	}

	if err := s.validateRecipeRef(ctx, product.SKU, product.HasRecipe, product.RecipeID); err != nil {
		return nil, err
	}
	if !product.HasRecipe {
		product.RecipeID = nil
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	s.broadcast("product.updated", product)
	return product, nil
}

func (s *productService) DeleteProduct(ctx context.Context, sku string) error {
	if _, err := s.productRepo.FindBySKU(ctx, sku); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: %s", ErrProductNotFound, sku)
		}
		return fmt.Errorf("database error: %w", err)
	}
	if err := s.productRepo.Delete(ctx, sku); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	s.broadcast("product.deleted", map[string]string{"sku": sku})
	return nil
}

func (s *productService) GetProduct(ctx context.Context, sku string) (*model.Product, error) {
	product, err := s.productRepo.FindBySKU(ctx, sku)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrProductNotFound, sku)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return product, nil
}

func (s *productService) GetProductWithRecipe(ctx context.Context, sku string) (*ProductWithRecipe, error) {
	product, err := s.GetProduct(ctx, sku)
	if err != nil {
		return nil, err
	}

	res := &ProductWithRecipe{Product: *product}
	if product.HasRecipe && product.RecipeID != nil {
		recipe, err := s.recipeService.GetRecipe(ctx, *product.RecipeID)
		if err == nil {
			res.Recipe = recipe
		} else if !errors.Is(err, ErrRecipeNotFound) {
			return nil, err
		}
	}
	return res, nil
}

func (s *productService) ListProducts(ctx context.Context, page, limit int, search, category string) ([]model.Product, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}
	return s.productRepo.List(ctx, page, limit, search, category)
}

func (s *productService) ListProductsWithRecipes(ctx context.Context) ([]model.Product, error) {
	return s.productRepo.ListWithRecipes(ctx)
}

func (s *productService) ListProductsWithoutRecipes(ctx context.Context) ([]model.Product, error) {
	return s.productRepo.ListWithoutRecipes(ctx)
}

func (s *productService) CheckProductAvailability(ctx context.Context, sku string, quantity int) (*ProductAvailability, error) {
	if quantity <= 0 {
		quantity = 1
	}

	product, err := s.GetProduct(ctx, sku)
	if err != nil {
		return nil, err
	}

	if !product.HasRecipe || product.RecipeID == nil {
		return &ProductAvailability{
			Available: true,
			CanMake:   quantity,
			Reason:    "Simple product - no recipe required",
			TotalCost: decimal.Zero,
		}, nil
	}

	availability, err := s.recipeService.CheckAvailability(ctx, *product.RecipeID, quantity)
	if err != nil {
		if errors.Is(err, ErrRecipeNotFound) {
			return &ProductAvailability{
				Available: false,
				CanMake:   0,
				Reason:    "Recipe not found",
				TotalCost: decimal.Zero,
			}, nil
		}
		return nil, err
	}

	res := &ProductAvailability{
		Available:               availability.CanMake,
		MissingIngredients:      availability.MissingIngredients,
		InsufficientIngredients: availability.InsufficientIngredients,
		TotalCost:               availability.TotalCost,
	}
	if availability.CanMake {
		res.CanMake = quantity
		res.Reason = "All ingredients available"
	} else {
		res.Reason = "Insufficient ingredients"
	}
	return res, nil
}

func (s *productService) broadcast(event string, data interface{}) {
	if s.hub == nil {
		return
	}
	payload, err := json.Marshal(InventoryEvent{Event: event, Data: data})
	if err != nil {
		s.logger.WithError(err).Warn("failed to marshal product event")
		return
	}
	s.hub.Publish(payload)
}
