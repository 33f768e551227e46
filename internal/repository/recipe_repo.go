package repository

import (
	"context"

	"pos-backend/internal/model"

	"gorm.io/gorm"
)

// RecipeRepository is the data access layer for recipes. A recipe's id is
// the SKU of the product it produces, so lookup by id and lookup by product
// SKU are the same query.
type RecipeRepository interface {
	Create(ctx context.Context, recipe *model.Recipe) error
	Save(ctx context.Context, recipe *model.Recipe) error
	Delete(ctx context.Context, productSKU string) error
	FindByProductSKU(ctx context.Context, productSKU string) (*model.Recipe, error)
	List(ctx context.Context) ([]model.Recipe, error)
	ListByCategory(ctx context.Context, category string) ([]model.Recipe, error)
	ListByIngredient(ctx context.Context, ingredientSKU string) ([]model.Recipe, error)
	ReplaceIngredients(ctx context.Context, productSKU string, ingredients []model.RecipeIngredient) error
}

type recipeRepository struct {
	db *gorm.DB
}

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) Create(ctx context.Context, recipe *model.Recipe) error {
	return GetDB(ctx, r.db).Create(recipe).Error
}

func (r *recipeRepository) Save(ctx context.Context, recipe *model.Recipe) error {
	return GetDB(ctx, r.db).Session(&gorm.Session{FullSaveAssociations: true}).Save(recipe).Error
}

func (r *recipeRepository) Delete(ctx context.Context, productSKU string) error {
	db := GetDB(ctx, r.db)
	if err := db.Where("recipe_id = ?", productSKU).Delete(&model.RecipeIngredient{}).Error; err != nil {
		return err
	}
	return db.Where("product_sku = ?", productSKU).Delete(&model.Recipe{}).Error
}

func (r *recipeRepository) FindByProductSKU(ctx context.Context, productSKU string) (*model.Recipe, error) {
	var recipe model.Recipe
	err := GetDB(ctx, r.db).
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB { return db.Order("position asc") }).
		Where("product_sku = ?", productSKU).
		First(&recipe).Error
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) List(ctx context.Context) ([]model.Recipe, error) {
	var recipes []model.Recipe
	err := GetDB(ctx, r.db).
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB { return db.Order("position asc") }).
		Order("name asc").
		Find(&recipes).Error
	if err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) ListByCategory(ctx context.Context, category string) ([]model.Recipe, error) {
	var recipes []model.Recipe
	err := GetDB(ctx, r.db).
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB { return db.Order("position asc") }).
		Where("category = ?", category).
		Order("name asc").
		Find(&recipes).Error
	if err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) ListByIngredient(ctx context.Context, ingredientSKU string) ([]model.Recipe, error) {
	var recipes []model.Recipe
	err := GetDB(ctx, r.db).
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB { return db.Order("position asc") }).
		Joins("JOIN recipe_ingredients ON recipe_ingredients.recipe_id = recipes.product_sku").
		Where("recipe_ingredients.sku = ?", ingredientSKU).
		Group("recipes.product_sku").
		Find(&recipes).Error
	if err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) ReplaceIngredients(ctx context.Context, productSKU string, ingredients []model.RecipeIngredient) error {
	db := GetDB(ctx, r.db)
	if err := db.Where("recipe_id = ?", productSKU).Delete(&model.RecipeIngredient{}).Error; err != nil {
		return err
	}
	if len(ingredients) == 0 {
		return nil
	}
	return db.Create(&ingredients).Error
}
