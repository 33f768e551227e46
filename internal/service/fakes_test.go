package service

import (
	"context"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"pos-backend/internal/model"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// In-memory repository fakes. They honor the same not-found contract as the
// gorm-backed implementations (gorm.ErrRecordNotFound) so the services'
// error mapping is exercised for real.

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

type fakeInventoryRepo struct {
	mu    sync.Mutex
	items map[string]*model.InventoryItem

	updateStockErr error
}

func newFakeInventoryRepo() *fakeInventoryRepo {
	return &fakeInventoryRepo{items: make(map[string]*model.InventoryItem)}
}

func (r *fakeInventoryRepo) snapshot() map[string]model.InventoryItem {
	r.mu.Lock()
	defer r.mu.Unlock()
	snap := make(map[string]model.InventoryItem, len(r.items))
	for sku, item := range r.items {
		snap[sku] = *item
	}
	return snap
}

func (r *fakeInventoryRepo) restore(snap map[string]model.InventoryItem) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = make(map[string]*model.InventoryItem, len(snap))
	for sku, item := range snap {
		copied := item
		r.items[sku] = &copied
	}
}

func (r *fakeInventoryRepo) Create(ctx context.Context, item *model.InventoryItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *item
	r.items[item.SKU] = &copied
	return nil
}

func (r *fakeInventoryRepo) Save(ctx context.Context, item *model.InventoryItem) error {
	return r.Create(ctx, item)
}

func (r *fakeInventoryRepo) Delete(ctx context.Context, sku string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, sku)
	return nil
}

func (r *fakeInventoryRepo) FindBySKU(ctx context.Context, sku string) (*model.InventoryItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[sku]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *item
	return &copied, nil
}

func (r *fakeInventoryRepo) FindBySKUForUpdate(ctx context.Context, sku string) (*model.InventoryItem, error) {
	return r.FindBySKU(ctx, sku)
}

func (r *fakeInventoryRepo) List(ctx context.Context, page, limit int, search, category string) ([]model.InventoryItem, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.InventoryItem
	for _, item := range r.items {
		if category != "" && item.Category != category {
			continue
		}
		if search != "" && !strings.Contains(item.SKU, search) && !strings.Contains(item.Name, search) {
			continue
		}
		out = append(out, *item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SKU < out[j].SKU })
	return out, int64(len(out)), nil
}

func (r *fakeInventoryRepo) ListLowStock(ctx context.Context) ([]model.InventoryItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.InventoryItem
	for _, item := range r.items {
		if item.Status == model.ItemStatusLowStock {
			out = append(out, *item)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CurrentStock.LessThan(out[j].CurrentStock)
	})
	return out, nil
}

func (r *fakeInventoryRepo) UpdateStock(ctx context.Context, sku string, stock decimal.Decimal, status string) error {
	if r.updateStockErr != nil {
		return r.updateStockErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[sku]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	item.CurrentStock = stock
	item.Status = status
	return nil
}

func (r *fakeInventoryRepo) stock(sku string) decimal.Decimal {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.items[sku].CurrentStock
}

type fakeAdjustmentRepo struct {
	mu          sync.Mutex
	adjustments []model.InventoryAdjustment

	createErr error
}

func newFakeAdjustmentRepo() *fakeAdjustmentRepo {
	return &fakeAdjustmentRepo{}
}

func (r *fakeAdjustmentRepo) Create(ctx context.Context, adj *model.InventoryAdjustment) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.adjustments = append(r.adjustments, *adj)
	return nil
}

func (r *fakeAdjustmentRepo) List(ctx context.Context, sku string, limit int) ([]model.InventoryAdjustment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.InventoryAdjustment
	for i := len(r.adjustments) - 1; i >= 0; i-- {
		if sku != "" && r.adjustments[i].SKU != sku {
			continue
		}
		out = append(out, r.adjustments[i])
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}

type fakeRecipeRepo struct {
	mu      sync.Mutex
	recipes map[string]*model.Recipe
}

func newFakeRecipeRepo() *fakeRecipeRepo {
	return &fakeRecipeRepo{recipes: make(map[string]*model.Recipe)}
}

func (r *fakeRecipeRepo) Create(ctx context.Context, recipe *model.Recipe) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *recipe
	r.recipes[recipe.ProductSKU] = &copied
	return nil
}

func (r *fakeRecipeRepo) Save(ctx context.Context, recipe *model.Recipe) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.recipes[recipe.ProductSKU]
	if !ok {
		copied := *recipe
		r.recipes[recipe.ProductSKU] = &copied
		return nil
	}
	ingredients := existing.Ingredients
	copied := *recipe
	if copied.Ingredients == nil {
		copied.Ingredients = ingredients
	}
	r.recipes[recipe.ProductSKU] = &copied
	return nil
}

func (r *fakeRecipeRepo) Delete(ctx context.Context, productSKU string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.recipes, productSKU)
	return nil
}

func (r *fakeRecipeRepo) FindByProductSKU(ctx context.Context, productSKU string) (*model.Recipe, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	recipe, ok := r.recipes[productSKU]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *recipe
	copied.Ingredients = append([]model.RecipeIngredient(nil), recipe.Ingredients...)
	return &copied, nil
}

func (r *fakeRecipeRepo) List(ctx context.Context) ([]model.Recipe, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Recipe
	for _, recipe := range r.recipes {
		out = append(out, *recipe)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ProductSKU < out[j].ProductSKU })
	return out, nil
}

func (r *fakeRecipeRepo) ListByCategory(ctx context.Context, category string) ([]model.Recipe, error) {
	all, _ := r.List(ctx)
	var out []model.Recipe
	for _, recipe := range all {
		if recipe.Category == category {
			out = append(out, recipe)
		}
	}
	return out, nil
}

func (r *fakeRecipeRepo) ListByIngredient(ctx context.Context, ingredientSKU string) ([]model.Recipe, error) {
	all, _ := r.List(ctx)
	var out []model.Recipe
	for _, recipe := range all {
		for _, ing := range recipe.Ingredients {
			if ing.SKU == ingredientSKU {
				out = append(out, recipe)
				break
			}
		}
	}
	return out, nil
}

func (r *fakeRecipeRepo) ReplaceIngredients(ctx context.Context, productSKU string, ingredients []model.RecipeIngredient) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	recipe, ok := r.recipes[productSKU]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	recipe.Ingredients = append([]model.RecipeIngredient(nil), ingredients...)
	return nil
}

type fakeProductRepo struct {
	mu       sync.Mutex
	products map[string]*model.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[string]*model.Product)}
}

func (r *fakeProductRepo) Create(ctx context.Context, product *model.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *product
	r.products[product.SKU] = &copied
	return nil
}

func (r *fakeProductRepo) Save(ctx context.Context, product *model.Product) error {
	return r.Create(ctx, product)
}

func (r *fakeProductRepo) Delete(ctx context.Context, sku string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.products, sku)
	return nil
}

func (r *fakeProductRepo) FindBySKU(ctx context.Context, sku string) (*model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	product, ok := r.products[sku]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *product
	return &copied, nil
}

func (r *fakeProductRepo) List(ctx context.Context, page, limit int, search, category string) ([]model.Product, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Product
	for _, product := range r.products {
		if category != "" && product.Category != category {
			continue
		}
		if search != "" && !strings.Contains(product.SKU, search) && !strings.Contains(product.Name, search) {
			continue
		}
		out = append(out, *product)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SKU < out[j].SKU })
	return out, int64(len(out)), nil
}

func (r *fakeProductRepo) ListWithRecipes(ctx context.Context) ([]model.Product, error) {
	all, _, _ := r.List(ctx, 1, 0, "", "")
	var out []model.Product
	for _, product := range all {
		if product.HasRecipe && product.Status == model.ProductStatusActive {
			out = append(out, product)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) ListWithoutRecipes(ctx context.Context) ([]model.Product, error) {
	all, _, _ := r.List(ctx, 1, 0, "", "")
	var out []model.Product
	for _, product := range all {
		if !product.HasRecipe && product.Status == model.ProductStatusActive {
			out = append(out, product)
		}
	}
	return out, nil
}

type fakeSaleRepo struct {
	mu    sync.Mutex
	sales []model.Sale
}

func newFakeSaleRepo() *fakeSaleRepo {
	return &fakeSaleRepo{}
}

func (r *fakeSaleRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sales)
}

func (r *fakeSaleRepo) Create(ctx context.Context, sale *model.Sale) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sales = append(r.sales, *sale)
	return nil
}

func (r *fakeSaleRepo) FindBySaleID(ctx context.Context, saleID string) (*model.Sale, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(r.sales) - 1; i >= 0; i-- {
		if r.sales[i].SaleID == saleID {
			copied := r.sales[i]
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeSaleRepo) ListSince(ctx context.Context, since time.Time, limit int) ([]model.Sale, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Sale
	for _, sale := range r.sales {
		if !sale.CreatedAt.Before(since) {
			out = append(out, sale)
		}
	}
	return out, nil
}

func (r *fakeSaleRepo) ListByDateRange(ctx context.Context, start, end time.Time) ([]model.Sale, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Sale
	for _, sale := range r.sales {
		if !sale.CreatedAt.Before(start) && !sale.CreatedAt.After(end) {
			out = append(out, sale)
		}
	}
	return out, nil
}

func (r *fakeSaleRepo) ListRecent(ctx context.Context, limit int) ([]model.Sale, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := append([]model.Sale(nil), r.sales...)
	if limit > 0 && len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out, nil
}

// fakeTxManager serializes transactions the way row locks do in postgres and
// restores inventory state when the function fails, mimicking rollback of
// the stock decrements.
type fakeTxManager struct {
	mu        sync.Mutex
	inventory *fakeInventoryRepo
}

func newFakeTxManager(inventory *fakeInventoryRepo) *fakeTxManager {
	return &fakeTxManager{inventory: inventory}
}

func (t *fakeTxManager) RunInTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	snap := t.inventory.snapshot()
	if err := fn(ctx); err != nil {
		t.inventory.restore(snap)
		return err
	}
	return nil
}
