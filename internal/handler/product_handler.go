package handler

import (
	"errors"
	"net/http"
	"strconv"

	"pos-backend/internal/middleware"
	"pos-backend/internal/model"
	"pos-backend/internal/service"
	"pos-backend/pkg/pagination"
	"pos-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	productService service.ProductService
}

// NewProductHandler sets up the routing dependencies for Product endpoints
func NewProductHandler(productService service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// RegisterRoutes binds the endpoints to the gin Engine or RouterGroup
func (h *ProductHandler) RegisterRoutes(router *gin.RouterGroup) {
	products := router.Group("/products")
	{
		products.GET("", middleware.RequireAuth(), h.ListProducts)
		products.GET("/with-recipes", middleware.RequireAuth(), h.ListWithRecipes)
		products.GET("/without-recipes", middleware.RequireAuth(), h.ListWithoutRecipes)
		products.GET("/:sku", middleware.RequireAuth(), h.GetProduct)
		products.GET("/:sku/availability", middleware.RequireAuth(), h.CheckAvailability)

		products.POST("", middleware.RequireRole(model.RoleAdmin), h.AddProduct)
		products.PUT("/:sku", middleware.RequireRole(model.RoleAdmin), h.UpdateProduct)
		products.DELETE("/:sku", middleware.RequireRole(model.RoleAdmin), h.DeleteProduct)
	}
}

// ListProducts handles GET /products with pagination and filters
// @Summary      List products
// @Description  Retrieves a paginated list of sellable products, optionally filtered by search term and category
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        page      query     int     false  "Page number (default 1)"
// @Param        limit     query     int     false  "Number of items per page (default 20)"
// @Param        search    query     string  false  "Match against SKU or name"
// @Param        category  query     string  false  "Filter by category"
// @Success      200       {object}  response.Response{data=object}
// @Failure      500       {object}  response.Response
// @Router       /products [get]
func (h *ProductHandler) ListProducts(c *gin.Context) {
	params := pagination.Parse(c)
	search := c.Query("search")
	category := c.Query("category")

	products, total, err := h.productService.ListProducts(c.Request.Context(), params.Page, params.Limit, search, category)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to fetch products"))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, map[string]interface{}{
		"products": products,
		"total":    total,
		"page":     params.Page,
		"limit":    params.Limit,
	}))
}

// ListWithRecipes handles GET /products/with-recipes
// @Summary      List products with recipes
// @Description  Retrieves active products whose sale consumes recipe ingredients
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=[]model.Product}
// @Failure      500  {object}  response.Response
// @Router       /products/with-recipes [get]
func (h *ProductHandler) ListWithRecipes(c *gin.Context) {
	products, err := h.productService.ListProductsWithRecipes(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to fetch products"))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, products))
}

// ListWithoutRecipes handles GET /products/without-recipes
// @Summary      List simple products
// @Description  Retrieves active products sold without inventory consumption
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=[]model.Product}
// @Failure      500  {object}  response.Response
// @Router       /products/without-recipes [get]
func (h *ProductHandler) ListWithoutRecipes(c *gin.Context) {
	products, err := h.productService.ListProductsWithoutRecipes(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to fetch products"))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, products))
}

// GetProduct handles GET /products/:sku
// @Summary      Get product
// @Description  Fetch a single product by SKU, with its recipe attached when one exists
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        sku  path      string  true  "Product SKU"
// @Success      200  {object}  response.Response{data=service.ProductWithRecipe}
// @Failure      404  {object}  response.Response
// @Router       /products/{sku} [get]
func (h *ProductHandler) GetProduct(c *gin.Context) {
	sku := c.Param("sku")

	product, err := h.productService.GetProductWithRecipe(c.Request.Context(), sku)
	if err != nil {
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, product))
}

// CheckAvailability handles GET /products/:sku/availability
// @Summary      Check product availability
// @Description  Reports whether a product can be made at the requested quantity given current ingredient stock
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        sku       path      string  true   "Product SKU"
// @Param        quantity  query     int     false  "Requested quantity (default 1)"
// @Success      200       {object}  response.Response{data=service.ProductAvailability}
// @Failure      404       {object}  response.Response
// @Router       /products/{sku}/availability [get]
func (h *ProductHandler) CheckAvailability(c *gin.Context) {
	sku := c.Param("sku")
	quantity, _ := strconv.Atoi(c.DefaultQuery("quantity", "1"))

	availability, err := h.productService.CheckProductAvailability(c.Request.Context(), sku, quantity)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, availability))
}

// AddProduct handles POST /products
// @Summary      Add product
// @Description  Creates a new sellable product keyed by SKU
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      service.AddProductRequest  true  "Add Product Payload"
// @Success      201      {object}  response.Response{data=model.Product}
// @Failure      400      {object}  response.Response
// @Router       /products [post]
func (h *ProductHandler) AddProduct(c *gin.Context) {
	var req service.AddProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	product, err := h.productService.AddProduct(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, product))
}

// UpdateProduct handles PUT /products/:sku
// @Summary      Update product
// @Description  Updates a product's details, re-validating its recipe reference
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        sku      path      string                        true  "Product SKU"
// @Param        payload  body      service.UpdateProductRequest  true  "Update Product Payload"
// @Success      200      {object}  response.Response{data=model.Product}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /products/{sku} [put]
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	sku := c.Param("sku")
	var req service.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	product, err := h.productService.UpdateProduct(c.Request.Context(), sku, req)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, err.Error()))
			return
		}
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, product))
}

// DeleteProduct handles DELETE /products/:sku
// @Summary      Delete product
// @Description  Removes a product by SKU
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        sku  path      string  true  "Product SKU"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /products/{sku} [delete]
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	sku := c.Param("sku")

	if err := h.productService.DeleteProduct(c.Request.Context(), sku); err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, err.Error()))
			return
		}
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, "Product deleted successfully"))
}
