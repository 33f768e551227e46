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

type InventoryHandler struct {
	inventoryService service.InventoryService
}

// NewInventoryHandler sets up the routing dependencies for Inventory endpoints
func NewInventoryHandler(inventoryService service.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

// RegisterRoutes binds the endpoints to the gin Engine or RouterGroup
func (h *InventoryHandler) RegisterRoutes(router *gin.RouterGroup) {
	inventory := router.Group("/inventory")
	{
		inventory.GET("", middleware.RequireAuth(), h.ListItems)
		inventory.GET("/low-stock", middleware.RequireAuth(), h.ListLowStock)
		inventory.GET("/:sku", middleware.RequireAuth(), h.GetItem)
		inventory.GET("/:sku/adjustments", middleware.RequireAuth(), h.GetAdjustments)

		inventory.POST("", middleware.RequireRole(model.RoleAdmin), h.AddItem)
		inventory.PUT("/:sku", middleware.RequireRole(model.RoleAdmin), h.UpdateItem)
		inventory.DELETE("/:sku", middleware.RequireRole(model.RoleAdmin), h.DeleteItem)
		inventory.POST("/:sku/adjust", middleware.RequireRole(model.RoleAdmin), h.AdjustStock)
	}
}

// ListItems handles GET /inventory with pagination and filters
// @Summary      List inventory items
// @Description  Retrieves a paginated list of inventory items, optionally filtered by search term and category
// @Tags         inventory
// @Produce      json
// @Security     BearerAuth
// @Param        page      query     int     false  "Page number (default 1)"
// @Param        limit     query     int     false  "Number of items per page (default 20)"
// @Param        search    query     string  false  "Match against SKU or name"
// @Param        category  query     string  false  "Filter by category"
// @Success      200       {object}  response.Response{data=object}
// @Failure      500       {object}  response.Response
// @Router       /inventory [get]
func (h *InventoryHandler) ListItems(c *gin.Context) {
	params := pagination.Parse(c)
	search := c.Query("search")
	category := c.Query("category")

	items, total, err := h.inventoryService.ListItems(c.Request.Context(), params.Page, params.Limit, search, category)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to fetch inventory"))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, map[string]interface{}{
		"items": items,
		"total": total,
		"page":  params.Page,
		"limit": params.Limit,
	}))
}

// ListLowStock handles GET /inventory/low-stock
// @Summary      List low-stock items
// @Description  Retrieves items at or below their minimum stock level, most depleted first
// @Tags         inventory
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=[]model.InventoryItem}
// @Failure      500  {object}  response.Response
// @Router       /inventory/low-stock [get]
func (h *InventoryHandler) ListLowStock(c *gin.Context) {
	items, err := h.inventoryService.ListLowStock(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to fetch low-stock items"))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, items))
}

// GetItem handles GET /inventory/:sku
// @Summary      Get inventory item
// @Description  Fetch a single inventory item by SKU
// @Tags         inventory
// @Produce      json
// @Security     BearerAuth
// @Param        sku  path      string  true  "Item SKU"
// @Success      200  {object}  response.Response{data=model.InventoryItem}
// @Failure      404  {object}  response.Response
// @Router       /inventory/{sku} [get]
func (h *InventoryHandler) GetItem(c *gin.Context) {
	sku := c.Param("sku")

	item, err := h.inventoryService.GetItem(c.Request.Context(), sku)
	if err != nil {
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, item))
}

// AddItem handles POST /inventory
// @Summary      Add inventory item
// @Description  Creates a new inventory item keyed by SKU
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      service.AddInventoryItemRequest  true  "Add Item Payload"
// @Success      201      {object}  response.Response{data=model.InventoryItem}
// @Failure      400      {object}  response.Response
// @Router       /inventory [post]
func (h *InventoryHandler) AddItem(c *gin.Context) {
	var req service.AddInventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	item, err := h.inventoryService.AddItem(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, item))
}

// UpdateItem handles PUT /inventory/:sku
// @Summary      Update inventory item
// @Description  Updates item metadata; stock changes go through the adjust endpoint
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        sku      path      string                              true  "Item SKU"
// @Param        payload  body      service.UpdateInventoryItemRequest  true  "Update Item Payload"
// @Success      200      {object}  response.Response{data=model.InventoryItem}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /inventory/{sku} [put]
func (h *InventoryHandler) UpdateItem(c *gin.Context) {
	sku := c.Param("sku")
	var req service.UpdateInventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	item, err := h.inventoryService.UpdateItem(c.Request.Context(), sku, req)
	if err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, err.Error()))
			return
		}
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, item))
}

// DeleteItem handles DELETE /inventory/:sku
// @Summary      Delete inventory item
// @Description  Removes an inventory item by SKU
// @Tags         inventory
// @Produce      json
// @Security     BearerAuth
// @Param        sku  path      string  true  "Item SKU"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /inventory/{sku} [delete]
func (h *InventoryHandler) DeleteItem(c *gin.Context) {
	sku := c.Param("sku")

	if err := h.inventoryService.DeleteItem(c.Request.Context(), sku); err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, err.Error()))
			return
		}
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, "Item deleted successfully"))
}

// AdjustStock handles POST /inventory/:sku/adjust
// @Summary      Adjust stock level
// @Description  Applies an add, subtract or set operation to an item's stock. Subtract is floored at zero.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        sku      path      string                      true  "Item SKU"
// @Param        payload  body      service.AdjustStockRequest  true  "Adjustment Payload"
// @Success      200      {object}  response.Response{data=object}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /inventory/{sku}/adjust [post]
func (h *InventoryHandler) AdjustStock(c *gin.Context) {
	sku := c.Param("sku")
	var req service.AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	newStock, err := h.inventoryService.AdjustStock(c.Request.Context(), sku, req, c.GetString("userID"))
	if err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, err.Error()))
			return
		}
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, map[string]interface{}{
		"sku":      sku,
		"newStock": newStock,
	}))
}

// GetAdjustments handles GET /inventory/:sku/adjustments
// @Summary      Get adjustment history
// @Description  Retrieves the most recent stock adjustments for an item, newest first
// @Tags         inventory
// @Produce      json
// @Security     BearerAuth
// @Param        sku    path      string  true   "Item SKU"
// @Param        limit  query     int     false  "Max records to return (default 50)"
// @Success      200    {object}  response.Response{data=[]model.InventoryAdjustment}
// @Failure      500    {object}  response.Response
// @Router       /inventory/{sku}/adjustments [get]
func (h *InventoryHandler) GetAdjustments(c *gin.Context) {
	sku := c.Param("sku")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	adjustments, err := h.inventoryService.GetAdjustments(c.Request.Context(), sku, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to fetch adjustments"))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, adjustments))
}
