package handler

import (
	"net/http"
	"strconv"

	"pos-backend/internal/middleware"
	"pos-backend/internal/service"
	"pos-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type SaleHandler struct {
	saleService service.SaleService
}

// NewSaleHandler sets up the routing dependencies for Sale endpoints
func NewSaleHandler(saleService service.SaleService) *SaleHandler {
	return &SaleHandler{saleService: saleService}
}

// RegisterRoutes binds the endpoints to the gin Engine or RouterGroup.
// Both roles may record and browse sales; there is no update or delete.
func (h *SaleHandler) RegisterRoutes(router *gin.RouterGroup) {
	sales := router.Group("/sales", middleware.RequireAuth())
	{
		sales.POST("", h.ProcessSale)
		sales.GET("", h.ListSales)
		sales.GET("/:saleId", h.GetSale)
	}
}

// ProcessSale handles POST /sales
// @Summary      Process a sale
// @Description  Records a sale and consumes recipe ingredients from inventory in one batch. If the batch fails, the sale is recorded alone and marked degraded.
// @Tags         sales
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      service.ProcessSaleRequest  true  "Sale Payload"
// @Success      201      {object}  response.Response{data=service.SaleResult}
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /sales [post]
func (h *SaleHandler) ProcessSale(c *gin.Context) {
	var req service.ProcessSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	result, err := h.saleService.ProcessSale(c.Request.Context(), c.GetString("userID"), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, result))
}

// ListSales handles GET /sales
// @Summary      List sales
// @Description  Retrieves sales for a named date range (today, week, month) or the most recent sales when no range is given
// @Tags         sales
// @Produce      json
// @Security     BearerAuth
// @Param        range  query     string  false  "Date range: today, week or month"
// @Param        limit  query     int     false  "Max records when no range is given (default 50)"
// @Success      200    {object}  response.Response{data=[]model.Sale}
// @Failure      500    {object}  response.Response
// @Router       /sales [get]
func (h *SaleHandler) ListSales(c *gin.Context) {
	dateRange := c.Query("range")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	sales, err := h.saleService.ListSales(c.Request.Context(), dateRange, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to fetch sales"))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, sales))
}

// GetSale handles GET /sales/:saleId
// @Summary      Get sale
// @Description  Fetch a single sale with its line items and consumption records
// @Tags         sales
// @Produce      json
// @Security     BearerAuth
// @Param        saleId  path      string  true  "Sale ID"
// @Success      200     {object}  response.Response{data=model.Sale}
// @Failure      404     {object}  response.Response
// @Router       /sales/{saleId} [get]
func (h *SaleHandler) GetSale(c *gin.Context) {
	saleID := c.Param("saleId")

	sale, err := h.saleService.GetSale(c.Request.Context(), saleID)
	if err != nil {
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, sale))
}
