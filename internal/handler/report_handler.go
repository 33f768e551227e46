package handler

import (
	"net/http"
	"strconv"
	"time"

	"pos-backend/internal/middleware"
	"pos-backend/internal/model"
	"pos-backend/internal/service"
	"pos-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	reportService service.ReportService
}

// NewReportHandler sets up the routing dependencies for Report endpoints
func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// RegisterRoutes binds the endpoints to the gin Engine or RouterGroup.
// Reports are admin-only.
func (h *ReportHandler) RegisterRoutes(router *gin.RouterGroup) {
	reports := router.Group("/reports", middleware.RequireRole(model.RoleAdmin))
	{
		reports.GET("/today", h.TodaySummary)
		reports.GET("/recent", h.RecentTransactions)
		reports.GET("/top-products", h.TopProducts)
		reports.GET("/consumption", h.Consumption)
		reports.GET("/sales", h.SalesByDateRange)
	}
}

// TodaySummary handles GET /reports/today
// @Summary      Today's sales summary
// @Description  Aggregates total revenue, transaction count and average transaction for sales since local midnight
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=model.SalesSummary}
// @Failure      500  {object}  response.Response
// @Router       /reports/today [get]
func (h *ReportHandler) TodaySummary(c *gin.Context) {
	summary, err := h.reportService.TodaySummary(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to build summary"))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, summary))
}

// RecentTransactions handles GET /reports/recent
// @Summary      Recent transactions
// @Description  Retrieves the newest sales with their line items for the dashboard feed
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query     int  false  "Max sales to return (default 10)"
// @Success      200    {object}  response.Response{data=[]model.Sale}
// @Failure      500    {object}  response.Response
// @Router       /reports/recent [get]
func (h *ReportHandler) RecentTransactions(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	sales, err := h.reportService.RecentTransactions(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to fetch transactions"))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, sales))
}

// TopProducts handles GET /reports/top-products
// @Summary      Top selling products
// @Description  Ranks products by revenue over a named date range
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query     int     false  "Max products to return (default 10)"
// @Param        range  query     string  false  "Date range: today, week or month (default month)"
// @Success      200    {object}  response.Response{data=[]model.ProductRanking}
// @Failure      500    {object}  response.Response
// @Router       /reports/top-products [get]
func (h *ReportHandler) TopProducts(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	dateRange := c.DefaultQuery("range", "month")

	rankings, err := h.reportService.TopSellingProducts(c.Request.Context(), limit, dateRange)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to build ranking"))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, rankings))
}

// Consumption handles GET /reports/consumption
// @Summary      Ingredient consumption report
// @Description  Totals ingredient quantities consumed by sales over a named date range, costed at current inventory prices
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        range  query     string  false  "Date range: today, week or month (default month)"
// @Success      200    {object}  response.Response{data=[]model.IngredientConsumption}
// @Failure      500    {object}  response.Response
// @Router       /reports/consumption [get]
func (h *ReportHandler) Consumption(c *gin.Context) {
	dateRange := c.DefaultQuery("range", "month")

	report, err := h.reportService.ConsumptionReport(c.Request.Context(), dateRange)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to build consumption report"))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, report))
}

// SalesByDateRange handles GET /reports/sales
// @Summary      Sales by date range
// @Description  Retrieves full sale records between two dates (RFC 3339 or YYYY-MM-DD)
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        start  query     string  true  "Range start"
// @Param        end    query     string  true  "Range end"
// @Success      200    {object}  response.Response{data=[]model.Sale}
// @Failure      400    {object}  response.Response
// @Failure      500    {object}  response.Response
// @Router       /reports/sales [get]
func (h *ReportHandler) SalesByDateRange(c *gin.Context) {
	start, err := parseDateParam(c.Query("start"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid start date"))
		return
	}
	end, err := parseDateParam(c.Query("end"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid end date"))
		return
	}

	sales, err := h.reportService.SalesByDateRange(c.Request.Context(), start, end)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to fetch sales"))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, sales))
}

// parseDateParam accepts RFC 3339 timestamps or bare YYYY-MM-DD dates.
func parseDateParam(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02", value, time.Local)
}
