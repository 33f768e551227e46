package handler

import (
	"errors"
	"net/http"
	"strconv"

	"pos-backend/internal/middleware"
	"pos-backend/internal/model"
	"pos-backend/internal/service"
	"pos-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type RecipeHandler struct {
	recipeService service.RecipeService
}

// NewRecipeHandler sets up the routing dependencies for Recipe endpoints
func NewRecipeHandler(recipeService service.RecipeService) *RecipeHandler {
	return &RecipeHandler{recipeService: recipeService}
}

// RegisterRoutes binds the endpoints to the gin Engine or RouterGroup
func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	{
		recipes.GET("", middleware.RequireAuth(), h.ListRecipes)
		recipes.GET("/by-ingredient/:sku", middleware.RequireAuth(), h.ListByIngredient)
		recipes.GET("/:id", middleware.RequireAuth(), h.GetRecipe)
		recipes.GET("/:id/cost", middleware.RequireAuth(), h.GetRecipeCost)
		recipes.GET("/:id/availability", middleware.RequireAuth(), h.CheckAvailability)

		recipes.POST("", middleware.RequireRole(model.RoleAdmin), h.AddRecipe)
		recipes.PUT("/:id", middleware.RequireRole(model.RoleAdmin), h.UpdateRecipe)
		recipes.DELETE("/:id", middleware.RequireRole(model.RoleAdmin), h.DeleteRecipe)
	}
}

// ListRecipes handles GET /recipes
// @Summary      List recipes
// @Description  Retrieves all recipes with their ingredient lists, optionally filtered by category
// @Tags         recipes
// @Produce      json
// @Security     BearerAuth
// @Param        category  query     string  false  "Filter by category"
// @Success      200       {object}  response.Response{data=[]model.Recipe}
// @Failure      500       {object}  response.Response
// @Router       /recipes [get]
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	category := c.Query("category")

	recipes, err := h.recipeService.ListRecipes(c.Request.Context(), category)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to fetch recipes"))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, recipes))
}

// ListByIngredient handles GET /recipes/by-ingredient/:sku
// @Summary      List recipes using an ingredient
// @Description  Retrieves recipes that consume a given inventory item
// @Tags         recipes
// @Produce      json
// @Security     BearerAuth
// @Param        sku  path      string  true  "Ingredient SKU"
// @Success      200  {object}  response.Response{data=[]model.Recipe}
// @Failure      500  {object}  response.Response
// @Router       /recipes/by-ingredient/{sku} [get]
func (h *RecipeHandler) ListByIngredient(c *gin.Context) {
	sku := c.Param("sku")

	recipes, err := h.recipeService.ListRecipesByIngredient(c.Request.Context(), sku)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to fetch recipes"))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, recipes))
}

// GetRecipe handles GET /recipes/:id
// @Summary      Get recipe
// @Description  Fetch a single recipe by its id, the product SKU it belongs to
// @Tags         recipes
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Recipe ID (product SKU)"
// @Success      200  {object}  response.Response{data=model.Recipe}
// @Failure      404  {object}  response.Response
// @Router       /recipes/{id} [get]
func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id := c.Param("id")

	recipe, err := h.recipeService.GetRecipe(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, recipe))
}

// GetRecipeCost handles GET /recipes/:id/cost
// @Summary      Calculate recipe cost
// @Description  Sums ingredient quantities times inventory cost per unit; missing items contribute zero
// @Tags         recipes
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Recipe ID (product SKU)"
// @Success      200  {object}  response.Response{data=object}
// @Failure      404  {object}  response.Response
// @Router       /recipes/{id}/cost [get]
func (h *RecipeHandler) GetRecipeCost(c *gin.Context) {
	id := c.Param("id")

	cost, err := h.recipeService.CalculateRecipeCost(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrRecipeNotFound) {
			c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, map[string]interface{}{
		"recipeId": id,
		"cost":     cost,
	}))
}

// CheckAvailability handles GET /recipes/:id/availability
// @Summary      Check recipe availability
// @Description  Reports whether the recipe can be made at the requested quantity, listing missing and insufficient ingredients
// @Tags         recipes
// @Produce      json
// @Security     BearerAuth
// @Param        id        path      string  true   "Recipe ID (product SKU)"
// @Param        quantity  query     int     false  "Requested quantity (default 1)"
// @Success      200       {object}  response.Response{data=service.AvailabilityResult}
// @Failure      404       {object}  response.Response
// @Router       /recipes/{id}/availability [get]
func (h *RecipeHandler) CheckAvailability(c *gin.Context) {
	id := c.Param("id")
	quantity, _ := strconv.Atoi(c.DefaultQuery("quantity", "1"))

	result, err := h.recipeService.CheckAvailability(c.Request.Context(), id, quantity)
	if err != nil {
		if errors.Is(err, service.ErrRecipeNotFound) {
			c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, result))
}

// AddRecipe handles POST /recipes
// @Summary      Add recipe
// @Description  Creates a recipe for a product, keyed by the product SKU
// @Tags         recipes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      service.AddRecipeRequest  true  "Add Recipe Payload"
// @Success      201      {object}  response.Response{data=model.Recipe}
// @Failure      400      {object}  response.Response
// @Router       /recipes [post]
func (h *RecipeHandler) AddRecipe(c *gin.Context) {
	var req service.AddRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	recipe, err := h.recipeService.AddRecipe(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, recipe))
}

// UpdateRecipe handles PUT /recipes/:id
// @Summary      Update recipe
// @Description  Updates a recipe's details, replacing its ingredient list when one is provided
// @Tags         recipes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string                       true  "Recipe ID (product SKU)"
// @Param        payload  body      service.UpdateRecipeRequest  true  "Update Recipe Payload"
// @Success      200      {object}  response.Response{data=model.Recipe}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /recipes/{id} [put]
func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	id := c.Param("id")
	var req service.UpdateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	recipe, err := h.recipeService.UpdateRecipe(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, service.ErrRecipeNotFound) {
			c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, err.Error()))
			return
		}
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, recipe))
}

// DeleteRecipe handles DELETE /recipes/:id
// @Summary      Delete recipe
// @Description  Removes a recipe and its ingredient rows
// @Tags         recipes
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Recipe ID (product SKU)"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /recipes/{id} [delete]
func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	id := c.Param("id")

	if err := h.recipeService.DeleteRecipe(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrRecipeNotFound) {
			c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, err.Error()))
			return
		}
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, "Recipe deleted successfully"))
}
