package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/recipebox/backend/internal/middleware"
	"github.com/recipebox/backend/internal/model"
	"github.com/recipebox/backend/internal/service"
)

// RecipeHandler exposes the recipe CRUD and aggregation endpoints.
type RecipeHandler struct {
	recipes    *service.RecipeService
	logger     *zap.Logger
	csrfSecret string
}

// NewRecipeHandler creates a new RecipeHandler.
func NewRecipeHandler(recipes *service.RecipeService, logger *zap.Logger, csrfSecret string) *RecipeHandler {
	return &RecipeHandler{
		recipes:    recipes,
		logger:     logger,
		csrfSecret: csrfSecret,
	}
}

// Index returns the distinct categories plus a fresh anti-forgery token
// for the client to use on mutating requests.
func (h *RecipeHandler) Index(c *gin.Context) {
	categories, err := h.recipes.ListCategories(c.Request.Context())
	if err != nil {
		h.internalError(c, "Failed to load categories", err)
		return
	}

	c.JSON(http.StatusOK, IndexResponse{
		Categories: categories,
		CSRFToken:  middleware.GenerateCSRFToken(h.csrfSecret),
	})
}

// CreateRecipe validates the payload, collecting every problem before
// answering, and persists the recipe on success.
func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	var payload map[string]interface{}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, StatusResponse{
			Status:  "error",
			Message: "Invalid request format",
		})
		return
	}

	payload = service.SanitizeInput(payload).(map[string]interface{})

	if errs := service.ValidateRecipe(payload); len(errs) > 0 {
		h.logger.Info("recipe validation failed", zap.Strings("errors", errs))
		c.JSON(http.StatusBadRequest, StatusResponse{
			Status:  "error",
			Message: "Validation failed",
			Errors:  errs,
		})
		return
	}

	recipe, err := h.recipes.CreateRecipe(c.Request.Context(), service.RecipeFromPayload(payload))
	if err != nil {
		h.internalError(c, "Failed to add recipe", err)
		return
	}

	h.logger.Info("recipe created", zap.Int64("recipe_id", recipe.ID))
	c.JSON(http.StatusOK, StatusResponse{
		Status:   "success",
		Message:  "Recipe added successfully",
		RecipeID: recipe.ID,
	})
}

// ListRecipes returns recipes, optionally restricted to categories with
// AND/OR semantics (`?category=a&category=b&filter_type=AND`).
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	categories := c.QueryArray("category")
	mode := service.ParseFilterMode(c.Query("filter_type"))

	recipes, err := h.recipes.ListRecipes(c.Request.Context(), categories, mode)
	if err != nil {
		h.internalError(c, "Failed to fetch recipes", err)
		return
	}

	out := make([]model.RecipeResponse, 0, len(recipes))
	for i := range recipes {
		out = append(out, recipes[i].ToResponse())
	}
	c.JSON(http.StatusOK, out)
}

// GetRecipe returns a single recipe by id.
func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, StatusResponse{
			Status:  "error",
			Message: "Invalid recipe id",
		})
		return
	}

	recipe, err := h.recipes.GetRecipe(c.Request.Context(), id)
	if err != nil {
		h.recipeError(c, err, "Failed to fetch recipe")
		return
	}

	c.JSON(http.StatusOK, recipe.ToResponse())
}

// UpdateRecipe applies a partial update; only the supplied fields are
// re-validated and changed.
func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, StatusResponse{
			Status:  "error",
			Message: "Invalid recipe id",
		})
		return
	}

	var payload map[string]interface{}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, StatusResponse{
			Status:  "error",
			Message: "Invalid request format",
		})
		return
	}

	payload = service.SanitizeInput(payload).(map[string]interface{})

	if errs := service.ValidateRecipeUpdate(payload); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, StatusResponse{
			Status:  "error",
			Message: "Validation failed",
			Errors:  errs,
		})
		return
	}

	recipe, err := h.recipes.UpdateRecipe(c.Request.Context(), id, payload)
	if err != nil {
		h.recipeError(c, err, "Failed to update recipe")
		return
	}

	c.JSON(http.StatusOK, StatusResponse{
		Status:   "success",
		Message:  "Recipe updated successfully",
		RecipeID: recipe.ID,
	})
}

// CalculateIngredients aggregates scaled ingredient totals across the
// selected recipes.
func (h *RecipeHandler) CalculateIngredients(c *gin.Context) {
	var req CalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Recipes == nil {
		c.JSON(http.StatusBadRequest, StatusResponse{
			Status:  "error",
			Message: "Invalid request format",
		})
		return
	}

	ingredients, err := h.recipes.AggregateIngredients(c.Request.Context(), req.Recipes)
	if err != nil {
		var invalid *service.InvalidServingsError
		if errors.As(err, &invalid) {
			c.JSON(http.StatusBadRequest, StatusResponse{
				Status:  "error",
				Message: invalid.Error(),
			})
			return
		}
		h.recipeError(c, err, "Failed to calculate ingredients")
		return
	}

	if ingredients == nil {
		ingredients = []model.Ingredient{}
	}
	c.JSON(http.StatusOK, ingredients)
}

// ListCategories returns the sorted distinct category strings.
func (h *RecipeHandler) ListCategories(c *gin.Context) {
	categories, err := h.recipes.ListCategories(c.Request.Context())
	if err != nil {
		h.internalError(c, "Failed to fetch categories", err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// recipeError maps service errors onto the API taxonomy: not-found to
// 404, anything else to a logged generic 500.
func (h *RecipeHandler) recipeError(c *gin.Context, err error, genericMessage string) {
	var notFound *service.RecipeNotFoundError
	if errors.As(err, &notFound) {
		c.JSON(http.StatusNotFound, StatusResponse{
			Status:  "error",
			Message: notFound.Error(),
		})
		return
	}
	h.internalError(c, genericMessage, err)
}

// internalError logs the real failure and answers with a generic
// message, never leaking internals to the client.
func (h *RecipeHandler) internalError(c *gin.Context, message string, err error) {
	h.logger.Error(message,
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String("request_id", c.GetString(middleware.RequestIDKey)),
	)
	c.JSON(http.StatusInternalServerError, StatusResponse{
		Status:  "error",
		Message: message,
	})
}
