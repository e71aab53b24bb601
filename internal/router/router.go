package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/recipebox/backend/config"
	"github.com/recipebox/backend/internal/api"
	"github.com/recipebox/backend/internal/middleware"
)

// SetupRouter wires the middleware chain and routes. Stages run in
// order: request logging, metrics, CORS, then per-route rate limits,
// CSRF checks and the response cache around the handlers.
func SetupRouter(
	cfg *config.Config,
	logger *zap.Logger,
	redisClient *redis.Client,
	recipeHandler *api.RecipeHandler,
	healthHandler *api.HealthHandler,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.Metrics())
	router.Use(middleware.CORS(cfg.CORSOrigins))

	cache := middleware.NewResponseCache(redisClient, cfg.CacheTTL)
	requireCSRF := middleware.RequireCSRF(cfg.CSRFSecret)

	router.GET("/", recipeHandler.Index)
	router.GET("/health", healthHandler.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.POST("/recipes",
		middleware.NewCreateRateLimiter(redisClient).Middleware(),
		requireCSRF,
		recipeHandler.CreateRecipe,
	)
	router.GET("/recipes",
		middleware.NewListRateLimiter(redisClient).Middleware(),
		cache.Middleware(),
		recipeHandler.ListRecipes,
	)
	router.GET("/recipes/:id",
		middleware.NewListRateLimiter(redisClient).Middleware(),
		recipeHandler.GetRecipe,
	)
	router.PUT("/recipes/:id",
		middleware.NewCreateRateLimiter(redisClient).Middleware(),
		requireCSRF,
		recipeHandler.UpdateRecipe,
	)
	router.POST("/calculate-ingredients",
		middleware.NewCalculateRateLimiter(redisClient).Middleware(),
		requireCSRF,
		recipeHandler.CalculateIngredients,
	)
	router.GET("/categories",
		middleware.NewCategoriesRateLimiter(redisClient).Middleware(),
		cache.Middleware(),
		recipeHandler.ListCategories,
	)

	return router
}
