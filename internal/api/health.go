package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/recipebox/backend/internal/database"
)

// HealthHandler reports liveness of the store and the cache backend.
type HealthHandler struct {
	db    *gorm.DB
	redis *redis.Client
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(db *gorm.DB, redisClient *redis.Client) *HealthHandler {
	return &HealthHandler{db: db, redis: redisClient}
}

// Health returns 200 when the database responds. The cache is reported
// but never fails the check, since the service stays correct without it.
func (h *HealthHandler) Health(c *gin.Context) {
	ctx := c.Request.Context()

	if err := database.HealthCheck(ctx, h.db); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": "down",
		})
		return
	}

	cache := "disabled"
	if h.redis != nil {
		cache = "up"
		if err := h.redis.Ping(ctx).Err(); err != nil {
			cache = "down"
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"database": "up",
		"cache":    cache,
	})
}
