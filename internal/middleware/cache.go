package middleware

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// ResponseCache short-circuits GET endpoints with a Redis-backed copy of
// a previous 200 response. A cache miss, an absent client, or any Redis
// error falls through to the handler: the cache only buys latency, never
// correctness.
type ResponseCache struct {
	redis *redis.Client
	ttl   time.Duration
}

// NewResponseCache creates a response cache with the given TTL.
func NewResponseCache(redisClient *redis.Client, ttl time.Duration) *ResponseCache {
	return &ResponseCache{redis: redisClient, ttl: ttl}
}

type cachingWriter struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *cachingWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// Middleware returns the caching stage for the handler chain.
func (rc *ResponseCache) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rc == nil || rc.redis == nil || c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		key := cacheKey(c)
		ctx := c.Request.Context()

		if cached, err := rc.redis.Get(ctx, key).Bytes(); err == nil {
			c.Data(http.StatusOK, "application/json; charset=utf-8", cached)
			c.Abort()
			return
		}

		writer := &cachingWriter{ResponseWriter: c.Writer}
		c.Writer = writer
		c.Next()

		if writer.Status() == http.StatusOK {
			// Best effort; a failed store is invisible to the caller.
			rc.redis.Set(ctx, key, writer.body.Bytes(), rc.ttl)
		}
	}
}

func cacheKey(c *gin.Context) string {
	key := "cache:" + c.Request.URL.Path
	if raw := c.Request.URL.Query().Encode(); raw != "" {
		key += "?" + raw
	}
	return key
}
