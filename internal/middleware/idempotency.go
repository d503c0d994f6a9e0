package middleware

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"go-pms/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	idempotencyHeader   = "Idempotency-Key"
	idempotencyLockTTL  = 30 * time.Second
	idempotencyReplayed = "Idempotent-Replayed"
)

type IdempotencyConfig struct {
	TTL    time.Duration
	Logger *zap.Logger
}

// bodyCapture mirrors the response body so it can be replayed later.
type bodyCapture struct {
	gin.ResponseWriter
	buf bytes.Buffer
}

func (w *bodyCapture) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

// Idempotency replays the first successful response of a POST that carries an
// Idempotency-Key header. Concurrent duplicates get 409 while the first runs.
func Idempotency(rdb *redis.Client, cfg IdempotencyConfig) gin.HandlerFunc {
	if cfg.TTL <= 0 {
		cfg.TTL = 24 * time.Hour
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.L()
	}
	logger = logger.Named("middleware.idempotency")

	return func(c *gin.Context) {
		idempKey := c.GetHeader(idempotencyHeader)
		if idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		cacheKey := fmt.Sprintf("idemp:%s:%s:%s", c.FullPath(), c.GetString("user_id"), idempKey)
		lockKey := cacheKey + ":lock"

		if cached, err := rdb.Get(ctx, cacheKey).Bytes(); err == nil {
			c.Header(idempotencyReplayed, "true")
			c.Data(http.StatusOK, "application/json; charset=utf-8", cached)
			c.Abort()
			return
		}

		// Short TTL so a crashed request releases the key.
		isNew, err := rdb.SetNX(ctx, lockKey, "locked", idempotencyLockTTL).Result()
		if err != nil {
			logger.Warn("idempotency lock unavailable, continuing without it", zap.Error(err))
			c.Next()
			return
		}
		if !isNew {
			response.Abort(c, http.StatusConflict, "PROCESSING", "Request with this idempotency key is still processing")
			return
		}

		capture := &bodyCapture{ResponseWriter: c.Writer}
		c.Writer = capture

		c.Next()

		if status := capture.Status(); status >= 200 && status < 300 {
			if err := rdb.Set(ctx, cacheKey, capture.buf.Bytes(), cfg.TTL).Err(); err != nil {
				logger.Warn("idempotency store failed", zap.String("key", cacheKey), zap.Error(err))
			}
		}
		if err := rdb.Del(ctx, lockKey).Err(); err != nil {
			logger.Warn("idempotency unlock failed", zap.String("key", lockKey), zap.Error(err))
		}
	}
}
