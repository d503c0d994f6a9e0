package apar

import (
	"time"

	"go-pms/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	rdb *redis.Client,
	logger *zap.Logger,
) {
	apars := r.Group("/apars")
	apars.Use(middleware.AuthMiddleware())
	apars.Use(middleware.ContextLogger(logger))
	{
		apars.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "apar", "read"),
			handler.GetAll,
		)

		apars.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "apar", "read"),
			handler.GetByID,
		)

		apars.GET("/:id/pdf",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "apar", "read"),
			handler.ExportPDF,
		)

		apars.POST("",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "apar", "create"),
			handler.Create,
		)

		apars.PATCH("/:id",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "apar", "update"),
			handler.Update,
		)

		apars.PUT("/:id",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "apar", "update"),
			handler.Update,
		)

		apars.POST("/analyze",
			middleware.RateLimitByUser(0.2, 1),
			middleware.RBACAuthorize(rbacService, "apar", "analyze"),
			middleware.Idempotency(rdb, middleware.IdempotencyConfig{TTL: 24 * time.Hour, Logger: logger}),
			handler.Analyze,
		)
	}
}
