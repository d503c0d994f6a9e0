package kpi

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
	kpis := r.Group("/kpis")
	kpis.Use(middleware.AuthMiddleware())
	kpis.Use(middleware.ContextLogger(logger))
	{
		kpis.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "kpi", "read"),
			handler.GetAll,
		)

		kpis.GET("/templates",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "kpi", "read"),
			handler.Templates,
		)

		kpis.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "kpi", "read"),
			handler.GetByID,
		)

		kpis.POST("",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "kpi", "create"),
			handler.Create,
		)

		kpis.POST("/defaults",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "kpi", "create"),
			handler.SeedDefaults,
		)

		kpis.PATCH("/:id",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "kpi", "update"),
			handler.Update,
		)

		kpis.PUT("/:id",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "kpi", "update"),
			handler.Update,
		)

		kpis.DELETE("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "kpi", "delete"),
			handler.Delete,
		)

		kpis.POST("/:id/pending-update",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "kpi", "propose"),
			handler.ProposeUpdate,
		)

		kpis.POST("/:id/review",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "kpi", "review"),
			handler.Review,
		)

		kpis.PATCH("/:id/qualitative",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "kpi", "update"),
			handler.UpdateQualitative,
		)

		kpis.POST("/analyze",
			middleware.RateLimitByUser(0.2, 1),
			middleware.RBACAuthorize(rbacService, "kpi", "analyze"),
			middleware.Idempotency(rdb, middleware.IdempotencyConfig{TTL: 24 * time.Hour, Logger: logger}),
			handler.Analyze,
		)
	}
}
