package kpisummary

import (
	"go-pms/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService, logger *zap.Logger) {
	scores := r.Group("/scores")
	scores.Use(middleware.AuthMiddleware())
	scores.Use(middleware.ContextLogger(logger))
	{
		scores.GET("",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, "score", "read"),
			handler.GetScore,
		)
	}
}
