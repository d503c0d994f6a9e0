package rbac

import (
	"go-pms/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, service Service) {
	group := r.Group("/rbac")
	group.Use(middleware.AuthMiddleware())
	{
		group.POST("/enforce", handler.Enforce)
		group.GET("/permissions", middleware.RBACAuthorize(service, "rbac", "read"), handler.MyPermissions)
		group.POST("/reload", middleware.RBACAuthorize(service, "rbac", "reload"), handler.Reload)
	}
}
