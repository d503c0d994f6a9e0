package middleware

import (
	"net/http"

	"go-pms/internal/access"
	"go-pms/internal/domain"
	"go-pms/internal/shared/apperror"
	"go-pms/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// RBACService is satisfied by rbac.Service.
type RBACService interface {
	Enforce(req domain.EnforceRequest) (bool, error)
}

// RBACAuthorize gates a route on the caller's role. Record-level ownership is
// still checked in the services.
func RBACAuthorize(service RBACService, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetString("role")
		if raw == "" || c.GetString("user_id") == "" {
			response.Abort(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "Missing auth context")
			return
		}

		// casbin policies are written with the canonical lower-case roles
		allowed, err := service.Enforce(domain.EnforceRequest{
			Role:     string(access.ParseRole(raw)),
			Resource: resource,
			Action:   action,
		})
		if err != nil {
			response.FromError(c, err)
			c.Abort()
			return
		}

		if !allowed {
			response.Error(c, http.StatusForbidden, apperror.CodeForbidden,
				apperror.ErrForbidden.Message, map[string]string{"required": resource + ":" + action})
			c.Abort()
			return
		}
		c.Next()
	}
}
