package middleware

import (
	"go-pms/internal/access"

	"github.com/gin-gonic/gin"
)

// CallerFrom builds the access.Caller that AuthMiddleware authenticated.
func CallerFrom(c *gin.Context) access.Caller {
	return access.Caller{
		ID:   c.GetString("user_id"),
		Role: access.ParseRole(c.GetString("role")),
	}
}
