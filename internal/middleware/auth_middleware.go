package middleware

import (
	"errors"
	"os"
	"strings"

	"go-pms/internal/access"
	"go-pms/internal/shared/apperror"
	"go-pms/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// identityClaims is the token body issued by the identity service. Older
// tokens carry only employee_id; user and employee ids name the same person.
type identityClaims struct {
	UserID     string `json:"user_id"`
	EmployeeID string `json:"employee_id"`
	Role       string `json:"role"`
	jwt.RegisteredClaims
}

func (c identityClaims) subject() (string, bool) {
	switch {
	case c.UserID == "":
		return c.EmployeeID, c.EmployeeID != ""
	case c.EmployeeID != "" && c.EmployeeID != c.UserID:
		return "", false
	default:
		return c.UserID, true
	}
}

func bearerToken(c *gin.Context) string {
	if tok, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer "); ok && tok != "" {
		return tok
	}
	if cookie, err := c.Cookie("access_token"); err == nil {
		return cookie
	}
	return ""
}

func abortWith(c *gin.Context, appErr *apperror.AppError) {
	response.Abort(c, appErr.HTTPStatus, appErr.Code, appErr.Message)
}

// AuthMiddleware validates the HMAC bearer token signed with JWT_SECRET and
// exposes user_id, employee_id and role on the gin context.
func AuthMiddleware() gin.HandlerFunc {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{"HS256", "HS384", "HS512"}))

	return func(c *gin.Context) {
		raw := bearerToken(c)
		if raw == "" {
			abortWith(c, apperror.ErrUnauthorized)
			return
		}

		var claims identityClaims
		_, err := parser.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
			return []byte(os.Getenv("JWT_SECRET")), nil
		})
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				abortWith(c, apperror.ErrTokenExpired)
				return
			}
			abortWith(c, apperror.ErrInvalidToken)
			return
		}

		subject, ok := claims.subject()
		if !ok {
			abortWith(c, apperror.ErrInvalidToken)
			return
		}

		c.Set("user_id", subject)
		c.Set("employee_id", subject)
		c.Set("role", string(access.ParseRole(claims.Role)))
		c.Next()
	}
}
