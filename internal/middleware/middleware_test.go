package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-pms/internal/domain"
	"go-pms/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return tok
}

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestAuthMiddleware(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)

	r := newRouter()
	r.GET("/me", middleware.AuthMiddleware(), func(c *gin.Context) {
		caller := middleware.CallerFrom(c)
		c.JSON(http.StatusOK, gin.H{"id": caller.ID, "role": caller.Role})
	})

	t.Run("valid token", func(t *testing.T) {
		tok := signToken(t, jwt.MapClaims{"user_id": "emp-1", "role": "Admin", "exp": time.Now().Add(time.Hour).Unix()})
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+tok)
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"id":"emp-1","role":"admin"}`, w.Body.String())
	})

	t.Run("missing token", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		tok := signToken(t, jwt.MapClaims{"user_id": "emp-1", "exp": time.Now().Add(-time.Hour).Unix()})
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+tok)
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Token has expired")
	})

	t.Run("identity mismatch", func(t *testing.T) {
		tok := signToken(t, jwt.MapClaims{"user_id": "emp-1", "employee_id": "emp-2"})
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+tok)
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

type fakeRBAC struct {
	allowed bool
	err     error
	got     domain.EnforceRequest
}

func (f *fakeRBAC) Enforce(req domain.EnforceRequest) (bool, error) {
	f.got = req
	return f.allowed, f.err
}

func withIdentity(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", "u-1")
		c.Set("role", role)
		c.Next()
	}
}

func TestRBACAuthorize(t *testing.T) {
	tests := []struct {
		name   string
		rbac   *fakeRBAC
		role   string
		status int
	}{
		{"allowed", &fakeRBAC{allowed: true}, "admin", http.StatusOK},
		{"denied", &fakeRBAC{allowed: false}, "employee", http.StatusForbidden},
		{"enforcer error", &fakeRBAC{err: errors.New("boom")}, "admin", http.StatusInternalServerError},
		{"no identity", &fakeRBAC{allowed: true}, "", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRouter()
			r.GET("/kpis", withIdentity(tt.role), middleware.RBACAuthorize(tt.rbac, "kpi", "read"), func(c *gin.Context) {
				c.Status(http.StatusOK)
			})

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/kpis", nil))

			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestIdempotency(t *testing.T) {
	t.Run("replays cached response", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mock.ExpectGet("idemp:/analyze:u-1:key-1").SetVal(`{"ok":true,"data":{"processed":3}}`)

		r := newRouter()
		r.POST("/analyze", withIdentity("admin"), middleware.Idempotency(rdb, middleware.IdempotencyConfig{}), func(c *gin.Context) {
			t.Fatal("handler must not run on replay")
		})

		req := httptest.NewRequest(http.MethodPost, "/analyze", nil)
		req.Header.Set("Idempotency-Key", "key-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "true", w.Header().Get("Idempotent-Replayed"))
		assert.JSONEq(t, `{"ok":true,"data":{"processed":3}}`, w.Body.String())
	})

	t.Run("concurrent duplicate conflicts", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mock.ExpectGet("idemp:/analyze:u-1:key-2").RedisNil()
		mock.ExpectSetNX("idemp:/analyze:u-1:key-2:lock", "locked", 30*time.Second).SetVal(false)

		r := newRouter()
		r.POST("/analyze", withIdentity("admin"), middleware.Idempotency(rdb, middleware.IdempotencyConfig{}), func(c *gin.Context) {
			t.Fatal("handler must not run while locked")
		})

		req := httptest.NewRequest(http.MethodPost, "/analyze", nil)
		req.Header.Set("Idempotency-Key", "key-2")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "PROCESSING")
	})

	t.Run("requests without key pass through", func(t *testing.T) {
		rdb, _ := redismock.NewClientMock()

		r := newRouter()
		r.POST("/analyze", middleware.Idempotency(rdb, middleware.IdempotencyConfig{}), func(c *gin.Context) {
			c.Status(http.StatusAccepted)
		})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/analyze", nil))

		assert.Equal(t, http.StatusAccepted, w.Code)
	})
}

func TestRateLimitByUser(t *testing.T) {
	r := newRouter()
	r.GET("/x", withIdentity("employee"), middleware.RateLimitByUser(0.001, 1), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w1 := httptest.NewRecorder()
	r.ServeHTTP(w1, httptest.NewRequest(http.MethodGet, "/x", nil))
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, httptest.NewRequest(http.MethodGet, "/x", nil))

	assert.Equal(t, http.StatusOK, w1.Code)
	assert.Equal(t, http.StatusTooManyRequests, w2.Code)
}

func TestAuthMiddleware_LegacyAndMalformed(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)

	r := newRouter()
	r.GET("/me", middleware.AuthMiddleware(), func(c *gin.Context) {
		c.String(http.StatusOK, middleware.CallerFrom(c).ID)
	})

	t.Run("employee_id only", func(t *testing.T) {
		tok := signToken(t, jwt.MapClaims{"employee_id": "emp-9", "role": "employee"})
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.AddCookie(&http.Cookie{Name: "access_token", Value: tok})
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "emp-9", w.Body.String())
	})

	t.Run("wrong secret", func(t *testing.T) {
		tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"user_id": "emp-1"}).SignedString([]byte("other"))
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+tok)
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid or malformed token")
	})

	t.Run("no subject", func(t *testing.T) {
		tok := signToken(t, jwt.MapClaims{"role": "admin"})
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+tok)
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRBACAuthorize_CanonicalRole(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)

	t.Run("mixed-case token role reaches casbin lower-cased", func(t *testing.T) {
		rbac := &fakeRBAC{allowed: true}
		r := newRouter()
		r.GET("/kpis", middleware.AuthMiddleware(), middleware.RBACAuthorize(rbac, "kpi", "read"), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		tok := signToken(t, jwt.MapClaims{"user_id": "emp-1", "role": "Admin"})
		req := httptest.NewRequest(http.MethodGet, "/kpis", nil)
		req.Header.Set("Authorization", "Bearer "+tok)
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "admin", rbac.got.Role)
	})

	t.Run("raw context role is normalised too", func(t *testing.T) {
		rbac := &fakeRBAC{allowed: true}
		r := newRouter()
		r.GET("/kpis", withIdentity(" ADMIN "), middleware.RBACAuthorize(rbac, "kpi", "read"), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/kpis", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "admin", rbac.got.Role)
		assert.Equal(t, "kpi", rbac.got.Resource)
	})
}
