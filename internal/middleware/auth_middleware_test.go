package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-hrms/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	assert.NoError(t, err)
	return signed
}

func validClaims() jwt.MapClaims {
	return jwt.MapClaims{
		"user_id": float64(1),
		"name":    "Admin User",
		"email":   "admin@example.com",
		"role":    "admin",
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
}

func authProbe() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.AuthMiddleware())
	r.GET("/probe", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.GetInt("user_id"),
			"role":    c.GetString("role"),
			"name":    c.GetString("name"),
		})
	})
	return r
}

func TestAuthMiddleware_BearerToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := authProbe()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "test-secret", validClaims()))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":1`)
	assert.Contains(t, w.Body.String(), `"role":"admin"`)
	assert.Contains(t, w.Body.String(), `"name":"Admin User"`)
}

func TestAuthMiddleware_CookieFallback(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := authProbe()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: signToken(t, "test-secret", validClaims())})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := authProbe()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/probe", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_WrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := authProbe()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "other-secret", validClaims()))
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := authProbe()

	claims := validClaims()
	claims["exp"] = time.Now().Add(-time.Hour).Unix()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "test-secret", claims))
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "TOKEN_EXPIRED")
}

func TestAuthMiddleware_TokenWithoutRole(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := authProbe()

	claims := validClaims()
	delete(claims, "role")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "test-secret", claims))
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRoleMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("role", "employee") })
	r.GET("/admin-only", middleware.RoleMiddleware("admin"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	r.GET("/any", middleware.RoleMiddleware("admin", "employee"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin-only", nil))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, httptest.NewRequest(http.MethodGet, "/any", nil))
	assert.Equal(t, http.StatusOK, w2.Code)
}

func TestRateLimitByUser(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("user_id", 1) })
	r.GET("/limited", middleware.RateLimitByUser(rate.Limit(1), 2), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	// burst of two passes, the third is rejected
	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/limited", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/limited", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestRateLimitByUser_SkipsAnonymous(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/limited", middleware.RateLimitByUser(rate.Limit(1), 1), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/limited", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.RequestID())
	r.GET("/probe", func(c *gin.Context) { c.Status(http.StatusOK) })

	// generated when absent
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/probe", nil))
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	// honored when supplied
	w2 := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("X-Request-ID", "req-42")
	r.ServeHTTP(w2, req)
	assert.Equal(t, "req-42", w2.Header().Get("X-Request-ID"))
}
