package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	qt "github.com/frankban/quicktest"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"retail_admin/internal/handlers"
	"retail_admin/internal/providers"
)

func middlewareEngine(auth providers.AuthProvider, roles ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	e := gin.New()
	group := e.Group("/api", handlers.AuthMiddleware(auth))
	if len(roles) > 0 {
		group.Use(handlers.RequireRole(roles...))
	}
	group.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userId": c.GetString("userId"),
			"role":   c.GetString("role"),
		})
	})
	return e
}

func TestAuthMiddlewareMissingToken(t *testing.T) {
	c := qt.New(t)

	auth := providers.NewAuthProvider("a", "r", time.Minute, time.Minute)
	e := middlewareEngine(auth)

	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)

	c.Assert(w.Code, qt.Equals, http.StatusUnauthorized)
}

func TestAuthMiddlewareBearerToken(t *testing.T) {
	c := qt.New(t)

	auth := providers.NewAuthProvider("a", "r", time.Minute, time.Minute)
	token, err := auth.GenerateAccessToken(uuid.New(), "admin")
	c.Assert(err, qt.IsNil)

	e := middlewareEngine(auth)
	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)

	c.Assert(w.Code, qt.Equals, http.StatusOK)
}

func TestAuthMiddlewareSessionCookie(t *testing.T) {
	c := qt.New(t)

	auth := providers.NewAuthProvider("a", "r", time.Minute, time.Minute)
	token, err := auth.GenerateAccessToken(uuid.New(), "admin")
	c.Assert(err, qt.IsNil)

	e := middlewareEngine(auth)
	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	req.AddCookie(&http.Cookie{Name: handlers.SessionCookie, Value: token})
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)

	c.Assert(w.Code, qt.Equals, http.StatusOK)
}

func TestAuthMiddlewareExpiredToken(t *testing.T) {
	c := qt.New(t)

	expired := providers.NewAuthProvider("a", "r", -time.Minute, -time.Minute)
	token, err := expired.GenerateAccessToken(uuid.New(), "admin")
	c.Assert(err, qt.IsNil)

	e := middlewareEngine(providers.NewAuthProvider("a", "r", time.Minute, time.Minute))
	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)

	c.Assert(w.Code, qt.Equals, http.StatusUnauthorized)
}

func TestRequireRole(t *testing.T) {
	c := qt.New(t)

	auth := providers.NewAuthProvider("a", "r", time.Minute, time.Minute)
	e := middlewareEngine(auth, "admin")

	employee, err := auth.GenerateAccessToken(uuid.New(), "employee")
	c.Assert(err, qt.IsNil)
	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	req.Header.Set("Authorization", "Bearer "+employee)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)
	c.Assert(w.Code, qt.Equals, http.StatusForbidden)

	admin, err := auth.GenerateAccessToken(uuid.New(), "admin")
	c.Assert(err, qt.IsNil)
	req = httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	req.Header.Set("Authorization", "Bearer "+admin)
	w = httptest.NewRecorder()
	e.ServeHTTP(w, req)
	c.Assert(w.Code, qt.Equals, http.StatusOK)
}
