package routes_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"maritime-maintenance/internal/api/routes"
	"maritime-maintenance/internal/auth"
	"maritime-maintenance/internal/config"
	"maritime-maintenance/internal/database/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router, err := routes.SetupRoutes(nil, &config.Config{
		JWTSecret:          "routes-test-secret",
		JWTAccessTTL:       15 * time.Minute,
		JWTRefreshTTL:      time.Hour,
		AllowedOrigins:     []string{"http://localhost:3000"},
		NotifierWindowDays: 90,
	})
	require.NoError(t, err)
	return router
}

func serve(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSetupRoutes(t *testing.T) {
	router := testRouter(t)

	t.Run("health is public", func(t *testing.T) {
		w := serve(router, httptest.NewRequest(http.MethodGet, "/api/health", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	})

	t.Run("resources need a session", func(t *testing.T) {
		for _, path := range []string{"/api/ships", "/api/expiring_components", "/api/me", "/api/subscriptions"} {
			w := serve(router, httptest.NewRequest(http.MethodGet, path, nil))
			assert.Equal(t, http.StatusUnauthorized, w.Code, path)
		}
	})

	t.Run("component types are admin-only for writes", func(t *testing.T) {
		svc, err := auth.NewAuthService(&auth.AuthConfig{
			JWTSecret:  "routes-test-secret",
			AccessTTL:  15 * time.Minute,
			RefreshTTL: time.Hour,
		})
		require.NoError(t, err)
		token, err := svc.IssueAccessToken(7, models.RoleUser)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/api/component_types", nil)
		req.AddCookie(&http.Cookie{Name: auth.AccessCookieName, Value: token.Token})
		req.Header.Set(auth.CSRFHeaderName, token.CSRF)

		w := serve(router, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("preflight from allowed origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/ships", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)

		w := serve(router, req)
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("unknown endpoint", func(t *testing.T) {
		w := serve(router, httptest.NewRequest(http.MethodGet, "/api/nope", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "/api/nope", body["path"])
		assert.NotEmpty(t, body["request_id"])
	})
}
