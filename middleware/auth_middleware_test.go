package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/kiwiflowai-ai/totalcare-website/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func protectedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin/ping", AuthMiddleware(), RequireRole("ADMIN"), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"email": c.GetString("email")})
	})
	return r
}

func get(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := protectedRouter()

	assert.Equal(t, http.StatusUnauthorized, get(r, "").Code, "missing token")
	assert.Equal(t, http.StatusUnauthorized, get(r, "garbage").Code, "malformed token")

	token, err := utils.GenerateAccessToken("u1", "admin@example.com", "ADMIN", utils.AccessTTL())
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, get(r, token).Code)
}

func TestRequireRole(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := protectedRouter()

	token, err := utils.GenerateAccessToken("u2", "user@example.com", "VIEWER", utils.AccessTTL())
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, get(r, token).Code)
}
