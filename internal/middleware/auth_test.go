package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hospital-prototype-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
	utils.InitJWT("test-secret", time.Hour)
}

// guardedRouter mounts a mutation route behind the full admin guard and
// reports whether the handler behind it ran
func guardedRouter(handlerRan *bool) *gin.Engine {
	r := gin.New()
	r.POST("/api/patient", AuthMiddleware(), RequireAdmin(), func(c *gin.Context) {
		*handlerRan = true
		c.JSON(http.StatusCreated, gin.H{"success": true})
	})
	return r
}

func TestAuthMiddleware_NoToken(t *testing.T) {
	var handlerRan bool
	r := guardedRouter(&handlerRan)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/patient", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, handlerRan, "guard must stop the request before the handler")
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	var handlerRan bool
	r := guardedRouter(&handlerRan)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/patient", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, handlerRan)
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	utils.InitJWT("test-secret", -time.Minute)
	token, err := utils.GenerateSessionToken(1, "admin", "admin@example.com", "")
	require.NoError(t, err)
	utils.InitJWT("test-secret", time.Hour)

	var handlerRan bool
	r := guardedRouter(&handlerRan)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/patient", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, handlerRan)
}

func TestRequireAdmin_WrongRole(t *testing.T) {
	token, err := utils.GenerateSessionToken(7, "patient", "amina.yusuf@example.com", "uwra00001")
	require.NoError(t, err)

	var handlerRan bool
	r := guardedRouter(&handlerRan)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/patient", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.False(t, handlerRan)
}

func TestRequireAdmin_AdminViaBearer(t *testing.T) {
	token, err := utils.GenerateSessionToken(1, "admin", "admin@example.com", "")
	require.NoError(t, err)

	var handlerRan bool
	r := guardedRouter(&handlerRan)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/patient", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, handlerRan)
}

func TestRequireAdmin_AdminViaCookie(t *testing.T) {
	token, err := utils.GenerateSessionToken(1, "admin", "admin@example.com", "")
	require.NoError(t, err)

	var handlerRan bool
	r := guardedRouter(&handlerRan)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/patient", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, handlerRan)
}

func TestAuthMiddleware_InjectsClaims(t *testing.T) {
	token, err := utils.GenerateSessionToken(7, "patient", "amina.yusuf@example.com", "uwra00001")
	require.NoError(t, err)

	r := gin.New()
	r.GET("/check", AuthMiddleware(), func(c *gin.Context) {
		userID, _ := c.Get("userID")
		role, _ := c.Get("role")
		serial, _ := c.Get("serialNumber")
		assert.Equal(t, uint(7), userID)
		assert.Equal(t, "patient", role)
		assert.Equal(t, "uwra00001", serial)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/check", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
