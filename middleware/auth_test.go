package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"staybook/config"
	"staybook/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", JWTAuthMiddleware(), func(c *gin.Context) {
		userID, _ := UserID(c)
		c.JSON(http.StatusOK, gin.H{"userId": userID})
	})
	return router
}

func TestJWTAuthMiddleware_MissingCookie(t *testing.T) {
	router := newAuthRouter()

	req := httptest.NewRequest("GET", "/protected", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthMiddleware_ValidToken(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	token, err := utils.GenerateToken("user-42", time.Hour)
	require.NoError(t, err)

	router := newAuthRouter()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.AddCookie(&http.Cookie{Name: AuthCookieName, Value: token})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-42")
}

func TestJWTAuthMiddleware_TamperedToken(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	token, err := utils.GenerateToken("user-42", time.Hour)
	require.NoError(t, err)

	router := newAuthRouter()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.AddCookie(&http.Cookie{Name: AuthCookieName, Value: token + "x"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthMiddleware_ExpiredToken(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	token, err := utils.GenerateToken("user-42", -time.Minute)
	require.NoError(t, err)

	router := newAuthRouter()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.AddCookie(&http.Cookie{Name: AuthCookieName, Value: token})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUserID_AbsentFromContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, ok := UserID(c)
	assert.False(t, ok)
}
