package handlers

import (
	"net/http"
	"time"

	"staybook/config"
	"staybook/middleware"
	"staybook/services/user"

	"github.com/gin-gonic/gin"
)

// UserHandler serves registration, login and session endpoints.
type UserHandler struct {
	Svc user.UserService
}

// NewUserHandler wires the user endpoints.
func NewUserHandler(svc user.UserService) *UserHandler {
	return &UserHandler{Svc: svc}
}

// cookieMaxAge matches the token TTL.
const cookieMaxAge = int(user.TokenTTL / time.Second)

func setAuthCookie(c *gin.Context, token string, maxAge int) {
	c.SetCookie(middleware.AuthCookieName, token, maxAge, "/", "", config.IsProduction(), true)
}

// Register handles POST /api/users/register.
func (h *UserHandler) Register(c *gin.Context) {
	var input struct {
		Email     string `json:"email"`
		Password  string `json:"password"`
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	usr, token, err := h.Svc.Register(c.Request.Context(), input.Email, input.Password, input.FirstName, input.LastName)
	if err != nil {
		respondError(c, err)
		return
	}

	setAuthCookie(c, token, cookieMaxAge)
	c.JSON(http.StatusOK, gin.H{"userId": usr.ID})
}

// Login handles POST /api/auth/login.
func (h *UserHandler) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	usr, token, err := h.Svc.Authenticate(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	setAuthCookie(c, token, cookieMaxAge)
	c.JSON(http.StatusOK, gin.H{"userId": usr.ID})
}

// ValidateToken handles GET /api/auth/validate-token.
func (h *UserHandler) ValidateToken(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"userId": userID})
}

// Logout handles POST /api/auth/logout.
func (h *UserHandler) Logout(c *gin.Context) {
	setAuthCookie(c, "", -1)
	c.Status(http.StatusOK)
}

// Me handles GET /api/users/me.
func (h *UserHandler) Me(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	usr, err := h.Svc.GetByID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, usr)
}
