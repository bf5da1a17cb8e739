package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/application/services"
	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/infrastructure/observability/logging"
	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/presentation/http/middleware"
	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/pkg/config"
)

// AuthHandlers manages the admin session.
type AuthHandlers struct {
	authService *services.AuthService
	logger      *logging.ChanneledLogger
}

func NewAuthHandlers(authService *services.AuthService, logger *logging.ChanneledLogger) *AuthHandlers {
	return &AuthHandlers{authService: authService, logger: logger}
}

type loginRequest struct {
	Password string `json:"password"`
}

// Login handles POST /api/v1/auth/login. The token is returned in the body
// and also set as an HTTP-only cookie for browser sessions.
func (h *AuthHandlers) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	token, err := h.authService.Login(req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	maxAge := int(config.TokenLifetime.Seconds())
	c.SetCookie(middleware.AdminTokenCookie, token, maxAge, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// Logout handles POST /api/v1/auth/logout.
func (h *AuthHandlers) Logout(c *gin.Context) {
	c.SetCookie(middleware.AdminTokenCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// Status handles GET /api/v1/auth/status.
func (h *AuthHandlers) Status(c *gin.Context) {
	token := ""
	if cookie, err := c.Cookie(middleware.AdminTokenCookie); err == nil {
		token = cookie
	}
	if header := c.GetHeader("Authorization"); len(header) > 7 && header[:7] == "Bearer " {
		token = header[7:]
	}

	authenticated := token != "" && h.authService.Validate(token) == nil
	c.JSON(http.StatusOK, gin.H{"authenticated": authenticated})
}
