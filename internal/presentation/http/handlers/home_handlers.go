package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/application/services"
	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/infrastructure/observability/logging"
	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/presentation/http/middleware"
)

// HomeHandlers serves the landing-page payload.
type HomeHandlers struct {
	homeService *services.HomeService
	logger      *logging.ChanneledLogger
}

func NewHomeHandlers(homeService *services.HomeService, logger *logging.ChanneledLogger) *HomeHandlers {
	return &HomeHandlers{homeService: homeService, logger: logger}
}

// GetHome handles GET /api/v1/home.
func (h *HomeHandlers) GetHome(c *gin.Context) {
	payload, err := h.homeService.GetHome(c.Request.Context(), middleware.GetLevel(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, payload)
}
