package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/application/services"
	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/infrastructure/observability/logging"
	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/presentation/http/middleware"
)

// JenjangHandlers serves the education-level configuration.
type JenjangHandlers struct {
	levelService *services.LevelService
	logger       *logging.ChanneledLogger
}

func NewJenjangHandlers(levelService *services.LevelService, logger *logging.ChanneledLogger) *JenjangHandlers {
	return &JenjangHandlers{levelService: levelService, logger: logger}
}

// GetLevels handles GET /api/v1/jenjang: the full mapping plus the level
// resolved for this request.
func (h *JenjangHandlers) GetLevels(c *gin.Context) {
	active := middleware.GetLevel(c)

	c.JSON(http.StatusOK, gin.H{
		"levels": h.levelService.Mapping(),
		"active": h.levelService.Get(active),
	})
}
