package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/application/services"
	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/domain/entities/content"
	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/infrastructure/observability/logging"
)

// AIHandlers serves draft generation for the admin editor.
type AIHandlers struct {
	aiService *services.AIService
	logger    *logging.ChanneledLogger
}

func NewAIHandlers(aiService *services.AIService, logger *logging.ChanneledLogger) *AIHandlers {
	return &AIHandlers{aiService: aiService, logger: logger}
}

type generateRequest struct {
	Kind  string `json:"kind"`
	Topic string `json:"topic"`
	Notes string `json:"notes"`
}

// Generate handles POST /api/v1/admin/ai/generate.
func (h *AIHandlers) Generate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	kind := content.Kind(req.Kind)
	if !content.KnownKind(kind) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown content kind"})
		return
	}
	if strings.TrimSpace(req.Topic) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "topic is required"})
		return
	}

	draft, err := h.aiService.GenerateDraft(c.Request.Context(), kind, req.Topic, req.Notes)
	if err != nil {
		if errors.Is(err, services.ErrAIUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "draft generation failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"draft": draft})
}
