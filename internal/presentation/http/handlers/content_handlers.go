package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/application/services"
	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/infrastructure/observability/logging"
	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/presentation/http/middleware"
	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/pkg/config"
)

// ContentHandlers serves the public collection and detail endpoints.
type ContentHandlers struct {
	contentService *services.ContentService
	detailService  *services.DetailService
	logger         *logging.ChanneledLogger
}

func NewContentHandlers(contentService *services.ContentService, detailService *services.DetailService, logger *logging.ChanneledLogger) *ContentHandlers {
	return &ContentHandlers{
		contentService: contentService,
		detailService:  detailService,
		logger:         logger,
	}
}

// List handles GET /api/v1/:kind. An optional limit query overrides the
// default page size.
func (h *ContentHandlers) List(c *gin.Context) {
	kind, ok := pathKind(c)
	if !ok {
		return
	}

	limit := config.PageIncrement
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = parsed
	}

	result, err := h.contentService.GetItems(c.Request.Context(), middleware.GetLevel(c), kind, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// LoadMore handles GET /api/v1/:kind/more, growing the list by one page.
func (h *ContentHandlers) LoadMore(c *gin.Context) {
	kind, ok := pathKind(c)
	if !ok {
		return
	}

	result, err := h.contentService.LoadMore(c.Request.Context(), middleware.GetLevel(c), kind)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Categories handles GET /api/v1/:kind/categories.
func (h *ContentHandlers) Categories(c *gin.Context) {
	kind, ok := pathKind(c)
	if !ok {
		return
	}

	categories, err := h.contentService.Categories(c.Request.Context(), kind)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// Detail handles GET /api/v1/:kind/:id. The response is the confirmed record
// when the authoritative fetch succeeds, or the cached copy when it fails but
// a copy exists.
func (h *ContentHandlers) Detail(c *gin.Context) {
	kind, ok := pathKind(c)
	if !ok {
		return
	}
	id := c.Param("id")

	ctx := c.Request.Context()
	resolution := h.detailService.Resolve(ctx, middleware.GetLevel(c), kind, id)
	item, related, err := h.detailService.Await(ctx, resolution)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"item": item, "related": related})
}

// BestJournals handles GET /api/v1/journals/best.
func (h *ContentHandlers) BestJournals(c *gin.Context) {
	items, err := h.contentService.BestJournals(c.Request.Context(), middleware.GetLevel(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}
