package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/application/services"
	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/infrastructure/observability/logging"
	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/pkg/config"
)

// AdminHandlers serves the management surface: full lists with a staleness
// window, forced refresh, and the CRUD mutations. Mutation payloads arrive as
// multipart forms so uploads can ride along with the text fields.
type AdminHandlers struct {
	adminService *services.AdminService
	logger       *logging.ChanneledLogger
}

func NewAdminHandlers(adminService *services.AdminService, logger *logging.ChanneledLogger) *AdminHandlers {
	return &AdminHandlers{adminService: adminService, logger: logger}
}

// List handles GET /api/v1/admin/:kind.
func (h *AdminHandlers) List(c *gin.Context) {
	kind, ok := pathKind(c)
	if !ok {
		return
	}

	items, err := h.adminService.List(c.Request.Context(), kind, false)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

// Refresh handles POST /api/v1/admin/:kind/refresh, bypassing the staleness
// window and the snapshot.
func (h *AdminHandlers) Refresh(c *gin.Context) {
	kind, ok := pathKind(c)
	if !ok {
		return
	}

	items, err := h.adminService.List(c.Request.Context(), kind, true)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

// Create handles POST /api/v1/admin/:kind.
func (h *AdminHandlers) Create(c *gin.Context) {
	kind, ok := pathKind(c)
	if !ok {
		return
	}

	fields, imageData, imageName, ok := h.parseForm(c)
	if !ok {
		return
	}

	item, err := h.adminService.Create(c.Request.Context(), kind, fields, imageData, imageName)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"item": item})
}

// Update handles PUT /api/v1/admin/:kind/:id.
func (h *AdminHandlers) Update(c *gin.Context) {
	kind, ok := pathKind(c)
	if !ok {
		return
	}

	fields, imageData, imageName, ok := h.parseForm(c)
	if !ok {
		return
	}

	item, err := h.adminService.Update(c.Request.Context(), kind, c.Param("id"), fields, imageData, imageName)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"item": item})
}

// Delete handles DELETE /api/v1/admin/:kind/:id.
func (h *AdminHandlers) Delete(c *gin.Context) {
	kind, ok := pathKind(c)
	if !ok {
		return
	}

	if err := h.adminService.Delete(c.Request.Context(), kind, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

// parseForm extracts the text fields and the optional image file from a
// multipart form, enforcing the upload size cap.
func (h *AdminHandlers) parseForm(c *gin.Context) (map[string]string, []byte, string, bool) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, config.UploadMaxBodyBytes)

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid multipart form"})
		return nil, nil, "", false
	}

	fields := make(map[string]string, len(form.Value))
	for key, values := range form.Value {
		if len(values) > 0 {
			fields[key] = values[0]
		}
	}

	files := form.File["image"]
	if len(files) == 0 {
		return fields, nil, "", true
	}

	file, err := files[0].Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable image upload"})
		return nil, nil, "", false
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable image upload"})
		return nil, nil, "", false
	}

	return fields, data, files[0].Filename, true
}
