// Package handlers implements the HTTP handlers for the portal API. Handlers
// translate HTTP to service calls and map the error taxonomy onto status
// codes; all caching and resolution policy lives in the services.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/domain/entities/content"
	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/domain/repositories"
)

// respondError maps the domain error taxonomy onto HTTP status codes. Remote
// failures are the upstream's fault, not the client's.
func respondError(c *gin.Context, err error) {
	var notFound *repositories.NotFoundError
	if errors.As(err, &notFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": notFound.Error()})
		return
	}

	var decodeErr *repositories.DecodeError
	var fetchErr *repositories.FetchError
	var emptyCfg *repositories.EmptyConfigError
	if errors.As(err, &decodeErr) || errors.As(err, &fetchErr) || errors.As(err, &emptyCfg) {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

// pathKind validates the :kind route parameter.
func pathKind(c *gin.Context) (content.Kind, bool) {
	kind := content.Kind(c.Param("kind"))
	if !content.KnownKind(kind) {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown content kind"})
		return "", false
	}
	return kind, true
}
