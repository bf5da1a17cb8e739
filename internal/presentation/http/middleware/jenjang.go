package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/domain/entities/levels"
	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/infrastructure/jenjang"
	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/pkg/config"
)

const levelContextKey = "jenjang"

// JenjangMiddleware resolves the active education level for every request.
// An explicit X-Jenjang header or jenjang query parameter wins; otherwise the
// level comes from the configured default, then the request host's first
// label, then the universal fallback. Resolution never fails; unknown input
// degrades to the universal level.
func JenjangMiddleware(store *jenjang.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var level levels.LevelID

		if raw := c.GetHeader("X-Jenjang"); raw != "" {
			level = store.Validate(raw)
		} else if raw := c.Query("jenjang"); raw != "" {
			level = store.Validate(raw)
		} else {
			level = jenjang.ResolveDefault(config.DefaultJenjang, c.Request.Host)
		}

		c.Set(levelContextKey, level)
		c.Next()
	}
}

// GetLevel retrieves the resolved level from the gin context.
func GetLevel(c *gin.Context) levels.LevelID {
	if v, ok := c.Get(levelContextKey); ok {
		if level, ok := v.(levels.LevelID); ok {
			return level
		}
	}
	return levels.Universal
}
