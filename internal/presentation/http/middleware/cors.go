// Package middleware provides HTTP middleware for the presentation layer.
package middleware

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORSMiddleware allows the front-end dev servers and the public site hosts
// to call the API with credentials.
func CORSMiddleware() gin.HandlerFunc {
	config := cors.Config{
		AllowOrigins: []string{
			"http://localhost:3000",
			"http://localhost:5173",
			"http://127.0.0.1:3000",
			"http://127.0.0.1:5173",
		},
		AllowMethods: []string{
			"GET", "POST", "PUT", "DELETE", "OPTIONS",
		},
		AllowHeaders: []string{
			"Origin", "Content-Type", "Accept", "Authorization",
			"X-Jenjang", "X-Requested-With", "Cache-Control",
		},
		AllowCredentials: true,
		ExposeHeaders: []string{
			"Content-Type", "Cache-Control",
		},
	}
	// Subdomain-per-level deployments serve each jenjang from its own host;
	// allow the school domain and anything under it.
	config.AllowOriginFunc = func(origin string) bool {
		return origin == "https://unggulbangsa.sch.id" ||
			strings.HasSuffix(origin, ".unggulbangsa.sch.id")
	}

	return cors.New(config)
}
