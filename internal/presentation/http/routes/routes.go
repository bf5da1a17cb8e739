// Package routes provides HTTP route configuration for the presentation layer.
package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/application/container"
	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/presentation/http/handlers"
	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/presentation/http/middleware"
)

// SetupRoutes configures all HTTP routes and middleware with dependency
// injection.
func SetupRoutes(c *container.Container) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.JenjangMiddleware(c.LevelStore))
	r.Use(middleware.RequestLoggingMiddleware(c.Logger))

	jenjangHandlers := handlers.NewJenjangHandlers(c.LevelService, c.Logger)
	homeHandlers := handlers.NewHomeHandlers(c.HomeService, c.Logger)
	contentHandlers := handlers.NewContentHandlers(c.ContentService, c.DetailService, c.Logger)
	contactHandlers := handlers.NewContactHandlers(c.ContactService, c.Logger)
	authHandlers := handlers.NewAuthHandlers(c.AuthService, c.Logger)
	adminHandlers := handlers.NewAdminHandlers(c.AdminService, c.Logger)
	aiHandlers := handlers.NewAIHandlers(c.AIService, c.Logger)

	api := r.Group("/api/v1")
	{
		api.GET("/jenjang", jenjangHandlers.GetLevels)
		api.GET("/home", homeHandlers.GetHome)
		api.POST("/contact", contactHandlers.Submit)

		api.POST("/auth/login", authHandlers.Login)
		api.POST("/auth/logout", authHandlers.Logout)
		api.GET("/auth/status", authHandlers.Status)

		api.GET("/journals/best", contentHandlers.BestJournals)

		api.GET("/:kind", contentHandlers.List)
		api.GET("/:kind/more", contentHandlers.LoadMore)
		api.GET("/:kind/categories", contentHandlers.Categories)
		api.GET("/:kind/:id", contentHandlers.Detail)

		admin := api.Group("/admin")
		admin.Use(middleware.AuthMiddleware(c.AuthService))
		{
			admin.POST("/ai/generate", aiHandlers.Generate)

			admin.GET("/:kind", adminHandlers.List)
			admin.POST("/:kind/refresh", adminHandlers.Refresh)
			admin.POST("/:kind", adminHandlers.Create)
			admin.PUT("/:kind/:id", adminHandlers.Update)
			admin.DELETE("/:kind/:id", adminHandlers.Delete)
		}
	}

	return r
}
