package app

import (
	"skillmap_backend/docs"
	"skillmap_backend/internal/middleware"
	"skillmap_backend/internal/util"
	"skillmap_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())
	router.NoRoute(util.NotFound)

	api := router.Group("/api")
	api.Use(middleware.TryAuthMiddleware(a.Config.JWT.Secret))
	{
		api.GET("/health", c.health.HealthCheck)
		api.POST("/login", c.auth.Login)
		api.GET("/profile", middleware.AuthMiddleware(a.Config.JWT.Secret), c.auth.GetProfile)

		a.registerCatalogRoutes(api, c)
		a.registerRoadmapRoutes(api, c)
	}
}

func (a *App) registerCatalogRoutes(rg *gin.RouterGroup, c *controllers) {
	catalog := rg.Group("/catalog")
	{
		catalog.GET("/professions", c.catalog.ListProfessions)
		catalog.GET("/lookup", c.catalog.Lookup)
	}
}

func (a *App) registerRoadmapRoutes(rg *gin.RouterGroup, c *controllers) {
	roadmaps := rg.Group("/roadmaps")
	{
		roadmaps.POST("", c.roadmap.CreateRoadmap)
		roadmaps.GET("", c.roadmap.ListRoadmaps)
		roadmaps.GET("/current", c.roadmap.GetCurrentRoadmap)
		roadmaps.GET("/events", c.roadmap.StreamEvents)
		roadmaps.GET("/:id", c.roadmap.GetRoadmap)
		roadmaps.PUT("/:id", c.roadmap.SaveRoadmap)
		roadmaps.DELETE("/:id", c.roadmap.DeleteRoadmap)

		roadmaps.PATCH("/:id/skills/:skillId/progress", c.roadmap.UpdateSkillProgress)
		roadmaps.PUT("/:id/skills/order", c.roadmap.UpdateSkillOrder)
		roadmaps.POST("/:id/skills/:skillId/resources", c.roadmap.AddVideoResource)
		roadmaps.DELETE("/:id/skills/:skillId/resources/:resourceId", c.roadmap.RemoveVideoResource)
	}
}
