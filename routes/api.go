package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/ronaldmendzas/licor-system-sub000/app/controllers"
)

// SetupAPIRoutes registra las rutas de la API v1
func SetupAPIRoutes(router *gin.Engine, commandController *controllers.CommandController, adminController *controllers.AdminController) {
	v1 := router.Group("/v1")
	{
		// Interpretación de comandos
		commands := v1.Group("/commands")
		{
			commands.POST("/parse", commandController.ParseCommand)
			commands.POST("/batch", commandController.BatchParse)
			commands.GET("/history", commandController.GetHistory)
		}

		// Catálogo
		v1.GET("/catalog", adminController.GetCatalog)

		// Administración
		admin := v1.Group("/admin")
		{
			admin.POST("/catalog/reload", adminController.ReloadCatalog)
			admin.POST("/cache/invalidate", adminController.InvalidateCache)
			admin.GET("/stats", adminController.GetStats)
		}

		v1.GET("/health", commandController.HealthCheck)
	}
}

// SetupHealthRoutes registra los health checks en la raíz
func SetupHealthRoutes(router *gin.Engine, commandController *controllers.CommandController) {
	router.GET("/health", commandController.HealthCheck)
	router.GET("/ready", commandController.HealthCheck)
	router.GET("/live", commandController.HealthCheck)
}

// SetupAllRoutes registra todas las rutas del servicio
func SetupAllRoutes(router *gin.Engine, commandController *controllers.CommandController, adminController *controllers.AdminController) {
	setupMiddleware(router)

	SetupWebRoutes(router)
	SetupHealthRoutes(router, commandController)
	SetupAPIRoutes(router, commandController, adminController)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":  "Route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})
}

// setupMiddleware configura los middleware del router
func setupMiddleware(router *gin.Engine) {
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
}
