package routes

import (
	"github.com/gin-gonic/gin"
)

// SetupWebRoutes registra las rutas web informativas
func SetupWebRoutes(router *gin.Engine) {
	web := router.Group("/")
	{
		web.GET("/", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"message": "Licor Command Service",
				"version": "1.0.0",
				"docs":    "/docs",
			})
		})

		web.GET("/docs", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"api": "Licor Command API v1",
				"endpoints": map[string]string{
					"parse":   "POST /v1/commands/parse",
					"batch":   "POST /v1/commands/batch",
					"history": "GET /v1/commands/history",
					"catalog": "GET /v1/catalog",
					"health":  "GET /v1/health",
				},
			})
		})
	}
}
