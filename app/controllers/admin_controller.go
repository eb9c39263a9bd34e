package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ronaldmendzas/licor-system-sub000/app/responses"
	"github.com/ronaldmendzas/licor-system-sub000/app/services"
	"go.uber.org/zap"
)

// AdminController atiende los requests administrativos
type AdminController struct {
	catalogService *services.CatalogService
	commandService *services.CommandService
	cacheService   services.ICacheService
	logger         *zap.Logger
}

// NewAdminController crea el controller administrativo
func NewAdminController(catalogService *services.CatalogService, commandService *services.CommandService, cacheService services.ICacheService, logger *zap.Logger) *AdminController {
	return &AdminController{
		catalogService: catalogService,
		commandService: commandService,
		cacheService:   cacheService,
		logger:         logger,
	}
}

// ReloadCatalog recarga el catálogo desde disco y vacía el cache
func (ac *AdminController) ReloadCatalog(c *gin.Context) {
	startTime := time.Now()

	version, err := ac.catalogService.Reload()
	if err != nil {
		ac.logger.Error("Error al recargar catálogo", zap.Error(err))
		c.JSON(http.StatusInternalServerError, responses.ErrorResponse{
			Error:     "RELOAD_ERROR",
			Message:   "Error al recargar el catálogo: " + err.Error(),
			Timestamp: time.Now().Format(time.RFC3339),
		})
		return
	}

	// Las claves de cache llevan la versión del catálogo, vaciar es
	// solo para liberar memoria de resultados viejos
	if ac.cacheService != nil {
		if err := ac.cacheService.Clear(c.Request.Context()); err != nil {
			ac.logger.Warn("Error al vaciar cache tras recarga", zap.Error(err))
		}
	}

	ac.logger.Info("Catálogo recargado",
		zap.String("version", version[:12]),
		zap.Duration("duration", time.Since(startTime)))

	c.JSON(http.StatusOK, responses.ReloadCatalogResponse{
		Success:        true,
		CatalogVersion: version,
		Message:        "Catálogo recargado correctamente",
	})
}

// InvalidateCache vacía el cache de comandos
func (ac *AdminController) InvalidateCache(c *gin.Context) {
	if ac.cacheService == nil {
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Cache deshabilitado"})
		return
	}

	if err := ac.cacheService.Clear(c.Request.Context()); err != nil {
		ac.logger.Error("Error al vaciar cache", zap.Error(err))
		c.JSON(http.StatusInternalServerError, responses.ErrorResponse{
			Error:     "CACHE_ERROR",
			Message:   "Error al vaciar el cache: " + err.Error(),
			Timestamp: time.Now().Format(time.RFC3339),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Cache vaciado"})
}

// GetStats devuelve estadísticas del servicio
func (ac *AdminController) GetStats(c *gin.Context) {
	stats := ac.commandService.Stats(c.Request.Context())

	resp := responses.StatsResponse{
		CatalogVersion: ac.commandService.CatalogVersion(),
		Extra:          stats,
	}
	if uptime, ok := stats["uptime_seconds"].(int64); ok {
		resp.UptimeSeconds = uptime
	}
	if items, ok := stats["history_items"].(int); ok {
		resp.HistoryItems = items
	}
	if cacheStats, ok := stats["cache"].(*services.CacheStats); ok {
		resp.Cache = cacheStats
	}

	c.JSON(http.StatusOK, resp)
}

// GetCatalog devuelve el snapshot vigente del catálogo
func (ac *AdminController) GetCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, ac.catalogService.Snapshot())
}
