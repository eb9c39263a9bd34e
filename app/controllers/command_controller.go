package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ronaldmendzas/licor-system-sub000/app/requests"
	"github.com/ronaldmendzas/licor-system-sub000/app/responses"
	"github.com/ronaldmendzas/licor-system-sub000/app/services"
	"go.uber.org/zap"
)

// CommandController atiende los requests de interpretación de comandos
type CommandController struct {
	commandService *services.CommandService
	executor       services.CommandExecutor
	logger         *zap.Logger
}

// NewCommandController crea el controller de comandos
func NewCommandController(commandService *services.CommandService, executor services.CommandExecutor, logger *zap.Logger) *CommandController {
	return &CommandController{
		commandService: commandService,
		executor:       executor,
		logger:         logger,
	}
}

// ParseCommand interpreta un comando en lenguaje natural
func (cc *CommandController) ParseCommand(c *gin.Context) {
	var req requests.ParseCommandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Error:     "INVALID_REQUEST",
			Message:   "Request inválido: " + err.Error(),
			Timestamp: time.Now().Format(time.RFC3339),
		})
		return
	}

	startTime := time.Now()

	result, cacheHit, err := cc.commandService.Parse(c.Request.Context(), req.Text, req.Options.UseCache)
	if err != nil {
		c.JSON(http.StatusInternalServerError, responses.ErrorResponse{
			Error:     "PARSE_ERROR",
			Message:   "Error al interpretar el comando: " + err.Error(),
			Timestamp: time.Now().Format(time.RFC3339),
		})
		return
	}

	resp := responses.ParseCommandResponse{
		Result:           result,
		CatalogVersion:   cc.commandService.CatalogVersion(),
		ProcessingTimeMs: time.Since(startTime).Milliseconds(),
		CacheHit:         cacheHit,
	}

	if req.Options.Execute && cc.executor != nil {
		execution := cc.executor.Execute(result)
		resp.Execution = &execution
	}

	c.JSON(http.StatusOK, resp)
}

// BatchParse interpreta varios comandos en un solo request
func (cc *CommandController) BatchParse(c *gin.Context) {
	var req requests.BatchParseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Error:     "INVALID_REQUEST",
			Message:   "Request inválido: " + err.Error(),
			Timestamp: time.Now().Format(time.RFC3339),
		})
		return
	}

	if len(req.Texts) > 500 {
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Error:     "TOO_MANY_COMMANDS",
			Message:   "El lote supera el límite de 500 comandos",
			Timestamp: time.Now().Format(time.RFC3339),
		})
		return
	}

	startTime := time.Now()

	results, err := cc.commandService.BatchParse(c.Request.Context(), req.Texts, req.Options.UseCache)
	if err != nil {
		c.JSON(http.StatusInternalServerError, responses.ErrorResponse{
			Error:     "PARSE_ERROR",
			Message:   "Error al interpretar el lote: " + err.Error(),
			Timestamp: time.Now().Format(time.RFC3339),
		})
		return
	}

	c.JSON(http.StatusOK, responses.BatchParseResponse{
		Results:          results,
		Total:            len(results),
		CatalogVersion:   cc.commandService.CatalogVersion(),
		ProcessingTimeMs: time.Since(startTime).Milliseconds(),
	})
}

// GetHistory devuelve el historial de comandos interpretados
func (cc *CommandController) GetHistory(c *gin.Context) {
	entries := cc.commandService.History()
	c.JSON(http.StatusOK, responses.HistoryResponse{
		Entries: entries,
		Total:   len(entries),
	})
}

// HealthCheck verifica el estado del servicio
func (cc *CommandController) HealthCheck(c *gin.Context) {
	uptime := time.Since(cc.commandService.GetStartTime())

	c.JSON(http.StatusOK, responses.HealthCheckResponse{
		Status:    "healthy",
		Timestamp: time.Now().Format(time.RFC3339),
		Uptime:    uptime.String(),
		Version:   "1.0.0",
		Services: map[string]string{
			"command_parser": "healthy",
			"catalog":        "healthy",
			"cache":          "healthy",
		},
	})
}
