package responses

import (
	"github.com/ronaldmendzas/licor-system-sub000/app/models"
	"github.com/ronaldmendzas/licor-system-sub000/app/services"
)

// ParseCommandResponse response de interpretación de un comando
type ParseCommandResponse struct {
	Result           *models.ParsedCommand   `json:"result"`                    // Comando interpretado
	Execution        *models.ExecutionResult `json:"execution,omitempty"`       // Resultado de ejecución, si se pidió
	CatalogVersion   string                  `json:"catalog_version"`           // Versión del catálogo usada
	ProcessingTimeMs int64                   `json:"processing_time_ms"`        // Tiempo de procesamiento (ms)
	CacheHit         bool                    `json:"cache_hit"`                 // Vino del cache
}

// BatchParseResponse response de interpretación por lotes
type BatchParseResponse struct {
	Results          []*models.ParsedCommand `json:"results"`            // Comandos interpretados, en orden
	Total            int                     `json:"total"`              // Cantidad de comandos
	CatalogVersion   string                  `json:"catalog_version"`    // Versión del catálogo usada
	ProcessingTimeMs int64                   `json:"processing_time_ms"` // Tiempo total (ms)
}

// HistoryResponse response del historial de comandos
type HistoryResponse struct {
	Entries []models.HistoryEntry `json:"entries"` // Del más reciente al más antiguo
	Total   int                   `json:"total"`   // Cantidad de entradas
}

// StatsResponse response de estadísticas del servicio
type StatsResponse struct {
	CatalogVersion string                 `json:"catalog_version"` // Versión del catálogo vigente
	Cache          *services.CacheStats   `json:"cache,omitempty"` // Estadísticas del cache
	UptimeSeconds  int64                  `json:"uptime_seconds"`  // Tiempo de actividad (s)
	HistoryItems   int                    `json:"history_items"`   // Entradas en el historial
	Extra          map[string]interface{} `json:"extra,omitempty"` // Datos adicionales
}

// ReloadCatalogResponse response de recarga del catálogo
type ReloadCatalogResponse struct {
	Success        bool   `json:"success"`         // Recarga exitosa
	CatalogVersion string `json:"catalog_version"` // Versión nueva
	Message        string `json:"message"`         // Detalle
}

// ErrorResponse response de error
type ErrorResponse struct {
	Error     string      `json:"error"`             // Código de error
	Message   string      `json:"message"`           // Mensaje de error
	Details   interface{} `json:"details,omitempty"` // Detalle adicional
	Timestamp string      `json:"timestamp"`         // Momento del error
}

// HealthCheckResponse response de verificación de salud
type HealthCheckResponse struct {
	Status    string            `json:"status"`    // Estado general
	Timestamp string            `json:"timestamp"` // Momento de la verificación
	Uptime    string            `json:"uptime"`    // Tiempo de actividad
	Version   string            `json:"version"`   // Versión del servicio
	Services  map[string]string `json:"services"`  // Estado por componente
}
