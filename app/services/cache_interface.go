package services

import (
	"context"
	"time"

	"github.com/ronaldmendzas/licor-system-sub000/app/models"
)

// CacheStats estadísticas del cache
type CacheStats struct {
	HitRate    float64 `json:"hit_rate"`
	TotalHits  int64   `json:"total_hits"`
	TotalMiss  int64   `json:"total_miss"`
	TotalItems int64   `json:"total_items"`
}

// ICacheService define las operaciones de cache de comandos interpretados
type ICacheService interface {
	// Get recupera un comando interpretado del cache
	Get(ctx context.Context, key string) (*models.ParsedCommand, bool, error)

	// Set guarda un comando interpretado en el cache
	Set(ctx context.Context, key string, result *models.ParsedCommand) error

	// Delete elimina una entrada del cache
	Delete(ctx context.Context, key string) error

	// Clear vacía todo el cache
	Clear(ctx context.Context) error

	// GetStats devuelve estadísticas del cache
	GetStats(ctx context.Context) (*CacheStats, error)

	// Exists verifica si la clave existe
	Exists(ctx context.Context, key string) (bool, error)

	// GetTTL devuelve el TTL restante de la clave
	GetTTL(ctx context.Context, key string) (time.Duration, error)

	// Close cierra la conexión (si aplica)
	Close() error
}
