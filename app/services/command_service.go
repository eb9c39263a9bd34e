package services

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"time"

	"github.com/ronaldmendzas/licor-system-sub000/app/models"
	"github.com/ronaldmendzas/licor-system-sub000/internal/intent"
	"github.com/ronaldmendzas/licor-system-sub000/internal/normalizer"
	"github.com/ronaldmendzas/licor-system-sub000/internal/parser"
	"go.uber.org/zap"
)

// CommandService orquesta la interpretación de comandos: cache,
// parser determinista y registro en el historial.
type CommandService struct {
	catalog   SnapshotProvider
	cache     ICacheService
	history   *HistoryService
	logger    *zap.Logger
	startTime time.Time
}

// NewCommandService crea el servicio de comandos
func NewCommandService(catalog SnapshotProvider, cache ICacheService, history *HistoryService, logger *zap.Logger) *CommandService {
	return &CommandService{
		catalog:   catalog,
		cache:     cache,
		history:   history,
		logger:    logger,
		startTime: time.Now(),
	}
}

// Fingerprint calcula la clave de cache de un comando. Incluye la
// versión del catálogo para que una recarga invalide resultados viejos.
func Fingerprint(text, catalogVersion string) string {
	normalized := normalizer.Normalize(text)
	sum := sha256.Sum256([]byte(normalized + "\x1f" + catalogVersion))
	return fmt.Sprintf("%x", sum)
}

// Parse interpreta un comando en lenguaje natural. El resultado es
// determinista, el cache solo ahorra trabajo repetido.
func (cs *CommandService) Parse(ctx context.Context, text string, useCache bool) (*models.ParsedCommand, bool, error) {
	if text == "" {
		return nil, false, errors.New("el comando no puede estar vacío")
	}

	snapshot := cs.catalog.Snapshot()
	key := Fingerprint(text, snapshot.Version)

	if useCache && cs.cache != nil {
		cached, found, err := cs.cache.Get(ctx, key)
		if err != nil {
			cs.logger.Warn("Error de cache, se interpreta sin cache", zap.Error(err))
		} else if found {
			cs.logger.Debug("Cache hit", zap.String("key", key[:12]))
			return cached, true, nil
		}
	}

	result := parser.ParseCommand(text, snapshot)

	cs.logger.Info("Comando interpretado",
		zap.String("intent", string(result.Intent)),
		zap.Float64("confidence", result.Confidence))

	if useCache && cs.cache != nil {
		if err := cs.cache.Set(ctx, key, result); err != nil {
			cs.logger.Warn("No se pudo guardar en cache", zap.Error(err))
		}
	}

	if cs.history != nil {
		cs.history.Record(result, "")
	}

	return result, false, nil
}

// BatchParse interpreta varios comandos en orden
func (cs *CommandService) BatchParse(ctx context.Context, texts []string, useCache bool) ([]*models.ParsedCommand, error) {
	results := make([]*models.ParsedCommand, len(texts))
	for i, text := range texts {
		result, _, err := cs.Parse(ctx, text, useCache)
		if err != nil {
			// Un comando vacío no corta el lote
			result = &models.ParsedCommand{
				Intent:     intent.Unknown,
				Confidence: 0,
				Raw:        text,
			}
		}
		results[i] = result
	}
	return results, nil
}

// History devuelve el historial de comandos interpretados
func (cs *CommandService) History() []models.HistoryEntry {
	if cs.history == nil {
		return nil
	}
	return cs.history.List()
}

// CatalogVersion expone la versión del catálogo vigente
func (cs *CommandService) CatalogVersion() string {
	return cs.catalog.Version()
}

// GetStartTime devuelve el momento de arranque del servicio
func (cs *CommandService) GetStartTime() time.Time {
	return cs.startTime
}

// Stats devuelve estadísticas generales del servicio
func (cs *CommandService) Stats(ctx context.Context) map[string]interface{} {
	stats := map[string]interface{}{
		"uptime_seconds":  int64(time.Since(cs.startTime).Seconds()),
		"start_time":      cs.startTime.Format(time.RFC3339),
		"catalog_version": cs.catalog.Version(),
		"history_items":   0,
	}
	if cs.history != nil {
		stats["history_items"] = cs.history.Len()
	}
	if cs.cache != nil {
		if cacheStats, err := cs.cache.GetStats(ctx); err == nil {
			stats["cache"] = cacheStats
		}
	}
	return stats
}
