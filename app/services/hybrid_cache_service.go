package services

import (
	"context"
	"fmt"
	"time"

	"github.com/ronaldmendzas/licor-system-sub000/app/models"
	"go.uber.org/zap"
)

// HybridCacheService combina cache in-memory (L1) con Redis (L2)
type HybridCacheService struct {
	memoryCache *MemoryCacheService // L1 - rápido, por proceso
	redisCache  *RedisCacheService  // L2 - compartido entre instancias
	logger      *zap.Logger
}

// NewHybridCacheService crea el cache híbrido L1+L2
func NewHybridCacheService(memoryCache *MemoryCacheService, redisCache *RedisCacheService, logger *zap.Logger) *HybridCacheService {
	return &HybridCacheService{
		memoryCache: memoryCache,
		redisCache:  redisCache,
		logger:      logger,
	}
}

// Get busca primero en memoria, luego en Redis
func (hcs *HybridCacheService) Get(ctx context.Context, key string) (*models.ParsedCommand, bool, error) {
	result, found, err := hcs.memoryCache.Get(ctx, key)
	if err == nil && found {
		hcs.logger.Debug("L1 cache hit (memoria)", zap.String("key", key))
		return result, true, nil
	}

	result, found, err = hcs.redisCache.Get(ctx, key)
	if err != nil {
		hcs.logger.Warn("Error en cache Redis", zap.Error(err))
		return nil, false, err
	}
	if !found {
		return nil, false, nil
	}

	// Promover a L1 en segundo plano
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := hcs.memoryCache.Set(bgCtx, key, result); err != nil {
			hcs.logger.Warn("Error al promover Redis->memoria", zap.Error(err), zap.String("key", key))
		}
	}()

	hcs.logger.Debug("L2 cache hit (Redis)", zap.String("key", key))
	return result, true, nil
}

// Set guarda en ambos niveles en paralelo
func (hcs *HybridCacheService) Set(ctx context.Context, key string, result *models.ParsedCommand) error {
	errCh := make(chan error, 2)

	go func() {
		errCh <- hcs.memoryCache.Set(ctx, key, result)
	}()

	go func() {
		err := hcs.redisCache.Set(ctx, key, result)
		if err != nil {
			hcs.logger.Warn("Error al guardar en Redis", zap.Error(err))
		}
		errCh <- err
	}()

	var errs []error
	for i := 0; i < 2; i++ {
		if err := <-errCh; err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("errores de cache: %v", errs)
	}
	return nil
}

// Delete elimina la clave de ambos niveles
func (hcs *HybridCacheService) Delete(ctx context.Context, key string) error {
	errCh := make(chan error, 2)

	go func() {
		errCh <- hcs.memoryCache.Delete(ctx, key)
	}()

	go func() {
		errCh <- hcs.redisCache.Delete(ctx, key)
	}()

	var errs []error
	for i := 0; i < 2; i++ {
		if err := <-errCh; err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("errores al eliminar: %v", errs)
	}
	return nil
}

// Clear vacía ambos niveles
func (hcs *HybridCacheService) Clear(ctx context.Context) error {
	errCh := make(chan error, 2)

	go func() {
		errCh <- hcs.memoryCache.Clear(ctx)
	}()

	go func() {
		errCh <- hcs.redisCache.Clear(ctx)
	}()

	var errs []error
	for i := 0; i < 2; i++ {
		if err := <-errCh; err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("errores al vaciar cache: %v", errs)
	}

	hcs.logger.Info("Cache híbrido vaciado (memoria + Redis)")
	return nil
}

// GetStats combina estadísticas de ambos niveles
func (hcs *HybridCacheService) GetStats(ctx context.Context) (*CacheStats, error) {
	memStats, memErr := hcs.memoryCache.GetStats(ctx)
	redisStats, redisErr := hcs.redisCache.GetStats(ctx)

	if memErr != nil && redisErr != nil {
		return nil, fmt.Errorf("ambos niveles de cache fallaron: %v, %v", memErr, redisErr)
	}

	combined := &CacheStats{}

	switch {
	case memErr == nil && redisErr == nil:
		totalHits := memStats.TotalHits + redisStats.TotalHits
		totalMiss := memStats.TotalMiss + redisStats.TotalMiss
		total := totalHits + totalMiss

		if total > 0 {
			combined.HitRate = float64(totalHits) / float64(total)
		}
		combined.TotalHits = totalHits
		combined.TotalMiss = totalMiss
		combined.TotalItems = memStats.TotalItems + redisStats.TotalItems
	case memErr == nil:
		*combined = *memStats
	default:
		*combined = *redisStats
	}

	return combined, nil
}

// Exists revisa memoria primero y Redis después
func (hcs *HybridCacheService) Exists(ctx context.Context, key string) (bool, error) {
	exists, err := hcs.memoryCache.Exists(ctx, key)
	if err == nil && exists {
		return true, nil
	}
	return hcs.redisCache.Exists(ctx, key)
}

// GetTTL devuelve el TTL según Redis
func (hcs *HybridCacheService) GetTTL(ctx context.Context, key string) (time.Duration, error) {
	return hcs.redisCache.GetTTL(ctx, key)
}

// Close cierra ambos niveles
func (hcs *HybridCacheService) Close() error {
	errCh := make(chan error, 2)

	go func() {
		errCh <- hcs.memoryCache.Close()
	}()

	go func() {
		errCh <- hcs.redisCache.Close()
	}()

	var errs []error
	for i := 0; i < 2; i++ {
		if err := <-errCh; err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("errores al cerrar: %v", errs)
	}
	return nil
}
