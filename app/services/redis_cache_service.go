package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/ronaldmendzas/licor-system-sub000/app/models"
	"go.uber.org/zap"
)

// RedisCacheService cache de comandos interpretados sobre Redis
type RedisCacheService struct {
	client *redis.Client
	logger *zap.Logger
	prefix string
	ttl    time.Duration

	// Stats
	hits   int64
	misses int64
}

// NewRedisCacheService conecta a Redis y verifica la conexión
func NewRedisCacheService(redisURL string, ttl time.Duration, logger *zap.Logger) (*RedisCacheService, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("error al parsear URL de Redis: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("no se pudo conectar a Redis: %w", err)
	}

	return &RedisCacheService{
		client: client,
		logger: logger,
		prefix: "licor_cmd:",
		ttl:    ttl,
	}, nil
}

// Get recupera un comando interpretado del cache
func (rcs *RedisCacheService) Get(ctx context.Context, key string) (*models.ParsedCommand, bool, error) {
	cacheKey := rcs.prefix + key

	val, err := rcs.client.Get(ctx, cacheKey).Result()
	if err == redis.Nil {
		rcs.misses++
		return nil, false, nil
	}
	if err != nil {
		rcs.logger.Error("Error al leer de Redis", zap.Error(err), zap.String("key", cacheKey))
		return nil, false, err
	}

	var result models.ParsedCommand
	if err := json.Unmarshal([]byte(val), &result); err != nil {
		rcs.logger.Error("Error al deserializar entrada de cache", zap.Error(err))
		return nil, false, err
	}

	rcs.hits++
	rcs.logger.Debug("Redis cache hit", zap.String("key", key))
	return &result, true, nil
}

// Set guarda un comando interpretado en el cache
func (rcs *RedisCacheService) Set(ctx context.Context, key string, result *models.ParsedCommand) error {
	cacheKey := rcs.prefix + key

	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("error al serializar entrada de cache: %w", err)
	}

	if err := rcs.client.Set(ctx, cacheKey, data, rcs.ttl).Err(); err != nil {
		rcs.logger.Error("Error al escribir en Redis", zap.Error(err), zap.String("key", cacheKey))
		return err
	}

	rcs.logger.Debug("Guardado en Redis", zap.String("key", key))
	return nil
}

// Delete elimina una entrada del cache
func (rcs *RedisCacheService) Delete(ctx context.Context, key string) error {
	cacheKey := rcs.prefix + key

	if err := rcs.client.Del(ctx, cacheKey).Err(); err != nil {
		rcs.logger.Error("Error al eliminar de Redis", zap.Error(err), zap.String("key", cacheKey))
		return err
	}
	return nil
}

// Clear vacía todas las entradas con el prefijo del servicio
func (rcs *RedisCacheService) Clear(ctx context.Context) error {
	keys, err := rcs.client.Keys(ctx, rcs.prefix+"*").Result()
	if err != nil {
		return fmt.Errorf("error al listar claves: %w", err)
	}

	if len(keys) > 0 {
		if err := rcs.client.Del(ctx, keys...).Err(); err != nil {
			return fmt.Errorf("error al eliminar claves: %w", err)
		}
	}

	rcs.logger.Info("Cache Redis vaciado", zap.Int("keys_deleted", len(keys)))
	return nil
}

// GetStats devuelve estadísticas del cache
func (rcs *RedisCacheService) GetStats(ctx context.Context) (*CacheStats, error) {
	total := rcs.hits + rcs.misses
	hitRate := float64(0)
	if total > 0 {
		hitRate = float64(rcs.hits) / float64(total)
	}

	keys, err := rcs.client.Keys(ctx, rcs.prefix+"*").Result()
	totalItems := int64(0)
	if err == nil {
		totalItems = int64(len(keys))
	}

	return &CacheStats{
		HitRate:    hitRate,
		TotalHits:  rcs.hits,
		TotalMiss:  rcs.misses,
		TotalItems: totalItems,
	}, nil
}

// Exists verifica si la clave existe
func (rcs *RedisCacheService) Exists(ctx context.Context, key string) (bool, error) {
	exists, err := rcs.client.Exists(ctx, rcs.prefix+key).Result()
	if err != nil {
		return false, err
	}
	return exists > 0, nil
}

// GetTTL devuelve el TTL restante de la clave
func (rcs *RedisCacheService) GetTTL(ctx context.Context, key string) (time.Duration, error) {
	return rcs.client.TTL(ctx, rcs.prefix+key).Result()
}

// Close cierra la conexión Redis
func (rcs *RedisCacheService) Close() error {
	return rcs.client.Close()
}
