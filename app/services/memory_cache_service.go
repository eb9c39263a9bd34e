package services

import (
	"context"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/ronaldmendzas/licor-system-sub000/app/models"
)

type memoryEntry struct {
	result   *models.ParsedCommand
	storedAt time.Time
}

// MemoryCacheService cache in-memory con desalojo LRU y TTL
type MemoryCacheService struct {
	cache *lru.Cache[string, memoryEntry]
	ttl   time.Duration

	mu     sync.Mutex
	hits   int64
	misses int64
}

// NewMemoryCacheService crea un cache in-memory con capacidad máxima fija
func NewMemoryCacheService(maxItems int, ttl time.Duration) (*MemoryCacheService, error) {
	if maxItems <= 0 {
		maxItems = 1024
	}
	cache, err := lru.New[string, memoryEntry](maxItems)
	if err != nil {
		return nil, err
	}
	return &MemoryCacheService{
		cache: cache,
		ttl:   ttl,
	}, nil
}

// Get recupera un comando interpretado del cache
func (mcs *MemoryCacheService) Get(ctx context.Context, key string) (*models.ParsedCommand, bool, error) {
	entry, ok := mcs.cache.Get(key)
	if !ok {
		mcs.countMiss()
		return nil, false, nil
	}

	if mcs.ttl > 0 && time.Since(entry.storedAt) > mcs.ttl {
		mcs.cache.Remove(key)
		mcs.countMiss()
		return nil, false, nil
	}

	mcs.countHit()
	return entry.result, true, nil
}

// Set guarda un comando interpretado en el cache
func (mcs *MemoryCacheService) Set(ctx context.Context, key string, result *models.ParsedCommand) error {
	mcs.cache.Add(key, memoryEntry{result: result, storedAt: time.Now()})
	return nil
}

// Delete elimina una entrada del cache
func (mcs *MemoryCacheService) Delete(ctx context.Context, key string) error {
	mcs.cache.Remove(key)
	return nil
}

// Clear vacía todo el cache
func (mcs *MemoryCacheService) Clear(ctx context.Context) error {
	mcs.cache.Purge()
	return nil
}

// GetStats devuelve estadísticas del cache
func (mcs *MemoryCacheService) GetStats(ctx context.Context) (*CacheStats, error) {
	mcs.mu.Lock()
	hits, misses := mcs.hits, mcs.misses
	mcs.mu.Unlock()

	total := hits + misses
	hitRate := float64(0)
	if total > 0 {
		hitRate = float64(hits) / float64(total)
	}

	return &CacheStats{
		HitRate:    hitRate,
		TotalHits:  hits,
		TotalMiss:  misses,
		TotalItems: int64(mcs.cache.Len()),
	}, nil
}

// Exists verifica si la clave existe
func (mcs *MemoryCacheService) Exists(ctx context.Context, key string) (bool, error) {
	entry, ok := mcs.cache.Peek(key)
	if !ok {
		return false, nil
	}
	if mcs.ttl > 0 && time.Since(entry.storedAt) > mcs.ttl {
		return false, nil
	}
	return true, nil
}

// GetTTL devuelve el TTL restante de la clave
func (mcs *MemoryCacheService) GetTTL(ctx context.Context, key string) (time.Duration, error) {
	entry, ok := mcs.cache.Peek(key)
	if !ok {
		return 0, nil
	}
	if mcs.ttl <= 0 {
		return 0, nil
	}
	remaining := mcs.ttl - time.Since(entry.storedAt)
	if remaining < 0 {
		return 0, nil
	}
	return remaining, nil
}

// Close no aplica para cache in-memory
func (mcs *MemoryCacheService) Close() error {
	return nil
}

func (mcs *MemoryCacheService) countHit() {
	mcs.mu.Lock()
	mcs.hits++
	mcs.mu.Unlock()
}

func (mcs *MemoryCacheService) countMiss() {
	mcs.mu.Lock()
	mcs.misses++
	mcs.mu.Unlock()
}
