package services

import (
	"crypto/sha256"
	"fmt"
	"os"
	"sync"

	"github.com/ronaldmendzas/licor-system-sub000/app/models"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// SnapshotProvider es la vista de solo lectura del catálogo que
// necesita el intérprete de comandos
type SnapshotProvider interface {
	Snapshot() *models.CatalogSnapshot
	Version() string
}

// CatalogService mantiene el snapshot del catálogo en memoria.
// El parser recibe siempre el snapshot completo, nunca lecturas parciales.
type CatalogService struct {
	mu       sync.RWMutex
	snapshot *models.CatalogSnapshot
	seedPath string
	logger   *zap.Logger
}

// NewCatalogService crea el servicio sin catálogo cargado
func NewCatalogService(seedPath string, logger *zap.Logger) *CatalogService {
	return &CatalogService{
		seedPath: seedPath,
		logger:   logger,
		snapshot: &models.CatalogSnapshot{},
	}
}

// Load lee el catálogo desde el archivo seed y fija la versión como
// hash del contenido, así el cache distingue catálogos distintos.
func (cs *CatalogService) Load() error {
	data, err := os.ReadFile(cs.seedPath)
	if err != nil {
		return fmt.Errorf("error al leer catálogo %s: %w", cs.seedPath, err)
	}

	var snapshot models.CatalogSnapshot
	if err := yaml.Unmarshal(data, &snapshot); err != nil {
		return fmt.Errorf("error al parsear catálogo: %w", err)
	}

	snapshot.Version = fmt.Sprintf("%x", sha256.Sum256(data))

	cs.mu.Lock()
	cs.snapshot = &snapshot
	cs.mu.Unlock()

	cs.logger.Info("Catálogo cargado",
		zap.String("path", cs.seedPath),
		zap.String("version", snapshot.Version[:12]),
		zap.Int("products", len(snapshot.Products)),
		zap.Int("categories", len(snapshot.Categories)),
		zap.Int("suppliers", len(snapshot.Suppliers)))
	return nil
}

// Reload recarga el catálogo desde disco y devuelve la versión nueva
func (cs *CatalogService) Reload() (string, error) {
	if err := cs.Load(); err != nil {
		return "", err
	}
	return cs.Version(), nil
}

// Set reemplaza el snapshot completo (para tests y carga programática)
func (cs *CatalogService) Set(snapshot *models.CatalogSnapshot) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	if snapshot == nil {
		snapshot = &models.CatalogSnapshot{}
	}
	cs.snapshot = snapshot
}

// Snapshot devuelve el snapshot vigente
func (cs *CatalogService) Snapshot() *models.CatalogSnapshot {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return cs.snapshot
}

// Version devuelve la versión del catálogo vigente
func (cs *CatalogService) Version() string {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return cs.snapshot.Version
}
