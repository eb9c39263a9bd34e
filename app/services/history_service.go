package services

import (
	"sync"
	"time"

	"github.com/ronaldmendzas/licor-system-sub000/app/models"
	"github.com/ronaldmendzas/licor-system-sub000/helpers/utils"
)

// HistoryService guarda los últimos comandos interpretados en memoria.
// El buffer es circular, al llenarse se descarta el más antiguo.
type HistoryService struct {
	mu      sync.RWMutex
	entries []models.HistoryEntry
	size    int
}

// NewHistoryService crea un historial con capacidad fija
func NewHistoryService(size int) *HistoryService {
	if size <= 0 {
		size = 50
	}
	return &HistoryService{
		entries: make([]models.HistoryEntry, 0, size),
		size:    size,
	}
}

// Record agrega un comando interpretado al historial
func (hs *HistoryService) Record(cmd *models.ParsedCommand, message string) models.HistoryEntry {
	entry := models.HistoryEntry{
		ID:      utils.GenerateShortID(),
		Message: message,
		At:      time.Now(),
	}
	if cmd != nil {
		entry.Command = *cmd
	}

	hs.mu.Lock()
	defer hs.mu.Unlock()

	hs.entries = append(hs.entries, entry)
	if len(hs.entries) > hs.size {
		hs.entries = hs.entries[len(hs.entries)-hs.size:]
	}
	return entry
}

// List devuelve el historial del más reciente al más antiguo
func (hs *HistoryService) List() []models.HistoryEntry {
	hs.mu.RLock()
	defer hs.mu.RUnlock()

	out := make([]models.HistoryEntry, len(hs.entries))
	for i, entry := range hs.entries {
		out[len(hs.entries)-1-i] = entry
	}
	return out
}

// Len devuelve la cantidad de entradas guardadas
func (hs *HistoryService) Len() int {
	hs.mu.RLock()
	defer hs.mu.RUnlock()
	return len(hs.entries)
}

// Clear vacía el historial
func (hs *HistoryService) Clear() {
	hs.mu.Lock()
	defer hs.mu.Unlock()
	hs.entries = hs.entries[:0]
}
