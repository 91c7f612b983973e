package storage

import (
	"sort"
	"sync"
)

// ============================================================================
// MEMORY STORE - SLOTS EN MEMORIA
// ============================================================================
// Implementación thread-safe de Store. Se usa en tests, en la CLI cuando
// HCE_STORAGE_DRIVER=memory y como sustituto de localStorage en general.
//
// Uso:
//   store := NewMemoryStore()
//   store.Set("token", "eyJ...")
//   if token, found, _ := store.Get("token"); found {
//       ...
//   }

// MemoryStore es un Store thread-safe respaldado por un map
type MemoryStore struct {
	items map[string]string
	mu    sync.RWMutex
}

// NewMemoryStore crea un store vacío
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		items: make(map[string]string),
	}
}

// Get recupera un valor del store
// Retorna (valor, true) si existe y ("", false) si no
func (m *MemoryStore) Get(key string) (string, bool, error) {
	m.mu.RLock()
	value, found := m.items[key]
	m.mu.RUnlock()

	return value, found, nil
}

// Set almacena un valor, reemplazando el anterior
func (m *MemoryStore) Set(key, value string) error {
	m.mu.Lock()
	m.items[key] = value
	m.mu.Unlock()
	return nil
}

// Remove elimina una clave; no falla si no existe
func (m *MemoryStore) Remove(key string) error {
	m.mu.Lock()
	delete(m.items, key)
	m.mu.Unlock()
	return nil
}

// Clear limpia completamente el store
func (m *MemoryStore) Clear() {
	m.mu.Lock()
	m.items = make(map[string]string)
	m.mu.Unlock()
}

// Count retorna el número de slots ocupados
func (m *MemoryStore) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}

// Keys retorna las claves ocupadas en orden alfabético
func (m *MemoryStore) Keys() []string {
	m.mu.RLock()
	keys := make([]string, 0, len(m.items))
	for key := range m.items {
		keys = append(keys, key)
	}
	m.mu.RUnlock()

	sort.Strings(keys)
	return keys
}
