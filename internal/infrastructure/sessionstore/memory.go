// Package sessionstore provee implementaciones del almacén clave/valor de la
// pseudo-sesión demo: memoria para desarrollo y tests, Redis para despliegues
// con más de una réplica del API.
package sessionstore

import (
	"context"
	"sync"
)

// Memory es el almacén en memoria. Seguro para uso concurrente.
type Memory struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemory construye el almacén vacío.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

// Get devuelve ("", nil) si la clave no existe.
func (m *Memory) Get(ctx context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.values[key], nil
}

func (m *Memory) Set(ctx context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

// Remove es idempotente: eliminar una clave ausente no es error.
func (m *Memory) Remove(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}
