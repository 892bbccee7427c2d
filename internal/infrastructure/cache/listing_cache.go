// Package cache implementa el cache en memoria de la vista de listado.
// Guarda variantes (path + paginación) bajo el path del listado; invalidar
// el path descarta todas sus variantes de una vez.
package cache

import (
	"strings"
	"sync"

	"github.com/jhoicas/Facturas-api/internal/application/dto"
	"github.com/jhoicas/Facturas-api/internal/application/invoicing"
)

var _ invoicing.ListingCache = (*ListingCache)(nil)

// ListingCache cache de listados protegido por RWMutex. Sin TTL: la única
// política de frescura es la invalidación explícita tras cada mutación.
type ListingCache struct {
	mu      sync.RWMutex
	entries map[string][]*dto.InvoiceResponse
}

// NewListingCache construye el cache vacío.
func NewListingCache() *ListingCache {
	return &ListingCache{entries: make(map[string][]*dto.InvoiceResponse)}
}

// Get devuelve la vista cacheada para key, si sigue fresca.
func (c *ListingCache) Get(key string) ([]*dto.InvoiceResponse, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	items, ok := c.entries[key]
	return items, ok
}

// Put guarda la vista bajo key.
func (c *ListingCache) Put(key string, items []*dto.InvoiceResponse) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = items
}

// Invalidate descarta toda entrada cuya clave comience por path: la próxima
// lectura recalcula desde la persistencia.
func (c *ListingCache) Invalidate(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.entries {
		if strings.HasPrefix(key, path) {
			delete(c.entries, key)
		}
	}
}
