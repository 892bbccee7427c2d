package cache_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Facturas-api/internal/application/dto"
	"github.com/jhoicas/Facturas-api/internal/infrastructure/cache"
)

func view(ids ...string) []*dto.InvoiceResponse {
	out := make([]*dto.InvoiceResponse, 0, len(ids))
	for _, id := range ids {
		out = append(out, &dto.InvoiceResponse{ID: id})
	}
	return out
}

func TestListingCache_GetYPut(t *testing.T) {
	c := cache.NewListingCache()

	_, ok := c.Get("/dashboard/invoices?limit=20&offset=0")
	assert.False(t, ok, "cache vacío no sirve nada")

	c.Put("/dashboard/invoices?limit=20&offset=0", view("inv-1", "inv-2"))

	items, ok := c.Get("/dashboard/invoices?limit=20&offset=0")
	require.True(t, ok)
	require.Len(t, items, 2)
	assert.Equal(t, "inv-1", items[0].ID)
}

func TestListingCache_InvalidatePorPrefijoDescartaTodasLasVariantes(t *testing.T) {
	c := cache.NewListingCache()

	// Varias variantes de paginación bajo el mismo path
	c.Put("/dashboard/invoices?limit=20&offset=0", view("inv-1"))
	c.Put("/dashboard/invoices?limit=20&offset=20", view("inv-2"))
	c.Put("/dashboard/invoices?limit=50&offset=0", view("inv-3"))
	// Una entrada ajena al path que no debe verse afectada
	c.Put("/dashboard/customers?limit=20&offset=0", view("c-1"))

	c.Invalidate("/dashboard/invoices")

	for _, key := range []string{
		"/dashboard/invoices?limit=20&offset=0",
		"/dashboard/invoices?limit=20&offset=20",
		"/dashboard/invoices?limit=50&offset=0",
	} {
		_, ok := c.Get(key)
		assert.False(t, ok, "la variante %s debió invalidarse", key)
	}

	_, ok := c.Get("/dashboard/customers?limit=20&offset=0")
	assert.True(t, ok, "otros paths no se ven afectados")
}

func TestListingCache_InvalidateSobreCacheVacioEsNoOp(t *testing.T) {
	c := cache.NewListingCache()
	c.Invalidate("/dashboard/invoices") // no debe entrar en pánico
}

func TestListingCache_AccesoConcurrente(t *testing.T) {
	c := cache.NewListingCache()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			key := fmt.Sprintf("/dashboard/invoices?limit=20&offset=%d", n)
			c.Put(key, view("inv"))
			c.Get(key)
			c.Invalidate("/dashboard/invoices")
		}(i)
	}
	wg.Wait()
}
