package invoicing

import (
	"github.com/jhoicas/Facturas-api/internal/application/dto"
	"github.com/jhoicas/Facturas-api/internal/domain/entity"
)

// ListingCache cache de la vista de listado de facturas. Las claves son
// variantes del path del listado (path + paginación); Invalidate descarta
// toda variante bajo ese path.
//
// El ejecutor de mutaciones solo necesita la señal de invalidación: no sabe
// ni le importa cómo está implementado el cache.
type ListingCache interface {
	Get(key string) ([]*dto.InvoiceResponse, bool)
	Put(key string, items []*dto.InvoiceResponse)
	Invalidate(path string)
}

// ReceiptPDFGenerator genera el comprobante PDF de una factura.
type ReceiptPDFGenerator interface {
	GenerateReceipt(invoice *entity.Invoice, customer *entity.Customer) ([]byte, error)
}
