package repository

import "github.com/jhoicas/Facturas-api/internal/domain/entity"

// InvoiceListItem fila del listado de facturas (join con el cliente).
type InvoiceListItem struct {
	Invoice       entity.Invoice
	CustomerName  string
	CustomerEmail string
}

// InvoiceRepository define el puerto de persistencia para Invoice.
// Cada mutación es exactamente una sentencia parametrizada.
type InvoiceRepository interface {
	Create(invoice *entity.Invoice) error
	// Update sobreescribe customer_id, amount y status de la fila id.
	// Nunca toca date.
	Update(invoice *entity.Invoice) error
	// Delete elimina la fila id. Borrar un id inexistente no es error.
	Delete(id string) error
	GetByID(id string) (*entity.Invoice, error)
	ListWithCustomer(limit, offset int) ([]*InvoiceListItem, error)
}
