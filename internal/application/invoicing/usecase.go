package invoicing

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/Facturas-api/internal/application/dto"
	"github.com/jhoicas/Facturas-api/internal/domain"
	"github.com/jhoicas/Facturas-api/internal/domain/entity"
	"github.com/jhoicas/Facturas-api/internal/domain/repository"
	"github.com/jhoicas/Facturas-api/pkg/money"
)

// ListingPath path del listado de facturas: es la clave de invalidación y
// el destino de la redirección tras crear o actualizar.
const ListingPath = "/dashboard/invoices"

// MutationError fallo de persistencia convertido a valor: Message es lo
// único que ve el usuario; la causa queda envuelta para el log.
type MutationError struct {
	Op      string // create | update | delete
	Message string
	Err     error
}

func (e *MutationError) Error() string { return e.Message }
func (e *MutationError) Unwrap() error { return e.Err }

// MutationResult resultado de una mutación exitosa. Redirect vacío significa
// que el handler no debe navegar (caso delete).
type MutationResult struct {
	InvoiceID string
	Redirect  string
}

// InvoiceUseCase ejecuta las mutaciones de facturas: valida con el esquema de
// la operación, normaliza el monto a centavos, persiste e invalida el listado.
type InvoiceUseCase struct {
	invoices  repository.InvoiceRepository
	customers repository.CustomerRepository
	cache     ListingCache
	log       zerolog.Logger
	now       func() time.Time
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(
	invoices repository.InvoiceRepository,
	customers repository.CustomerRepository,
	cache ListingCache,
	log zerolog.Logger,
) *InvoiceUseCase {
	return &InvoiceUseCase{
		invoices:  invoices,
		customers: customers,
		cache:     cache,
		log:       log,
		now:       time.Now,
	}
}

// WithClock fija el reloj (para tests deterministas de la fecha).
func (uc *InvoiceUseCase) WithClock(now func() time.Time) *InvoiceUseCase {
	uc.now = now
	return uc
}

// Create valida el formulario contra CreateInvoiceSchema y persiste una
// factura nueva con id del servidor y la fecha actual (UTC). El error puede
// ser *ValidationError (errores por campo) o *MutationError (fallo de DB,
// mensaje genérico). Tras el éxito el listado queda invalidado y el result
// trae el destino de redirección.
func (uc *InvoiceUseCase) Create(form map[string]string) (*MutationResult, error) {
	record, verr := Validate(CreateInvoiceSchema, form)
	if verr != nil {
		return nil, verr
	}

	now := uc.now().UTC()
	invoice := &entity.Invoice{
		ID:          uuid.New().String(),
		CustomerID:  record.CustomerID,
		AmountCents: record.AmountCents,
		Status:      record.Status,
		// Fecha del servidor, truncada al día; inmutable después de crear
		Date:      time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.invoices.Create(invoice); err != nil {
		uc.log.Error().Err(err).Str("customer_id", record.CustomerID).Msg("insert de factura falló")
		return nil, &MutationError{Op: "create", Message: "Database Error: Failed to create Invoice", Err: err}
	}

	uc.cache.Invalidate(ListingPath)
	return &MutationResult{InvoiceID: invoice.ID, Redirect: ListingPath}, nil
}

// Update valida contra UpdateInvoiceSchema y sobreescribe los tres campos
// mutables de la fila id. La fecha no se toca. El id llega por la ruta y se
// confía tal cual (el endpoint está detrás del middleware de auth).
func (uc *InvoiceUseCase) Update(id string, form map[string]string) (*MutationResult, error) {
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	record, verr := Validate(UpdateInvoiceSchema, form)
	if verr != nil {
		return nil, verr
	}

	invoice := &entity.Invoice{
		ID:          id,
		CustomerID:  record.CustomerID,
		AmountCents: record.AmountCents,
		Status:      record.Status,
		UpdatedAt:   uc.now().UTC(),
	}
	if err := uc.invoices.Update(invoice); err != nil {
		uc.log.Error().Err(err).Str("invoice_id", id).Msg("update de factura falló")
		return nil, &MutationError{Op: "update", Message: "Database Error: Failed to update Invoice", Err: err}
	}

	uc.cache.Invalidate(ListingPath)
	return &MutationResult{InvoiceID: id, Redirect: ListingPath}, nil
}

// Delete elimina la fila id e invalida el listado. No redirige: el delete se
// dispara desde el propio listado ya renderizado. Borrar un id inexistente
// se trata como éxito: el estado final es el mismo.
func (uc *InvoiceUseCase) Delete(id string) (*MutationResult, error) {
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.invoices.Delete(id); err != nil {
		uc.log.Error().Err(err).Str("invoice_id", id).Msg("delete de factura falló")
		return nil, &MutationError{Op: "delete", Message: "Database Error: Failed to delete Invoice", Err: err}
	}

	uc.cache.Invalidate(ListingPath)
	return &MutationResult{InvoiceID: id}, nil
}

// GetByID devuelve una factura por id.
func (uc *InvoiceUseCase) GetByID(id string) (*dto.InvoiceResponse, error) {
	invoice, err := uc.invoices.GetByID(id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrNotFound
	}
	return toInvoiceResponse(invoice, "", ""), nil
}

// List devuelve el listado de facturas con el nombre del cliente, sirviendo
// el cache si la vista sigue fresca; si no, consulta la DB y repuebla.
func (uc *InvoiceUseCase) List(limit, offset int) ([]*dto.InvoiceResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	key := listingKey(limit, offset)
	if cached, ok := uc.cache.Get(key); ok {
		return cached, nil
	}

	rows, err := uc.invoices.ListWithCustomer(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.InvoiceResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, toInvoiceResponse(&r.Invoice, r.CustomerName, r.CustomerEmail))
	}
	uc.cache.Put(key, out)
	return out, nil
}

// ListCustomers devuelve los clientes para el select del formulario.
func (uc *InvoiceUseCase) ListCustomers(limit, offset int) ([]*dto.CustomerResponse, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.customers.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, &dto.CustomerResponse{
			ID:       c.ID,
			Name:     c.Name,
			Email:    c.Email,
			ImageURL: c.ImageURL,
		})
	}
	return out, nil
}

func listingKey(limit, offset int) string {
	return fmt.Sprintf("%s?limit=%d&offset=%d", ListingPath, limit, offset)
}

func toInvoiceResponse(inv *entity.Invoice, customerName, customerEmail string) *dto.InvoiceResponse {
	return &dto.InvoiceResponse{
		ID:              inv.ID,
		CustomerID:      inv.CustomerID,
		CustomerName:    customerName,
		CustomerEmail:   customerEmail,
		Amount:          inv.AmountCents,
		AmountFormatted: money.FormatUSD(inv.AmountCents),
		Status:          inv.Status,
		Date:            inv.Date.Format("2006-01-02"),
	}
}
