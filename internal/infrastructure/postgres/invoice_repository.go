package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Facturas-api/internal/domain"
	"github.com/jhoicas/Facturas-api/internal/domain/entity"
	"github.com/jhoicas/Facturas-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación de InvoiceRepository (usable con pool o tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// Create persiste una factura nueva. Valores siempre como parámetros tipados,
// nunca concatenados en el SQL.
func (r *InvoiceRepo) Create(invoice *entity.Invoice) error {
	query := `
		INSERT INTO invoices (id, customer_id, amount, status, date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		invoice.ID, invoice.CustomerID, invoice.AmountCents, invoice.Status,
		invoice.Date, invoice.CreatedAt, invoice.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("insert invoice: %w", domain.ErrCustomerNotFound)
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// Update sobreescribe customer_id, amount y status de la fila id. La columna
// date queda fuera del SET: es inmutable después de crear.
func (r *InvoiceRepo) Update(invoice *entity.Invoice) error {
	query := `
		UPDATE invoices SET customer_id = $2, amount = $3, status = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		invoice.ID, invoice.CustomerID, invoice.AmountCents, invoice.Status, invoice.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("update invoice: %w", domain.ErrCustomerNotFound)
		}
		return fmt.Errorf("update invoice: %w", err)
	}
	return nil
}

// Delete elimina la factura id. No inspecciona las filas afectadas: borrar
// un id inexistente no se distingue del éxito.
func (r *InvoiceRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}
	return nil
}

// GetByID obtiene una factura por ID. Devuelve (nil, nil) si no existe.
func (r *InvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	query := `
		SELECT id, customer_id, amount, status, date, created_at, updated_at
		FROM invoices WHERE id = $1`
	var inv entity.Invoice
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&inv.ID, &inv.CustomerID, &inv.AmountCents, &inv.Status,
		&inv.Date, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return &inv, nil
}

// ListWithCustomer lista facturas con nombre y email del cliente, más
// recientes primero.
func (r *InvoiceRepo) ListWithCustomer(limit, offset int) ([]*repository.InvoiceListItem, error) {
	query := `
		SELECT i.id, i.customer_id, i.amount, i.status, i.date, i.created_at, i.updated_at,
		       c.name, c.email
		FROM invoices i
		JOIN customers c ON c.id = i.customer_id
		ORDER BY i.date DESC, i.created_at DESC
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()
	var list []*repository.InvoiceListItem
	for rows.Next() {
		var item repository.InvoiceListItem
		if err := rows.Scan(
			&item.Invoice.ID, &item.Invoice.CustomerID, &item.Invoice.AmountCents,
			&item.Invoice.Status, &item.Invoice.Date, &item.Invoice.CreatedAt, &item.Invoice.UpdatedAt,
			&item.CustomerName, &item.CustomerEmail,
		); err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, &item)
	}
	return list, rows.Err()
}
