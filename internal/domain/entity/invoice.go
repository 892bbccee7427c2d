package entity

import "time"

// Estados válidos de una factura.
const (
	StatusPending = "pending" // emitida, pago pendiente
	StatusPaid    = "paid"    // pagada
)

// ValidStatus indica si s es uno de los dos estados permitidos.
func ValidStatus(s string) bool {
	return s == StatusPending || s == StatusPaid
}

// Invoice representa una factura simple: un cliente, un monto y un estado.
// AmountCents siempre en centavos (entero); Date la asigna el servidor al
// crear y es inmutable después.
type Invoice struct {
	ID          string
	CustomerID  string
	AmountCents int64
	Status      string // pending | paid
	Date        time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
