package dto

// InvoiceResponse factura en respuestas. Amount siempre en centavos;
// AmountFormatted es la representación para mostrar (ej. $49.99).
type InvoiceResponse struct {
	ID              string `json:"id"`
	CustomerID      string `json:"customer_id"`
	CustomerName    string `json:"customer_name,omitempty"`
	CustomerEmail   string `json:"customer_email,omitempty"`
	Amount          int64  `json:"amount"`
	AmountFormatted string `json:"amount_formatted"`
	Status          string `json:"status"` // pending | paid
	Date            string `json:"date"`   // YYYY-MM-DD, asignada por el servidor
}

// MutationFailureResponse cuerpo cuando la persistencia falla: mensaje
// genérico, nunca el detalle del error subyacente.
type MutationFailureResponse struct {
	Message string `json:"message"`
}

// CustomerResponse cliente en respuestas (alimenta el select del formulario).
type CustomerResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
}
