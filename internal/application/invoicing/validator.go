package invoicing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Facturas-api/pkg/money"
)

// InvoiceRecord es el resultado tipado de una validación exitosa. Solo se
// construye aquí: ningún otro código arma un record a mano.
type InvoiceRecord struct {
	CustomerID  string
	Amount      decimal.Decimal // unidades mayores, ya validado > 0
	AmountCents int64           // derivado una sola vez en la validación
	Status      string
}

// ValidationError agrupa los mensajes por campo de una validación fallida.
// Es un valor de retorno, no un fault: el caller re-presenta el formulario.
type ValidationError struct {
	Message     string
	FieldErrors map[string][]string
}

func (e *ValidationError) Error() string { return e.Message }

// Validate aplica el esquema a los valores crudos del formulario. Función
// pura: o todo el record valida y se coercionan los tipos, o se devuelven
// todos los errores por campo acumulados (nunca un record parcial).
func Validate(schema Schema, raw map[string]string) (*InvoiceRecord, *ValidationError) {
	record := &InvoiceRecord{}
	fieldErrs := make(map[string][]string)

	for _, f := range schema.Fields {
		value, ok := raw[f.Name]
		if !ok || value == "" {
			fieldErrs[f.Name] = append(fieldErrs[f.Name], f.Message)
			continue
		}
		switch f.Kind {
		case KindAmount:
			amount, err := decimal.NewFromString(value)
			if err != nil || !amount.IsPositive() {
				fieldErrs[f.Name] = append(fieldErrs[f.Name], f.Message)
				continue
			}
			record.Amount = amount
			record.AmountCents = money.ToCents(amount)
		case KindEnum:
			if !contains(f.Enum, value) {
				fieldErrs[f.Name] = append(fieldErrs[f.Name], f.Message)
				continue
			}
			record.Status = value
		default:
			if f.Name == "customerId" {
				record.CustomerID = value
			}
		}
	}

	if len(fieldErrs) > 0 {
		return nil, &ValidationError{
			Message:     fmt.Sprintf("Missing Fields. Failed to %s Invoice.", schema.Intent),
			FieldErrors: fieldErrs,
		}
	}
	return record, nil
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
