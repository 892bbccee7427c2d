package invoicing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Facturas-api/internal/application/invoicing"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// validForm formulario completo y válido para crear/actualizar.
func validForm() map[string]string {
	return map[string]string{
		"customerId": "c-1",
		"amount":     "49.99",
		"status":     "pending",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Validación exitosa: coerción de tipos y derivación de centavos
// ──────────────────────────────────────────────────────────────────────────────

func TestValidate_FormularioValido(t *testing.T) {
	record, verr := invoicing.Validate(invoicing.CreateInvoiceSchema, validForm())
	require.Nil(t, verr, "un formulario completo debe validar")
	require.NotNil(t, record)

	assert.Equal(t, "c-1", record.CustomerID)
	assert.Equal(t, "pending", record.Status)
	assert.Equal(t, "49.99", record.Amount.String(), "el monto se coerciona a decimal")
	assert.Equal(t, int64(4999), record.AmountCents, "los centavos se derivan una sola vez al validar")
}

func TestValidate_MontoEntero(t *testing.T) {
	form := validForm()
	form["amount"] = "100"
	record, verr := invoicing.Validate(invoicing.CreateInvoiceSchema, form)
	require.Nil(t, verr)
	assert.Equal(t, int64(10000), record.AmountCents)
}

// ──────────────────────────────────────────────────────────────────────────────
// Errores por campo
// ──────────────────────────────────────────────────────────────────────────────

func TestValidate_SinCliente(t *testing.T) {
	form := validForm()
	delete(form, "customerId")

	record, verr := invoicing.Validate(invoicing.CreateInvoiceSchema, form)
	assert.Nil(t, record, "nunca se construye un record parcial")
	require.NotNil(t, verr)
	assert.Equal(t, []string{"Please select a customer."}, verr.FieldErrors["customerId"])
	assert.Equal(t, "Missing Fields. Failed to Create Invoice.", verr.Message)
}

func TestValidate_ClienteVacio(t *testing.T) {
	form := validForm()
	form["customerId"] = ""

	_, verr := invoicing.Validate(invoicing.CreateInvoiceSchema, form)
	require.NotNil(t, verr)
	assert.Contains(t, verr.FieldErrors, "customerId")
}

func TestValidate_MontoInvalido(t *testing.T) {
	cases := []string{"", "0", "-5", "abc", "12.3.4"}
	for _, amount := range cases {
		form := validForm()
		form["amount"] = amount

		record, verr := invoicing.Validate(invoicing.CreateInvoiceSchema, form)
		assert.Nil(t, record, "amount=%q no debe validar", amount)
		require.NotNil(t, verr, "amount=%q", amount)
		assert.Equal(t, []string{"Please enter an amount greater than $0."},
			verr.FieldErrors["amount"], "amount=%q", amount)
	}
}

func TestValidate_EstadoFueraDelEnum(t *testing.T) {
	for _, status := range []string{"", "PAID", "draft", "pending "} {
		form := validForm()
		form["status"] = status

		_, verr := invoicing.Validate(invoicing.CreateInvoiceSchema, form)
		require.NotNil(t, verr, "status=%q", status)
		assert.Equal(t, []string{"Please select an invoice status."},
			verr.FieldErrors["status"], "status=%q", status)
	}
}

func TestValidate_AcumulaTodosLosErrores(t *testing.T) {
	// Todo inválido a la vez: el resultado debe traer los tres campos.
	_, verr := invoicing.Validate(invoicing.CreateInvoiceSchema, map[string]string{})
	require.NotNil(t, verr)
	assert.Len(t, verr.FieldErrors, 3)
	assert.Contains(t, verr.FieldErrors, "customerId")
	assert.Contains(t, verr.FieldErrors, "amount")
	assert.Contains(t, verr.FieldErrors, "status")
}

func TestValidate_MensajeDeUpdate(t *testing.T) {
	_, verr := invoicing.Validate(invoicing.UpdateInvoiceSchema, map[string]string{})
	require.NotNil(t, verr)
	assert.Equal(t, "Missing Fields. Failed to Update Invoice.", verr.Message)
}

// ──────────────────────────────────────────────────────────────────────────────
// Derivación de esquemas por omisión
// ──────────────────────────────────────────────────────────────────────────────

func TestSchemas_OmitenIdYDate(t *testing.T) {
	// El usuario nunca envía id ni date: las variantes deben ignorarlos
	// aunque vengan en el formulario.
	form := validForm()
	form["id"] = "inyectado"
	form["date"] = "1999-01-01"

	for _, schema := range []invoicing.Schema{invoicing.CreateInvoiceSchema, invoicing.UpdateInvoiceSchema} {
		record, verr := invoicing.Validate(schema, form)
		require.Nil(t, verr)
		require.NotNil(t, record)
	}

	for _, f := range invoicing.CreateInvoiceSchema.Fields {
		assert.NotEqual(t, "id", f.Name)
		assert.NotEqual(t, "date", f.Name)
	}
}

func TestSchema_OmitNoMutaElOriginal(t *testing.T) {
	base := invoicing.Schema{Fields: []invoicing.Field{
		{Name: "a"}, {Name: "b"}, {Name: "c"},
	}}
	derived := base.Omit("b")

	assert.Len(t, base.Fields, 3, "el esquema base no debe mutarse")
	require.Len(t, derived.Fields, 2)
	assert.Equal(t, "a", derived.Fields[0].Name)
	assert.Equal(t, "c", derived.Fields[1].Name)
}
