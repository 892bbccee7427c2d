// Package invoicing implementa el pipeline de mutación validada de facturas:
// esquema declarativo → validación → normalización a centavos → persistencia
// → invalidación del listado.
package invoicing

// FieldKind clase de coerción que aplica el validador a un campo.
type FieldKind int

const (
	KindString FieldKind = iota // identidad, solo requiere no-vacío
	KindAmount                  // decimal estricto > 0
	KindEnum                    // pertenencia al conjunto Enum
)

// Field describe un campo del formulario: nombre tal como llega en el POST,
// coerción a aplicar y mensaje para el usuario cuando no valida.
type Field struct {
	Name    string
	Kind    FieldKind
	Enum    []string // valores permitidos cuando Kind == KindEnum
	Message string
}

// Schema es la lista ordenada de campos a validar más la intención de la
// operación (usada para el mensaje general: "Failed to Create Invoice.").
type Schema struct {
	Intent string // Create | Update
	Fields []Field
}

// Omit deriva un esquema sin los campos indicados. Las variantes por
// operación se construyen por sustracción del esquema base, no duplicando
// las reglas.
func (s Schema) Omit(names ...string) Schema {
	omitted := make(map[string]bool, len(names))
	for _, n := range names {
		omitted[n] = true
	}
	out := Schema{Intent: s.Intent}
	for _, f := range s.Fields {
		if !omitted[f.Name] {
			out.Fields = append(out.Fields, f)
		}
	}
	return out
}

// WithIntent deriva un esquema con otra intención (mismo juego de campos).
func (s Schema) WithIntent(intent string) Schema {
	s.Intent = intent
	return s
}

// Esquema base: todos los campos que una factura puede traer. id y date
// nunca los envía el usuario (id llega por la ruta, date la pone el reloj
// del servidor), por eso las variantes los omiten.
var baseInvoiceSchema = Schema{
	Fields: []Field{
		{Name: "id", Kind: KindString, Message: "Missing invoice id."},
		{Name: "customerId", Kind: KindString, Message: "Please select a customer."},
		{Name: "amount", Kind: KindAmount, Message: "Please enter an amount greater than $0."},
		{Name: "status", Kind: KindEnum, Enum: []string{"pending", "paid"}, Message: "Please select an invoice status."},
		{Name: "date", Kind: KindString, Message: "Missing invoice date."},
	},
}

// Esquemas por operación.
var (
	CreateInvoiceSchema = baseInvoiceSchema.Omit("id", "date").WithIntent("Create")
	UpdateInvoiceSchema = baseInvoiceSchema.Omit("id", "date").WithIntent("Update")
)
