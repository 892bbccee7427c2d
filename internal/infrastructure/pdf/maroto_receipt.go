// Package pdf implementa el comprobante PDF de una factura usando Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────┐
//	│  HEADER: Nombre app  │  N° Factura + Fecha          │
//	│  ─────────────────────────────────────────────────  │
//	│  CLIENTE: Nombre + Email                            │
//	│  ─────────────────────────────────────────────────  │
//	│  DETALLE: Estado | Fecha | Monto                    │
//	│  ─────────────────────────────────────────────────  │
//	│  TOTAL                                              │
//	└─────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Facturas-api/internal/application/invoicing"
	"github.com/jhoicas/Facturas-api/internal/domain/entity"
	"github.com/jhoicas/Facturas-api/pkg/money"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ invoicing.ReceiptPDFGenerator = (*MarotoReceiptGenerator)(nil)

// MarotoReceiptGenerator implementa invoicing.ReceiptPDFGenerator usando Maroto v2.
type MarotoReceiptGenerator struct {
	appName string
}

// NewMarotoReceiptGenerator construye el generador.
func NewMarotoReceiptGenerator(appName string) *MarotoReceiptGenerator {
	return &MarotoReceiptGenerator{appName: appName}
}

// GenerateReceipt genera el PDF y devuelve sus bytes.
func (g *MarotoReceiptGenerator) GenerateReceipt(invoice *entity.Invoice, customer *entity.Customer) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Invoice "+invoice.ID, true).
		WithAuthor(g.appName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.appName, invoice))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(customer))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(detailHeaderRow())
	m.AddRows(detailRow(invoice))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(totalRow(invoice))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nombre de la app (izq) y número de factura + fecha (der).
func headerRow(appName string, invoice *entity.Invoice) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(appName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("INVOICE", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(invoice.ID, props.Text{
				Size: 8, Align: align.Right, Top: 7,
			}),
			text.New(invoice.Date.Format("2006-01-02"), props.Text{
				Size: 9, Align: align.Right, Top: 12, Color: colorGray,
			}),
		),
	)
}

// customerRow: datos del cliente facturado.
func customerRow(customer *entity.Customer) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("BILL TO", props.Text{
				Style: fontstyle.Bold, Size: 7, Color: colorGray, Top: 1,
			}),
			text.New(customer.Name, props.Text{Size: 10, Top: 4}),
			text.New(customer.Email, props.Text{Size: 8, Top: 9, Color: colorGray}),
		),
	)
}

func detailHeaderRow() core.Row {
	header := func(label string, a align.Type) core.Col {
		return col.New(4).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary,
		}))
	}
	return row.New(7).Add(
		header("STATUS", align.Left),
		header("DATE", align.Center),
		header("AMOUNT", align.Right),
	)
}

func detailRow(invoice *entity.Invoice) core.Row {
	return row.New(7).Add(
		col.New(4).Add(text.New(strings.ToUpper(invoice.Status), props.Text{Size: 9})),
		col.New(4).Add(text.New(invoice.Date.Format("2006-01-02"), props.Text{Size: 9, Align: align.Center})),
		col.New(4).Add(text.New(money.FormatUSD(invoice.AmountCents), props.Text{Size: 9, Align: align.Right})),
	)
}

func totalRow(invoice *entity.Invoice) core.Row {
	return row.New(10).Add(
		col.New(8).Add(text.New("TOTAL", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 2,
		})),
		col.New(4).Add(text.New(money.FormatUSD(invoice.AmountCents), props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 2, Color: colorPrimary,
		})),
	)
}
