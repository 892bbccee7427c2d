package invoicing

import (
	"github.com/jhoicas/Facturas-api/internal/domain"
	"github.com/jhoicas/Facturas-api/internal/domain/repository"
)

// PDFUseCase arma el comprobante PDF de una factura: carga factura y cliente
// y delega el layout al generador.
type PDFUseCase struct {
	invoices  repository.InvoiceRepository
	customers repository.CustomerRepository
	generator ReceiptPDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(
	invoices repository.InvoiceRepository,
	customers repository.CustomerRepository,
	generator ReceiptPDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{invoices: invoices, customers: customers, generator: generator}
}

// GetReceipt devuelve los bytes del PDF para la factura id.
func (uc *PDFUseCase) GetReceipt(id string) ([]byte, error) {
	invoice, err := uc.invoices.GetByID(id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrNotFound
	}
	customer, err := uc.customers.GetByID(invoice.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	return uc.generator.GenerateReceipt(invoice, customer)
}
