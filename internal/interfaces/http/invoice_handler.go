package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Facturas-api/internal/application/dto"
	"github.com/jhoicas/Facturas-api/internal/application/invoicing"
	"github.com/jhoicas/Facturas-api/internal/domain"
)

// InvoiceHandler maneja las mutaciones y lecturas de facturas (protegido).
type InvoiceHandler struct {
	uc  *invoicing.InvoiceUseCase
	pdf *invoicing.PDFUseCase
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(uc *invoicing.InvoiceUseCase, pdf *invoicing.PDFUseCase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc, pdf: pdf}
}

// invoiceForm extrae los campos crudos del formulario tal como llegan.
// La coerción de tipos es trabajo del validador, no del handler.
func invoiceForm(c *fiber.Ctx) map[string]string {
	return map[string]string{
		"customerId": c.FormValue("customerId"),
		"amount":     c.FormValue("amount"),
		"status":     c.FormValue("status"),
	}
}

// Create crea una factura desde el formulario.
// POST /dashboard/invoices
//
// Éxito: 303 See Other hacia el listado (la redirección termina el handler).
// Validación fallida: 422 con errores por campo.
// Fallo de DB: 500 con mensaje genérico, sin invalidar ni redirigir.
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	result, err := h.uc.Create(invoiceForm(c))
	if err != nil {
		return h.mutationError(c, err)
	}
	return c.Redirect(result.Redirect, fiber.StatusSeeOther)
}

// Update sobreescribe los campos mutables de la factura :id.
// POST /dashboard/invoices/:id
func (h *InvoiceHandler) Update(c *fiber.Ctx) error {
	result, err := h.uc.Update(c.Params("id"), invoiceForm(c))
	if err != nil {
		return h.mutationError(c, err)
	}
	return c.Redirect(result.Redirect, fiber.StatusSeeOther)
}

// Delete elimina la factura :id. No redirige: responde 204 y el listado ya
// renderizado sigue en pantalla (solo queda marcado como obsoleto).
// DELETE /dashboard/invoices/:id
func (h *InvoiceHandler) Delete(c *fiber.Ctx) error {
	if _, err := h.uc.Delete(c.Params("id")); err != nil {
		return h.mutationError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// List devuelve el listado de facturas (cacheado hasta la próxima mutación).
// GET /dashboard/invoices?limit=20&offset=0
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	list, err := h.uc.List(limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// GetByID devuelve una factura.
// GET /api/invoices/:id
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	invoice, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factura no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(invoice)
}

// Receipt devuelve el comprobante PDF de la factura.
// GET /api/invoices/:id/pdf
func (h *InvoiceHandler) Receipt(c *fiber.Ctx) error {
	pdfBytes, err := h.pdf.GetReceipt(c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factura no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	return c.Send(pdfBytes)
}

// mutationError mapea los fallos del pipeline de mutación a HTTP:
// errores de validación → 422 estructurado; fallo de persistencia → 500 con
// mensaje genérico (nunca la causa subyacente); id vacío → 400.
func (h *InvoiceHandler) mutationError(c *fiber.Ctx, err error) error {
	var verr *invoicing.ValidationError
	if errors.As(err, &verr) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ValidationErrorResponse{
			Message: verr.Message,
			Errors:  verr.FieldErrors,
		})
	}
	var merr *invoicing.MutationError
	if errors.As(err, &merr) {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MutationFailureResponse{Message: merr.Message})
	}
	if errors.Is(err, domain.ErrInvalidInput) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
