package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Facturas-api/internal/application/dto"
	"github.com/jhoicas/Facturas-api/internal/application/invoicing"
)

// CustomerHandler expone los clientes que alimentan el select del formulario
// de facturas (protegido).
type CustomerHandler struct {
	uc *invoicing.InvoiceUseCase
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *invoicing.InvoiceUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// List GET /api/customers?limit=50&offset=0
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "50"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	list, err := h.uc.ListCustomers(limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}
