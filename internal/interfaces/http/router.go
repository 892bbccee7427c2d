package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Facturas-api/internal/application/auth"
	"github.com/jhoicas/Facturas-api/internal/application/invoicing"
	"github.com/jhoicas/Facturas-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	InvoiceUC *invoicing.InvoiceUseCase
	PDFUC     *invoicing.PDFUseCase
	AuthUC    *auth.AuthUseCase
	JWTSecret string
}

// Router registra las rutas de la aplicación.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, deps.PDFUC)
	customerHandler := NewCustomerHandler(deps.InvoiceUC)

	// Dashboard (requiere Bearer Token; las mutaciones además rol admin)
	dashboard := app.Group("/dashboard", AuthMiddleware(deps.JWTSecret))
	invoices := dashboard.Group("/invoices")
	invoices.Get("/", invoiceHandler.List)
	invoices.Post("/", RequireRole(entity.RoleAdmin), invoiceHandler.Create)
	invoices.Post("/:id", RequireRole(entity.RoleAdmin), invoiceHandler.Update)
	invoices.Delete("/:id", RequireRole(entity.RoleAdmin), invoiceHandler.Delete)

	// API de lectura (protegido)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Get("/customers", customerHandler.List)
	protected.Get("/invoices/:id", invoiceHandler.GetByID)
	protected.Get("/invoices/:id/pdf", invoiceHandler.Receipt)
}
