package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/factuurdesk/facturatie-api/internal/application/auth"
	"github.com/factuurdesk/facturatie-api/internal/application/billing"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	ClientUC    *billing.ClientUseCase
	QuotationUC *billing.QuotationUseCase
	InvoiceUC   *billing.InvoiceUseCase
	ProfileUC   *billing.ProfileUseCase
	ExportUC    *billing.ExportUseCase
	JWTSecret   string
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/signup", authHandler.Signup)
	api.Post("/login", authHandler.Login)

	// Protected routes (require Bearer token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Clients
	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", clientHandler.Delete)

	// Quotations
	quotations := protected.Group("/quotations")
	quotationHandler := NewQuotationHandler(deps.QuotationUC, deps.ExportUC)
	quotations.Post("/", quotationHandler.Create)
	quotations.Get("/", quotationHandler.List)
	quotations.Get("/:id", quotationHandler.GetByID)
	quotations.Put("/:id", quotationHandler.Update)
	quotations.Delete("/:id", quotationHandler.Delete)
	quotations.Post("/:id/convert-to-invoice", quotationHandler.ConvertToInvoice)
	quotations.Get("/:id/pdf", quotationHandler.DownloadPDF)

	// Invoices
	invoices := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, deps.ExportUC)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Put("/:id", invoiceHandler.Update)
	invoices.Delete("/:id", invoiceHandler.Delete)
	invoices.Get("/:id/pdf", invoiceHandler.DownloadPDF)
	invoices.Get("/:id/ubl", invoiceHandler.DownloadUBL)

	// Profile
	profileHandler := NewProfileHandler(deps.ProfileUC)
	protected.Get("/profile", profileHandler.Get)
	protected.Put("/profile", profileHandler.Update)
}
