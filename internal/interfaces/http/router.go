package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/panaderia-demo/internal/application/auth"
	"github.com/jhoicas/panaderia-demo/internal/application/contact"
	"github.com/jhoicas/panaderia-demo/internal/application/receipt"
	"github.com/jhoicas/panaderia-demo/internal/application/reports"
	"github.com/jhoicas/panaderia-demo/internal/application/sales"
	"github.com/jhoicas/panaderia-demo/internal/application/usecase"
	"github.com/jhoicas/panaderia-demo/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.UseCase
	ProductUC *usecase.ProductUseCase
	SaleUC    *sales.UseCase
	ReceiptUC *receipt.UseCase
	ContactUC *contact.UseCase
	ReportUC  *reports.UseCase
	JWTSecret string
}

// Router registra las rutas de la API. La vitrina (listado de productos y
// contacto) es pública; el resto requiere Bearer Token, con las mutaciones
// de catálogo restringidas a manager/stockist y las ventas a cajeros.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)

	// Vitrina y contacto (público)
	productHandler := NewProductHandler(deps.ProductUC)
	api.Get("/products", productHandler.List)

	contactHandler := NewContactHandler(deps.ContactUC)
	api.Post("/contact", contactHandler.Send)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Get("/auth/me", authHandler.Me)

	// Catálogo (protegido: manager o stockist)
	catalog := protected.Group("/products", RequireRole(entity.RoleManager, entity.RoleStockist))
	catalog.Post("/", productHandler.Upsert)
	catalog.Delete("/:id", productHandler.Delete)

	// Ventas (protegido: manager o cashier)
	saleHandler := NewSaleHandler(deps.SaleUC, deps.ReceiptUC)
	salesGroup := protected.Group("/sales", RequireRole(entity.RoleManager, entity.RoleCashier))
	salesGroup.Post("/", saleHandler.Create)
	salesGroup.Get("/", saleHandler.List)
	salesGroup.Get("/:id", saleHandler.GetByID)
	salesGroup.Get("/:id/receipt", saleHandler.Receipt)

	// Bandeja de contacto (protegido: manager)
	protected.Get("/contact", RequireRole(entity.RoleManager), contactHandler.List)

	// Reportes (protegido: manager)
	reportHandler := NewReportHandler(deps.ReportUC)
	reportsGroup := protected.Group("/reports", RequireRole(entity.RoleManager))
	reportsGroup.Get("/today", reportHandler.Today)
	reportsGroup.Get("/closing", reportHandler.Closing)
	reportsGroup.Get("/expiry", reportHandler.Expiry)
}
