package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/almacen-api/internal/application/audit"
	"github.com/jhoicas/almacen-api/internal/application/auth"
	"github.com/jhoicas/almacen-api/internal/application/ledger"
	"github.com/jhoicas/almacen-api/internal/application/query"
	"github.com/jhoicas/almacen-api/internal/application/report"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	LedgerUC           *ledger.UseCase
	QueryUC            *query.UseCase
	AuditUC            *audit.UseCase
	AuthUC             *auth.UseCase
	UserUC             *usecase.UserUseCase
	ReportUC           *report.UseCase
	JWTSecret          string
	AuditRetentionDays int
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products (protegido). Las rutas fijas van antes de /:id.
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.LedgerUC, deps.QueryUC)
	products.Get("/categories", productHandler.Categories)
	products.Get("/locations", productHandler.Locations)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.Search)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Inventory (protegido)
	invGroup := protected.Group("/inventory")
	stockHandler := NewStockHandler(deps.LedgerUC, deps.QueryUC)
	invGroup.Post("/movements", stockHandler.RegisterMovement)
	invGroup.Get("/history", stockHandler.History)
	invGroup.Get("/low-stock", stockHandler.LowStock)

	// Reports (protegido)
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/inventory", reportHandler.Inventory)
	reports.Get("/movements", reportHandler.Movements)

	// Rutas de administración (solo admin)
	adminOnly := RequireRole(entity.RoleAdmin)

	users := protected.Group("/users", adminOnly)
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	auditGroup := protected.Group("/audit", adminOnly)
	auditHandler := NewAuditHandler(deps.AuditUC, deps.AuditRetentionDays)
	auditGroup.Get("/", auditHandler.List)
	auditGroup.Post("/purge", auditHandler.Purge)
}
