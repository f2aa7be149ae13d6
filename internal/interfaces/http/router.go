package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fieldops-api/internal/application/analytics"
	"github.com/jhoicas/fieldops-api/internal/application/inventory"
	"github.com/jhoicas/fieldops-api/internal/application/report"
	"github.com/jhoicas/fieldops-api/internal/application/usecase"
	"github.com/jhoicas/fieldops-api/pkg/jwt"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ItemUC           *usecase.ItemUseCase
	CategoryUC       *usecase.CategoryUseCase
	RegisterMovement *inventory.RegisterMovementUseCase
	MovementHistory  *inventory.MovementHistoryUseCase
	Replenishment    *inventory.ReplenishmentUseCase
	SummaryUC        *analytics.SummaryUseCase
	StockReport      *report.StockReportUseCase
	JWTSecret        string
	JWTIssuer        string
}

// Router registra las rutas de la API. Todas requieren Bearer Token; las escrituras de
// catálogo y categorías además requieren rol admin o manager.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret, deps.JWTIssuer))
	catalogWriters := RequireRole(jwt.RoleAdmin, jwt.RoleManager)

	// Items
	items := api.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC, deps.MovementHistory)
	items.Get("/", itemHandler.List)
	items.Post("/", catalogWriters, itemHandler.Create)
	items.Get("/:id", itemHandler.GetByID)
	items.Put("/:id", catalogWriters, itemHandler.Update)
	items.Delete("/:id", catalogWriters, itemHandler.Delete)
	items.Get("/:id/movements", itemHandler.ListMovements)

	// Categories
	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", catalogWriters, categoryHandler.Create)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", catalogWriters, categoryHandler.Update)
	categories.Delete("/:id", catalogWriters, categoryHandler.Delete)

	// Inventory (cualquier rol)
	invGroup := api.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.RegisterMovement, deps.MovementHistory, deps.Replenishment, deps.SummaryUC)
	invGroup.Post("/movements", inventoryHandler.RegisterMovement)
	invGroup.Get("/movements", inventoryHandler.ListMovements)
	invGroup.Get("/summary", inventoryHandler.GetSummary)
	invGroup.Get("/replenishment-list", inventoryHandler.GetReplenishmentList)

	// Reports
	reports := api.Group("/reports")
	reportHandler := NewReportHandler(deps.StockReport)
	reports.Get("/inventory.pdf", reportHandler.DownloadInventoryPDF)
}
