package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/matex-app/matex-api/internal/application/catalog"
	"github.com/matex-app/matex-api/internal/application/reports"
	"github.com/matex-app/matex-api/internal/application/sales"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CatalogUC *catalog.UseCase
	SalesUC   *sales.UseCase
	ReportsUC *reports.UseCase
	ExportDir string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.CatalogUC, deps.ExportDir)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/export", productHandler.Export)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Sales
	salesGroup := api.Group("/sales")
	saleHandler := NewSaleHandler(deps.SalesUC, deps.ExportDir)
	salesGroup.Get("/", saleHandler.List)
	salesGroup.Post("/", saleHandler.Create)
	salesGroup.Get("/export", saleHandler.Export)
	salesGroup.Get("/:id/lines", saleHandler.Lines)
	salesGroup.Delete("/:id", saleHandler.Cancel)

	// Reports
	reportsGroup := api.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportsUC, deps.ExportDir)
	reportsGroup.Get("/summary", reportHandler.Summary)
	reportsGroup.Get("/top-quantity", reportHandler.TopQuantity)
	reportsGroup.Get("/top-revenue", reportHandler.TopRevenue)
	reportsGroup.Get("/top-profit", reportHandler.TopProfit)
	reportsGroup.Get("/comparison", reportHandler.Comparison)
	reportsGroup.Get("/export", reportHandler.Export)
}
