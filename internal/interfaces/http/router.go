package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/toolbox-api/internal/application/report"
	"github.com/jhoicas/toolbox-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	OrderUC     *usecase.OrderUseCase
	QuoteUC     *usecase.QuoteUseCase
	DimensionUC *usecase.DimensionUseCase
	PDFUC       *report.PDFUseCase
}

// Router registra las rutas de la API. Todo el API es de solo lectura.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Margen por orden
	orderHandler := NewOrderHandler(deps.OrderUC, deps.PDFUC)
	orders := api.Group("/orders")
	orders.Get("/:orderNo/margin", orderHandler.GetMargin)
	orders.Get("/:orderNo/margin/pdf", orderHandler.GetMarginPDF)

	// Cotizaciones activas
	quoteHandler := NewQuoteHandler(deps.QuoteUC)
	api.Get("/quotes/active", quoteHandler.ListActive)

	// Catálogos de dimensión
	dimensionHandler := NewDimensionHandler(deps.DimensionUC)
	api.Get("/salespeople", dimensionHandler.ListSalespeople)
	api.Get("/customers", dimensionHandler.ListCustomers)
	api.Get("/vendors", dimensionHandler.ListVendors)
}
