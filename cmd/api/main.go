package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/toolbox-api/internal/application/report"
	"github.com/jhoicas/toolbox-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/toolbox-api/internal/infrastructure/pdf"
	"github.com/jhoicas/toolbox-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/toolbox-api/internal/interfaces/http"
	"github.com/jhoicas/toolbox-api/pkg/config"
	"github.com/jhoicas/toolbox-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("version", cfg.App.Version).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Adaptadores de lectura sobre el ODS del ERP
	orderRepo := postgres.NewOrderRepository(pool)
	salespersonRepo := postgres.NewSalespersonRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	vendorRepo := postgres.NewVendorRepository(pool)

	// Casos de uso
	orderUC := usecase.NewOrderUseCase(orderRepo)
	quoteUC := usecase.NewQuoteUseCase(orderRepo, usecase.QuoteConfig{
		WindowMonths: cfg.Report.QuoteWindowMonths,
		LowMarginPct: decimal.NewFromInt(int64(cfg.Report.LowMarginPct)),
	})
	dimensionUC := usecase.NewDimensionUseCase(salespersonRepo, customerRepo, vendorRepo)
	pdfUC := report.NewPDFUseCase(orderUC, infrapdf.NewMarotoMarginReport())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30, // el render PDF puede tardar más que un JSON
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestID())
	app.Use(httpRouter.AccessLog(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Toolbox API",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "OK",
			"version": cfg.App.Version,
			"endpoints": []string{
				"GET /health",
				"GET /api/orders/:orderNo/margin",
				"GET /api/orders/:orderNo/margin/pdf",
				"GET /api/quotes/active?salesperson_id=",
				"GET /api/salespeople",
				"GET /api/customers",
				"GET /api/vendors",
			},
		})
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "OK",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		OrderUC:     orderUC,
		QuoteUC:     quoteUC,
		DimensionUC: dimensionUC,
		PDFUC:       pdfUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
