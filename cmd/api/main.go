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

	"github.com/jhoicas/panaderia-demo/internal/application/auth"
	"github.com/jhoicas/panaderia-demo/internal/application/contact"
	"github.com/jhoicas/panaderia-demo/internal/application/receipt"
	"github.com/jhoicas/panaderia-demo/internal/application/reports"
	"github.com/jhoicas/panaderia-demo/internal/application/sales"
	"github.com/jhoicas/panaderia-demo/internal/application/seed"
	"github.com/jhoicas/panaderia-demo/internal/application/usecase"
	"github.com/jhoicas/panaderia-demo/internal/domain/entity"
	"github.com/jhoicas/panaderia-demo/internal/infrastructure/localstore"
	infrapdf "github.com/jhoicas/panaderia-demo/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/panaderia-demo/internal/interfaces/http"
	"github.com/jhoicas/panaderia-demo/pkg/config"
	"github.com/jhoicas/panaderia-demo/pkg/logger"
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
		Str("store", cfg.Store.Dir).
		Msg("iniciando aplicación")

	store, err := localstore.Open(cfg.Store.Dir)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacén local")
	}

	userRepo := localstore.NewUserRepository(store)
	productRepo := localstore.NewProductRepository(store)
	saleRepo := localstore.NewSaleRepository(store)
	contactRepo := localstore.NewContactRepository(store)
	sessionRepo := localstore.NewSessionRepository(store)

	// Dataset inicial: seguro de llamar en cada arranque
	initializer := seed.NewInitializer(store, userRepo, productRepo, saleRepo, contactRepo)
	if err := initializer.SeedOnce(); err != nil {
		log.Fatal().Err(err).Msg("sembrar dataset inicial")
	}

	authUC := auth.NewUseCase(userRepo, sessionRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	productUC := usecase.NewProductUseCase(productRepo, store)
	saleUC := sales.NewUseCase(store, productRepo, saleRepo, authUC)
	contactUC := contact.NewUseCase(contactRepo, store)
	reportUC := reports.NewUseCase(productRepo, saleRepo)

	pdfGenerator := infrapdf.NewMarotoReceiptGenerator()
	receiptUC := receipt.NewUseCase(saleRepo, productRepo, userRepo, pdfGenerator, receipt.ShopInfo{
		Name:    "Panadería La Espiga",
		Address: "Calle 12 #4-31",
		Phone:   "(601) 555-0134",
	})

	// Observador post-commit: la vista de órdenes se refresca sin polling
	saleUC.Subscribe(func(s entity.Sale) {
		log.Info().
			Int64("sale_id", s.ID).
			Str("receipt", s.ReceiptCode).
			Int64("total_cents", s.TotalCents).
			Msg("venta confirmada")
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Panadería Demo API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:    authUC,
		ProductUC: productUC,
		SaleUC:    saleUC,
		ReceiptUC: receiptUC,
		ContactUC: contactUC,
		ReportUC:  reportUC,
		JWTSecret: cfg.JWT.Secret,
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
