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

	"github.com/jhoicas/almacen-api/internal/application/inventory"
	infrapdf "github.com/jhoicas/almacen-api/internal/infrastructure/pdf"
	"github.com/jhoicas/almacen-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/almacen-api/internal/interfaces/http"
	"github.com/jhoicas/almacen-api/pkg/config"
	"github.com/jhoicas/almacen-api/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	txRunner := postgres.NewTxRunner(pool)
	kardexSource := postgres.NewKardexSourceRepository(pool)
	assignmentRepo := postgres.NewAssignmentRepository(pool)
	writeOffRepo := postgres.NewWriteOffRepository(pool)
	receiptRepo := postgres.NewReceiptRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)

	// PDF: reporte kardex por asignación
	pdfGenerator := infrapdf.NewMarotoKardexGenerator()
	kardexUC := inventory.NewKardexUseCase(kardexSource, assignmentRepo, writeOffRepo, pdfGenerator, cfg.Report.Organization)
	receiptUC := inventory.NewReceiptUseCase(txRunner, receiptRepo, log.Zerolog())
	movementUC := inventory.NewRegisterMovementUseCase(txRunner, movementRepo, log.Zerolog())
	writeOffUC := inventory.NewWriteOffUseCase(txRunner, log.Zerolog())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Zerolog()))

	// Swagger UI en local: http://localhost:<port>/docs (solo si se generó docs/swagger.json)
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "Almacén API",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Kardex:    kardexUC,
		Receipts:  receiptUC,
		Movements: movementUC,
		WriteOffs: writeOffUC,
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
