package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	appaudit "github.com/jhoicas/almacen-api/internal/application/audit"
	"github.com/jhoicas/almacen-api/internal/application/auth"
	"github.com/jhoicas/almacen-api/internal/application/ledger"
	"github.com/jhoicas/almacen-api/internal/application/query"
	"github.com/jhoicas/almacen-api/internal/application/report"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/almacen-api/internal/infrastructure/pdf"
	"github.com/jhoicas/almacen-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/almacen-api/internal/interfaces/http"
	"github.com/jhoicas/almacen-api/pkg/config"
	"github.com/jhoicas/almacen-api/pkg/logger"
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
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	auditRepo := postgres.NewAuditRepository(pool)
	queryRepo := postgres.NewQueryRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	auditUC := appaudit.NewUseCase(auditRepo, log)
	ledgerUC := ledger.NewUseCase(txRunner, productRepo, auditUC, log)
	queryUC := query.NewUseCase(queryRepo)
	userUC := usecase.NewUserUseCase(userRepo, txRunner)
	reportUC := report.NewUseCase(queryUC, infrapdf.NewMarotoReportGenerator())
	authUC := auth.NewUseCase(userRepo, auditUC, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		LedgerUC:           ledgerUC,
		QueryUC:            queryUC,
		AuditUC:            auditUC,
		AuthUC:             authUC,
		UserUC:             userUC,
		ReportUC:           reportUC,
		JWTSecret:          cfg.JWT.Secret,
		AuditRetentionDays: cfg.Audit.RetentionDays,
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
