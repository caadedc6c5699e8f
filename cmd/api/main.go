// @title        Activos API
// @version      1.0
// @description  Ledger de activos fijos: alta, traslados, bajas, cronogramas de depreciación y valoración por categoría.
// @BasePath     /
// @securityDefinitions.apikey Bearer
// @in           header
// @name         Authorization
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

	_ "github.com/jhoicas/Activos-api/docs"
	"github.com/jhoicas/Activos-api/internal/application/ledger"
	"github.com/jhoicas/Activos-api/internal/application/reporting"
	"github.com/jhoicas/Activos-api/internal/application/usecase"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	infrapdf "github.com/jhoicas/Activos-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Activos-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/Activos-api/internal/interfaces/http"
	"github.com/jhoicas/Activos-api/pkg/config"
	"github.com/jhoicas/Activos-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
		App:   cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	store, err := storage.Open(ctx, cfg, log.Component("store"))
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacén")
	}
	defer store.Close()

	repos := store.Repos
	assetLedger := ledger.New(store.Tx, repos.Assets, log.Zerolog(),
		ledger.WithDefaultMethod(entity.DepreciationMethod(cfg.Ledger.DefaultMethod)),
		ledger.WithStatusAudit(cfg.Ledger.AuditStatusChanges),
	)
	assetQueries := usecase.NewAssetQueryUseCase(repos.Assets, repos.Depreciation, repos.Transfers, repos.History)
	categoryUC := usecase.NewCategoryUseCase(repos.Categories)
	disposalQueries := usecase.NewDisposalQueryUseCase(repos.Disposals, repos.Notifications)
	valuationUC := reporting.NewValuationUseCase(store.Reports)

	// PDF: cronograma de depreciación imprimible
	schedulePDF := reporting.NewSchedulePDFUseCase(repos.Assets, repos.Categories, repos.Depreciation, infrapdf.NewMarotoPDFGenerator())

	if cfg.JWT.Secret == "" {
		log.Warn().Msg("JWT_SECRET vacío: /api sin autenticación")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Component("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Activos API",
	}))

	app.Get("/health", httpRouter.Health(cfg.App.Name, store.Ping))

	httpRouter.Router(app, httpRouter.RouterDeps{
		Commands:   assetLedger,
		Queries:    assetQueries,
		PDF:        schedulePDF,
		Categories: categoryUC,
		Disposals:  disposalQueries,
		Reports:    valuationUC,
		JWTSecret:  cfg.JWT.Secret,
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
