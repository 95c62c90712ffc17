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

	"github.com/jhoicas/Temucosoft-api/internal/application/analytics"
	"github.com/jhoicas/Temucosoft-api/internal/application/auth"
	"github.com/jhoicas/Temucosoft-api/internal/application/entitlement"
	"github.com/jhoicas/Temucosoft-api/internal/application/inventory"
	"github.com/jhoicas/Temucosoft-api/internal/application/usecase"
	"github.com/jhoicas/Temucosoft-api/internal/domain/plan"
	"github.com/jhoicas/Temucosoft-api/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/Temucosoft-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Temucosoft-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Temucosoft-api/internal/interfaces/http"
	"github.com/jhoicas/Temucosoft-api/pkg/config"
	"github.com/jhoicas/Temucosoft-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("timezone", cfg.App.Timezone).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET es obligatorio")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if cfg.DB.MigrateOnStart {
		applied, err := postgres.Migrate(ctx, pool)
		if err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
		log.Info().Strs("applied", applied).Msg("migraciones al día")
	}

	repos := postgres.NewRepos(pool)
	txRunner := postgres.NewTxRunner(pool)
	reportRepo := postgres.NewReportRepository(pool)

	// Límite de sucursales para empresas sin plan activo
	noPlanLimit := plan.Of(1)
	if cfg.Plans.NoSubscriptionPolicy == config.NoSubscriptionUnlimited {
		noPlanLimit = plan.NoLimit()
	}
	catalog := plan.Default(noPlanLimit)

	appMetrics := metrics.New()
	resolver := entitlement.NewResolver(catalog, repos.Subscriptions, repos.Users, log.Named("entitlement"))
	enforcer := entitlement.NewEnforcer(catalog, log.Named("quota"), appMetrics)

	deps := usecase.Deps{
		Repos:     repos,
		Tx:        txRunner,
		Resolver:  resolver,
		Enforcer:  enforcer,
		Log:       log,
		Observer:  appMetrics,
		Location:  cfg.App.Location(),
		TrialDays: cfg.Plans.TrialDays,
	}

	authUC := auth.NewAuthUseCase(repos.Users, auth.JWTConfig{
		Secret:            cfg.JWT.Secret,
		ExpMinutes:        cfg.JWT.Expiration,
		RefreshExpMinutes: cfg.JWT.RefreshExpiration,
		Issuer:            cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ErrorHandler: httpRouter.ErrorHandler,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Named("http"), appMetrics))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Temucosoft API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := pool.Ping(c.UserContext()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded", "service": cfg.App.Name})
		}
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		UserUC:         usecase.NewUserUseCase(deps),
		CompanyUC:      usecase.NewCompanyUseCase(deps),
		SubscriptionUC: usecase.NewSubscriptionUseCase(deps),
		PlanUC:         usecase.NewPlanUseCase(deps),
		BranchUC:       usecase.NewBranchUseCase(deps),
		ProductUC:      usecase.NewProductUseCase(deps),
		SupplierUC:     usecase.NewSupplierUseCase(deps),
		InventoryUC:    usecase.NewInventoryUseCase(deps),
		Replenishment:  inventory.NewReplenishmentUseCase(repos.Inventory, reportRepo),
		SaleUC:         usecase.NewSaleUseCase(deps),
		ReceiptUC:      usecase.NewReceiptUseCase(deps, infrapdf.NewReceiptGenerator(deps.Location)),
		PurchaseUC:     usecase.NewPurchaseUseCase(deps),
		OrderUC:        usecase.NewOrderUseCase(deps),
		ReportUC:       analytics.NewReportUseCase(reportRepo, deps.Location),
		Features:       resolver,
		Metrics:        appMetrics.Handler(),
		JWTSecret:      cfg.JWT.Secret,
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
