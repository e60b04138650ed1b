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

	"github.com/bm16036/TestQRMenuDigital/internal/application/auth"
	"github.com/bm16036/TestQRMenuDigital/internal/application/usecase"
	"github.com/bm16036/TestQRMenuDigital/internal/domain/repository"
	"github.com/bm16036/TestQRMenuDigital/internal/infrastructure/memory"
	infrapdf "github.com/bm16036/TestQRMenuDigital/internal/infrastructure/pdf"
	"github.com/bm16036/TestQRMenuDigital/internal/infrastructure/postgres"
	httpRouter "github.com/bm16036/TestQRMenuDigital/internal/interfaces/http"
	"github.com/bm16036/TestQRMenuDigital/pkg/config"
	"github.com/bm16036/TestQRMenuDigital/pkg/logger"
)

// repos agrupa los puertos de persistencia; se llena desde memoria o PostgreSQL
// según USE_MOCK_DATA.
type repos struct {
	category  repository.CategoryRepository
	product   repository.ProductRepository
	user      repository.UserRepository
	company   repository.CompanyRepository
	menu      repository.MenuRepository
	dashboard repository.DashboardRepository
}

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
		Bool("mock_data", cfg.App.UseMockData).
		Msg("iniciando aplicación")

	var r repos
	if cfg.App.UseMockData {
		store := memory.NewStore()
		store.Seed()
		r = repos{
			category:  memory.NewCategoryRepository(store),
			product:   memory.NewProductRepository(store),
			user:      memory.NewUserRepository(store),
			company:   memory.NewCompanyRepository(store),
			menu:      memory.NewMenuRepository(store),
			dashboard: memory.NewDashboardRepository(store),
		}
		log.Info().Msg("fuente de datos: memoria (datos de ejemplo)")
	} else {
		ctx := context.Background()
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		r = repos{
			category:  postgres.NewCategoryRepository(pool),
			product:   postgres.NewProductRepository(pool),
			user:      postgres.NewUserRepository(pool),
			company:   postgres.NewCompanyRepository(pool),
			menu:      postgres.NewMenuRepository(pool),
			dashboard: postgres.NewDashboardRepository(pool),
		}
		log.Info().Msg("fuente de datos: PostgreSQL")
	}

	categoryUC := usecase.NewCategoryUseCase(r.category)
	productUC := usecase.NewProductUseCase(r.product, r.category, r.menu)
	userUC := usecase.NewUserUseCase(r.user)
	companyUC := usecase.NewCompanyUseCase(r.company, cfg.App.PublicMenuURL)
	menuUC := usecase.NewMenuUseCase(r.menu, r.company)
	dashboardUC := usecase.NewDashboardUseCase(r.dashboard)
	cartaUC := usecase.NewCartaUseCase(
		r.company, r.category, r.product,
		infrapdf.NewMarotoCartaGenerator(), cfg.App.PublicMenuURL,
	)
	authUC := auth.NewAuthUseCase(r.user, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Menú Digital API",
	}))

	app.Get("/api/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CategoryUC:  categoryUC,
		ProductUC:   productUC,
		UserUC:      userUC,
		CompanyUC:   companyUC,
		MenuUC:      menuUC,
		DashboardUC: dashboardUC,
		CartaUC:     cartaUC,
		AuthUC:      authUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	// El build del front se sirve al final para no tapar las rutas /api.
	httpRouter.RegisterSPA(app, cfg.SPA.DistPath)

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
