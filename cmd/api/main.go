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
	"github.com/jhoicas/FilaVirtual-api/internal/application/auth"
	"github.com/jhoicas/FilaVirtual-api/internal/application/reports"
	"github.com/jhoicas/FilaVirtual-api/internal/application/usecase"
	infraamqp "github.com/jhoicas/FilaVirtual-api/internal/infrastructure/amqp"
	"github.com/jhoicas/FilaVirtual-api/internal/infrastructure/identity"
	infrapdf "github.com/jhoicas/FilaVirtual-api/internal/infrastructure/pdf"
	"github.com/jhoicas/FilaVirtual-api/internal/infrastructure/postgres"
	"github.com/jhoicas/FilaVirtual-api/internal/infrastructure/sessionstore"
	httpRouter "github.com/jhoicas/FilaVirtual-api/internal/interfaces/http"
	"github.com/jhoicas/FilaVirtual-api/pkg/config"
	"github.com/jhoicas/FilaVirtual-api/pkg/logger"
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

	vendorRepo := postgres.NewVendorRepository(pool)
	staffRepo := postgres.NewStaffRepository(pool)
	menuRepo := postgres.NewMenuItemRepository(pool)
	ticketRepo := postgres.NewQueueTicketRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	notifRepo := postgres.NewNotificationRepository(pool)
	statsRepo := postgres.NewStatsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Proveedor de identidad: Supabase en despliegues reales, local (tabla
	// accounts + bcrypt) en desarrollo.
	var provider auth.Provider
	if cfg.Auth.Provider == "supabase" && cfg.Auth.SupabaseURL != "" {
		provider = identity.NewSupabaseClient(cfg.Auth.SupabaseURL, cfg.Auth.SupabaseKey)
	} else {
		accountRepo := postgres.NewAccountRepository(pool)
		provider = identity.NewLocalProvider(accountRepo, cfg.App.Env != "production")
	}

	// Almacén de la pseudo-sesión demo: Redis si hay addr, memoria si no.
	var store auth.Store
	if cfg.Redis.Addr != "" {
		redisStore, err := sessionstore.NewRedis(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer redisStore.Close()
		store = redisStore
	} else {
		store = sessionstore.NewMemory()
	}

	demo := auth.DemoIdentity{Email: cfg.Auth.DemoEmail, Password: cfg.Auth.DemoPassword}
	bootstrap := auth.NewDemoBootstrap(provider, staffRepo, demo, log)
	sessions := auth.NewDemoSessionManager(store, staffRepo, cfg.Auth.DemoEmail, log)
	authUC := auth.NewAuthUseCase(provider, bootstrap, sessions, staffRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, cfg.Auth.DemoBadge, log)

	// Publicador de notificaciones — solo si hay broker configurado.
	// Sin broker, los avisos sms/whatsapp quedan pendientes de entrega.
	var publisher usecase.NotificationPublisher
	if cfg.AMQP.URL != "" {
		amqpPublisher, err := infraamqp.NewPublisher(cfg.AMQP.URL, cfg.AMQP.Exchange, log)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a RabbitMQ")
		}
		defer amqpPublisher.Close()
		publisher = amqpPublisher
	}

	vendorUC := usecase.NewVendorUseCase(vendorRepo)
	menuUC := usecase.NewMenuUseCase(menuRepo)
	queueUC := usecase.NewQueueUseCase(txRunner, ticketRepo, orderRepo, menuRepo)
	notificationUC := usecase.NewNotificationUseCase(notifRepo, ticketRepo, publisher, log)
	statsUC := usecase.NewStatsUseCase(statsRepo)

	// PDF: reporte diario de métricas del vendor
	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	pdfUC := reports.NewPDFUseCase(vendorRepo, statsRepo, pdfGenerator)

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
		Title:    "FilaVirtual API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		VendorUC:       vendorUC,
		MenuUC:         menuUC,
		QueueUC:        queueUC,
		NotificationUC: notificationUC,
		StatsUC:        statsUC,
		PDFUC:          pdfUC,
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
