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

	"github.com/caseritos/caseritos-api/internal/application/auth"
	"github.com/caseritos/caseritos-api/internal/application/lifecycle"
	"github.com/caseritos/caseritos-api/internal/application/listing"
	"github.com/caseritos/caseritos-api/internal/application/notify"
	"github.com/caseritos/caseritos-api/internal/application/usecase"
	"github.com/caseritos/caseritos-api/internal/infrastructure/postgres"
	httpRouter "github.com/caseritos/caseritos-api/internal/interfaces/http"
	"github.com/caseritos/caseritos-api/pkg/config"
	"github.com/caseritos/caseritos-api/pkg/logger"
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

	userRepo := postgres.NewUserRepository(pool)
	offerRepo := postgres.NewOfferRepository(pool)
	bidRepo := postgres.NewBidRepository(pool)
	notificationRepo := postgres.NewNotificationRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	notifier := notify.NewSink(notificationRepo, log)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:   cfg.JWT.Secret,
		ExpHours: cfg.JWT.Expiration,
		Issuer:   cfg.JWT.Issuer,
	})
	offerUC := usecase.NewOfferUseCase(offerRepo)
	listingUC := listing.NewListingUseCase(offerRepo, bidRepo)
	lifecycleUC := lifecycle.NewOfferLifecycleUseCase(txRunner, offerRepo, bidRepo, userRepo, notifier)
	notificationUC := usecase.NewNotificationUseCase(notificationRepo)
	userUC := usecase.NewUserUseCase(bidRepo, offerRepo)
	adminUC := usecase.NewAdminUseCase(userRepo, offerRepo)

	// Cuenta admin de bootstrap: si falla, no arrancamos con un panel
	// inaccesible.
	if err := authUC.EnsureAdmin(auth.AdminAccount{
		Email:    cfg.Admin.Email,
		Password: cfg.Admin.Password,
		Name:     cfg.Admin.Name,
		Phone:    cfg.Admin.Phone,
	}); err != nil {
		log.Fatal().Err(err).Msg("bootstrap de la cuenta admin")
	}

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
		Title:    "Caseritos API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		OfferUC:        offerUC,
		ListingUC:      listingUC,
		LifecycleUC:    lifecycleUC,
		NotificationUC: notificationUC,
		UserUC:         userUC,
		AdminUC:        adminUC,
		UserRepo:       userRepo,
		JWTSecret:      cfg.JWT.Secret,
		Log:            log,
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
