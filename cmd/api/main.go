package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/nibashhq/marketplace-api/internal/auth"
	"github.com/nibashhq/marketplace-api/internal/config"
	"github.com/nibashhq/marketplace-api/internal/database"
	"github.com/nibashhq/marketplace-api/internal/handler"
	middlewarepkg "github.com/nibashhq/marketplace-api/internal/middleware"
	"github.com/nibashhq/marketplace-api/internal/repository"
	"github.com/nibashhq/marketplace-api/internal/router"
	"github.com/nibashhq/marketplace-api/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err := database.Migrate(cfg.DatabaseURL); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	defer pool.Close()

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)

	vendorsRepo := repository.NewPGXVendorsRepository(pool)
	customersRepo := repository.NewPGXCustomersRepository(pool)
	productsRepo := repository.NewPGXProductsRepository(pool)
	servicesRepo := repository.NewPGXServicesRepository(pool)
	ratingsRepo := repository.NewPGXRatingsRepository(pool)
	nearbyRepo := repository.NewPGXNearbyRepository(pool)
	lookupsRepo := repository.NewPGXLookupsRepository(pool)

	customerAuthService := service.NewCustomerAuthService(customersRepo, jwtManager, cfg.PhoneRegion)
	vendorAuthService := service.NewVendorAuthService(vendorsRepo, jwtManager, cfg.PhoneRegion)
	vendorService := service.NewVendorService(vendorsRepo, cfg.PhoneRegion)
	ratingService := service.NewRatingService(ratingsRepo, vendorsRepo, productsRepo)

	chatClient := handler.NewChatClient(nil, cfg.OpenAIBaseURL, cfg.OpenAIAPIKey, cfg.ChatModel, handler.SystemPrompt)

	handlers := router.Handlers{
		CustomerAuth: handler.NewCustomerAuthHandler(customerAuthService),
		VendorAuth:   handler.NewVendorAuthHandler(vendorAuthService),
		Customer:     handler.NewCustomerHandler(customersRepo),
		Vendor:       handler.NewVendorHandler(vendorService),
		Products:     handler.NewProductHandler(productsRepo),
		Services:     handler.NewServiceHandler(servicesRepo),
		Discovery:    handler.NewDiscoveryHandler(nearbyRepo),
		Ratings:      handler.NewRatingHandler(ratingService),
		Lookups:      handler.NewLookupHandler(lookupsRepo),
		Chat:         handler.NewChatHandler(chatClient),
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middlewarepkg.RequestID())
	e.Use(middlewarepkg.Logging())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())

	router.Register(e, cfg, jwtManager, handlers)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- e.Start(":" + cfg.Port)
	}()
	log.Printf("listening on port %s", cfg.Port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		log.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
		return
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}
}
