package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"earec/config"
	"earec/handlers"
	"earec/middleware"
	"earec/routes"
	"earec/services/geo"
	"earec/services/pricing"
	"earec/services/quote"
	"earec/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	if config.AppConfig.AdminSecretHash == "" {
		logger.Warn("ADMIN_SECRET_HASH not configured, falling back to the default master secret")
		config.AppConfig.AdminSecretHash = utils.MustHashSecret("xingu")
	}

	utils.InitSessionCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Core components.
	catalog := pricing.DefaultCatalog()
	overrides := pricing.NewOverrideStore(pricing.DefaultOverrides())
	resolver := geo.NewNominatimResolver(
		config.AppConfig.GeocoderBaseURL,
		config.AppConfig.GeocoderCountry,
		geo.Coordinates{Lat: config.AppConfig.OriginLat, Lon: config.AppConfig.OriginLon},
		logger,
	)
	sessionStore := quote.NewRedisSessionStore(utils.GetSessionCacheClient(), 30*time.Minute)

	quoteService := &quote.DefaultQuoteService{
		Store:      sessionStore,
		Catalog:    catalog,
		Overrides:  overrides,
		Geo:        resolver,
		PricePerKm: config.AppConfig.PricePerKm,
		Logger:     logger,
	}

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		Quote:    handlers.NewQuoteHandler(quoteService, logger),
		Admin:    handlers.NewAdminHandler(overrides, logger),
		Catalog:  handlers.NewCatalogHandler(catalog),
		Distance: handlers.NewDistanceHandler(resolver),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
