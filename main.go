// File: ezero/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ezero/config"
	"ezero/cron"
	"ezero/database"
	pickupRepo "ezero/database/repository/pickup"
	"ezero/handlers"
	"ezero/middleware"
	"ezero/routes"
	"ezero/services/booking"
	"ezero/services/geocode"
	"ezero/services/notification"
	"ezero/services/receipt"
	"ezero/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSessionCache()
	utils.StartHealthMonitor(utils.GetSessionCacheClient(), database.MongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(middleware.GeolocationMiddleware())

	// repositories.
	repo := pickupRepo.NewMongoPickupRepo()

	// services.
	pricing := booking.LoadPricingConfig()
	notifier := notification.NewDefaultNotificationService()
	workflow := booking.NewDefaultWorkflow(
		booking.NewRedisSessionStore(),
		repo,
		pricing,
		notifier,
	)

	bookingHandler := handlers.NewBookingHandler(workflow, geocode.NewHTTPProvider(), logger)
	recordsHandler := handlers.NewRecordsHandler(workflow, receipt.NewTextRenderer(), logger)
	catalogHandler := handlers.NewCatalogHandler(pricing)
	adminHandler := handlers.NewAdminHandler(workflow, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Booking: bookingHandler,
		Records: recordsHandler,
		Catalog: catalogHandler,
		Admin:   adminHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background reminder worker.
	cron.InitReminderWorker()

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
