// File: pawhaven/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pawhaven/config"
	"pawhaven/cron"
	"pawhaven/database"
	bookingRepoPkg "pawhaven/database/repository/booking"
	caregiverRepoPkg "pawhaven/database/repository/caregiver"
	groomingRepoPkg "pawhaven/database/repository/grooming"
	paymentRepoPkg "pawhaven/database/repository/payment"
	petRepoPkg "pawhaven/database/repository/pet"
	postRepoPkg "pawhaven/database/repository/post"
	productRepoPkg "pawhaven/database/repository/product"
	programRepoPkg "pawhaven/database/repository/program"
	userRepoPkg "pawhaven/database/repository/user"
	"pawhaven/handlers"
	"pawhaven/middleware"
	"pawhaven/routes"
	"pawhaven/services/booking"
	"pawhaven/services/caregiver"
	"pawhaven/services/catalog"
	"pawhaven/services/community"
	"pawhaven/services/notification"
	"pawhaven/services/payment"
	"pawhaven/services/pet"
	"pawhaven/services/user"
	"pawhaven/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitAuthCache()
	utils.FirebaseInit()

	cloudinaryStorageService, err := utils.Cloudinary()
	if err != nil {
		logger.Warn("cloudinary not configured, photo uploads disabled", zap.Error(err))
		cloudinaryStorageService = nil
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	usersRepo := userRepoPkg.NewMongoUserRepo()
	petsRepo := petRepoPkg.NewMongoPetRepo()
	caregiversRepo := caregiverRepoPkg.NewMongoCaregiverRepo()
	bookingsRepo := bookingRepoPkg.NewMongoBookingRepo()
	groomingsRepo := groomingRepoPkg.NewMongoGroomingRepo()
	productsRepo := productRepoPkg.NewMongoProductRepo()
	programsRepo := programRepoPkg.NewMongoProgramRepo()
	paymentsRepo := paymentRepoPkg.NewMongoPaymentRepo()
	postsRepo := postRepoPkg.NewMongoPostRepo()

	// services.
	userService := &user.DefaultUserService{Repo: usersRepo, Logger: logger}
	petService := &pet.DefaultPetService{Repo: petsRepo, Logger: logger}
	caregiverService := &caregiver.DefaultCaregiverService{Repo: caregiversRepo, Logger: logger}
	catalogService := &catalog.DefaultCatalogService{Products: productsRepo, Programs: programsRepo, Logger: logger}
	paymentService := &payment.DefaultPaymentService{Repo: paymentsRepo, Logger: logger}
	communityService := &community.DefaultCommunityService{Repo: postsRepo, Logger: logger}

	notificationService := notification.NewDefaultNotificationService(logger)
	bookingService := booking.NewDefaultBookingService(
		bookingsRepo,
		groomingsRepo,
		caregiversRepo,
		usersRepo,
		petsRepo,
		notificationService,
		logger,
	)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		User:      handlers.NewUserHandler(userService, logger),
		Pet:       handlers.NewPetHandler(petService, cloudinaryStorageService, logger),
		Caregiver: handlers.NewCaregiverHandler(caregiverService, logger),
		Booking:   handlers.NewBookingHandler(bookingService, logger),
		Catalog:   handlers.NewCatalogHandler(catalogService, logger),
		Payment:   handlers.NewPaymentHandler(paymentService, logger),
		Community: handlers.NewCommunityHandler(communityService, logger),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the background notification worker.
	cron.InitNotificationWorker(notification.NewMailer(), usersRepo)

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
