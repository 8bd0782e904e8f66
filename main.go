package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"staybook/config"
	"staybook/database"
	hotelRepoPkg "staybook/database/repository/hotel"
	userRepoPkg "staybook/database/repository/user"
	"staybook/handlers"
	"staybook/middleware"
	"staybook/routes"
	"staybook/services/booking"
	"staybook/services/hotel"
	"staybook/services/search"
	"staybook/services/user"
	"staybook/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitAuthCache()

	storageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	// repositories.
	hotelRepo := hotelRepoPkg.NewMongoHotelRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()

	// services.
	userService := &user.DefaultUserService{
		Repo:   userRepo,
		Logger: logger,
	}
	hotelService := &hotel.DefaultHotelService{
		Repo:    hotelRepo,
		Storage: storageService,
		Logger:  logger,
	}
	searchService := &search.DefaultSearchService{
		Repo:     hotelRepo,
		PageSize: config.AppConfig.PageSize,
	}
	paymentGateway := booking.NewStripeGateway(config.AppConfig.StripeKey)
	bookingService := &booking.DefaultBookingService{
		HotelRepo: hotelRepo,
		Gateway:   paymentGateway,
		Logger:    logger,
	}

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		Hotel:   handlers.NewHotelHandler(searchService, hotelService),
		MyHotel: handlers.NewMyHotelHandler(hotelService),
		Booking: handlers.NewBookingHandler(bookingService),
		User:    handlers.NewUserHandler(userService),
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
