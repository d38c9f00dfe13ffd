// File: admas/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"admas/config"
	"admas/cron"
	"admas/database"
	bookingRepoPkg "admas/database/repository/booking"
	userRepoPkg "admas/database/repository/user"
	"admas/handlers"
	"admas/middleware"
	"admas/routes"
	adminSvc "admas/services/admin"
	bookingSvc "admas/services/booking"
	"admas/services/cars"
	"admas/services/flights"
	"admas/services/form"
	"admas/services/notification"
	quizSvc "admas/services/quiz"
	userSvc "admas/services/user"
	"admas/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitFormCache()
	utils.InitPrefsCache()
	utils.FirebaseInit()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()

	// key-value stores.
	sessionStore := form.NewRedisStore(utils.GetFormCacheClient())
	prefsStore := form.NewRedisStore(utils.GetPrefsCacheClient())

	// services.
	userService := &userSvc.DefaultUserService{Repo: userRepo}

	queueClient := cron.NewQueueClient()
	bookingService := &bookingSvc.DefaultBookingService{
		Repo:  bookingRepo,
		Queue: queueClient,
	}

	formService := &form.DefaultFormService{
		Store:      sessionStore,
		RouteCache: form.NewRouteCacheAdapter(prefsStore),
		Profile:    userService.ProfileProvider(),
		SubmitFn:   bookingService.Submit,
	}

	flightClient := flights.NewClient(config.AppConfig.FlightAPIBaseURL, config.AppConfig.FlightAPIKey)
	carClient := cars.NewClient(config.AppConfig.CarAPIBaseURL, config.AppConfig.CarAPIKey)

	quizService := &quizSvc.DefaultQuizService{Store: prefsStore}
	adminService := &adminSvc.DefaultAdminService{Repo: bookingRepo, Store: prefsStore}

	notificationService, err := notification.NewDefaultNotificationService(userRepo)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize notification service: %v", err)
	}
	cron.InitConfirmationWorker(notificationService)

	paymentHandler := bookingSvc.NewPaymentHandler(logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,
		Form:     handlers.NewFormHandler(formService, flightClient, logger),
		Cars:     handlers.NewCarHandler(carClient, prefsStore),
		Booking:  handlers.NewBookingHandler(bookingService, paymentHandler),
		Quiz:     handlers.NewQuizHandler(quizService),
		Admin:    handlers.NewAdminHandler(adminService),
		User:     handlers.NewUserHandler(userService),
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

	queueClient.Close()
	logger.Sugar().Info("main: server stopped gracefully")
}
