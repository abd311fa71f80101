package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"carexyz/config"
	"carexyz/cron"
	"carexyz/database"
	bookingRepo "carexyz/database/repository/booking"
	userRepoPkg "carexyz/database/repository/user"
	"carexyz/handlers"
	"carexyz/middleware"
	"carexyz/routes"
	"carexyz/services/booking"
	"carexyz/services/notification"
	"carexyz/services/user"
	"carexyz/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	cfg := config.AppConfig
	utils.InitializeLogger(cfg.Env, cfg.LogLevel)
	logger := utils.GetLogger()
	defer logger.Sync()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	mongoClient, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("main: failed to connect to MongoDB", zap.Error(err))
	}
	db := mongoClient.Database(cfg.DBName)

	// repositories.
	bookings := bookingRepo.NewMongoBookingRepo(db)
	users := userRepoPkg.NewMongoUserRepo(db)
	if err := bookings.EnsureIndexes(ctx); err != nil {
		logger.Warn("main: failed to ensure booking indexes", zap.Error(err))
	}
	if err := users.EnsureIndexes(ctx); err != nil {
		logger.Warn("main: failed to ensure user indexes", zap.Error(err))
	}

	cache, err := utils.NewCacheClient(ctx, utils.RedisOptions{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisCacheDB,
	})
	if err != nil {
		logger.Warn("main: redis cache unavailable, public stats will not be cached", zap.Error(err))
	}

	// invoice pipeline.
	queueOpt := asynq.RedisClientOpt{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisQueueDB,
	}
	queueClient := asynq.NewClient(queueOpt)
	var mailer notification.Mailer = &notification.LogMailer{Logger: logger}
	if cfg.SMTPUser != "" && cfg.SMTPPass != "" {
		mailer = notification.NewSMTPMailer(notification.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUser,
			Password: cfg.SMTPPass,
			From:     cfg.MailFrom,
		})
	} else {
		logger.Warn("main: SMTP credentials not set, invoices will be logged only")
	}
	worker := cron.InitInvoiceWorker(cron.WorkerConfig{
		Redis:       queueOpt,
		Concurrency: cfg.WorkerConcurrency,
	}, mailer, logger)

	// services.
	bookingService := &booking.DefaultBookingService{
		Bookings:           bookings,
		Users:              users,
		Notifier:           notification.NewQueueNotifier(queueClient),
		Cache:              cache,
		Logger:             logger.Named("booking"),
		StrictCatalog:      cfg.StrictCatalog,
		EnforceTransitions: cfg.EnforceStatusTransitions,
	}
	if cfg.StripeKey != "" {
		bookingService.Payments = booking.NewStripeVerifier(cfg.StripeKey, nil)
	}

	tokens := utils.NewTokenIssuer(cfg.JWTSecret, time.Duration(cfg.JWTTTLHours)*time.Hour)
	userService := &user.DefaultUserService{
		Repo:   users,
		Tokens: tokens,
		Logger: logger.Named("user"),
	}
	if cfg.GoogleClientID != "" {
		userService.Google = &user.IDTokenVerifier{ClientID: cfg.GoogleClientID}
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger))

	handlerBundle := &handlers.HandlerBundle{
		Tokens:  tokens,
		Booking: handlers.NewBookingHandler(bookingService),
		Admin:   handlers.NewAdminHandler(bookingService),
		Catalog: handlers.NewCatalogHandler(bookingService),
		Auth:    handlers.NewAuthHandler(userService),
	}
	routes.RegisterRoutes(router, handlerBundle)

	checks := map[string]utils.HealthCheck{
		"mongo": func(ctx context.Context) error {
			return mongoClient.Ping(ctx, readpref.Primary())
		},
	}
	if cache != nil {
		checks["redis"] = func(ctx context.Context) error {
			return cache.Ping(ctx).Err()
		}
	}
	go utils.StartHealthMonitor(ctx, utils.HealthCheckInterval, checks)

	// Start the HTTP server.
	srv := &http.Server{
		Addr:    "0.0.0.0:" + cfg.AppPort,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("main: server is shutting down...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("main: server forced to shutdown", zap.Error(err))
	}

	worker.Shutdown()
	if err := queueClient.Close(); err != nil {
		logger.Warn("main: failed to close task queue client", zap.Error(err))
	}
	closeCache(cache, logger)
	if err := database.Disconnect(mongoClient); err != nil {
		logger.Warn("main: failed to disconnect MongoDB", zap.Error(err))
	}

	logger.Info("main: server stopped gracefully")
}

func closeCache(cache *redis.Client, logger *zap.Logger) {
	if cache == nil {
		return
	}
	if err := cache.Close(); err != nil {
		logger.Warn("main: failed to close redis cache", zap.Error(err))
	}
}
