package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"workhub/config"
	"workhub/cron"
	"workhub/database"
	catalogRepo "workhub/database/repository/catalog"
	"workhub/handlers"
	"workhub/middleware"
	"workhub/routes"
	"workhub/services/analytics"
	"workhub/services/billing"
	"workhub/services/dashboard"
	"workhub/services/directory"
	"workhub/services/forms"
	"workhub/services/notification"
	"workhub/services/reports"
	"workhub/services/schedule"
	"workhub/services/spaces"
	"workhub/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	cfg := config.AppConfig

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	appCtx, stop := context.WithCancel(context.Background())
	defer stop()

	// Catalog.
	var catalog catalogRepo.Catalog
	var mongoClient *mongo.Client
	if config.UseMongoCatalog() {
		database.InitDB()
		mongoClient = database.MongoClient
		catalog = catalogRepo.NewMongoCatalog(database.Database())
		logger.Info("Using mongo catalog", zap.String("database", cfg.DatabaseName))
	} else {
		var err error
		catalog, err = catalogRepo.NewMemoryCatalog(catalogRepo.DefaultSeed())
		if err != nil {
			logger.Fatal("main: failed to load demo catalog", zap.Error(err))
		}
		logger.Info("Using in-memory demo catalog")
	}

	// Notifications.
	feed := notification.NewFeed(cfg.FeedSize)
	notifiers := notification.Fanout{notification.NewLogNotifier(logger), feed}
	if cfg.FirebaseCredentials != "" {
		fcm, err := utils.NewFCMClient(appCtx, cfg.FirebaseCredentials)
		if err != nil {
			logger.Warn("main: push notifications disabled", zap.Error(err))
		} else if push, err := notification.NewPushNotifier(fcm, cfg.FirebaseTopic); err == nil {
			notifiers = append(notifiers, push)
			logger.Info("Push notifications enabled", zap.String("topic", cfg.FirebaseTopic))
		}
	}

	// Redis.
	var redisClients []*redis.Client
	var dayCache schedule.DayCache
	if cfg.CacheEnabled {
		cacheClient := utils.GetCacheClient()
		redisClients = append(redisClients, cacheClient)
		dayCache = schedule.NewRedisDayCache(cacheClient)
	}

	// Reports.
	publisher := &reports.Publisher{Logger: logger}
	if cfg.CloudinaryURL != "" {
		cld, err := utils.Cloudinary(cfg.CloudinaryURL)
		if err != nil {
			logger.Warn("main: report archive disabled", zap.Error(err))
		} else {
			publisher.Archiver = reports.NewCloudinaryArchiver(&cld.Upload)
		}
	}

	// Form submissions.
	var processor forms.Processor
	var worker *cron.SubmissionWorker
	var queueClient *asynq.Client
	if cfg.QueueEnabled {
		redisOpts := asynq.RedisClientOpt{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisQueueDB,
		}
		queueClient = asynq.NewClient(redisOpts)
		processor = &forms.QueueProcessor{Client: queueClient, Delay: cfg.SubmitDelay, Logger: logger}
		worker = cron.NewSubmissionWorker(redisOpts, notifiers, logger)
		worker.Start(logger)
		redisClients = append(redisClients, redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisQueueDB,
		}))
	} else {
		processor = forms.NewInlineProcessor(appCtx, cfg.SubmitDelay, notifiers, logger)
	}

	utils.StartHealthMonitor(appCtx, 30*time.Second, redisClients, mongoClient)

	// Services.
	scheduleService := &schedule.DefaultScheduleService{
		Catalog:     catalog,
		Notifier:    notifiers,
		Cache:       dayCache,
		CacheTTL:    cfg.CacheTTL,
		OpeningHour: cfg.OpeningHour,
		SlotCount:   cfg.SlotCount,
		Logger:      logger,
	}
	directoryService := &directory.DefaultDirectoryService{Catalog: catalog}
	billingService := &billing.DefaultBillingService{
		Catalog:   catalog,
		Notifier:  notifiers,
		Publisher: publisher,
		Logger:    logger,
	}
	spaceService := &spaces.DefaultSpaceService{Catalog: catalog, Notifier: notifiers, Logger: logger}
	analyticsService := &analytics.DefaultAnalyticsService{Catalog: catalog, Publisher: publisher}
	dashboardService := &dashboard.DefaultDashboardService{
		Schedule:  scheduleService,
		Directory: directoryService,
		Analytics: analyticsService,
	}
	formService := &forms.DefaultFormService{
		Validator: forms.NewValidator(),
		Processor: processor,
		Logger:    logger,
	}

	// Assemble the handler bundle.
	handlerBundle := handlers.NewHandlerBundle(handlers.Handlers{
		Schedule:      handlers.NewScheduleHandler(scheduleService, time.Now),
		Directory:     handlers.NewDirectoryHandler(directoryService),
		Billing:       handlers.NewBillingHandler(billingService, time.Now),
		Spaces:        handlers.NewSpaceHandler(spaceService),
		Analytics:     handlers.NewAnalyticsHandler(analyticsService, time.Now),
		Dashboard:     handlers.NewDashboardHandler(dashboardService, time.Now),
		Forms:         handlers.NewFormHandler(formService),
		Notifications: handlers.NewNotificationHandler(feed),
	})

	// Create the Gin router.
	router := gin.New()
	if err := middleware.TrustProxies(router, cfg.TrustedProxies); err != nil {
		logger.Fatal("Invalid TRUSTED_PROXIES", zap.Error(err))
	}
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.RateLimitMiddleware(cfg.MaxRequestsPerMin, logger))
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := cfg.AppPort
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
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}
	stop()

	if worker != nil {
		worker.Shutdown()
	}
	if queueClient != nil {
		if err := queueClient.Close(); err != nil {
			logger.Warn("main: failed to close queue client", zap.Error(err))
		}
	}
	for _, client := range redisClients {
		_ = client.Close()
	}
	if err := database.CloseDB(ctx); err != nil {
		logger.Warn("main: failed to disconnect mongo", zap.Error(err))
	}

	logger.Sugar().Info("main: server stopped gracefully")
	_ = logger.Sync()
}
