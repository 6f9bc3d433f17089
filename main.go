package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"zipsea/config"
	"zipsea/cron"
	"zipsea/database"
	"zipsea/database/repository"
	"zipsea/handlers"
	"zipsea/middleware"
	"zipsea/routes"
	"zipsea/services/backend"
	"zipsea/services/booking"
	"zipsea/services/content"
	"zipsea/services/cruise"
	"zipsea/services/feed"
	"zipsea/services/media"
	"zipsea/services/notification"
	"zipsea/services/quote"
	"zipsea/utils"
	"zipsea/web"
)

func main() {
	adminSubject := flag.String("admin-token", "", "print an admin API token for this subject and exit")
	flag.Parse()

	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync() //nolint:errcheck

	if *adminSubject != "" {
		token, err := utils.GenerateAdminToken(*adminSubject, utils.AdminTokenTTL)
		if err != nil {
			logger.Fatal("main: failed to mint admin token", zap.Error(err))
		}
		fmt.Println(token)
		return
	}

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	database.InitDB()
	utils.InitCache()
	utils.InitSessionStore()

	// repositories.
	quoteRepo := repository.NewMongoQuoteRepo(database.Database())
	idxCtx, idxCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := quoteRepo.EnsureIndexes(idxCtx); err != nil {
		logger.Warn("main: failed to ensure quote indexes", zap.Error(err))
	}
	idxCancel()

	// services.
	api := backend.NewHTTPClient(config.AppConfig.APIBaseURL, config.AppConfig.APITimeout, logger.Named("backend"))

	images, err := media.NewProxy(
		config.AppConfig.CloudinaryCloudName,
		config.AppConfig.CloudinaryAPIKey,
		config.AppConfig.CloudinaryAPISecret,
		logger.Named("media"),
	)
	if err != nil {
		logger.Fatal("main: failed to initialize image proxy", zap.Error(err))
	}

	live := config.AppConfig.LiveBooking()
	cruiseService := cruise.NewService(
		api,
		cruise.NewRedisPageCache(utils.GetCacheClient(), config.AppConfig.CruiseCacheTTL),
		images,
		cruise.Options{
			LiveBooking:       live,
			OnboardCreditRate: config.AppConfig.OnboardCreditRate,
			SiteURL:           config.AppConfig.SiteURL,
		},
		logger.Named("cruise"),
	)

	feedService := feed.NewService(
		cruiseService,
		feed.NewRedisFeedCache(utils.GetCacheClient(), 2*config.AppConfig.FeedRefresh),
		logger.Named("feed"),
	)

	bookingService := booking.NewService(
		api,
		booking.NewRedisStore(utils.GetSessionClient(), config.AppConfig.BookingSessionTTL),
		cruiseService,
		live,
		logger.Named("booking"),
	)

	queue := asynq.NewClient(cron.QueueRedisOpt())
	defer queue.Close()
	quoteService := quote.NewService(quoteRepo, queue, logger.Named("quote"))

	notifier := notification.NewSlackNotifier(config.AppConfig.SlackWebhookURL, 10*time.Second, logger.Named("slack"))
	worker := cron.InitQuoteWorker(quoteRepo, notifier)

	bgCtx, stopBackground := context.WithCancel(context.Background())
	defer stopBackground()
	go feed.StartFeedCron(bgCtx, feedService, config.AppConfig.FeedRefresh)
	utils.StartHealthMonitor(bgCtx, utils.HealthCheckInterval,
		[]*redis.Client{utils.GetCacheClient(), utils.GetSessionClient()}, database.MongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))
	router.SetHTMLTemplate(web.MustTemplates())

	handlerBundle := handlers.NewHandlerBundle(
		handlers.NewCruiseHandler(cruiseService, feedService),
		handlers.NewBookingHandler(bookingService),
		handlers.NewQuoteHandler(quoteService),
		handlers.NewLegalHandler(content.NewLegalService()),
		handlers.NewAdminHandler(quoteService, cruiseService),
	)
	routes.RegisterRoutes(router, handlerBundle, config.AppConfig.SiteURL)

	logger.Info("main: live booking",
		zap.Bool("enabled", live.Enabled),
		zap.Int("eligibleLines", len(live.EligibleCruiseLineIDs)),
		zap.Bool("imageProxy", images.Enabled()),
	)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:              "0.0.0.0:" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
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
	worker.Shutdown()
	if err := database.Disconnect(ctx); err != nil {
		logger.Sugar().Warnf("main: mongo disconnect: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
