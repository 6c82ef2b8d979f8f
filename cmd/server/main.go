package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	communityapp "github.com/Manzp111/smartville/internal/application/community"
	directoryapp "github.com/Manzp111/smartville/internal/application/directory"
	"github.com/Manzp111/smartville/internal/application/notification"
	residencyapp "github.com/Manzp111/smartville/internal/application/residency"
	"github.com/Manzp111/smartville/internal/infrastructure/auth"
	"github.com/Manzp111/smartville/internal/infrastructure/config"
	"github.com/Manzp111/smartville/internal/infrastructure/geo"
	"github.com/Manzp111/smartville/internal/infrastructure/logger"
	"github.com/Manzp111/smartville/internal/infrastructure/notify"
	"github.com/Manzp111/smartville/internal/infrastructure/persistence"
	"github.com/Manzp111/smartville/internal/interfaces/http/handler"
	"github.com/Manzp111/smartville/internal/interfaces/http/middleware"
	"github.com/Manzp111/smartville/internal/interfaces/http/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting SmartVillage backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel,
		logger.WithSlowThreshold(cfg.Log.SlowQueryThreshold))

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Initialize repositories
	personRepo := persistence.NewGormPersonRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)
	villageRepo := persistence.NewGormVillageRepository(db.DB)
	otpRepo := persistence.NewGormOTPRepository(db.DB)
	residencyRepo := persistence.NewGormResidencyRepository(db.DB)
	eventRepo := persistence.NewGormEventRepository(db.DB)
	alertRepo := persistence.NewGormAlertRepository(db.DB)
	complaintRepo := persistence.NewGormComplaintRepository(db.DB)
	contactRepo := persistence.NewGormContactRepository(db.DB)
	volunteeringRepo := persistence.NewGormVolunteeringRepository(db.DB)
	visitorRepo := persistence.NewGormVisitorRepository(db.DB)
	txRunner := persistence.NewGormTxRunner(db.DB)

	// Notification delivery. With redis available, jobs go through a
	// persistent queue drained by a worker pool; otherwise they are
	// delivered in-process over a buffered channel.
	var mailer notify.Mailer
	if cfg.Mail.SMTPHost != "" {
		mailer = notify.NewSMTPMailer(cfg.Mail)
	} else {
		log.Warn("No SMTP host configured, notifications will be logged only")
		mailer = notify.NewLogMailer(log)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var dispatcher notification.Dispatcher
	var workers *notify.WorkerPool
	var channelDispatcher *notify.ChannelDispatcher
	redisClient, err := notify.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		log.Warn("Redis unavailable, falling back to in-process notification dispatch", zap.Error(err))
		channelDispatcher = notify.NewChannelDispatcher(mailer, cfg.Notify.Workers, 64, log)
		dispatcher = channelDispatcher
	} else {
		dispatcher = notify.NewRedisDispatcher(redisClient, cfg.Notify.QueueKey, log)
		workers = notify.NewWorkerPool(redisClient, mailer, cfg.Notify, log)
		workers.Start(ctx)
		log.Info("Notification worker pool started",
			zap.Int("workers", cfg.Notify.Workers),
			zap.String("queue", cfg.Notify.QueueKey),
		)
	}

	// Village boundary dataset for coordinate lookup
	var regions []geo.Region
	if cfg.Geo.DatasetPath != "" {
		regions, err = geo.LoadDataset(cfg.Geo.DatasetPath)
		if err != nil {
			log.Fatal("Failed to load village boundary dataset", zap.Error(err))
		}
		log.Info("Village boundary dataset loaded",
			zap.String("path", cfg.Geo.DatasetPath),
			zap.Int("regions", len(regions)),
		)
	} else {
		log.Warn("No boundary dataset configured, coordinate lookup will find no villages")
	}
	locator := geo.NewDatasetLocator(regions)

	// Initialize application services
	jwtService := auth.NewJWTService(cfg.JWT)
	authService := directoryapp.NewAuthService(userRepo, personRepo, otpRepo, jwtService, dispatcher, log)
	villageService := directoryapp.NewVillageService(villageRepo, residencyRepo, eventRepo, locator)
	leaderService := directoryapp.NewLeaderService(userRepo, villageRepo, log)
	ledgerService := residencyapp.NewLedgerService(residencyRepo, villageRepo, personRepo, userRepo, txRunner, dispatcher)
	migrationService := residencyapp.NewMigrationService(residencyRepo, villageRepo, personRepo, userRepo, txRunner, dispatcher, log)
	eventService := communityapp.NewEventService(eventRepo)
	alertService := communityapp.NewAlertService(alertRepo)
	complaintService := communityapp.NewComplaintService(complaintRepo)
	contactService := communityapp.NewContactService(contactRepo)
	volunteeringService := communityapp.NewVolunteeringService(volunteeringRepo)
	visitorService := communityapp.NewVisitorService(visitorRepo, residencyRepo, personRepo, villageRepo, userRepo, dispatcher)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := router.New(router.Config{
		Logger:        log,
		JWTService:    jwtService,
		ActorResolver: middleware.NewActorResolver(villageRepo, residencyRepo),
		CORS: middleware.CORSConfig{
			AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
			AllowMethods:     cfg.HTTP.CORSAllowMethods,
			AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
			ExposeHeaders:    []string{"X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		},
		Handlers: router.Handlers{
			System:       handler.NewSystemHandler(db),
			Auth:         handler.NewAuthHandler(authService),
			Resident:     handler.NewResidentHandler(ledgerService, migrationService),
			Village:      handler.NewVillageHandler(villageService, leaderService),
			Event:        handler.NewEventHandler(eventService),
			Alert:        handler.NewAlertHandler(alertService),
			Complaint:    handler.NewComplaintHandler(complaintService),
			Volunteering: handler.NewVolunteeringHandler(volunteeringService),
			Visitor:      handler.NewVisitorHandler(visitorService),
			Contact:      handler.NewContactHandler(contactService),
		},
	})

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	<-ctx.Done()
	stop()
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	// Drain notification workers before exit
	if workers != nil {
		workers.Wait()
	}
	if channelDispatcher != nil {
		channelDispatcher.Close()
	}
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Error closing redis client", zap.Error(err))
		}
	}

	log.Info("Server exited gracefully")
}
