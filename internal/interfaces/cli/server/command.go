package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	paymentUsecases "sepapay/internal/application/payment/usecases"
	"sepapay/internal/domain/shared/services"
	"sepapay/internal/infrastructure/cache"
	"sepapay/internal/infrastructure/config"
	"sepapay/internal/infrastructure/database"
	"sepapay/internal/infrastructure/email"
	"sepapay/internal/infrastructure/migration"
	"sepapay/internal/infrastructure/payment/stripe"
	"sepapay/internal/infrastructure/repository"
	"sepapay/internal/infrastructure/scheduler"
	httpRouter "sepapay/internal/interfaces/http"
	shareddb "sepapay/internal/shared/db"
	"sepapay/internal/shared/logger"
)

var (
	env         string
	autoMigrate bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the payment server with the specified configuration.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Automatically run database migrations on startup (not recommended for production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	ginMode := mapEnvToGinMode(env)

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	cfg.Server.Mode = ginMode

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log := logger.NewLogger()

	log.Infow("starting server",
		"environment", env,
		"auto_migrate", autoMigrate)

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	if autoMigrate {
		if env == "production" {
			log.Warnw("auto-migration is enabled in production environment")
		}
		manager := migration.NewManager(env)
		if err := manager.Migrate(database.Get(), migration.AutoMigrateModels()...); err != nil {
			return fmt.Errorf("auto-migration failed: %w", err)
		}
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	stripeClient := stripe.NewClient(&cfg.Gateway, log.Named("stripe"))

	router := httpRouter.NewRouter(database.Get(), cfg, stripeClient, log)
	router.SetupRoutes()

	eventScheduler := buildEventScheduler(cfg, redisClient, stripeClient, log)

	schedulerCtx, cancelScheduler := context.WithCancel(context.Background())
	defer cancelScheduler()
	eventScheduler.Start(schedulerCtx)
	defer eventScheduler.Stop()

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      router.GetEngine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infow("server starting",
			"address", cfg.Server.GetAddr(),
			"mode", cfg.Server.Mode)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalw("failed to start server", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "error", err)
		return err
	}

	log.Infow("server exited gracefully")
	return nil
}

func buildEventScheduler(
	cfg *config.Config,
	redisClient *redis.Client,
	stripeClient *stripe.Client,
	log logger.Interface,
) *scheduler.EventScheduler {
	db := database.Get()

	acquirerRepo := repository.NewAcquirerRepository(db)
	tokenRepo := repository.NewTokenRepository(db)
	txRepo := repository.NewTransactionRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)

	var notifier paymentUsecases.ChargeNotifier
	if cfg.Mailer.Enabled() {
		notifier = email.NewChargeNotifier(cfg.Mailer)
	} else {
		log.Infow("mailer not configured, charge notifications degrade to log-only")
	}

	cursorStore := cache.NewEventCursorStore(redisClient)

	createTxUC := paymentUsecases.NewCreateTransactionUseCase(txRepo, services.NewReferenceGenerator(), log)
	chargeTokenUC := paymentUsecases.NewChargeTokenUseCase(acquirerRepo, tokenRepo, txRepo, stripeClient, shareddb.NewTransactionManager(db), nil, log)
	confirmInvoiceUC := paymentUsecases.NewConfirmInvoiceUseCase(invoiceRepo, tokenRepo, acquirerRepo, createTxUC, chargeTokenUC, log)

	pollUC := paymentUsecases.NewPollChargeEventsUseCase(
		acquirerRepo,
		txRepo,
		invoiceRepo,
		stripeClient,
		cursorStore,
		notifier,
		confirmInvoiceUC,
		log.Named("event-poller"),
	)

	interval := time.Duration(cfg.Scheduler.EventPollIntervalSeconds) * time.Second

	return scheduler.NewEventScheduler(pollUC, interval, log.Named("event-scheduler"))
}

func mapEnvToGinMode(environment string) string {
	switch environment {
	case "production", "prod":
		return "release"
	case "development", "dev":
		return "debug"
	case "test", "testing":
		return "test"
	case "debug":
		return "debug"
	case "release":
		return "release"
	default:
		return "debug"
	}
}
