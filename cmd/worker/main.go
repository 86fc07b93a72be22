package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	paymentUsecases "sepapay/internal/application/payment/usecases"
	"sepapay/internal/domain/shared/services"
	"sepapay/internal/infrastructure/cache"
	"sepapay/internal/infrastructure/config"
	"sepapay/internal/infrastructure/database"
	"sepapay/internal/infrastructure/email"
	"sepapay/internal/infrastructure/payment/stripe"
	"sepapay/internal/infrastructure/repository"
	"sepapay/internal/infrastructure/scheduler"
	shareddb "sepapay/internal/shared/db"
	"sepapay/internal/shared/logger"
)

// Standalone gateway event poller. Runs the same reconciliation loop as
// the server's embedded scheduler, for deployments that keep the HTTP
// surface and the poller on separate processes.
func main() {
	env := "development"
	if len(os.Args) > 1 {
		env = os.Args[1]
	}
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(&cfg.Logger, "release"); err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewLogger()
	log.Infow("starting event poll worker", "environment", env)

	if err := database.Init(&cfg.Database); err != nil {
		log.Fatalw("failed to initialize database", "error", err)
	}
	defer database.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Fatalw("failed to connect to redis", "error", err)
	}
	log.Infow("redis connection established", "address", cfg.Redis.GetAddr())

	db := database.Get()
	acquirerRepo := repository.NewAcquirerRepository(db)
	tokenRepo := repository.NewTokenRepository(db)
	txRepo := repository.NewTransactionRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)

	stripeClient := stripe.NewClient(&cfg.Gateway, log.Named("stripe"))
	cursorStore := cache.NewEventCursorStore(redisClient)

	var notifier paymentUsecases.ChargeNotifier
	if cfg.Mailer.Enabled() {
		notifier = email.NewChargeNotifier(cfg.Mailer)
	} else {
		log.Infow("mailer not configured, charge notifications degrade to log-only")
	}

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
	eventScheduler := scheduler.NewEventScheduler(pollUC, interval, log.Named("event-scheduler"))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	eventScheduler.Start(ctx)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigChan
	log.Infow("received signal, shutting down", "signal", sig)

	eventScheduler.Stop()
	log.Infow("event poll worker stopped")
}
