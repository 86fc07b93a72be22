package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"sepapay/internal/application/payment/gateway"
	"sepapay/internal/application/payment/usecases"
	"sepapay/internal/domain/shared/services"
	"sepapay/internal/infrastructure/config"
	"sepapay/internal/infrastructure/repository"
	"sepapay/internal/interfaces/http/handlers"
	"sepapay/internal/interfaces/http/middleware"
	"sepapay/internal/interfaces/http/routes"
	shareddb "sepapay/internal/shared/db"
	"sepapay/internal/shared/logger"
	"sepapay/internal/shared/utils"
)

// Router wires the HTTP surface: repositories, use cases, handlers and
// routes.
type Router struct {
	engine  *gin.Engine
	db      *gorm.DB
	cfg     *config.Config
	gateway gateway.PaymentGateway
	logger  logger.Interface
}

func NewRouter(db *gorm.DB, cfg *config.Config, gw gateway.PaymentGateway, logger logger.Interface) *Router {
	return &Router{
		engine:  gin.New(),
		db:      db,
		cfg:     cfg,
		gateway: gw,
		logger:  logger,
	}
}

func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.ErrorHandler())
	if len(r.cfg.Server.AllowedOrigins) > 0 {
		r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	}

	r.engine.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, http.StatusOK, "ok", gin.H{"status": "healthy"})
	})

	acquirerRepo := repository.NewAcquirerRepository(r.db)
	tokenRepo := repository.NewTokenRepository(r.db)
	txRepo := repository.NewTransactionRepository(r.db)
	invoiceRepo := repository.NewInvoiceRepository(r.db)

	refGen := services.NewReferenceGenerator()
	txManager := shareddb.NewTransactionManager(r.db)

	createTokenUC := usecases.NewCreateTokenUseCase(acquirerRepo, tokenRepo, r.gateway, r.logger)
	createTxUC := usecases.NewCreateTransactionUseCase(txRepo, refGen, r.logger)
	chargeTokenUC := usecases.NewChargeTokenUseCase(acquirerRepo, tokenRepo, txRepo, r.gateway, txManager, nil, r.logger)
	confirmInvoiceUC := usecases.NewConfirmInvoiceUseCase(invoiceRepo, tokenRepo, acquirerRepo, createTxUC, chargeTokenUC, r.logger)
	findTransactionUC := usecases.NewFindTransactionUseCase(txRepo, r.logger)

	paymentHandler := handlers.NewPaymentHandler(
		acquirerRepo,
		createTokenUC,
		createTxUC,
		chargeTokenUC,
		confirmInvoiceUC,
		findTransactionUC,
		r.logger,
	)

	acquirerHandler := handlers.NewAcquirerHandler(acquirerRepo, r.logger)

	routes.SetupPaymentRoutes(r.engine, &routes.PaymentRouteConfig{
		PaymentHandler:  paymentHandler,
		AcquirerHandler: acquirerHandler,
	})
}

func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
