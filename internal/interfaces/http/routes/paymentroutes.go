package routes

import (
	"github.com/gin-gonic/gin"

	"sepapay/internal/interfaces/http/handlers"
)

// PaymentRouteConfig holds dependencies for payment routes.
type PaymentRouteConfig struct {
	PaymentHandler  *handlers.PaymentHandler
	AcquirerHandler *handlers.AcquirerHandler
}

// SetupPaymentRoutes configures the payment endpoints.
func SetupPaymentRoutes(engine *gin.Engine, cfg *PaymentRouteConfig) {
	payments := engine.Group("/payments")
	{
		payments.POST("/tokens", cfg.PaymentHandler.CreateToken)
		payments.POST("/transactions", cfg.PaymentHandler.CreateTransaction)
		payments.POST("/transactions/:reference/charge", cfg.PaymentHandler.ChargeTransaction)
		payments.POST("/feedback", cfg.PaymentHandler.HandleFeedback)
		payments.POST("/checkout-values", cfg.PaymentHandler.CheckoutValues)
	}

	invoices := engine.Group("/invoices")
	{
		invoices.POST("/:id/pay", cfg.PaymentHandler.PayInvoice)
	}

	acquirers := engine.Group("/acquirers")
	{
		acquirers.POST("", cfg.AcquirerHandler.Create)
		acquirers.GET("/:id", cfg.AcquirerHandler.Get)
		acquirers.PUT("/:id", cfg.AcquirerHandler.Update)
	}
}
