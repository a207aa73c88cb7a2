package routes

import (
	"github.com/FirstdeveloperMatoGrosso/isapass-payments/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPayments = "/payments"
	PathWebhooks = "/webhooks"
)

func addPaymentRoutes(rg *gin.RouterGroup, paymentHandler *handlers.PixPaymentHandler, webhookHandler *handlers.PixWebhookHandler, limiter gin.HandlerFunc) {
	payments := rg.Group(PathPayments)
	{
		// Creation and status polling are the client-driven hot paths, so
		// only these carry the rate limit.
		payments.POST("", limiter, paymentHandler.CreatePayment)
		payments.GET("/status/:order_id", limiter, paymentHandler.CheckStatus)
		payments.POST("/cancel/:id", paymentHandler.CancelPayment)
		payments.GET("/partner/:partner_id", paymentHandler.ListByPartner)
		payments.GET("/partner/:partner_id/history", paymentHandler.ListPartnerHistory)
	}

	webhooks := rg.Group(PathWebhooks)
	{
		// Provider push channel; converges with polling at the registry.
		webhooks.POST("/pix", webhookHandler.HandleEvent)
	}
}
