package handlers

import (
	"log"
	"net/http"

	request "github.com/FirstdeveloperMatoGrosso/isapass-payments/internal/adapter/http/dto/request"
	response "github.com/FirstdeveloperMatoGrosso/isapass-payments/internal/adapter/http/dto/response"
	"github.com/FirstdeveloperMatoGrosso/isapass-payments/internal/usecase"
	"github.com/FirstdeveloperMatoGrosso/isapass-payments/pkg"

	"github.com/gin-gonic/gin"
)

// PixWebhookHandler receives provider push notifications.
//
// Unrecognized payloads and event types are acknowledged with 200 and a
// "not processed" body, never an error: a non-2xx answer would put the
// provider into a retry storm over events we will never act on.

type PixWebhookHandler struct {
	usecase usecase.IPixPaymentUseCase
}

func NewPixWebhookHandler(uc usecase.IPixPaymentUseCase) *PixWebhookHandler {
	return &PixWebhookHandler{usecase: uc}
}

func (h *PixWebhookHandler) HandleEvent(c *gin.Context) {
	var payload request.ProviderEventRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[payment][webhook] unparseable payload err=%v", err)
		c.JSON(http.StatusOK, response.WebhookAckResponse{Status: "not processed"})
		return
	}

	outcome, err := h.usecase.HandleProviderEvent(c.Request.Context(), payload.ToProviderEvent())
	if err != nil {
		// Internal failure: a non-2xx asks the provider to redeliver later.
		log.Printf("[payment][webhook] event handling failed type=%s err=%v", payload.Type, err)
		appErr := pkg.NewDomainError("WEBHOOK_ERROR", "Event could not be processed", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	switch outcome {
	case usecase.EventOutcomeApplied:
		c.JSON(http.StatusOK, response.WebhookAckResponse{Status: "processed"})
	case usecase.EventOutcomeDuplicate:
		c.JSON(http.StatusOK, response.WebhookAckResponse{Status: "already processed"})
	default:
		c.JSON(http.StatusOK, response.WebhookAckResponse{Status: "not processed"})
	}
}
