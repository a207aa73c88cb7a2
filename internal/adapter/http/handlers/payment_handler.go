package handlers

import (
	"errors"
	"log"
	"net/http"

	request "github.com/FirstdeveloperMatoGrosso/isapass-payments/internal/adapter/http/dto/request"
	response "github.com/FirstdeveloperMatoGrosso/isapass-payments/internal/adapter/http/dto/response"
	"github.com/FirstdeveloperMatoGrosso/isapass-payments/internal/infrastructure/payments"
	"github.com/FirstdeveloperMatoGrosso/isapass-payments/internal/usecase"
	"github.com/FirstdeveloperMatoGrosso/isapass-payments/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidPaymentPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid payment payload", http.StatusBadRequest)

// PixPaymentHandler handles HTTP requests for the PIX payment lifecycle.

type PixPaymentHandler struct {
	usecase usecase.IPixPaymentUseCase
}

func NewPixPaymentHandler(uc usecase.IPixPaymentUseCase) *PixPaymentHandler {
	return &PixPaymentHandler{usecase: uc}
}

// CreatePayment opens a PIX charge for an order and returns the QR payload
// the storefront renders.
func (h *PixPaymentHandler) CreatePayment(c *gin.Context) {
	var payload request.CreatePaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[payment][handler] create invalid payload err=%v", err)
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.CreatePayment(c.Request.Context(), usecase.CreatePaymentInput{
		Amount:    payload.Amount,
		Customer:  payload.ToCustomer(),
		Event:     payload.ToEventInfo(),
		Origin:    c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	})
	if err != nil {
		log.Printf("[payment][handler] create failed err=%v", err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[payment][handler] create success order_id=%s status=%s", created.ProviderTxID, created.Status)
	c.JSON(http.StatusOK, response.FromPaymentIntent(created))
}

// CheckStatus answers the storefront's polling loop for a provider order id.
func (h *PixPaymentHandler) CheckStatus(c *gin.Context) {
	orderID := c.Param("order_id")

	check, err := h.usecase.CheckStatus(c.Request.Context(), orderID)
	if err != nil {
		log.Printf("[payment][handler] status check failed order_id=%s err=%v", orderID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.StatusResponse{
		Status:    string(check.Status),
		CheckedAt: check.CheckedAt,
	})
}

// CancelPayment is the back-office manual cancellation endpoint. Cancelling
// an intent that already settled returns its current state with 200.
func (h *PixPaymentHandler) CancelPayment(c *gin.Context) {
	id := c.Param("id")

	intent, err := h.usecase.CancelPayment(c.Request.Context(), id)
	if err != nil {
		log.Printf("[payment][handler] cancel failed id=%s err=%v", id, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPaymentIntent(intent))
}

// ListByPartner returns a partner's intents, newest first.
func (h *PixPaymentHandler) ListByPartner(c *gin.Context) {
	partnerID := c.Param("partner_id")

	intents, err := h.usecase.ListByPartnerID(c.Request.Context(), partnerID)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPaymentIntents(intents))
}

// ListPartnerHistory returns a partner's settled intents from the durable
// archive, newest first.
func (h *PixPaymentHandler) ListPartnerHistory(c *gin.Context) {
	partnerID := c.Param("partner_id")

	intents, err := h.usecase.ListArchivedByPartnerID(c.Request.Context(), partnerID)
	if err != nil {
		log.Printf("[payment][handler] history failed partner_id=%s err=%v", partnerID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPaymentIntents(intents))
}

func mapPaymentError(err error) *pkg.AppError {
	var validationErr *usecase.ValidationError
	if errors.As(err, &validationErr) {
		// Validation messages are corrective and safe to show as-is.
		return pkg.NewDomainErrorSimple("INVALID_CUSTOMER", validationErr.Message, http.StatusBadRequest)
	}

	var gatewayErr *payments.GatewayError
	if errors.As(err, &gatewayErr) {
		// Full provider detail stays in logs; callers get a retry prompt.
		return pkg.NewDomainError("PAYMENT_PROVIDER_ERROR", "Payment provider is unavailable, try again", err, http.StatusBadGateway)
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidAmount), errors.Is(err, usecase.ErrInvalidPartnerID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrFraudRejected):
		// Generic denial on purpose: reasons are not disclosed to callers.
		return pkg.NewDomainErrorSimple("PAYMENT_DENIED", "Payment could not be processed", http.StatusForbidden)
	case errors.Is(err, usecase.ErrPixDisabled), errors.Is(err, usecase.ErrGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PIX_UNAVAILABLE", "PIX payments are not available right now", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrArchiveNotConfigured):
		return pkg.NewDomainErrorSimple("HISTORY_UNAVAILABLE", "Payment history is not available right now", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrIntentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
