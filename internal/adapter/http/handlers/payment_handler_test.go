package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/FirstdeveloperMatoGrosso/isapass-payments/internal/adapter/http/dto/response"
	"github.com/FirstdeveloperMatoGrosso/isapass-payments/internal/adapter/http/handlers/mocks"
	"github.com/FirstdeveloperMatoGrosso/isapass-payments/internal/domain/entities"
	"github.com/FirstdeveloperMatoGrosso/isapass-payments/internal/infrastructure/payments"
	"github.com/FirstdeveloperMatoGrosso/isapass-payments/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

const createPaymentBody = `{
	"amount": 150.00,
	"customer": {
		"name": "Maria Souza",
		"email": "maria@example.com",
		"document": "52998224725",
		"phone": "11988887777"
	},
	"event": {
		"partnerId": "partner-1",
		"name": "Festival de Inverno",
		"ticketType": "pista"
	}
}`

func paymentRouter(h *PixPaymentHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/payments", h.CreatePayment)
	r.GET("/v1/payments/status/:order_id", h.CheckStatus)
	r.POST("/v1/payments/cancel/:id", h.CancelPayment)
	r.GET("/v1/payments/partner/:partner_id", h.ListByPartner)
	r.GET("/v1/payments/partner/:partner_id/history", h.ListPartnerHistory)
	return r
}

func TestPixPaymentHandler_CreatePayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPixPaymentUseCase(ctrl)
		r := paymentRouter(NewPixPaymentHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/payments", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success returns the qr payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPixPaymentUseCase(ctrl)
		r := paymentRouter(NewPixPaymentHandler(uc))

		expiresAt := time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)
		uc.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ interface{}, in usecase.CreatePaymentInput) (entities.PaymentIntent, error) {
				if in.Amount != 150.00 {
					t.Fatalf("expected amount 150.00, got %v", in.Amount)
				}
				if in.Customer.Document != "52998224725" {
					t.Fatalf("unexpected customer %+v", in.Customer)
				}
				if in.UserAgent == "" && in.Origin == "" {
					t.Fatalf("expected request metadata to be forwarded")
				}
				return entities.PaymentIntent{
					ID:           "pix_test_1",
					PartnerID:    "partner-1",
					Value:        15000,
					Status:       entities.PaymentStatusPending,
					ProviderTxID: "987654",
					QRCode:       "00020126pixpayload",
					QRCodeURL:    "https://mp.example/qr/987654",
					ExpiresAt:    expiresAt,
				}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/payments", bytes.NewBufferString(createPaymentBody))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("User-Agent", "Mozilla/5.0 (X11; Linux x86_64)")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
		var body response.PaymentResponse
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body.OrderID != "987654" || body.Amount != 15000 || body.Status != "pending" {
			t.Fatalf("unexpected response %+v", body)
		}
		if body.Pix.QRCode != "00020126pixpayload" || !body.Pix.ExpiresAt.Equal(expiresAt) {
			t.Fatalf("unexpected pix block %+v", body.Pix)
		}
		if body.TicketID != "" {
			t.Fatalf("ticket must not be present before payment")
		}
	})

	t.Run("validation error surfaces the field message", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPixPaymentUseCase(ctrl)
		r := paymentRouter(NewPixPaymentHandler(uc))

		uc.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(entities.PaymentIntent{},
			&usecase.ValidationError{Field: "document", Message: "CPF must contain exactly 11 digits"})

		req := httptest.NewRequest(http.MethodPost, "/v1/payments", bytes.NewBufferString(createPaymentBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["code"] != "INVALID_CUSTOMER" || body["message"] != "CPF must contain exactly 11 digits" {
			t.Fatalf("unexpected error body %v", body)
		}
	})

	t.Run("fraud rejection is a generic 403", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPixPaymentUseCase(ctrl)
		r := paymentRouter(NewPixPaymentHandler(uc))

		uc.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(entities.PaymentIntent{}, usecase.ErrFraudRejected)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments", bytes.NewBufferString(createPaymentBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
		var body map[string]string
		json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "PAYMENT_DENIED" {
			t.Fatalf("unexpected error body %v", body)
		}
	})

	t.Run("gateway failure is a 502 without provider detail", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPixPaymentUseCase(ctrl)
		r := paymentRouter(NewPixPaymentHandler(uc))

		uc.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(entities.PaymentIntent{},
			&payments.GatewayError{StatusCode: 500, Message: "payment provider request failed", Raw: "secret internals"})

		req := httptest.NewRequest(http.MethodPost, "/v1/payments", bytes.NewBufferString(createPaymentBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
		if bytes.Contains(w.Body.Bytes(), []byte("secret internals")) {
			t.Fatalf("provider detail leaked to the caller: %s", w.Body.String())
		}
	})

	t.Run("pix disabled is a 503", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPixPaymentUseCase(ctrl)
		r := paymentRouter(NewPixPaymentHandler(uc))

		uc.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(entities.PaymentIntent{}, usecase.ErrPixDisabled)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments", bytes.NewBufferString(createPaymentBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})
}

func TestPixPaymentHandler_CheckStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("answers the current status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPixPaymentUseCase(ctrl)
		r := paymentRouter(NewPixPaymentHandler(uc))

		checkedAt := time.Date(2026, 3, 10, 15, 5, 0, 0, time.UTC)
		uc.EXPECT().CheckStatus(gomock.Any(), "987654").Return(usecase.StatusCheck{
			Status:    entities.PaymentStatusPaid,
			CheckedAt: checkedAt,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/status/987654", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body response.StatusResponse
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body.Status != "paid" || !body.CheckedAt.Equal(checkedAt) {
			t.Fatalf("unexpected body %+v", body)
		}
	})

	t.Run("unknown order is a 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPixPaymentUseCase(ctrl)
		r := paymentRouter(NewPixPaymentHandler(uc))

		uc.EXPECT().CheckStatus(gomock.Any(), "missing").Return(usecase.StatusCheck{}, usecase.ErrIntentNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/status/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("unexpected failure is a 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPixPaymentUseCase(ctrl)
		r := paymentRouter(NewPixPaymentHandler(uc))

		uc.EXPECT().CheckStatus(gomock.Any(), "987654").Return(usecase.StatusCheck{}, errors.New("boom"))

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/status/987654", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestPixPaymentHandler_CancelPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("returns the cancelled intent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPixPaymentUseCase(ctrl)
		r := paymentRouter(NewPixPaymentHandler(uc))

		uc.EXPECT().CancelPayment(gomock.Any(), "pix_test_1").Return(entities.PaymentIntent{
			ID:           "pix_test_1",
			ProviderTxID: "987654",
			Status:       entities.PaymentStatusCancelled,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/cancel/pix_test_1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body response.PaymentResponse
		json.Unmarshal(w.Body.Bytes(), &body)
		if body.Status != "cancelled" {
			t.Fatalf("unexpected body %+v", body)
		}
	})

	t.Run("unknown id is a 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPixPaymentUseCase(ctrl)
		r := paymentRouter(NewPixPaymentHandler(uc))

		uc.EXPECT().CancelPayment(gomock.Any(), "missing").Return(entities.PaymentIntent{}, usecase.ErrIntentNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/cancel/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestPixPaymentHandler_ListByPartner(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPixPaymentUseCase(ctrl)
	r := paymentRouter(NewPixPaymentHandler(uc))

	uc.EXPECT().ListByPartnerID(gomock.Any(), "partner-1").Return([]entities.PaymentIntent{
		{ID: "pix_2", ProviderTxID: "tx_2", Status: entities.PaymentStatusPaid, TicketID: "tkt_2"},
		{ID: "pix_1", ProviderTxID: "tx_1", Status: entities.PaymentStatusExpired},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/payments/partner/partner-1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []response.PaymentResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(body) != 2 || body[0].OrderID != "tx_2" || body[0].TicketID != "tkt_2" {
		t.Fatalf("unexpected body %+v", body)
	}
}

func TestPixPaymentHandler_ListPartnerHistory(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("serves archived intents", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPixPaymentUseCase(ctrl)
		r := paymentRouter(NewPixPaymentHandler(uc))

		uc.EXPECT().ListArchivedByPartnerID(gomock.Any(), "partner-1").Return([]entities.PaymentIntent{
			{ID: "pix_old_2", ProviderTxID: "tx_old_2", Status: entities.PaymentStatusPaid, TicketID: "tkt_old_2"},
			{ID: "pix_old_1", ProviderTxID: "tx_old_1", Status: entities.PaymentStatusExpired},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/partner/partner-1/history", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []response.PaymentResponse
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if len(body) != 2 || body[0].OrderID != "tx_old_2" || body[0].TicketID != "tkt_old_2" {
			t.Fatalf("unexpected body %+v", body)
		}
	})

	t.Run("missing archive is a 503", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPixPaymentUseCase(ctrl)
		r := paymentRouter(NewPixPaymentHandler(uc))

		uc.EXPECT().ListArchivedByPartnerID(gomock.Any(), "partner-1").Return(nil, usecase.ErrArchiveNotConfigured)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/partner/partner-1/history", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
		var body map[string]string
		json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "HISTORY_UNAVAILABLE" {
			t.Fatalf("unexpected error body %v", body)
		}
	})
}
