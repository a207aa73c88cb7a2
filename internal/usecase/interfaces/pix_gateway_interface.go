package interfaces

import (
	"context"
	"time"

	"github.com/FirstdeveloperMatoGrosso/isapass-payments/internal/domain/entities"
)

// PixOrderRequest is the provider-facing order creation command.
type PixOrderRequest struct {
	InternalID  string
	AmountCents int64
	Customer    entities.Customer
	Event       entities.EventInfo
	ExpiresIn   time.Duration
}

// PixOrder is the provider's answer to a successful order creation.
type PixOrder struct {
	ProviderTxID string
	QRCode       string
	QRCodeURL    string
	ExpiresAt    time.Time
	RawStatus    string
}

// PixOrderStatus is a provider status snapshot already translated to the
// internal enum.
type PixOrderStatus struct {
	Status entities.PaymentStatus
	PaidAt *time.Time
}

// IPixGateway abstracts the external PIX payment provider (Mercado Pago).
//
// TranslateStatus is the single place where provider status strings become the
// internal closed enum; webhook payloads go through it too so no raw provider
// string survives past the adapter boundary. The gateway never retries on its
// own; retry policy belongs to callers.
type IPixGateway interface {
	CreateOrder(ctx context.Context, req PixOrderRequest) (PixOrder, error)
	GetOrderStatus(ctx context.Context, providerTxID string) (PixOrderStatus, error)
	CancelOrder(ctx context.Context, providerTxID string) error
	TranslateStatus(status, statusDetail string) entities.PaymentStatus
}
