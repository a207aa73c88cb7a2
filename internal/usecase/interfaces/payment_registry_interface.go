package interfaces

import (
	"context"
	"time"

	"github.com/FirstdeveloperMatoGrosso/isapass-payments/internal/domain/entities"
)

// IPaymentRegistry is the authoritative in-process store of payment intents.
//
// The registry is the single writer of Status, PaidAt, CancelledAt and
// TicketID. Mark* operations are compare-and-set transitions out of `pending`:
// they return the stored record plus `applied=false` when the intent is
// already terminal (or unknown), and must never mutate a terminal record.
// Lookups that miss return a zero-value intent and a nil error.

type IPaymentRegistry interface {
	Create(ctx context.Context, intent entities.PaymentIntent) (entities.PaymentIntent, error)
	GetByID(ctx context.Context, id string) (entities.PaymentIntent, error)
	GetByProviderTxID(ctx context.Context, providerTxID string) (entities.PaymentIntent, error)
	ListByPartnerID(ctx context.Context, partnerID string) ([]entities.PaymentIntent, error)

	MarkPaid(ctx context.Context, providerTxID string, paidAt time.Time) (entities.PaymentIntent, bool, error)
	MarkFailed(ctx context.Context, providerTxID string) (entities.PaymentIntent, bool, error)
	MarkExpired(ctx context.Context, providerTxID string) (entities.PaymentIntent, bool, error)
	MarkCancelled(ctx context.Context, id string) (entities.PaymentIntent, bool, error)

	SweepExpired(ctx context.Context, now time.Time) ([]entities.PaymentIntent, error)
}
