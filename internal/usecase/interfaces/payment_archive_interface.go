package interfaces

import (
	"context"

	"github.com/FirstdeveloperMatoGrosso/isapass-payments/internal/domain/entities"
)

// IPaymentArchive abstracts durable persistence of settled intents (DynamoDB).
//
// Archiving is best-effort and sits off the transition path: the in-memory
// registry stays authoritative, the archive is the reporting/audit copy.

type IPaymentArchive interface {
	Archive(ctx context.Context, intent entities.PaymentIntent) error
	ListByPartnerID(ctx context.Context, partnerID string) ([]entities.PaymentIntent, error)
}
