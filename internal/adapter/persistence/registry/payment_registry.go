package registry

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/FirstdeveloperMatoGrosso/isapass-payments/internal/domain/entities"
	"github.com/FirstdeveloperMatoGrosso/isapass-payments/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrDuplicateIntentID     = errors.New("payment intent id already registered")
	ErrDuplicateProviderTxID = errors.New("provider tx id already registered")
	ErrInvalidIntent         = errors.New("invalid payment intent")
)

// PaymentIntentRegistry is the in-memory authoritative store of payment
// intents, indexed by internal id and by provider transaction id.
//
// One mutex serializes every transition, which is what makes the CAS contract
// hold under concurrent webhook/poll deliveries: whichever writer gets the
// lock first wins, the loser observes a terminal record and applies nothing.

type PaymentIntentRegistry struct {
	mu       sync.Mutex
	byID     map[string]*entities.PaymentIntent
	byTxID   map[string]string // providerTxID -> internal id
	ticketFn func() string
}

var _ interfaces.IPaymentRegistry = (*PaymentIntentRegistry)(nil)

func NewPaymentIntentRegistry() *PaymentIntentRegistry {
	return &PaymentIntentRegistry{
		byID:     make(map[string]*entities.PaymentIntent),
		byTxID:   make(map[string]string),
		ticketFn: func() string { return "tkt_" + uuid.NewString() },
	}
}

func (r *PaymentIntentRegistry) Create(ctx context.Context, intent entities.PaymentIntent) (entities.PaymentIntent, error) {
	if strings.TrimSpace(intent.ID) == "" || strings.TrimSpace(intent.ProviderTxID) == "" {
		return entities.PaymentIntent{}, ErrInvalidIntent
	}
	if !intent.ExpiresAt.After(intent.CreatedAt) {
		return entities.PaymentIntent{}, ErrInvalidIntent
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[intent.ID]; ok {
		return entities.PaymentIntent{}, ErrDuplicateIntentID
	}
	if _, ok := r.byTxID[intent.ProviderTxID]; ok {
		return entities.PaymentIntent{}, ErrDuplicateProviderTxID
	}

	intent.Status = entities.PaymentStatusPending
	intent.TicketID = ""
	stored := intent
	r.byID[intent.ID] = &stored
	r.byTxID[intent.ProviderTxID] = intent.ID
	return intent, nil
}

func (r *PaymentIntentRegistry) GetByID(ctx context.Context, id string) (entities.PaymentIntent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.byID[id]
	if !ok {
		return entities.PaymentIntent{}, nil
	}
	return *p, nil
}

func (r *PaymentIntentRegistry) GetByProviderTxID(ctx context.Context, providerTxID string) (entities.PaymentIntent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := r.lookupByTxID(providerTxID)
	if p == nil {
		return entities.PaymentIntent{}, nil
	}
	return *p, nil
}

// ListByPartnerID returns the partner's intents newest-first by CreatedAt.
func (r *PaymentIntentRegistry) ListByPartnerID(ctx context.Context, partnerID string) ([]entities.PaymentIntent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]entities.PaymentIntent, 0)
	for _, p := range r.byID {
		if p.PartnerID == partnerID {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// MarkPaid transitions pending -> paid, setting PaidAt and minting the ticket
// id exactly once. A second delivery for the same tx id is a no-op.
func (r *PaymentIntentRegistry) MarkPaid(ctx context.Context, providerTxID string, paidAt time.Time) (entities.PaymentIntent, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := r.lookupByTxID(providerTxID)
	if p == nil {
		return entities.PaymentIntent{}, false, nil
	}
	if p.Status != entities.PaymentStatusPending {
		return *p, false, nil
	}

	p.Status = entities.PaymentStatusPaid
	at := paidAt.UTC()
	p.PaidAt = &at
	p.TicketID = r.ticketFn()
	return *p, true, nil
}

func (r *PaymentIntentRegistry) MarkFailed(ctx context.Context, providerTxID string) (entities.PaymentIntent, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := r.lookupByTxID(providerTxID)
	if p == nil {
		return entities.PaymentIntent{}, false, nil
	}
	if p.Status != entities.PaymentStatusPending {
		return *p, false, nil
	}

	p.Status = entities.PaymentStatusFailed
	return *p, true, nil
}

func (r *PaymentIntentRegistry) MarkExpired(ctx context.Context, providerTxID string) (entities.PaymentIntent, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := r.lookupByTxID(providerTxID)
	if p == nil {
		return entities.PaymentIntent{}, false, nil
	}
	if p.Status != entities.PaymentStatusPending {
		return *p, false, nil
	}

	p.Status = entities.PaymentStatusExpired
	return *p, true, nil
}

// MarkCancelled is keyed by internal id: manual cancellation comes from our
// own callers, not from provider correlation.
func (r *PaymentIntentRegistry) MarkCancelled(ctx context.Context, id string) (entities.PaymentIntent, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.byID[id]
	if !ok {
		return entities.PaymentIntent{}, false, nil
	}
	if p.Status != entities.PaymentStatusPending {
		return *p, false, nil
	}

	p.Status = entities.PaymentStatusCancelled
	at := time.Now().UTC()
	p.CancelledAt = &at
	return *p, true, nil
}

// SweepExpired flips every pending intent with ExpiresAt < now to expired and
// returns the flipped records. Non-pending records are never touched, so the
// sweep is idempotent and safe to run concurrently with lookups.
func (r *PaymentIntentRegistry) SweepExpired(ctx context.Context, now time.Time) ([]entities.PaymentIntent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	swept := make([]entities.PaymentIntent, 0)
	for _, p := range r.byID {
		if p.Status == entities.PaymentStatusPending && p.ExpiresAt.Before(now) {
			p.Status = entities.PaymentStatusExpired
			swept = append(swept, *p)
		}
	}
	return swept, nil
}

// lookupByTxID must be called with the mutex held.
func (r *PaymentIntentRegistry) lookupByTxID(providerTxID string) *entities.PaymentIntent {
	id, ok := r.byTxID[providerTxID]
	if !ok {
		return nil
	}
	return r.byID[id]
}
