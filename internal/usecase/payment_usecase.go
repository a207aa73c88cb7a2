package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"github.com/FirstdeveloperMatoGrosso/isapass-payments/internal/domain/entities"
	"github.com/FirstdeveloperMatoGrosso/isapass-payments/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrPixDisabled          = errors.New("pix payments disabled or not configured")
	ErrFraudRejected        = errors.New("payment request rejected by risk policy")
	ErrIntentNotFound       = errors.New("payment intent not found")
	ErrInvalidAmount        = errors.New("invalid payment amount")
	ErrInvalidPartnerID     = errors.New("invalid partner_id")
	ErrGatewayNotConfigured = errors.New("pix gateway not configured")
	ErrArchiveNotConfigured = errors.New("payment archive not configured")
)

// Decision thresholds applied to fraud scores. Scores are additive integers,
// so the boundaries are exact: 70 rejects, 69 only flags.
const (
	FraudRejectScore = 70
	FraudReviewScore = 40
)

// CreatePaymentInput is the intent-creation command received from the UI layer.
// Amount is in major currency units and converted to centavos internally.
type CreatePaymentInput struct {
	Amount    float64
	Customer  entities.Customer
	Event     entities.EventInfo
	Origin    string
	UserAgent string
}

// ProviderEvent is a webhook delivery already reduced to the fields the
// lifecycle cares about. RawStatus/StatusDetail stay in provider vocabulary
// and are translated at the gateway boundary.
type ProviderEvent struct {
	Type         string
	ProviderTxID string
	RawStatus    string
	StatusDetail string
	PaidAt       *time.Time
}

// EventOutcome tells the webhook handler how a delivery was absorbed.
type EventOutcome string

const (
	EventOutcomeApplied      EventOutcome = "applied"
	EventOutcomeDuplicate    EventOutcome = "duplicate"
	EventOutcomeNotProcessed EventOutcome = "not_processed"
)

// StatusCheck is the answer to a client status poll.
type StatusCheck struct {
	Status    entities.PaymentStatus
	CheckedAt time.Time
}

// IPixPaymentUseCase exposes the PIX payment lifecycle operations.

type IPixPaymentUseCase interface {
	CreatePayment(ctx context.Context, in CreatePaymentInput) (entities.PaymentIntent, error)
	CheckStatus(ctx context.Context, orderID string) (StatusCheck, error)
	CancelPayment(ctx context.Context, id string) (entities.PaymentIntent, error)
	ListByPartnerID(ctx context.Context, partnerID string) ([]entities.PaymentIntent, error)
	ListArchivedByPartnerID(ctx context.Context, partnerID string) ([]entities.PaymentIntent, error)
	HandleProviderEvent(ctx context.Context, evt ProviderEvent) (EventOutcome, error)
}

type PixPaymentUseCase struct {
	cfg      entities.PixConfig
	registry interfaces.IPaymentRegistry
	gateway  interfaces.IPixGateway
	archive  interfaces.IPaymentArchive
	scorer   *FraudScorer

	now   func() time.Time
	newID func() string
}

var _ IPixPaymentUseCase = (*PixPaymentUseCase)(nil)

func NewPixPaymentUseCase(cfg entities.PixConfig, registry interfaces.IPaymentRegistry, gateway interfaces.IPixGateway, archive interfaces.IPaymentArchive, scorer *FraudScorer) *PixPaymentUseCase {
	return &PixPaymentUseCase{
		cfg:      cfg,
		registry: registry,
		gateway:  gateway,
		archive:  archive,
		scorer:   scorer,
		now:      time.Now,
		newID:    newIntentID,
	}
}

func newIntentID() string {
	return fmt.Sprintf("pix_%d_%s", time.Now().UTC().UnixMilli(), strings.SplitN(uuid.NewString(), "-", 2)[0])
}

// toCents converts major currency units to centavos, rounding (never
// truncating) so repeated conversions cannot drift toward underpayment.
func toCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// CreatePayment runs the full intake: config gate, syntactic validation,
// fraud scoring, provider order creation, then registry insertion. Validation
// and fraud failures stop the flow before any provider call so no orphaned
// provider-side order can exist.
func (u *PixPaymentUseCase) CreatePayment(ctx context.Context, in CreatePaymentInput) (entities.PaymentIntent, error) {
	log.Printf("[payment][usecase] create start partner_id=%s amount=%.2f", in.Event.PartnerID, in.Amount)

	if !u.cfg.Usable() {
		log.Printf("[payment][usecase] pix disabled or key missing")
		return entities.PaymentIntent{}, ErrPixDisabled
	}
	if u.registry == nil {
		return entities.PaymentIntent{}, errors.New("payment registry not configured")
	}
	if u.gateway == nil {
		log.Printf("[payment][usecase] gateway not configured")
		return entities.PaymentIntent{}, ErrGatewayNotConfigured
	}

	if err := ValidateCustomer(in.Customer, true); err != nil {
		log.Printf("[payment][usecase] customer validation failed err=%v", err)
		return entities.PaymentIntent{}, err
	}

	cents := toCents(in.Amount)
	if cents <= 0 {
		log.Printf("[payment][usecase] invalid amount=%.2f", in.Amount)
		return entities.PaymentIntent{}, ErrInvalidAmount
	}

	partnerID := strings.TrimSpace(in.Event.PartnerID)
	if partnerID == "" {
		partnerID = strings.TrimSpace(u.cfg.PartnerID)
	}
	if partnerID == "" {
		return entities.PaymentIntent{}, ErrInvalidPartnerID
	}

	review := false
	if u.scorer != nil {
		assessment := u.scorer.Score(FraudInput{
			Origin:      in.Origin,
			UserAgent:   in.UserAgent,
			AmountCents: cents,
			Document:    in.Customer.Document,
		})
		switch {
		case assessment.Score >= FraudRejectScore:
			// Reasons are logged server-side only; callers get a generic denial.
			log.Printf("[payment][usecase] fraud reject score=%d reasons=%q", assessment.Score, strings.Join(assessment.Reasons, "; "))
			return entities.PaymentIntent{}, ErrFraudRejected
		case assessment.Score >= FraudReviewScore:
			log.Printf("[payment][usecase] fraud review score=%d reasons=%q", assessment.Score, strings.Join(assessment.Reasons, "; "))
			review = true
		}
	}

	now := u.now().UTC()
	intent := entities.PaymentIntent{
		ID:            u.newID(),
		PartnerID:     partnerID,
		Value:         cents,
		Status:        entities.PaymentStatusPending,
		PixKey:        u.cfg.Key,
		Review:        review,
		CreatedAt:     now,
		ExpiresAt:     now.Add(u.cfg.ExpirationWindow()),
		CustomerName:  strings.TrimSpace(in.Customer.Name),
		CustomerEmail: strings.TrimSpace(in.Customer.Email),
		CustomerPhone: strings.TrimSpace(in.Customer.Phone),
	}

	order, err := u.gateway.CreateOrder(ctx, interfaces.PixOrderRequest{
		InternalID:  intent.ID,
		AmountCents: cents,
		Customer:    in.Customer,
		Event:       in.Event,
		ExpiresIn:   u.cfg.ExpirationWindow(),
	})
	if err != nil {
		log.Printf("[payment][usecase] gateway order creation failed intent_id=%s err=%v", intent.ID, err)
		return entities.PaymentIntent{}, err
	}

	intent.ProviderTxID = order.ProviderTxID
	intent.QRCode = order.QRCode
	intent.QRCodeURL = order.QRCodeURL
	// The registry expiry follows the provider's when present so both sides
	// agree on when the code stops being payable.
	if !order.ExpiresAt.IsZero() && order.ExpiresAt.After(intent.CreatedAt) {
		intent.ExpiresAt = order.ExpiresAt.UTC()
	}

	created, err := u.registry.Create(ctx, intent)
	if err != nil {
		log.Printf("[payment][usecase] registry create failed intent_id=%s provider_tx_id=%s err=%v", intent.ID, intent.ProviderTxID, err)
		return entities.PaymentIntent{}, err
	}

	log.Printf("[payment][usecase] create success intent_id=%s provider_tx_id=%s value=%d expires_at=%s review=%t",
		created.ID, created.ProviderTxID, created.Value, created.ExpiresAt.Format(time.RFC3339), created.Review)
	return created, nil
}

// CheckStatus answers a client poll for an order. While the intent is still
// pending it consults the provider and reconciles the registry, so polling
// and webhooks converge on the same terminal state.
func (u *PixPaymentUseCase) CheckStatus(ctx context.Context, orderID string) (StatusCheck, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return StatusCheck{}, ErrIntentNotFound
	}

	intent, err := u.registry.GetByProviderTxID(ctx, orderID)
	if err != nil {
		return StatusCheck{}, err
	}
	if intent.ID == "" {
		return StatusCheck{}, ErrIntentNotFound
	}

	now := u.now().UTC()
	if intent.Status.Terminal() {
		return StatusCheck{Status: intent.Status, CheckedAt: now}, nil
	}

	if intent.EffectiveStatus(now) == entities.PaymentStatusExpired {
		if swept, applied, _ := u.registry.MarkExpired(ctx, orderID); applied {
			u.archiveTerminal(ctx, swept)
		}
		return StatusCheck{Status: entities.PaymentStatusExpired, CheckedAt: now}, nil
	}

	if u.gateway == nil {
		return StatusCheck{Status: entities.PaymentStatusPending, CheckedAt: now}, nil
	}

	st, err := u.gateway.GetOrderStatus(ctx, orderID)
	if err != nil {
		log.Printf("[payment][usecase] status check gateway error provider_tx_id=%s err=%v", orderID, err)
		return StatusCheck{}, err
	}

	switch st.Status {
	case entities.PaymentStatusPaid:
		paidAt := now
		if st.PaidAt != nil {
			paidAt = *st.PaidAt
		}
		if updated, applied, _ := u.registry.MarkPaid(ctx, orderID, paidAt); applied {
			log.Printf("[payment][usecase] status check resolved paid provider_tx_id=%s ticket_id=%s", orderID, updated.TicketID)
			u.archiveTerminal(ctx, updated)
		}
	case entities.PaymentStatusFailed:
		if updated, applied, _ := u.registry.MarkFailed(ctx, orderID); applied {
			u.archiveTerminal(ctx, updated)
		}
	case entities.PaymentStatusExpired:
		if updated, applied, _ := u.registry.MarkExpired(ctx, orderID); applied {
			u.archiveTerminal(ctx, updated)
		}
	}

	return StatusCheck{Status: st.Status, CheckedAt: now}, nil
}

// CancelPayment is the manual cancellation path, keyed by internal id.
// Cancelling an already-terminal intent is a no-op that reports the stored
// state instead of failing.
func (u *PixPaymentUseCase) CancelPayment(ctx context.Context, id string) (entities.PaymentIntent, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.PaymentIntent{}, ErrIntentNotFound
	}

	existing, err := u.registry.GetByID(ctx, id)
	if err != nil {
		return entities.PaymentIntent{}, err
	}
	if existing.ID == "" {
		return entities.PaymentIntent{}, ErrIntentNotFound
	}

	intent, applied, err := u.registry.MarkCancelled(ctx, id)
	if err != nil {
		return entities.PaymentIntent{}, err
	}
	if !applied {
		log.Printf("[payment][usecase] cancel no-op intent_id=%s status=%s", intent.ID, intent.Status)
		return intent, nil
	}

	if u.gateway != nil {
		// Best effort: the registry state is already final either way.
		if err := u.gateway.CancelOrder(ctx, intent.ProviderTxID); err != nil {
			log.Printf("[payment][usecase] provider cancel failed provider_tx_id=%s err=%v", intent.ProviderTxID, err)
		}
	}

	u.archiveTerminal(ctx, intent)
	log.Printf("[payment][usecase] cancel success intent_id=%s", intent.ID)
	return intent, nil
}

func (u *PixPaymentUseCase) ListByPartnerID(ctx context.Context, partnerID string) ([]entities.PaymentIntent, error) {
	partnerID = strings.TrimSpace(partnerID)
	if partnerID == "" {
		return nil, ErrInvalidPartnerID
	}
	return u.registry.ListByPartnerID(ctx, partnerID)
}

// ListArchivedByPartnerID serves back-office history from the durable archive
// rather than the in-memory registry, so it covers intents settled before the
// last restart.
func (u *PixPaymentUseCase) ListArchivedByPartnerID(ctx context.Context, partnerID string) ([]entities.PaymentIntent, error) {
	partnerID = strings.TrimSpace(partnerID)
	if partnerID == "" {
		return nil, ErrInvalidPartnerID
	}
	if u.archive == nil {
		return nil, ErrArchiveNotConfigured
	}
	return u.archive.ListByPartnerID(ctx, partnerID)
}

// HandleProviderEvent absorbs one webhook delivery. Deliveries are
// at-least-once: replays of an already-applied status land on the registry's
// CAS guard and come back as duplicates, never double-minting a ticket.
func (u *PixPaymentUseCase) HandleProviderEvent(ctx context.Context, evt ProviderEvent) (EventOutcome, error) {
	if !strings.EqualFold(strings.TrimSpace(evt.Type), "payment") {
		log.Printf("[payment][webhook] ignoring event type=%q", evt.Type)
		return EventOutcomeNotProcessed, nil
	}

	txID := strings.TrimSpace(evt.ProviderTxID)
	if txID == "" {
		return EventOutcomeNotProcessed, nil
	}

	intent, err := u.registry.GetByProviderTxID(ctx, txID)
	if err != nil {
		return EventOutcomeNotProcessed, err
	}
	if intent.ID == "" {
		log.Printf("[payment][webhook] no intent for provider_tx_id=%s", txID)
		return EventOutcomeNotProcessed, nil
	}
	if u.gateway == nil {
		log.Printf("[payment][webhook] gateway not configured provider_tx_id=%s", txID)
		return EventOutcomeNotProcessed, nil
	}

	status := entities.PaymentStatusPending
	paidAt := evt.PaidAt
	if evt.RawStatus != "" {
		status = u.gateway.TranslateStatus(evt.RawStatus, evt.StatusDetail)
	} else {
		// Thin notifications (id only) require one status fetch.
		st, err := u.gateway.GetOrderStatus(ctx, txID)
		if err != nil {
			log.Printf("[payment][webhook] status fetch failed provider_tx_id=%s err=%v", txID, err)
			return EventOutcomeNotProcessed, err
		}
		status = st.Status
		if st.PaidAt != nil {
			paidAt = st.PaidAt
		}
	}

	switch status {
	case entities.PaymentStatusPaid:
		at := u.now().UTC()
		if paidAt != nil {
			at = *paidAt
		}
		updated, applied, err := u.registry.MarkPaid(ctx, txID, at)
		if err != nil {
			return EventOutcomeNotProcessed, err
		}
		if !applied {
			log.Printf("[payment][webhook] duplicate paid delivery provider_tx_id=%s", txID)
			return EventOutcomeDuplicate, nil
		}
		log.Printf("[payment][webhook] paid provider_tx_id=%s ticket_id=%s", txID, updated.TicketID)
		u.archiveTerminal(ctx, updated)
		return EventOutcomeApplied, nil

	case entities.PaymentStatusFailed:
		updated, applied, err := u.registry.MarkFailed(ctx, txID)
		if err != nil {
			return EventOutcomeNotProcessed, err
		}
		if !applied {
			return EventOutcomeDuplicate, nil
		}
		log.Printf("[payment][webhook] failed provider_tx_id=%s", txID)
		u.archiveTerminal(ctx, updated)
		return EventOutcomeApplied, nil

	case entities.PaymentStatusExpired:
		updated, applied, err := u.registry.MarkExpired(ctx, txID)
		if err != nil {
			return EventOutcomeNotProcessed, err
		}
		if !applied {
			return EventOutcomeDuplicate, nil
		}
		log.Printf("[payment][webhook] expired provider_tx_id=%s", txID)
		u.archiveTerminal(ctx, updated)
		return EventOutcomeApplied, nil
	}

	return EventOutcomeNotProcessed, nil
}

// archiveTerminal copies a settled intent to durable storage. Failures are
// logged and swallowed: the registry stays authoritative.
func (u *PixPaymentUseCase) archiveTerminal(ctx context.Context, intent entities.PaymentIntent) {
	if u.archive == nil {
		return
	}
	if err := u.archive.Archive(ctx, intent); err != nil {
		log.Printf("[payment][usecase] archive failed intent_id=%s err=%v", intent.ID, err)
	}
}
