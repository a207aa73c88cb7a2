package usecase

import (
	"context"
	"log"
	"time"

	"github.com/FirstdeveloperMatoGrosso/isapass-payments/internal/domain/entities"
)

// PollOutcome is the terminal resolution a watch delivers.
type PollOutcome string

const (
	PollOutcomePaid    PollOutcome = "paid"
	PollOutcomeFailed  PollOutcome = "failed"
	PollOutcomeExpired PollOutcome = "expired"
)

// PollResult is the single value a watch sends before closing its channel.
type PollResult struct {
	Outcome PollOutcome
	Status  entities.PaymentStatus
}

// StatusPoller drives the client-side polling channel of the status notifier:
// one bounded, cancellable loop per displayed QR code.
//
// Each tick goes through CheckStatus, so transitions are applied under the
// registry's CAS rules and a webhook landing mid-poll simply turns the next
// tick into a no-op read of the terminal state.

type StatusPoller struct {
	uc          IPixPaymentUseCase
	interval    time.Duration
	maxAttempts int
}

func NewStatusPoller(uc IPixPaymentUseCase, interval time.Duration, maxAttempts int) *StatusPoller {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	if maxAttempts <= 0 {
		maxAttempts = 180 // ~15 minutes at the default interval
	}
	return &StatusPoller{uc: uc, interval: interval, maxAttempts: maxAttempts}
}

// Watch polls the order until it resolves, attempts run out, or ctx is
// cancelled. Exactly one PollResult is delivered on resolution; cancellation
// closes the channel without delivering anything, and nothing fires after
// that.
func (p *StatusPoller) Watch(ctx context.Context, orderID string) <-chan PollResult {
	out := make(chan PollResult, 1)

	go func() {
		defer close(out)

		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		for attempt := 1; attempt <= p.maxAttempts; attempt++ {
			select {
			case <-ctx.Done():
				log.Printf("[payment][poller] watch cancelled order_id=%s attempt=%d", orderID, attempt)
				return
			case <-ticker.C:
			}

			check, err := p.uc.CheckStatus(ctx, orderID)
			if err != nil {
				// Transient gateway failures just consume an attempt.
				log.Printf("[payment][poller] tick failed order_id=%s attempt=%d err=%v", orderID, attempt, err)
				continue
			}

			switch check.Status {
			case entities.PaymentStatusPaid:
				out <- PollResult{Outcome: PollOutcomePaid, Status: check.Status}
				return
			case entities.PaymentStatusFailed, entities.PaymentStatusCancelled:
				out <- PollResult{Outcome: PollOutcomeFailed, Status: check.Status}
				return
			case entities.PaymentStatusExpired:
				out <- PollResult{Outcome: PollOutcomeExpired, Status: check.Status}
				return
			}
		}

		log.Printf("[payment][poller] attempts exhausted order_id=%s attempts=%d", orderID, p.maxAttempts)
		out <- PollResult{Outcome: PollOutcomeExpired, Status: entities.PaymentStatusExpired}
	}()

	return out
}
