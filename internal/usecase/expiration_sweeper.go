package usecase

import (
	"context"
	"log"
	"time"

	"github.com/FirstdeveloperMatoGrosso/isapass-payments/internal/usecase/interfaces"
)

// ExpirationSweeper periodically flips overdue pending intents to expired,
// independent of any client poll. The sweep itself lives in the registry; the
// sweeper only schedules it and archives what was flipped.

type ExpirationSweeper struct {
	registry interfaces.IPaymentRegistry
	archive  interfaces.IPaymentArchive
	interval time.Duration
}

func NewExpirationSweeper(registry interfaces.IPaymentRegistry, archive interfaces.IPaymentArchive, interval time.Duration) *ExpirationSweeper {
	if interval <= 0 {
		interval = time.Minute
	}
	return &ExpirationSweeper{registry: registry, archive: archive, interval: interval}
}

// Run blocks until ctx is cancelled. Call it on its own goroutine.
func (s *ExpirationSweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Printf("[payment][sweeper] stopped")
			return
		case <-ticker.C:
			s.sweepOnce(ctx)
		}
	}
}

func (s *ExpirationSweeper) sweepOnce(ctx context.Context) {
	swept, err := s.registry.SweepExpired(ctx, time.Now().UTC())
	if err != nil {
		log.Printf("[payment][sweeper] sweep failed err=%v", err)
		return
	}
	if len(swept) == 0 {
		return
	}

	log.Printf("[payment][sweeper] expired count=%d", len(swept))
	if s.archive == nil {
		return
	}
	for _, intent := range swept {
		if err := s.archive.Archive(ctx, intent); err != nil {
			log.Printf("[payment][sweeper] archive failed intent_id=%s err=%v", intent.ID, err)
		}
	}
}
