package registry

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/FirstdeveloperMatoGrosso/isapass-payments/internal/domain/entities"
)

var testNow = time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

func newIntent(id, txID string) entities.PaymentIntent {
	return entities.PaymentIntent{
		ID:           id,
		PartnerID:    "partner-1",
		Value:        15000,
		Status:       entities.PaymentStatusPending,
		ProviderTxID: txID,
		CreatedAt:    testNow,
		ExpiresAt:    testNow.Add(30 * time.Minute),
	}
}

func mustCreate(t *testing.T, r *PaymentIntentRegistry, intent entities.PaymentIntent) entities.PaymentIntent {
	t.Helper()
	created, err := r.Create(context.Background(), intent)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	return created
}

func TestPaymentIntentRegistry_Create(t *testing.T) {
	t.Run("stores and indexes by both ids", func(t *testing.T) {
		r := NewPaymentIntentRegistry()
		mustCreate(t, r, newIntent("pix_1", "tx_1"))

		byID, _ := r.GetByID(context.Background(), "pix_1")
		if byID.ID != "pix_1" {
			t.Fatalf("lookup by id failed, got %+v", byID)
		}
		byTx, _ := r.GetByProviderTxID(context.Background(), "tx_1")
		if byTx.ID != "pix_1" {
			t.Fatalf("lookup by provider tx id failed, got %+v", byTx)
		}
	})

	t.Run("forces pending status and empty ticket", func(t *testing.T) {
		r := NewPaymentIntentRegistry()
		in := newIntent("pix_1", "tx_1")
		in.Status = entities.PaymentStatusPaid
		in.TicketID = "tkt_forged"

		created := mustCreate(t, r, in)
		if created.Status != entities.PaymentStatusPending {
			t.Fatalf("expected pending, got %s", created.Status)
		}
		if created.TicketID != "" {
			t.Fatalf("expected empty ticket id, got %s", created.TicketID)
		}
	})

	t.Run("rejects duplicate internal id", func(t *testing.T) {
		r := NewPaymentIntentRegistry()
		mustCreate(t, r, newIntent("pix_1", "tx_1"))
		if _, err := r.Create(context.Background(), newIntent("pix_1", "tx_2")); !errors.Is(err, ErrDuplicateIntentID) {
			t.Fatalf("expected ErrDuplicateIntentID, got %v", err)
		}
	})

	t.Run("rejects duplicate provider tx id", func(t *testing.T) {
		r := NewPaymentIntentRegistry()
		mustCreate(t, r, newIntent("pix_1", "tx_1"))
		if _, err := r.Create(context.Background(), newIntent("pix_2", "tx_1")); !errors.Is(err, ErrDuplicateProviderTxID) {
			t.Fatalf("expected ErrDuplicateProviderTxID, got %v", err)
		}
	})

	t.Run("rejects missing ids and non-future expiry", func(t *testing.T) {
		r := NewPaymentIntentRegistry()

		in := newIntent("", "tx_1")
		if _, err := r.Create(context.Background(), in); !errors.Is(err, ErrInvalidIntent) {
			t.Fatalf("expected ErrInvalidIntent for empty id, got %v", err)
		}

		in = newIntent("pix_1", "tx_1")
		in.ExpiresAt = in.CreatedAt
		if _, err := r.Create(context.Background(), in); !errors.Is(err, ErrInvalidIntent) {
			t.Fatalf("expected ErrInvalidIntent for non-future expiry, got %v", err)
		}
	})
}

func TestPaymentIntentRegistry_Lookups(t *testing.T) {
	r := NewPaymentIntentRegistry()

	got, err := r.GetByID(context.Background(), "missing")
	if err != nil || got.ID != "" {
		t.Fatalf("expected zero-value miss, got %+v err=%v", got, err)
	}
	got, err = r.GetByProviderTxID(context.Background(), "missing")
	if err != nil || got.ID != "" {
		t.Fatalf("expected zero-value miss, got %+v err=%v", got, err)
	}
}

func TestPaymentIntentRegistry_MarkPaid(t *testing.T) {
	t.Run("mints the ticket exactly once", func(t *testing.T) {
		r := NewPaymentIntentRegistry()
		mustCreate(t, r, newIntent("pix_1", "tx_1"))

		paidAt := testNow.Add(5 * time.Minute)
		first, applied, err := r.MarkPaid(context.Background(), "tx_1", paidAt)
		if err != nil || !applied {
			t.Fatalf("expected applied transition, got applied=%v err=%v", applied, err)
		}
		if first.Status != entities.PaymentStatusPaid {
			t.Fatalf("expected paid, got %s", first.Status)
		}
		if first.TicketID == "" {
			t.Fatalf("expected ticket id after payment")
		}
		if first.PaidAt == nil || !first.PaidAt.Equal(paidAt) {
			t.Fatalf("expected paid_at %s, got %v", paidAt, first.PaidAt)
		}

		second, applied, err := r.MarkPaid(context.Background(), "tx_1", paidAt.Add(time.Minute))
		if err != nil || applied {
			t.Fatalf("expected no-op replay, got applied=%v err=%v", applied, err)
		}
		if second.TicketID != first.TicketID {
			t.Fatalf("replay changed ticket id: %s vs %s", second.TicketID, first.TicketID)
		}
		if !second.PaidAt.Equal(*first.PaidAt) {
			t.Fatalf("replay changed paid_at")
		}
	})

	t.Run("unknown tx id applies nothing", func(t *testing.T) {
		r := NewPaymentIntentRegistry()
		got, applied, err := r.MarkPaid(context.Background(), "missing", testNow)
		if err != nil || applied || got.ID != "" {
			t.Fatalf("expected zero-value no-op, got %+v applied=%v err=%v", got, applied, err)
		}
	})
}

func TestPaymentIntentRegistry_TerminalStatesAreFinal(t *testing.T) {
	r := NewPaymentIntentRegistry()
	mustCreate(t, r, newIntent("pix_1", "tx_1"))

	if _, applied, _ := r.MarkFailed(context.Background(), "tx_1"); !applied {
		t.Fatalf("expected failed transition to apply")
	}

	if _, applied, _ := r.MarkPaid(context.Background(), "tx_1", testNow); applied {
		t.Fatalf("paid must not apply over failed")
	}
	if _, applied, _ := r.MarkExpired(context.Background(), "tx_1"); applied {
		t.Fatalf("expired must not apply over failed")
	}
	if _, applied, _ := r.MarkCancelled(context.Background(), "pix_1"); applied {
		t.Fatalf("cancelled must not apply over failed")
	}

	got, _ := r.GetByProviderTxID(context.Background(), "tx_1")
	if got.Status != entities.PaymentStatusFailed {
		t.Fatalf("terminal status changed to %s", got.Status)
	}
	if got.TicketID != "" {
		t.Fatalf("ticket must never exist on a failed intent")
	}
}

func TestPaymentIntentRegistry_MarkCancelled(t *testing.T) {
	r := NewPaymentIntentRegistry()
	mustCreate(t, r, newIntent("pix_1", "tx_1"))

	got, applied, err := r.MarkCancelled(context.Background(), "pix_1")
	if err != nil || !applied {
		t.Fatalf("expected applied cancel, got applied=%v err=%v", applied, err)
	}
	if got.Status != entities.PaymentStatusCancelled || got.CancelledAt == nil {
		t.Fatalf("unexpected cancelled record %+v", got)
	}
}

func TestPaymentIntentRegistry_ConcurrentSettlementAppliesOnce(t *testing.T) {
	r := NewPaymentIntentRegistry()
	mustCreate(t, r, newIntent("pix_1", "tx_1"))

	const writers = 32
	var wg sync.WaitGroup
	var mu sync.Mutex
	appliedCount := 0
	wg.Add(writers)
	for i := 0; i < writers; i++ {
		go func(i int) {
			defer wg.Done()
			var applied bool
			if i%2 == 0 {
				_, applied, _ = r.MarkPaid(context.Background(), "tx_1", testNow)
			} else {
				_, applied, _ = r.MarkExpired(context.Background(), "tx_1")
			}
			if applied {
				mu.Lock()
				appliedCount++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()

	if appliedCount != 1 {
		t.Fatalf("expected exactly one applied transition, got %d", appliedCount)
	}

	got, _ := r.GetByProviderTxID(context.Background(), "tx_1")
	if !got.Status.Terminal() {
		t.Fatalf("expected a terminal status, got %s", got.Status)
	}
	if got.Status == entities.PaymentStatusPaid && got.TicketID == "" {
		t.Fatalf("paid intent must carry a ticket")
	}
	if got.Status != entities.PaymentStatusPaid && got.TicketID != "" {
		t.Fatalf("non-paid intent must not carry a ticket")
	}
}

func TestPaymentIntentRegistry_SweepExpired(t *testing.T) {
	r := NewPaymentIntentRegistry()

	overdue := newIntent("pix_1", "tx_1")
	overdue.ExpiresAt = testNow.Add(time.Minute)
	mustCreate(t, r, overdue)

	fresh := newIntent("pix_2", "tx_2")
	fresh.ExpiresAt = testNow.Add(time.Hour)
	mustCreate(t, r, fresh)

	paid := newIntent("pix_3", "tx_3")
	paid.ExpiresAt = testNow.Add(time.Minute)
	mustCreate(t, r, paid)
	if _, applied, _ := r.MarkPaid(context.Background(), "tx_3", testNow); !applied {
		t.Fatalf("setup: paid transition did not apply")
	}

	swept, err := r.SweepExpired(context.Background(), testNow.Add(10*time.Minute))
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}
	if len(swept) != 1 || swept[0].ID != "pix_1" {
		t.Fatalf("expected only pix_1 swept, got %+v", swept)
	}

	// Idempotent: a second pass finds nothing.
	swept, _ = r.SweepExpired(context.Background(), testNow.Add(10*time.Minute))
	if len(swept) != 0 {
		t.Fatalf("expected empty second sweep, got %+v", swept)
	}

	gotPaid, _ := r.GetByID(context.Background(), "pix_3")
	if gotPaid.Status != entities.PaymentStatusPaid {
		t.Fatalf("sweep touched a paid intent: %s", gotPaid.Status)
	}
	gotFresh, _ := r.GetByID(context.Background(), "pix_2")
	if gotFresh.Status != entities.PaymentStatusPending {
		t.Fatalf("sweep touched a fresh intent: %s", gotFresh.Status)
	}
}

func TestPaymentIntentRegistry_ListByPartnerID(t *testing.T) {
	r := NewPaymentIntentRegistry()

	for i := 0; i < 3; i++ {
		in := newIntent(fmt.Sprintf("pix_%d", i), fmt.Sprintf("tx_%d", i))
		in.CreatedAt = testNow.Add(time.Duration(i) * time.Minute)
		in.ExpiresAt = in.CreatedAt.Add(30 * time.Minute)
		mustCreate(t, r, in)
	}
	other := newIntent("pix_other", "tx_other")
	other.PartnerID = "partner-2"
	mustCreate(t, r, other)

	got, err := r.ListByPartnerID(context.Background(), "partner-1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 intents, got %d", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].CreatedAt.After(got[i-1].CreatedAt) {
			t.Fatalf("expected newest-first ordering, got %v", got)
		}
	}
}
