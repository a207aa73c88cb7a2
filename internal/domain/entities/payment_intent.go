package entities

import "time"

// PaymentStatus is the internal lifecycle state of a PIX payment intent.
//
// `pending` is the only non-terminal state. Provider-specific status strings
// never leave the gateway adapter; everything downstream operates on this enum.

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusPaid      PaymentStatus = "paid"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusCancelled PaymentStatus = "cancelled"
	PaymentStatusExpired   PaymentStatus = "expired"
)

// Terminal reports whether no further transition is allowed from s.
func (s PaymentStatus) Terminal() bool {
	switch s {
	case PaymentStatusPaid, PaymentStatusFailed, PaymentStatusCancelled, PaymentStatusExpired:
		return true
	}
	return false
}

// Customer is the buyer identity snapshot taken at intent creation.
type Customer struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Document string `json:"document"`
	Phone    string `json:"phone"`
}

// EventInfo is opaque business context attached to a payment. It is passed to
// the provider as metadata and echoed back unchanged on status updates.
type EventInfo struct {
	PartnerID   string `json:"partner_id"`
	Name        string `json:"name"`
	Date        string `json:"date"`
	Location    string `json:"location"`
	TicketType  string `json:"ticket_type"`
	Section     string `json:"section,omitempty"`
	Row         string `json:"row,omitempty"`
	Seat        string `json:"seat,omitempty"`
	IsHalfPrice bool   `json:"is_half_price"`
}

// PaymentIntent is a requested-but-not-yet-settled PIX payment.
//
// Invariants owned by the registry:
//   - ProviderTxID is assigned once at creation and never reused.
//   - Status transitions are monotonic; terminal states are final.
//   - TicketID is non-empty iff Status == paid.
//   - ExpiresAt > CreatedAt.

type PaymentIntent struct {
	ID           string        `json:"id"`
	PartnerID    string        `json:"partner_id"`
	TicketID     string        `json:"ticket_id,omitempty"`
	Value        int64         `json:"value"` // minor units (centavos)
	Status       PaymentStatus `json:"status"`
	PixKey       string        `json:"pix_key"`
	ProviderTxID string        `json:"provider_tx_id"`

	QRCode    string `json:"qr_code,omitempty"`
	QRCodeURL string `json:"qr_code_url,omitempty"`

	// Review marks intents whose fraud score fell in the manual-review band.
	Review bool `json:"review,omitempty"`

	CreatedAt   time.Time  `json:"created_at"`
	PaidAt      *time.Time `json:"paid_at,omitempty"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
	ExpiresAt   time.Time  `json:"expires_at"`

	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	CustomerPhone string `json:"customer_phone"`
}

// EffectiveStatus returns the status a reader must act on at `now`: a pending
// intent past its expiry is logically expired even before the sweeper runs.
func (p PaymentIntent) EffectiveStatus(now time.Time) PaymentStatus {
	if p.Status == PaymentStatusPending && now.After(p.ExpiresAt) {
		return PaymentStatusExpired
	}
	return p.Status
}
