package response

import (
	"time"

	"github.com/FirstdeveloperMatoGrosso/isapass-payments/internal/domain/entities"
)

type PixResponse struct {
	QRCode    string    `json:"qr_code"`
	QRCodeURL string    `json:"qr_code_url,omitempty"`
	ExpiresAt time.Time `json:"expires_at"`
}

type PaymentResponse struct {
	OrderID   string      `json:"order_id"`
	PartnerID string      `json:"partner_id"`
	Amount    int64       `json:"amount"` // minor units, as confirmed by the provider
	Status    string      `json:"status"`
	TicketID  string      `json:"ticket_id,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
	Pix       PixResponse `json:"pix"`
}

func FromPaymentIntent(p entities.PaymentIntent) PaymentResponse {
	return PaymentResponse{
		OrderID:   p.ProviderTxID,
		PartnerID: p.PartnerID,
		Amount:    p.Value,
		Status:    string(p.Status),
		TicketID:  p.TicketID,
		CreatedAt: p.CreatedAt,
		Pix: PixResponse{
			QRCode:    p.QRCode,
			QRCodeURL: p.QRCodeURL,
			ExpiresAt: p.ExpiresAt,
		},
	}
}

func FromPaymentIntents(intents []entities.PaymentIntent) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(intents))
	for _, p := range intents {
		out = append(out, FromPaymentIntent(p))
	}
	return out
}
