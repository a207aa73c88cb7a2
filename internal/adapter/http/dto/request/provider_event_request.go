package request

import (
	"strings"
	"time"

	"github.com/FirstdeveloperMatoGrosso/isapass-payments/internal/usecase"
)

// ProviderEventRequest mirrors the shapes Mercado Pago posts to webhooks.
//
// Thin notifications carry only `type` + `data.id`; richer ones include the
// status. Both the nested and the flat transaction id spellings are accepted
// because the provider has used both over time.

type ProviderEventRequest struct {
	ID     string `json:"id"`
	Type   string `json:"type"`
	Action string `json:"action"`

	Data struct {
		ID           string     `json:"id"`
		Status       string     `json:"status"`
		StatusDetail string     `json:"status_detail"`
		DateApproved *time.Time `json:"date_approved"`
	} `json:"data"`

	TransactionID string `json:"transaction_id"`
	Status        string `json:"status"`
}

// ToProviderEvent reduces the payload to the fields the lifecycle consumes.
func (r ProviderEventRequest) ToProviderEvent() usecase.ProviderEvent {
	txID := strings.TrimSpace(r.Data.ID)
	if txID == "" {
		txID = strings.TrimSpace(r.TransactionID)
	}

	status := strings.TrimSpace(r.Data.Status)
	if status == "" {
		status = strings.TrimSpace(r.Status)
	}

	return usecase.ProviderEvent{
		Type:         r.Type,
		ProviderTxID: txID,
		RawStatus:    status,
		StatusDetail: r.Data.StatusDetail,
		PaidAt:       r.Data.DateApproved,
	}
}
