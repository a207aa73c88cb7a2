package response

import "time"

type StatusResponse struct {
	Status    string    `json:"status"`
	CheckedAt time.Time `json:"checked_at"`
}

// WebhookAckResponse is always delivered with HTTP 200 so the provider never
// enters a retry storm over payloads we chose not to act on.
type WebhookAckResponse struct {
	Status string `json:"status"`
}
