package entities

import "time"

// PixConfig is the process-wide PIX receiving configuration. It is assembled
// once at startup and read on every intent creation; intent creation is
// refused while Enabled is false or Key is empty.

type PixConfig struct {
	Enabled           bool   `json:"enabled"`
	Key               string `json:"key"`
	BeneficiaryName   string `json:"beneficiary_name"`
	BeneficiaryCity   string `json:"beneficiary_city"`
	PartnerID         string `json:"partner_id"`
	ExpirationMinutes int    `json:"expiration_minutes"`
}

// ExpirationWindow returns the configured intent lifetime, defaulting to 30
// minutes when unset or non-positive.
func (c PixConfig) ExpirationWindow() time.Duration {
	if c.ExpirationMinutes <= 0 {
		return 30 * time.Minute
	}
	return time.Duration(c.ExpirationMinutes) * time.Minute
}

// Usable reports whether intents may be created under this configuration.
func (c PixConfig) Usable() bool {
	return c.Enabled && c.Key != ""
}
