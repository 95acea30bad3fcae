package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"federation-payments/internal/core/domain"
)

// CreateCobroRequest is the request body for cobro creation.
type CreateCobroRequest struct {
	ClubID  int64     `json:"club_id" binding:"required,gt=0"`
	Amount  int64     `json:"amount" binding:"required,gt=0"` // In centavos
	Concept string    `json:"concept" binding:"required,min=1,max=200"`
	DueDate time.Time `json:"due_date" binding:"required"`
}

// ForceStateRequest is the body of an administrative state override.
type ForceStateRequest struct {
	Expected string `json:"expected" binding:"required,cobro_state"`
	Next     string `json:"next" binding:"required,cobro_state"`
}

// GenerateLinkRequest is the request body for public link generation.
// An empty concept falls back to the cobro's own concept.
type GenerateLinkRequest struct {
	Concept   string     `json:"concept" binding:"max=200"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// ToggleLinkRequest enables or disables a public link.
type ToggleLinkRequest struct {
	Active *bool `json:"active" binding:"required"`
}

// WebhookBody is the JSON body MercadoPago sends with data.id + type
// notifications. data.id arrives as a string or a number depending on the
// topic, so it is decoded through FlexibleID.
type WebhookBody struct {
	ID     FlexibleID `json:"id"`
	Type   string     `json:"type"`
	Action string     `json:"action"`
	Data   struct {
		ID FlexibleID `json:"id"`
	} `json:"data"`
}

// FlexibleID accepts a JSON string or number.
type FlexibleID string

func (f *FlexibleID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = FlexibleID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id must be a string or number: %w", err)
	}
	if _, err := strconv.ParseInt(n.String(), 10, 64); err != nil {
		return fmt.Errorf("id must be an integer: %w", err)
	}
	*f = FlexibleID(n.String())
	return nil
}

// CobroResponse is the admin view of a cobro.
type CobroResponse struct {
	*domain.Cobro
	Monitored bool `json:"monitored"`
}

// PublicCobroResponse is what payers see behind a public link.
type PublicCobroResponse struct {
	Slug        string            `json:"slug"`
	Concept     string            `json:"concept"`
	Amount      int64             `json:"amount"`
	DueDate     time.Time         `json:"due_date"`
	State       domain.CobroState `json:"state"`
	CanCheckout bool              `json:"can_checkout"`
	CheckoutURL string            `json:"checkout_url,omitempty"`
}

// CheckoutResponse carries the provider redirect URL.
type CheckoutResponse struct {
	PreferenceID string `json:"preference_id"`
	RedirectURL  string `json:"redirect_url"`
}

// MonitoringStatusResponse reports whether one cobro is being watched.
type MonitoringStatusResponse struct {
	CobroID    int64                   `json:"cobro_id"`
	Monitoring bool                    `json:"monitoring"`
	Entry      *domain.MonitoringEntry `json:"entry,omitempty"`
}

// SweepResponse reports the result of an overdue sweep.
type SweepResponse struct {
	Moved int `json:"moved"`
}
