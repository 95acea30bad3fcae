package domain

import (
	"time"

	"github.com/google/uuid"
)

// PublicLink exposes a cobro to unauthenticated payers under a slug.
type PublicLink struct {
	ID          uuid.UUID  `json:"id"`
	CobroID     int64      `json:"cobro_id"`
	Slug        string     `json:"slug"`
	Active      bool       `json:"active"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
	AccessCount int64      `json:"access_count"`
	CreatedAt   time.Time  `json:"created_at"`
}

// IsUsable returns true if a payer may reach the cobro through this link at now.
// Inactive and expired links are indistinguishable from absent ones.
func (l *PublicLink) IsUsable(now time.Time) bool {
	if !l.Active {
		return false
	}
	if l.ExpiresAt != nil && !now.Before(*l.ExpiresAt) {
		return false
	}
	return true
}
