package domain

import "time"

// MonitoringEntry is the in-memory record of one watched cobro.
type MonitoringEntry struct {
	CobroID       int64      `json:"cobro_id"`
	LastState     CobroState `json:"last_state"`
	LastCheckedAt time.Time  `json:"last_checked_at"`
	StartedAt     time.Time  `json:"started_at"`
	ExpiresAt     time.Time  `json:"expires_at"`
}
