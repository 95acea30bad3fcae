package domain

import "time"

// ChangeSource identifies which path produced a state change.
type ChangeSource string

const (
	SourceWebhook ChangeSource = "webhook"
	SourcePoll    ChangeSource = "poll"
	SourceAdmin   ChangeSource = "admin"
	SourceSweep   ChangeSource = "sweep"
)

// StateChange is a confirmed cobro transition broadcast on the event feed.
// Subscribers must be idempotent on (CobroID, NewState): delivery is at-least-once.
type StateChange struct {
	ID         string       `json:"id"`
	CobroID    int64        `json:"cobro_id"`
	OldState   CobroState   `json:"old_state"`
	NewState   CobroState   `json:"new_state"`
	Source     ChangeSource `json:"source"`
	OccurredAt time.Time    `json:"occurred_at"`
}
