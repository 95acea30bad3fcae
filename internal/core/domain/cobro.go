package domain

import (
	"time"
)

// CobroState represents the lifecycle state of a payment record.
type CobroState string

const (
	CobroStatePendiente CobroState = "Pendiente"
	CobroStatePagado    CobroState = "Pagado"
	CobroStateVencido   CobroState = "Vencido"
	CobroStateAnulado   CobroState = "Anulado"
)

// AllCobroStates lists every valid state.
var AllCobroStates = []CobroState{
	CobroStatePendiente,
	CobroStatePagado,
	CobroStateVencido,
	CobroStateAnulado,
}

// WatchableStates are the states that can still move through provider observations.
var WatchableStates = []CobroState{CobroStatePendiente, CobroStateVencido}

// IsValid reports whether s is one of the known states.
func (s CobroState) IsValid() bool {
	switch s {
	case CobroStatePendiente, CobroStatePagado, CobroStateVencido, CobroStateAnulado:
		return true
	}
	return false
}

// IsTerminal returns true for states no provider observation may leave.
func (s CobroState) IsTerminal() bool {
	return s == CobroStatePagado || s == CobroStateAnulado
}

// Cobro is a payment record owed by a club to the federation.
type Cobro struct {
	ID           int64      `json:"id"`
	ClubID       int64      `json:"club_id"`
	Amount       int64      `json:"amount"` // In centavos
	Concept      string     `json:"concept"`
	DueDate      time.Time  `json:"due_date"`
	State        CobroState `json:"state"`
	ProviderRef  *string    `json:"provider_ref,omitempty"`
	PreferenceID *string    `json:"preference_id,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// IsTerminal returns true if the cobro is closed.
func (c *Cobro) IsTerminal() bool {
	return c.State.IsTerminal()
}

// IsOverdue reports whether a pending cobro is past its due date at now.
func (c *Cobro) IsOverdue(now time.Time) bool {
	return c.State == CobroStatePendiente && !c.DueDate.IsZero() && now.After(c.DueDate)
}
