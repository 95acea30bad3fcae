package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction represents the type of audited administrative action.
type AuditAction string

const (
	AuditActionCobroCreate  AuditAction = "COBRO_CREATE"
	AuditActionForceState   AuditAction = "FORCE_STATE"
	AuditActionCheckout     AuditAction = "CHECKOUT"
	AuditActionMonitorStart AuditAction = "MONITOR_START"
	AuditActionMonitorStop  AuditAction = "MONITOR_STOP"
	AuditActionLinkGenerate AuditAction = "LINK_GENERATE"
	AuditActionLinkToggle   AuditAction = "LINK_TOGGLE"
	AuditActionLinkDelete   AuditAction = "LINK_DELETE"
)

// AuditLog records a single audited action in the system.
type AuditLog struct {
	ID           uuid.UUID   `json:"id"`
	ActorID      *string     `json:"actor_id,omitempty"`
	Action       AuditAction `json:"action"`
	ResourceType string      `json:"resource_type"`
	ResourceID   string      `json:"resource_id,omitempty"`
	Details      string      `json:"details,omitempty"` // JSON string
	IPAddress    string      `json:"ip_address"`
	CreatedAt    time.Time   `json:"created_at"`
}
