package ports

import (
	"context"
	"time"

	"federation-payments/internal/core/domain"

	"github.com/google/uuid"
)

// --- Driven Ports (infrastructure the core talks to) ---

// ProviderClient is the narrow contract with the payment provider.
type ProviderClient interface {
	// LookupPayment resolves a provider payment reference to the cobro it
	// pays and its current status. Failures wrap domain.ErrProviderLookupFailed.
	LookupPayment(ctx context.Context, reference string) (*domain.ProviderPayment, error)
	// SearchByExternalReference finds the newest payment created for the
	// cobro's checkout. It returns nil and no error when the payer has not
	// paid yet.
	SearchByExternalReference(ctx context.Context, cobroID int64) (*domain.ProviderPayment, error)
	// CreatePaymentIntent creates a checkout for the cobro and returns
	// where to redirect the payer.
	CreatePaymentIntent(ctx context.Context, cobro *domain.Cobro) (*domain.PaymentIntent, error)
}

// NotificationCache remembers notifications that were already reconciled.
// It is a fast path only; conditional writes stay authoritative.
type NotificationCache interface {
	Seen(ctx context.Context, key string) (bool, error)
	Remember(ctx context.Context, key string, ttl time.Duration) error
}

// EventPublisher broadcasts confirmed state transitions.
type EventPublisher interface {
	Publish(event domain.StateChange)
}

// Subscription is one observer's view of the event feed. The channel is
// closed when the subscriber lags or calls Close.
type Subscription interface {
	Events() <-chan domain.StateChange
	Close()
}

// EventFeed is the publish/subscribe hub for state transitions.
type EventFeed interface {
	EventPublisher
	Subscribe(buffer int) Subscription
}

// WebhookVerifier checks the provider's x-signature header.
type WebhookVerifier interface {
	// Enabled is false when no webhook secret is configured.
	Enabled() bool
	Verify(dataID, requestID, signatureHeader string) error
}

// TokenService handles admin JWT operations. Tokens are issued by the
// federation's identity service; Generate exists for tooling and tests.
type TokenService interface {
	Generate(subject, role string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	Subject string
	Role    string
}

// --- Service Ports (Business Logic) ---

// ReconcileOutcome describes what a reconciliation did.
type ReconcileOutcome string

const (
	OutcomeTransitioned ReconcileOutcome = "transitioned"
	OutcomeNoop         ReconcileOutcome = "noop"
	OutcomeIgnored      ReconcileOutcome = "ignored"
	OutcomeDuplicate    ReconcileOutcome = "duplicate"
)

// ReconcileResult reports the effect of one notification or observation.
type ReconcileResult struct {
	CobroID  int64               `json:"cobro_id,omitempty"`
	OldState domain.CobroState   `json:"old_state,omitempty"`
	NewState domain.CobroState   `json:"new_state,omitempty"`
	Outcome  ReconcileOutcome    `json:"outcome"`
	Source   domain.ChangeSource `json:"source,omitempty"`
}

// Changed reports whether the cobro state was written.
func (r *ReconcileResult) Changed() bool {
	return r != nil && r.Outcome == OutcomeTransitioned
}

// Reconciler is the sole authority for mutating cobro state.
type Reconciler interface {
	HandleNotification(ctx context.Context, n domain.Notification) (*ReconcileResult, error)
	ApplyObservation(ctx context.Context, cobroID int64, status domain.ProviderStatus, providerRef string, source domain.ChangeSource) (*ReconcileResult, error)
	ForceState(ctx context.Context, cobroID int64, expected, next domain.CobroState) (*ReconcileResult, error)
}

// StateObserver is told about every state change the reconciler commits,
// before the change is published.
type StateObserver interface {
	StateCommitted(cobroID int64, state domain.CobroState)
}

// StateMonitor watches cobros by polling until they settle or time out.
type StateMonitor interface {
	StartMonitoring(cobroID int64, current domain.CobroState) bool
	StopMonitoring(cobroID int64)
	IsMonitoring(cobroID int64) bool
	Entries() []domain.MonitoringEntry
}

// CreateCobroRequest holds validated input for cobro creation.
type CreateCobroRequest struct {
	ClubID  int64
	Amount  int64
	Concept string
	DueDate time.Time
}

// CobroService defines cobro administration.
type CobroService interface {
	Create(ctx context.Context, req CreateCobroRequest) (*domain.Cobro, error)
	Get(ctx context.Context, id int64) (*domain.Cobro, error)
	List(ctx context.Context, states []domain.CobroState) ([]domain.Cobro, error)
	CreatePaymentIntent(ctx context.Context, id int64) (*domain.PaymentIntent, error)
	MarkOverdue(ctx context.Context, now time.Time) (int, error)
}

// LinkService manages public payment links.
type LinkService interface {
	GenerateLink(ctx context.Context, cobroID int64, concept string, expiresAt *time.Time) (*domain.PublicLink, error)
	GetBySlug(ctx context.Context, slug string) (*domain.PublicLink, *domain.Cobro, error)
	ListByCobro(ctx context.Context, cobroID int64) ([]domain.PublicLink, error)
	Toggle(ctx context.Context, id uuid.UUID, active bool) (*domain.PublicLink, error)
	Delete(ctx context.Context, id uuid.UUID) error
	RegisterAccess(ctx context.Context, slug string)
}

// AuditService records administrative actions.
type AuditService interface {
	Log(ctx context.Context, entry *domain.AuditLog)
}
