package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"federation-payments/internal/core/domain"
	"federation-payments/internal/core/ports"

	"github.com/rs/zerolog"
)

const (
	defaultMaxConflictRetries = 5
	defaultDedupTTL           = 24 * time.Hour
)

// ReconcilerConfig tunes the reconciler.
type ReconcilerConfig struct {
	// MaxConflictRetries bounds how many times a lost conditional write is
	// re-evaluated before giving up with domain.ErrStateConflict.
	MaxConflictRetries int
	// DedupTTL is how long a settled notification is remembered.
	DedupTTL time.Duration
}

// ReconcilerImpl implements ports.Reconciler.
//
// Every state change goes through ConditionalSetState. When the write loses a
// race, the transition table is re-evaluated against the state the store
// reported, so concurrent webhook and poll paths converge without
// double-applying.
type ReconcilerImpl struct {
	cobros    ports.CobroRepository
	provider  ports.ProviderClient
	cache     ports.NotificationCache
	events    ports.EventPublisher
	observers []ports.StateObserver
	metrics   *Metrics
	cfg       ReconcilerConfig
	log       zerolog.Logger
}

// NewReconciler creates a new ReconcilerImpl. cache may be nil.
func NewReconciler(
	cobros ports.CobroRepository,
	provider ports.ProviderClient,
	cache ports.NotificationCache,
	events ports.EventPublisher,
	cfg ReconcilerConfig,
	metrics *Metrics,
	log zerolog.Logger,
) *ReconcilerImpl {
	if cfg.MaxConflictRetries <= 0 {
		cfg.MaxConflictRetries = defaultMaxConflictRetries
	}
	if cfg.DedupTTL <= 0 {
		cfg.DedupTTL = defaultDedupTTL
	}
	return &ReconcilerImpl{
		cobros:   cobros,
		provider: provider,
		cache:    cache,
		events:   events,
		metrics:  metrics,
		cfg:      cfg,
		log:      log,
	}
}

// AddObserver registers o for every committed change. Call it while wiring,
// before the reconciler handles traffic.
func (r *ReconcilerImpl) AddObserver(o ports.StateObserver) {
	r.observers = append(r.observers, o)
}

// HandleNotification resolves a provider callback and applies what the
// provider reports. Non-payment topics are acknowledged and ignored.
func (r *ReconcilerImpl) HandleNotification(ctx context.Context, n domain.Notification) (*ports.ReconcileResult, error) {
	if !n.IsPaymentKind() {
		r.log.Debug().Str("kind", n.Kind).Str("reference", n.Reference).Msg("ignoring non-payment notification")
		r.metrics.observeReconciliation(string(domain.SourceWebhook), string(ports.OutcomeIgnored))
		return &ports.ReconcileResult{Outcome: ports.OutcomeIgnored, Source: domain.SourceWebhook}, nil
	}

	key := n.DedupKey()

	// Fast path: a notification that already settled its cobro
	if r.cache != nil {
		seen, err := r.cache.Seen(ctx, key)
		if err != nil {
			r.log.Warn().Err(err).Str("key", key).Msg("notification cache check failed, reconciling anyway")
		}
		if seen {
			r.metrics.observeReconciliation(string(domain.SourceWebhook), string(ports.OutcomeDuplicate))
			return &ports.ReconcileResult{Outcome: ports.OutcomeDuplicate, Source: domain.SourceWebhook}, nil
		}
	}

	payment, err := r.provider.LookupPayment(ctx, n.Reference)
	if err != nil {
		if !errors.Is(err, domain.ErrProviderLookupFailed) {
			err = fmt.Errorf("%w: %v", domain.ErrProviderLookupFailed, err)
		}
		r.metrics.observeReconciliation(string(domain.SourceWebhook), "lookup_failed")
		return nil, fmt.Errorf("reference %s: %w", n.Reference, err)
	}

	result, err := r.ApplyObservation(ctx, payment.CobroID, payment.Status, payment.Reference, domain.SourceWebhook)
	if err != nil {
		return nil, err
	}

	// Only settled cobros are remembered: the provider reuses the payment id
	// for later status updates, which must still be looked up while the
	// cobro can move.
	if r.cache != nil && result.NewState.IsTerminal() {
		if err := r.cache.Remember(ctx, key, r.cfg.DedupTTL); err != nil {
			r.log.Warn().Err(err).Str("key", key).Msg("failed to remember notification")
		}
	}

	return result, nil
}

// ApplyObservation feeds one observed provider status for a cobro through
// the transition table.
func (r *ReconcilerImpl) ApplyObservation(
	ctx context.Context,
	cobroID int64,
	status domain.ProviderStatus,
	providerRef string,
	source domain.ChangeSource,
) (*ports.ReconcileResult, error) {
	cobro, err := r.cobros.GetByID(ctx, cobroID)
	if err != nil {
		return nil, fmt.Errorf("load cobro %d: %w", cobroID, err)
	}

	if providerRef != "" && !cobro.IsTerminal() && (cobro.ProviderRef == nil || *cobro.ProviderRef != providerRef) {
		if err := r.cobros.SetProviderRef(ctx, cobroID, providerRef); err != nil {
			r.log.Warn().Err(err).Int64("cobro_id", cobroID).Msg("failed to record provider reference")
		}
	}

	current := cobro.State
	for attempt := 0; attempt < r.cfg.MaxConflictRetries; attempt++ {
		next, moves := domain.NextState(current, status)
		if !moves {
			r.metrics.observeReconciliation(string(source), string(ports.OutcomeNoop))
			return &ports.ReconcileResult{
				CobroID:  cobroID,
				OldState: current,
				NewState: current,
				Outcome:  ports.OutcomeNoop,
				Source:   source,
			}, nil
		}

		observed, applied, err := r.cobros.ConditionalSetState(ctx, cobroID, current, next)
		if err != nil {
			return nil, fmt.Errorf("set state of cobro %d: %w", cobroID, err)
		}
		if applied {
			r.commit(cobroID, current, next, source)
			return &ports.ReconcileResult{
				CobroID:  cobroID,
				OldState: current,
				NewState: next,
				Outcome:  ports.OutcomeTransitioned,
				Source:   source,
			}, nil
		}

		r.log.Debug().
			Int64("cobro_id", cobroID).
			Str("expected", string(current)).
			Str("observed", string(observed)).
			Int("attempt", attempt+1).
			Msg("conditional write lost, re-evaluating")
		current = observed
	}

	r.metrics.observeReconciliation(string(source), "conflict")
	return nil, fmt.Errorf("cobro %d after %d attempts: %w", cobroID, r.cfg.MaxConflictRetries, domain.ErrStateConflict)
}

// ForceState is the administrative override: it writes next if the cobro is
// still in expected, bypassing the transition table.
func (r *ReconcilerImpl) ForceState(ctx context.Context, cobroID int64, expected, next domain.CobroState) (*ports.ReconcileResult, error) {
	if !expected.IsValid() || !next.IsValid() {
		return nil, domain.ErrInvalidState
	}

	observed, applied, err := r.cobros.ConditionalSetState(ctx, cobroID, expected, next)
	if err != nil {
		return nil, fmt.Errorf("force state of cobro %d: %w", cobroID, err)
	}
	if !applied {
		return nil, fmt.Errorf("cobro %d is %s, expected %s: %w", cobroID, observed, expected, domain.ErrStateConflict)
	}

	if expected == next {
		return &ports.ReconcileResult{
			CobroID:  cobroID,
			OldState: next,
			NewState: next,
			Outcome:  ports.OutcomeNoop,
			Source:   domain.SourceAdmin,
		}, nil
	}

	r.commit(cobroID, expected, next, domain.SourceAdmin)
	return &ports.ReconcileResult{
		CobroID:  cobroID,
		OldState: expected,
		NewState: next,
		Outcome:  ports.OutcomeTransitioned,
		Source:   domain.SourceAdmin,
	}, nil
}

// commit publishes exactly one event for a write that was applied.
func (r *ReconcilerImpl) commit(cobroID int64, old, next domain.CobroState, source domain.ChangeSource) {
	r.metrics.observeReconciliation(string(source), string(ports.OutcomeTransitioned))
	r.log.Info().
		Int64("cobro_id", cobroID).
		Str("old_state", string(old)).
		Str("new_state", string(next)).
		Str("source", string(source)).
		Msg("cobro state changed")

	for _, o := range r.observers {
		o.StateCommitted(cobroID, next)
	}
	if r.events != nil {
		r.events.Publish(newStateChange(cobroID, old, next, source, time.Now().UTC()))
	}
}
