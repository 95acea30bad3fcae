package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"federation-payments/internal/core/domain"
	"federation-payments/internal/core/ports"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

// Check sources for the polling monitor.
const (
	CheckSourceStore    = "store"
	CheckSourceProvider = "provider"
)

const (
	defaultMonitorInterval    = 5 * time.Second
	defaultMonitorMaxDuration = 10 * time.Minute
	defaultCheckTimeout       = 10 * time.Second
)

// MonitorConfig tunes the polling monitor.
type MonitorConfig struct {
	Interval     time.Duration
	MaxDuration  time.Duration
	CheckTimeout time.Duration
	// CheckSource is "store" (re-read the cobro) or "provider" (ask the
	// provider and reconcile before re-reading).
	CheckSource string
}

type monitorEntry struct {
	domain.MonitoringEntry
	generation uint64

	// bumped whenever the reconciler reports a commit, so a check that read
	// the store before that commit does not act on a stale state
	revision uint64
	timer    *time.Timer
}

// Monitor implements ports.StateMonitor and ports.StateObserver.
//
// Entries live in a mutex-guarded map. Each entry carries a generation number
// so a check or an expiry timer that outlives its entry (stopped and started
// again) can tell it is stale and back off.
type Monitor struct {
	mu      sync.Mutex
	entries map[int64]*monitorEntry
	gen     uint64

	// cobro id -> struct{} while a check for it runs
	inFlight sync.Map

	cobros     ports.CobroRepository
	provider   ports.ProviderClient
	reconciler ports.Reconciler
	events     ports.EventPublisher
	cfg        MonitorConfig
	metrics    *Metrics
	log        zerolog.Logger
	now        func() time.Time

	cron *cron.Cron
}

// NewMonitor creates a Monitor. provider and reconciler are only used when
// cfg.CheckSource is "provider".
func NewMonitor(
	cobros ports.CobroRepository,
	provider ports.ProviderClient,
	reconciler ports.Reconciler,
	events ports.EventPublisher,
	cfg MonitorConfig,
	metrics *Metrics,
	log zerolog.Logger,
) *Monitor {
	if cfg.Interval <= 0 {
		cfg.Interval = defaultMonitorInterval
	}
	if cfg.MaxDuration <= 0 {
		cfg.MaxDuration = defaultMonitorMaxDuration
	}
	if cfg.CheckTimeout <= 0 {
		cfg.CheckTimeout = defaultCheckTimeout
	}
	if cfg.CheckSource != CheckSourceProvider {
		cfg.CheckSource = CheckSourceStore
	}
	return &Monitor{
		entries:    make(map[int64]*monitorEntry),
		cobros:     cobros,
		provider:   provider,
		reconciler: reconciler,
		events:     events,
		cfg:        cfg,
		metrics:    metrics,
		log:        log,
		now:        time.Now,
	}
}

// Start schedules the periodic tick. Ticks use ctx for their checks.
func (m *Monitor) Start(ctx context.Context) error {
	c := cron.New()
	if _, err := c.AddFunc(fmt.Sprintf("@every %s", m.cfg.Interval), func() { m.Tick(ctx) }); err != nil {
		return fmt.Errorf("schedule monitor tick: %w", err)
	}
	c.Start()

	m.mu.Lock()
	m.cron = c
	m.mu.Unlock()

	m.log.Info().
		Dur("interval", m.cfg.Interval).
		Dur("max_duration", m.cfg.MaxDuration).
		Str("check_source", m.cfg.CheckSource).
		Msg("polling monitor started")
	return nil
}

// Stop halts the schedule, waits for a running tick and cancels every timer.
func (m *Monitor) Stop() {
	m.mu.Lock()
	c := m.cron
	m.cron = nil
	m.mu.Unlock()

	if c != nil {
		<-c.Stop().Done()
	}

	m.mu.Lock()
	for id, e := range m.entries {
		e.timer.Stop()
		delete(m.entries, id)
	}
	m.metrics.setMonitored(0)
	m.mu.Unlock()

	m.log.Info().Msg("polling monitor stopped")
}

// StartMonitoring registers a cobro. It returns false without doing anything
// when the cobro is already watched or its state is terminal.
func (m *Monitor) StartMonitoring(cobroID int64, current domain.CobroState) bool {
	if current.IsTerminal() {
		return false
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.entries[cobroID]; ok {
		return false
	}

	m.gen++
	gen := m.gen
	now := m.now()
	e := &monitorEntry{
		MonitoringEntry: domain.MonitoringEntry{
			CobroID:       cobroID,
			LastState:     current,
			LastCheckedAt: now,
			StartedAt:     now,
			ExpiresAt:     now.Add(m.cfg.MaxDuration),
		},
		generation: gen,
	}
	e.timer = time.AfterFunc(m.cfg.MaxDuration, func() { m.expire(cobroID, gen) })
	m.entries[cobroID] = e
	m.metrics.setMonitored(len(m.entries))

	m.log.Info().Int64("cobro_id", cobroID).Str("state", string(current)).Msg("monitoring started")
	return true
}

// StopMonitoring removes a cobro. Safe at any time, including from a check.
func (m *Monitor) StopMonitoring(cobroID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.removeLocked(cobroID, 0, "stopped")
}

// IsMonitoring reports whether the cobro is currently watched.
func (m *Monitor) IsMonitoring(cobroID int64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.entries[cobroID]
	return ok
}

// Entries returns a snapshot of the watched cobros ordered by id.
func (m *Monitor) Entries() []domain.MonitoringEntry {
	m.mu.Lock()
	out := lo.MapToSlice(m.entries, func(_ int64, e *monitorEntry) domain.MonitoringEntry {
		return e.MonitoringEntry
	})
	m.mu.Unlock()

	sort.Slice(out, func(i, j int) bool { return out[i].CobroID < out[j].CobroID })
	return out
}

// StateCommitted records a change the reconciler committed and published, so
// the next tick does not report it again. Terminal states end monitoring.
func (m *Monitor) StateCommitted(cobroID int64, state domain.CobroState) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[cobroID]
	if !ok {
		return
	}
	e.revision++
	e.LastState = state
	e.LastCheckedAt = m.now()
	if state.IsTerminal() {
		m.removeLocked(cobroID, e.generation, "settled")
	}
}

// WatchPending registers every cobro that can still move.
func (m *Monitor) WatchPending(ctx context.Context) (int, error) {
	cobros, err := m.cobros.ListByState(ctx, domain.WatchableStates)
	if err != nil {
		return 0, fmt.Errorf("list watchable cobros: %w", err)
	}

	started := lo.CountBy(cobros, func(c domain.Cobro) bool {
		return m.StartMonitoring(c.ID, c.State)
	})
	m.log.Info().Int("started", started).Int("candidates", len(cobros)).Msg("watching pending cobros")
	return started, nil
}

type checkTarget struct {
	cobroID    int64
	generation uint64
	revision   uint64
}

// Tick runs one round of checks and waits for them. Entries past their
// deadline are dropped first; a cobro whose previous check is still running
// is skipped.
func (m *Monitor) Tick(ctx context.Context) {
	now := m.now()

	m.mu.Lock()
	targets := make([]checkTarget, 0, len(m.entries))
	for id, e := range m.entries {
		if !now.Before(e.ExpiresAt) {
			m.removeLocked(id, e.generation, "expired")
			continue
		}
		targets = append(targets, checkTarget{cobroID: id, generation: e.generation, revision: e.revision})
	}
	m.mu.Unlock()

	var wg sync.WaitGroup
	for _, t := range targets {
		if _, busy := m.inFlight.LoadOrStore(t.cobroID, struct{}{}); busy {
			m.log.Debug().Int64("cobro_id", t.cobroID).Msg("previous check still running, skipping")
			continue
		}

		wg.Add(1)
		go func(t checkTarget) {
			defer wg.Done()
			defer m.inFlight.Delete(t.cobroID)
			defer func() {
				if r := recover(); r != nil {
					m.log.Error().Interface("panic", r).Int64("cobro_id", t.cobroID).Msg("monitor check panicked")
				}
			}()
			m.check(ctx, t)
		}(t)
	}
	wg.Wait()
}

func (m *Monitor) check(ctx context.Context, t checkTarget) {
	ctx, cancel := context.WithTimeout(ctx, m.cfg.CheckTimeout)
	defer cancel()

	var reconciled *ports.ReconcileResult
	if m.cfg.CheckSource == CheckSourceProvider {
		reconciled = m.pollProvider(ctx, t.cobroID)
	}

	cobro, err := m.cobros.GetByID(ctx, t.cobroID)
	if err != nil {
		m.log.Warn().Err(err).Int64("cobro_id", t.cobroID).Msg("monitor check failed")
		return
	}

	m.observe(t, cobro.State, reconciled)
}

// pollProvider asks the provider about the cobro's last payment and feeds the
// answer to the reconciler. Without a recorded payment reference the payment
// is searched by the cobro id it carries as external reference; that covers a
// webhook that never arrived or whose lookup failed.
func (m *Monitor) pollProvider(ctx context.Context, cobroID int64) *ports.ReconcileResult {
	if m.provider == nil || m.reconciler == nil {
		return nil
	}

	cobro, err := m.cobros.GetByID(ctx, cobroID)
	if err != nil {
		m.log.Warn().Err(err).Int64("cobro_id", cobroID).Msg("monitor: load cobro failed")
		return nil
	}
	if cobro.IsTerminal() {
		return nil
	}

	var payment *domain.ProviderPayment
	if cobro.ProviderRef != nil && *cobro.ProviderRef != "" {
		payment, err = m.provider.LookupPayment(ctx, *cobro.ProviderRef)
	} else {
		payment, err = m.provider.SearchByExternalReference(ctx, cobroID)
	}
	if err != nil {
		m.log.Warn().Err(err).Int64("cobro_id", cobroID).Msg("monitor: provider lookup failed")
		return nil
	}
	if payment == nil {
		m.log.Debug().Int64("cobro_id", cobroID).Msg("monitor: no payment at the provider yet")
		return nil
	}
	if payment.CobroID != cobroID {
		m.log.Warn().
			Int64("cobro_id", cobroID).
			Int64("payment_cobro_id", payment.CobroID).
			Str("reference", payment.Reference).
			Msg("monitor: payment belongs to another cobro")
		return nil
	}

	res, err := m.reconciler.ApplyObservation(ctx, cobroID, payment.Status, payment.Reference, domain.SourcePoll)
	if err != nil {
		m.log.Warn().Err(err).Int64("cobro_id", cobroID).Msg("monitor: reconcile failed")
		return nil
	}
	return res
}

// observe compares the fresh state with the entry and emits on change.
// reconciled is the transition this check committed itself, if any; that one
// was already published by the reconciler.
func (m *Monitor) observe(t checkTarget, state domain.CobroState, reconciled *ports.ReconcileResult) {
	m.mu.Lock()
	e, ok := m.entries[t.cobroID]
	if !ok || e.generation != t.generation {
		m.mu.Unlock()
		return
	}

	old := e.LastState
	e.LastCheckedAt = m.now()
	if old == state || e.revision != t.revision {
		m.mu.Unlock()
		return
	}
	e.LastState = state
	m.mu.Unlock()

	alreadyPublished := reconciled.Changed() && reconciled.OldState == old && reconciled.NewState == state
	if !alreadyPublished && m.events != nil {
		m.events.Publish(newStateChange(t.cobroID, old, state, domain.SourcePoll, m.now().UTC()))
	}

	m.log.Info().
		Int64("cobro_id", t.cobroID).
		Str("old_state", string(old)).
		Str("new_state", string(state)).
		Msg("monitor detected state change")

	if state.IsTerminal() {
		m.mu.Lock()
		m.removeLocked(t.cobroID, t.generation, "settled")
		m.mu.Unlock()
	}
}

func (m *Monitor) expire(cobroID int64, generation uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.removeLocked(cobroID, generation, "expired")
}

// removeLocked drops the entry. A non-zero generation only removes the entry
// it was issued for. Caller holds mu.
func (m *Monitor) removeLocked(cobroID int64, generation uint64, reason string) {
	e, ok := m.entries[cobroID]
	if !ok || (generation != 0 && e.generation != generation) {
		return
	}
	e.timer.Stop()
	delete(m.entries, cobroID)
	m.metrics.setMonitored(len(m.entries))

	m.log.Info().Int64("cobro_id", cobroID).Str("reason", reason).Msg("monitoring ended")
}
