package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"federation-payments/internal/core/domain"
	"federation-payments/internal/core/ports"
	"federation-payments/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

// CobroServiceImpl implements ports.CobroService.
type CobroServiceImpl struct {
	cobros     ports.CobroRepository
	provider   ports.ProviderClient
	reconciler ports.Reconciler
	monitor    ports.StateMonitor
	log        zerolog.Logger
}

// NewCobroService creates a new CobroServiceImpl. monitor may be nil.
func NewCobroService(
	cobros ports.CobroRepository,
	provider ports.ProviderClient,
	reconciler ports.Reconciler,
	monitor ports.StateMonitor,
	log zerolog.Logger,
) *CobroServiceImpl {
	return &CobroServiceImpl{
		cobros:     cobros,
		provider:   provider,
		reconciler: reconciler,
		monitor:    monitor,
		log:        log,
	}
}

// Create registers a new cobro in Pendiente.
func (s *CobroServiceImpl) Create(ctx context.Context, req ports.CreateCobroRequest) (*domain.Cobro, error) {
	if req.ClubID <= 0 {
		return nil, apperror.Validation("club_id must be positive")
	}
	if req.Amount <= 0 {
		return nil, apperror.Validation("amount must be positive")
	}
	concept := strings.TrimSpace(req.Concept)
	if concept == "" {
		return nil, apperror.Validation("concept is required")
	}

	now := time.Now().UTC()
	cobro := &domain.Cobro{
		ClubID:    req.ClubID,
		Amount:    req.Amount,
		Concept:   concept,
		DueDate:   req.DueDate.UTC(),
		State:     domain.CobroStatePendiente,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.cobros.Create(ctx, cobro); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("create cobro: %w", err))
	}

	s.log.Info().
		Int64("cobro_id", cobro.ID).
		Int64("club_id", cobro.ClubID).
		Int64("amount", cobro.Amount).
		Msg("cobro created")
	return cobro, nil
}

// Get loads a cobro. Reading a cobro that can still move starts watching it,
// so the page that displays it receives updates.
func (s *CobroServiceImpl) Get(ctx context.Context, id int64) (*domain.Cobro, error) {
	cobro, err := s.cobros.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.monitor != nil && !cobro.IsTerminal() {
		s.monitor.StartMonitoring(cobro.ID, cobro.State)
	}
	return cobro, nil
}

// List returns cobros in the given states, or in any state when none given.
// Like Get, every listed cobro that can still move is watched.
func (s *CobroServiceImpl) List(ctx context.Context, states []domain.CobroState) ([]domain.Cobro, error) {
	if invalid, found := lo.Find(states, func(st domain.CobroState) bool { return !st.IsValid() }); found {
		return nil, apperror.ErrInvalidState(string(invalid))
	}
	if len(states) == 0 {
		states = domain.AllCobroStates
	}
	cobros, err := s.cobros.ListByState(ctx, lo.Uniq(states))
	if err != nil {
		return nil, err
	}
	if s.monitor != nil {
		for _, c := range cobros {
			if !c.IsTerminal() {
				s.monitor.StartMonitoring(c.ID, c.State)
			}
		}
	}
	return cobros, nil
}

// CreatePaymentIntent opens a provider checkout for the cobro, records the
// preference and watches the cobro until the payer finishes.
func (s *CobroServiceImpl) CreatePaymentIntent(ctx context.Context, id int64) (*domain.PaymentIntent, error) {
	cobro, err := s.cobros.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cobro.IsTerminal() {
		return nil, fmt.Errorf("cobro %d is %s: %w", id, cobro.State, domain.ErrInvalidState)
	}

	intent, err := s.provider.CreatePaymentIntent(ctx, cobro)
	if err != nil {
		return nil, err
	}

	if err := s.cobros.SetPreferenceID(ctx, id, intent.PreferenceID); err != nil {
		s.log.Warn().Err(err).Int64("cobro_id", id).Msg("failed to store preference id")
	}
	if s.monitor != nil {
		s.monitor.StartMonitoring(cobro.ID, cobro.State)
	}

	s.log.Info().Int64("cobro_id", id).Str("preference_id", intent.PreferenceID).Msg("payment intent created")
	return intent, nil
}

// MarkOverdue moves every Pendiente cobro past its due date to Vencido by
// feeding an "expired" observation through the reconciler. It returns how
// many cobros moved.
func (s *CobroServiceImpl) MarkOverdue(ctx context.Context, now time.Time) (int, error) {
	overdue, err := s.cobros.ListOverdue(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("list overdue cobros: %w", err)
	}

	moved := 0
	for _, c := range overdue {
		res, err := s.reconciler.ApplyObservation(ctx, c.ID, domain.ProviderStatusExpired, "", domain.SourceSweep)
		if err != nil {
			s.log.Warn().Err(err).Int64("cobro_id", c.ID).Msg("overdue sweep: reconcile failed")
			continue
		}
		if res.Changed() {
			moved++
		}
	}

	if moved > 0 {
		s.log.Info().Int("moved", moved).Int("candidates", len(overdue)).Msg("overdue sweep finished")
	}
	return moved, nil
}
