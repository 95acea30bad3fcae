package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"federation-payments/internal/core/ports"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// OverdueSweeper runs CobroService.MarkOverdue on a cron schedule.
type OverdueSweeper struct {
	cobros   ports.CobroService
	schedule string
	timeout  time.Duration
	log      zerolog.Logger
	now      func() time.Time

	mu   sync.Mutex
	cron *cron.Cron
}

// NewOverdueSweeper creates a sweeper. schedule is a standard five-field
// cron spec or a descriptor such as "@hourly".
func NewOverdueSweeper(cobros ports.CobroService, schedule string, log zerolog.Logger) *OverdueSweeper {
	return &OverdueSweeper{
		cobros:   cobros,
		schedule: schedule,
		timeout:  time.Minute,
		log:      log,
		now:      time.Now,
	}
}

// Start schedules the sweep. A bad schedule is reported, not panicked on.
func (s *OverdueSweeper) Start(ctx context.Context) error {
	c := cron.New()
	if _, err := c.AddFunc(s.schedule, func() { s.RunOnce(ctx) }); err != nil {
		return fmt.Errorf("schedule overdue sweep %q: %w", s.schedule, err)
	}
	c.Start()

	s.mu.Lock()
	s.cron = c
	s.mu.Unlock()

	s.log.Info().Str("schedule", s.schedule).Msg("overdue sweep scheduled")
	return nil
}

// Stop halts the schedule and waits for a running sweep.
func (s *OverdueSweeper) Stop() {
	s.mu.Lock()
	c := s.cron
	s.cron = nil
	s.mu.Unlock()

	if c != nil {
		<-c.Stop().Done()
	}
}

// RunOnce sweeps now. Errors are logged; the next run retries.
func (s *OverdueSweeper) RunOnce(ctx context.Context) int {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	moved, err := s.cobros.MarkOverdue(ctx, s.now().UTC())
	if err != nil {
		s.log.Error().Err(err).Int("moved", moved).Msg("overdue sweep failed")
		return moved
	}
	if moved > 0 {
		s.log.Info().Int("moved", moved).Msg("overdue sweep moved cobros to Vencido")
	}
	return moved
}
