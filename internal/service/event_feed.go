package service

import (
	"crypto/rand"
	"sync"
	"time"

	"federation-payments/internal/core/domain"
	"federation-payments/internal/core/ports"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
)

const defaultSubscriberBuffer = 64

// EventFeed fans confirmed state changes out to subscribers.
//
// Publish never blocks: a subscriber whose buffer is full is closed and must
// resubscribe and re-read cobro state. Channels are only closed while holding
// mu, so a send can never race a close.
type EventFeed struct {
	mu      sync.Mutex
	subs    map[uint64]*subscription
	nextID  uint64
	log     zerolog.Logger
	metrics *Metrics
}

// NewEventFeed creates an empty feed.
func NewEventFeed(log zerolog.Logger, metrics *Metrics) *EventFeed {
	return &EventFeed{
		subs:    make(map[uint64]*subscription),
		log:     log,
		metrics: metrics,
	}
}

type subscription struct {
	id   uint64
	feed *EventFeed
	ch   chan domain.StateChange
}

func (s *subscription) Events() <-chan domain.StateChange {
	return s.ch
}

// Close detaches the subscriber. Safe to call more than once.
func (s *subscription) Close() {
	s.feed.remove(s.id)
}

// Subscribe registers a new observer with the given buffer size.
func (f *EventFeed) Subscribe(buffer int) ports.Subscription {
	if buffer <= 0 {
		buffer = defaultSubscriberBuffer
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.nextID++
	s := &subscription{
		id:   f.nextID,
		feed: f,
		ch:   make(chan domain.StateChange, buffer),
	}
	f.subs[s.id] = s
	return s
}

// Publish delivers event to every subscriber without blocking.
func (f *EventFeed) Publish(event domain.StateChange) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for id, s := range f.subs {
		select {
		case s.ch <- event:
		default:
			delete(f.subs, id)
			close(s.ch)
			f.metrics.observeLagging()
			f.log.Warn().Uint64("subscriber", id).Msg("event feed: closing lagging subscriber")
		}
	}

	f.metrics.observeEvent(string(event.Source), string(event.NewState))
	f.log.Debug().
		Str("event_id", event.ID).
		Int64("cobro_id", event.CobroID).
		Str("old_state", string(event.OldState)).
		Str("new_state", string(event.NewState)).
		Str("source", string(event.Source)).
		Msg("state change published")
}

// Subscribers returns the number of attached observers.
func (f *EventFeed) Subscribers() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.subs)
}

func (f *EventFeed) remove(id uint64) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if s, ok := f.subs[id]; ok {
		delete(f.subs, id)
		close(s.ch)
	}
}

// newStateChange builds an event with a time-ordered ULID.
func newStateChange(cobroID int64, old, next domain.CobroState, source domain.ChangeSource, at time.Time) domain.StateChange {
	if at.IsZero() {
		at = time.Now().UTC()
	}
	return domain.StateChange{
		ID:         ulid.MustNew(ulid.Timestamp(at), rand.Reader).String(),
		CobroID:    cobroID,
		OldState:   old,
		NewState:   next,
		Source:     source,
		OccurredAt: at,
	}
}
