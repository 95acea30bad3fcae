package service

import (
	"context"
	"io"
	"testing"
	"time"

	"federation-payments/internal/adapter/storage/memory"
	"federation-payments/internal/core/domain"
	"federation-payments/internal/core/ports"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func newTestLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

// drain returns every event currently buffered on the subscription.
func drain(sub ports.Subscription) []domain.StateChange {
	var out []domain.StateChange
	for {
		select {
		case ev, ok := <-sub.Events():
			if !ok {
				return out
			}
			out = append(out, ev)
		default:
			return out
		}
	}
}

func seedCobro(t *testing.T, store *memory.CobroStore, id int64, state domain.CobroState) {
	t.Helper()
	require.NoError(t, store.Create(context.Background(), &domain.Cobro{
		ID:      id,
		ClubID:  10,
		Amount:  150000,
		Concept: "Cuota anual",
		DueDate: time.Now().Add(72 * time.Hour),
		State:   state,
	}))
}

func strPtr(s string) *string { return &s }
