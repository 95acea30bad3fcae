package memory

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"federation-payments/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCobroStore_CreateAssignsIDs(t *testing.T) {
	ctx := context.Background()
	s := NewCobroStore()

	a := &domain.Cobro{ClubID: 1, Amount: 100, State: domain.CobroStatePendiente}
	b := &domain.Cobro{ClubID: 1, Amount: 200, State: domain.CobroStatePendiente}
	require.NoError(t, s.Create(ctx, a))
	require.NoError(t, s.Create(ctx, b))

	assert.Equal(t, int64(1), a.ID)
	assert.Equal(t, int64(2), b.ID)

	got, err := s.GetByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(200), got.Amount)

	_, err = s.GetByID(ctx, 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCobroStore_ConditionalSetState(t *testing.T) {
	ctx := context.Background()
	s := NewCobroStore()
	require.NoError(t, s.Create(ctx, &domain.Cobro{ID: 42, State: domain.CobroStatePendiente}))

	current, applied, err := s.ConditionalSetState(ctx, 42, domain.CobroStatePendiente, domain.CobroStatePagado)
	require.NoError(t, err)
	assert.True(t, applied)
	assert.Equal(t, domain.CobroStatePagado, current)

	current, applied, err = s.ConditionalSetState(ctx, 42, domain.CobroStatePendiente, domain.CobroStateAnulado)
	require.NoError(t, err)
	assert.False(t, applied)
	assert.Equal(t, domain.CobroStatePagado, current)

	_, _, err = s.ConditionalSetState(ctx, 7, domain.CobroStatePendiente, domain.CobroStatePagado)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCobroStore_ConditionalSetState_OneWinner(t *testing.T) {
	ctx := context.Background()
	s := NewCobroStore()
	require.NoError(t, s.Create(ctx, &domain.Cobro{ID: 1, State: domain.CobroStatePendiente}))

	var wins int32
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, applied, err := s.ConditionalSetState(ctx, 1, domain.CobroStatePendiente, domain.CobroStatePagado)
			if err == nil && applied {
				atomic.AddInt32(&wins, 1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins)
}

func TestCobroStore_Lists(t *testing.T) {
	ctx := context.Background()
	s := NewCobroStore()
	now := time.Now()

	require.NoError(t, s.Create(ctx, &domain.Cobro{State: domain.CobroStatePendiente, DueDate: now.Add(-time.Hour)}))
	require.NoError(t, s.Create(ctx, &domain.Cobro{State: domain.CobroStatePendiente, DueDate: now.Add(time.Hour)}))
	require.NoError(t, s.Create(ctx, &domain.Cobro{State: domain.CobroStatePagado, DueDate: now.Add(-time.Hour)}))
	require.NoError(t, s.Create(ctx, &domain.Cobro{State: domain.CobroStateVencido}))

	watchable, err := s.ListByState(ctx, domain.WatchableStates)
	require.NoError(t, err)
	assert.Len(t, watchable, 3)

	overdue, err := s.ListOverdue(ctx, now)
	require.NoError(t, err)
	require.Len(t, overdue, 1)
	assert.Equal(t, int64(1), overdue[0].ID)
}

func TestCobroStore_SetRefs(t *testing.T) {
	ctx := context.Background()
	s := NewCobroStore()
	require.NoError(t, s.Create(ctx, &domain.Cobro{ID: 3, State: domain.CobroStatePendiente}))

	require.NoError(t, s.SetProviderRef(ctx, 3, "999"))
	require.NoError(t, s.SetPreferenceID(ctx, 3, "pref-1"))

	got, err := s.GetByID(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "999", *got.ProviderRef)
	assert.Equal(t, "pref-1", *got.PreferenceID)

	assert.ErrorIs(t, s.SetProviderRef(ctx, 4, "x"), domain.ErrNotFound)
}

func TestLinkStore_Lifecycle(t *testing.T) {
	ctx := context.Background()
	s := NewLinkStore()

	link := &domain.PublicLink{ID: uuid.New(), CobroID: 42, Slug: "cuota-marzo-42", Active: true, CreatedAt: time.Now()}
	require.NoError(t, s.Create(ctx, link))

	dup := &domain.PublicLink{ID: uuid.New(), CobroID: 42, Slug: "cuota-marzo-42"}
	assert.ErrorIs(t, s.Create(ctx, dup), domain.ErrSlugCollision)

	exists, err := s.SlugExists(ctx, "cuota-marzo-42")
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, s.IncrementAccess(ctx, "cuota-marzo-42"))
	require.NoError(t, s.SetActive(ctx, link.ID, false))

	got, err := s.GetBySlug(ctx, "cuota-marzo-42")
	require.NoError(t, err)
	assert.False(t, got.Active)
	assert.Equal(t, int64(1), got.AccessCount)

	list, err := s.ListByCobro(ctx, 42)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, s.Delete(ctx, link.ID))
	_, err = s.GetBySlug(ctx, "cuota-marzo-42")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, s.Delete(ctx, link.ID), domain.ErrNotFound)
}

func TestAuditStore(t *testing.T) {
	s := NewAuditStore()
	require.NoError(t, s.Create(context.Background(), &domain.AuditLog{ID: uuid.New(), Action: domain.AuditActionForceState}))
	require.NoError(t, s.Create(context.Background(), &domain.AuditLog{ID: uuid.New(), Action: domain.AuditActionLinkDelete}))

	entries := s.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, domain.AuditActionLinkDelete, entries[1].Action)
}
