package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"federation-payments/internal/adapter/storage/memory"
	"federation-payments/internal/core/domain"
	"federation-payments/internal/core/ports"
	"federation-payments/internal/core/ports/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type monitorTestDeps struct {
	m     *Monitor
	store *memory.CobroStore
	feed  *EventFeed
	sub   ports.Subscription
}

func setupMonitor(t *testing.T, cfg MonitorConfig) *monitorTestDeps {
	d := &monitorTestDeps{
		store: memory.NewCobroStore(),
		feed:  NewEventFeed(newTestLogger(), nil),
	}
	d.sub = d.feed.Subscribe(64)
	d.m = NewMonitor(d.store, nil, nil, d.feed, cfg, nil, newTestLogger())
	t.Cleanup(d.m.Stop)
	return d
}

func TestMonitor_StartMonitoring(t *testing.T) {
	d := setupMonitor(t, MonitorConfig{})

	assert.True(t, d.m.StartMonitoring(42, domain.CobroStatePendiente))
	assert.False(t, d.m.StartMonitoring(42, domain.CobroStatePendiente), "second registration is a no-op")
	assert.False(t, d.m.StartMonitoring(43, domain.CobroStatePagado), "terminal states are not watched")
	assert.False(t, d.m.StartMonitoring(44, domain.CobroStateAnulado))

	assert.True(t, d.m.IsMonitoring(42))
	assert.False(t, d.m.IsMonitoring(43))

	entries := d.m.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(42), entries[0].CobroID)
	assert.Equal(t, domain.CobroStatePendiente, entries[0].LastState)
	assert.Equal(t, entries[0].StartedAt.Add(defaultMonitorMaxDuration), entries[0].ExpiresAt)
}

func TestMonitor_StopMonitoring(t *testing.T) {
	d := setupMonitor(t, MonitorConfig{})

	d.m.StartMonitoring(1, domain.CobroStatePendiente)
	d.m.StopMonitoring(1)
	d.m.StopMonitoring(1) // idempotent
	d.m.StopMonitoring(999)

	assert.False(t, d.m.IsMonitoring(1))
	assert.True(t, d.m.StartMonitoring(1, domain.CobroStatePendiente), "can be watched again after stop")
}

func TestMonitor_Entries_Sorted(t *testing.T) {
	d := setupMonitor(t, MonitorConfig{})
	for _, id := range []int64{30, 10, 20} {
		d.m.StartMonitoring(id, domain.CobroStatePendiente)
	}

	entries := d.m.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, []int64{10, 20, 30}, []int64{entries[0].CobroID, entries[1].CobroID, entries[2].CobroID})
}

func TestMonitor_Tick_TerminalChangeEmitsThenStops(t *testing.T) {
	d := setupMonitor(t, MonitorConfig{})
	ctx := context.Background()
	seedCobro(t, d.store, 42, domain.CobroStatePendiente)
	d.m.StartMonitoring(42, domain.CobroStatePendiente)

	_, _, err := d.store.ConditionalSetState(ctx, 42, domain.CobroStatePendiente, domain.CobroStatePagado)
	require.NoError(t, err)

	d.m.Tick(ctx)

	events := drain(d.sub)
	require.Len(t, events, 1)
	assert.Equal(t, domain.CobroStatePendiente, events[0].OldState)
	assert.Equal(t, domain.CobroStatePagado, events[0].NewState)
	assert.Equal(t, domain.SourcePoll, events[0].Source)
	assert.False(t, d.m.IsMonitoring(42), "terminal state ends monitoring")
}

func TestMonitor_Tick_NonTerminalChangeKeepsWatching(t *testing.T) {
	d := setupMonitor(t, MonitorConfig{})
	ctx := context.Background()
	seedCobro(t, d.store, 7, domain.CobroStatePendiente)
	d.m.StartMonitoring(7, domain.CobroStatePendiente)

	_, _, err := d.store.ConditionalSetState(ctx, 7, domain.CobroStatePendiente, domain.CobroStateVencido)
	require.NoError(t, err)

	d.m.Tick(ctx)
	d.m.Tick(ctx)

	events := drain(d.sub)
	require.Len(t, events, 1, "unchanged second tick emits nothing")
	assert.Equal(t, domain.CobroStateVencido, events[0].NewState)

	require.True(t, d.m.IsMonitoring(7))
	assert.Equal(t, domain.CobroStateVencido, d.m.Entries()[0].LastState)
}

func TestMonitor_Tick_UnchangedUpdatesTimestamp(t *testing.T) {
	d := setupMonitor(t, MonitorConfig{})
	seedCobro(t, d.store, 7, domain.CobroStatePendiente)

	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	d.m.now = func() time.Time { return start }
	d.m.StartMonitoring(7, domain.CobroStatePendiente)

	later := start.Add(5 * time.Second)
	d.m.now = func() time.Time { return later }
	d.m.Tick(context.Background())

	entries := d.m.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, later, entries[0].LastCheckedAt)
	assert.Empty(t, drain(d.sub))
}

func TestMonitor_ExpiresAfterMaxDuration(t *testing.T) {
	d := setupMonitor(t, MonitorConfig{MaxDuration: 50 * time.Millisecond})
	seedCobro(t, d.store, 7, domain.CobroStatePendiente)

	require.True(t, d.m.StartMonitoring(7, domain.CobroStatePendiente))

	assert.Eventually(t, func() bool { return !d.m.IsMonitoring(7) }, time.Second, 10*time.Millisecond)
	assert.Empty(t, drain(d.sub), "expiry emits nothing")
}

func TestMonitor_Tick_DropsEntriesPastDeadline(t *testing.T) {
	d := setupMonitor(t, MonitorConfig{MaxDuration: time.Minute})
	seedCobro(t, d.store, 7, domain.CobroStatePendiente)
	d.m.StartMonitoring(7, domain.CobroStatePendiente)

	d.m.now = func() time.Time { return time.Now().Add(2 * time.Minute) }
	d.m.Tick(context.Background())

	assert.False(t, d.m.IsMonitoring(7))
}

func TestMonitor_StopDuringCheckIsHonored(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockCobroRepository(ctrl)
	feed := NewEventFeed(newTestLogger(), nil)
	sub := feed.Subscribe(8)
	m := NewMonitor(repo, nil, nil, feed, MonitorConfig{}, nil, newTestLogger())
	defer m.Stop()

	m.StartMonitoring(42, domain.CobroStatePendiente)

	repo.EXPECT().GetByID(gomock.Any(), int64(42)).DoAndReturn(func(_ context.Context, id int64) (*domain.Cobro, error) {
		m.StopMonitoring(id)
		return &domain.Cobro{ID: id, State: domain.CobroStatePagado}, nil
	})

	m.Tick(context.Background())

	assert.False(t, m.IsMonitoring(42))
	assert.Empty(t, drain(sub), "a stale check must not act")
}

func TestMonitor_RestartedEntryIgnoresStaleCheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockCobroRepository(ctrl)
	m := NewMonitor(repo, nil, nil, nil, MonitorConfig{}, nil, newTestLogger())
	defer m.Stop()

	m.StartMonitoring(42, domain.CobroStatePendiente)

	repo.EXPECT().GetByID(gomock.Any(), int64(42)).DoAndReturn(func(_ context.Context, id int64) (*domain.Cobro, error) {
		m.StopMonitoring(id)
		m.StartMonitoring(id, domain.CobroStateVencido)
		return &domain.Cobro{ID: id, State: domain.CobroStatePagado}, nil
	})

	m.Tick(context.Background())

	require.True(t, m.IsMonitoring(42), "new entry must survive the old check")
	assert.Equal(t, domain.CobroStateVencido, m.Entries()[0].LastState)
}

func TestMonitor_InFlightCheckNotDuplicated(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockCobroRepository(ctrl)
	m := NewMonitor(repo, nil, nil, nil, MonitorConfig{}, nil, newTestLogger())
	defer m.Stop()

	m.StartMonitoring(42, domain.CobroStatePendiente)

	entered := make(chan struct{})
	release := make(chan struct{})
	repo.EXPECT().GetByID(gomock.Any(), int64(42)).DoAndReturn(func(_ context.Context, id int64) (*domain.Cobro, error) {
		close(entered)
		<-release
		return &domain.Cobro{ID: id, State: domain.CobroStatePendiente}, nil
	}).Times(1)

	done := make(chan struct{})
	go func() {
		m.Tick(context.Background())
		close(done)
	}()

	<-entered
	m.Tick(context.Background()) // overlapping tick skips the busy cobro
	close(release)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("first tick did not finish")
	}
}

func TestMonitor_Tick_CheckErrorIsSwallowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockCobroRepository(ctrl)
	m := NewMonitor(repo, nil, nil, nil, MonitorConfig{}, nil, newTestLogger())
	defer m.Stop()

	m.StartMonitoring(42, domain.CobroStatePendiente)
	repo.EXPECT().GetByID(gomock.Any(), int64(42)).Return(nil, errors.New("connection reset"))

	m.Tick(context.Background())

	assert.True(t, m.IsMonitoring(42))
}

func TestMonitor_ProviderSource_ReconcilesAndEmitsOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mocks.NewMockProviderClient(ctrl)
	store := memory.NewCobroStore()
	feed := NewEventFeed(newTestLogger(), nil)
	sub := feed.Subscribe(16)
	reconciler := NewReconciler(store, provider, nil, feed, ReconcilerConfig{}, nil, newTestLogger())
	m := NewMonitor(store, provider, reconciler, feed, MonitorConfig{CheckSource: CheckSourceProvider}, nil, newTestLogger())
	defer m.Stop()

	ctx := context.Background()
	seedCobro(t, store, 42, domain.CobroStatePendiente)
	require.NoError(t, store.SetProviderRef(ctx, 42, "999"))
	m.StartMonitoring(42, domain.CobroStatePendiente)

	provider.EXPECT().LookupPayment(gomock.Any(), "999").Return(&domain.ProviderPayment{
		Reference: "999", CobroID: 42, Status: domain.ProviderStatusApproved,
	}, nil)

	m.Tick(ctx)

	events := drain(sub)
	require.Len(t, events, 1, "the reconciler's event is not repeated by the monitor")
	assert.Equal(t, domain.SourcePoll, events[0].Source)
	assert.Equal(t, domain.CobroStatePagado, events[0].NewState)
	assert.False(t, m.IsMonitoring(42))
}

func TestMonitor_ProviderSource_NoPaymentYet(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mocks.NewMockProviderClient(ctrl)
	reconciler := mocks.NewMockReconciler(ctrl)
	store := memory.NewCobroStore()
	m := NewMonitor(store, provider, reconciler, nil, MonitorConfig{CheckSource: CheckSourceProvider}, nil, newTestLogger())
	defer m.Stop()

	seedCobro(t, store, 42, domain.CobroStatePendiente)
	m.StartMonitoring(42, domain.CobroStatePendiente)

	// no reconciler call while the payer has not paid
	provider.EXPECT().SearchByExternalReference(gomock.Any(), int64(42)).Return(nil, nil)

	m.Tick(context.Background())

	assert.True(t, m.IsMonitoring(42))
}

func TestMonitor_ProviderSource_RecoversFailedWebhookLookup(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mocks.NewMockProviderClient(ctrl)
	store := memory.NewCobroStore()
	feed := NewEventFeed(newTestLogger(), nil)
	sub := feed.Subscribe(16)
	reconciler := NewReconciler(store, provider, nil, feed, ReconcilerConfig{}, nil, newTestLogger())
	m := NewMonitor(store, provider, reconciler, feed, MonitorConfig{CheckSource: CheckSourceProvider}, nil, newTestLogger())
	reconciler.AddObserver(m)
	defer m.Stop()

	ctx := context.Background()
	seedCobro(t, store, 42, domain.CobroStatePendiente)
	m.StartMonitoring(42, domain.CobroStatePendiente)

	provider.EXPECT().LookupPayment(gomock.Any(), "999").Return(nil, errors.New("timeout"))
	_, err := reconciler.HandleNotification(ctx, domain.Notification{Reference: "999", Kind: "payment"})
	require.ErrorIs(t, err, domain.ErrProviderLookupFailed)

	provider.EXPECT().SearchByExternalReference(gomock.Any(), int64(42)).Return(&domain.ProviderPayment{
		Reference: "999", CobroID: 42, Status: domain.ProviderStatusApproved,
	}, nil)
	m.Tick(ctx)

	c, err := store.GetByID(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, domain.CobroStatePagado, c.State)
	require.NotNil(t, c.ProviderRef)
	assert.Equal(t, "999", *c.ProviderRef)

	events := drain(sub)
	require.Len(t, events, 1)
	assert.Equal(t, domain.SourcePoll, events[0].Source)
	assert.False(t, m.IsMonitoring(42))
}

func TestMonitor_ProviderSource_IgnoresForeignPayment(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mocks.NewMockProviderClient(ctrl)
	reconciler := mocks.NewMockReconciler(ctrl)
	store := memory.NewCobroStore()
	m := NewMonitor(store, provider, reconciler, nil, MonitorConfig{CheckSource: CheckSourceProvider}, nil, newTestLogger())
	defer m.Stop()

	seedCobro(t, store, 42, domain.CobroStatePendiente)
	m.StartMonitoring(42, domain.CobroStatePendiente)

	provider.EXPECT().SearchByExternalReference(gomock.Any(), int64(42)).Return(&domain.ProviderPayment{
		Reference: "5", CobroID: 7, Status: domain.ProviderStatusApproved,
	}, nil)

	m.Tick(context.Background())

	assert.True(t, m.IsMonitoring(42))
}

func TestMonitor_WebhookCommitNotRepublished(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mocks.NewMockProviderClient(ctrl)
	store := memory.NewCobroStore()
	feed := NewEventFeed(newTestLogger(), nil)
	sub := feed.Subscribe(16)
	reconciler := NewReconciler(store, provider, nil, feed, ReconcilerConfig{}, nil, newTestLogger())
	m := NewMonitor(store, nil, nil, feed, MonitorConfig{}, nil, newTestLogger())
	reconciler.AddObserver(m)
	defer m.Stop()

	ctx := context.Background()
	seedCobro(t, store, 42, domain.CobroStatePendiente)
	m.StartMonitoring(42, domain.CobroStatePendiente)

	provider.EXPECT().LookupPayment(gomock.Any(), "999").Return(&domain.ProviderPayment{
		Reference: "999", CobroID: 42, Status: domain.ProviderStatusApproved,
	}, nil).Times(2)

	n := domain.Notification{Reference: "999", Kind: "payment"}
	for i := 0; i < 2; i++ {
		_, err := reconciler.HandleNotification(ctx, n)
		require.NoError(t, err)
	}
	m.Tick(ctx)

	events := drain(sub)
	require.Len(t, events, 1)
	assert.Equal(t, domain.SourceWebhook, events[0].Source)
	assert.False(t, m.IsMonitoring(42), "a terminal commit ends monitoring")
}

func TestMonitor_StateCommittedKeepsWatchingOpenStates(t *testing.T) {
	d := setupMonitor(t, MonitorConfig{})
	seedCobro(t, d.store, 7, domain.CobroStateVencido)
	d.m.StartMonitoring(7, domain.CobroStatePendiente)

	d.m.StateCommitted(7, domain.CobroStateVencido)
	d.m.StateCommitted(8, domain.CobroStatePagado) // not watched, ignored

	entries := d.m.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, domain.CobroStateVencido, entries[0].LastState)

	d.m.Tick(context.Background())
	assert.Empty(t, drain(d.sub), "the committed change is not reported again")
}

func TestMonitor_StaleCheckAfterCommitIsDiscarded(t *testing.T) {
	d := setupMonitor(t, MonitorConfig{})
	seedCobro(t, d.store, 7, domain.CobroStatePendiente)
	d.m.StartMonitoring(7, domain.CobroStatePendiente)

	// a check that read Pendiente before a commit moved the cobro to Vencido
	d.m.mu.Lock()
	target := checkTarget{cobroID: 7, generation: d.m.entries[7].generation, revision: d.m.entries[7].revision}
	d.m.mu.Unlock()
	d.m.StateCommitted(7, domain.CobroStateVencido)

	d.m.observe(target, domain.CobroStatePendiente, nil)

	assert.Equal(t, domain.CobroStateVencido, d.m.Entries()[0].LastState)
	assert.Empty(t, drain(d.sub))
}

func TestMonitor_WatchPending(t *testing.T) {
	d := setupMonitor(t, MonitorConfig{})
	seedCobro(t, d.store, 1, domain.CobroStatePendiente)
	seedCobro(t, d.store, 2, domain.CobroStateVencido)
	seedCobro(t, d.store, 3, domain.CobroStatePagado)
	seedCobro(t, d.store, 4, domain.CobroStateAnulado)

	started, err := d.m.WatchPending(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, started)
	assert.True(t, d.m.IsMonitoring(1))
	assert.True(t, d.m.IsMonitoring(2))
	assert.False(t, d.m.IsMonitoring(3))
}

func TestMonitor_StartSchedulesTicks(t *testing.T) {
	d := setupMonitor(t, MonitorConfig{Interval: 20 * time.Millisecond})
	ctx := context.Background()
	seedCobro(t, d.store, 42, domain.CobroStatePendiente)
	d.m.StartMonitoring(42, domain.CobroStatePendiente)

	require.NoError(t, d.m.Start(ctx))

	_, _, err := d.store.ConditionalSetState(ctx, 42, domain.CobroStatePendiente, domain.CobroStateAnulado)
	require.NoError(t, err)

	assert.Eventually(t, func() bool { return !d.m.IsMonitoring(42) }, 3*time.Second, 20*time.Millisecond)

	select {
	case ev := <-d.sub.Events():
		assert.Equal(t, domain.CobroStateAnulado, ev.NewState)
	case <-time.After(time.Second):
		t.Fatal("no event published")
	}
}
