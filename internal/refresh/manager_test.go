package refresh

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fortuna/courtside/internal/aggregate"
	"github.com/fortuna/courtside/internal/model"
)

// stubFetcher counts calls per game and serves canned results.
type stubFetcher struct {
	mu    sync.Mutex
	calls map[string]int
	fail  bool
}

func newStubFetcher(fail bool) *stubFetcher {
	return &stubFetcher{calls: map[string]int{}, fail: fail}
}

func (s *stubFetcher) PlayByPlay(_ context.Context, gameID string) (*aggregate.PlayByPlay, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls[gameID]++

	if s.fail {
		return nil, errors.New("upstream down")
	}
	return &aggregate.PlayByPlay{GameID: gameID, Period: 2, Clock: "05:12"}, nil
}

func (s *stubFetcher) callCount(gameID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[gameID]
}

func liveEvent(id string) model.Event {
	return model.Event{ID: id, Status: model.Status{State: model.StateIn}}
}

func TestSyncStartsPollingAndStoresSnapshot(t *testing.T) {
	fetcher := newStubFetcher(false)
	m := NewManager(fetcher).WithInterval(10 * time.Millisecond)
	defer m.StopAll()

	m.Sync(context.Background(), []model.Event{liveEvent("g1")})

	require.Eventually(t, func() bool {
		_, ok := m.Latest("g1")
		return ok
	}, time.Second, 5*time.Millisecond)

	snapshot, ok := m.Latest("g1")
	require.True(t, ok)
	assert.Equal(t, "g1", snapshot.GameID)
	assert.Equal(t, 1, m.ActiveCount())
}

func TestSyncCreatesAtMostOneHandlePerGame(t *testing.T) {
	fetcher := newStubFetcher(false)
	m := NewManager(fetcher).WithInterval(time.Hour) // only the immediate fetch fires
	defer m.StopAll()

	live := []model.Event{liveEvent("g1")}
	m.Sync(context.Background(), live)
	m.Sync(context.Background(), live)
	m.Sync(context.Background(), live)

	require.Eventually(t, func() bool {
		return fetcher.callCount("g1") >= 1
	}, time.Second, 5*time.Millisecond)
	time.Sleep(50 * time.Millisecond)

	assert.Equal(t, 1, fetcher.callCount("g1"))
	assert.Equal(t, 1, m.ActiveCount())
}

func TestPollingStopsAfterThreeConsecutiveFailures(t *testing.T) {
	fetcher := newStubFetcher(true)
	m := NewManager(fetcher).WithInterval(10 * time.Millisecond)
	defer m.StopAll()

	m.Sync(context.Background(), []model.Event{liveEvent("g1")})

	require.Eventually(t, func() bool {
		return m.ActiveCount() == 0
	}, time.Second, 5*time.Millisecond)

	// No further fetches after the cutoff.
	settled := fetcher.callCount("g1")
	assert.Equal(t, 3, settled)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, settled, fetcher.callCount("g1"))
}

func TestStoppedHandleIsNotRecreatedWhileStillLive(t *testing.T) {
	fetcher := newStubFetcher(true)
	m := NewManager(fetcher).WithInterval(5 * time.Millisecond)
	defer m.StopAll()

	live := []model.Event{liveEvent("g1")}
	m.Sync(context.Background(), live)

	require.Eventually(t, func() bool {
		return m.ActiveCount() == 0
	}, time.Second, 5*time.Millisecond)

	// Re-syncing the same live set must not resurrect the stopped handle.
	m.Sync(context.Background(), live)
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, 3, fetcher.callCount("g1"))
	assert.Equal(t, 0, m.ActiveCount())
}

func TestSyncRemovesHandleWhenGameLeavesLiveSet(t *testing.T) {
	fetcher := newStubFetcher(false)
	m := NewManager(fetcher).WithInterval(10 * time.Millisecond)
	defer m.StopAll()

	m.Sync(context.Background(), []model.Event{liveEvent("g1")})
	require.Eventually(t, func() bool {
		_, ok := m.Latest("g1")
		return ok
	}, time.Second, 5*time.Millisecond)

	m.Sync(context.Background(), nil)

	assert.Equal(t, 0, m.ActiveCount())
	_, ok := m.Latest("g1")
	assert.False(t, ok)
}

func TestStopAllClearsEverything(t *testing.T) {
	fetcher := newStubFetcher(false)
	m := NewManager(fetcher).WithInterval(10 * time.Millisecond)

	m.Sync(context.Background(), []model.Event{liveEvent("g1"), liveEvent("g2")})
	require.Eventually(t, func() bool {
		return m.ActiveCount() == 2
	}, time.Second, 5*time.Millisecond)

	m.StopAll()

	assert.Equal(t, 0, m.ActiveCount())
	_, ok := m.Latest("g1")
	assert.False(t, ok)
}
