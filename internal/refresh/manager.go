// Package refresh polls play-by-play for live games on a fixed interval
// and keeps the latest snapshot per game for the API to serve.
package refresh

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/fortuna/courtside/internal/aggregate"
	"github.com/fortuna/courtside/internal/model"
)

const (
	// DefaultInterval is the polling period for a live game.
	DefaultInterval = 30 * time.Second

	// maxConsecutiveFailures stops a handle for good. No re-arming; the
	// game only gets a new handle after it drops out of and re-enters the
	// live set.
	maxConsecutiveFailures = 3
)

// Fetcher supplies the play-by-play snapshot for one game. The aggregation
// service is the production implementation.
type Fetcher interface {
	PlayByPlay(ctx context.Context, gameID string) (*aggregate.PlayByPlay, error)
}

// Publisher pushes snapshots to downstream consumers. Nil disables
// publishing.
type Publisher interface {
	PublishLiveGameUpdate(ctx context.Context, gameData interface{}) error
	PublishPlayByPlay(ctx context.Context, playData interface{}) error
}

type handleState int

const (
	stateActive handleState = iota
	stateStopped
)

// handle is the polling record for one live game. At most one handle per
// game id exists at a time; the map entry enforces check-before-create. A
// stopped handle stays in the map so a failed game is not re-polled until
// it leaves the live set.
type handle struct {
	gameID   string
	state    handleState
	failures int
	cancel   context.CancelFunc
}

// Manager owns the per-game polling handles and the latest snapshots.
type Manager struct {
	mu       sync.Mutex
	fetcher  Fetcher
	pub      Publisher
	interval time.Duration
	handles  map[string]*handle
	latest   map[string]*aggregate.PlayByPlay
}

// NewManager creates a refresh manager polling at the default interval.
func NewManager(fetcher Fetcher) *Manager {
	return &Manager{
		fetcher:  fetcher,
		interval: DefaultInterval,
		handles:  map[string]*handle{},
		latest:   map[string]*aggregate.PlayByPlay{},
	}
}

// WithInterval overrides the polling period, for tests.
func (m *Manager) WithInterval(interval time.Duration) *Manager {
	m.interval = interval
	return m
}

// WithPublisher attaches a downstream snapshot publisher.
func (m *Manager) WithPublisher(pub Publisher) *Manager {
	m.pub = pub
	return m
}

// Sync aligns the handle set with the current live events: new live games
// get a handle with an immediate first fetch, games no longer live have
// their handle cancelled and removed. Called from the tournament request
// path, so it must stay cheap; fetches run on their own goroutines.
func (m *Manager) Sync(ctx context.Context, live []model.Event) {
	m.mu.Lock()
	defer m.mu.Unlock()

	liveIDs := make(map[string]bool, len(live))
	for _, event := range live {
		liveIDs[event.ID] = true
	}

	for id, h := range m.handles {
		if !liveIDs[id] {
			h.cancel()
			delete(m.handles, id)
			delete(m.latest, id)
			log.Printf("[refresh] game %s left the live set, handle removed", id)
		}
	}

	for _, event := range live {
		if _, exists := m.handles[event.ID]; exists {
			continue
		}

		runCtx, cancel := context.WithCancel(context.Background())
		h := &handle{gameID: event.ID, state: stateActive, cancel: cancel}
		m.handles[event.ID] = h

		log.Printf("[refresh] game %s is live, starting %s polling", event.ID, m.interval)
		go m.run(runCtx, h)

		if m.pub != nil {
			if err := m.pub.PublishLiveGameUpdate(ctx, event); err != nil {
				log.Printf("[refresh] publishing live update for game %s: %v", event.ID, err)
			}
		}
	}
}

// Latest returns the most recent polled snapshot for a game, if any.
func (m *Manager) Latest(gameID string) (*aggregate.PlayByPlay, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	snapshot, ok := m.latest[gameID]
	return snapshot, ok
}

// ActiveCount returns how many handles are currently polling.
func (m *Manager) ActiveCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	count := 0
	for _, h := range m.handles {
		if h.state == stateActive {
			count++
		}
	}
	return count
}

// StopAll cancels every handle and clears all state.
func (m *Manager) StopAll() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id, h := range m.handles {
		h.cancel()
		delete(m.handles, id)
	}
	m.latest = map[string]*aggregate.PlayByPlay{}
}

// run polls one game: an immediate fetch, then one per tick until the
// context is cancelled or the failure cutoff hits.
func (m *Manager) run(ctx context.Context, h *handle) {
	m.poll(ctx, h)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.poll(ctx, h)
		}
	}
}

// poll fetches one snapshot and applies it. Cancellation is cooperative: a
// result that arrives after the handle stopped is discarded, never applied.
func (m *Manager) poll(ctx context.Context, h *handle) {
	m.mu.Lock()
	if h.state != stateActive || ctx.Err() != nil {
		m.mu.Unlock()
		return
	}
	m.mu.Unlock()

	snapshot, err := m.fetcher.PlayByPlay(ctx, h.gameID)

	m.mu.Lock()
	defer m.mu.Unlock()

	if h.state != stateActive || ctx.Err() != nil {
		return
	}

	if err != nil {
		h.failures++
		log.Printf("[refresh] game %s fetch failed (%d/%d): %v",
			h.gameID, h.failures, maxConsecutiveFailures, err)
		if h.failures >= maxConsecutiveFailures {
			h.state = stateStopped
			h.cancel()
			log.Printf("[refresh] game %s hit %d consecutive failures, polling stopped",
				h.gameID, maxConsecutiveFailures)
		}
		return
	}

	h.failures = 0
	m.latest[h.gameID] = snapshot

	if m.pub != nil {
		if err := m.pub.PublishPlayByPlay(ctx, snapshot); err != nil {
			log.Printf("[refresh] publishing play-by-play for game %s: %v", h.gameID, err)
		}
	}
}
