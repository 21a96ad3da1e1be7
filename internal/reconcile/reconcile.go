package reconcile

import (
	"context"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/fortuna/courtside/internal/model"
)

// DefaultWindow is how long a completed game survives in the cache.
const DefaultWindow = 24 * time.Hour

// Reconciler merges fresh completed events with cached ones. The store is
// read-evict-merge-written as one step under the mutex; concurrent requests
// never interleave inside that sequence.
type Reconciler struct {
	mu     sync.Mutex
	store  Store
	window time.Duration
	now    func() time.Time
}

// New creates a reconciler over store with the default retention window.
func New(store Store) *Reconciler {
	return &Reconciler{
		store:  store,
		window: DefaultWindow,
		now:    time.Now,
	}
}

// WithWindow overrides the retention window, for tests.
func (r *Reconciler) WithWindow(window time.Duration) *Reconciler {
	r.window = window
	return r
}

// WithClock overrides the wall clock, for tests.
func (r *Reconciler) WithClock(now func() time.Time) *Reconciler {
	r.now = now
	return r
}

// MergeCompleted folds the fresh completed list into the cache and returns
// the merged list, date descending. Fresh events win on field conflicts;
// cached entries fill presence gaps only, so events the provider has pruned
// from its rolling window stay visible until the retention window expires.
// Reconciling the same batch twice yields the same list. Store failures are
// logged and degrade to the fresh list alone.
func (r *Reconciler) MergeCompleted(ctx context.Context, fresh []model.Event) []model.Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries, err := r.store.Load(ctx)
	if err != nil {
		log.Printf("[reconcile] cache load failed, serving fresh data only: %v", err)
		return sortByDateDesc(append([]model.Event{}, fresh...))
	}

	now := r.now()
	for _, event := range fresh {
		if event.Status.State != model.StatePost {
			continue
		}
		entries[event.ID] = CachedEvent{Game: event, SavedAt: now.UnixMilli()}
	}

	r.evict(entries, now)

	seen := make(map[string]bool, len(fresh))
	merged := make([]model.Event, 0, len(entries))
	for _, event := range fresh {
		if event.Status.State != model.StatePost {
			continue
		}
		merged = append(merged, event)
		seen[event.ID] = true
	}
	for _, entry := range entries {
		if !seen[entry.Game.ID] {
			merged = append(merged, entry.Game)
		}
	}

	if err := r.store.Save(ctx, entries); err != nil {
		log.Printf("[reconcile] cache save failed: %v", err)
	}

	return sortByDateDesc(merged)
}

// FillBracket replaces, in place, any bracket slot whose fresh state is not
// post with its cached completed counterpart when one exists. A finished
// game never regresses to a stale authoritative record; a fresh post record
// is left alone.
func (r *Reconciler) FillBracket(ctx context.Context, events []model.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries, err := r.store.Load(ctx)
	if err != nil {
		log.Printf("[reconcile] cache load failed, bracket served as-is: %v", err)
		return
	}
	if len(entries) == 0 {
		return
	}

	before := len(entries)
	r.evict(entries, r.now())
	if len(entries) != before {
		if err := r.store.Save(ctx, entries); err != nil {
			log.Printf("[reconcile] cache save failed: %v", err)
		}
	}

	for i := range events {
		if events[i].Status.State == model.StatePost {
			continue
		}
		if entry, ok := entries[events[i].ID]; ok {
			events[i] = entry.Game
		}
	}
}

// evict drops entries older than the retention window. Runs on every
// access; there is no background sweeper.
func (r *Reconciler) evict(entries map[string]CachedEvent, now time.Time) {
	cutoff := now.Add(-r.window).UnixMilli()
	for id, entry := range entries {
		if entry.SavedAt < cutoff {
			delete(entries, id)
		}
	}
}

func sortByDateDesc(events []model.Event) []model.Event {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Date.After(events[j].Date)
	})
	return events
}
