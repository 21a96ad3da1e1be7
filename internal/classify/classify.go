// Package classify buckets normalized events by game state and wall clock.
// Bucketing is a pure per-event function; no cross-event coupling.
package classify

import (
	"sort"
	"time"

	"github.com/fortuna/courtside/internal/model"
)

// Buckets is the three-way split of a batch of events. An event whose state
// is still pre but whose start time has passed belongs to none of the
// buckets until the provider flips its state.
type Buckets struct {
	Live      []model.Event `json:"live"`
	Upcoming  []model.Event `json:"upcoming"`
	Completed []model.Event `json:"completed"`
}

// Classify splits events into live, upcoming, and completed relative to
// now. Each bucket is stable-sorted by date ascending.
func Classify(events []model.Event, now time.Time) Buckets {
	buckets := Buckets{
		Live:      []model.Event{},
		Upcoming:  []model.Event{},
		Completed: []model.Event{},
	}

	for _, event := range events {
		switch {
		case event.Status.State == model.StateIn:
			buckets.Live = append(buckets.Live, event)
		case event.Status.State == model.StatePost:
			buckets.Completed = append(buckets.Completed, event)
		case event.Status.State == model.StatePre && event.Date.After(now):
			buckets.Upcoming = append(buckets.Upcoming, event)
		default:
			// Kickoff passed but the provider still says pre: upstream
			// lag. Excluded until the state flips.
		}
	}

	sortByDateAsc(buckets.Live)
	sortByDateAsc(buckets.Upcoming)
	sortByDateAsc(buckets.Completed)

	return buckets
}

func sortByDateAsc(events []model.Event) {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Date.Before(events[j].Date)
	})
}
