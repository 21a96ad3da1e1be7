package upstream

import (
	"errors"
	"fmt"
)

// ErrNoData marks a payload that parsed fine but carries no usable data yet
// (season not started, play log empty). It is a valid empty result for the
// caller to render calmly, never something to retry.
var ErrNoData = errors.New("upstream: no data available yet")

// ErrUnavailable marks a provider that could not be reached after the retry
// budget was exhausted.
var ErrUnavailable = errors.New("upstream: provider unavailable")

// StatusError is a non-success HTTP response from a provider.
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream: %s returned status %d", e.URL, e.Code)
}
