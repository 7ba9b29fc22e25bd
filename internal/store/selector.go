package store

import (
	"context"

	"github.com/sirupsen/logrus" // Logging library
)

// Selector routes each operation to the persistent store when it is
// reachable and to the in-memory fallback otherwise. Availability is checked
// fresh on every call and never cached, since connectivity can change
// between requests. It is never retried either; a failed probe just routes
// the one operation to the fallback.
type Selector struct {
	primary  Source // Persistent store, may be nil when the process started without a DB
	fallback Source // In-memory fallback, always available
}

// NewSelector builds a selector; primary may be nil
func NewSelector(primary, fallback Source) *Selector {
	return &Selector{primary: primary, fallback: fallback}
}

// Active returns the store mutations and point reads should go to
func (s *Selector) Active(ctx context.Context) Source {
	if s.primary != nil {
		if err := s.primary.Ping(ctx); err == nil {
			return s.primary
		}
		// Routing signal only, never surfaced to the caller
		logrus.WithField("error", "primary store unreachable").Debug("Falling back to in-memory store")
	}
	return s.fallback
}

// Sources returns every store a search should read, in merge order. Both
// stores contribute when the primary is reachable; each one applies the same
// filter predicates and the search layer merges before paginating.
func (s *Selector) Sources(ctx context.Context) []Source {
	if s.primary != nil && s.primary.Ping(ctx) == nil {
		return []Source{s.primary, s.fallback}
	}
	return []Source{s.fallback}
}

// Fallback exposes the in-memory store for seeding at startup
func (s *Selector) Fallback() Source {
	return s.fallback
}
