// Package timeline classifies and orders schedulable entities relative to a
// reference instant. Rentals and games share the same display rule: upcoming
// entries first, then past entries, each group ascending by start instant.
package timeline

import (
	"slices"
	"time"
)

type Event interface {
	StartsAt() time.Time
}

// IsPast reports whether e started strictly before now.
func IsPast(e Event, now time.Time) bool {
	return e.StartsAt().Before(now)
}

// OrderUpcomingFirst sorts events in place: upcoming before past, each group
// ascending by start instant. The sort is stable so equal instants keep their
// relative order.
func OrderUpcomingFirst[E Event](events []E, now time.Time) {
	slices.SortStableFunc(events, func(a, b E) int {
		pastA, pastB := IsPast(a, now), IsPast(b, now)

		if pastA != pastB {
			if pastA {
				return 1
			}
			return -1
		}

		return a.StartsAt().Compare(b.StartsAt())
	})
}
