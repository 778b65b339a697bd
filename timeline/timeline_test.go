package timeline_test

import (
	"testing"
	"time"

	"github.com/playday-app/playday-backend/timeline"
	"github.com/stretchr/testify/require"
)

type event struct {
	name  string
	start time.Time
}

func (e event) StartsAt() time.Time {
	return e.start
}

var now = time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

func TestIsPast(t *testing.T) {
	require.True(t, timeline.IsPast(event{start: now.Add(-time.Hour)}, now))
	require.False(t, timeline.IsPast(event{start: now.Add(time.Hour)}, now))
	require.False(t, timeline.IsPast(event{start: now}, now))
}

func TestOrderUpcomingFirst(t *testing.T) {

	t.Run("upcoming before past", func(t *testing.T) {
		events := []event{
			{name: "past", start: now.Add(-time.Hour)},
			{name: "upcoming", start: now.Add(time.Hour)},
		}

		timeline.OrderUpcomingFirst(events, now)

		require.Equal(t, "upcoming", events[0].name)
		require.Equal(t, "past", events[1].name)
	})

	t.Run("each group ascending by start", func(t *testing.T) {
		events := []event{
			{name: "past far", start: now.Add(-48 * time.Hour)},
			{name: "upcoming far", start: now.Add(48 * time.Hour)},
			{name: "past near", start: now.Add(-time.Hour)},
			{name: "upcoming near", start: now.Add(time.Hour)},
		}

		timeline.OrderUpcomingFirst(events, now)

		got := make([]string, 0, len(events))
		for _, e := range events {
			got = append(got, e.name)
		}

		require.Equal(t, []string{"upcoming near", "upcoming far", "past far", "past near"}, got)
	})

	t.Run("stable for equal instants", func(t *testing.T) {
		start := now.Add(time.Hour)
		events := []event{
			{name: "first", start: start},
			{name: "second", start: start},
		}

		timeline.OrderUpcomingFirst(events, now)

		require.Equal(t, "first", events[0].name)
		require.Equal(t, "second", events[1].name)
	})

	t.Run("empty slice", func(t *testing.T) {
		var events []event

		timeline.OrderUpcomingFirst(events, now)

		require.Empty(t, events)
	})
}
