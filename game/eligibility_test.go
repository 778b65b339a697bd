package game_test

import (
	"testing"

	gm "github.com/playday-app/playday-backend/game"
	"github.com/stretchr/testify/require"
)

func TestEligibilityFor(t *testing.T) {
	open := gm.Game{
		PlayersNeeded: 1,
		JoinedPlayers: []string{"a@x.com", "b@x.com"},
	}
	full := gm.Game{
		PlayersNeeded: 0,
		JoinedPlayers: []string{"a@x.com", "b@x.com"},
	}

	t.Run("signed out viewer", func(t *testing.T) {
		require.Equal(t, gm.EligibilityNotAvailable, gm.EligibilityFor(open, ""))
	})

	t.Run("signed out viewer of a full game", func(t *testing.T) {
		require.Equal(t, gm.EligibilityNotAvailable, gm.EligibilityFor(full, ""))
	})

	t.Run("new viewer can join", func(t *testing.T) {
		require.Equal(t, gm.EligibilityJoin, gm.EligibilityFor(open, "c@x.com"))
	})

	t.Run("joined player sees already joined", func(t *testing.T) {
		require.Equal(t, gm.EligibilityAlreadyJoined, gm.EligibilityFor(open, "b@x.com"))
	})

	t.Run("already joined wins over full", func(t *testing.T) {
		require.Equal(t, gm.EligibilityAlreadyJoined, gm.EligibilityFor(full, "a@x.com"))
	})

	t.Run("new viewer of a full game", func(t *testing.T) {
		require.Equal(t, gm.EligibilityFull, gm.EligibilityFor(full, "c@x.com"))
	})

	t.Run("negative open slots count as full", func(t *testing.T) {
		g := gm.Game{PlayersNeeded: -1, JoinedPlayers: []string{"a@x.com"}}

		require.Equal(t, gm.EligibilityFull, gm.EligibilityFor(g, "c@x.com"))
	})
}
