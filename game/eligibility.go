package game

import "slices"

// Eligibility is the join state of a game for a given viewer.
type Eligibility string

const (
	EligibilityJoin          Eligibility = "join"
	EligibilityAlreadyJoined Eligibility = "alreadyJoined"
	EligibilityFull          Eligibility = "full"
	EligibilityNotAvailable  Eligibility = "notAvailable"
)

// EligibilityFor derives the join state for viewerEmail; an empty email means
// signed out. Total over all inputs. A signed-out viewer always sees not
// available; for a signed-in viewer already joined takes priority over full.
func EligibilityFor(g Game, viewerEmail string) Eligibility {
	if viewerEmail == "" {
		return EligibilityNotAvailable
	}

	if slices.Contains(g.JoinedPlayers, viewerEmail) {
		return EligibilityAlreadyJoined
	}

	if g.PlayersNeeded <= 0 {
		return EligibilityFull
	}

	return EligibilityJoin
}
