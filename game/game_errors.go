package game

import "errors"

var ErrGameNotFound = errors.New("game not found")

var ErrGameFull = errors.New("game has no open slots left")

var ErrAlreadyJoined = errors.New("player already joined this game")

var ErrNotRentalOwner = errors.New("only the rental owner can create a game for it")

var ErrRentalInPast = errors.New("cannot create a game for a past rental")

var ErrRentalAlreadyConverted = errors.New("rental already has a game")

// ErrNotEligible is returned by the repository when the conditional join
// matched no row; the service classifies it into a precise cause.
var ErrNotEligible = errors.New("join conditions not met")
