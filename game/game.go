package game

import "time"

// Game is an organized pickup session attached to a rental. PlayersNeeded
// counts the remaining open slots and is only ever decremented by joins.
// JoinedPlayers holds each participant's email at most once, in join order.
type Game struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	GameType      string    `json:"gameType"`
	PlayersNeeded int       `json:"playersNeeded"`
	Creator       string    `json:"creator"`
	RentalID      string    `json:"rentalId"`
	Date          time.Time `json:"date"`
	Duration      int       `json:"duration"`
	JoinedPlayers []string  `json:"joinedPlayers"`
}

func (g Game) StartsAt() time.Time {
	return g.Date
}

func (g Game) IsPast(now time.Time) bool {
	return g.Date.Before(now)
}

// CreateInput is the user-entered part of a rental-to-game conversion; date,
// duration and creator come from the rental and the acting identity.
type CreateInput struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	GameType      string `json:"gameType"`
	PlayersNeeded int    `json:"playersNeeded"`
}
