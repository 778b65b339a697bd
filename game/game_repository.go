package game

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

type Repository struct{ pool *pgxpool.Pool }

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) Insert(ctx context.Context, game Game) error {
	sql := `
			INSERT INTO playday.games(
			id, title, description, game_type, players_needed, creator, rental_id, date, duration, joined_players)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
		`

	_, err := r.pool.Exec(ctx, sql,
		game.ID,
		game.Title,
		game.Description,
		game.GameType,
		game.PlayersNeeded,
		game.Creator,
		game.RentalID,
		game.Date,
		game.Duration,
		game.JoinedPlayers,
	)

	var pgErr *pgconn.PgError

	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return ErrRentalAlreadyConverted
	}

	if err != nil {
		return fmt.Errorf("failed to insert game: %w", err)
	}

	return nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (Game, error) {
	sql := `
			SELECT id, title, description, game_type, players_needed, creator, rental_id, date, duration, joined_players
			FROM playday.games
			WHERE id=$1;
		`

	var game Game
	err := r.pool.QueryRow(ctx, sql, id).Scan(
		&game.ID,
		&game.Title,
		&game.Description,
		&game.GameType,
		&game.PlayersNeeded,
		&game.Creator,
		&game.RentalID,
		&game.Date,
		&game.Duration,
		&game.JoinedPlayers,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return Game{}, ErrGameNotFound
	}

	if err != nil {
		return Game{}, fmt.Errorf("failed to fetch game with id %v: %w", id, err)
	}

	return game, nil
}

// Join performs the capacity-guarded join in a single statement: the slot
// counter and the participant list change together, and only if a slot is
// open and the player is not already present. Concurrent joins can therefore
// never overbook or drop a participant.
func (r *Repository) Join(ctx context.Context, id, email string) (Game, error) {
	sql := `
			UPDATE playday.games
			SET players_needed = players_needed - 1,
			    joined_players = array_append(joined_players, $2)
			WHERE id=$1
			  AND players_needed > 0
			  AND NOT ($2 = ANY(joined_players))
			RETURNING id, title, description, game_type, players_needed, creator, rental_id, date, duration, joined_players;
		`

	var game Game
	err := r.pool.QueryRow(ctx, sql, id, email).Scan(
		&game.ID,
		&game.Title,
		&game.Description,
		&game.GameType,
		&game.PlayersNeeded,
		&game.Creator,
		&game.RentalID,
		&game.Date,
		&game.Duration,
		&game.JoinedPlayers,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return Game{}, ErrNotEligible
	}

	if err != nil {
		return Game{}, fmt.Errorf("failed to join game '%v': %w", id, err)
	}

	return game, nil
}

func (r *Repository) ListByParticipant(ctx context.Context, email string) ([]Game, error) {
	sql := `
            SELECT id, title, description, game_type, players_needed, creator, rental_id, date, duration, joined_players
            FROM playday.games
            WHERE $1 = ANY(joined_players);
        `

	rows, err := r.pool.Query(ctx, sql, email)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch games for participant '%v': %w", email, err)
	}

	defer rows.Close()

	return scanGames(rows)
}

func (r *Repository) ListUpcoming(ctx context.Context, after time.Time) ([]Game, error) {
	sql := `
            SELECT id, title, description, game_type, players_needed, creator, rental_id, date, duration, joined_players
            FROM playday.games
            WHERE date >= $1
            ORDER BY date;
        `

	rows, err := r.pool.Query(ctx, sql, after)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch upcoming games: %w", err)
	}

	defer rows.Close()

	return scanGames(rows)
}

func scanGames(rows pgx.Rows) ([]Game, error) {
	var games []Game

	for rows.Next() {
		var game Game
		err := rows.Scan(
			&game.ID,
			&game.Title,
			&game.Description,
			&game.GameType,
			&game.PlayersNeeded,
			&game.Creator,
			&game.RentalID,
			&game.Date,
			&game.Duration,
			&game.JoinedPlayers,
		)

		if err != nil {
			return nil, fmt.Errorf("error scanning game row: %w", err)
		}

		games = append(games, game)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating game rows: %w", err)
	}

	return games, nil
}
