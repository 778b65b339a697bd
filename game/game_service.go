package game

import (
	"context"
	"errors"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/playday-app/playday-backend/auth"
	"github.com/playday-app/playday-backend/rental"
	"github.com/playday-app/playday-backend/timeline"
)

type GameRepository interface {
	Insert(ctx context.Context, game Game) error
	GetByID(ctx context.Context, id string) (Game, error)
	Join(ctx context.Context, id, email string) (Game, error)
	ListByParticipant(ctx context.Context, email string) ([]Game, error)
	ListUpcoming(ctx context.Context, after time.Time) ([]Game, error)
}

type RentalSource interface {
	GetByID(ctx context.Context, id string) (rental.Rental, error)
}

type Service struct {
	repo    GameRepository
	rentals RentalSource
	now     func() time.Time
	newID   func() string
}

func NewService(repo GameRepository, rentals RentalSource) *Service {
	return &Service{
		repo:    repo,
		rentals: rentals,
		now:     time.Now,
		newID:   func() string { return uuid.NewString() },
	}
}

// CreateFromRental converts a rental into a game. The caller must own the
// rental and its slot must still be in the future. Date and duration are
// copied from the rental; the creator is seeded as the first joined player.
// A rental can be converted at most once.
func (s *Service) CreateFromRental(ctx context.Context, ident auth.Identity, rentalID string, input CreateInput) (Game, error) {
	rt, err := s.rentals.GetByID(ctx, rentalID)

	if err != nil {
		return Game{}, err
	}

	if rt.Owner != ident.Email {
		return Game{}, ErrNotRentalOwner
	}

	if rt.IsPast(s.now()) {
		return Game{}, ErrRentalInPast
	}

	game := Game{
		ID:            s.newID(),
		Title:         input.Title,
		Description:   input.Description,
		GameType:      input.GameType,
		PlayersNeeded: input.PlayersNeeded,
		Creator:       ident.Email,
		RentalID:      rt.ID,
		Date:          rt.StartDate,
		Duration:      rt.Hours,
		JoinedPlayers: []string{ident.Email},
	}

	if err := s.repo.Insert(ctx, game); err != nil {
		return Game{}, err
	}

	return game, nil
}

// Join consumes one open slot for the acting identity and returns the
// authoritative post-join game. When the guarded update matches nothing the
// current record decides the cause: already joined, full, or gone.
func (s *Service) Join(ctx context.Context, ident auth.Identity, gameID string) (Game, error) {
	joined, err := s.repo.Join(ctx, gameID, ident.Email)

	if err == nil {
		return joined, nil
	}

	if !errors.Is(err, ErrNotEligible) {
		return Game{}, err
	}

	current, getErr := s.repo.GetByID(ctx, gameID)

	if getErr != nil {
		return Game{}, getErr
	}

	if slices.Contains(current.JoinedPlayers, ident.Email) {
		return Game{}, ErrAlreadyJoined
	}

	return Game{}, ErrGameFull
}

// ListByParticipant returns the games the given player has joined (including
// ones they created), ordered upcoming-first.
func (s *Service) ListByParticipant(ctx context.Context, email string) ([]Game, error) {
	games, err := s.repo.ListByParticipant(ctx, email)

	if err != nil {
		return nil, err
	}

	timeline.OrderUpcomingFirst(games, s.now())

	return games, nil
}

func (s *Service) Get(ctx context.Context, id string) (Game, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListUpcoming(ctx context.Context) ([]Game, error) {
	return s.repo.ListUpcoming(ctx, s.now())
}
