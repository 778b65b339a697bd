package subscriber

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/playday-app/playday-backend/game"
)

type SubscriberRepository interface {
	Insert(ctx context.Context, email string) error
	ListEmails(ctx context.Context) ([]string, error)
}

type UpcomingGames interface {
	ListUpcoming(ctx context.Context) ([]game.Game, error)
}

type Service struct {
	repo   SubscriberRepository
	games  UpcomingGames
	mailer Mailer
	logger *slog.Logger
}

func NewService(repo SubscriberRepository, games UpcomingGames, mailer Mailer, logger *slog.Logger) *Service {
	return &Service{repo: repo, games: games, mailer: mailer, logger: logger}
}

// Subscribe validates and stores a newsletter signup. The welcome mail is
// best-effort: a delivery failure is logged, not returned.
func (s *Service) Subscribe(ctx context.Context, email string) error {
	if !ValidEmail(email) {
		return ErrInvalidEmail
	}

	if err := s.repo.Insert(ctx, email); err != nil {
		return err
	}

	err := s.mailer.Send(ctx, email,
		"Welcome to PlayDay",
		"Thanks for subscribing! We'll keep you posted on fields, games, and more.")

	if err != nil {
		s.logger.Warn("failed to send welcome mail", "err", err)
	}

	return nil
}

// SendDigest mails every subscriber a plaintext list of upcoming games. It is
// meant to run on a schedule; per-recipient failures are logged and skipped.
func (s *Service) SendDigest(ctx context.Context) error {
	games, err := s.games.ListUpcoming(ctx)

	if err != nil {
		return fmt.Errorf("failed to build digest: %w", err)
	}

	if len(games) == 0 {
		s.logger.Info("no upcoming games, skipping digest")
		return nil
	}

	emails, err := s.repo.ListEmails(ctx)

	if err != nil {
		return fmt.Errorf("failed to list digest recipients: %w", err)
	}

	body := renderDigest(games)

	for _, email := range emails {
		if err := s.mailer.Send(ctx, email, "Upcoming games on PlayDay", body); err != nil {
			s.logger.Warn("failed to send digest", "to", email, "err", err)
		}
	}

	s.logger.Info("digest sent", "games", len(games), "recipients", len(emails))

	return nil
}

func renderDigest(games []game.Game) string {
	var b strings.Builder

	b.WriteString("Games looking for players:\n\n")

	for _, g := range games {
		fmt.Fprintf(&b, "- %s (%s) on %s, %d open slots\n",
			g.Title, g.GameType, g.Date.Format(time.DateTime), g.PlayersNeeded)
	}

	return b.String()
}
