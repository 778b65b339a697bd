package realtime

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Listener holds a dedicated connection on LISTEN for the store's change
// channels and forwards each notification to the broker. The notification
// payload is the subscription key emitted by the table triggers.
type Listener struct {
	pool   *pgxpool.Pool
	broker *Broker
	logger *slog.Logger
}

func NewListener(pool *pgxpool.Pool, broker *Broker, logger *slog.Logger) *Listener {
	return &Listener{pool: pool, broker: broker, logger: logger}
}

// Run blocks until ctx is cancelled or the connection fails. The caller is
// expected to run it in its own goroutine and treat an error return as loss
// of realtime delivery.
func (l *Listener) Run(ctx context.Context) error {
	conn, err := l.pool.Acquire(ctx)

	if err != nil {
		return fmt.Errorf("failed to acquire listen connection: %w", err)
	}

	defer conn.Release()

	for _, channel := range []string{"rentals_changed", "games_changed"} {
		if _, err := conn.Exec(ctx, "LISTEN "+channel); err != nil {
			return fmt.Errorf("failed to listen on '%v': %w", channel, err)
		}
	}

	l.logger.Info("realtime listener started")

	for {
		notification, err := conn.Conn().WaitForNotification(ctx)

		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("lost notification connection: %w", err)
		}

		switch notification.Channel {
		case "rentals_changed":
			l.broker.Dispatch(ctx, TopicRentals, notification.Payload)
		case "games_changed":
			l.broker.Dispatch(ctx, TopicGames, notification.Payload)
		default:
			l.logger.Warn("notification on unexpected channel", "channel", notification.Channel)
		}
	}
}
