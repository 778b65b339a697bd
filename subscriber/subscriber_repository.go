package subscriber

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct{ pool *pgxpool.Pool }

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Insert stores a subscriber email. Duplicate signups are a no-op.
func (r *Repository) Insert(ctx context.Context, email string) error {
	sql := `INSERT INTO playday.subscribers(email) VALUES ($1)
            ON CONFLICT (email) DO NOTHING;`

	_, err := r.pool.Exec(ctx, sql, email)

	if err != nil {
		return fmt.Errorf("failed to insert subscriber: %w", err)
	}

	return nil
}

func (r *Repository) ListEmails(ctx context.Context) ([]string, error) {
	sql := `SELECT email FROM playday.subscribers ORDER BY email;`

	rows, err := r.pool.Query(ctx, sql)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch subscribers: %w", err)
	}

	defer rows.Close()

	var emails []string

	for rows.Next() {
		var email string

		if err := rows.Scan(&email); err != nil {
			return nil, fmt.Errorf("error scanning subscriber row: %w", err)
		}

		emails = append(emails, email)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating subscriber rows: %w", err)
	}

	return emails, nil
}
