package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct{ pool *pgxpool.Pool }

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Ensure creates the profile row for a verified identity if it does not
// exist yet. Role, picture, and creation time come from the table defaults.
func (r *Repository) Ensure(ctx context.Context, uid, email, name string) error {
	sql := `INSERT INTO playday.users (uid, email, name)
            VALUES ($1, $2, $3)
            ON CONFLICT (uid) DO NOTHING;`

	_, err := r.pool.Exec(ctx, sql, uid, email, name)

	if err != nil {
		return fmt.Errorf("failed to ensure user '%v': %w", uid, err)
	}

	return nil
}

func (r *Repository) Get(ctx context.Context, uid string) (Profile, error) {
	sql := `SELECT uid, name, email, role, profile_picture, created_at
            FROM playday.users
            WHERE uid=$1;`

	var profile Profile
	err := r.pool.QueryRow(ctx, sql, uid).Scan(
		&profile.UID,
		&profile.Name,
		&profile.Email,
		&profile.Role,
		&profile.ProfilePicture,
		&profile.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return Profile{}, ErrUserNotFound
	}

	if err != nil {
		return Profile{}, fmt.Errorf("failed to fetch user '%v': %w", uid, err)
	}

	return profile, nil
}

func (r *Repository) UpdateName(ctx context.Context, uid, name string) error {
	sql := `UPDATE playday.users SET name=$1 WHERE uid=$2;`

	tag, err := r.pool.Exec(ctx, sql, name, uid)

	if err != nil {
		return fmt.Errorf("failed to update name for user '%v': %w", uid, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}

	return nil
}

func (r *Repository) SetProfilePicture(ctx context.Context, uid, url string) error {
	sql := `UPDATE playday.users SET profile_picture=$1 WHERE uid=$2;`

	tag, err := r.pool.Exec(ctx, sql, url, uid)

	if err != nil {
		return fmt.Errorf("failed to update profile picture for user '%v': %w", uid, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}

	return nil
}
