package rental

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

func (r *Repository) Insert(ctx context.Context, rental Rental) (Rental, error) {
	sql := `
			INSERT INTO playday.rentals(
			field_name, location, price_to_pay, start_date, end_date, hours, owner)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id;
		`

	err := r.pool.QueryRow(ctx, sql,
		rental.FieldName,
		rental.Location,
		rental.PriceToPay,
		rental.StartDate,
		rental.EndDate,
		rental.Hours,
		rental.Owner,
	).Scan(&rental.ID)

	if err != nil {
		return Rental{}, fmt.Errorf("failed to insert rental: %w", err)
	}

	return rental, nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (Rental, error) {
	sql := `
			SELECT id, field_name, location, price_to_pay, start_date, end_date, hours, owner
			FROM playday.rentals
			WHERE id=$1;
		`

	var rental Rental
	err := r.pool.QueryRow(ctx, sql, id).Scan(
		&rental.ID,
		&rental.FieldName,
		&rental.Location,
		&rental.PriceToPay,
		&rental.StartDate,
		&rental.EndDate,
		&rental.Hours,
		&rental.Owner,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return Rental{}, ErrRentalNotFound
	}

	if err != nil {
		return Rental{}, fmt.Errorf("failed to fetch rental with id %v: %w", id, err)
	}

	return rental, nil
}

func (r *Repository) ListByOwner(ctx context.Context, owner string) ([]Rental, error) {
	sql := `
            SELECT id, field_name, location, price_to_pay, start_date, end_date, hours, owner
            FROM playday.rentals
            WHERE owner=$1;
        `

	rows, err := r.pool.Query(ctx, sql, owner)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch rentals for owner '%v': %w", owner, err)
	}

	defer rows.Close()

	var rentals []Rental

	for rows.Next() {
		var rental Rental
		err := rows.Scan(
			&rental.ID,
			&rental.FieldName,
			&rental.Location,
			&rental.PriceToPay,
			&rental.StartDate,
			&rental.EndDate,
			&rental.Hours,
			&rental.Owner,
		)

		if err != nil {
			return nil, fmt.Errorf("error scanning rental row: %w", err)
		}

		rentals = append(rentals, rental)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rental rows: %w", err)
	}

	return rentals, nil
}
