package field

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

func (r *Repository) List(ctx context.Context) ([]Field, error) {
	sql := `SELECT id, field_name, location, price, lat, lng
            FROM playday.fields
            ORDER BY field_name;`

	rows, err := r.pool.Query(ctx, sql)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch fields: %w", err)
	}

	defer rows.Close()

	var fields []Field

	for rows.Next() {
		var field Field
		err := rows.Scan(
			&field.ID,
			&field.FieldName,
			&field.Location,
			&field.Price,
			&field.Lat,
			&field.Lng,
		)

		if err != nil {
			return nil, fmt.Errorf("error scanning field row: %w", err)
		}

		fields = append(fields, field)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating field rows: %w", err)
	}

	return fields, nil
}

func (r *Repository) GetByName(ctx context.Context, name string) (Field, error) {
	sql := `SELECT id, field_name, location, price, lat, lng
            FROM playday.fields
            WHERE field_name=$1;`

	var field Field
	err := r.pool.QueryRow(ctx, sql, name).Scan(
		&field.ID,
		&field.FieldName,
		&field.Location,
		&field.Price,
		&field.Lat,
		&field.Lng,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return Field{}, ErrFieldNotFound
	}

	if err != nil {
		return Field{}, fmt.Errorf("failed to fetch field '%v': %w", name, err)
	}

	return field, nil
}
