package postgres

import (
	"context"
	"database/sql"
	"errors"

	"kitty-catalog/internal/domain/breeds"
)

type BreedsRepo struct {
	db *sql.DB
}

func NewBreedsRepo(db *sql.DB) *BreedsRepo {
	return &BreedsRepo{db: db}
}

func (r *BreedsRepo) Create(ctx context.Context, name string, description *string) (breeds.Breed, error) {
	var b breeds.Breed
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO breeds (name, description)
		VALUES ($1, $2)
		RETURNING id, name, description
	`, name, description).Scan(&b.ID, &b.Name, &b.Description)
	if err != nil {
		return breeds.Breed{}, err
	}
	return b, nil
}

func (r *BreedsRepo) GetByID(ctx context.Context, id int64) (breeds.Breed, error) {
	var b breeds.Breed
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, description
		FROM breeds
		WHERE id = $1
	`, id).Scan(&b.ID, &b.Name, &b.Description)
	if errors.Is(err, sql.ErrNoRows) {
		return breeds.Breed{}, breeds.ErrNotFound
	}
	if err != nil {
		return breeds.Breed{}, err
	}
	return b, nil
}

// ListAll ordena por id asc: el listado de razas sí es determinístico.
func (r *BreedsRepo) ListAll(ctx context.Context) ([]breeds.Breed, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, description
		FROM breeds
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]breeds.Breed, 0)
	for rows.Next() {
		var b breeds.Breed
		if err := rows.Scan(&b.ID, &b.Name, &b.Description); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

var _ breeds.Repository = (*BreedsRepo)(nil)
