package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"kitty-catalog/internal/domain/kittens"
)

type KittensRepo struct {
	db *sql.DB
}

func NewKittensRepo(db *sql.DB) *KittensRepo {
	return &KittensRepo{db: db}
}

func (r *KittensRepo) Create(ctx context.Context, in kittens.NewKitty) (kittens.Kitty, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO kittens (name, color, age, description, breed_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, color, age, description, breed_id, created_at, updated_at, deleted_at
	`, in.Name, in.Color, in.Age, in.Description, in.BreedID)

	k, err := scanKitty(row)
	if err != nil {
		if isForeignKeyViolation(err) {
			return kittens.Kitty{}, kittens.ErrInvalidBreed
		}
		return kittens.Kitty{}, err
	}
	return k, nil
}

func (r *KittensRepo) GetByID(ctx context.Context, id int64) (kittens.Kitty, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, color, age, description, breed_id, created_at, updated_at, deleted_at
		FROM kittens
		WHERE id = $1 AND deleted_at IS NULL
	`, id)

	k, err := scanKitty(row)
	if errors.Is(err, sql.ErrNoRows) {
		return kittens.Kitty{}, kittens.ErrNotFound
	}
	return k, err
}

// GetAnyByID ignora deleted_at; es el lookup del camino de borrado.
func (r *KittensRepo) GetAnyByID(ctx context.Context, id int64) (kittens.Kitty, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, color, age, description, breed_id, created_at, updated_at, deleted_at
		FROM kittens
		WHERE id = $1
	`, id)

	k, err := scanKitty(row)
	if errors.Is(err, sql.ErrNoRows) {
		return kittens.Kitty{}, kittens.ErrNotFound
	}
	return k, err
}

// List no lleva ORDER BY; el orden observable es el que devuelva Postgres.
func (r *KittensRepo) List(ctx context.Context, breedID *int64) ([]kittens.Kitty, error) {
	query := `
		SELECT id, name, color, age, description, breed_id, created_at, updated_at, deleted_at
		FROM kittens
		WHERE deleted_at IS NULL
	`
	args := []any{}
	if breedID != nil {
		query += ` AND breed_id = $1`
		args = append(args, *breedID)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]kittens.Kitty, 0)
	for rows.Next() {
		k, err := scanKitty(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, k)
	}
	return out, rows.Err()
}

func (r *KittensRepo) Update(ctx context.Context, k kittens.Kitty) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE kittens
		SET name = $2, color = $3, age = $4, description = $5, breed_id = $6, updated_at = $7
		WHERE id = $1 AND deleted_at IS NULL
	`, k.ID, k.Name, k.Color, k.Age, k.Description, k.BreedID, k.UpdatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return kittens.ErrInvalidBreed
		}
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return kittens.ErrNotFound
	}
	return nil
}

// SoftDelete solo marca filas activas; si otra request la borró en el medio,
// rows=0 y el caller lo reporta como conflicto.
func (r *KittensRepo) SoftDelete(ctx context.Context, id int64, at time.Time) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE kittens SET deleted_at = $2
		WHERE id = $1 AND deleted_at IS NULL
	`, id, at)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return kittens.ErrAlreadyDeleted
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanKitty(row rowScanner) (kittens.Kitty, error) {
	var k kittens.Kitty
	var deletedAt sql.NullTime
	if err := row.Scan(
		&k.ID,
		&k.Name,
		&k.Color,
		&k.Age,
		&k.Description,
		&k.BreedID,
		&k.CreatedAt,
		&k.UpdatedAt,
		&deletedAt,
	); err != nil {
		return kittens.Kitty{}, err
	}
	if deletedAt.Valid {
		t := deletedAt.Time
		k.DeletedAt = &t
	}
	return k, nil
}

var _ kittens.Repository = (*KittensRepo)(nil)
