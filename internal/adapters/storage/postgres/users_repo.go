package postgres

import (
	"context"
	"database/sql"
	"errors"

	"kitty-catalog/internal/domain/users"
)

type UsersRepo struct {
	db *sql.DB
}

func NewUsersRepo(db *sql.DB) *UsersRepo {
	return &UsersRepo{db: db}
}

// Create no pre-chequea el username: la constraint UNIQUE manda y acá solo se
// traduce la violación. Timestamps los asigna el default del server (UTC).
func (r *UsersRepo) Create(ctx context.Context, username, passwordHash string) (users.User, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO users (username, password_hash)
		VALUES ($1, $2)
		RETURNING id, username, password_hash, refresh_token, created_at, updated_at, deleted_at
	`, username, passwordHash)

	u, err := scanUser(row)
	if err != nil {
		if isUniqueViolation(err) {
			return users.User{}, users.ErrUsernameTaken
		}
		return users.User{}, err
	}
	return u, nil
}

func (r *UsersRepo) AttachRefreshToken(ctx context.Context, id int64, token string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE users SET refresh_token = $2 WHERE id = $1
	`, id, token)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return users.ErrNotFound
	}
	return nil
}

func (r *UsersRepo) FindByID(ctx context.Context, id int64) (users.User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, username, password_hash, refresh_token, created_at, updated_at, deleted_at
		FROM users
		WHERE id = $1
	`, id)

	u, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return users.User{}, users.ErrNotFound
	}
	return u, err
}

func (r *UsersRepo) FindByCredentials(ctx context.Context, username, passwordHash string) (users.User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, username, password_hash, refresh_token, created_at, updated_at, deleted_at
		FROM users
		WHERE username = $1 AND password_hash = $2
	`, username, passwordHash)

	u, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return users.User{}, users.ErrNotFound
	}
	return u, err
}

func scanUser(row *sql.Row) (users.User, error) {
	var u users.User
	var deletedAt sql.NullTime
	if err := row.Scan(
		&u.ID,
		&u.Username,
		&u.PasswordHash,
		&u.RefreshToken,
		&u.CreatedAt,
		&u.UpdatedAt,
		&deletedAt,
	); err != nil {
		return users.User{}, err
	}
	if deletedAt.Valid {
		t := deletedAt.Time
		u.DeletedAt = &t
	}
	return u, nil
}

var _ users.Repository = (*UsersRepo)(nil)
