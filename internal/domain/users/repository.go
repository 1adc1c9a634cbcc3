package users

import (
	"context"
	"errors"
)

var (
	ErrNotFound      = errors.New("user not found")
	ErrUsernameTaken = errors.New("username already taken")
)

type Repository interface {
	// Create inserta la fila y devuelve id y timestamps asignados por el store.
	// Violación de unicidad de username => ErrUsernameTaken.
	Create(ctx context.Context, username, passwordHash string) (User, error)

	// AttachRefreshToken es el update de seguimiento tras Create.
	// No es atómico con la creación; nadie más observa al usuario entre ambos pasos.
	AttachRefreshToken(ctx context.Context, id int64, token string) error

	FindByID(ctx context.Context, id int64) (User, error)

	// FindByCredentials matchea username y hash por igualdad.
	// Sin match => ErrNotFound, sin distinguir usuario inexistente de password incorrecto.
	FindByCredentials(ctx context.Context, username, passwordHash string) (User, error)
}
