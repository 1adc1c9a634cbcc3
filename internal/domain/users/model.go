package users

import "time"

// User representa una cuenta del sistema.
// El refresh token se asigna justo después de crear la fila y no rota nunca.
type User struct {
	ID           int64
	Username     string
	PasswordHash string // sha256 hex del password
	RefreshToken string

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time // reservado; no hay endpoint de borrado de usuarios
}
