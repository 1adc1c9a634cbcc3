package auth

import (
	"context"
	"errors"
)

// ErrInvalidToken cubre firma inválida, algoritmo incorrecto o payload corrupto.
// El middleware lo traduce a 401.
var ErrInvalidToken = errors.New("invalid token")

// TokenVerifier verifica firma y estructura de un token. No consulta el
// datastore; resolver el usuario es responsabilidad del caller.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}

// TokenIssuer emite tokens firmados para un usuario.
type TokenIssuer interface {
	IssueAccess(userID int64) (string, error)
	IssueRefresh(userID int64) (string, error)
}

// TokenService agrupa emisión y verificación (una sola clave compartida).
type TokenService interface {
	TokenIssuer
	TokenVerifier
}
