package jwtauth

import (
	"context"
	"fmt"
	"time"

	"kitty-catalog/internal/ports/auth"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Service implementa auth.TokenService con JWT firmado por clave compartida.
// Algoritmo y clave vienen de configuración externa.
type Service struct {
	key       []byte
	method    jwt.SigningMethod
	accessTTL time.Duration
	now       func() time.Time
}

type tokenClaims struct {
	UserID int64 `json:"user_id"`
	jwt.RegisteredClaims
}

// NewService valida que el algoritmo configurado sea HMAC (clave simétrica).
func NewService(key, algorithm string, accessTTL time.Duration) (*Service, error) {
	method := jwt.GetSigningMethod(algorithm)
	if method == nil {
		return nil, fmt.Errorf("jwtauth: unknown signing algorithm %q", algorithm)
	}
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("jwtauth: algorithm %q is not HMAC", algorithm)
	}
	if key == "" {
		return nil, fmt.Errorf("jwtauth: signing key is empty")
	}

	return &Service{
		key:       []byte(key),
		method:    method,
		accessTTL: accessTTL,
		now:       time.Now,
	}, nil
}

// IssueAccess emite un token de corta vida con user_id + jti fresco.
func (s *Service) IssueAccess(userID int64) (string, error) {
	now := s.now()
	return s.sign(tokenClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
		},
	})
}

// IssueRefresh emite el refresh token. Sin claim exp: se persiste una sola vez
// en el registro del usuario y se reutiliza durante toda la vida de la cuenta.
func (s *Service) IssueRefresh(userID int64) (string, error) {
	return s.sign(tokenClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:       uuid.NewString(),
			IssuedAt: jwt.NewNumericDate(s.now()),
		},
	})
}

// Verify chequea firma y estructura. No consulta usuarios ni rota nada.
func (s *Service) Verify(ctx context.Context, token string) (auth.Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &tokenClaims{}, s.keyFunc,
		jwt.WithValidMethods([]string{s.method.Alg()}),
	)
	if err != nil {
		return auth.Claims{}, fmt.Errorf("%w: %v", auth.ErrInvalidToken, err)
	}

	claims, ok := parsed.Claims.(*tokenClaims)
	if !ok || !parsed.Valid {
		return auth.Claims{}, auth.ErrInvalidToken
	}

	return auth.Claims{
		UserID:  claims.UserID,
		TokenID: claims.ID,
	}, nil
}

func (s *Service) keyFunc(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method %q", token.Method.Alg())
	}
	return s.key, nil
}

func (s *Service) sign(claims tokenClaims) (string, error) {
	signed, err := jwt.NewWithClaims(s.method, claims).SignedString(s.key)
	if err != nil {
		return "", fmt.Errorf("jwtauth: sign token: %w", err)
	}
	return signed, nil
}

var _ auth.TokenService = (*Service)(nil)
