package users

import (
	"context"
	"errors"
	"strings"

	"kitty-catalog/internal/ports/auth"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

type Service struct {
	repo   Repository
	tokens auth.TokenService
}

func NewService(repo Repository, tokens auth.TokenService) *Service {
	return &Service{
		repo:   repo,
		tokens: tokens,
	}
}

// TokenPair es lo que devuelven login y refresh.
type TokenPair struct {
	UserID       int64
	Username     string
	AccessToken  string
	RefreshToken string
}

// Register crea el usuario y le cuelga su refresh token en un segundo update.
func (s *Service) Register(ctx context.Context, username, password string) (User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return User{}, ErrInvalidInput
	}

	u, err := s.repo.Create(ctx, username, HashPassword(password))
	if err != nil {
		return User{}, err
	}

	refresh, err := s.tokens.IssueRefresh(u.ID)
	if err != nil {
		return User{}, err
	}
	if err := s.repo.AttachRefreshToken(ctx, u.ID, refresh); err != nil {
		return User{}, err
	}
	u.RefreshToken = refresh

	return u, nil
}

// Login devuelve un access token fresco y el refresh token almacenado (sin rotar).
// Username inexistente y password incorrecto responden igual: ErrNotFound.
func (s *Service) Login(ctx context.Context, username, password string) (TokenPair, error) {
	u, err := s.repo.FindByCredentials(ctx, strings.TrimSpace(username), HashPassword(password))
	if err != nil {
		return TokenPair{}, err
	}

	access, err := s.tokens.IssueAccess(u.ID)
	if err != nil {
		return TokenPair{}, err
	}

	return TokenPair{
		UserID:       u.ID,
		Username:     u.Username,
		AccessToken:  access,
		RefreshToken: u.RefreshToken,
	}, nil
}

// Me resuelve el registro completo del usuario autenticado.
func (s *Service) Me(ctx context.Context, userID int64) (User, error) {
	return s.repo.FindByID(ctx, userID)
}

// Refresh verifica el refresh token recibido y emite un access token nuevo.
// Un token válido cuyo usuario ya no existe también es ErrInvalidToken.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (TokenPair, error) {
	claims, err := s.tokens.Verify(ctx, refreshToken)
	if err != nil {
		return TokenPair{}, auth.ErrInvalidToken
	}

	u, err := s.repo.FindByID(ctx, claims.UserID)
	if err != nil {
		return TokenPair{}, auth.ErrInvalidToken
	}

	access, err := s.tokens.IssueAccess(u.ID)
	if err != nil {
		return TokenPair{}, err
	}

	return TokenPair{
		UserID:       u.ID,
		Username:     u.Username,
		AccessToken:  access,
		RefreshToken: u.RefreshToken,
	}, nil
}
