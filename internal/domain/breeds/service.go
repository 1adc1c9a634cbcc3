package breeds

import (
	"context"
	"errors"
	"strings"
)

var ErrInvalidInput = errors.New("invalid input")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, name string, description *string) (Breed, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Breed{}, ErrInvalidInput
	}
	return s.repo.Create(ctx, name, description)
}

func (s *Service) GetByID(ctx context.Context, id int64) (Breed, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListAll(ctx context.Context) ([]Breed, error) {
	return s.repo.ListAll(ctx)
}
