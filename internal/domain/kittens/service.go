package kittens

import (
	"context"
	"errors"
	"strings"
	"time"
)

var ErrInvalidInput = errors.New("invalid input")

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	Name        string
	Color       string
	Age         int
	Description *string
	BreedID     int64
}

// UpdateInput usa punteros para update parcial real: nil = no tocar.
// Un null explícito del caller también llega como nil, así que "limpiar un
// campo" no está soportado; limitación conocida.
type UpdateInput struct {
	Name        *string
	Color       *string
	Age         *int
	Description *string
	BreedID     *int64
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Kitty, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Color) == "" {
		return Kitty{}, ErrInvalidInput
	}
	if in.Age < 0 {
		return Kitty{}, ErrInvalidInput
	}

	return s.repo.Create(ctx, NewKitty{
		Name:        strings.TrimSpace(in.Name),
		Color:       strings.TrimSpace(in.Color),
		Age:         in.Age,
		Description: in.Description,
		BreedID:     in.BreedID,
	})
}

func (s *Service) GetByID(ctx context.Context, id int64) (Kitty, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, breedID *int64) ([]Kitty, error) {
	return s.repo.List(ctx, breedID)
}

// Update carga la fila activa, mergea los campos presentes y escribe todo de
// vuelta. UpdatedAt sale del reloj de la aplicación, a diferencia de
// created_at que lo asigna el store al insertar.
func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (Kitty, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Kitty{}, err
	}

	updated := merge(current, in)
	updated.UpdatedAt = s.now().UTC()

	if err := s.repo.Update(ctx, updated); err != nil {
		return Kitty{}, err
	}
	return updated, nil
}

// SoftDelete busca la fila en cualquier estado para distinguir 404 de 409.
// Una vez borrado es terminal: borrar dos veces da ErrAlreadyDeleted.
func (s *Service) SoftDelete(ctx context.Context, id int64) (Kitty, error) {
	k, err := s.repo.GetAnyByID(ctx, id)
	if err != nil {
		return Kitty{}, err
	}
	if k.DeletedAt != nil {
		return Kitty{}, ErrAlreadyDeleted
	}

	at := s.now().UTC()
	if err := s.repo.SoftDelete(ctx, id, at); err != nil {
		return Kitty{}, err
	}
	k.DeletedAt = &at
	return k, nil
}

// merge aplica solo los campos no-nil del parcial sobre la fila existente.
func merge(existing Kitty, in UpdateInput) Kitty {
	if in.Name != nil {
		existing.Name = *in.Name
	}
	if in.Color != nil {
		existing.Color = *in.Color
	}
	if in.Age != nil {
		existing.Age = *in.Age
	}
	if in.Description != nil {
		existing.Description = in.Description
	}
	if in.BreedID != nil {
		existing.BreedID = *in.BreedID
	}
	return existing
}
