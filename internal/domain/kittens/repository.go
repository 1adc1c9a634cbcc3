package kittens

import (
	"context"
	"errors"
	"time"
)

var (
	ErrNotFound       = errors.New("kitten not found")
	ErrAlreadyDeleted = errors.New("kitten already deleted")
	// ErrInvalidBreed surge de la FK breed_id -> breeds.id; la aplicación no
	// pre-chequea la raza.
	ErrInvalidBreed = errors.New("invalid breed reference")
)

// NewKitty son los campos que aporta el caller al crear; id y timestamps los
// pone el store.
type NewKitty struct {
	Name        string
	Color       string
	Age         int
	Description *string
	BreedID     int64
}

type Repository interface {
	Create(ctx context.Context, in NewKitty) (Kitty, error)

	// GetByID excluye filas soft-deleted.
	GetByID(ctx context.Context, id int64) (Kitty, error)

	// GetAnyByID trae la fila sin importar deleted_at. Solo lo usa el camino de
	// borrado para distinguir NotFound de AlreadyDeleted.
	GetAnyByID(ctx context.Context, id int64) (Kitty, error)

	// List devuelve solo filas activas, opcionalmente filtradas por raza.
	// Sin ORDER BY: el orden es el que entregue el store.
	List(ctx context.Context, breedID *int64) ([]Kitty, error)

	// Update escribe la fila completa ya mergeada (incluido UpdatedAt).
	Update(ctx context.Context, k Kitty) error

	// SoftDelete marca deleted_at sobre una fila activa.
	SoftDelete(ctx context.Context, id int64, at time.Time) error
}
