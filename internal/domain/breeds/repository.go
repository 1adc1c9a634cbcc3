package breeds

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("breed not found")

type Repository interface {
	Create(ctx context.Context, name string, description *string) (Breed, error)
	GetByID(ctx context.Context, id int64) (Breed, error)
	// ListAll devuelve todas las razas en orden ascendente por id.
	ListAll(ctx context.Context) ([]Breed, error)
}
