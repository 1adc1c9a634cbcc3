package memory

import (
	"context"
	"sort"
	"sync"

	"kitty-catalog/internal/domain/breeds"
)

type BreedsRepo struct {
	mu     sync.RWMutex
	byID   map[int64]breeds.Breed
	nextID int64
}

func NewBreedsRepo() *BreedsRepo {
	return &BreedsRepo{
		byID:   make(map[int64]breeds.Breed),
		nextID: 1,
	}
}

func (r *BreedsRepo) Create(ctx context.Context, name string, description *string) (breeds.Breed, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b := breeds.Breed{
		ID:          r.nextID,
		Name:        name,
		Description: description,
	}
	r.byID[b.ID] = b
	r.nextID++
	return b, nil
}

func (r *BreedsRepo) GetByID(ctx context.Context, id int64) (breeds.Breed, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.byID[id]
	if !ok {
		return breeds.Breed{}, breeds.ErrNotFound
	}
	return b, nil
}

// ListAll ordena por id asc, igual que el ORDER BY del adapter de Postgres.
func (r *BreedsRepo) ListAll(ctx context.Context) ([]breeds.Breed, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]breeds.Breed, 0, len(r.byID))
	for _, b := range r.byID {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *BreedsRepo) exists(id int64) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.byID[id]
	return ok
}

var _ breeds.Repository = (*BreedsRepo)(nil)
