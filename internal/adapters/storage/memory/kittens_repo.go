package memory

import (
	"context"
	"sync"
	"time"

	"kitty-catalog/internal/domain/kittens"
)

type KittensRepo struct {
	mu     sync.RWMutex
	byID   map[int64]kittens.Kitty
	breeds *BreedsRepo
	nextID int64
}

// NewKittensRepo recibe el repo de razas para simular la FK breed_id en modo dev.
func NewKittensRepo(breeds *BreedsRepo) *KittensRepo {
	return &KittensRepo{
		byID:   make(map[int64]kittens.Kitty),
		breeds: breeds,
		nextID: 1,
	}
}

func (r *KittensRepo) Create(ctx context.Context, in kittens.NewKitty) (kittens.Kitty, error) {
	if !r.breeds.exists(in.BreedID) {
		return kittens.Kitty{}, kittens.ErrInvalidBreed
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	k := kittens.Kitty{
		ID:          r.nextID,
		Name:        in.Name,
		Color:       in.Color,
		Age:         in.Age,
		Description: in.Description,
		BreedID:     in.BreedID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	r.byID[k.ID] = k
	r.nextID++
	return k, nil
}

func (r *KittensRepo) GetByID(ctx context.Context, id int64) (kittens.Kitty, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	k, ok := r.byID[id]
	if !ok || k.DeletedAt != nil {
		return kittens.Kitty{}, kittens.ErrNotFound
	}
	return k, nil
}

func (r *KittensRepo) GetAnyByID(ctx context.Context, id int64) (kittens.Kitty, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	k, ok := r.byID[id]
	if !ok {
		return kittens.Kitty{}, kittens.ErrNotFound
	}
	return k, nil
}

func (r *KittensRepo) List(ctx context.Context, breedID *int64) ([]kittens.Kitty, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]kittens.Kitty, 0)
	for _, k := range r.byID {
		if k.DeletedAt != nil {
			continue
		}
		if breedID != nil && k.BreedID != *breedID {
			continue
		}
		out = append(out, k)
	}
	return out, nil
}

func (r *KittensRepo) Update(ctx context.Context, k kittens.Kitty) error {
	if !r.breeds.exists(k.BreedID) {
		return kittens.ErrInvalidBreed
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.byID[k.ID]
	if !ok || existing.DeletedAt != nil {
		return kittens.ErrNotFound
	}
	r.byID[k.ID] = k
	return nil
}

func (r *KittensRepo) SoftDelete(ctx context.Context, id int64, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	k, ok := r.byID[id]
	if !ok {
		return kittens.ErrNotFound
	}
	if k.DeletedAt != nil {
		return kittens.ErrAlreadyDeleted
	}
	k.DeletedAt = &at
	r.byID[id] = k
	return nil
}

var _ kittens.Repository = (*KittensRepo)(nil)
