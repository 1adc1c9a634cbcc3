package memory

import (
	"context"
	"sync"
	"time"

	"kitty-catalog/internal/domain/users"
)

type UsersRepo struct {
	mu     sync.RWMutex
	byID   map[int64]users.User
	nextID int64
}

func NewUsersRepo() *UsersRepo {
	return &UsersRepo{
		byID:   make(map[int64]users.User),
		nextID: 1,
	}
}

func (r *UsersRepo) Create(ctx context.Context, username, passwordHash string) (users.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Simula la constraint UNIQUE de username.
	for _, u := range r.byID {
		if u.Username == username {
			return users.User{}, users.ErrUsernameTaken
		}
	}

	now := time.Now().UTC()
	u := users.User{
		ID:           r.nextID,
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	r.byID[u.ID] = u
	r.nextID++
	return u, nil
}

func (r *UsersRepo) AttachRefreshToken(ctx context.Context, id int64, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byID[id]
	if !ok {
		return users.ErrNotFound
	}
	u.RefreshToken = token
	r.byID[id] = u
	return nil
}

func (r *UsersRepo) FindByID(ctx context.Context, id int64) (users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return users.User{}, users.ErrNotFound
	}
	return u, nil
}

func (r *UsersRepo) FindByCredentials(ctx context.Context, username, passwordHash string) (users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.byID {
		if u.Username == username && u.PasswordHash == passwordHash {
			return u, nil
		}
	}
	return users.User{}, users.ErrNotFound
}

var _ users.Repository = (*UsersRepo)(nil)
