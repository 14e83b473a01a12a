package memory

import (
	"context"
	"sync"

	"penguin-pet/internal/domain/accounts"
)

type userRepo struct {
	mu      sync.RWMutex
	byEmail map[string]accounts.User
}

func NewUserRepo() accounts.Repository {
	return &userRepo{
		byEmail: make(map[string]accounts.User),
	}
}

func (r *userRepo) Create(ctx context.Context, u accounts.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[u.Email]; exists {
		return accounts.ErrAlreadyExists
	}
	r.byEmail[u.Email] = u
	return nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (accounts.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byEmail[email]
	if !ok {
		return accounts.User{}, accounts.ErrNotFound
	}
	return u, nil
}
