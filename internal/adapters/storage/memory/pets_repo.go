package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"penguin-pet/internal/domain/pets"
)

var ErrAlreadyExists = errors.New("already exists")

type petRepo struct {
	mu     sync.RWMutex
	byUser map[string]pets.Pet
}

func NewPetRepo() pets.Repository {
	return &petRepo{
		byUser: make(map[string]pets.Pet),
	}
}

func (r *petRepo) Create(ctx context.Context, p pets.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(p.UserID) == "" {
		return errors.New("pet user id required")
	}
	if _, exists := r.byUser[p.UserID]; exists {
		return ErrAlreadyExists
	}
	r.byUser[p.UserID] = clonePet(p)
	return nil
}

func (r *petRepo) Update(ctx context.Context, p pets.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byUser[p.UserID]; !exists {
		return pets.ErrNotFound
	}
	r.byUser[p.UserID] = clonePet(p)
	return nil
}

func (r *petRepo) GetByUserID(ctx context.Context, userID string) (pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byUser[userID]
	if !ok {
		return pets.Pet{}, pets.ErrNotFound
	}
	return clonePet(p), nil
}

// clonePet evita que el caller mute punteros guardados en el mapa.
func clonePet(p pets.Pet) pets.Pet {
	p.LastFedAt = cloneTime(p.LastFedAt)
	p.LastBathAt = cloneTime(p.LastBathAt)
	p.PetName = cloneString(p.PetName)
	return p
}
