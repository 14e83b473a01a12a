package accounts

import (
	"context"
	"errors"
)

var (
	ErrNotFound      = errors.New("user not found")
	ErrAlreadyExists = errors.New("user already exists")
)

type Repository interface {
	// Create devuelve ErrAlreadyExists si el email ya está registrado.
	Create(ctx context.Context, u User) error
	GetByEmail(ctx context.Context, email string) (User, error)
}
