package pets

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("pet not found")

// Repository guarda un Pet por usuario. GetByUserID devuelve ErrNotFound si no existe.
type Repository interface {
	Create(ctx context.Context, p Pet) error
	GetByUserID(ctx context.Context, userID string) (Pet, error)
	Update(ctx context.Context, p Pet) error
}
