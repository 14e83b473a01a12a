package profiles

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("profile not found")

type Repository interface {
	Create(ctx context.Context, p Profile) error
	GetByUserID(ctx context.Context, userID string) (Profile, error)
	// Upsert crea el perfil si no existe y aplica el patch (semántica de una sola fila).
	Upsert(ctx context.Context, userID string, patch Patch, now time.Time) (Profile, error)
	SetDailyMessage(ctx context.Context, userID, message string, at time.Time) error
}
