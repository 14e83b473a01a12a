package profiles

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"penguin-pet/internal/observability"
)

var ErrInvalidInput = errors.New("invalid input")

type Service struct {
	repo     Repository
	defaults Defaults
	now      func() time.Time
}

func NewService(repo Repository, defaults Defaults) *Service {
	return &Service{
		repo:     repo,
		defaults: defaults,
		now:      time.Now,
	}
}

// Create deja un perfil vacío para un usuario nuevo.
func (s *Service) Create(ctx context.Context, userID string) (Profile, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return Profile{}, ErrInvalidInput
	}
	now := s.now()
	p := Profile{UserID: userID, CreatedAt: now, UpdatedAt: now}
	if err := s.repo.Create(ctx, p); err != nil {
		return Profile{}, fmt.Errorf("profiles.Create: %w", err)
	}
	return p, nil
}

// Get devuelve el perfil guardado. Si no existe devuelve uno vacío (no es error).
func (s *Service) Get(ctx context.Context, userID string) (Profile, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return Profile{}, ErrInvalidInput
	}
	p, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Profile{UserID: userID}, nil
		}
		return Profile{}, fmt.Errorf("profiles.Get: %w", err)
	}
	return p, nil
}

// Persona resuelve nombre y cumpleaños (con los defaults del despliegue) y los derivados de fecha.
func (s *Service) Persona(ctx context.Context, userID string) (Persona, error) {
	p, err := s.Get(ctx, userID)
	if err != nil {
		return Persona{}, err
	}
	return s.persona(p, s.now()), nil
}

func (s *Service) persona(p Profile, now time.Time) Persona {
	out := Persona{DisplayName: p.DisplayName, Birthday: p.Birthday}
	if out.DisplayName == nil && s.defaults.DisplayName != "" {
		name := s.defaults.DisplayName
		out.DisplayName = &name
	}
	if out.Birthday == nil && s.defaults.Birthday != nil {
		b := *s.defaults.Birthday
		out.Birthday = &b
	}
	out.IsBirthdayToday = IsBirthdayToday(out.Birthday, now)
	out.DaysUntilBirthday = DaysUntilBirthday(out.Birthday, now)
	return out
}

// Update aplica el patch (crea el perfil si no existía). displayName "" se guarda como null.
func (s *Service) Update(ctx context.Context, userID string, patch Patch) (Profile, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return Profile{}, ErrInvalidInput
	}

	if patch.DisplayName.Set && patch.DisplayName.Value != nil {
		name := strings.TrimSpace(*patch.DisplayName.Value)
		if name == "" {
			patch.DisplayName.Value = nil
		} else {
			patch.DisplayName.Value = &name
		}
	}
	if patch.Birthday.Set && patch.Birthday.Value != nil {
		b := dateOnly(*patch.Birthday.Value)
		patch.Birthday.Value = &b
	}

	p, err := s.repo.Upsert(ctx, userID, patch, s.now())
	if err != nil {
		return Profile{}, fmt.Errorf("profiles.Update: %w", err)
	}
	return p, nil
}

// DailyMessage devuelve el mensaje del día; si el cacheado es de otro día UTC elige uno nuevo y lo persiste.
// Sin perfil guardado devuelve ErrNotFound y no escribe nada.
func (s *Service) DailyMessage(ctx context.Context, userID string) (string, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return "", ErrInvalidInput
	}
	p, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("profiles.DailyMessage: %w", err)
	}
	now := s.now()

	if !ShouldRefreshDailyMessage(p.LastDailyMessageAt, now) {
		if msg := MessageToShow(p.DailyMessage, p.LastDailyMessageAt, now); msg != nil {
			return *msg, nil
		}
	}

	msg := PickDailyMessage()
	if err := s.repo.SetDailyMessage(ctx, p.UserID, msg, now); err != nil {
		return "", fmt.Errorf("profiles.DailyMessage: %w", err)
	}
	observability.RecordDailyMessagePicked()
	return msg, nil
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
