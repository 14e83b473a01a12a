package pets

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"penguin-pet/internal/observability"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// Create inicializa el pingüino de un usuario recién registrado (50/50, sin timestamps).
func (s *Service) Create(ctx context.Context, userID string) (Pet, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return Pet{}, ErrInvalidInput
	}

	now := s.now()
	p := Pet{
		UserID:      userID,
		Hunger:      InitialHunger,
		Cleanliness: InitialCleanliness,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return Pet{}, fmt.Errorf("pets.Create: %w", err)
	}
	return p, nil
}

// Get devuelve el registro con stats en vivo.
func (s *Service) Get(ctx context.Context, userID string) (Snapshot, error) {
	p, err := s.load(ctx, userID)
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{Pet: p, Stats: p.Live(s.now())}, nil
}

func (s *Service) Feed(ctx context.Context, userID string) (Snapshot, error) {
	return s.act(ctx, userID, "feed", ApplyFeed)
}

func (s *Service) Bath(ctx context.Context, userID string) (Snapshot, error) {
	return s.act(ctx, userID, "bath", ApplyBath)
}

// Rename cambia (o borra con nil / "") el nombre del pingüino. Se recorta a MaxPetNameLength runas.
func (s *Service) Rename(ctx context.Context, userID string, name *string) (Snapshot, error) {
	p, err := s.load(ctx, userID)
	if err != nil {
		return Snapshot{}, err
	}

	now := s.now()
	p.PetName = normalizePetName(name)
	p.UpdatedAt = now

	if err := s.repo.Update(ctx, p); err != nil {
		return Snapshot{}, fmt.Errorf("pets.Rename: %w", err)
	}
	return Snapshot{Pet: p, Stats: p.Live(now)}, nil
}

func (s *Service) act(ctx context.Context, userID, action string, apply func(Pet, time.Time) Pet) (Snapshot, error) {
	p, err := s.load(ctx, userID)
	if err != nil {
		return Snapshot{}, err
	}

	now := s.now()
	updated := apply(p, now)
	if err := s.repo.Update(ctx, updated); err != nil {
		return Snapshot{}, fmt.Errorf("pets.%s: %w", action, err)
	}
	observability.RecordPetAction(action)

	return Snapshot{Pet: updated, Stats: updated.Live(now)}, nil
}

func (s *Service) load(ctx context.Context, userID string) (Pet, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return Pet{}, ErrInvalidInput
	}
	p, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Pet{}, ErrNotFound
		}
		return Pet{}, fmt.Errorf("pets.load: %w", err)
	}
	return p, nil
}

func normalizePetName(name *string) *string {
	if name == nil {
		return nil
	}
	n := strings.TrimSpace(*name)
	if utf8.RuneCountInString(n) > MaxPetNameLength {
		n = string([]rune(n)[:MaxPetNameLength])
	}
	if n == "" {
		return nil
	}
	return &n
}
