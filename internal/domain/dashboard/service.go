package dashboard

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"penguin-pet/internal/domain/chat"
	"penguin-pet/internal/domain/pets"
	"penguin-pet/internal/domain/profiles"
	"penguin-pet/internal/platform/logger"
)

// La cuenta regresiva solo se muestra dentro de este rango de días.
const (
	countdownMinDays = 1
	countdownMaxDays = 30
)

var ErrInvalidInput = errors.New("invalid input")

type PetReader interface {
	Get(ctx context.Context, userID string) (pets.Snapshot, error)
}

type ProfileReader interface {
	Persona(ctx context.Context, userID string) (profiles.Persona, error)
	DailyMessage(ctx context.Context, userID string) (string, error)
}

// View es todo lo que la pantalla principal necesita en un solo request.
type View struct {
	Greeting          string
	DisplayName       *string
	DedicationMessage *string
	IsBirthdayToday   bool
	DaysUntilBirthday *int
	BirthdayMessage   *string
	DailyMessage      *string
	BirthdayReply     string
	Pet               *pets.Snapshot
}

type Options struct {
	DedicationMessage string
	// Location para el saludo; nil => hora local del servidor.
	Location *time.Location
	Logger   logger.Logger
}

type Service struct {
	pets       PetReader
	profiles   ProfileReader
	dedication string
	loc        *time.Location
	log        logger.Logger
	now        func() time.Time
}

func NewService(pets PetReader, profiles ProfileReader, opts Options) *Service {
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	return &Service{
		pets:       pets,
		profiles:   profiles,
		dedication: strings.TrimSpace(opts.DedicationMessage),
		loc:        opts.Location,
		log:        opts.Logger,
		now:        time.Now,
	}
}

func (s *Service) Get(ctx context.Context, userID string) (View, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return View{}, ErrInvalidInput
	}

	persona, err := s.profiles.Persona(ctx, userID)
	if err != nil {
		return View{}, fmt.Errorf("dashboard.Get persona: %w", err)
	}

	v := View{
		Greeting:        Greeting(s.now().In(s.loc).Hour()),
		DisplayName:     persona.DisplayName,
		IsBirthdayToday: persona.IsBirthdayToday,
		BirthdayReply:   chat.BirthdayReply(chat.ContextFromPersona(persona)),
	}
	if s.dedication != "" {
		d := s.dedication
		v.DedicationMessage = &d
	}
	if d := persona.DaysUntilBirthday; d != nil && *d >= countdownMinDays && *d <= countdownMaxDays {
		days := *d
		msg := BirthdayCountdown(days)
		v.DaysUntilBirthday = &days
		v.BirthdayMessage = &msg
	}

	// El mensaje del día no es crítico: si falla se omite.
	msg, err := s.profiles.DailyMessage(ctx, userID)
	switch {
	case err == nil:
		v.DailyMessage = &msg
	case errors.Is(err, profiles.ErrNotFound):
	default:
		s.log.Warn("dashboard.daily_message_failed", map[string]any{"user_id": userID, "error": err})
	}

	snap, err := s.pets.Get(ctx, userID)
	switch {
	case err == nil:
		v.Pet = &snap
	case errors.Is(err, pets.ErrNotFound):
	default:
		return View{}, fmt.Errorf("dashboard.Get pet: %w", err)
	}

	return v, nil
}

// Greeting según la hora local: 5-11 mañana, 12-16 tarde, 17-20 atardecer, resto noche.
func Greeting(hour int) string {
	switch {
	case hour >= 5 && hour < 12:
		return "Good morning"
	case hour >= 12 && hour < 17:
		return "Good afternoon"
	case hour >= 17 && hour < 21:
		return "Good evening"
	default:
		return "Good night"
	}
}

func BirthdayCountdown(days int) string {
	if days == 1 {
		return "Tomorrow is your birthday!"
	}
	return fmt.Sprintf("%d days until your birthday!", days)
}
