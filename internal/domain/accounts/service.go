package accounts

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"penguin-pet/internal/domain/pets"
	"penguin-pet/internal/domain/profiles"
	"penguin-pet/internal/platform/logger"
	"penguin-pet/internal/ports/auth"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	MinPasswordLength = 6
	// bcrypt solo acepta hasta 72 bytes
	MaxPasswordBytes = 72
)

var (
	ErrInvalidInput       = errors.New("invalid email or password")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type PetCreator interface {
	Create(ctx context.Context, userID string) (pets.Pet, error)
}

type ProfileCreator interface {
	Create(ctx context.Context, userID string) (profiles.Profile, error)
}

type Options struct {
	BcryptCost int
	Logger     logger.Logger
}

type Service struct {
	repo     Repository
	issuer   auth.SessionIssuer
	pets     PetCreator
	profiles ProfileCreator

	cost int
	log  logger.Logger
	now  func() time.Time
}

func NewService(repo Repository, issuer auth.SessionIssuer, pets PetCreator, profiles ProfileCreator, opts Options) *Service {
	if opts.BcryptCost < bcrypt.MinCost || opts.BcryptCost > bcrypt.MaxCost {
		opts.BcryptCost = bcrypt.DefaultCost
	}
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	return &Service{
		repo:     repo,
		issuer:   issuer,
		pets:     pets,
		profiles: profiles,
		cost:     opts.BcryptCost,
		log:      opts.Logger,
		now:      time.Now,
	}
}

// Register crea la cuenta, su pingüino (50/50) y un perfil vacío, y abre sesión.
func (s *Service) Register(ctx context.Context, email, password string) (Session, error) {
	email = NormalizeEmail(email)
	if email == "" || len(password) < MinPasswordLength || len(password) > MaxPasswordBytes {
		return Session{}, ErrInvalidInput
	}

	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return Session{}, ErrAlreadyExists
	} else if !errors.Is(err, ErrNotFound) {
		return Session{}, fmt.Errorf("accounts.Register lookup: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return Session{}, ErrInvalidInput
	}
	if err != nil {
		return Session{}, fmt.Errorf("accounts.Register hash: %w", err)
	}

	u := User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    s.now(),
	}
	if err := s.repo.Create(ctx, u); err != nil {
		if errors.Is(err, ErrAlreadyExists) {
			return Session{}, ErrAlreadyExists
		}
		return Session{}, fmt.Errorf("accounts.Register create: %w", err)
	}

	// TODO: user + pet + profile en una sola transacción cuando los repos postgres compartan *sql.Tx.
	if _, err := s.pets.Create(ctx, u.ID); err != nil {
		return Session{}, fmt.Errorf("accounts.Register pet: %w", err)
	}
	if _, err := s.profiles.Create(ctx, u.ID); err != nil {
		return Session{}, fmt.Errorf("accounts.Register profile: %w", err)
	}

	s.log.Info("accounts.registered", map[string]any{"user_id": u.ID})
	return s.issue(u)
}

// Login no distingue email inexistente de password incorrecta.
func (s *Service) Login(ctx context.Context, email, password string) (Session, error) {
	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return Session{}, ErrInvalidCredentials
	}

	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Session{}, ErrInvalidCredentials
		}
		return Session{}, fmt.Errorf("accounts.Login lookup: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return Session{}, ErrInvalidCredentials
	}

	s.log.Info("accounts.logged_in", map[string]any{"user_id": u.ID})
	return s.issue(u)
}

func (s *Service) issue(u User) (Session, error) {
	token, exp, err := s.issuer.Issue(auth.Claims{UserID: u.ID, Email: u.Email})
	if err != nil {
		return Session{}, fmt.Errorf("accounts: issue session: %w", err)
	}
	return Session{User: u, Token: token, ExpiresAt: exp}, nil
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
