package accounts

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"penguin-pet/internal/adapters/auth/session"
	"penguin-pet/internal/domain/pets"
	"penguin-pet/internal/domain/profiles"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeUsers struct {
	mu    sync.Mutex
	users map[string]User
}

func (f *fakeUsers) Create(_ context.Context, u User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[u.Email]; ok {
		return ErrAlreadyExists
	}
	f.users[u.Email] = u
	return nil
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[email]
	if !ok {
		return User{}, ErrNotFound
	}
	return u, nil
}

type recordingPets struct{ created []string }

func (r *recordingPets) Create(_ context.Context, userID string) (pets.Pet, error) {
	r.created = append(r.created, userID)
	return pets.Pet{UserID: userID, Hunger: 50, Cleanliness: 50}, nil
}

type recordingProfiles struct {
	created []string
	err     error
}

func (r *recordingProfiles) Create(_ context.Context, userID string) (profiles.Profile, error) {
	if r.err != nil {
		return profiles.Profile{}, r.err
	}
	r.created = append(r.created, userID)
	return profiles.Profile{UserID: userID}, nil
}

const testSecret = "0123456789abcdef0123456789abcdef"

type fixture struct {
	svc      *Service
	users    *fakeUsers
	pets     *recordingPets
	profiles *recordingProfiles
	tokens   *session.Manager
}

func newFixture() fixture {
	f := fixture{
		users:    &fakeUsers{users: map[string]User{}},
		pets:     &recordingPets{},
		profiles: &recordingProfiles{},
		tokens:   session.NewManager(testSecret, "penguin-pet", 7*24*time.Hour),
	}
	f.svc = NewService(f.users, f.tokens, f.pets, f.profiles, Options{BcryptCost: bcrypt.MinCost})
	return f
}

func TestRegister_CreatesUserPetAndProfile(t *testing.T) {
	f := newFixture()

	sess, err := f.svc.Register(context.Background(), "  Ana@Example.COM ", "secret1")
	require.NoError(t, err)

	assert.Equal(t, "ana@example.com", sess.User.Email)
	assert.NotEmpty(t, sess.User.ID)
	assert.Equal(t, []string{sess.User.ID}, f.pets.created)
	assert.Equal(t, []string{sess.User.ID}, f.profiles.created)

	stored := f.users.users["ana@example.com"]
	assert.NotEqual(t, "secret1", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret1")))

	claims, err := f.tokens.Verify(context.Background(), sess.Token)
	require.NoError(t, err)
	assert.Equal(t, sess.User.ID, claims.UserID)
	assert.Equal(t, "ana@example.com", claims.Email)
}

func TestRegister_Validation(t *testing.T) {
	f := newFixture()

	_, err := f.svc.Register(context.Background(), "", "secret1")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.svc.Register(context.Background(), "ana@example.com", "12345")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.svc.Register(context.Background(), "ana@example.com", strings.Repeat("x", 80))
	assert.ErrorIs(t, err, ErrInvalidInput)

	// 72 bytes es el máximo que bcrypt acepta
	_, err = f.svc.Register(context.Background(), "max@example.com", strings.Repeat("x", MaxPasswordBytes))
	require.NoError(t, err)
	assert.Len(t, f.pets.created, 1)
}

func TestRegister_ValidationCreatesNothing(t *testing.T) {
	f := newFixture()

	_, err := f.svc.Register(context.Background(), "ana@example.com", "123")
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Empty(t, f.pets.created)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	f := newFixture()

	_, err := f.svc.Register(context.Background(), "ana@example.com", "secret1")
	require.NoError(t, err)

	_, err = f.svc.Register(context.Background(), "ANA@example.com", "other-secret")
	assert.ErrorIs(t, err, ErrAlreadyExists)
	assert.Len(t, f.pets.created, 1)
}

func TestRegister_ProfileFailureIsWrapped(t *testing.T) {
	f := newFixture()
	f.profiles.err = errors.New("db down")

	_, err := f.svc.Register(context.Background(), "ana@example.com", "secret1")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "accounts.Register profile"))
}

func TestLogin(t *testing.T) {
	f := newFixture()
	reg, err := f.svc.Register(context.Background(), "ana@example.com", "secret1")
	require.NoError(t, err)

	sess, err := f.svc.Login(context.Background(), " ANA@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, sess.User.ID)
	assert.NotEmpty(t, sess.Token)

	_, err = f.svc.Login(context.Background(), "ana@example.com", "wrong-pass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = f.svc.Login(context.Background(), "nobody@example.com", "secret1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = f.svc.Login(context.Background(), "", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
