package pets

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	mu   sync.Mutex
	pets map[string]Pet
}

func newFakeRepo() *fakeRepo { return &fakeRepo{pets: map[string]Pet{}} }

func (r *fakeRepo) Create(_ context.Context, p Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pets[p.UserID] = p
	return nil
}

func (r *fakeRepo) GetByUserID(_ context.Context, userID string) (Pet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.pets[userID]
	if !ok {
		return Pet{}, ErrNotFound
	}
	return p, nil
}

func (r *fakeRepo) Update(_ context.Context, p Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.pets[p.UserID]; !ok {
		return ErrNotFound
	}
	r.pets[p.UserID] = p
	return nil
}

func newTestService(now *time.Time) (*Service, *fakeRepo) {
	repo := newFakeRepo()
	svc := NewService(repo)
	svc.now = func() time.Time { return *now }
	return svc, repo
}

func TestService_CreateAndGet(t *testing.T) {
	now := t0
	svc, _ := newTestService(&now)
	ctx := context.Background()

	_, err := svc.Create(ctx, "u1")
	require.NoError(t, err)

	snap, err := svc.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 50, snap.Stats.Hunger)
	assert.Equal(t, 50, snap.Stats.Cleanliness)
	assert.Equal(t, MoodHappy, snap.Stats.Mood)
	assert.Nil(t, snap.Pet.LastFedAt)
}

func TestService_GetMissing(t *testing.T) {
	now := t0
	svc, _ := newTestService(&now)

	_, err := svc.Get(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Get(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_FeedThenDecay(t *testing.T) {
	now := t0
	svc, repo := newTestService(&now)
	ctx := context.Background()
	_, err := svc.Create(ctx, "u1")
	require.NoError(t, err)

	snap, err := svc.Feed(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 25, snap.Stats.Hunger)

	stored := repo.pets["u1"]
	require.NotNil(t, stored.LastFedAt)
	assert.True(t, stored.LastFedAt.Equal(t0))

	now = t0.Add(10 * time.Hour)
	snap, err = svc.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 45, snap.Stats.Hunger)
}

func TestService_BathThenDecay(t *testing.T) {
	now := t0
	svc, _ := newTestService(&now)
	ctx := context.Background()
	_, err := svc.Create(ctx, "u1")
	require.NoError(t, err)

	snap, err := svc.Bath(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 80, snap.Stats.Cleanliness)

	now = t0.Add(20 * time.Hour)
	snap, err = svc.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 50, snap.Stats.Cleanliness)
}

func TestService_Rename(t *testing.T) {
	now := t0
	svc, _ := newTestService(&now)
	ctx := context.Background()
	_, err := svc.Create(ctx, "u1")
	require.NoError(t, err)

	name := "  Pingu  "
	snap, err := svc.Rename(ctx, "u1", &name)
	require.NoError(t, err)
	require.NotNil(t, snap.Pet.PetName)
	assert.Equal(t, "Pingu", *snap.Pet.PetName)

	long := strings.Repeat("á", 80)
	snap, err = svc.Rename(ctx, "u1", &long)
	require.NoError(t, err)
	assert.Equal(t, MaxPetNameLength, len([]rune(*snap.Pet.PetName)))

	empty := "   "
	snap, err = svc.Rename(ctx, "u1", &empty)
	require.NoError(t, err)
	assert.Nil(t, snap.Pet.PetName)

	snap, err = svc.Rename(ctx, "u1", nil)
	require.NoError(t, err)
	assert.Nil(t, snap.Pet.PetName)
}
