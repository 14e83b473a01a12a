package memory

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"penguin-pet/internal/domain/profiles"
)

type profileRepo struct {
	mu     sync.RWMutex
	byUser map[string]profiles.Profile
}

func NewProfileRepo() profiles.Repository {
	return &profileRepo{
		byUser: make(map[string]profiles.Profile),
	}
}

func (r *profileRepo) Create(ctx context.Context, p profiles.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(p.UserID) == "" {
		return errors.New("profile user id required")
	}
	if _, exists := r.byUser[p.UserID]; exists {
		return ErrAlreadyExists
	}
	r.byUser[p.UserID] = cloneProfile(p)
	return nil
}

func (r *profileRepo) GetByUserID(ctx context.Context, userID string) (profiles.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byUser[userID]
	if !ok {
		return profiles.Profile{}, profiles.ErrNotFound
	}
	return cloneProfile(p), nil
}

func (r *profileRepo) Upsert(ctx context.Context, userID string, patch profiles.Patch, now time.Time) (profiles.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.byUser[userID]
	if !ok {
		p = profiles.Profile{UserID: userID, CreatedAt: now}
	}
	if patch.DisplayName.Set {
		p.DisplayName = cloneString(patch.DisplayName.Value)
	}
	if patch.Birthday.Set {
		p.Birthday = cloneTime(patch.Birthday.Value)
	}
	p.UpdatedAt = now

	r.byUser[userID] = p
	return cloneProfile(p), nil
}

func (r *profileRepo) SetDailyMessage(ctx context.Context, userID, message string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.byUser[userID]
	if !ok {
		p = profiles.Profile{UserID: userID, CreatedAt: at}
	}
	p.DailyMessage = &message
	p.LastDailyMessageAt = &at
	p.UpdatedAt = at

	r.byUser[userID] = p
	return nil
}

func cloneProfile(p profiles.Profile) profiles.Profile {
	p.DisplayName = cloneString(p.DisplayName)
	p.Birthday = cloneTime(p.Birthday)
	p.LastDailyMessageAt = cloneTime(p.LastDailyMessageAt)
	p.DailyMessage = cloneString(p.DailyMessage)
	return p
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
