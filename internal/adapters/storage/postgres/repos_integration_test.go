package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"penguin-pet/internal/config"
	"penguin-pet/internal/domain/accounts"
	"penguin-pet/internal/domain/pets"
	"penguin-pet/internal/domain/profiles"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
)

// setupDB levanta un Postgres efímero y aplica las migraciones. Se saltea con -short.
func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("integration test: needs docker")
	}

	ctx := context.Background()
	pg, err := tcpostgres.Run(ctx, "postgres:17-alpine",
		tcpostgres.WithDatabase("penguin"),
		tcpostgres.WithUsername("penguin"),
		tcpostgres.WithPassword("penguin"),
		tcpostgres.BasicWaitStrategies(),
	)
	testcontainers.CleanupContainer(t, pg)
	require.NoError(t, err)

	dsn, err := pg.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := Open(ctx, config.DatabaseConfig{
		DSN:             dsn,
		MaxOpenConns:    4,
		MaxIdleConns:    2,
		ConnMaxLifetime: time.Minute,
		ConnMaxIdleTime: time.Minute,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	applied, err := Migrate(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, 1, applied)

	// idempotente
	applied, err = Migrate(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, 0, applied)

	return db
}

func TestPostgresRepos(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	users := NewUsersRepo(db)
	petsRepo := NewPetsRepo(db)
	profilesRepo := NewProfilesRepo(db)

	t.Run("users", func(t *testing.T) {
		require.NoError(t, users.Create(ctx, accounts.User{ID: "u1", Email: "ana@example.com", PasswordHash: "h", CreatedAt: now}))
		err := users.Create(ctx, accounts.User{ID: "u2", Email: "ana@example.com", PasswordHash: "h", CreatedAt: now})
		assert.ErrorIs(t, err, accounts.ErrAlreadyExists)

		u, err := users.GetByEmail(ctx, "ana@example.com")
		require.NoError(t, err)
		assert.Equal(t, "u1", u.ID)

		_, err = users.GetByEmail(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, accounts.ErrNotFound)
	})

	t.Run("pets", func(t *testing.T) {
		require.NoError(t, petsRepo.Create(ctx, pets.Pet{UserID: "u1", Hunger: 50, Cleanliness: 50, CreatedAt: now, UpdatedAt: now}))
		assert.ErrorIs(t, petsRepo.Create(ctx, pets.Pet{UserID: "u1", Hunger: 50, Cleanliness: 50, CreatedAt: now, UpdatedAt: now}), ErrAlreadyExists)

		p, err := petsRepo.GetByUserID(ctx, "u1")
		require.NoError(t, err)
		assert.Nil(t, p.LastFedAt)
		assert.Nil(t, p.PetName)

		fed := now.Add(time.Hour)
		name := "Pingu"
		updated := pets.ApplyFeed(p, fed)
		updated.PetName = &name
		require.NoError(t, petsRepo.Update(ctx, updated))

		p, err = petsRepo.GetByUserID(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, 25.0, p.Hunger)
		require.NotNil(t, p.LastFedAt)
		assert.True(t, p.LastFedAt.Equal(fed))
		assert.Equal(t, "Pingu", *p.PetName)

		_, err = petsRepo.GetByUserID(ctx, "nobody")
		assert.ErrorIs(t, err, pets.ErrNotFound)
		assert.ErrorIs(t, petsRepo.Update(ctx, pets.Pet{UserID: "nobody"}), pets.ErrNotFound)
	})

	t.Run("profiles", func(t *testing.T) {
		require.NoError(t, profilesRepo.Create(ctx, profiles.Profile{UserID: "u1", CreatedAt: now, UpdatedAt: now}))

		name := "Ana"
		b := time.Date(1995, 6, 15, 0, 0, 0, 0, time.UTC)
		p, err := profilesRepo.Upsert(ctx, "u1", profiles.Patch{
			DisplayName: profiles.OptionalString{Set: true, Value: &name},
			Birthday:    profiles.OptionalDate{Set: true, Value: &b},
		}, now)
		require.NoError(t, err)
		assert.Equal(t, "Ana", *p.DisplayName)
		assert.Equal(t, "1995-06-15", profiles.FormatBirthday(*p.Birthday))

		// solo birthday => display_name intacto
		p, err = profilesRepo.Upsert(ctx, "u1", profiles.Patch{Birthday: profiles.OptionalDate{Set: true}}, now)
		require.NoError(t, err)
		assert.Equal(t, "Ana", *p.DisplayName)
		assert.Nil(t, p.Birthday)

		require.NoError(t, profilesRepo.SetDailyMessage(ctx, "u1", "Have a wonderful day!", now))
		p, err = profilesRepo.GetByUserID(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, "Have a wonderful day!", *p.DailyMessage)
		assert.True(t, p.LastDailyMessageAt.Equal(now))

		// upsert sobre un usuario sin fila la crea
		p, err = profilesRepo.Upsert(ctx, "u9", profiles.Patch{DisplayName: profiles.OptionalString{Set: true, Value: &name}}, now)
		require.NoError(t, err)
		assert.Equal(t, "u9", p.UserID)

		_, err = profilesRepo.GetByUserID(ctx, "nobody")
		assert.ErrorIs(t, err, profiles.ErrNotFound)
	})
}
