package postgres

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"penguin-pet/internal/domain/profiles"

	sq "github.com/Masterminds/squirrel"
)

var profileColumns = []string{
	"user_id", "display_name", "birthday",
	"last_daily_message_at", "daily_message",
	"created_at", "updated_at",
}

type ProfilesRepo struct {
	db *sql.DB
}

func NewProfilesRepo(db *sql.DB) *ProfilesRepo {
	return &ProfilesRepo{db: db}
}

var _ profiles.Repository = (*ProfilesRepo)(nil)

func (r *ProfilesRepo) Create(ctx context.Context, p profiles.Profile) error {
	query, args, err := psql.Insert("profiles").
		Columns(profileColumns...).
		Values(p.UserID, p.DisplayName, toNullDate(p.Birthday), p.LastDailyMessageAt, p.DailyMessage, p.CreatedAt, p.UpdatedAt).
		ToSql()
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, query, args...)
	return mapError(err, nil, ErrAlreadyExists)
}

func (r *ProfilesRepo) GetByUserID(ctx context.Context, userID string) (profiles.Profile, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return profiles.Profile{}, profiles.ErrNotFound
	}

	query, args, err := psql.Select(profileColumns...).
		From("profiles").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return profiles.Profile{}, err
	}
	p, err := scanProfile(r.db.QueryRowContext(ctx, query, args...))
	return p, mapError(err, profiles.ErrNotFound, nil)
}

// Upsert: una sola sentencia INSERT ... ON CONFLICT; solo se pisan las columnas presentes en el patch.
func (r *ProfilesRepo) Upsert(ctx context.Context, userID string, patch profiles.Patch, now time.Time) (profiles.Profile, error) {
	var displayName *string
	var birthday sql.NullTime
	sets := []string{"updated_at = EXCLUDED.updated_at"}

	if patch.DisplayName.Set {
		displayName = patch.DisplayName.Value
		sets = append(sets, "display_name = EXCLUDED.display_name")
	}
	if patch.Birthday.Set {
		birthday = toNullDate(patch.Birthday.Value)
		sets = append(sets, "birthday = EXCLUDED.birthday")
	}

	query, args, err := psql.Insert("profiles").
		Columns("user_id", "display_name", "birthday", "created_at", "updated_at").
		Values(userID, displayName, birthday, now, now).
		Suffix("ON CONFLICT (user_id) DO UPDATE SET " + strings.Join(sets, ", ") +
			" RETURNING " + strings.Join(profileColumns, ", ")).
		ToSql()
	if err != nil {
		return profiles.Profile{}, err
	}
	return scanProfile(r.db.QueryRowContext(ctx, query, args...))
}

func (r *ProfilesRepo) SetDailyMessage(ctx context.Context, userID, message string, at time.Time) error {
	query, args, err := psql.Insert("profiles").
		Columns("user_id", "daily_message", "last_daily_message_at", "created_at", "updated_at").
		Values(userID, message, at, at, at).
		Suffix("ON CONFLICT (user_id) DO UPDATE SET " +
			"daily_message = EXCLUDED.daily_message, " +
			"last_daily_message_at = EXCLUDED.last_daily_message_at, " +
			"updated_at = EXCLUDED.updated_at").
		ToSql()
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, query, args...)
	return err
}

func scanProfile(row *sql.Row) (profiles.Profile, error) {
	var (
		p        profiles.Profile
		name     sql.NullString
		birthday sql.NullTime
		lastAt   sql.NullTime
		msg      sql.NullString
	)
	if err := row.Scan(&p.UserID, &name, &birthday, &lastAt, &msg, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return profiles.Profile{}, err
	}
	p.DisplayName = nullStringPtr(name)
	p.Birthday = nullDatePtr(birthday)
	p.LastDailyMessageAt = nullTimePtr(lastAt)
	p.DailyMessage = nullStringPtr(msg)
	return p, nil
}

// birthday es DATE, lo pasamos como NullTime para simplificar
func toNullDate(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{Valid: false}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

// ojo: DATE vuelve como medianoche; lo normalizamos a UTC sin correr el día.
func nullDatePtr(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}
	y, m, d := nt.Time.Date()
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}
