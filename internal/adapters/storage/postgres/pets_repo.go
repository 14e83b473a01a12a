package postgres

import (
	"context"
	"database/sql"
	"strings"

	"penguin-pet/internal/domain/pets"

	sq "github.com/Masterminds/squirrel"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var petColumns = []string{
	"user_id", "hunger", "cleanliness",
	"last_fed_at", "last_bath_at", "pet_name",
	"created_at", "updated_at",
}

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

var _ pets.Repository = (*PetsRepo)(nil)

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) error {
	query, args, err := psql.Insert("pets").
		Columns(petColumns...).
		Values(p.UserID, p.Hunger, p.Cleanliness, p.LastFedAt, p.LastBathAt, p.PetName, p.CreatedAt, p.UpdatedAt).
		ToSql()
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, query, args...)
	return mapError(err, nil, ErrAlreadyExists)
}

func (r *PetsRepo) Update(ctx context.Context, p pets.Pet) error {
	query, args, err := psql.Update("pets").
		Set("hunger", p.Hunger).
		Set("cleanliness", p.Cleanliness).
		Set("last_fed_at", p.LastFedAt).
		Set("last_bath_at", p.LastBathAt).
		Set("pet_name", p.PetName).
		Set("updated_at", p.UpdatedAt).
		Where(sq.Eq{"user_id": p.UserID}).
		ToSql()
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return pets.ErrNotFound
	}
	return nil
}

func (r *PetsRepo) GetByUserID(ctx context.Context, userID string) (pets.Pet, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return pets.Pet{}, pets.ErrNotFound
	}

	query, args, err := psql.Select(petColumns...).
		From("pets").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return pets.Pet{}, err
	}

	var (
		p             pets.Pet
		fedAt, bathAt sql.NullTime
		name          sql.NullString
	)
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&p.UserID,
		&p.Hunger,
		&p.Cleanliness,
		&fedAt,
		&bathAt,
		&name,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return pets.Pet{}, mapError(err, pets.ErrNotFound, nil)
	}

	p.LastFedAt = nullTimePtr(fedAt)
	p.LastBathAt = nullTimePtr(bathAt)
	p.PetName = nullStringPtr(name)
	return p, nil
}
