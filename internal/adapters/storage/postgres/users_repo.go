package postgres

import (
	"context"
	"database/sql"

	"penguin-pet/internal/domain/accounts"

	sq "github.com/Masterminds/squirrel"
)

type UsersRepo struct {
	db *sql.DB
}

func NewUsersRepo(db *sql.DB) *UsersRepo {
	return &UsersRepo{db: db}
}

var _ accounts.Repository = (*UsersRepo)(nil)

func (r *UsersRepo) Create(ctx context.Context, u accounts.User) error {
	query, args, err := psql.Insert("users").
		Columns("id", "email", "password_hash", "created_at").
		Values(u.ID, u.Email, u.PasswordHash, u.CreatedAt).
		ToSql()
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, query, args...)
	return mapError(err, nil, accounts.ErrAlreadyExists)
}

func (r *UsersRepo) GetByEmail(ctx context.Context, email string) (accounts.User, error) {
	query, args, err := psql.Select("id", "email", "password_hash", "created_at").
		From("users").
		Where(sq.Eq{"email": email}).
		ToSql()
	if err != nil {
		return accounts.User{}, err
	}

	var u accounts.User
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		return accounts.User{}, mapError(err, accounts.ErrNotFound, nil)
	}
	return u, nil
}
