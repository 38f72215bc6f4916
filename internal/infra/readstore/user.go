package readstore

import (
	"context"

	"digital-menu/internal/infra"
	"digital-menu/internal/infra/db"
	"digital-menu/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(db db.DBTX) *UserReadStore {
	return &UserReadStore{db: db}
}

const findUserByIDSQL = `SELECT id, email, role, is_active FROM users WHERE id = $1`

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	var v queries.AuthorizedUserView
	err := r.db.QueryRow(ctx, findUserByIDSQL, id).Scan(&v.ID, &v.Email, &v.Role, &v.IsActive)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return &v, nil
}

const findUserByEmailSQL = `SELECT id, email, role, is_active, password_hash FROM users WHERE lower(email) = lower($1)`

// FindByEmail also returns the password hash for credential checks.
func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	var (
		v    queries.AuthorizedUserView
		hash string
	)
	err := r.db.QueryRow(ctx, findUserByEmailSQL, email).Scan(&v.ID, &v.Email, &v.Role, &v.IsActive, &hash)
	if err != nil {
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	return &v, hash, nil
}
