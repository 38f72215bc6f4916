package repository

import (
	"context"

	"digital-menu/internal/domain/user"
	"digital-menu/internal/infra"
	"digital-menu/internal/infra/db"

	"github.com/google/uuid"
)

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(db db.DBTX) *UserRepository {
	return &UserRepository{db: db}
}

const createUserSQL = `
INSERT INTO users (id, email, password_hash, role, is_active, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, now(), now())`

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	_, err := r.db.Exec(ctx, createUserSQL,
		u.ID(), u.Email().Value(), u.PasswordHash(), u.Role().String(), u.IsActive())
	if err != nil {
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}

const updateLastLoginSQL = `UPDATE users SET last_login = now(), updated_at = now() WHERE id = $1`

func (r *UserRepository) UpdateLastLogin(ctx context.Context, userID uuid.UUID) error {
	tag, err := r.db.Exec(ctx, updateLastLoginSQL, userID)
	if err != nil {
		return infra.WrapRepoErr("failed to update user last login", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}
