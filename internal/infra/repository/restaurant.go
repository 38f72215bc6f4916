package repository

import (
	"context"

	"digital-menu/internal/domain/restaurant"
	"digital-menu/internal/infra"
	"digital-menu/internal/infra/db"
	"digital-menu/internal/pkg/pgconv"
	"digital-menu/internal/usecase/shared"

	"github.com/google/uuid"
)

type RestaurantRepository struct {
	db db.DBTX
}

func NewRestaurantRepository(db db.DBTX) *RestaurantRepository {
	return &RestaurantRepository{db: db}
}

const createRestaurantSQL = `
INSERT INTO restaurants (id, owner_id, slug, name, description_en, description_de, logo_url, hero_image_url, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

func (r *RestaurantRepository) Create(ctx context.Context, rest *restaurant.Restaurant) error {
	_, err := r.db.Exec(ctx, createRestaurantSQL,
		rest.ID(),
		pgconv.UUIDPtrToPgtype(rest.OwnerID()),
		rest.Slug().Value(),
		rest.Name(),
		rest.Description().EN,
		rest.Description().DE,
		pgconv.StringPtrToPgtype(rest.LogoURL()),
		pgconv.StringPtrToPgtype(rest.HeroImageURL()),
		rest.CreatedAt(),
		rest.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create restaurant", err)
	}
	return nil
}

const findRestaurantRefByOwnerSQL = `SELECT id, slug FROM restaurants WHERE owner_id = $1`

func (r *RestaurantRepository) FindRefByOwner(ctx context.Context, ownerID uuid.UUID) (shared.RestaurantRef, error) {
	var ref shared.RestaurantRef
	err := r.db.QueryRow(ctx, findRestaurantRefByOwnerSQL, ownerID).Scan(&ref.ID, &ref.Slug)
	if err != nil {
		return shared.RestaurantRef{}, infra.WrapRepoErr("failed to find restaurant by owner", err)
	}
	return ref, nil
}

const touchRestaurantSQL = `UPDATE restaurants SET updated_at = now() WHERE id = $1`

func (r *RestaurantRepository) Touch(ctx context.Context, id uuid.UUID) error {
	if _, err := r.db.Exec(ctx, touchRestaurantSQL, id); err != nil {
		return infra.WrapRepoErr("failed to touch restaurant", err)
	}
	return nil
}
