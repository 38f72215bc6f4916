package repository

import (
	"context"

	"digital-menu/internal/domain/offer"
	"digital-menu/internal/infra"
	"digital-menu/internal/infra/db"
	"digital-menu/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type OfferRepository struct {
	db db.DBTX
}

func NewOfferRepository(db db.DBTX) *OfferRepository {
	return &OfferRepository{db: db}
}

const createOfferSQL = `
INSERT INTO offers (
	id, restaurant_id, title_en, title_de, description_en, description_de,
	discount_percentage, valid_days, valid_hours_start, valid_hours_end, is_active, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

func (r *OfferRepository) Create(ctx context.Context, o *offer.Offer) error {
	_, err := r.db.Exec(ctx, createOfferSQL,
		o.ID(),
		o.RestaurantID(),
		o.Title().EN,
		o.Title().DE,
		o.Description().EN,
		o.Description().DE,
		o.Discount().Value(),
		pgconv.IntsToInt32s(o.ValidDays().Values()),
		o.ValidHours().Start(),
		o.ValidHours().End(),
		o.IsActive(),
		o.CreatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create offer", err)
	}
	return nil
}

const updateOfferSQL = `
UPDATE offers
SET title_en = $3, title_de = $4, description_en = $5, description_de = $6,
	discount_percentage = $7, valid_days = $8, valid_hours_start = $9, valid_hours_end = $10,
	is_active = $11
WHERE id = $1 AND restaurant_id = $2`

func (r *OfferRepository) Update(ctx context.Context, restaurantID, id uuid.UUID, o *offer.Offer) error {
	tag, err := r.db.Exec(ctx, updateOfferSQL,
		id,
		restaurantID,
		o.Title().EN,
		o.Title().DE,
		o.Description().EN,
		o.Description().DE,
		o.Discount().Value(),
		pgconv.IntsToInt32s(o.ValidDays().Values()),
		o.ValidHours().Start(),
		o.ValidHours().End(),
		o.IsActive(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update offer", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("offer not found", nil, infra.KindNotFound)
	}
	return nil
}

const deleteOfferSQL = `DELETE FROM offers WHERE id = $1 AND restaurant_id = $2`

func (r *OfferRepository) Delete(ctx context.Context, restaurantID, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, deleteOfferSQL, id, restaurantID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete offer", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("offer not found", nil, infra.KindNotFound)
	}
	return nil
}
