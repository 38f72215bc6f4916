package repository

import (
	"context"

	"digital-menu/internal/domain/menu"
	"digital-menu/internal/infra"
	"digital-menu/internal/infra/db"
	"digital-menu/internal/pkg/i18n"

	"github.com/google/uuid"
)

type CategoryRepository struct {
	db db.DBTX
}

func NewCategoryRepository(db db.DBTX) *CategoryRepository {
	return &CategoryRepository{db: db}
}

const nextCategorySortOrderSQL = `
SELECT COALESCE(MAX(sort_order) + 1, 0) FROM menu_categories WHERE restaurant_id = $1`

func (r *CategoryRepository) NextSortOrder(ctx context.Context, restaurantID uuid.UUID) (int, error) {
	var next int
	if err := r.db.QueryRow(ctx, nextCategorySortOrderSQL, restaurantID).Scan(&next); err != nil {
		return 0, infra.WrapRepoErr("failed to compute category sort order", err)
	}
	return next, nil
}

const createCategorySQL = `
INSERT INTO menu_categories (id, restaurant_id, name_en, name_de, sort_order, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`

func (r *CategoryRepository) Create(ctx context.Context, c *menu.Category) error {
	_, err := r.db.Exec(ctx, createCategorySQL,
		c.ID(), c.RestaurantID(), c.Name().EN, c.Name().DE, c.SortOrder(), c.CreatedAt())
	if err != nil {
		return infra.WrapRepoErr("failed to create category", err)
	}
	return nil
}

const updateCategorySQL = `
UPDATE menu_categories
SET name_en = $3, name_de = $4, sort_order = COALESCE($5, sort_order)
WHERE id = $1 AND restaurant_id = $2`

func (r *CategoryRepository) Update(ctx context.Context, restaurantID, id uuid.UUID, name i18n.Text, sortOrder *int) error {
	tag, err := r.db.Exec(ctx, updateCategorySQL, id, restaurantID, name.EN, name.DE, sortOrder)
	if err != nil {
		return infra.WrapRepoErr("failed to update category", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("category not found", nil, infra.KindNotFound)
	}
	return nil
}

const deleteCategorySQL = `DELETE FROM menu_categories WHERE id = $1 AND restaurant_id = $2`

func (r *CategoryRepository) Delete(ctx context.Context, restaurantID, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, deleteCategorySQL, id, restaurantID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete category", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("category not found", nil, infra.KindNotFound)
	}
	return nil
}
