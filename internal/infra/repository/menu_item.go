package repository

import (
	"context"

	"digital-menu/internal/domain/menu"
	"digital-menu/internal/infra"
	"digital-menu/internal/infra/db"
	"digital-menu/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type MenuItemRepository struct {
	db db.DBTX
}

func NewMenuItemRepository(db db.DBTX) *MenuItemRepository {
	return &MenuItemRepository{db: db}
}

// Returns no row when the category is not part of the restaurant.
const nextItemSortOrderSQL = `
SELECT COALESCE(MAX(i.sort_order) + 1, 0)
FROM menu_categories c
LEFT JOIN menu_items i ON i.category_id = c.id
WHERE c.id = $1 AND c.restaurant_id = $2
GROUP BY c.id`

func (r *MenuItemRepository) NextSortOrder(ctx context.Context, restaurantID, categoryID uuid.UUID) (int, error) {
	var next int
	if err := r.db.QueryRow(ctx, nextItemSortOrderSQL, categoryID, restaurantID).Scan(&next); err != nil {
		return 0, infra.WrapRepoErr("failed to compute item sort order", err)
	}
	return next, nil
}

const createMenuItemSQL = `
INSERT INTO menu_items (
	id, category_id, name_en, name_de, description_en, description_de, price, image_url,
	is_vegetarian, is_vegan, spice_level, meat_type, is_sold_out, sort_order, created_at)
SELECT $1, c.id, $3, $4, $5, $6, $7::numeric, $8, $9, $10, $11, $12, $13, $14, $15
FROM menu_categories c
WHERE c.id = $2 AND c.restaurant_id = $16`

func (r *MenuItemRepository) Create(ctx context.Context, restaurantID uuid.UUID, it *menu.Item) error {
	tag, err := r.db.Exec(ctx, createMenuItemSQL,
		it.ID(),
		it.CategoryID(),
		it.Name().EN,
		it.Name().DE,
		it.Description().EN,
		it.Description().DE,
		it.Price().String(),
		pgconv.StringPtrToPgtype(it.ImageURL()),
		it.IsVegetarian(),
		it.IsVegan(),
		it.SpiceLevel().Value(),
		meatTypeToPgtype(it.MeatType()),
		it.IsSoldOut(),
		it.SortOrder(),
		it.CreatedAt(),
		restaurantID,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create menu item", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("category not found", nil, infra.KindNotFound)
	}
	return nil
}

const updateMenuItemSQL = `
UPDATE menu_items i
SET name_en = $3, name_de = $4, description_en = $5, description_de = $6, price = $7::numeric,
	image_url = $8, is_vegetarian = $9, is_vegan = $10, spice_level = $11, meat_type = $12,
	is_sold_out = $13, sort_order = COALESCE($14, i.sort_order)
FROM menu_categories c
WHERE i.id = $1 AND i.category_id = c.id AND c.restaurant_id = $2`

func (r *MenuItemRepository) Update(ctx context.Context, restaurantID, id uuid.UUID, it *menu.Item, sortOrder *int) error {
	tag, err := r.db.Exec(ctx, updateMenuItemSQL,
		id,
		restaurantID,
		it.Name().EN,
		it.Name().DE,
		it.Description().EN,
		it.Description().DE,
		it.Price().String(),
		pgconv.StringPtrToPgtype(it.ImageURL()),
		it.IsVegetarian(),
		it.IsVegan(),
		it.SpiceLevel().Value(),
		meatTypeToPgtype(it.MeatType()),
		it.IsSoldOut(),
		sortOrder,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update menu item", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("menu item not found", nil, infra.KindNotFound)
	}
	return nil
}

const toggleSoldOutSQL = `
UPDATE menu_items i
SET is_sold_out = NOT i.is_sold_out
FROM menu_categories c
WHERE i.id = $1 AND i.category_id = c.id AND c.restaurant_id = $2
RETURNING i.is_sold_out`

func (r *MenuItemRepository) ToggleSoldOut(ctx context.Context, restaurantID, id uuid.UUID) (bool, error) {
	var soldOut bool
	if err := r.db.QueryRow(ctx, toggleSoldOutSQL, id, restaurantID).Scan(&soldOut); err != nil {
		return false, infra.WrapRepoErr("failed to toggle sold out", err)
	}
	return soldOut, nil
}

func meatTypeToPgtype(m *menu.MeatType) pgtype.Text {
	if m == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: string(*m), Valid: true}
}
