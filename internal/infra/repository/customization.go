package repository

import (
	"context"

	"digital-menu/internal/domain/restaurant"
	"digital-menu/internal/infra"
	"digital-menu/internal/infra/db"
)

type CustomizationRepository struct {
	db db.DBTX
}

func NewCustomizationRepository(db db.DBTX) *CustomizationRepository {
	return &CustomizationRepository{db: db}
}

const upsertCustomizationSQL = `
INSERT INTO restaurant_customizations
	(restaurant_id, welcome_text_en, welcome_text_de, primary_color, secondary_color, accent_color, font_style, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (restaurant_id) DO UPDATE SET
	welcome_text_en = EXCLUDED.welcome_text_en,
	welcome_text_de = EXCLUDED.welcome_text_de,
	primary_color   = EXCLUDED.primary_color,
	secondary_color = EXCLUDED.secondary_color,
	accent_color    = EXCLUDED.accent_color,
	font_style      = EXCLUDED.font_style,
	updated_at      = EXCLUDED.updated_at`

func (r *CustomizationRepository) Upsert(ctx context.Context, c *restaurant.Customization) error {
	_, err := r.db.Exec(ctx, upsertCustomizationSQL,
		c.RestaurantID(),
		c.WelcomeText().EN,
		c.WelcomeText().DE,
		c.PrimaryColor().Value(),
		c.SecondaryColor().Value(),
		c.AccentColor().Value(),
		string(c.FontStyle()),
		c.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to save customization", err)
	}
	return nil
}
