package readstore

import (
	"context"

	"digital-menu/internal/infra"
	"digital-menu/internal/infra/db"
	"digital-menu/internal/pkg/pgconv"
	"digital-menu/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"golang.org/x/sync/errgroup"
)

// RestaurantReadStore assembles the full restaurant aggregate. The child
// collections are loaded concurrently, so db must be a pool, not a transaction.
type RestaurantReadStore struct {
	db db.DBTX
}

func NewRestaurantReadStore(db db.DBTX) *RestaurantReadStore {
	return &RestaurantReadStore{db: db}
}

const restaurantColumns = `
SELECT id, owner_id, slug, name, description_en, description_de, logo_url, hero_image_url, created_at, updated_at
FROM restaurants`

const (
	findRestaurantBySlugSQL  = restaurantColumns + ` WHERE slug = $1`
	findRestaurantByOwnerSQL = restaurantColumns + ` WHERE owner_id = $1`
)

func (r *RestaurantReadStore) FindBySlug(ctx context.Context, slug string) (*queries.RestaurantView, error) {
	v, err := r.findRestaurant(ctx, findRestaurantBySlugSQL, slug)
	if err != nil {
		return nil, err
	}
	return v, r.loadChildren(ctx, v)
}

func (r *RestaurantReadStore) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*queries.RestaurantView, error) {
	v, err := r.findRestaurant(ctx, findRestaurantByOwnerSQL, ownerID)
	if err != nil {
		return nil, err
	}
	return v, r.loadChildren(ctx, v)
}

func (r *RestaurantReadStore) findRestaurant(ctx context.Context, query string, arg any) (*queries.RestaurantView, error) {
	var (
		v                     queries.RestaurantView
		ownerID               pgtype.UUID
		logoURL, heroImageURL pgtype.Text
	)
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&v.ID, &ownerID, &v.Slug, &v.Name, &v.Description.EN, &v.Description.DE,
		&logoURL, &heroImageURL, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find restaurant", err)
	}
	v.OwnerID = pgconv.UUIDPtrFromPgtype(ownerID)
	v.LogoURL = pgconv.StringPtrFromPgtype(logoURL)
	v.HeroImageURL = pgconv.StringPtrFromPgtype(heroImageURL)
	return &v, nil
}

func (r *RestaurantReadStore) loadChildren(ctx context.Context, v *queries.RestaurantView) error {
	g, ctx := errgroup.WithContext(ctx)

	var (
		customization queries.CustomizationView
		categories    []queries.CategoryView
		offers        []queries.OfferView
	)
	g.Go(func() (err error) {
		customization, err = r.findCustomization(ctx, v.ID)
		return err
	})
	g.Go(func() (err error) {
		categories, err = r.findCategories(ctx, v.ID)
		return err
	})
	g.Go(func() (err error) {
		offers, err = r.findOffers(ctx, v.ID)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	v.Customization = customization
	v.Categories = categories
	v.Offers = offers
	return nil
}

const findCustomizationSQL = `
SELECT welcome_text_en, welcome_text_de, primary_color, secondary_color, accent_color, font_style, updated_at
FROM restaurant_customizations WHERE restaurant_id = $1`

func (r *RestaurantReadStore) findCustomization(ctx context.Context, restaurantID uuid.UUID) (queries.CustomizationView, error) {
	var c queries.CustomizationView
	err := r.db.QueryRow(ctx, findCustomizationSQL, restaurantID).Scan(
		&c.WelcomeText.EN, &c.WelcomeText.DE, &c.PrimaryColor, &c.SecondaryColor, &c.AccentColor, &c.FontStyle, &c.UpdatedAt,
	)
	if err != nil {
		return queries.CustomizationView{}, infra.WrapRepoErr("failed to find customization", err)
	}
	return c, nil
}

const findCategoriesSQL = `
SELECT id, restaurant_id, name_en, name_de, sort_order, created_at
FROM menu_categories WHERE restaurant_id = $1
ORDER BY sort_order, created_at`

const findItemsSQL = `
SELECT i.id, i.category_id, i.name_en, i.name_de, i.description_en, i.description_de, i.price::text,
	i.image_url, i.is_vegetarian, i.is_vegan, i.spice_level, i.meat_type, i.is_sold_out, i.sort_order, i.created_at
FROM menu_items i
JOIN menu_categories c ON c.id = i.category_id
WHERE c.restaurant_id = $1
ORDER BY i.sort_order, i.created_at`

func (r *RestaurantReadStore) findCategories(ctx context.Context, restaurantID uuid.UUID) ([]queries.CategoryView, error) {
	rows, err := r.db.Query(ctx, findCategoriesSQL, restaurantID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list categories", err)
	}
	categories, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (queries.CategoryView, error) {
		var c queries.CategoryView
		err := row.Scan(&c.ID, &c.RestaurantID, &c.Name.EN, &c.Name.DE, &c.SortOrder, &c.CreatedAt)
		c.Items = []queries.MenuItemView{}
		return c, err
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan categories", err)
	}

	rows, err = r.db.Query(ctx, findItemsSQL, restaurantID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list menu items", err)
	}
	items, err := pgx.CollectRows(rows, scanMenuItem)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan menu items", err)
	}

	index := make(map[uuid.UUID]int, len(categories))
	for i, c := range categories {
		index[c.ID] = i
	}
	for _, it := range items {
		if i, ok := index[it.CategoryID]; ok {
			categories[i].Items = append(categories[i].Items, it)
		}
	}
	return categories, nil
}

func scanMenuItem(row pgx.CollectableRow) (queries.MenuItemView, error) {
	var (
		it       queries.MenuItemView
		price    string
		imageURL pgtype.Text
		meatType pgtype.Text
	)
	err := row.Scan(
		&it.ID, &it.CategoryID, &it.Name.EN, &it.Name.DE, &it.Description.EN, &it.Description.DE, &price,
		&imageURL, &it.IsVegetarian, &it.IsVegan, &it.SpiceLevel, &meatType, &it.IsSoldOut, &it.SortOrder, &it.CreatedAt,
	)
	if err != nil {
		return it, err
	}
	it.Price, err = pgconv.DecimalFromText(price)
	it.ImageURL = pgconv.StringPtrFromPgtype(imageURL)
	it.MeatType = pgconv.StringPtrFromPgtype(meatType)
	return it, err
}

const findOffersSQL = `
SELECT id, restaurant_id, title_en, title_de, description_en, description_de, discount_percentage,
	valid_days, valid_hours_start, valid_hours_end, is_active, created_at
FROM offers WHERE restaurant_id = $1
ORDER BY created_at, id`

func (r *RestaurantReadStore) findOffers(ctx context.Context, restaurantID uuid.UUID) ([]queries.OfferView, error) {
	rows, err := r.db.Query(ctx, findOffersSQL, restaurantID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list offers", err)
	}
	offers, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (queries.OfferView, error) {
		var (
			o    queries.OfferView
			days []int32
		)
		err := row.Scan(
			&o.ID, &o.RestaurantID, &o.Title.EN, &o.Title.DE, &o.Description.EN, &o.Description.DE,
			&o.DiscountPercentage, &days, &o.ValidHours.Start, &o.ValidHours.End, &o.IsActive, &o.CreatedAt,
		)
		o.ValidDays = pgconv.Int32sToInts(days)
		return o, err
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan offers", err)
	}
	return offers, nil
}
