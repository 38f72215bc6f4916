package shared

import (
	"context"

	"digital-menu/internal/domain/menu"
	"digital-menu/internal/domain/offer"
	"digital-menu/internal/domain/restaurant"
	"digital-menu/internal/domain/user"
	"digital-menu/internal/infra/db"
	"digital-menu/internal/pkg/i18n"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
}

type Tx interface {
	Users() UserRepository
	Restaurants() RestaurantRepository
	Customizations() CustomizationRepository
	Categories() CategoryRepository
	MenuItems() MenuItemRepository
	Offers() OfferRepository
	DB() db.DBTX
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	UpdateLastLogin(ctx context.Context, userID uuid.UUID) error
}

type RestaurantRepository interface {
	Create(ctx context.Context, r *restaurant.Restaurant) error
	FindRefByOwner(ctx context.Context, ownerID uuid.UUID) (RestaurantRef, error)
	Touch(ctx context.Context, id uuid.UUID) error
}

type CustomizationRepository interface {
	Upsert(ctx context.Context, c *restaurant.Customization) error
}

// Every update and delete below is scoped by restaurantID; a row outside the
// scope is reported as not found.

type CategoryRepository interface {
	NextSortOrder(ctx context.Context, restaurantID uuid.UUID) (int, error)
	Create(ctx context.Context, c *menu.Category) error
	Update(ctx context.Context, restaurantID, id uuid.UUID, name i18n.Text, sortOrder *int) error
	Delete(ctx context.Context, restaurantID, id uuid.UUID) error
}

type MenuItemRepository interface {
	NextSortOrder(ctx context.Context, restaurantID, categoryID uuid.UUID) (int, error)
	Create(ctx context.Context, restaurantID uuid.UUID, it *menu.Item) error
	Update(ctx context.Context, restaurantID, id uuid.UUID, it *menu.Item, sortOrder *int) error
	ToggleSoldOut(ctx context.Context, restaurantID, id uuid.UUID) (bool, error)
}

type OfferRepository interface {
	Create(ctx context.Context, o *offer.Offer) error
	Update(ctx context.Context, restaurantID, id uuid.UUID, o *offer.Offer) error
	Delete(ctx context.Context, restaurantID, id uuid.UUID) error
}
