// Package menusync keeps a local copy of one restaurant aggregate in step
// with the server: every successful mutation is followed by a full refetch.
package menusync

import (
	"context"

	reqdto "digital-menu/internal/handler/dto/request"
	"digital-menu/internal/usecase/queries"

	"github.com/google/uuid"
)

// DataService is the remote restaurant API. Mutations report only success;
// the store reloads the aggregate afterwards.
type DataService interface {
	GetRestaurantBySlug(ctx context.Context, slug string) (*queries.RestaurantView, error)
	GetOwnedRestaurant(ctx context.Context) (*queries.RestaurantView, error)
	CreateRestaurant(ctx context.Context, req reqdto.CreateRestaurantRequest) error
	UpdateCustomization(ctx context.Context, req reqdto.CustomizationRequest) error

	CreateCategory(ctx context.Context, req reqdto.CategoryRequest) error
	UpdateCategory(ctx context.Context, id uuid.UUID, req reqdto.CategoryRequest) error
	DeleteCategory(ctx context.Context, id uuid.UUID) error

	CreateMenuItem(ctx context.Context, categoryID uuid.UUID, req reqdto.MenuItemRequest) error
	UpdateMenuItem(ctx context.Context, id uuid.UUID, req reqdto.MenuItemRequest) error
	ToggleSoldOut(ctx context.Context, id uuid.UUID) (bool, error)

	CreateOffer(ctx context.Context, req reqdto.OfferRequest) error
	UpdateOffer(ctx context.Context, id uuid.UUID, req reqdto.OfferRequest) error
	DeleteOffer(ctx context.Context, id uuid.UUID) error
}

type Session struct {
	UserID      uuid.UUID
	Email       string
	Role        string
	AccessToken string
}

type AuthService interface {
	SignUp(ctx context.Context, email, password string) (*Session, error)
	SignIn(ctx context.Context, email, password string) (*Session, error)
	SignOut(ctx context.Context) error
	CurrentSession(ctx context.Context) (*Session, error)
}
