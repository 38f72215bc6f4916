package queries

import (
	"time"

	"digital-menu/internal/domain/offer"
	"digital-menu/internal/pkg/i18n"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RestaurantView is the full aggregate served to customers and owners.
// Categories, items and offers are ordered the way the menu renders them.
type RestaurantView struct {
	ID            uuid.UUID         `json:"id"`
	OwnerID       *uuid.UUID        `json:"owner_id,omitempty"`
	Slug          string            `json:"slug"`
	Name          string            `json:"name"`
	Description   i18n.Text         `json:"description"`
	LogoURL       *string           `json:"logo_url,omitempty"`
	HeroImageURL  *string           `json:"hero_image_url,omitempty"`
	Customization CustomizationView `json:"customization"`
	Categories    []CategoryView    `json:"categories"`
	Offers        []OfferView       `json:"offers"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

// OfferDomains converts the stored offers for evaluation and the carousel.
func (v *RestaurantView) OfferDomains() []*offer.Offer {
	out := make([]*offer.Offer, 0, len(v.Offers))
	for _, o := range v.Offers {
		out = append(out, o.ToDomain())
	}
	return out
}

type CustomizationView struct {
	WelcomeText    i18n.Text `json:"welcome_text"`
	PrimaryColor   string    `json:"primary_color"`
	SecondaryColor string    `json:"secondary_color"`
	AccentColor    string    `json:"accent_color"`
	FontStyle      string    `json:"font_style"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type CategoryView struct {
	ID           uuid.UUID      `json:"id"`
	RestaurantID uuid.UUID      `json:"restaurant_id"`
	Name         i18n.Text      `json:"name"`
	SortOrder    int            `json:"sort_order"`
	Items        []MenuItemView `json:"items"`
	CreatedAt    time.Time      `json:"created_at"`
}

type MenuItemView struct {
	ID           uuid.UUID       `json:"id"`
	CategoryID   uuid.UUID       `json:"category_id"`
	Name         i18n.Text       `json:"name"`
	Description  i18n.Text       `json:"description"`
	Price        decimal.Decimal `json:"price"`
	ImageURL     *string         `json:"image_url,omitempty"`
	IsVegetarian bool            `json:"is_vegetarian"`
	IsVegan      bool            `json:"is_vegan"`
	SpiceLevel   int             `json:"spice_level"`
	MeatType     *string         `json:"meat_type,omitempty"`
	IsSoldOut    bool            `json:"is_sold_out"`
	SortOrder    int             `json:"sort_order"`
	CreatedAt    time.Time       `json:"created_at"`
}

type HoursView struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type OfferView struct {
	ID                 uuid.UUID `json:"id"`
	RestaurantID       uuid.UUID `json:"restaurant_id"`
	Title              i18n.Text `json:"title"`
	Description        i18n.Text `json:"description"`
	DiscountPercentage int       `json:"discount_percentage"`
	ValidDays          []int     `json:"valid_days"`
	ValidHours         HoursView `json:"valid_hours"`
	IsActive           bool      `json:"is_active"`
	CreatedAt          time.Time `json:"created_at"`
}

func (v OfferView) ToDomain() *offer.Offer {
	return offer.Reconstruct(v.ID, v.RestaurantID, offer.Params{
		Title:              v.Title,
		Description:        v.Description,
		DiscountPercentage: v.DiscountPercentage,
		ValidDays:          v.ValidDays,
		ValidHoursStart:    v.ValidHours.Start,
		ValidHoursEnd:      v.ValidHours.End,
		IsActive:           v.IsActive,
	}, v.CreatedAt)
}

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}
