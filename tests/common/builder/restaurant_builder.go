//go:build unit || e2e

package builder

import (
	"time"

	"digital-menu/internal/domain/restaurant"
	reqdto "digital-menu/internal/handler/dto/request"
	"digital-menu/internal/pkg/i18n"
	"digital-menu/internal/usecase/queries"

	"github.com/google/uuid"
)

type RestaurantBuilder struct {
	ID             uuid.UUID
	OwnerID        *uuid.UUID
	Slug           string
	Name           string
	DescriptionEN  string
	DescriptionDE  string
	LogoURL        *string
	HeroImageURL   *string
	WelcomeEN      string
	WelcomeDE      string
	PrimaryColor   string
	SecondaryColor string
	AccentColor    string
	FontStyle      string
	Categories     []queries.CategoryView
	Offers         []queries.OfferView
	CreatedAt      time.Time
}

// NewRestaurantBuilder defaults to the demo restaurant with the default customization.
func NewRestaurantBuilder() *RestaurantBuilder {
	ownerID := uuid.New()
	return &RestaurantBuilder{
		ID:             uuid.New(),
		OwnerID:        &ownerID,
		Slug:           "bella-vista",
		Name:           "Bella Vista",
		DescriptionEN:  "Italian kitchen",
		DescriptionDE:  "Italienische Küche",
		WelcomeEN:      restaurant.DefaultWelcomeText.EN,
		WelcomeDE:      restaurant.DefaultWelcomeText.DE,
		PrimaryColor:   restaurant.DefaultPrimaryColor,
		SecondaryColor: restaurant.DefaultSecondaryColor,
		AccentColor:    restaurant.DefaultAccentColor,
		FontStyle:      string(restaurant.DefaultFontStyle),
		CreatedAt:      time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (b *RestaurantBuilder) With(mutate func(*RestaurantBuilder)) *RestaurantBuilder {
	mutate(b)
	return b
}

func (b *RestaurantBuilder) BuildParams() restaurant.Params {
	return restaurant.Params{
		Slug:         b.Slug,
		Name:         b.Name,
		Description:  i18n.Text{EN: b.DescriptionEN, DE: b.DescriptionDE},
		LogoURL:      b.LogoURL,
		HeroImageURL: b.HeroImageURL,
	}
}

func (b *RestaurantBuilder) BuildCustomizationParams() restaurant.CustomizationParams {
	return restaurant.CustomizationParams{
		WelcomeText:    i18n.Text{EN: b.WelcomeEN, DE: b.WelcomeDE},
		PrimaryColor:   b.PrimaryColor,
		SecondaryColor: b.SecondaryColor,
		AccentColor:    b.AccentColor,
		FontStyle:      b.FontStyle,
	}
}

func (b *RestaurantBuilder) BuildDomain() (*restaurant.Restaurant, error) {
	return restaurant.NewRestaurant(b.OwnerID, b.BuildParams(), b.CreatedAt)
}

func (b *RestaurantBuilder) BuildCustomization() (*restaurant.Customization, error) {
	return restaurant.NewCustomization(b.ID, b.BuildCustomizationParams(), b.CreatedAt)
}

func (b *RestaurantBuilder) BuildView() *queries.RestaurantView {
	categories := b.Categories
	if categories == nil {
		categories = []queries.CategoryView{}
	}
	offers := b.Offers
	if offers == nil {
		offers = []queries.OfferView{}
	}
	return &queries.RestaurantView{
		ID:           b.ID,
		OwnerID:      b.OwnerID,
		Slug:         b.Slug,
		Name:         b.Name,
		Description:  i18n.Text{EN: b.DescriptionEN, DE: b.DescriptionDE},
		LogoURL:      b.LogoURL,
		HeroImageURL: b.HeroImageURL,
		Customization: queries.CustomizationView{
			WelcomeText:    i18n.Text{EN: b.WelcomeEN, DE: b.WelcomeDE},
			PrimaryColor:   b.PrimaryColor,
			SecondaryColor: b.SecondaryColor,
			AccentColor:    b.AccentColor,
			FontStyle:      b.FontStyle,
			UpdatedAt:      b.CreatedAt,
		},
		Categories: categories,
		Offers:     offers,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.CreatedAt,
	}
}

func (b *RestaurantBuilder) BuildRequestDTO() reqdto.CreateRestaurantRequest {
	return reqdto.CreateRestaurantRequest{
		Slug:         b.Slug,
		Name:         b.Name,
		Description:  i18n.Text{EN: b.DescriptionEN, DE: b.DescriptionDE},
		LogoURL:      b.LogoURL,
		HeroImageURL: b.HeroImageURL,
	}
}

func (b *RestaurantBuilder) BuildCustomizationDTO() reqdto.CustomizationRequest {
	return reqdto.CustomizationRequest{
		WelcomeText:    i18n.Text{EN: b.WelcomeEN, DE: b.WelcomeDE},
		PrimaryColor:   b.PrimaryColor,
		SecondaryColor: b.SecondaryColor,
		AccentColor:    b.AccentColor,
		FontStyle:      b.FontStyle,
	}
}

// Fluent builder methods
func (b *RestaurantBuilder) WithSlug(slug string) *RestaurantBuilder {
	b.Slug = slug
	return b
}

func (b *RestaurantBuilder) WithName(name string) *RestaurantBuilder {
	b.Name = name
	return b
}

func (b *RestaurantBuilder) WithColors(primary, secondary, accent string) *RestaurantBuilder {
	b.PrimaryColor = primary
	b.SecondaryColor = secondary
	b.AccentColor = accent
	return b
}

func (b *RestaurantBuilder) WithFontStyle(f string) *RestaurantBuilder {
	b.FontStyle = f
	return b
}

func (b *RestaurantBuilder) WithOffers(offers ...queries.OfferView) *RestaurantBuilder {
	b.Offers = offers
	return b
}

func (b *RestaurantBuilder) WithCategories(categories ...queries.CategoryView) *RestaurantBuilder {
	b.Categories = categories
	return b
}
