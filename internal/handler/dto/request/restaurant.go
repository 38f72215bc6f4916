package request

import (
	"digital-menu/internal/domain/restaurant"
	"digital-menu/internal/pkg/i18n"
)

type CreateRestaurantRequest struct {
	Slug         string    `json:"slug" binding:"required"`
	Name         string    `json:"name" binding:"required,max=200"`
	Description  i18n.Text `json:"description"`
	LogoURL      *string   `json:"logo_url" binding:"omitempty,url"`
	HeroImageURL *string   `json:"hero_image_url" binding:"omitempty,url"`
}

func (r *CreateRestaurantRequest) ToParams() restaurant.Params {
	return restaurant.Params{
		Slug:         r.Slug,
		Name:         r.Name,
		Description:  r.Description,
		LogoURL:      r.LogoURL,
		HeroImageURL: r.HeroImageURL,
	}
}

type CustomizationRequest struct {
	WelcomeText    i18n.Text `json:"welcome_text"`
	PrimaryColor   string    `json:"primary_color" binding:"required"`
	SecondaryColor string    `json:"secondary_color" binding:"required"`
	AccentColor    string    `json:"accent_color" binding:"required"`
	FontStyle      string    `json:"font_style" binding:"required"`
}

func (r *CustomizationRequest) ToParams() restaurant.CustomizationParams {
	return restaurant.CustomizationParams{
		WelcomeText:    r.WelcomeText,
		PrimaryColor:   r.PrimaryColor,
		SecondaryColor: r.SecondaryColor,
		AccentColor:    r.AccentColor,
		FontStyle:      r.FontStyle,
	}
}
