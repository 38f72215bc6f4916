package restaurant

import (
	"time"

	"digital-menu/internal/pkg/i18n"

	"github.com/google/uuid"
)

const (
	DefaultPrimaryColor   = "#8B4513"
	DefaultSecondaryColor = "#D2691E"
	DefaultAccentColor    = "#F4A460"
	DefaultFontStyle      = FontModern
)

var DefaultWelcomeText = i18n.Text{EN: "Welcome", DE: "Willkommen"}

type Customization struct {
	restaurantID   uuid.UUID
	welcomeText    i18n.Text
	primaryColor   Color
	secondaryColor Color
	accentColor    Color
	fontStyle      FontStyle
	updatedAt      time.Time
}

type CustomizationParams struct {
	WelcomeText    i18n.Text
	PrimaryColor   string
	SecondaryColor string
	AccentColor    string
	FontStyle      string
}

func DefaultCustomizationParams() CustomizationParams {
	return CustomizationParams{
		WelcomeText:    DefaultWelcomeText,
		PrimaryColor:   DefaultPrimaryColor,
		SecondaryColor: DefaultSecondaryColor,
		AccentColor:    DefaultAccentColor,
		FontStyle:      string(DefaultFontStyle),
	}
}

func NewCustomization(restaurantID uuid.UUID, p CustomizationParams, now time.Time) (*Customization, error) {
	primary, err := NewColor(p.PrimaryColor)
	if err != nil {
		return nil, err
	}
	secondary, err := NewColor(p.SecondaryColor)
	if err != nil {
		return nil, err
	}
	accent, err := NewColor(p.AccentColor)
	if err != nil {
		return nil, err
	}
	font, err := NewFontStyle(p.FontStyle)
	if err != nil {
		return nil, err
	}

	return &Customization{
		restaurantID:   restaurantID,
		welcomeText:    i18n.NewText(p.WelcomeText.EN, p.WelcomeText.DE),
		primaryColor:   primary,
		secondaryColor: secondary,
		accentColor:    accent,
		fontStyle:      font,
		updatedAt:      now,
	}, nil
}

func DefaultCustomization(restaurantID uuid.UUID, now time.Time) *Customization {
	c, err := NewCustomization(restaurantID, DefaultCustomizationParams(), now)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Customization) RestaurantID() uuid.UUID { return c.restaurantID }
func (c *Customization) WelcomeText() i18n.Text  { return c.welcomeText }
func (c *Customization) PrimaryColor() Color     { return c.primaryColor }
func (c *Customization) SecondaryColor() Color   { return c.secondaryColor }
func (c *Customization) AccentColor() Color      { return c.accentColor }
func (c *Customization) FontStyle() FontStyle    { return c.fontStyle }
func (c *Customization) UpdatedAt() time.Time    { return c.updatedAt }
