package restaurant

import (
	"strings"
	"time"

	"digital-menu/internal/pkg/i18n"

	"github.com/google/uuid"
)

type Restaurant struct {
	id           uuid.UUID
	ownerID      *uuid.UUID
	slug         Slug
	name         string
	description  i18n.Text
	logoURL      *string
	heroImageURL *string
	createdAt    time.Time
	updatedAt    time.Time
}

type Params struct {
	Slug         string
	Name         string
	Description  i18n.Text
	LogoURL      *string
	HeroImageURL *string
}

// NewRestaurant builds an owned restaurant. The owner is optional only for seeded data.
func NewRestaurant(ownerID *uuid.UUID, p Params, now time.Time) (*Restaurant, error) {
	slug, err := NewSlug(p.Slug)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return nil, ErrNameRequired
	}
	if ownerID != nil && *ownerID == uuid.Nil {
		return nil, ErrOwnerRequired
	}

	return &Restaurant{
		id:           uuid.New(),
		ownerID:      ownerID,
		slug:         slug,
		name:         name,
		description:  i18n.NewText(p.Description.EN, p.Description.DE),
		logoURL:      p.LogoURL,
		heroImageURL: p.HeroImageURL,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func (r *Restaurant) ID() uuid.UUID          { return r.id }
func (r *Restaurant) OwnerID() *uuid.UUID    { return r.ownerID }
func (r *Restaurant) Slug() Slug             { return r.slug }
func (r *Restaurant) Name() string           { return r.name }
func (r *Restaurant) Description() i18n.Text { return r.description }
func (r *Restaurant) LogoURL() *string       { return r.logoURL }
func (r *Restaurant) HeroImageURL() *string  { return r.heroImageURL }
func (r *Restaurant) CreatedAt() time.Time   { return r.createdAt }
func (r *Restaurant) UpdatedAt() time.Time   { return r.updatedAt }
