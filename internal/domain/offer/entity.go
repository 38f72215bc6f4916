package offer

import (
	"time"

	"digital-menu/internal/pkg/i18n"

	"github.com/google/uuid"
)

type Offer struct {
	id           uuid.UUID
	restaurantID uuid.UUID
	title        i18n.Text
	description  i18n.Text
	discount     Discount
	validDays    ValidDays
	validHours   HourWindow
	isActive     bool
	createdAt    time.Time
}

// Params carries the owner-editable fields of an offer.
type Params struct {
	Title              i18n.Text
	Description        i18n.Text
	DiscountPercentage int
	ValidDays          []int
	ValidHoursStart    string
	ValidHoursEnd      string
	IsActive           bool
}

func NewOffer(restaurantID uuid.UUID, p Params, now time.Time) (*Offer, error) {
	if restaurantID == uuid.Nil {
		return nil, ErrRestaurantRequired
	}
	o := &Offer{
		id:           uuid.New(),
		restaurantID: restaurantID,
		createdAt:    now,
	}
	if err := o.Apply(p); err != nil {
		return nil, err
	}
	return o, nil
}

// Reconstruct rebuilds a stored offer without re-validating it.
func Reconstruct(id, restaurantID uuid.UUID, p Params, createdAt time.Time) *Offer {
	return &Offer{
		id:           id,
		restaurantID: restaurantID,
		title:        p.Title,
		description:  p.Description,
		discount:     Discount{value: p.DiscountPercentage},
		validDays:    rawValidDays(p.ValidDays),
		validHours:   HourWindow{start: p.ValidHoursStart, end: p.ValidHoursEnd},
		isActive:     p.IsActive,
		createdAt:    createdAt,
	}
}

// Apply validates p and replaces every editable field; o is untouched on error.
func (o *Offer) Apply(p Params) error {
	title := i18n.NewText(p.Title.EN, p.Title.DE)
	if !title.IsComplete() {
		return ErrTitleRequired
	}
	discount, err := NewDiscount(p.DiscountPercentage)
	if err != nil {
		return err
	}
	hours, err := NewHourWindow(p.ValidHoursStart, p.ValidHoursEnd)
	if err != nil {
		return err
	}

	o.title = title
	o.description = i18n.NewText(p.Description.EN, p.Description.DE)
	o.discount = discount
	o.validDays = NewValidDays(p.ValidDays)
	o.validHours = hours
	o.isActive = p.IsActive
	return nil
}

func (o *Offer) Params() Params {
	return Params{
		Title:              o.title,
		Description:        o.description,
		DiscountPercentage: o.discount.Value(),
		ValidDays:          o.validDays.Values(),
		ValidHoursStart:    o.validHours.Start(),
		ValidHoursEnd:      o.validHours.End(),
		IsActive:           o.isActive,
	}
}

func (o *Offer) ID() uuid.UUID           { return o.id }
func (o *Offer) RestaurantID() uuid.UUID { return o.restaurantID }
func (o *Offer) Title() i18n.Text        { return o.title }
func (o *Offer) Description() i18n.Text  { return o.description }
func (o *Offer) Discount() Discount      { return o.discount }
func (o *Offer) ValidDays() ValidDays    { return o.validDays }
func (o *Offer) ValidHours() HourWindow  { return o.validHours }
func (o *Offer) IsActive() bool          { return o.isActive }
func (o *Offer) CreatedAt() time.Time    { return o.createdAt }
