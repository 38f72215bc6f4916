//go:build unit || e2e

package builder

import (
	"time"

	"digital-menu/internal/domain/offer"
	reqdto "digital-menu/internal/handler/dto/request"
	"digital-menu/internal/pkg/i18n"
	"digital-menu/internal/usecase/queries"

	"github.com/google/uuid"
)

type OfferBuilder struct {
	ID            uuid.UUID
	RestaurantID  uuid.UUID
	TitleEN       string
	TitleDE       string
	DescriptionEN string
	DescriptionDE string
	Discount      int
	ValidDays     []int
	Start         string
	End           string
	IsActive      bool
	CreatedAt     time.Time
}

// NewOfferBuilder defaults to the weekday happy hour of the demo restaurant.
func NewOfferBuilder() *OfferBuilder {
	return &OfferBuilder{
		ID:            uuid.New(),
		RestaurantID:  uuid.New(),
		TitleEN:       "Happy Hour",
		TitleDE:       "Happy Hour",
		DescriptionEN: "30% off all drinks",
		DescriptionDE: "30% Rabatt auf alle Getränke",
		Discount:      30,
		ValidDays:     []int{1, 2, 3, 4, 5},
		Start:         "17:00",
		End:           "19:00",
		IsActive:      true,
		CreatedAt:     time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (b *OfferBuilder) With(mutate func(*OfferBuilder)) *OfferBuilder {
	mutate(b)
	return b
}

func (b *OfferBuilder) BuildParams() offer.Params {
	return offer.Params{
		Title:              i18n.Text{EN: b.TitleEN, DE: b.TitleDE},
		Description:        i18n.Text{EN: b.DescriptionEN, DE: b.DescriptionDE},
		DiscountPercentage: b.Discount,
		ValidDays:          append([]int(nil), b.ValidDays...),
		ValidHoursStart:    b.Start,
		ValidHoursEnd:      b.End,
		IsActive:           b.IsActive,
	}
}

func (b *OfferBuilder) BuildDomain() (*offer.Offer, error) {
	return offer.NewOffer(b.RestaurantID, b.BuildParams(), b.CreatedAt)
}

// BuildStored skips validation the same way rows loaded from the database do.
func (b *OfferBuilder) BuildStored() *offer.Offer {
	return offer.Reconstruct(b.ID, b.RestaurantID, b.BuildParams(), b.CreatedAt)
}

func (b *OfferBuilder) BuildView() queries.OfferView {
	return queries.OfferView{
		ID:                 b.ID,
		RestaurantID:       b.RestaurantID,
		Title:              i18n.Text{EN: b.TitleEN, DE: b.TitleDE},
		Description:        i18n.Text{EN: b.DescriptionEN, DE: b.DescriptionDE},
		DiscountPercentage: b.Discount,
		ValidDays:          append([]int(nil), b.ValidDays...),
		ValidHours:         queries.HoursView{Start: b.Start, End: b.End},
		IsActive:           b.IsActive,
		CreatedAt:          b.CreatedAt,
	}
}

func (b *OfferBuilder) BuildRequestDTO() reqdto.OfferRequest {
	active := b.IsActive
	return reqdto.OfferRequest{
		Title:              i18n.Text{EN: b.TitleEN, DE: b.TitleDE},
		Description:        i18n.Text{EN: b.DescriptionEN, DE: b.DescriptionDE},
		DiscountPercentage: b.Discount,
		ValidDays:          append([]int(nil), b.ValidDays...),
		ValidHoursStart:    b.Start,
		ValidHoursEnd:      b.End,
		IsActive:           &active,
	}
}

// Fluent builder methods
func (b *OfferBuilder) WithTitle(en, de string) *OfferBuilder {
	b.TitleEN = en
	b.TitleDE = de
	return b
}

func (b *OfferBuilder) WithDiscount(v int) *OfferBuilder {
	b.Discount = v
	return b
}

func (b *OfferBuilder) WithValidDays(days ...int) *OfferBuilder {
	b.ValidDays = days
	return b
}

func (b *OfferBuilder) WithHours(start, end string) *OfferBuilder {
	b.Start = start
	b.End = end
	return b
}

func (b *OfferBuilder) WithRestaurantID(id uuid.UUID) *OfferBuilder {
	b.RestaurantID = id
	return b
}

func (b *OfferBuilder) AsInactive() *OfferBuilder {
	b.IsActive = false
	return b
}
