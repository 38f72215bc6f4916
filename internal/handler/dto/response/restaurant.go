package response

import (
	"time"

	"digital-menu/internal/domain/offer"
	"digital-menu/internal/pkg/i18n"
	"digital-menu/internal/presentation/carousel"
	"digital-menu/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type SlideResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Discount    int       `json:"discount"`
	ValidHours  string    `json:"valid_hours"`
}

type OfferListResponse struct {
	RestaurantID uuid.UUID       `json:"restaurant_id"`
	Slug         string          `json:"slug"`
	Mode         offer.Selector  `json:"mode"`
	At           time.Time       `json:"at"`
	Language     i18n.Language   `json:"language"`
	Title        string          `json:"title"`
	Slides       []SlideResponse `json:"slides"`
}

type SoldOutResponse struct {
	ItemID    uuid.UUID               `json:"item_id"`
	IsSoldOut bool                    `json:"is_sold_out"`
	Aggregate *queries.RestaurantView `json:"restaurant"`
}

// FromOfferListing renders the static offers section. title is the localized heading.
func FromOfferListing(l *queries.OfferListing, title string) OfferListResponse {
	res := OfferListResponse{
		RestaurantID: l.RestaurantID,
		Slug:         l.Slug,
		Mode:         l.Mode,
		At:           l.At,
		Language:     l.Language,
		Title:        title,
		Slides:       make([]SlideResponse, 0, len(l.Slides)),
	}
	for _, s := range l.Slides {
		res.Slides = append(res.Slides, fromSlide(s))
	}
	return res
}

func fromSlide(s carousel.Slide) SlideResponse {
	var out SlideResponse
	if err := copier.Copy(&out, &s); err != nil {
		return SlideResponse{ID: s.ID, Title: s.Title, Description: s.Description, Discount: s.Discount, ValidHours: s.ValidHours}
	}
	return out
}
