package queries

import (
	"context"
	"log/slog"
	"time"

	"digital-menu/internal/domain/offer"
	"digital-menu/internal/infra"
	"digital-menu/internal/pkg/clock"
	"digital-menu/internal/pkg/errs"
	"digital-menu/internal/pkg/i18n"
	"digital-menu/internal/presentation/carousel"

	"github.com/google/uuid"
)

type RestaurantReadStore interface {
	FindBySlug(ctx context.Context, slug string) (*RestaurantView, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) (*RestaurantView, error)
}

// RestaurantCache holds public aggregates by slug. Every Invalidate moves the
// slug to a new generation.
type RestaurantCache interface {
	// Get returns the cached aggregate, or nil and the slug's current
	// generation on a miss.
	Get(ctx context.Context, slug string) (*RestaurantView, int64, error)
	// Set stores v only while the slug is still at generation gen, so a read
	// that raced an invalidation never refills the cache.
	Set(ctx context.Context, v *RestaurantView, gen int64) error
	Invalidate(ctx context.Context, slug string) error
}

// OfferListing is the static, non-animated rendering of a restaurant's offers.
type OfferListing struct {
	RestaurantID uuid.UUID        `json:"restaurant_id"`
	Slug         string           `json:"slug"`
	Mode         offer.Selector   `json:"mode"`
	At           time.Time        `json:"at"`
	Language     i18n.Language    `json:"language"`
	Slides       []carousel.Slide `json:"slides"`
}

type RestaurantQueries interface {
	GetBySlug(ctx context.Context, slug string) (*RestaurantView, error)
	GetOwned(ctx context.Context, ownerID uuid.UUID) (*RestaurantView, error)
	// ListOffers evaluates at the given time, or now when at is zero.
	ListOffers(ctx context.Context, slug string, selector offer.Selector, at time.Time, lang i18n.Language) (*OfferListing, error)
}

type restaurantQueriesImpl struct {
	readStore RestaurantReadStore
	cache     RestaurantCache
	clock     clock.Clock
}

func NewRestaurantQueries(readStore RestaurantReadStore, cache RestaurantCache, clk clock.Clock) RestaurantQueries {
	return &restaurantQueriesImpl{
		readStore: readStore,
		cache:     cache,
		clock:     clk,
	}
}

func (q *restaurantQueriesImpl) GetBySlug(ctx context.Context, slug string) (*RestaurantView, error) {
	cached, gen, cacheErr := q.cache.Get(ctx, slug)
	if cacheErr != nil {
		slog.Warn("restaurant cache read failed", "slug", slug, "error", cacheErr.Error())
	}
	if cached != nil {
		return cached, nil
	}

	v, err := q.readStore.FindBySlug(ctx, slug)
	if err != nil {
		return nil, mapNotFound(err)
	}

	// without a generation the fill cannot be checked against invalidations
	if cacheErr != nil {
		return v, nil
	}
	if err := q.cache.Set(ctx, v, gen); err != nil {
		slog.Warn("restaurant cache write failed", "slug", slug, "error", err.Error())
	}
	return v, nil
}

// GetOwned always reads through to the database so owners see their own writes.
func (q *restaurantQueriesImpl) GetOwned(ctx context.Context, ownerID uuid.UUID) (*RestaurantView, error) {
	v, err := q.readStore.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return v, nil
}

func (q *restaurantQueriesImpl) ListOffers(ctx context.Context, slug string, selector offer.Selector, at time.Time, lang i18n.Language) (*OfferListing, error) {
	v, err := q.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if at.IsZero() {
		at = q.clock.Now()
	}
	if selector == "" {
		selector = offer.SelectActive
	}
	if !lang.IsValid() {
		lang = i18n.DefaultLanguage
	}

	return &OfferListing{
		RestaurantID: v.ID,
		Slug:         v.Slug,
		Mode:         selector,
		At:           at,
		Language:     lang,
		Slides:       carousel.StaticList(v.OfferDomains(), selector, at, lang),
	}, nil
}

func mapNotFound(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, errs.ErrRestaurantNotFound)
	}
	return err
}
