//go:build unit

package commands_test

import (
	"context"
	"sync"

	"digital-menu/internal/domain/menu"
	"digital-menu/internal/domain/offer"
	"digital-menu/internal/domain/restaurant"
	"digital-menu/internal/domain/user"
	"digital-menu/internal/infra"
	"digital-menu/internal/infra/db"
	"digital-menu/internal/pkg/eventbus"
	"digital-menu/internal/pkg/i18n"
	"digital-menu/internal/usecase/shared"

	"github.com/google/uuid"
)

// fakeStore is an in-memory Tx. Errors set on the err* fields are returned by
// the matching repository call.
type fakeStore struct {
	restaurants    map[uuid.UUID]shared.RestaurantRef // by owner
	touched        []uuid.UUID
	customizations map[uuid.UUID]*restaurant.Customization
	categories     map[uuid.UUID]uuid.UUID // category -> restaurant
	categoryNames  map[uuid.UUID]i18n.Text
	categorySort   map[uuid.UUID]int
	items          map[uuid.UUID]*menu.Item
	itemOwner      map[uuid.UUID]uuid.UUID // item -> restaurant
	offers         map[uuid.UUID]*offer.Offer
	users          []*user.User
	lastLogins     []uuid.UUID

	nextSort int

	errRestaurantCreate error
	errUserCreate       error
	errLastLogin        error
	errFindRef          error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		restaurants:    map[uuid.UUID]shared.RestaurantRef{},
		customizations: map[uuid.UUID]*restaurant.Customization{},
		categories:     map[uuid.UUID]uuid.UUID{},
		categoryNames:  map[uuid.UUID]i18n.Text{},
		categorySort:   map[uuid.UUID]int{},
		items:          map[uuid.UUID]*menu.Item{},
		itemOwner:      map[uuid.UUID]uuid.UUID{},
		offers:         map[uuid.UUID]*offer.Offer{},
	}
}

func (s *fakeStore) withRestaurant(ownerID uuid.UUID, slug string) shared.RestaurantRef {
	ref := shared.RestaurantRef{ID: uuid.New(), Slug: slug}
	s.restaurants[ownerID] = ref
	return ref
}

func (s *fakeStore) withCategory(restaurantID uuid.UUID) uuid.UUID {
	id := uuid.New()
	s.categories[id] = restaurantID
	return id
}

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindNotFound)
}

// fakeUoW runs fn against the shared store. A failing fn leaves whatever it
// wrote; tests only assert on the error path and on published events.
type fakeUoW struct {
	store *fakeStore
	calls int
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.calls++
	return fn(ctx, fakeTx{u.store})
}

func (u *fakeUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error {
	return fn(ctx, nil)
}

type fakeTx struct{ s *fakeStore }

func (t fakeTx) Users() shared.UserRepository                   { return fakeUsers(t) }
func (t fakeTx) Restaurants() shared.RestaurantRepository       { return fakeRestaurants(t) }
func (t fakeTx) Customizations() shared.CustomizationRepository { return fakeCustomizations(t) }
func (t fakeTx) Categories() shared.CategoryRepository          { return fakeCategories(t) }
func (t fakeTx) MenuItems() shared.MenuItemRepository           { return fakeItems(t) }
func (t fakeTx) Offers() shared.OfferRepository                 { return fakeOffers(t) }
func (t fakeTx) DB() db.DBTX                                    { return nil }

type fakeUsers struct{ s *fakeStore }

func (r fakeUsers) Create(_ context.Context, u *user.User) error {
	if r.s.errUserCreate != nil {
		return r.s.errUserCreate
	}
	r.s.users = append(r.s.users, u)
	return nil
}

func (r fakeUsers) UpdateLastLogin(_ context.Context, userID uuid.UUID) error {
	if r.s.errLastLogin != nil {
		return r.s.errLastLogin
	}
	r.s.lastLogins = append(r.s.lastLogins, userID)
	return nil
}

type fakeRestaurants struct{ s *fakeStore }

func (r fakeRestaurants) Create(_ context.Context, rest *restaurant.Restaurant) error {
	if r.s.errRestaurantCreate != nil {
		return r.s.errRestaurantCreate
	}
	r.s.restaurants[*rest.OwnerID()] = shared.RestaurantRef{ID: rest.ID(), Slug: rest.Slug().Value()}
	return nil
}

func (r fakeRestaurants) FindRefByOwner(_ context.Context, ownerID uuid.UUID) (shared.RestaurantRef, error) {
	if r.s.errFindRef != nil {
		return shared.RestaurantRef{}, r.s.errFindRef
	}
	ref, ok := r.s.restaurants[ownerID]
	if !ok {
		return shared.RestaurantRef{}, notFound("failed to find restaurant")
	}
	return ref, nil
}

func (r fakeRestaurants) Touch(_ context.Context, id uuid.UUID) error {
	r.s.touched = append(r.s.touched, id)
	return nil
}

type fakeCustomizations struct{ s *fakeStore }

func (r fakeCustomizations) Upsert(_ context.Context, c *restaurant.Customization) error {
	r.s.customizations[c.RestaurantID()] = c
	return nil
}

type fakeCategories struct{ s *fakeStore }

func (r fakeCategories) NextSortOrder(_ context.Context, _ uuid.UUID) (int, error) {
	return r.s.nextSort, nil
}

func (r fakeCategories) Create(_ context.Context, c *menu.Category) error {
	r.s.categories[c.ID()] = c.RestaurantID()
	r.s.categoryNames[c.ID()] = c.Name()
	r.s.categorySort[c.ID()] = c.SortOrder()
	return nil
}

func (r fakeCategories) Update(_ context.Context, restaurantID, id uuid.UUID, name i18n.Text, sortOrder *int) error {
	if r.s.categories[id] != restaurantID {
		return notFound("failed to update category")
	}
	r.s.categoryNames[id] = name
	if sortOrder != nil {
		r.s.categorySort[id] = *sortOrder
	}
	return nil
}

func (r fakeCategories) Delete(_ context.Context, restaurantID, id uuid.UUID) error {
	if r.s.categories[id] != restaurantID {
		return notFound("failed to delete category")
	}
	delete(r.s.categories, id)
	return nil
}

type fakeItems struct{ s *fakeStore }

func (r fakeItems) NextSortOrder(_ context.Context, restaurantID, categoryID uuid.UUID) (int, error) {
	if r.s.categories[categoryID] != restaurantID {
		return 0, notFound("failed to find category")
	}
	return r.s.nextSort, nil
}

func (r fakeItems) Create(_ context.Context, restaurantID uuid.UUID, it *menu.Item) error {
	if r.s.categories[it.CategoryID()] != restaurantID {
		return notFound("failed to find category")
	}
	r.s.items[it.ID()] = it
	r.s.itemOwner[it.ID()] = restaurantID
	return nil
}

func (r fakeItems) Update(_ context.Context, restaurantID, id uuid.UUID, it *menu.Item, sortOrder *int) error {
	current, ok := r.s.items[id]
	if !ok || r.s.itemOwner[id] != restaurantID {
		return notFound("failed to update menu item")
	}
	if err := current.Apply(it.Params()); err != nil {
		return err
	}
	if sortOrder != nil {
		current.SetSortOrder(*sortOrder)
	}
	return nil
}

func (r fakeItems) ToggleSoldOut(_ context.Context, restaurantID, id uuid.UUID) (bool, error) {
	it, ok := r.s.items[id]
	if !ok || r.s.itemOwner[id] != restaurantID {
		return false, notFound("failed to toggle sold out")
	}
	it.ToggleSoldOut()
	return it.IsSoldOut(), nil
}

type fakeOffers struct{ s *fakeStore }

func (r fakeOffers) Create(_ context.Context, o *offer.Offer) error {
	r.s.offers[o.ID()] = o
	return nil
}

func (r fakeOffers) Update(_ context.Context, restaurantID, id uuid.UUID, o *offer.Offer) error {
	current, ok := r.s.offers[id]
	if !ok || current.RestaurantID() != restaurantID {
		return notFound("failed to update offer")
	}
	r.s.offers[id] = o
	return nil
}

func (r fakeOffers) Delete(_ context.Context, restaurantID, id uuid.UUID) error {
	current, ok := r.s.offers[id]
	if !ok || current.RestaurantID() != restaurantID {
		return notFound("failed to delete offer")
	}
	delete(r.s.offers, id)
	return nil
}

// recordingPublisher keeps every event published after commit.
type recordingPublisher struct {
	mu     sync.Mutex
	events []eventbus.Event
}

func (p *recordingPublisher) Publish(_ context.Context, ev eventbus.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, ev)
}

func (p *recordingPublisher) topics() []eventbus.Topic {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]eventbus.Topic, 0, len(p.events))
	for _, ev := range p.events {
		out = append(out, ev.Topic)
	}
	return out
}
