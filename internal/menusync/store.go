package menusync

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"digital-menu/internal/domain/menu"
	"digital-menu/internal/domain/offer"
	"digital-menu/internal/domain/restaurant"
	reqdto "digital-menu/internal/handler/dto/request"
	"digital-menu/internal/pkg/errs"
	"digital-menu/internal/pkg/eventbus"
	"digital-menu/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrClosed   = errs.New("menusync: store closed")
	ErrReadOnly = errs.New("menusync: customer store is read-only")
)

type Mode int

const (
	// ModeCustomer follows a public restaurant by slug.
	ModeCustomer Mode = iota
	// ModeOwner follows the signed-in owner's restaurant and allows mutations.
	ModeOwner
)

type Option func(*Store)

// WithPublisher announces successful mutations on the bus.
func WithPublisher(p eventbus.Publisher) Option {
	return func(s *Store) { s.publisher = p }
}

// WithSubscriber reloads the aggregate when another party changes the same restaurant.
func WithSubscriber(sub eventbus.Subscriber) Option {
	return func(s *Store) { s.subscriber = sub }
}

// WithOnChange is called with every newly loaded aggregate.
func WithOnChange(fn func(*queries.RestaurantView)) Option {
	return func(s *Store) { s.onChange = fn }
}

type Store struct {
	svc  DataService
	mode Mode
	slug string

	publisher  eventbus.Publisher
	subscriber eventbus.Subscriber
	onChange   func(*queries.RestaurantView)

	// root is cancelled by Close and bounds every request the store makes
	root   context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	// origin tags the events this store publishes
	origin string

	mu      sync.Mutex
	current *queries.RestaurantView
	closed  bool
	unsubs  []eventbus.Unsubscribe
}

func NewCustomerStore(svc DataService, slug string, opts ...Option) *Store {
	return newStore(svc, ModeCustomer, slug, opts)
}

func NewOwnerStore(svc DataService, opts ...Option) *Store {
	return newStore(svc, ModeOwner, "", opts)
}

func newStore(svc DataService, mode Mode, slug string, opts []Option) *Store {
	root, cancel := context.WithCancel(context.Background())
	s := &Store{
		svc:    svc,
		mode:   mode,
		slug:   slug,
		origin: uuid.NewString(),
		root:   root,
		cancel: cancel,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.subscriber != nil {
		s.unsubs = append(s.unsubs, eventbus.SubscribeAll(s.subscriber, s.onEvent))
	}
	return s
}

func (s *Store) Mode() Mode { return s.mode }

// Current returns the last loaded aggregate, or nil before the first Load.
func (s *Store) Current() *queries.RestaurantView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Load fetches the aggregate and replaces the current one. A result that
// arrives after Close is dropped.
func (s *Store) Load(ctx context.Context) error {
	ctx, done, err := s.scope(ctx)
	if err != nil {
		return err
	}
	defer done()
	return s.load(ctx)
}

// Close cancels in-flight requests and releases bus subscriptions. Later
// calls return ErrClosed; calling Close again does nothing.
func (s *Store) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	unsubs := s.unsubs
	s.unsubs = nil
	s.mu.Unlock()

	for _, u := range unsubs {
		u()
	}
	s.cancel()
	s.wg.Wait()
}

func (s *Store) CreateRestaurant(ctx context.Context, req reqdto.CreateRestaurantRequest) error {
	return s.mutate(ctx, eventbus.TopicRestaurantUpdated,
		func() error {
			_, err := restaurant.NewRestaurant(nil, req.ToParams(), time.Now())
			return err
		},
		func(ctx context.Context) error { return s.svc.CreateRestaurant(ctx, req) })
}

func (s *Store) UpdateCustomization(ctx context.Context, req reqdto.CustomizationRequest) error {
	return s.mutate(ctx, eventbus.TopicRestaurantUpdated,
		func() error {
			_, err := restaurant.NewCustomization(uuid.New(), req.ToParams(), time.Now())
			return err
		},
		func(ctx context.Context) error { return s.svc.UpdateCustomization(ctx, req) })
}

func (s *Store) CreateCategory(ctx context.Context, req reqdto.CategoryRequest) error {
	return s.mutate(ctx, eventbus.TopicMenuUpdated,
		func() error {
			_, err := menu.NewName(req.Name)
			return err
		},
		func(ctx context.Context) error { return s.svc.CreateCategory(ctx, req) })
}

func (s *Store) UpdateCategory(ctx context.Context, id uuid.UUID, req reqdto.CategoryRequest) error {
	return s.mutate(ctx, eventbus.TopicMenuUpdated,
		func() error {
			_, err := menu.NewName(req.Name)
			return err
		},
		func(ctx context.Context) error { return s.svc.UpdateCategory(ctx, id, req) })
}

func (s *Store) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	return s.mutate(ctx, eventbus.TopicMenuUpdated, noValidation,
		func(ctx context.Context) error { return s.svc.DeleteCategory(ctx, id) })
}

func (s *Store) CreateMenuItem(ctx context.Context, categoryID uuid.UUID, req reqdto.MenuItemRequest) error {
	return s.mutate(ctx, eventbus.TopicMenuUpdated,
		func() error {
			_, err := menu.NewItem(categoryID, req.ToParams(), 0, time.Now())
			return err
		},
		func(ctx context.Context) error { return s.svc.CreateMenuItem(ctx, categoryID, req) })
}

func (s *Store) UpdateMenuItem(ctx context.Context, id uuid.UUID, req reqdto.MenuItemRequest) error {
	return s.mutate(ctx, eventbus.TopicMenuUpdated,
		func() error {
			_, err := menu.NewItem(uuid.New(), req.ToParams(), 0, time.Now())
			return err
		},
		func(ctx context.Context) error { return s.svc.UpdateMenuItem(ctx, id, req) })
}

// ToggleSoldOut returns the new sold-out flag.
func (s *Store) ToggleSoldOut(ctx context.Context, id uuid.UUID) (bool, error) {
	var soldOut bool
	err := s.mutate(ctx, eventbus.TopicMenuUpdated, noValidation,
		func(ctx context.Context) error {
			var err error
			soldOut, err = s.svc.ToggleSoldOut(ctx, id)
			return err
		})
	return soldOut, err
}

func (s *Store) CreateOffer(ctx context.Context, req reqdto.OfferRequest) error {
	return s.mutate(ctx, eventbus.TopicOffersUpdated,
		func() error { return validateOffer(req) },
		func(ctx context.Context) error { return s.svc.CreateOffer(ctx, req) })
}

func (s *Store) UpdateOffer(ctx context.Context, id uuid.UUID, req reqdto.OfferRequest) error {
	return s.mutate(ctx, eventbus.TopicOffersUpdated,
		func() error { return validateOffer(req) },
		func(ctx context.Context) error { return s.svc.UpdateOffer(ctx, id, req) })
}

func (s *Store) DeleteOffer(ctx context.Context, id uuid.UUID) error {
	return s.mutate(ctx, eventbus.TopicOffersUpdated, noValidation,
		func(ctx context.Context) error { return s.svc.DeleteOffer(ctx, id) })
}

func noValidation() error { return nil }

func validateOffer(req reqdto.OfferRequest) error {
	// the restaurant id is only a placeholder for the constructor
	_, err := offer.NewOffer(uuid.New(), req.ToParams(), time.Now())
	return err
}

// mutate runs validate, call, reload, publish. A failed call leaves the
// current aggregate untouched and skips the reload.
func (s *Store) mutate(ctx context.Context, topic eventbus.Topic, validate func() error, call func(context.Context) error) error {
	if s.mode != ModeOwner {
		return ErrReadOnly
	}
	if err := validate(); err != nil {
		return errs.Validation(err)
	}

	ctx, done, err := s.scope(ctx)
	if err != nil {
		return err
	}
	defer done()

	if err := call(ctx); err != nil {
		return err
	}
	if err := s.load(ctx); err != nil {
		return err
	}
	s.publish(ctx, topic)
	return nil
}

// scope derives a request context that is also cancelled by Close.
func (s *Store) scope(ctx context.Context) (context.Context, func(), error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, nil, ErrClosed
	}
	s.wg.Add(1)
	s.mu.Unlock()

	ctx, cancel := context.WithCancel(ctx)
	stop := context.AfterFunc(s.root, cancel)
	return ctx, func() {
		stop()
		cancel()
		s.wg.Done()
	}, nil
}

func (s *Store) load(ctx context.Context) error {
	var (
		v   *queries.RestaurantView
		err error
	)
	if s.mode == ModeOwner {
		v, err = s.svc.GetOwnedRestaurant(ctx)
	} else {
		v, err = s.svc.GetRestaurantBySlug(ctx, s.slug)
	}
	if err != nil {
		return err
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	s.current = v
	onChange := s.onChange
	s.mu.Unlock()

	if onChange != nil {
		onChange(v)
	}
	return nil
}

func (s *Store) publish(ctx context.Context, topic eventbus.Topic) {
	if s.publisher == nil {
		return
	}
	cur := s.Current()
	if cur == nil {
		return
	}

	s.publisher.Publish(ctx, eventbus.Event{
		Topic:        topic,
		RestaurantID: cur.ID,
		Slug:         cur.Slug,
		Origin:       s.origin,
	})
}

// onEvent reloads in the background when some other writer changed the
// restaurant this store follows. The store's own publishes are skipped.
func (s *Store) onEvent(_ context.Context, ev eventbus.Event) {
	s.mu.Lock()
	skip := s.closed || ev.Origin == s.origin || !s.followsLocked(ev)
	s.mu.Unlock()
	if skip {
		return
	}

	ctx, done, err := s.scope(s.root)
	if err != nil {
		return
	}
	go func() {
		defer done()
		if err := s.load(ctx); err != nil && !errs.Is(err, ErrClosed) && ctx.Err() == nil {
			slog.Warn("menusync reload failed", "slug", ev.Slug, "error", err.Error())
		}
	}()
}

func (s *Store) followsLocked(ev eventbus.Event) bool {
	if s.current != nil {
		return ev.RestaurantID == s.current.ID
	}
	return s.mode == ModeCustomer && ev.Slug == s.slug
}
