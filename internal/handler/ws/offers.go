package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"slices"
	"sync"
	"time"

	"digital-menu/internal/domain/offer"
	"digital-menu/internal/handler/httperr"
	"digital-menu/internal/handler/middleware"
	"digital-menu/internal/pkg/clock"
	"digital-menu/internal/pkg/config"
	"digital-menu/internal/pkg/errs"
	"digital-menu/internal/pkg/eventbus"
	"digital-menu/internal/pkg/i18n"
	"digital-menu/internal/pkg/metrics"
	"digital-menu/internal/presentation/carousel"
	"digital-menu/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"golang.org/x/sync/errgroup"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = 50 * time.Second
	maxMessageSize = 1024

	// error replies beyond this drop the oldest
	maxPendingErrors = 8

	// strict-mode carousels re-evaluate validity on this period
	refreshPeriod = 30 * time.Second
)

const (
	ContextWelcome = "welcome"
	ContextMenu    = "menu"
)

type clientMessage struct {
	Type    string  `json:"type"`
	Index   int     `json:"index"`
	Hovered bool    `json:"hovered"`
	Y       float64 `json:"y"`
	Lang    string  `json:"lang"`
}

type serverMessage struct {
	Type    string         `json:"type"`
	Context string         `json:"context,omitempty"`
	View    *carousel.View `json:"view,omitempty"`
	Error   string         `json:"error,omitempty"`
}

// OffersHandler serves one live carousel per websocket connection.
type OffersHandler struct {
	q        queries.RestaurantQueries
	bus      eventbus.Subscriber
	clock    clock.Clock
	cfg      config.CarouselConfig
	upgrader websocket.Upgrader
}

func NewOffersHandler(q queries.RestaurantQueries, bus eventbus.Subscriber, clk clock.Clock, cfg config.Config) *OffersHandler {
	origins := cfg.CORS.AllowOrigins
	return &OffersHandler{
		q:     q,
		bus:   bus,
		clock: clk,
		cfg:   cfg.Carousel,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || slices.Contains(origins, origin) || slices.Contains(origins, "*")
			},
		},
	}
}

// @Summary Live offers carousel
// @Description Websocket session pushing carousel state; see the message types in the README
// @Tags restaurants
// @Param slug path string true "Restaurant slug"
// @Param context query string false "welcome or menu" default(welcome)
// @Param sticky query bool false "minimize on scroll, defaults to true in the menu context"
// @Param mode query string false "active or strict" default(active)
// @Param lang query string false "en or de"
// @Success 101 "Switching Protocols"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /ws/restaurants/{slug}/offers [get]
func (h *OffersHandler) Serve(c *gin.Context) {
	cfg, viewContext, err := h.sessionConfig(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid carousel options", nil)
		return
	}

	slug := c.Param("slug")
	v, err := h.q.GetBySlug(c.Request.Context(), slug)
	if err != nil {
		if errs.Is(err, errs.ErrRestaurantNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Restaurant not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error
		slog.Warn("websocket upgrade failed", "slug", slug, "error", err.Error())
		return
	}

	s := newSession(conn, h.q, h.clock, slug, v.ID, viewContext)
	s.run(c.Request.Context(), h.bus, cfg, v.OfferDomains())
}

func (h *OffersHandler) sessionConfig(c *gin.Context) (carousel.Config, string, error) {
	viewContext := c.DefaultQuery("context", ContextWelcome)
	if viewContext != ContextWelcome && viewContext != ContextMenu {
		return carousel.Config{}, "", errs.New("context must be welcome or menu")
	}

	selector := offer.SelectActive
	if raw := c.Query("mode"); raw != "" {
		s, err := offer.ParseSelector(raw)
		if err != nil {
			return carousel.Config{}, "", err
		}
		selector = s
	}

	sticky := viewContext == ContextMenu
	switch c.Query("sticky") {
	case "true", "1":
		sticky = true
	case "false", "0":
		sticky = false
	}

	return carousel.Config{
		Interval:          h.cfg.Interval,
		Sticky:            sticky,
		MinimizeThreshold: h.cfg.MinimizeThreshold,
		FrameInterval:     h.cfg.FrameInterval,
		Selector:          selector,
		Language:          middleware.GetLanguage(c),
	}, viewContext, nil
}

type session struct {
	conn         *websocket.Conn
	q            queries.RestaurantQueries
	clock        clock.Clock
	slug         string
	restaurantID uuid.UUID
	viewContext  string

	// latest holds the newest unsent state; wake has capacity one so
	// bursts of changes collapse into a single write. Error replies queue
	// separately and are never collapsed into the state.
	mu     sync.Mutex
	latest *serverMessage
	errors []*serverMessage
	wake   chan struct{}

	reload chan struct{}
}

func newSession(conn *websocket.Conn, q queries.RestaurantQueries, clk clock.Clock, slug string, restaurantID uuid.UUID, viewContext string) *session {
	return &session{
		conn:         conn,
		q:            q,
		clock:        clk,
		slug:         slug,
		restaurantID: restaurantID,
		viewContext:  viewContext,
		wake:         make(chan struct{}, 1),
		reload:       make(chan struct{}, 1),
	}
}

func (s *session) run(parent context.Context, bus eventbus.Subscriber, cfg carousel.Config, offers []*offer.Offer) {
	metrics.CarouselSessions.Inc()
	defer metrics.CarouselSessions.Dec()

	ctx, cancel := context.WithCancel(context.WithoutCancel(parent))
	defer cancel()

	cfg.OnChange = s.enqueue
	car := carousel.New(s.clock, cfg, offers)
	defer car.Close()

	onEvent := func(_ context.Context, ev eventbus.Event) {
		if ev.RestaurantID != s.restaurantID {
			return
		}
		select {
		case s.reload <- struct{}{}:
		default:
		}
	}
	unsubOffers := bus.Subscribe(eventbus.TopicOffersUpdated, onEvent)
	defer unsubOffers()
	unsubRestaurant := bus.Subscribe(eventbus.TopicRestaurantUpdated, onEvent)
	defer unsubRestaurant()

	s.enqueue(car.View())

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return s.writeLoop(ctx) })
	g.Go(func() error { return s.refreshLoop(ctx, car) })
	g.Go(func() error { return s.readLoop(car) })
	g.Go(func() error {
		<-ctx.Done()
		// unblocks readLoop
		return s.conn.Close()
	})

	if err := g.Wait(); err != nil && !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
		slog.Debug("carousel session ended", "slug", s.slug, "error", err.Error())
	}
}

func (s *session) enqueue(v carousel.View) {
	s.mu.Lock()
	s.latest = &serverMessage{Type: "state", Context: s.viewContext, View: &v}
	s.mu.Unlock()

	select {
	case s.wake <- struct{}{}:
	default:
	}
}

func (s *session) sendError(msg string) {
	s.mu.Lock()
	if len(s.errors) == maxPendingErrors {
		s.errors = s.errors[1:]
	}
	s.errors = append(s.errors, &serverMessage{Type: "error", Error: msg})
	s.mu.Unlock()

	select {
	case s.wake <- struct{}{}:
	default:
	}
}

// drain takes every pending message: queued errors in order, then the newest state.
func (s *session) drain() []*serverMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.errors
	s.errors = nil
	if s.latest != nil {
		out = append(out, s.latest)
		s.latest = nil
	}
	return out
}

// writeLoop is the only goroutine that writes to the connection.
func (s *session) writeLoop(ctx context.Context) error {
	ping := time.NewTicker(pingPeriod)
	defer ping.Stop()

	for {
		select {
		case <-ctx.Done():
			_ = s.conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(writeWait))
			return nil
		case <-ping.C:
			if err := s.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return err
			}
		case <-s.wake:
			for _, msg := range s.drain() {
				_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
				if err := s.conn.WriteJSON(msg); err != nil {
					return err
				}
				if msg.Type == "state" {
					metrics.CarouselUpdates.Inc()
				}
			}
		}
	}
}

func (s *session) refreshLoop(ctx context.Context, car *carousel.Carousel) error {
	ticker := time.NewTicker(refreshPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			car.Refresh()
		case <-s.reload:
			v, err := s.q.GetBySlug(ctx, s.slug)
			if err != nil {
				if ctx.Err() != nil {
					return nil
				}
				slog.Warn("carousel reload failed", "slug", s.slug, "error", err.Error())
				continue
			}
			car.SetOffers(v.OfferDomains())
		}
	}
}

func (s *session) readLoop(car *carousel.Carousel) error {
	s.conn.SetReadLimit(maxMessageSize)
	_ = s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			return err
		}
		var msg clientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			s.sendError("malformed message")
			continue
		}
		if !s.apply(car, msg) {
			s.sendError("unsupported message " + msg.Type)
		}
	}
}

func (s *session) apply(car *carousel.Carousel, msg clientMessage) bool {
	switch msg.Type {
	case "next":
		car.Next()
	case "previous":
		car.Previous()
	case "goto":
		car.GoToSlide(msg.Index)
	case "hover":
		car.SetHovered(msg.Hovered)
	case "collapse":
		car.ToggleCollapse()
	case "scroll":
		car.ObserveScroll(msg.Y)
	case "language":
		lang, err := i18n.ParseLanguage(msg.Lang)
		if err != nil {
			return false
		}
		car.SetLanguage(lang)
	case "state":
		s.enqueue(car.View())
	default:
		return false
	}
	return true
}
