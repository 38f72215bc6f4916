//go:build unit

package ws_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"digital-menu/internal/handler/middleware"
	"digital-menu/internal/handler/ws"
	"digital-menu/internal/pkg/clock"
	"digital-menu/internal/pkg/config"
	"digital-menu/internal/pkg/errs"
	"digital-menu/internal/pkg/eventbus"
	"digital-menu/internal/presentation/carousel"
	"digital-menu/internal/usecase/queries"
	"digital-menu/tests/common/builder"
	queriesmock "digital-menu/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type message struct {
	Type    string         `json:"type"`
	Context string         `json:"context"`
	View    *carousel.View `json:"view"`
	Error   string         `json:"error"`
}

type wsFixture struct {
	server *httptest.Server
	bus    *eventbus.Bus
	view   atomic.Pointer[queries.RestaurantView]
}

func newWSFixture(t *testing.T) *wsFixture {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	q := queriesmock.NewMockRestaurantQueries(ctrl)

	f := &wsFixture{bus: eventbus.New()}
	f.view.Store(builder.NewRestaurantBuilder().WithSlug("bella-vista").WithOffers(
		builder.NewOfferBuilder().WithTitle("Lunch", "Mittagstisch").BuildView(),
		builder.NewOfferBuilder().WithTitle("Happy Hour", "Happy Hour").BuildView(),
	).BuildView())

	q.EXPECT().GetBySlug(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, slug string) (*queries.RestaurantView, error) {
			v := f.view.Load()
			if slug != v.Slug {
				return nil, errs.ErrRestaurantNotFound
			}
			return v, nil
		}).AnyTimes()

	cfg := config.NewTestConfig()
	h := ws.NewOffersHandler(q, f.bus, clock.NewMockClock(time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)), cfg)

	router := gin.New()
	router.Use(middleware.Locale())
	router.GET("/ws/restaurants/:slug/offers", h.Serve)
	f.server = httptest.NewServer(router)
	t.Cleanup(f.server.Close)
	return f
}

func (f *wsFixture) dial(t *testing.T, query string) *websocket.Conn {
	url := "ws" + strings.TrimPrefix(f.server.URL, "http") + "/ws/restaurants/bella-vista/offers" + query
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	_ = resp.Body.Close()
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

// readUntil skips intermediate states; writes to a slow reader collapse.
func readUntil(t *testing.T, conn *websocket.Conn, match func(message) bool) message {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	for {
		var msg message
		require.NoError(t, conn.ReadJSON(&msg))
		if match(msg) {
			return msg
		}
	}
}

func isState(msg message) bool { return msg.Type == "state" && msg.View != nil }

func TestOffersSession(t *testing.T) {
	t.Run("initial state in the welcome context", func(t *testing.T) {
		f := newWSFixture(t)
		conn := f.dial(t, "")

		msg := readUntil(t, conn, isState)
		assert.Equal(t, ws.ContextWelcome, msg.Context)
		assert.Equal(t, carousel.ModeFull, msg.View.Mode)
		assert.Equal(t, 2, msg.View.Count)
		assert.False(t, msg.View.Sticky)
		assert.True(t, msg.View.ShowControls)
	})

	t.Run("menu context is sticky and language follows the query", func(t *testing.T) {
		f := newWSFixture(t)
		conn := f.dial(t, "?context=menu&lang=de")

		msg := readUntil(t, conn, isState)
		assert.True(t, msg.View.Sticky)
		require.NotNil(t, msg.View.Current)
		assert.Equal(t, "Mittagstisch", msg.View.Current.Title)
	})

	t.Run("client commands drive the carousel", func(t *testing.T) {
		f := newWSFixture(t)
		conn := f.dial(t, "")
		readUntil(t, conn, isState)

		require.NoError(t, conn.WriteJSON(map[string]any{"type": "next"}))
		msg := readUntil(t, conn, func(m message) bool { return isState(m) && m.View.Index == 1 })
		assert.Equal(t, "Happy Hour", msg.View.Current.Title)

		require.NoError(t, conn.WriteJSON(map[string]any{"type": "collapse"}))
		msg = readUntil(t, conn, func(m message) bool { return isState(m) && m.View.Collapsed })
		assert.Equal(t, carousel.ModeCollapsed, msg.View.Mode)

		require.NoError(t, conn.WriteJSON(map[string]any{"type": "language", "lang": "de"}))
		msg = readUntil(t, conn, func(m message) bool { return isState(m) && m.View.Language == "de" })
		assert.True(t, msg.View.Collapsed)
	})

	t.Run("unknown and malformed messages get an error reply", func(t *testing.T) {
		f := newWSFixture(t)
		conn := f.dial(t, "")
		readUntil(t, conn, isState)

		require.NoError(t, conn.WriteJSON(map[string]any{"type": "dance"}))
		msg := readUntil(t, conn, func(m message) bool { return m.Type == "error" })
		assert.Contains(t, msg.Error, "dance")

		require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("{")))
		msg = readUntil(t, conn, func(m message) bool { return m.Type == "error" })
		assert.Equal(t, "malformed message", msg.Error)
	})

	t.Run("offer changes are pushed", func(t *testing.T) {
		f := newWSFixture(t)
		conn := f.dial(t, "")
		first := readUntil(t, conn, isState)
		require.Equal(t, 2, first.View.Count)

		current := f.view.Load()
		next := builder.NewRestaurantBuilder().WithSlug("bella-vista").WithOffers(current.Offers[0]).BuildView()
		next.ID = current.ID
		f.view.Store(next)
		f.bus.Publish(context.Background(), eventbus.Event{
			Topic:        eventbus.TopicOffersUpdated,
			RestaurantID: current.ID,
			Slug:         current.Slug,
		})

		msg := readUntil(t, conn, func(m message) bool { return isState(m) && m.View.Count == 1 })
		assert.Equal(t, "Lunch", msg.View.Current.Title)
	})
}

func TestOffersHandshake(t *testing.T) {
	f := newWSFixture(t)

	cases := []struct {
		name string
		path string
		code int
	}{
		{name: "unknown restaurant", path: "/ws/restaurants/nowhere/offers", code: http.StatusNotFound},
		{name: "invalid context", path: "/ws/restaurants/bella-vista/offers?context=kitchen", code: http.StatusBadRequest},
		{name: "invalid mode", path: "/ws/restaurants/bella-vista/offers?mode=sometimes", code: http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			url := "ws" + strings.TrimPrefix(f.server.URL, "http") + tc.path
			_, resp, err := websocket.DefaultDialer.Dial(url, nil)
			require.Error(t, err)
			require.NotNil(t, resp)
			defer resp.Body.Close()
			assert.Equal(t, tc.code, resp.StatusCode)
		})
	}
}
