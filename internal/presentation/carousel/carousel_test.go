//go:build unit

package carousel_test

import (
	"testing"
	"time"

	"digital-menu/internal/domain/offer"
	"digital-menu/internal/pkg/clock"
	"digital-menu/internal/pkg/i18n"
	"digital-menu/internal/presentation/carousel"
	"digital-menu/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const interval = 4 * time.Second

// Tuesday 2025-03-04 18:30.
var tuesdayEvening = time.Date(2025, 3, 4, 18, 30, 0, 0, time.UTC)

func offers(titles ...string) []*offer.Offer {
	out := make([]*offer.Offer, 0, len(titles))
	for _, title := range titles {
		out = append(out, builder.NewOfferBuilder().WithTitle(title, title+" (de)").BuildStored())
	}
	return out
}

func newCarousel(t *testing.T, cfg carousel.Config, list []*offer.Offer) (*carousel.Carousel, *clock.MockClock) {
	t.Helper()
	clk := clock.NewMockClock(tuesdayEvening)
	if cfg.Interval == 0 {
		cfg.Interval = interval
	}
	c := carousel.New(clk, cfg, list)
	t.Cleanup(c.Close)
	return c, clk
}

func TestCarousel_InitialState(t *testing.T) {
	c, clk := newCarousel(t, carousel.Config{}, offers("a", "b", "c"))

	v := c.View()
	assert.Equal(t, carousel.ModeFull, v.Mode)
	assert.Equal(t, 0, v.Index)
	assert.Equal(t, 3, v.Count)
	assert.False(t, v.Collapsed)
	assert.False(t, v.Minimized)
	assert.False(t, v.Hovered)
	assert.True(t, v.AutoAdvancing)
	assert.True(t, v.ShowControls)
	require.NotNil(t, v.Current)
	assert.Equal(t, "a", v.Current.Title)
	assert.Len(t, v.Slides, 3)
	assert.Equal(t, 1, clk.PendingTimers())
}

func TestCarousel_AutoAdvance(t *testing.T) {
	t.Run("three ticks complete a full cycle", func(t *testing.T) {
		c, clk := newCarousel(t, carousel.Config{}, offers("a", "b", "c"))

		var seen []int
		for range 3 {
			clk.Add(interval)
			seen = append(seen, c.View().Index)
		}
		assert.Equal(t, []int{1, 2, 0}, seen)
	})

	t.Run("does not run with a single offer", func(t *testing.T) {
		c, clk := newCarousel(t, carousel.Config{}, offers("a"))

		assert.Zero(t, clk.PendingTimers())
		clk.Add(10 * interval)
		assert.Equal(t, 0, c.View().Index)
		assert.False(t, c.View().AutoAdvancing)
		assert.False(t, c.View().ShowControls)
	})

	t.Run("manual navigation keeps the timer phase", func(t *testing.T) {
		c, clk := newCarousel(t, carousel.Config{}, offers("a", "b", "c"))

		clk.Add(interval / 2)
		c.Next()
		assert.Equal(t, 1, c.View().Index)

		clk.Add(interval / 2)
		assert.Equal(t, 2, c.View().Index)
	})

	t.Run("hover suspends and restarts the interval", func(t *testing.T) {
		c, clk := newCarousel(t, carousel.Config{}, offers("a", "b", "c"))

		clk.Add(interval / 2)
		c.SetHovered(true)
		assert.Zero(t, clk.PendingTimers())
		clk.Add(10 * interval)
		assert.Equal(t, 0, c.View().Index)

		c.SetHovered(false)
		clk.Add(interval - time.Millisecond)
		assert.Equal(t, 0, c.View().Index)
		clk.Add(time.Millisecond)
		assert.Equal(t, 1, c.View().Index)
	})

	t.Run("collapse suspends without resetting the index", func(t *testing.T) {
		c, clk := newCarousel(t, carousel.Config{}, offers("a", "b", "c"))

		clk.Add(interval)
		c.ToggleCollapse()
		v := c.View()
		assert.Equal(t, carousel.ModeCollapsed, v.Mode)
		assert.Equal(t, 1, v.Index)
		assert.Nil(t, v.Slides)

		clk.Add(10 * interval)
		assert.Equal(t, 1, c.View().Index)

		c.ToggleCollapse()
		assert.Equal(t, carousel.ModeFull, c.View().Mode)
		clk.Add(interval)
		assert.Equal(t, 2, c.View().Index)
	})

	t.Run("a change in offer count restarts the interval", func(t *testing.T) {
		c, clk := newCarousel(t, carousel.Config{}, offers("a", "b", "c"))

		clk.Add(interval / 2)
		c.SetOffers(offers("a", "b", "c", "d"))
		clk.Add(interval / 2)
		assert.Equal(t, 0, c.View().Index)
		clk.Add(interval / 2)
		assert.Equal(t, 1, c.View().Index)
		assert.Equal(t, 1, clk.PendingTimers())
	})
}

func TestCarousel_Navigation(t *testing.T) {
	t.Run("next then previous is a round trip", func(t *testing.T) {
		for count := 1; count <= 4; count++ {
			titles := []string{"a", "b", "c", "d"}[:count]
			for start := 0; start < count; start++ {
				c, _ := newCarousel(t, carousel.Config{}, offers(titles...))
				require.True(t, c.GoToSlide(start))

				c.Next()
				c.Previous()
				assert.Equal(t, start, c.View().Index, "count=%d start=%d", count, start)

				c.Previous()
				c.Next()
				assert.Equal(t, start, c.View().Index, "count=%d start=%d", count, start)
			}
		}
	})

	t.Run("next and previous wrap around", func(t *testing.T) {
		c, _ := newCarousel(t, carousel.Config{}, offers("a", "b", "c"))

		c.Previous()
		assert.Equal(t, 2, c.View().Index)
		c.Next()
		assert.Equal(t, 0, c.View().Index)
	})

	t.Run("goToSlide outside the range is ignored", func(t *testing.T) {
		c, _ := newCarousel(t, carousel.Config{}, offers("a", "b", "c"))
		require.True(t, c.GoToSlide(1))

		for _, i := range []int{-1, 3, 100} {
			assert.False(t, c.GoToSlide(i))
			assert.Equal(t, 1, c.View().Index)
		}
	})

	t.Run("navigation on an empty carousel does nothing", func(t *testing.T) {
		c, _ := newCarousel(t, carousel.Config{}, nil)

		c.Next()
		c.Previous()
		assert.False(t, c.GoToSlide(0))
		assert.Equal(t, carousel.ModeHidden, c.View().Mode)
		assert.Nil(t, c.View().Current)
	})
}

func TestCarousel_SetOffers(t *testing.T) {
	t.Run("shrinking clamps the index", func(t *testing.T) {
		c, _ := newCarousel(t, carousel.Config{}, offers("a", "b", "c"))
		require.True(t, c.GoToSlide(2))

		c.SetOffers(offers("a", "b"))
		assert.Equal(t, 1, c.View().Index)
		assert.Equal(t, "b", c.View().Current.Title)
	})

	t.Run("emptying renders nothing", func(t *testing.T) {
		c, clk := newCarousel(t, carousel.Config{}, offers("a", "b", "c"))
		require.True(t, c.GoToSlide(2))

		c.SetOffers(nil)
		v := c.View()
		assert.Equal(t, carousel.ModeHidden, v.Mode)
		assert.Equal(t, 0, v.Index)
		assert.Zero(t, clk.PendingTimers())
	})

	t.Run("inactive offers are not displayable", func(t *testing.T) {
		list := offers("a", "b")
		list = append(list, builder.NewOfferBuilder().WithTitle("paused", "pausiert").AsInactive().BuildStored())
		c, _ := newCarousel(t, carousel.Config{}, list)

		assert.Equal(t, 2, c.View().Count)
	})

	t.Run("strict selector follows the clock on refresh", func(t *testing.T) {
		happyHour := builder.NewOfferBuilder().BuildStored()
		c, clk := newCarousel(t, carousel.Config{Selector: offer.SelectStrict}, []*offer.Offer{happyHour})
		assert.Equal(t, 1, c.View().Count)

		clk.Set(tuesdayEvening.Add(90 * time.Minute))
		c.Refresh()
		assert.Equal(t, carousel.ModeHidden, c.View().Mode)
	})
}

func TestCarousel_StickyMinimize(t *testing.T) {
	t.Run("scroll is evaluated once per frame with the latest position", func(t *testing.T) {
		var changes []carousel.View
		cfg := carousel.Config{
			Sticky:            true,
			MinimizeThreshold: 120,
			FrameInterval:     16 * time.Millisecond,
			OnChange:          func(v carousel.View) { changes = append(changes, v) },
		}
		c, clk := newCarousel(t, cfg, offers("a", "b"))

		c.ObserveScroll(50)
		c.ObserveScroll(150)
		c.ObserveScroll(300)
		assert.False(t, c.View().Minimized)

		clk.Add(16 * time.Millisecond)
		require.Len(t, changes, 1)
		v := c.View()
		assert.True(t, v.Minimized)
		assert.Equal(t, carousel.ModeBanner, v.Mode)
		require.NotNil(t, v.Current)
		assert.Equal(t, "a", v.Current.Title)
		assert.Equal(t, 30, v.Current.Discount)
		assert.Nil(t, v.Slides)

		c.ObserveScroll(120)
		clk.Add(16 * time.Millisecond)
		require.Len(t, changes, 2)
		assert.False(t, c.View().Minimized)
	})

	t.Run("banner controls share the index", func(t *testing.T) {
		c, clk := newCarousel(t, carousel.Config{Sticky: true}, offers("a", "b", "c"))
		c.ObserveScroll(500)
		clk.Add(carousel.DefaultFrameInterval)
		require.Equal(t, carousel.ModeBanner, c.View().Mode)

		c.Next()
		assert.Equal(t, "b", c.View().Current.Title)

		c.ObserveScroll(0)
		clk.Add(carousel.DefaultFrameInterval)
		assert.Equal(t, carousel.ModeFull, c.View().Mode)
		assert.Equal(t, 1, c.View().Index)
	})

	t.Run("plain carousels ignore scrolling", func(t *testing.T) {
		c, clk := newCarousel(t, carousel.Config{}, offers("a", "b"))

		c.ObserveScroll(1000)
		assert.Equal(t, 1, clk.PendingTimers())
		clk.Add(time.Second)
		assert.False(t, c.View().Minimized)
	})
}

func TestCarousel_Close(t *testing.T) {
	changes := 0
	cfg := carousel.Config{Sticky: true, OnChange: func(carousel.View) { changes++ }}
	c, clk := newCarousel(t, cfg, offers("a", "b", "c"))
	c.ObserveScroll(400)
	require.Equal(t, 2, clk.PendingTimers())

	c.Close()
	assert.Zero(t, clk.PendingTimers())

	c.Next()
	c.ObserveScroll(0)
	c.SetOffers(offers("x"))
	clk.Add(10 * interval)
	c.Close()

	assert.Zero(t, changes)
	assert.Equal(t, 0, c.View().Index)
	assert.False(t, c.View().AutoAdvancing)
}

func TestCarousel_Language(t *testing.T) {
	withoutGerman := builder.NewOfferBuilder().WithTitle("Lunch", "").BuildStored()
	c, _ := newCarousel(t, carousel.Config{Language: i18n.German}, append(offers("a"), withoutGerman))

	v := c.View()
	assert.Equal(t, "a (de)", v.Slides[0].Title)
	assert.Equal(t, "Lunch", v.Slides[1].Title)

	c.SetLanguage(i18n.English)
	assert.Equal(t, "a", c.View().Slides[0].Title)
}

func TestStaticList(t *testing.T) {
	happyHour := builder.NewOfferBuilder().BuildStored()
	all := []*offer.Offer{happyHour}
	tuesdayNight := time.Date(2025, 3, 4, 20, 0, 0, 0, time.UTC)

	active := carousel.StaticList(all, offer.SelectActive, tuesdayNight, i18n.English)
	require.Len(t, active, 1)
	assert.Equal(t, carousel.Slide{
		ID:          happyHour.ID(),
		Title:       "Happy Hour",
		Description: "30% off all drinks",
		Discount:    30,
		ValidHours:  "17:00 - 19:00",
	}, active[0])

	assert.Empty(t, carousel.StaticList(all, offer.SelectStrict, tuesdayNight, i18n.English))
	assert.Len(t, carousel.StaticList(all, offer.SelectStrict, tuesdayEvening, i18n.English), 1)
}
