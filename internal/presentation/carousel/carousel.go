package carousel

import (
	"sync"
	"time"

	"digital-menu/internal/domain/offer"
	"digital-menu/internal/pkg/clock"
	"digital-menu/internal/pkg/i18n"
)

const (
	DefaultInterval          = 4 * time.Second
	DefaultMinimizeThreshold = 100.0
	DefaultFrameInterval     = 16 * time.Millisecond
)

type Config struct {
	Interval          time.Duration
	Sticky            bool
	MinimizeThreshold float64
	FrameInterval     time.Duration
	Selector          offer.Selector
	Language          i18n.Language
	// OnChange receives a snapshot after every state change, outside the carousel lock.
	OnChange func(View)
}

func (c Config) withDefaults() Config {
	if c.Interval <= 0 {
		c.Interval = DefaultInterval
	}
	if c.MinimizeThreshold <= 0 {
		c.MinimizeThreshold = DefaultMinimizeThreshold
	}
	if c.FrameInterval <= 0 {
		c.FrameInterval = DefaultFrameInterval
	}
	if c.Selector == "" {
		c.Selector = offer.SelectActive
	}
	if !c.Language.IsValid() {
		c.Language = i18n.DefaultLanguage
	}
	return c
}

// Carousel rotates through displayable offers. Each instance owns one
// auto-advance timer and one scroll throttle; Close releases both.
type Carousel struct {
	mu    sync.Mutex
	clock clock.Clock
	cfg   Config

	all    []*offer.Offer
	offers []*offer.Offer
	index  int
	lang   i18n.Language

	collapsed bool
	minimized bool
	hovered   bool
	closed    bool

	timer      clock.Timer
	generation uint64
	scroll     *frameThrottle
}

func New(clk clock.Clock, cfg Config, offers []*offer.Offer) *Carousel {
	cfg = cfg.withDefaults()
	c := &Carousel{
		clock: clk,
		cfg:   cfg,
		lang:  cfg.Language,
	}
	c.scroll = newFrameThrottle(clk, cfg.FrameInterval, c.applyScroll)

	c.mu.Lock()
	c.all = offers
	c.offers = cfg.Selector.Select(offers, clk.Now())
	c.resetTimerLocked()
	c.mu.Unlock()
	return c
}

func (c *Carousel) Next() {
	c.mutate(func() bool {
		n := len(c.offers)
		if n == 0 {
			return false
		}
		c.index = (c.index + 1) % n
		return true
	})
}

func (c *Carousel) Previous() {
	c.mutate(func() bool {
		n := len(c.offers)
		if n == 0 {
			return false
		}
		c.index = (c.index - 1 + n) % n
		return true
	})
}

// GoToSlide jumps to i. An index outside the displayable set is ignored.
func (c *Carousel) GoToSlide(i int) bool {
	moved := false
	c.mutate(func() bool {
		if i < 0 || i >= len(c.offers) {
			return false
		}
		c.index = i
		moved = true
		return true
	})
	return moved
}

func (c *Carousel) ToggleCollapse() {
	c.mutate(func() bool {
		c.collapsed = !c.collapsed
		c.resetTimerLocked()
		return true
	})
}

func (c *Carousel) SetHovered(hovered bool) {
	c.mutate(func() bool {
		if c.hovered == hovered {
			return false
		}
		c.hovered = hovered
		c.resetTimerLocked()
		return true
	})
}

func (c *Carousel) SetLanguage(lang i18n.Language) {
	c.mutate(func() bool {
		if !lang.IsValid() || lang == c.lang {
			return false
		}
		c.lang = lang
		return true
	})
}

// SetOffers replaces the offer set and clamps the current index into range.
func (c *Carousel) SetOffers(offers []*offer.Offer) {
	c.mutate(func() bool {
		c.all = offers
		return c.reselectLocked()
	})
}

// Refresh re-runs the selector against the current time. Only the strict
// selector depends on time.
func (c *Carousel) Refresh() {
	c.mutate(c.reselectLocked)
}

// ObserveScroll feeds a vertical scroll position. Sticky carousels evaluate
// the latest position once per frame; plain carousels ignore it.
func (c *Carousel) ObserveScroll(y float64) {
	c.mu.Lock()
	ignore := c.closed || !c.cfg.Sticky
	c.mu.Unlock()
	if ignore {
		return
	}
	c.scroll.Observe(y)
}

func (c *Carousel) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewLocked()
}

// Close stops the timer and the scroll throttle. Later calls do nothing.
func (c *Carousel) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	c.stopTimerLocked()
	c.scroll.Stop()
}

func (c *Carousel) applyScroll(y float64) {
	c.mutate(func() bool {
		minimized := y > c.cfg.MinimizeThreshold
		if minimized == c.minimized {
			return false
		}
		c.minimized = minimized
		return true
	})
}

func (c *Carousel) reselectLocked() bool {
	prev := len(c.offers)
	c.offers = c.cfg.Selector.Select(c.all, c.clock.Now())
	n := len(c.offers)
	if c.index >= n {
		c.index = max(n-1, 0)
	}
	if n != prev {
		c.resetTimerLocked()
	}
	return true
}

func (c *Carousel) mutate(fn func() bool) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	changed := fn()
	notify := c.cfg.OnChange
	var v View
	if changed && notify != nil {
		v = c.viewLocked()
	}
	c.mu.Unlock()

	if changed && notify != nil {
		notify(v)
	}
}

func (c *Carousel) autoAdvanceLocked() bool {
	return !c.closed && !c.hovered && !c.collapsed && len(c.offers) > 1
}

func (c *Carousel) stopTimerLocked() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.generation++
}

// resetTimerLocked cancels the pending tick and, when auto-advance applies,
// starts a fresh interval.
func (c *Carousel) resetTimerLocked() {
	c.stopTimerLocked()
	if c.autoAdvanceLocked() {
		c.scheduleLocked(c.generation)
	}
}

func (c *Carousel) scheduleLocked(gen uint64) {
	c.timer = c.clock.AfterFunc(c.cfg.Interval, func() { c.tick(gen) })
}

func (c *Carousel) tick(gen uint64) {
	c.mu.Lock()
	if gen != c.generation || !c.autoAdvanceLocked() {
		c.mu.Unlock()
		return
	}
	c.index = (c.index + 1) % len(c.offers)
	c.scheduleLocked(gen)

	notify := c.cfg.OnChange
	var v View
	if notify != nil {
		v = c.viewLocked()
	}
	c.mu.Unlock()

	if notify != nil {
		notify(v)
	}
}

func (c *Carousel) viewLocked() View {
	n := len(c.offers)
	v := View{
		Index:         c.index,
		Count:         n,
		Collapsed:     c.collapsed,
		Minimized:     c.minimized,
		Hovered:       c.hovered,
		Sticky:        c.cfg.Sticky,
		AutoAdvancing: c.autoAdvanceLocked(),
		ShowControls:  n > 1,
		Language:      c.lang,
	}

	switch {
	case n == 0:
		v.Mode = ModeHidden
		return v
	case c.cfg.Sticky && c.minimized:
		v.Mode = ModeBanner
	case c.collapsed:
		v.Mode = ModeCollapsed
		return v
	default:
		v.Mode = ModeFull
		v.Slides = make([]Slide, 0, n)
		for _, o := range c.offers {
			v.Slides = append(v.Slides, NewSlide(o, c.lang))
		}
	}

	current := NewSlide(c.offers[c.index], c.lang)
	v.Current = &current
	return v
}
