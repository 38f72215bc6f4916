package carousel

import (
	"time"

	"digital-menu/internal/domain/offer"
	"digital-menu/internal/pkg/i18n"

	"github.com/google/uuid"
)

type Mode string

const (
	// ModeHidden: no displayable offers, nothing is rendered.
	ModeHidden Mode = "hidden"
	// ModeCollapsed: header only, auto-advance suspended.
	ModeCollapsed Mode = "collapsed"
	// ModeFull: every slide with the current one highlighted.
	ModeFull Mode = "full"
	// ModeBanner: sticky and scrolled past the threshold; one line with the current slide.
	ModeBanner Mode = "banner"
)

type Slide struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Discount    int       `json:"discount"`
	ValidHours  string    `json:"valid_hours"`
}

type View struct {
	Mode          Mode          `json:"mode"`
	Index         int           `json:"index"`
	Count         int           `json:"count"`
	Collapsed     bool          `json:"collapsed"`
	Minimized     bool          `json:"minimized"`
	Hovered       bool          `json:"hovered"`
	Sticky        bool          `json:"sticky"`
	AutoAdvancing bool          `json:"auto_advancing"`
	ShowControls  bool          `json:"show_controls"`
	Language      i18n.Language `json:"language"`
	Current       *Slide        `json:"current,omitempty"`
	Slides        []Slide       `json:"slides,omitempty"`
}

func NewSlide(o *offer.Offer, lang i18n.Language) Slide {
	return Slide{
		ID:          o.ID(),
		Title:       o.Title().In(lang),
		Description: o.Description().In(lang),
		Discount:    o.Discount().Value(),
		ValidHours:  o.ValidHours().String(),
	}
}

// StaticList is the non-rotating rendering of an offers section.
func StaticList(offers []*offer.Offer, selector offer.Selector, now time.Time, lang i18n.Language) []Slide {
	selected := selector.Select(offers, now)
	slides := make([]Slide, 0, len(selected))
	for _, o := range selected {
		slides = append(slides, NewSlide(o, lang))
	}
	return slides
}
