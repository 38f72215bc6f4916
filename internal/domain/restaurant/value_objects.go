package restaurant

import (
	"regexp"
	"strings"
)

var (
	slugRegex  = regexp.MustCompile(`^[a-z0-9](?:[a-z0-9-]{1,62})[a-z0-9]$`)
	colorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
)

type Slug struct {
	value string
}

func NewSlug(s string) (Slug, error) {
	s = strings.TrimSpace(s)
	if !slugRegex.MatchString(s) {
		return Slug{}, ErrInvalidSlug
	}
	return Slug{value: s}, nil
}

func (s Slug) Value() string  { return s.value }
func (s Slug) String() string { return s.value }

type Color struct {
	value string
}

func NewColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if !colorRegex.MatchString(s) {
		return Color{}, ErrInvalidColor
	}
	return Color{value: strings.ToUpper(s)}, nil
}

func (c Color) Value() string { return c.value }
