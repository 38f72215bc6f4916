package restaurant

import "errors"

var (
	ErrNameRequired     = errors.New("restaurant name is required")
	ErrInvalidSlug      = errors.New("slug must be 3-64 lower-case letters, digits or dashes, without leading or trailing dash")
	ErrInvalidColor     = errors.New("color must be #rrggbb")
	ErrInvalidFontStyle = errors.New("font style must be modern, classic or elegant")
	ErrOwnerRequired    = errors.New("restaurant needs an owner")
)

type FontStyle string

const (
	FontModern  FontStyle = "modern"
	FontClassic FontStyle = "classic"
	FontElegant FontStyle = "elegant"
)

func (f FontStyle) IsValid() bool {
	switch f {
	case FontModern, FontClassic, FontElegant:
		return true
	default:
		return false
	}
}

func NewFontStyle(s string) (FontStyle, error) {
	f := FontStyle(s)
	if !f.IsValid() {
		return "", ErrInvalidFontStyle
	}
	return f, nil
}
