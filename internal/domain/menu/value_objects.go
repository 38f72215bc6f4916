package menu

import (
	"digital-menu/internal/pkg/i18n"

	"github.com/shopspring/decimal"
)

const (
	MinSpiceLevel = 0
	MaxSpiceLevel = 3

	pricePlaces = 2
)

// Price is a non-negative amount with two decimal places.
type Price struct {
	amount decimal.Decimal
}

func NewPrice(amount decimal.Decimal) (Price, error) {
	if amount.IsNegative() {
		return Price{}, ErrNegativePrice
	}
	return Price{amount: amount.Round(pricePlaces)}, nil
}

func ParsePrice(s string) (Price, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Price{}, ErrInvalidPrice
	}
	return NewPrice(d)
}

func (p Price) Decimal() decimal.Decimal { return p.amount }

func (p Price) String() string { return p.amount.StringFixed(pricePlaces) }

type SpiceLevel struct {
	value int
}

// NewSpiceLevel clamps v into [0,3].
func NewSpiceLevel(v int) SpiceLevel {
	return SpiceLevel{value: min(max(v, MinSpiceLevel), MaxSpiceLevel)}
}

func (s SpiceLevel) Value() int { return s.value }

// NewName trims both translations and requires each of them.
func NewName(t i18n.Text) (i18n.Text, error) {
	t = i18n.NewText(t.EN, t.DE)
	if !t.IsComplete() {
		return i18n.Text{}, ErrNameRequired
	}
	return t, nil
}
