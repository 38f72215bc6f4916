package menu

import "errors"

var (
	ErrNameRequired       = errors.New("name is required in every language")
	ErrNegativePrice      = errors.New("price must not be negative")
	ErrInvalidPrice       = errors.New("price is not a valid decimal")
	ErrInvalidMeatType    = errors.New("meat type must be beef, chicken, pork or none")
	ErrRestaurantRequired = errors.New("category must belong to a restaurant")
	ErrCategoryRequired   = errors.New("item must belong to a category")
)

type MeatType string

const (
	MeatBeef    MeatType = "beef"
	MeatChicken MeatType = "chicken"
	MeatPork    MeatType = "pork"
	MeatNone    MeatType = "none"
)

func (m MeatType) IsValid() bool {
	switch m {
	case MeatBeef, MeatChicken, MeatPork, MeatNone:
		return true
	default:
		return false
	}
}

// NewMeatType accepts an empty string as "not specified".
func NewMeatType(s string) (*MeatType, error) {
	if s == "" {
		return nil, nil
	}
	m := MeatType(s)
	if !m.IsValid() {
		return nil, ErrInvalidMeatType
	}
	return &m, nil
}
