package offer

import "errors"

var (
	ErrTitleRequired      = errors.New("offer title is required in every language")
	ErrInvalidDiscount    = errors.New("discount percentage must be between 1 and 100")
	ErrInvalidHour        = errors.New("valid hours must be HH:MM in 24-hour format")
	ErrInvalidSelector    = errors.New("offer selector must be active or strict")
	ErrRestaurantRequired = errors.New("offer must belong to a restaurant")
)
