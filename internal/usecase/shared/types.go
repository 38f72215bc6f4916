package shared

import (
	"github.com/google/uuid"
)

// RestaurantRef identifies the restaurant a command is scoped to.
type RestaurantRef struct {
	ID   uuid.UUID
	Slug string
}
