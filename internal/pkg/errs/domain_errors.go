package errs

import "errors"

// Domain-specific sentinel errors shared by the usecase layers
var (
	// Lookup errors
	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrCategoryNotFound   = errors.New("menu category not found")
	ErrMenuItemNotFound   = errors.New("menu item not found")
	ErrOfferNotFound      = errors.New("offer not found")

	// Conflict errors
	ErrSlugTaken         = errors.New("slug already taken")
	ErrRestaurantExists  = errors.New("owner already has a restaurant")
	ErrEmailAlreadyInUse = errors.New("email already in use")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
