package api

import (
	"net/http"

	"digital-menu/internal/handler/httperr"
	"digital-menu/internal/pkg/errs"
	"digital-menu/internal/usecase/commands"
	"digital-menu/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type errorMapping struct {
	target error
	status int
	msg    string
}

var errorMappings = []errorMapping{
	{errs.ErrRestaurantNotFound, http.StatusNotFound, "Restaurant not found"},
	{errs.ErrCategoryNotFound, http.StatusNotFound, "Category not found"},
	{errs.ErrMenuItemNotFound, http.StatusNotFound, "Menu item not found"},
	{errs.ErrOfferNotFound, http.StatusNotFound, "Offer not found"},
	{errs.ErrSlugTaken, http.StatusConflict, "Slug already taken"},
	{errs.ErrRestaurantExists, http.StatusConflict, "Owner already has a restaurant"},
	{errs.ErrEmailAlreadyInUse, http.StatusConflict, "Email already in use"},
	{commands.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid email or password"},
	{commands.ErrUserNotFound, http.StatusUnauthorized, "Invalid email or password"},
	{commands.ErrAuthenticationFailed, http.StatusUnauthorized, "Invalid email or password"},
	{commands.ErrTokenValidation, http.StatusUnauthorized, "Invalid or expired token"},
	{commands.ErrUserInactive, http.StatusForbidden, "Account is inactive"},
	{queries.ErrUserNotFound, http.StatusNotFound, "User not found"},
	{queries.ErrUserInactive, http.StatusForbidden, "Account is inactive"},
}

// abortWithUsecaseError maps usecase errors onto HTTP status codes. Anything
// unrecognized is a 500 and keeps the original error for logging.
func abortWithUsecaseError(c *gin.Context, err error) {
	if errs.IsValidation(err) {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data", err.Error())
		return
	}
	for _, m := range errorMappings {
		if errs.Is(err, m.target) {
			httperr.AbortWithError(c, m.status, err, m.msg, nil)
			return
		}
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}

func abortUnauthenticated(c *gin.Context) {
	httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("unauthenticated"), "Unauthorized", nil)
}
