package api

import (
	"net/http"
	"time"

	"digital-menu/internal/domain/offer"
	reqdto "digital-menu/internal/handler/dto/request"
	resdto "digital-menu/internal/handler/dto/response"
	"digital-menu/internal/handler/httperr"
	"digital-menu/internal/handler/middleware"
	"digital-menu/internal/pkg/i18n"
	"digital-menu/internal/usecase/commands"
	"digital-menu/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RestaurantHandler struct {
	cmds    commands.RestaurantCommands
	q       queries.RestaurantQueries
	catalog *i18n.Catalog
}

func NewRestaurantHandler(cmds commands.RestaurantCommands, q queries.RestaurantQueries, catalog *i18n.Catalog) *RestaurantHandler {
	return &RestaurantHandler{cmds: cmds, q: q, catalog: catalog}
}

// @Summary Get restaurant by slug
// @Description Public menu aggregate: restaurant, customization, categories with items and offers
// @Tags restaurants
// @Produce json
// @Param slug path string true "Restaurant slug"
// @Success 200 {object} queries.RestaurantView
// @Failure 404 {object} httperr.Response
// @Router /restaurants/{slug} [get]
func (h *RestaurantHandler) GetBySlug(c *gin.Context) {
	v, err := h.q.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// @Summary List offers
// @Description Static offers section of a restaurant for a mode, instant and language
// @Tags restaurants
// @Produce json
// @Param slug path string true "Restaurant slug"
// @Param mode query string false "active or strict" default(active)
// @Param at query string false "RFC3339 instant, defaults to now"
// @Param lang query string false "en or de"
// @Success 200 {object} resdto.OfferListResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /restaurants/{slug}/offers [get]
func (h *RestaurantHandler) ListOffers(c *gin.Context) {
	selector := offer.SelectActive
	if raw := c.Query("mode"); raw != "" {
		s, err := offer.ParseSelector(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid mode", nil)
			return
		}
		selector = s
	}

	var at time.Time
	if raw := c.Query("at"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid at", nil)
			return
		}
		at = t
	}

	lang := middleware.GetLanguage(c)
	listing, err := h.q.ListOffers(c.Request.Context(), c.Param("slug"), selector, at, lang)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	title := h.catalog.Translate(lang, "offers.title", i18n.Text{})
	c.JSON(http.StatusOK, resdto.FromOfferListing(listing, title))
}

// @Summary Get owned restaurant
// @Description The authenticated owner's restaurant aggregate
// @Tags owner
// @Security BearerAuth
// @Produce json
// @Success 200 {object} queries.RestaurantView
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /owner/restaurant [get]
func (h *RestaurantHandler) GetOwned(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}
	respondOwned(c, h.q, ownerID, http.StatusOK)
}

// @Summary Create restaurant
// @Description Create the owner's restaurant with its default customization
// @Tags owner
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreateRestaurantRequest true "Restaurant"
// @Success 201 {object} queries.RestaurantView
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /owner/restaurant [post]
func (h *RestaurantHandler) Create(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}
	var req reqdto.CreateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if _, err := h.cmds.CreateRestaurant(c.Request.Context(), ownerID, req.ToParams()); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	respondOwned(c, h.q, ownerID, http.StatusCreated)
}

// @Summary Update customization
// @Description Replace the welcome text, colors and font style
// @Tags owner
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CustomizationRequest true "Customization"
// @Success 200 {object} queries.RestaurantView
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /owner/restaurant/customization [put]
func (h *RestaurantHandler) UpdateCustomization(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}
	var req reqdto.CustomizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.UpdateCustomization(c.Request.Context(), ownerID, req.ToParams()); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	respondOwned(c, h.q, ownerID, http.StatusOK)
}

// respondOwned answers an owner request with the freshly loaded aggregate.
func respondOwned(c *gin.Context, q queries.RestaurantQueries, ownerID uuid.UUID, status int) {
	v, err := q.GetOwned(c.Request.Context(), ownerID)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(status, v)
}

func parseIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return uuid.Nil, false
	}
	return id, true
}
