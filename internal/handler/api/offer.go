package api

import (
	"net/http"

	reqdto "digital-menu/internal/handler/dto/request"
	"digital-menu/internal/handler/httperr"
	"digital-menu/internal/handler/middleware"
	"digital-menu/internal/usecase/commands"
	"digital-menu/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type OfferHandler struct {
	cmds commands.OfferCommands
	q    queries.RestaurantQueries
}

func NewOfferHandler(cmds commands.OfferCommands, q queries.RestaurantQueries) *OfferHandler {
	return &OfferHandler{cmds: cmds, q: q}
}

// @Summary Create offer
// @Tags owner
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.OfferRequest true "Offer"
// @Success 201 {object} queries.RestaurantView
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /owner/offers [post]
func (h *OfferHandler) Create(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}
	var req reqdto.OfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if _, err := h.cmds.CreateOffer(c.Request.Context(), ownerID, req.ToParams()); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	respondOwned(c, h.q, ownerID, http.StatusCreated)
}

// @Summary Update offer
// @Tags owner
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Offer ID"
// @Param request body reqdto.OfferRequest true "Offer"
// @Success 200 {object} queries.RestaurantView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /owner/offers/{id} [put]
func (h *OfferHandler) Update(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req reqdto.OfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.UpdateOffer(c.Request.Context(), ownerID, id, req.ToParams()); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	respondOwned(c, h.q, ownerID, http.StatusOK)
}

// @Summary Delete offer
// @Tags owner
// @Security BearerAuth
// @Produce json
// @Param id path string true "Offer ID"
// @Success 200 {object} queries.RestaurantView
// @Failure 404 {object} httperr.Response
// @Router /owner/offers/{id} [delete]
func (h *OfferHandler) Delete(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.cmds.DeleteOffer(c.Request.Context(), ownerID, id); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	respondOwned(c, h.q, ownerID, http.StatusOK)
}
