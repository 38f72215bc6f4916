package api

import (
	"net/http"

	reqdto "digital-menu/internal/handler/dto/request"
	resdto "digital-menu/internal/handler/dto/response"
	"digital-menu/internal/handler/httperr"
	"digital-menu/internal/handler/middleware"
	"digital-menu/internal/usecase/commands"
	"digital-menu/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type MenuHandler struct {
	cmds commands.MenuCommands
	q    queries.RestaurantQueries
}

func NewMenuHandler(cmds commands.MenuCommands, q queries.RestaurantQueries) *MenuHandler {
	return &MenuHandler{cmds: cmds, q: q}
}

// @Summary Create category
// @Tags owner
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CategoryRequest true "Category"
// @Success 201 {object} queries.RestaurantView
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /owner/categories [post]
func (h *MenuHandler) CreateCategory(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}
	var req reqdto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if _, err := h.cmds.CreateCategory(c.Request.Context(), ownerID, req.Name, req.SortOrder); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	respondOwned(c, h.q, ownerID, http.StatusCreated)
}

// @Summary Update category
// @Tags owner
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Param request body reqdto.CategoryRequest true "Category"
// @Success 200 {object} queries.RestaurantView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /owner/categories/{id} [put]
func (h *MenuHandler) UpdateCategory(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req reqdto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.UpdateCategory(c.Request.Context(), ownerID, id, req.Name, req.SortOrder); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	respondOwned(c, h.q, ownerID, http.StatusOK)
}

// @Summary Delete category
// @Description Deletes the category and its items
// @Tags owner
// @Security BearerAuth
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} queries.RestaurantView
// @Failure 404 {object} httperr.Response
// @Router /owner/categories/{id} [delete]
func (h *MenuHandler) DeleteCategory(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.cmds.DeleteCategory(c.Request.Context(), ownerID, id); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	respondOwned(c, h.q, ownerID, http.StatusOK)
}

// @Summary Create menu item
// @Tags owner
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Param request body reqdto.MenuItemRequest true "Menu item"
// @Success 201 {object} queries.RestaurantView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /owner/categories/{id}/items [post]
func (h *MenuHandler) CreateItem(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}
	categoryID, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req reqdto.MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if _, err := h.cmds.CreateMenuItem(c.Request.Context(), ownerID, categoryID, req.ToParams(), req.SortOrder); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	respondOwned(c, h.q, ownerID, http.StatusCreated)
}

// @Summary Update menu item
// @Tags owner
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Menu item ID"
// @Param request body reqdto.MenuItemRequest true "Menu item"
// @Success 200 {object} queries.RestaurantView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /owner/items/{id} [put]
func (h *MenuHandler) UpdateItem(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req reqdto.MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.UpdateMenuItem(c.Request.Context(), ownerID, id, req.ToParams(), req.SortOrder); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	respondOwned(c, h.q, ownerID, http.StatusOK)
}

// @Summary Toggle sold out
// @Description Flips the sold-out flag of an item
// @Tags owner
// @Security BearerAuth
// @Produce json
// @Param id path string true "Menu item ID"
// @Success 200 {object} resdto.SoldOutResponse
// @Failure 404 {object} httperr.Response
// @Router /owner/items/{id}/sold-out [post]
func (h *MenuHandler) ToggleSoldOut(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	soldOut, err := h.cmds.ToggleSoldOut(c.Request.Context(), ownerID, id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	v, err := h.q.GetOwned(c.Request.Context(), ownerID)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.SoldOutResponse{ItemID: id, IsSoldOut: soldOut, Aggregate: v})
}
