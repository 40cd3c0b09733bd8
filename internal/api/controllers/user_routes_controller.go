package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"trailbook/internal/models/request_models"
	"trailbook/internal/services"
	"trailbook/pkg/utils"
)

type UserRoutesController struct {
	userRouteService services.UserRouteServiceInterface
	statsService     services.StatsServiceInterface
}

func NewUserRoutesController(userRouteService services.UserRouteServiceInterface, statsService services.StatsServiceInterface) *UserRoutesController {
	return &UserRoutesController{
		userRouteService: userRouteService,
		statsService:     statsService,
	}
}

// ListUserRoutes godoc
// @Summary List saved routes
// @Tags UserRoutes
// @Produce json
// @Security BearerAuth
// @Param status query string false "planned, in_progress or completed"
// @Param is_favorite query string false "true to list favorites only"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /user/routes [get]
func (u *UserRoutesController) ListUserRoutes(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var query request_models.UserRouteListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid status")
		return
	}

	entries, err := u.userRouteService.ListUserRoutes(c.Request.Context(), userID, query.Status, query.IsFavorite)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, entries, "Saved routes fetched successfully")
}

// CreateUserRoute godoc
// @Summary Save a route
// @Tags UserRoutes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.CreateUserRouteRequest true "Route to save"
// @Success 201 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /user/routes [post]
func (u *UserRoutesController) CreateUserRoute(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req request_models.CreateUserRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}
	routeID, err := uuid.Parse(req.RouteID)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid route_id")
		return
	}

	entry, err := u.userRouteService.CreateUserRoute(c.Request.Context(), userID, routeID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, entry, "Route saved successfully")
}

// GetUserRoute godoc
// @Summary Get a saved route
// @Tags UserRoutes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Saved route ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /user/routes/{id} [get]
func (u *UserRoutesController) GetUserRoute(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	entry, err := u.userRouteService.GetUserRoute(c.Request.Context(), userID, id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, entry, "Saved route fetched successfully")
}

// UpdateUserRoute godoc
// @Summary Update a saved route
// @Description Partial update; null clears a date. Completing a route does not set date_completed.
// @Tags UserRoutes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Saved route ID"
// @Param request body request_models.UpdateUserRouteRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /user/routes/{id} [patch]
func (u *UserRoutesController) UpdateUserRoute(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var req request_models.UpdateUserRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	entry, err := u.userRouteService.UpdateUserRoute(c.Request.Context(), userID, id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, entry, "Saved route updated successfully")
}

// DeleteUserRoute godoc
// @Summary Remove a saved route
// @Tags UserRoutes
// @Security BearerAuth
// @Param id path string true "Saved route ID"
// @Success 204
// @Failure 404 {object} utils.APIResponse
// @Router /user/routes/{id} [delete]
func (u *UserRoutesController) DeleteUserRoute(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	if err := u.userRouteService.DeleteUserRoute(c.Request.Context(), userID, id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondNoContent(c)
}

// GetStats godoc
// @Summary Travel statistics of the current user
// @Tags UserRoutes
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /users/me/stats [get]
func (u *UserRoutesController) GetStats(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	stats, err := u.statsService.GetUserStats(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, stats, "Stats fetched successfully")
}
