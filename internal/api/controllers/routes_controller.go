package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"trailbook/internal/models/request_models"
	"trailbook/internal/services"
	"trailbook/pkg/middleware"
	"trailbook/pkg/utils"
)

type RoutesController struct {
	routeService services.RouteServiceInterface
}

func NewRoutesController(routeService services.RouteServiceInterface) *RoutesController {
	return &RoutesController{
		routeService: routeService,
	}
}

// ListRoutes godoc
// @Summary List routes
// @Description Filter, search, order and paginate the route catalog
// @Tags Routes
// @Produce json
// @Param city query string false "City (case-insensitive substring)"
// @Param mood query string false "calm, adventurous or curious"
// @Param category query string false "parks, museums, cafes or mixed"
// @Param budget_max__lte query number false "Maximum budget upper bound"
// @Param budget_max__gte query number false "Maximum budget lower bound"
// @Param budget_min__gte query number false "Minimum budget lower bound"
// @Param duration__lte query int false "Estimated duration upper bound (minutes)"
// @Param search query string false "Search name, city and description"
// @Param ordering query string false "avg_rating, estimated_duration, budget_max or created_at, '-' for descending"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(20) minimum(1) maximum(100)
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /routes [get]
func (r *RoutesController) ListRoutes(c *gin.Context) {
	var query request_models.RouteListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	page, err := r.routeService.ListRoutes(c.Request.Context(), query, middleware.CurrentUserIDPtr(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, page, "Routes fetched successfully")
}

// GetRoute godoc
// @Summary Get a route
// @Description Route detail with ordered points and images
// @Tags Routes
// @Produce json
// @Param id path string true "Route ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /routes/{id} [get]
func (r *RoutesController) GetRoute(c *gin.Context) {
	routeID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	route, err := r.routeService.GetRoute(c.Request.Context(), routeID, middleware.CurrentUserIDPtr(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, route, "Route fetched successfully")
}

// ListPoints godoc
// @Summary List route points
// @Tags Routes
// @Produce json
// @Param id path string true "Route ID"
// @Success 200 {object} utils.APIResponse
// @Router /routes/{id}/points [get]
func (r *RoutesController) ListPoints(c *gin.Context) {
	routeID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	points, err := r.routeService.ListPoints(c.Request.Context(), routeID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, points, "Points fetched successfully")
}
