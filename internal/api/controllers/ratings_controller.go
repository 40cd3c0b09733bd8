package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"trailbook/internal/models/request_models"
	"trailbook/internal/services"
	"trailbook/pkg/utils"
)

type RatingsController struct {
	ratingService services.RatingServiceInterface
}

func NewRatingsController(ratingService services.RatingServiceInterface) *RatingsController {
	return &RatingsController{
		ratingService: ratingService,
	}
}

// ListRatings godoc
// @Summary List ratings of a route
// @Tags Ratings
// @Produce json
// @Param id path string true "Route ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /routes/{id}/ratings [get]
func (r *RatingsController) ListRatings(c *gin.Context) {
	routeID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	ratings, err := r.ratingService.ListRatings(c.Request.Context(), routeID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, ratings, "Ratings fetched successfully")
}

// CreateRating godoc
// @Summary Rate a route
// @Description One rating per user and route; the route's average is recomputed
// @Tags Ratings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Route ID"
// @Param request body request_models.CreateRatingRequest true "Rating payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /routes/{id}/ratings [post]
func (r *RatingsController) CreateRating(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	routeID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var req request_models.CreateRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	rating, err := r.ratingService.CreateRating(c.Request.Context(), userID, routeID, req.Score, req.Comment)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, rating, "Rating created successfully")
}

// ReplaceRating godoc
// @Summary Replace a rating
// @Tags Ratings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Route ID"
// @Param ratingId path string true "Rating ID"
// @Param request body request_models.UpdateRatingRequest true "Score is required"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /routes/{id}/ratings/{ratingId} [put]
func (r *RatingsController) ReplaceRating(c *gin.Context) {
	r.updateRating(c, true)
}

// PatchRating godoc
// @Summary Partially update a rating
// @Tags Ratings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Route ID"
// @Param ratingId path string true "Rating ID"
// @Param request body request_models.UpdateRatingRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /routes/{id}/ratings/{ratingId} [patch]
func (r *RatingsController) PatchRating(c *gin.Context) {
	r.updateRating(c, false)
}

func (r *RatingsController) updateRating(c *gin.Context, requireScore bool) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	routeID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	ratingID, ok := uuidParam(c, "ratingId")
	if !ok {
		return
	}

	var req request_models.UpdateRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if requireScore && req.Score == nil {
		utils.RespondError(c, http.StatusBadRequest, "score is required")
		return
	}

	rating, err := r.ratingService.UpdateRating(c.Request.Context(), userID, routeID, ratingID, req.Score, req.Comment)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, rating, "Rating updated successfully")
}

// DeleteRating godoc
// @Summary Delete a rating
// @Tags Ratings
// @Security BearerAuth
// @Param id path string true "Route ID"
// @Param ratingId path string true "Rating ID"
// @Success 204
// @Failure 404 {object} utils.APIResponse
// @Router /routes/{id}/ratings/{ratingId} [delete]
func (r *RatingsController) DeleteRating(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	routeID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	ratingID, ok := uuidParam(c, "ratingId")
	if !ok {
		return
	}

	if err := r.ratingService.DeleteRating(c.Request.Context(), userID, routeID, ratingID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondNoContent(c)
}
