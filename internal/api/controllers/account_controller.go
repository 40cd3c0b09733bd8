package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"trailbook/internal/models/request_models"
	"trailbook/internal/services"
	"trailbook/pkg/utils"
)

type AccountController struct {
	accountService services.AccountServiceInterface
}

func NewAccountController(accountService services.AccountServiceInterface) *AccountController {
	return &AccountController{
		accountService: accountService,
	}
}

// GoogleLogin godoc
// @Summary Sign in with Google
// @Description Exchange a Google ID token for access and refresh tokens
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.GoogleLoginRequest true "Google credential"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /auth/google [post]
func (a *AccountController) GoogleLogin(c *gin.Context) {
	var req request_models.GoogleLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	tokens, err := a.accountService.GoogleLogin(c.Request.Context(), req.Credential)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, tokens, "Login successful")
}

// RefreshToken godoc
// @Summary Refresh the access token
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.RefreshTokenRequest true "Refresh token"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /auth/token/refresh [post]
func (a *AccountController) RefreshToken(c *gin.Context) {
	var req request_models.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	token, err := a.accountService.RefreshAccessToken(c.Request.Context(), req.Refresh)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, token, "Token refreshed successfully")
}

// Logout godoc
// @Summary Revoke a refresh token
// @Tags Accounts
// @Accept json
// @Param request body request_models.RefreshTokenRequest true "Refresh token"
// @Success 204
// @Failure 401 {object} utils.APIResponse
// @Router /auth/logout [post]
func (a *AccountController) Logout(c *gin.Context) {
	var req request_models.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := a.accountService.Logout(c.Request.Context(), req.Refresh); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondNoContent(c)
}

// GetMe godoc
// @Summary Current user profile
// @Tags Accounts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /users/me [get]
func (a *AccountController) GetMe(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	account, err := a.accountService.GetMe(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, account, "Profile fetched successfully")
}

// UpdateMe godoc
// @Summary Update the current user profile
// @Tags Accounts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /users/me [patch]
func (a *AccountController) UpdateMe(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req request_models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	account, err := a.accountService.UpdateMe(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, account, "Profile updated successfully")
}
