package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"trailbook/pkg/middleware"
	"trailbook/pkg/utils"
)

// uuidParam parses a path parameter, answering 400 itself when malformed.
func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

// requireUser returns the authenticated caller. Routes using it sit behind
// JWTAuthMiddleware, so a miss is answered with 401.
func requireUser(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
		return uuid.Nil, false
	}
	return userID, true
}
