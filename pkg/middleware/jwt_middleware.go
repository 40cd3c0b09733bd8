package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"trailbook/pkg/utils"
)

const userIDKey = "user_id"

// TokenValidator is satisfied by *utils.TokenIssuer.
type TokenValidator interface {
	ValidateToken(tokenString, wantType string) (*utils.Claims, error)
}

// JWTAuthMiddleware rejects requests without a valid access token.
func JWTAuthMiddleware(tokens TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.AbortWithError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			return
		}
		if !authenticate(c, tokens, strings.TrimPrefix(authHeader, "Bearer ")) {
			utils.AbortWithError(c, http.StatusUnauthorized, "Invalid or expired token")
			return
		}
		c.Next()
	}
}

// OptionalJWTAuthMiddleware lets anonymous requests through but still rejects
// a bearer token that does not validate.
func OptionalJWTAuthMiddleware(tokens TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}
		if !strings.HasPrefix(authHeader, "Bearer ") ||
			!authenticate(c, tokens, strings.TrimPrefix(authHeader, "Bearer ")) {
			utils.AbortWithError(c, http.StatusUnauthorized, "Invalid or expired token")
			return
		}
		c.Next()
	}
}

func authenticate(c *gin.Context, tokens TokenValidator, tokenString string) bool {
	claims, err := tokens.ValidateToken(tokenString, utils.TokenTypeAccess)
	if err != nil {
		return false
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return false
	}
	c.Set(userIDKey, userID)
	return true
}

// CurrentUserID returns the authenticated caller, if any.
func CurrentUserID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(userIDKey)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

// CurrentUserIDPtr is CurrentUserID shaped for services that take an optional
// viewer.
func CurrentUserIDPtr(c *gin.Context) *uuid.UUID {
	if id, ok := CurrentUserID(c); ok {
		return &id
	}
	return nil
}
