package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"trailbook/internal/logging"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	respond(c, http.StatusOK, data, message)
}

func RespondCreated(c *gin.Context, data interface{}, message string) {
	respond(c, http.StatusCreated, data, message)
}

func RespondNoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func respond(c *gin.Context, code int, data interface{}, message string) {
	c.JSON(code, APIResponse{
		Status:  "success",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

// AbortWithError writes the error envelope and stops the handler chain.
func AbortWithError(c *gin.Context, code int, message string) {
	RespondError(c, code, message)
	c.Abort()
}

func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrRouteNotFound),
		errors.Is(err, ErrRatingNotFound),
		errors.Is(err, ErrUserRouteNotFound),
		errors.Is(err, ErrAccountNotFound):
		RespondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrAlreadyRated):
		RespondError(c, http.StatusBadRequest, "You have already rated this route.")
	case errors.Is(err, ErrInvalidScore),
		errors.Is(err, ErrInvalidStatus),
		errors.Is(err, ErrInvalidFilter),
		errors.Is(err, ErrCredentialRequired),
		errors.Is(err, ErrInvalidGoogleToken),
		errors.Is(err, ErrGoogleEmailMissing),
		errors.Is(err, ErrCityRequired):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrInvalidPage):
		RespondError(c, http.StatusBadRequest, "Page must be greater than 0")
	case errors.Is(err, ErrInvalidPageSize):
		RespondError(c, http.StatusBadRequest, "Page size must be between 1 and 100")
	case errors.Is(err, ErrRouteAlreadySaved):
		RespondError(c, http.StatusConflict, err.Error())
	case errors.Is(err, ErrInvalidToken):
		RespondError(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, ErrCityNotFound):
		RespondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrWeatherUpstream), errors.Is(err, ErrWeatherUnreachable):
		logging.Ctx(c.Request.Context()).Warn().Err(err).Msg("weather upstream failure")
		RespondError(c, http.StatusBadGateway, err.Error())
	case errors.Is(err, ErrWeatherNotConfigured):
		RespondError(c, http.StatusServiceUnavailable, err.Error())
	case errors.Is(err, ErrDatabaseError):
		logging.Ctx(c.Request.Context()).Error().Err(err).Msg("database error")
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		logging.Ctx(c.Request.Context()).Error().Err(err).Msg("unhandled service error")
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
