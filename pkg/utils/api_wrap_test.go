package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestHandleServiceError_StatusCodes(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{ErrRouteNotFound, http.StatusNotFound},
		{ErrRatingNotFound, http.StatusNotFound},
		{ErrUserRouteNotFound, http.StatusNotFound},
		{ErrAccountNotFound, http.StatusNotFound},
		{ErrAlreadyRated, http.StatusBadRequest},
		{ErrInvalidScore, http.StatusBadRequest},
		{ErrInvalidStatus, http.StatusBadRequest},
		{fmt.Errorf("%w: mood", ErrInvalidFilter), http.StatusBadRequest},
		{ErrInvalidPage, http.StatusBadRequest},
		{ErrInvalidPageSize, http.StatusBadRequest},
		{ErrCredentialRequired, http.StatusBadRequest},
		{ErrInvalidGoogleToken, http.StatusBadRequest},
		{ErrGoogleEmailMissing, http.StatusBadRequest},
		{ErrRouteAlreadySaved, http.StatusConflict},
		{ErrInvalidToken, http.StatusUnauthorized},
		{ErrCityRequired, http.StatusBadRequest},
		{ErrCityNotFound, http.StatusNotFound},
		{ErrWeatherUpstream, http.StatusBadGateway},
		{ErrWeatherUnreachable, http.StatusBadGateway},
		{ErrWeatherNotConfigured, http.StatusServiceUnavailable},
		{fmt.Errorf("%w: connection refused", ErrDatabaseError), http.StatusInternalServerError},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			c.Set("trace_id", "trace-1")

			HandleServiceError(c, tt.err)

			assert.Equal(t, tt.want, w.Code)
			var body APIResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, "error", body.Status)
			assert.Equal(t, tt.want, body.Code)
			assert.Equal(t, "trace-1", body.TraceID)
		})
	}
}

func TestHandleServiceError_HidesDatabaseDetails(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	HandleServiceError(c, fmt.Errorf("%w: password authentication failed", ErrDatabaseError))

	assert.NotContains(t, w.Body.String(), "password")
	assert.Contains(t, w.Body.String(), "Internal server error")
}

func TestRespondHelpers(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	RespondCreated(c, map[string]int{"n": 1}, "created")
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"status":"success","code":201,"message":"created","data":{"n":1}}`, w.Body.String())

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	AbortWithError(c, http.StatusUnauthorized, "nope")
	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
