package controllers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"trailbook/pkg/utils"
)

func TestListRoutes_AnonymousAndAuthenticated(t *testing.T) {
	r, f := newRouter()

	w, env := do(t, r, http.MethodGet, "/routes?city=lis&ordering=-avg_rating", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "success", env.Status)
	assert.NotEmpty(t, env.TraceID)
	assert.Nil(t, f.routes.lastViewer)
	assert.Equal(t, "lis", f.routes.lastQuery.City)
	assert.Equal(t, 1, f.routes.lastQuery.Page)
	assert.Equal(t, 20, f.routes.lastQuery.PageSize)

	userID := uuid.New()
	w, _ = do(t, r, http.MethodGet, "/routes", accessToken(t, userID), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, f.routes.lastViewer)
	assert.Equal(t, userID, *f.routes.lastViewer)
}

func TestListRoutes_InvalidInput(t *testing.T) {
	r, f := newRouter()

	w, _ := do(t, r, http.MethodGet, "/routes", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code, "a present but invalid token is rejected")

	w, _ = do(t, r, http.MethodGet, "/routes?pageSize=500", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	f.routes.err = fmt.Errorf("%w: budget_max__lte must be a number", utils.ErrInvalidFilter)
	w, _ = do(t, r, http.MethodGet, "/routes?budget_max__lte=abc", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetRoute(t *testing.T) {
	r, f := newRouter()

	w, _ := do(t, r, http.MethodGet, "/routes/not-a-uuid", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = do(t, r, http.MethodGet, "/routes/"+uuid.NewString(), "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	f.routes.err = utils.ErrRouteNotFound
	w, env := do(t, r, http.MethodGet, "/routes/"+uuid.NewString(), "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "error", env.Status)

	f.routes.err = nil
	w, _ = do(t, r, http.MethodGet, "/routes/"+uuid.NewString()+"/points", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
