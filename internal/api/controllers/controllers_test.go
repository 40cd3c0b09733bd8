package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"trailbook/internal/models/db_models"
	"trailbook/internal/models/request_models"
	"trailbook/internal/models/response_models"
	"trailbook/pkg/middleware"
	"trailbook/pkg/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
	if err := utils.RegisterValidators(); err != nil {
		panic(err)
	}
}

var tokens = utils.NewTokenIssuer("controller-secret", time.Hour, time.Hour)

type envelope struct {
	Status  string          `json:"status"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	TraceID string          `json:"trace_id"`
	Data    json.RawMessage `json:"data"`
}

func do(t *testing.T, r http.Handler, method, path, token string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}

func accessToken(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	tok, err := tokens.CreateAccessToken(userID)
	require.NoError(t, err)
	return tok
}

// --- fakes ---

type fakeRouteService struct {
	lastViewer *uuid.UUID
	lastQuery  request_models.RouteListQuery
	err        error
}

func (f *fakeRouteService) ListRoutes(_ context.Context, q request_models.RouteListQuery, viewer *uuid.UUID) (*response_models.PageResponse[response_models.RouteSummary], error) {
	f.lastQuery, f.lastViewer = q, viewer
	if f.err != nil {
		return nil, f.err
	}
	return &response_models.PageResponse[response_models.RouteSummary]{
		Items: []response_models.RouteSummary{{Name: "r1", IsSaved: viewer != nil}},
		Total: 1, Page: q.Page, PageSize: q.PageSize,
	}, nil
}

func (f *fakeRouteService) GetRoute(_ context.Context, _ uuid.UUID, viewer *uuid.UUID) (*response_models.RouteDetail, error) {
	f.lastViewer = viewer
	if f.err != nil {
		return nil, f.err
	}
	return &response_models.RouteDetail{RouteSummary: response_models.RouteSummary{Name: "r1"}}, nil
}

func (f *fakeRouteService) ListPoints(context.Context, uuid.UUID) ([]response_models.RoutePointResponse, error) {
	return []response_models.RoutePointResponse{}, f.err
}

func (f *fakeRouteService) Summaries(context.Context, []db_models.Route, *uuid.UUID) ([]response_models.RouteSummary, error) {
	return nil, nil
}

type fakeRatingService struct {
	err        error
	lastScore  *int
	lastUserID uuid.UUID
}

func (f *fakeRatingService) ListRatings(context.Context, uuid.UUID) ([]response_models.RatingResponse, error) {
	return []response_models.RatingResponse{}, f.err
}

func (f *fakeRatingService) CreateRating(_ context.Context, userID, _ uuid.UUID, score int, _ string) (*response_models.RatingResponse, error) {
	f.lastUserID = userID
	if f.err != nil {
		return nil, f.err
	}
	return &response_models.RatingResponse{Score: score}, nil
}

func (f *fakeRatingService) UpdateRating(_ context.Context, _, _, _ uuid.UUID, score *int, _ *string) (*response_models.RatingResponse, error) {
	f.lastScore = score
	if f.err != nil {
		return nil, f.err
	}
	return &response_models.RatingResponse{}, nil
}

func (f *fakeRatingService) DeleteRating(context.Context, uuid.UUID, uuid.UUID, uuid.UUID) error {
	return f.err
}

type fakeUserRouteService struct {
	err       error
	lastPatch request_models.UpdateUserRouteRequest
}

func (f *fakeUserRouteService) ListUserRoutes(context.Context, uuid.UUID, string, *string) ([]response_models.UserRouteResponse, error) {
	return []response_models.UserRouteResponse{}, f.err
}

func (f *fakeUserRouteService) GetUserRoute(context.Context, uuid.UUID, uuid.UUID) (*response_models.UserRouteResponse, error) {
	return &response_models.UserRouteResponse{}, f.err
}

func (f *fakeUserRouteService) CreateUserRoute(context.Context, uuid.UUID, uuid.UUID) (*response_models.UserRouteResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &response_models.UserRouteResponse{Status: "planned"}, nil
}

func (f *fakeUserRouteService) UpdateUserRoute(_ context.Context, _, _ uuid.UUID, patch request_models.UpdateUserRouteRequest) (*response_models.UserRouteResponse, error) {
	f.lastPatch = patch
	return &response_models.UserRouteResponse{}, f.err
}

func (f *fakeUserRouteService) DeleteUserRoute(context.Context, uuid.UUID, uuid.UUID) error {
	return f.err
}

type fakeStatsService struct{}

func (fakeStatsService) GetUserStats(context.Context, uuid.UUID) (*response_models.UserStatsResponse, error) {
	return &response_models.UserStatsResponse{TotalBudget: "0.00"}, nil
}

type fakeWeatherService struct {
	err error
}

func (f *fakeWeatherService) GetCurrentWeather(_ context.Context, city string) (*response_models.WeatherResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &response_models.WeatherResponse{City: city}, nil
}

// --- router ---

type fakes struct {
	routes     *fakeRouteService
	ratings    *fakeRatingService
	userRoutes *fakeUserRouteService
	weather    *fakeWeatherService
}

func newRouter() (*gin.Engine, *fakes) {
	f := &fakes{
		routes:     &fakeRouteService{},
		ratings:    &fakeRatingService{},
		userRoutes: &fakeUserRouteService{},
		weather:    &fakeWeatherService{},
	}
	routesController := NewRoutesController(f.routes)
	ratingsController := NewRatingsController(f.ratings)
	userRoutesController := NewUserRoutesController(f.userRoutes, fakeStatsService{})
	weatherController := NewWeatherController(f.weather)

	auth := middleware.JWTAuthMiddleware(tokens)
	optional := middleware.OptionalJWTAuthMiddleware(tokens)

	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())
	r.GET("/routes", optional, routesController.ListRoutes)
	r.GET("/routes/:id", optional, routesController.GetRoute)
	r.GET("/routes/:id/points", routesController.ListPoints)
	r.GET("/routes/:id/ratings", ratingsController.ListRatings)
	r.POST("/routes/:id/ratings", auth, ratingsController.CreateRating)
	r.PUT("/routes/:id/ratings/:ratingId", auth, ratingsController.ReplaceRating)
	r.PATCH("/routes/:id/ratings/:ratingId", auth, ratingsController.PatchRating)
	r.DELETE("/routes/:id/ratings/:ratingId", auth, ratingsController.DeleteRating)
	r.GET("/user/routes", auth, userRoutesController.ListUserRoutes)
	r.POST("/user/routes", auth, userRoutesController.CreateUserRoute)
	r.PATCH("/user/routes/:id", auth, userRoutesController.UpdateUserRoute)
	r.DELETE("/user/routes/:id", auth, userRoutesController.DeleteUserRoute)
	r.GET("/users/me/stats", auth, userRoutesController.GetStats)
	r.GET("/weather", weatherController.GetWeather)
	return r, f
}
