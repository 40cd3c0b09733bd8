package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"trailbook/internal/models/db_models"
	"trailbook/internal/models/request_models"
	"trailbook/pkg/utils"
)

func TestParseRouteFilter(t *testing.T) {
	f, err := ParseRouteFilter(request_models.RouteListQuery{
		City:         " Lisbon ",
		Mood:         "calm",
		BudgetMaxLte: "25.50",
		DurationLte:  "120",
		Ordering:     "avg_rating",
	})
	require.NoError(t, err)
	assert.Equal(t, "Lisbon", f.City)
	assert.Equal(t, "25.5", f.BudgetMaxLte.String())
	assert.Equal(t, 120, *f.DurationLte)
	assert.Equal(t, "avg_rating", f.OrderBy)
	assert.False(t, f.Desc)
	assert.Equal(t, 1, f.Page)
	assert.Equal(t, 20, f.PageSize)

	f, err = ParseRouteFilter(request_models.RouteListQuery{Ordering: "-budget_max", Page: 2, PageSize: 5})
	require.NoError(t, err)
	assert.Equal(t, "budget_max", f.OrderBy)
	assert.True(t, f.Desc)

	f, err = ParseRouteFilter(request_models.RouteListQuery{Ordering: "name; DROP TABLE routes"})
	require.NoError(t, err)
	assert.Equal(t, "created_at", f.OrderBy)
	assert.True(t, f.Desc, "unknown ordering falls back to newest first")

	invalid := []request_models.RouteListQuery{
		{BudgetMaxLte: "cheap"},
		{BudgetMaxGte: "12,5"},
		{BudgetMinGte: "abc"},
		{DurationLte: "1.5"},
		{Mood: "grumpy"},
		{Category: "bars"},
	}
	for _, q := range invalid {
		_, err := ParseRouteFilter(q)
		assert.ErrorIs(t, err, utils.ErrInvalidFilter, "%+v", q)
	}

	_, err = ParseRouteFilter(request_models.RouteListQuery{Page: -1})
	assert.ErrorIs(t, err, utils.ErrInvalidPage)
	_, err = ParseRouteFilter(request_models.RouteListQuery{PageSize: 101})
	assert.ErrorIs(t, err, utils.ErrInvalidPageSize)
}

func TestPickCoverImage(t *testing.T) {
	assert.Nil(t, PickCoverImage(nil))

	images := []db_models.RouteImage{
		{Image: "c.jpg", SortOrder: 2},
		{Image: "b.jpg", SortOrder: 1, IsCover: true},
		{Image: "d.jpg", SortOrder: 0, IsCover: false},
		{Image: "a.jpg", SortOrder: 3, IsCover: true},
	}
	assert.Equal(t, "b.jpg", PickCoverImage(images).Image)

	noCover := []db_models.RouteImage{{Image: "x.jpg", SortOrder: 5}, {Image: "y.jpg", SortOrder: 1}}
	assert.Equal(t, "y.jpg", PickCoverImage(noCover).Image)
}

func TestResolveMediaURL(t *testing.T) {
	assert.Equal(t, "https://cdn.example.com/media/routes/a.jpg", ResolveMediaURL("https://cdn.example.com/media/", "/routes/a.jpg"))
	assert.Equal(t, "https://other.example.com/a.jpg", ResolveMediaURL("https://cdn.example.com/media", "https://other.example.com/a.jpg"))
	assert.Equal(t, "routes/a.jpg", ResolveMediaURL("", "routes/a.jpg"))
	assert.Equal(t, "", ResolveMediaURL("https://cdn.example.com", ""))
}

func TestRouteService_ListRoutesViewerFlags(t *testing.T) {
	env := newTestEnv(t)
	alice := env.account(t, "alice@example.com")
	saved := env.route(t, "Saved", "10", 30)
	env.route(t, "Plain", "10", 30)

	require.NoError(t, env.db.Create(&db_models.RouteImage{RouteID: saved.ID, Image: "routes/saved.jpg", IsCover: true}).Error)
	_, err := env.userRoutes.CreateUserRoute(bg(), alice.ID, saved.ID)
	require.NoError(t, err)

	page, err := env.routes.ListRoutes(bg(), request_models.RouteListQuery{Ordering: "created_at"}, &alice.ID)
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.EqualValues(t, 2, page.Total)

	byName := map[string]int{}
	for i, item := range page.Items {
		byName[item.Name] = i
	}
	s := page.Items[byName["Saved"]]
	assert.True(t, s.IsSaved)
	assert.False(t, s.IsFavorite)
	require.NotNil(t, s.CoverImage)
	assert.Equal(t, "https://cdn.example.com/media/routes/saved.jpg", *s.CoverImage)
	assert.Equal(t, "10.00", s.BudgetMax)
	assert.Equal(t, "0.00", s.AvgRating)

	p := page.Items[byName["Plain"]]
	assert.False(t, p.IsSaved)
	assert.Nil(t, p.CoverImage)

	anon, err := env.routes.ListRoutes(bg(), request_models.RouteListQuery{}, nil)
	require.NoError(t, err)
	for _, item := range anon.Items {
		assert.False(t, item.IsSaved)
		assert.False(t, item.IsFavorite)
	}
}

func TestRouteService_GetRouteAndPoints(t *testing.T) {
	env := newTestEnv(t)
	route := env.route(t, "Detail", "15.5", 45)
	image := "points/p.jpg"
	require.NoError(t, env.db.Create(&db_models.RoutePoint{RouteID: route.ID, Name: "Stop", Image: &image}).Error)

	detail, err := env.routes.GetRoute(bg(), route.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, "15.50", detail.BudgetMax)
	require.Len(t, detail.Points, 1)
	assert.Equal(t, "0.000000", detail.Points[0].Latitude)
	require.NotNil(t, detail.Points[0].Image)
	assert.Equal(t, "https://cdn.example.com/media/points/p.jpg", *detail.Points[0].Image)

	_, err = env.routes.GetRoute(bg(), uuid.New(), nil)
	assert.ErrorIs(t, err, utils.ErrRouteNotFound)

	points, err := env.routes.ListPoints(bg(), uuid.New())
	require.NoError(t, err)
	assert.Empty(t, points)
}
