package repositories

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"trailbook/internal/models/db_models"
)

func names(routes []db_models.Route) []string {
	out := make([]string, 0, len(routes))
	for _, r := range routes {
		out = append(out, r.Name)
	}
	return out
}

func TestRouteRepository_ListRoutesFilters(t *testing.T) {
	db := newTestDB(t)
	repo := NewRouteRepository(db)

	mustRoute(t, db, "Harbour walk", func(r *db_models.Route) {
		r.City = "Porto"
		r.Mood = db_models.MoodAdventurous
		r.BudgetMax = decimal.NewFromInt(50)
		r.EstimatedDuration = 180
	})
	mustRoute(t, db, "Museum morning", func(r *db_models.Route) {
		r.City = "Lisbon"
		r.Category = db_models.CategoryMuseums
		r.BudgetMin = decimal.NewFromInt(10)
		r.BudgetMax = decimal.NewFromInt(30)
		r.Description = "Tiles and azulejos"
	})
	mustRoute(t, db, "Cafe crawl", func(r *db_models.Route) {
		r.City = "lisbon"
		r.Category = db_models.CategoryCafes
		r.BudgetMax = decimal.RequireFromString("12.50")
		r.EstimatedDuration = 90
	})

	base := RouteFilter{OrderBy: "created_at", Page: 1, PageSize: 20}

	tests := []struct {
		name   string
		mutate func(f *RouteFilter)
		want   []string
	}{
		{"city is case-insensitive substring", func(f *RouteFilter) { f.City = "LISB" }, []string{"Museum morning", "Cafe crawl"}},
		{"mood exact", func(f *RouteFilter) { f.Mood = "adventurous" }, []string{"Harbour walk"}},
		{"category exact", func(f *RouteFilter) { f.Category = "cafes" }, []string{"Cafe crawl"}},
		{"budget_max lte", func(f *RouteFilter) { d := decimal.NewFromInt(30); f.BudgetMaxLte = &d }, []string{"Museum morning", "Cafe crawl"}},
		{"budget_max gte", func(f *RouteFilter) { d := decimal.NewFromInt(30); f.BudgetMaxGte = &d }, []string{"Harbour walk", "Museum morning"}},
		{"budget_min gte", func(f *RouteFilter) { d := decimal.NewFromInt(5); f.BudgetMinGte = &d }, []string{"Museum morning"}},
		{"duration lte", func(f *RouteFilter) { d := 90; f.DurationLte = &d }, []string{"Museum morning", "Cafe crawl"}},
		{"search matches description", func(f *RouteFilter) { f.Search = "AZULEJO" }, []string{"Museum morning"}},
		{"search matches city", func(f *RouteFilter) { f.Search = "port" }, []string{"Harbour walk"}},
		{"like metacharacters are literal", func(f *RouteFilter) { f.Search = "%" }, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := base
			tt.mutate(&f)
			routes, total, err := repo.ListRoutes(ctx(), f)
			require.NoError(t, err)
			assert.ElementsMatch(t, tt.want, names(routes))
			assert.EqualValues(t, len(tt.want), total)
		})
	}
}

func TestRouteRepository_ListRoutesOrderingAndPagination(t *testing.T) {
	db := newTestDB(t)
	repo := NewRouteRepository(db)

	now := time.Now()
	for i, name := range []string{"a", "b", "c", "d", "e"} {
		created := now.Add(time.Duration(i) * time.Minute)
		mustRoute(t, db, name, func(r *db_models.Route) {
			r.CreatedAt = created
			r.EstimatedDuration = 100 - i*10
		})
	}

	routes, total, err := repo.ListRoutes(ctx(), RouteFilter{OrderBy: "created_at", Desc: true, Page: 1, PageSize: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 5, total)
	assert.Equal(t, []string{"e", "d"}, names(routes))

	routes, _, err = repo.ListRoutes(ctx(), RouteFilter{OrderBy: "created_at", Desc: true, Page: 3, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, names(routes))

	routes, _, err = repo.ListRoutes(ctx(), RouteFilter{OrderBy: "estimated_duration", Page: 1, PageSize: 5})
	require.NoError(t, err)
	assert.Equal(t, []string{"e", "d", "c", "b", "a"}, names(routes))
}

func TestRouteRepository_GetRouteByIDOrdersPointsAndImages(t *testing.T) {
	db := newTestDB(t)
	repo := NewRouteRepository(db)

	route := mustRoute(t, db, "Old town")
	first := time.Now()
	points := []db_models.RoutePoint{
		{RouteID: route.ID, Name: "third", SortOrder: 2},
		{RouteID: route.ID, Name: "first", SortOrder: 0},
		{RouteID: route.ID, Name: "second-a", SortOrder: 1, BaseModel: db_models.BaseModel{CreatedAt: first}},
		{RouteID: route.ID, Name: "second-b", SortOrder: 1, BaseModel: db_models.BaseModel{CreatedAt: first.Add(time.Second)}},
	}
	require.NoError(t, db.Create(&points).Error)
	require.NoError(t, db.Create(&[]db_models.RouteImage{
		{RouteID: route.ID, Image: "b.jpg", SortOrder: 1},
		{RouteID: route.ID, Image: "a.jpg", SortOrder: 0},
	}).Error)

	got, err := repo.GetRouteByID(ctx(), route.ID)
	require.NoError(t, err)
	require.NotNil(t, got)

	var pointNames []string
	for _, p := range got.Points {
		pointNames = append(pointNames, p.Name)
	}
	assert.Equal(t, []string{"first", "second-a", "second-b", "third"}, pointNames)
	require.Len(t, got.Images, 2)
	assert.Equal(t, "a.jpg", got.Images[0].Image)

	listed, err := repo.ListPoints(ctx(), route.ID)
	require.NoError(t, err)
	assert.Len(t, listed, 4)
	assert.Equal(t, "first", listed[0].Name)

	missing, err := repo.GetRouteByID(ctx(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, missing)

	none, err := repo.ListPoints(ctx(), uuid.New())
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestRouteRepository_CountsAndViewerEntries(t *testing.T) {
	db := newTestDB(t)
	repo := NewRouteRepository(db)

	alice := mustAccount(t, db, "alice@example.com")
	bob := mustAccount(t, db, "bob@example.com")
	r1 := mustRoute(t, db, "r1")
	r2 := mustRoute(t, db, "r2")

	require.NoError(t, db.Create(&[]db_models.Rating{
		{UserID: alice.ID, RouteID: r1.ID, Score: 5},
		{UserID: bob.ID, RouteID: r1.ID, Score: 3},
	}).Error)
	require.NoError(t, db.Create(&db_models.UserRoute{UserID: alice.ID, RouteID: r2.ID, IsFavorite: true}).Error)

	counts, err := repo.CountRatings(ctx(), ids(r1, r2))
	require.NoError(t, err)
	assert.EqualValues(t, 2, counts[r1.ID])
	assert.EqualValues(t, 0, counts[r2.ID])

	saved, err := repo.FindUserRoutes(ctx(), alice.ID, ids(r1, r2))
	require.NoError(t, err)
	assert.Len(t, saved, 1)
	assert.True(t, saved[r2.ID].IsFavorite)

	exists, err := repo.RouteExists(ctx(), r1.ID)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestRouteRepository_CreateCatalogAndCascade(t *testing.T) {
	db := newTestDB(t)
	repo := NewRouteRepository(db)

	require.NoError(t, repo.CreateCatalog(ctx(), []db_models.Route{{
		Name:      "Seeded",
		City:      "Madrid",
		Mood:      db_models.MoodCurious,
		Category:  db_models.CategoryParks,
		BudgetMax: decimal.NewFromInt(15),
		Points: []db_models.RoutePoint{
			{Name: "Retiro", Latitude: decimal.RequireFromString("40.415260"), Longitude: decimal.RequireFromString("-3.684416")},
		},
		Images: []db_models.RouteImage{{Image: "retiro.jpg", IsCover: true}},
	}}))

	var route db_models.Route
	require.NoError(t, db.Preload("Points").Preload("Images").First(&route, "name = ?", "Seeded").Error)
	require.Len(t, route.Points, 1)
	assert.Equal(t, "40.415260", route.Points[0].Latitude.StringFixed(6))

	require.NoError(t, db.Delete(&db_models.Route{}, "id = ?", route.ID).Error)
	var remaining int64
	require.NoError(t, db.Model(&db_models.RoutePoint{}).Count(&remaining).Error)
	assert.Zero(t, remaining)
}
