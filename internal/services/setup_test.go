package services

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"trailbook/internal/models/db_models"
	"trailbook/internal/repositories"
)

type testEnv struct {
	db            *gorm.DB
	routeRepo     repositories.RouteRepositoryInterface
	ratingRepo    repositories.RatingRepositoryInterface
	userRouteRepo repositories.UserRouteRepositoryInterface
	accountRepo   repositories.AccountRepository
	routes        RouteServiceInterface
	ratings       RatingServiceInterface
	userRoutes    UserRouteServiceInterface
	stats         StatsServiceInterface
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(db_models.AllModels()...))

	env := &testEnv{
		db:            db,
		routeRepo:     repositories.NewRouteRepository(db),
		ratingRepo:    repositories.NewRatingRepository(db, ComputeAverageRating),
		userRouteRepo: repositories.NewUserRouteRepository(db),
		accountRepo:   repositories.NewAccountRepository(db),
	}
	env.routes = NewRouteService(env.routeRepo, "https://cdn.example.com/media/")
	env.ratings = NewRatingService(env.ratingRepo, env.routeRepo)
	env.userRoutes = NewUserRouteService(env.userRouteRepo, env.routeRepo, env.routes)
	env.stats = NewStatsService(env.userRouteRepo)
	return env
}

func (e *testEnv) account(t *testing.T, email string) db_models.Account {
	t.Helper()
	a := db_models.Account{Email: email}
	require.NoError(t, e.db.Create(&a).Error)
	return a
}

func (e *testEnv) route(t *testing.T, name string, budgetMax string, duration int) db_models.Route {
	t.Helper()
	r := db_models.Route{
		Name:              name,
		City:              "Lisbon",
		Mood:              db_models.MoodCalm,
		Category:          db_models.CategoryMixed,
		BudgetMax:         decimal.RequireFromString(budgetMax),
		EstimatedDuration: duration,
	}
	require.NoError(t, e.db.Create(&r).Error)
	return r
}

func bg() context.Context { return context.Background() }
