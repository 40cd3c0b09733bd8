package repositories

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"trailbook/internal/models/db_models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A single connection keeps the in-memory database alive and shared.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(db_models.AllModels()...))
	return db
}

func mustAccount(t *testing.T, db *gorm.DB, email string) db_models.Account {
	t.Helper()
	account := db_models.Account{Email: email}
	require.NoError(t, db.Create(&account).Error)
	return account
}

type routeOpt func(*db_models.Route)

func mustRoute(t *testing.T, db *gorm.DB, name string, opts ...routeOpt) db_models.Route {
	t.Helper()
	route := db_models.Route{
		Name:              name,
		City:              "Lisbon",
		Mood:              db_models.MoodCalm,
		Category:          db_models.CategoryMixed,
		BudgetMin:         decimal.Zero,
		BudgetMax:         decimal.NewFromInt(20),
		EstimatedDuration: 60,
	}
	for _, opt := range opts {
		opt(&route)
	}
	require.NoError(t, db.Create(&route).Error)
	return route
}

func ctx() context.Context { return context.Background() }

func ids(routes ...db_models.Route) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(routes))
	for _, r := range routes {
		out = append(out, r.ID)
	}
	return out
}
