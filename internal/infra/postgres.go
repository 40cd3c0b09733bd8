package infra

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"trailbook/internal/config"
	"trailbook/internal/logging"
	"trailbook/internal/models/db_models"
)

// GormConfig is shared by the API, the seeder and the tests so every
// connection translates driver errors into gorm sentinels.
func GormConfig(logLevel string) *gorm.Config {
	return &gorm.Config{
		Logger:         logging.GormLogger(logLevel),
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}
}

func InitPostgresql(cfg *config.Config) (*gorm.DB, error) {
	connectionPool, err := gorm.Open(postgres.Open(cfg.Database.URL), GormConfig(cfg.Logging.Level))
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	sqlDB, err := connectionPool.DB()
	if err != nil {
		return nil, fmt.Errorf("get database handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	if cfg.Database.AutoMigrate {
		if err := Migrate(connectionPool); err != nil {
			return nil, err
		}
	}

	logging.Info().Msg("PostgreSQL connection established")
	return connectionPool, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(db_models.AllModels()...); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		logging.Error().Err(err).Msg("Error getting database instance")
		return
	}

	if err := sqlDB.Close(); err != nil {
		logging.Error().Err(err).Msg("Error closing database connection")
	} else {
		logging.Info().Msg("PostgreSQL database connection closed successfully")
	}
}
