package db_fx

import (
	"context"

	"go.uber.org/fx"
	"gorm.io/gorm"
	"trailbook/internal/config"
	"trailbook/internal/infra"
)

var Module = fx.Provide(
	provideDB)

func provideDB(lc fx.Lifecycle, cfg *config.Config) (*gorm.DB, error) {
	db, err := infra.InitPostgresql(cfg)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			infra.ClosePostgresql(db)
			return nil
		},
	})
	return db, nil
}
