// Command seed imports a route catalog from YAML.
//
//	seed -file routes.yaml
package main

import (
	"context"
	"errors"
	"flag"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"trailbook/internal/config"
	"trailbook/internal/infra"
	"trailbook/internal/logging"
	"trailbook/internal/repositories"
	"trailbook/pkg/utils"
)

func main() {
	path := flag.String("file", "routes.yaml", "YAML catalog to import")
	migrate := flag.Bool("migrate", true, "run schema migrations first")
	flag.Parse()

	cfg, err := config.Read()
	if err != nil {
		logging.Fatal().Err(err).Msg("load configuration")
	}
	logging.Init(logging.Config{Level: cfg.Logging.Level, Format: "console"})

	if err := run(context.Background(), cfg, *path, *migrate); err != nil {
		logging.Fatal().Err(err).Msg("seed failed")
	}
}

func run(ctx context.Context, cfg *config.Config, path string, migrate bool) error {
	if cfg.Database.URL == "" {
		return errors.New("POSTGRES_URL is required")
	}
	if err := utils.RegisterValidators(); err != nil {
		return err
	}

	catalog, err := loadCatalog(path)
	if err != nil {
		return err
	}
	routes, err := catalog.toModels()
	if err != nil {
		return err
	}

	db, err := gorm.Open(postgres.Open(cfg.Database.URL), infra.GormConfig(cfg.Logging.Level))
	if err != nil {
		return err
	}
	defer infra.ClosePostgresql(db)

	if migrate {
		if err := infra.Migrate(db); err != nil {
			return err
		}
	}

	if err := repositories.NewRouteRepository(db).CreateCatalog(ctx, routes); err != nil {
		return err
	}
	logging.Info().Int("routes", len(routes)).Str("file", path).Msg("catalog imported")
	return nil
}
