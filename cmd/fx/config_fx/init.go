package config_fx

import (
	"go.uber.org/fx"
	"trailbook/internal/config"
	"trailbook/internal/logging"
	"trailbook/pkg/utils"
)

var Module = fx.Options(
	fx.Provide(config.Load),
	fx.Invoke(initLogging),
)

func initLogging(cfg *config.Config) error {
	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		File:   cfg.Logging.File,
	})
	return utils.RegisterValidators()
}
