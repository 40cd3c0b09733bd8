package weather_fx

import (
	"go.uber.org/fx"
	"trailbook/internal/api/controllers"
	"trailbook/internal/config"
	"trailbook/internal/services"
)

var Module = fx.Provide(
	provideWeatherService, controllers.NewWeatherController,
)

func provideWeatherService(cfg *config.Config) services.WeatherServiceInterface {
	return services.NewWeatherService(cfg.Weather)
}
