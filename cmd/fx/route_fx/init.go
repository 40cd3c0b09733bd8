package route_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"trailbook/internal/api/controllers"
	"trailbook/internal/config"
	"trailbook/internal/repositories"
	"trailbook/internal/services"
)

var Module = fx.Provide(
	provideRouteRepo, provideRouteService, provideRoutesController,
)

func provideRouteRepo(db *gorm.DB) repositories.RouteRepositoryInterface {
	return repositories.NewRouteRepository(db)
}

func provideRouteService(routeRepo repositories.RouteRepositoryInterface, cfg *config.Config) services.RouteServiceInterface {
	return services.NewRouteService(routeRepo, cfg.Media.BaseURL)
}

func provideRoutesController(routeService services.RouteServiceInterface) *controllers.RoutesController {
	return controllers.NewRoutesController(routeService)
}
