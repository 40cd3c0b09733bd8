package user_route_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"trailbook/internal/api/controllers"
	"trailbook/internal/repositories"
	"trailbook/internal/services"
)

var Module = fx.Provide(
	provideUserRouteRepo, provideUserRouteService, provideStatsService, provideUserRoutesController,
)

func provideUserRouteRepo(db *gorm.DB) repositories.UserRouteRepositoryInterface {
	return repositories.NewUserRouteRepository(db)
}

func provideUserRouteService(
	userRouteRepo repositories.UserRouteRepositoryInterface,
	routeRepo repositories.RouteRepositoryInterface,
	routeService services.RouteServiceInterface,
) services.UserRouteServiceInterface {
	return services.NewUserRouteService(userRouteRepo, routeRepo, routeService)
}

func provideStatsService(userRouteRepo repositories.UserRouteRepositoryInterface) services.StatsServiceInterface {
	return services.NewStatsService(userRouteRepo)
}

func provideUserRoutesController(userRouteService services.UserRouteServiceInterface, statsService services.StatsServiceInterface) *controllers.UserRoutesController {
	return controllers.NewUserRoutesController(userRouteService, statsService)
}
