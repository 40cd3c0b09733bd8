package rating_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"trailbook/internal/api/controllers"
	"trailbook/internal/repositories"
	"trailbook/internal/services"
)

var Module = fx.Provide(
	provideRatingRepo, provideRatingService, provideRatingsController,
)

func provideRatingRepo(db *gorm.DB) repositories.RatingRepositoryInterface {
	return repositories.NewRatingRepository(db, services.ComputeAverageRating)
}

func provideRatingService(ratingRepo repositories.RatingRepositoryInterface, routeRepo repositories.RouteRepositoryInterface) services.RatingServiceInterface {
	return services.NewRatingService(ratingRepo, routeRepo)
}

func provideRatingsController(ratingService services.RatingServiceInterface) *controllers.RatingsController {
	return controllers.NewRatingsController(ratingService)
}
