package utils

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"trailbook/internal/models/db_models"
)

// RegisterValidators installs the enum validators used in binding tags. It is
// safe to call more than once.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	if err := v.RegisterValidation("route_mood", func(fl validator.FieldLevel) bool {
		return db_models.RouteMood(fl.Field().String()).Valid()
	}); err != nil {
		return err
	}
	if err := v.RegisterValidation("route_category", func(fl validator.FieldLevel) bool {
		return db_models.RouteCategory(fl.Field().String()).Valid()
	}); err != nil {
		return err
	}
	return v.RegisterValidation("user_route_status", func(fl validator.FieldLevel) bool {
		return db_models.UserRouteStatus(fl.Field().String()).Valid()
	})
}
