package controllers_fx

import (
	"go.uber.org/fx"
	"trailbook/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewHealthController))
