package main

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"trailbook/cmd/fx/account_fx"
	"trailbook/cmd/fx/config_fx"
	"trailbook/cmd/fx/controllers_fx"
	"trailbook/cmd/fx/db_fx"
	"trailbook/cmd/fx/memcache_fx"
	"trailbook/cmd/fx/rating_fx"
	"trailbook/cmd/fx/route_fx"
	"trailbook/cmd/fx/user_route_fx"
	"trailbook/cmd/fx/weather_fx"
	"trailbook/internal/api/controllers"
	"trailbook/internal/config"
	"trailbook/internal/logging"
	"trailbook/pkg/middleware"
	"trailbook/pkg/utils"
)

func main() {
	app := fx.New(
		fx.NopLogger,
		config_fx.Module,
		db_fx.Module,
		memcache_fx.Module,
		account_fx.Module,
		route_fx.Module,
		rating_fx.Module,
		user_route_fx.Module,
		weather_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, cfg *config.Config, engine *gin.Engine) {
	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: engine,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", server.Addr)
			if err != nil {
				return err
			}
			go func() {
				logging.Info().Str("addr", server.Addr).Msg("Starting HTTP server")
				if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logging.Fatal().Err(err).Msg("Failed to start server")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logging.Info().Msg("Stopping HTTP server")
			shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

type RouterParams struct {
	fx.In

	Config               *config.Config
	Tokens               *utils.TokenIssuer
	RoutesController     *controllers.RoutesController
	RatingsController    *controllers.RatingsController
	UserRoutesController *controllers.UserRoutesController
	AccountController    *controllers.AccountController
	WeatherController    *controllers.WeatherController
	HealthController     *controllers.HealthController
}

func ProvideRouter(p RouterParams) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger())
	r.Use(gin.Recovery())
	r.Use(middleware.MetricsMiddleware())
	r.Use(middleware.CORSMiddleware(p.Config.Server.CORSAllowedOrigins))

	RegisterRoutes(r, p)

	return r
}

func RegisterRoutes(r *gin.Engine, p RouterParams) {
	auth := middleware.JWTAuthMiddleware(p.Tokens)
	optionalAuth := middleware.OptionalJWTAuthMiddleware(p.Tokens)

	r.GET("/healthz", p.HealthController.Healthz)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	routesGroup := r.Group("/routes")
	routesGroup.GET("", optionalAuth, p.RoutesController.ListRoutes)
	routesGroup.GET("/:id", optionalAuth, p.RoutesController.GetRoute)
	routesGroup.GET("/:id/points", p.RoutesController.ListPoints)
	routesGroup.GET("/:id/ratings", p.RatingsController.ListRatings)
	routesGroup.POST("/:id/ratings", auth, p.RatingsController.CreateRating)
	routesGroup.PUT("/:id/ratings/:ratingId", auth, p.RatingsController.ReplaceRating)
	routesGroup.PATCH("/:id/ratings/:ratingId", auth, p.RatingsController.PatchRating)
	routesGroup.DELETE("/:id/ratings/:ratingId", auth, p.RatingsController.DeleteRating)

	userRoutesGroup := r.Group("/user/routes", auth)
	userRoutesGroup.GET("", p.UserRoutesController.ListUserRoutes)
	userRoutesGroup.POST("", p.UserRoutesController.CreateUserRoute)
	userRoutesGroup.GET("/:id", p.UserRoutesController.GetUserRoute)
	userRoutesGroup.PATCH("/:id", p.UserRoutesController.UpdateUserRoute)
	userRoutesGroup.DELETE("/:id", p.UserRoutesController.DeleteUserRoute)

	usersGroup := r.Group("/users/me", auth)
	usersGroup.GET("", p.AccountController.GetMe)
	usersGroup.PATCH("", p.AccountController.UpdateMe)
	usersGroup.GET("/stats", p.UserRoutesController.GetStats)

	authGroup := r.Group("/auth")
	authGroup.POST("/google", p.AccountController.GoogleLogin)
	authGroup.POST("/token/refresh", p.AccountController.RefreshToken)
	authGroup.POST("/logout", p.AccountController.Logout)

	r.GET("/weather", p.WeatherController.GetWeather)
}
