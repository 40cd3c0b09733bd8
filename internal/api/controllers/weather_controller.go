package controllers

import (
	"github.com/gin-gonic/gin"
	"trailbook/internal/services"
	"trailbook/pkg/utils"
)

type WeatherController struct {
	weatherService services.WeatherServiceInterface
}

func NewWeatherController(weatherService services.WeatherServiceInterface) *WeatherController {
	return &WeatherController{
		weatherService: weatherService,
	}
}

// GetWeather godoc
// @Summary Current weather for a city
// @Tags Weather
// @Produce json
// @Param city query string true "City name"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Failure 503 {object} utils.APIResponse
// @Router /weather [get]
func (w *WeatherController) GetWeather(c *gin.Context) {
	weather, err := w.weatherService.GetCurrentWeather(c.Request.Context(), c.Query("city"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, weather, "Weather fetched successfully")
}
