package response_models

type WeatherResponse struct {
	City        string  `json:"city"`
	Country     string  `json:"country"`
	Temp        float64 `json:"temp"`
	FeelsLike   float64 `json:"feels_like"`
	Humidity    int     `json:"humidity"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	WindSpeed   float64 `json:"wind_speed"`
}
