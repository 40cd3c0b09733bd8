package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/sony/gobreaker/v2"
	"trailbook/internal/config"
	"trailbook/internal/logging"
	"trailbook/internal/metrics"
	"trailbook/internal/models/response_models"
	"trailbook/pkg/utils"
)

const weatherBreakerName = "openweathermap"

type WeatherServiceInterface interface {
	GetCurrentWeather(ctx context.Context, city string) (*response_models.WeatherResponse, error)
}

// WeatherService proxies OpenWeatherMap current conditions. Provider and
// transport failures are reported as sentinel errors only.
type WeatherService struct {
	apiKey  string
	baseURL string
	client  *http.Client
	breaker *gobreaker.CircuitBreaker[*response_models.WeatherResponse]
}

func NewWeatherService(cfg config.WeatherConfig) WeatherServiceInterface {
	return newWeatherService(cfg, &http.Client{Timeout: cfg.Timeout})
}

func newWeatherService(cfg config.WeatherConfig, client *http.Client) *WeatherService {
	metrics.CircuitBreakerState.WithLabelValues(weatherBreakerName).Set(0)

	return &WeatherService{
		apiKey:  cfg.APIKey,
		baseURL: cfg.URL,
		client:  client,
		breaker: gobreaker.NewCircuitBreaker[*response_models.WeatherResponse](gobreaker.Settings{
			Name:        weatherBreakerName,
			MaxRequests: 1,
			Interval:    time.Minute,
			Timeout:     30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 5
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				logging.Warn().
					Str("breaker", name).
					Str("from", from.String()).
					Str("to", to.String()).
					Msg("circuit breaker state change")
				metrics.CircuitBreakerState.WithLabelValues(name).Set(float64(to))
			},
			// An unknown city is a valid answer from a healthy provider.
			IsSuccessful: func(err error) bool {
				return err == nil || errors.Is(err, utils.ErrCityNotFound)
			},
		}),
	}
}

type owmResponse struct {
	Name string `json:"name"`
	Sys  struct {
		Country string `json:"country"`
	} `json:"sys"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

func (w *WeatherService) GetCurrentWeather(ctx context.Context, city string) (*response_models.WeatherResponse, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, utils.ErrCityRequired
	}
	if w.apiKey == "" {
		metrics.WeatherRequests.WithLabelValues("not_configured").Inc()
		return nil, utils.ErrWeatherNotConfigured
	}

	resp, err := w.breaker.Execute(func() (*response_models.WeatherResponse, error) {
		return w.fetch(ctx, city)
	})
	switch {
	case err == nil:
		metrics.WeatherRequests.WithLabelValues("ok").Inc()
		return resp, nil
	case errors.Is(err, utils.ErrCityNotFound):
		metrics.WeatherRequests.WithLabelValues("not_found").Inc()
		return nil, err
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		metrics.WeatherRequests.WithLabelValues("circuit_open").Inc()
		return nil, fmt.Errorf("%w: %v", utils.ErrWeatherUnreachable, err)
	default:
		metrics.WeatherRequests.WithLabelValues("error").Inc()
		return nil, err
	}
}

func (w *WeatherService) fetch(ctx context.Context, city string) (*response_models.WeatherResponse, error) {
	params := url.Values{}
	params.Set("q", city)
	params.Set("appid", w.apiKey)
	params.Set("units", "metric")
	params.Set("lang", "en")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, w.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", utils.ErrWeatherUnreachable, err)
	}

	res, err := w.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrWeatherUnreachable, redactKey(err, w.apiKey))
	}
	defer res.Body.Close()

	body, err := io.ReadAll(io.LimitReader(res.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", utils.ErrWeatherUnreachable, err)
	}

	switch {
	case res.StatusCode == http.StatusNotFound:
		return nil, utils.ErrCityNotFound
	case res.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("%w: provider status %d", utils.ErrWeatherUpstream, res.StatusCode)
	}

	var payload owmResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", utils.ErrWeatherUpstream, err)
	}

	out := &response_models.WeatherResponse{
		City:      payload.Name,
		Country:   payload.Sys.Country,
		Temp:      payload.Main.Temp,
		FeelsLike: payload.Main.FeelsLike,
		Humidity:  payload.Main.Humidity,
		WindSpeed: payload.Wind.Speed,
	}
	if len(payload.Weather) > 0 {
		out.Description = payload.Weather[0].Description
		out.Icon = payload.Weather[0].Icon
	}
	return out, nil
}

// redactKey strips the API key from errors that echo the request URL.
func redactKey(err error, key string) string {
	return strings.ReplaceAll(err.Error(), key, "REDACTED")
}
