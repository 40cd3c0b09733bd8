package utils

import "errors"

var (
	ErrInvalidPage     = errors.New("invalid page parameter")
	ErrInvalidPageSize = errors.New("invalid page size parameter")
	ErrInvalidFilter   = errors.New("invalid filter value")
	ErrDatabaseError   = errors.New("database error")

	ErrRouteNotFound     = errors.New("route not found")
	ErrRatingNotFound    = errors.New("rating not found")
	ErrUserRouteNotFound = errors.New("saved route not found")
	ErrAccountNotFound   = errors.New("account not found")

	ErrInvalidScore      = errors.New("score must be between 1 and 5")
	ErrAlreadyRated      = errors.New("you have already rated this route")
	ErrRouteAlreadySaved = errors.New("route is already saved")
	ErrInvalidStatus     = errors.New("invalid status")

	ErrCredentialRequired = errors.New("credential is required")
	ErrInvalidGoogleToken = errors.New("invalid google token")
	ErrGoogleEmailMissing = errors.New("email not provided by google")
	ErrInvalidToken       = errors.New("invalid or expired token")

	ErrCityRequired         = errors.New("query param 'city' is required")
	ErrCityNotFound         = errors.New("city not found")
	ErrWeatherUpstream      = errors.New("weather service error")
	ErrWeatherUnreachable   = errors.New("could not reach weather service")
	ErrWeatherNotConfigured = errors.New("weather service is not configured")
)
