package response_models

import "time"

// Money and coordinates are rendered as fixed-point strings ("12.50").
type RouteSummary struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	City              string  `json:"city"`
	Mood              string  `json:"mood"`
	Category          string  `json:"category"`
	BudgetMin         string  `json:"budget_min"`
	BudgetMax         string  `json:"budget_max"`
	EstimatedDuration int     `json:"estimated_duration"`
	AvgRating         string  `json:"avg_rating"`
	RatingCount       int64   `json:"rating_count"`
	CoverImage        *string `json:"cover_image"`
	IsSaved           bool    `json:"is_saved"`
	IsFavorite        bool    `json:"is_favorite"`
}

type RouteDetail struct {
	RouteSummary
	Description string               `json:"description"`
	CreatedAt   time.Time            `json:"created_at"`
	Points      []RoutePointResponse `json:"points"`
	Images      []RouteImageResponse `json:"images"`
}

type RoutePointResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	Address        string  `json:"address"`
	Latitude       string  `json:"latitude"`
	Longitude      string  `json:"longitude"`
	Order          int     `json:"order"`
	DurationAtStop int     `json:"duration_at_stop"`
	Image          *string `json:"image"`
}

type RouteImageResponse struct {
	ID      string `json:"id"`
	Image   string `json:"image"`
	IsCover bool   `json:"is_cover"`
	Order   int    `json:"order"`
}

type PageResponse[T any] struct {
	Items    []T   `json:"items"`
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
}
