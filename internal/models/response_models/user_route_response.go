package response_models

import "time"

type UserRouteResponse struct {
	ID            string       `json:"id"`
	Route         RouteSummary `json:"route"`
	Status        string       `json:"status"`
	IsFavorite    bool         `json:"is_favorite"`
	Comment       string       `json:"comment"`
	DateSaved     time.Time    `json:"date_saved"`
	DateStarted   *time.Time   `json:"date_started"`
	DateCompleted *time.Time   `json:"date_completed"`
}

type UserStatsResponse struct {
	TotalRoutes      int    `json:"total_routes"`
	CompletedRoutes  int    `json:"completed_routes"`
	TotalTimeMinutes int    `json:"total_time_minutes"`
	TotalBudget      string `json:"total_budget"`
}
