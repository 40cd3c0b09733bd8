package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"trailbook/internal/models/db_models"
	"trailbook/internal/models/response_models"
	"trailbook/internal/repositories"
	"trailbook/pkg/utils"
)

type StatsServiceInterface interface {
	GetUserStats(ctx context.Context, userID uuid.UUID) (*response_models.UserStatsResponse, error)
}

type StatsService struct {
	userRouteRepo repositories.UserRouteRepositoryInterface
}

func NewStatsService(userRouteRepo repositories.UserRouteRepositoryInterface) StatsServiceInterface {
	return &StatsService{userRouteRepo: userRouteRepo}
}

// ComputeUserStats aggregates a user's journal. Time and budget only count
// completed routes; entries must have Route loaded.
func ComputeUserStats(entries []db_models.UserRoute) response_models.UserStatsResponse {
	stats := response_models.UserStatsResponse{TotalRoutes: len(entries)}
	budget := decimal.Zero
	for _, e := range entries {
		if e.Status != db_models.StatusCompleted {
			continue
		}
		stats.CompletedRoutes++
		stats.TotalTimeMinutes += e.Route.EstimatedDuration
		budget = budget.Add(e.Route.BudgetMax)
	}
	stats.TotalBudget = budget.StringFixed(2)
	return stats
}

func (s *StatsService) GetUserStats(ctx context.Context, userID uuid.UUID) (*response_models.UserStatsResponse, error) {
	entries, err := s.userRouteRepo.List(ctx, userID, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	stats := ComputeUserStats(entries)
	return &stats, nil
}
