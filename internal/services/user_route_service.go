package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"trailbook/internal/logging"
	"trailbook/internal/models/db_models"
	"trailbook/internal/models/request_models"
	"trailbook/internal/models/response_models"
	"trailbook/internal/repositories"
	"trailbook/pkg/utils"
)

type UserRouteServiceInterface interface {
	ListUserRoutes(ctx context.Context, userID uuid.UUID, status string, isFavorite *string) ([]response_models.UserRouteResponse, error)
	GetUserRoute(ctx context.Context, userID, id uuid.UUID) (*response_models.UserRouteResponse, error)
	CreateUserRoute(ctx context.Context, userID, routeID uuid.UUID) (*response_models.UserRouteResponse, error)
	UpdateUserRoute(ctx context.Context, userID, id uuid.UUID, patch request_models.UpdateUserRouteRequest) (*response_models.UserRouteResponse, error)
	DeleteUserRoute(ctx context.Context, userID, id uuid.UUID) error
}

type UserRouteService struct {
	userRouteRepo repositories.UserRouteRepositoryInterface
	routeRepo     repositories.RouteRepositoryInterface
	routeService  RouteServiceInterface
}

func NewUserRouteService(
	userRouteRepo repositories.UserRouteRepositoryInterface,
	routeRepo repositories.RouteRepositoryInterface,
	routeService RouteServiceInterface,
) UserRouteServiceInterface {
	return &UserRouteService{
		userRouteRepo: userRouteRepo,
		routeRepo:     routeRepo,
		routeService:  routeService,
	}
}

func parseStatus(raw string) (*db_models.UserRouteStatus, error) {
	if raw == "" {
		return nil, nil
	}
	status := db_models.UserRouteStatus(raw)
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", utils.ErrInvalidStatus, raw)
	}
	return &status, nil
}

// parseFavorite treats "true" in any case as true and every other value as
// false. An absent parameter applies no filter.
func parseFavorite(raw *string) *bool {
	if raw == nil {
		return nil
	}
	fav := strings.EqualFold(strings.TrimSpace(*raw), "true")
	return &fav
}

func (s *UserRouteService) ListUserRoutes(ctx context.Context, userID uuid.UUID, status string, isFavorite *string) ([]response_models.UserRouteResponse, error) {
	st, err := parseStatus(status)
	if err != nil {
		return nil, err
	}

	entries, err := s.userRouteRepo.List(ctx, userID, st, parseFavorite(isFavorite))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return s.responses(ctx, userID, entries)
}

func (s *UserRouteService) GetUserRoute(ctx context.Context, userID, id uuid.UUID) (*response_models.UserRouteResponse, error) {
	entry, err := s.find(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return s.single(ctx, userID, *entry)
}

func (s *UserRouteService) CreateUserRoute(ctx context.Context, userID, routeID uuid.UUID) (*response_models.UserRouteResponse, error) {
	exists, err := s.routeRepo.RouteExists(ctx, routeID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if !exists {
		return nil, utils.ErrRouteNotFound
	}

	existing, err := s.userRouteRepo.FindByUserAndRoute(ctx, userID, routeID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if existing != nil {
		return nil, utils.ErrRouteAlreadySaved
	}

	entry := &db_models.UserRoute{
		UserID:  userID,
		RouteID: routeID,
		Status:  db_models.StatusPlanned,
	}
	if err := s.userRouteRepo.Create(ctx, entry); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, utils.ErrRouteAlreadySaved
		}
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	logging.Ctx(ctx).Info().
		Str("user_id", userID.String()).
		Str("route_id", routeID.String()).
		Msg("route saved")

	return s.GetUserRoute(ctx, userID, entry.ID)
}

// UpdateUserRoute applies a partial update. Dates are only ever changed by
// the caller; moving to completed leaves DateCompleted as it was.
func (s *UserRouteService) UpdateUserRoute(ctx context.Context, userID, id uuid.UUID, patch request_models.UpdateUserRouteRequest) (*response_models.UserRouteResponse, error) {
	var status *db_models.UserRouteStatus
	if patch.Status != nil {
		st, err := parseStatus(*patch.Status)
		if err != nil {
			return nil, err
		}
		if st == nil {
			return nil, fmt.Errorf("%w: status cannot be empty", utils.ErrInvalidStatus)
		}
		status = st
	}

	entry, err := s.find(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if status != nil {
		entry.Status = *status
	}
	if patch.IsFavorite != nil {
		entry.IsFavorite = *patch.IsFavorite
	}
	if patch.Comment != nil {
		entry.Comment = *patch.Comment
	}
	if patch.DateStarted.Set {
		entry.DateStarted = patch.DateStarted.Value
	}
	if patch.DateCompleted.Set {
		entry.DateCompleted = patch.DateCompleted.Value
	}

	if err := s.userRouteRepo.Update(ctx, entry); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return s.GetUserRoute(ctx, userID, id)
}

func (s *UserRouteService) DeleteUserRoute(ctx context.Context, userID, id uuid.UUID) error {
	deleted, err := s.userRouteRepo.Delete(ctx, id, userID)
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if !deleted {
		return utils.ErrUserRouteNotFound
	}
	return nil
}

func (s *UserRouteService) find(ctx context.Context, userID, id uuid.UUID) (*db_models.UserRoute, error) {
	entry, err := s.userRouteRepo.FindForOwner(ctx, id, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if entry == nil {
		return nil, utils.ErrUserRouteNotFound
	}
	return entry, nil
}

func (s *UserRouteService) single(ctx context.Context, userID uuid.UUID, entry db_models.UserRoute) (*response_models.UserRouteResponse, error) {
	out, err := s.responses(ctx, userID, []db_models.UserRoute{entry})
	if err != nil {
		return nil, err
	}
	return &out[0], nil
}

func (s *UserRouteService) responses(ctx context.Context, userID uuid.UUID, entries []db_models.UserRoute) ([]response_models.UserRouteResponse, error) {
	routes := make([]db_models.Route, 0, len(entries))
	for _, e := range entries {
		routes = append(routes, e.Route)
	}
	summaries, err := s.routeService.Summaries(ctx, routes, &userID)
	if err != nil {
		return nil, err
	}

	out := make([]response_models.UserRouteResponse, 0, len(entries))
	for i, e := range entries {
		out = append(out, response_models.UserRouteResponse{
			ID:            e.ID.String(),
			Route:         summaries[i],
			Status:        string(e.Status),
			IsFavorite:    e.IsFavorite,
			Comment:       e.Comment,
			DateSaved:     e.DateSaved,
			DateStarted:   e.DateStarted,
			DateCompleted: e.DateCompleted,
		})
	}
	return out, nil
}
