package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"trailbook/internal/logging"
	"trailbook/internal/metrics"
	"trailbook/internal/models/db_models"
	"trailbook/internal/models/response_models"
	"trailbook/internal/repositories"
	"trailbook/pkg/utils"
)

type RatingServiceInterface interface {
	ListRatings(ctx context.Context, routeID uuid.UUID) ([]response_models.RatingResponse, error)
	CreateRating(ctx context.Context, userID, routeID uuid.UUID, score int, comment string) (*response_models.RatingResponse, error)
	UpdateRating(ctx context.Context, userID, routeID, ratingID uuid.UUID, score *int, comment *string) (*response_models.RatingResponse, error)
	DeleteRating(ctx context.Context, userID, routeID, ratingID uuid.UUID) error
}

type RatingService struct {
	ratingRepo repositories.RatingRepositoryInterface
	routeRepo  repositories.RouteRepositoryInterface
}

func NewRatingService(ratingRepo repositories.RatingRepositoryInterface, routeRepo repositories.RouteRepositoryInterface) RatingServiceInterface {
	return &RatingService{
		ratingRepo: ratingRepo,
		routeRepo:  routeRepo,
	}
}

// ComputeAverageRating is the mean of scores rounded half-up to two decimals,
// or zero when there are none.
func ComputeAverageRating(scores []int) decimal.Decimal {
	if len(scores) == 0 {
		return decimal.Zero
	}
	var sum int64
	for _, s := range scores {
		sum += int64(s)
	}
	// Half-up on hundredths, in integers.
	n := int64(len(scores))
	hundredths := (200*sum + n) / (2 * n)
	return decimal.New(hundredths, -2)
}

func validScore(score int) bool {
	return score >= 1 && score <= 5
}

func (s *RatingService) ListRatings(ctx context.Context, routeID uuid.UUID) ([]response_models.RatingResponse, error) {
	exists, err := s.routeRepo.RouteExists(ctx, routeID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if !exists {
		return nil, utils.ErrRouteNotFound
	}

	ratings, err := s.ratingRepo.ListByRoute(ctx, routeID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	out := make([]response_models.RatingResponse, 0, len(ratings))
	for _, r := range ratings {
		out = append(out, ratingResponse(r))
	}
	return out, nil
}

func (s *RatingService) CreateRating(ctx context.Context, userID, routeID uuid.UUID, score int, comment string) (*response_models.RatingResponse, error) {
	if !validScore(score) {
		return nil, utils.ErrInvalidScore
	}

	exists, err := s.routeRepo.RouteExists(ctx, routeID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if !exists {
		return nil, utils.ErrRouteNotFound
	}

	rated, err := s.ratingRepo.ExistsForUser(ctx, userID, routeID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if rated {
		return nil, utils.ErrAlreadyRated
	}

	rating := &db_models.Rating{
		UserID:  userID,
		RouteID: routeID,
		Score:   score,
		Comment: comment,
	}
	if err := s.ratingRepo.Create(ctx, rating); err != nil {
		switch {
		case errors.Is(err, gorm.ErrDuplicatedKey):
			return nil, utils.ErrAlreadyRated
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, utils.ErrRouteNotFound
		}
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	metrics.RatingMutations.WithLabelValues("create").Inc()
	logging.Ctx(ctx).Info().
		Str("route_id", routeID.String()).
		Str("user_id", userID.String()).
		Int("score", score).
		Msg("rating created")

	return s.reload(ctx, rating.ID)
}

func (s *RatingService) UpdateRating(ctx context.Context, userID, routeID, ratingID uuid.UUID, score *int, comment *string) (*response_models.RatingResponse, error) {
	if score != nil && !validScore(*score) {
		return nil, utils.ErrInvalidScore
	}

	rating, err := s.ratingRepo.FindForOwner(ctx, ratingID, routeID, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if rating == nil {
		return nil, utils.ErrRatingNotFound
	}

	if score != nil {
		rating.Score = *score
	}
	if comment != nil {
		rating.Comment = *comment
	}

	if err := s.ratingRepo.Update(ctx, rating); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrRatingNotFound
		}
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	metrics.RatingMutations.WithLabelValues("update").Inc()

	return s.reload(ctx, rating.ID)
}

func (s *RatingService) DeleteRating(ctx context.Context, userID, routeID, ratingID uuid.UUID) error {
	rating, err := s.ratingRepo.FindForOwner(ctx, ratingID, routeID, userID)
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if rating == nil {
		return utils.ErrRatingNotFound
	}

	if err := s.ratingRepo.Delete(ctx, rating); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrRatingNotFound
		}
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	metrics.RatingMutations.WithLabelValues("delete").Inc()
	return nil
}

func (s *RatingService) reload(ctx context.Context, id uuid.UUID) (*response_models.RatingResponse, error) {
	rating, err := s.ratingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if rating == nil {
		return nil, utils.ErrRatingNotFound
	}
	resp := ratingResponse(*rating)
	return &resp, nil
}

func ratingResponse(r db_models.Rating) response_models.RatingResponse {
	return response_models.RatingResponse{
		ID:        r.ID.String(),
		UserEmail: r.User.Email,
		Score:     r.Score,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
	}
}
