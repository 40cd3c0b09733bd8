package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"trailbook/internal/models/db_models"
)

// AverageFunc reduces a route's scores to its stored avg_rating.
type AverageFunc func(scores []int) decimal.Decimal

type RatingRepositoryInterface interface {
	ListByRoute(ctx context.Context, routeID uuid.UUID) ([]db_models.Rating, error)
	GetByID(ctx context.Context, id uuid.UUID) (*db_models.Rating, error)
	FindForOwner(ctx context.Context, ratingID, routeID, userID uuid.UUID) (*db_models.Rating, error)
	ExistsForUser(ctx context.Context, userID, routeID uuid.UUID) (bool, error)
	Create(ctx context.Context, rating *db_models.Rating) error
	Update(ctx context.Context, rating *db_models.Rating) error
	Delete(ctx context.Context, rating *db_models.Rating) error
}

// RatingRepository writes ratings and keeps Route.AvgRating in step. Every
// mutation locks the parent route, applies the change, re-reads all scores and
// stores the new average in one transaction.
type RatingRepository struct {
	db      *gorm.DB
	average AverageFunc
}

func NewRatingRepository(db *gorm.DB, average AverageFunc) *RatingRepository {
	return &RatingRepository{db: db, average: average}
}

func (r *RatingRepository) ListByRoute(ctx context.Context, routeID uuid.UUID) ([]db_models.Rating, error) {
	var ratings []db_models.Rating
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("route_id = ?", routeID).
		Order("created_at DESC, id DESC").
		Find(&ratings).Error
	return ratings, err
}

func (r *RatingRepository) GetByID(ctx context.Context, id uuid.UUID) (*db_models.Rating, error) {
	var rating db_models.Rating
	err := r.db.WithContext(ctx).Preload("User").First(&rating, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rating, nil
}

func (r *RatingRepository) FindForOwner(ctx context.Context, ratingID, routeID, userID uuid.UUID) (*db_models.Rating, error) {
	var rating db_models.Rating
	err := r.db.WithContext(ctx).
		Where("id = ? AND route_id = ? AND user_id = ?", ratingID, routeID, userID).
		First(&rating).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rating, nil
}

func (r *RatingRepository) ExistsForUser(ctx context.Context, userID, routeID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Rating{}).
		Where("user_id = ? AND route_id = ?", userID, routeID).
		Count(&count).Error
	return count > 0, err
}

// Create returns gorm.ErrRecordNotFound when the route is gone and
// gorm.ErrDuplicatedKey when the user already rated it.
func (r *RatingRepository) Create(ctx context.Context, rating *db_models.Rating) error {
	return r.mutate(ctx, rating.RouteID, func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Create(rating).Error
	})
}

func (r *RatingRepository) Update(ctx context.Context, rating *db_models.Rating) error {
	return r.mutate(ctx, rating.RouteID, func(tx *gorm.DB) error {
		return tx.Model(&db_models.Rating{}).
			Where("id = ?", rating.ID).
			Updates(map[string]interface{}{
				"score":      rating.Score,
				"comment":    rating.Comment,
				"updated_at": tx.NowFunc(),
			}).Error
	})
}

func (r *RatingRepository) Delete(ctx context.Context, rating *db_models.Rating) error {
	return r.mutate(ctx, rating.RouteID, func(tx *gorm.DB) error {
		return tx.Delete(&db_models.Rating{}, "id = ?", rating.ID).Error
	})
}

func (r *RatingRepository) mutate(ctx context.Context, routeID uuid.UUID, write func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var route db_models.Route
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id").
			First(&route, "id = ?", routeID).Error; err != nil {
			return err
		}

		if err := write(tx); err != nil {
			return err
		}

		return r.recomputeAvgRating(tx, routeID)
	})
}

func (r *RatingRepository) recomputeAvgRating(tx *gorm.DB, routeID uuid.UUID) error {
	var scores []int
	if err := tx.Model(&db_models.Rating{}).
		Where("route_id = ?", routeID).
		Pluck("score", &scores).Error; err != nil {
		return err
	}

	return tx.Model(&db_models.Route{}).
		Where("id = ?", routeID).
		Update("avg_rating", r.average(scores)).Error
}
