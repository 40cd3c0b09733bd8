package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"trailbook/internal/models/db_models"
)

type UserRouteRepositoryInterface interface {
	List(ctx context.Context, userID uuid.UUID, status *db_models.UserRouteStatus, isFavorite *bool) ([]db_models.UserRoute, error)
	FindForOwner(ctx context.Context, id, userID uuid.UUID) (*db_models.UserRoute, error)
	FindByUserAndRoute(ctx context.Context, userID, routeID uuid.UUID) (*db_models.UserRoute, error)
	Create(ctx context.Context, entry *db_models.UserRoute) error
	Update(ctx context.Context, entry *db_models.UserRoute) error
	Delete(ctx context.Context, id, userID uuid.UUID) (bool, error)
}

type UserRouteRepository struct {
	db *gorm.DB
}

func NewUserRouteRepository(db *gorm.DB) *UserRouteRepository {
	return &UserRouteRepository{db: db}
}

func (r *UserRouteRepository) withRoute(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Route").
		Preload("Route.Images", orderImages)
}

func (r *UserRouteRepository) List(ctx context.Context, userID uuid.UUID, status *db_models.UserRouteStatus, isFavorite *bool) ([]db_models.UserRoute, error) {
	q := r.withRoute(ctx).Where("user_id = ?", userID)
	if status != nil {
		q = q.Where("status = ?", *status)
	}
	if isFavorite != nil {
		q = q.Where("is_favorite = ?", *isFavorite)
	}

	var entries []db_models.UserRoute
	err := q.Order("date_saved DESC, id DESC").Find(&entries).Error
	return entries, err
}

func (r *UserRouteRepository) FindForOwner(ctx context.Context, id, userID uuid.UUID) (*db_models.UserRoute, error) {
	var entry db_models.UserRoute
	err := r.withRoute(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

func (r *UserRouteRepository) FindByUserAndRoute(ctx context.Context, userID, routeID uuid.UUID) (*db_models.UserRoute, error) {
	var entry db_models.UserRoute
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND route_id = ?", userID, routeID).
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

// Create returns gorm.ErrDuplicatedKey when the pair is already saved.
func (r *UserRouteRepository) Create(ctx context.Context, entry *db_models.UserRoute) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(entry).Error
}

// Update writes every mutable column, so nil dates are stored as NULL.
func (r *UserRouteRepository) Update(ctx context.Context, entry *db_models.UserRoute) error {
	return r.db.WithContext(ctx).
		Model(&db_models.UserRoute{}).
		Where("id = ? AND user_id = ?", entry.ID, entry.UserID).
		Updates(map[string]interface{}{
			"status":         entry.Status,
			"is_favorite":    entry.IsFavorite,
			"comment":        entry.Comment,
			"date_started":   entry.DateStarted,
			"date_completed": entry.DateCompleted,
			"updated_at":     r.db.NowFunc(),
		}).Error
}

func (r *UserRouteRepository) Delete(ctx context.Context, id, userID uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&db_models.UserRoute{}, "id = ? AND user_id = ?", id, userID)
	return res.RowsAffected > 0, res.Error
}
