package repositories

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"trailbook/internal/models/db_models"
)

// RouteFilter is a validated catalog query. OrderBy must be a column name the
// service has already checked against its allowlist.
type RouteFilter struct {
	City         string
	Mood         string
	Category     string
	BudgetMaxLte *decimal.Decimal
	BudgetMaxGte *decimal.Decimal
	BudgetMinGte *decimal.Decimal
	DurationLte  *int
	Search       string
	OrderBy      string
	Desc         bool
	Page         int
	PageSize     int
}

type RouteRepositoryInterface interface {
	ListRoutes(ctx context.Context, filter RouteFilter) ([]db_models.Route, int64, error)
	GetRouteByID(ctx context.Context, id uuid.UUID) (*db_models.Route, error)
	RouteExists(ctx context.Context, id uuid.UUID) (bool, error)
	ListPoints(ctx context.Context, routeID uuid.UUID) ([]db_models.RoutePoint, error)
	CountRatings(ctx context.Context, routeIDs []uuid.UUID) (map[uuid.UUID]int64, error)
	FindUserRoutes(ctx context.Context, userID uuid.UUID, routeIDs []uuid.UUID) (map[uuid.UUID]db_models.UserRoute, error)
	CreateCatalog(ctx context.Context, routes []db_models.Route) error
}

type RouteRepository struct {
	db *gorm.DB
}

func NewRouteRepository(db *gorm.DB) *RouteRepository {
	return &RouteRepository{db: db}
}

func orderPoints(db *gorm.DB) *gorm.DB {
	return db.Order("sort_order ASC, created_at ASC, id ASC")
}

func orderImages(db *gorm.DB) *gorm.DB {
	return db.Order("sort_order ASC, created_at ASC, id ASC")
}

// likePattern builds a case-insensitive substring pattern with LIKE
// metacharacters escaped.
func likePattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(strings.ToLower(s)) + "%"
}

func applyRouteFilter(q *gorm.DB, f RouteFilter) *gorm.DB {
	if f.City != "" {
		q = q.Where(`LOWER(city) LIKE ? ESCAPE '\'`, likePattern(f.City))
	}
	if f.Mood != "" {
		q = q.Where("mood = ?", f.Mood)
	}
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.BudgetMaxLte != nil {
		q = q.Where("budget_max <= ?", *f.BudgetMaxLte)
	}
	if f.BudgetMaxGte != nil {
		q = q.Where("budget_max >= ?", *f.BudgetMaxGte)
	}
	if f.BudgetMinGte != nil {
		q = q.Where("budget_min >= ?", *f.BudgetMinGte)
	}
	if f.DurationLte != nil {
		q = q.Where("estimated_duration <= ?", *f.DurationLte)
	}
	if f.Search != "" {
		p := likePattern(f.Search)
		q = q.Where(
			`LOWER(name) LIKE ? ESCAPE '\' OR LOWER(city) LIKE ? ESCAPE '\' OR LOWER(description) LIKE ? ESCAPE '\'`,
			p, p, p,
		)
	}
	return q
}

func (r *RouteRepository) ListRoutes(ctx context.Context, filter RouteFilter) ([]db_models.Route, int64, error) {
	var total int64
	if err := applyRouteFilter(r.db.WithContext(ctx).Model(&db_models.Route{}), filter).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	orderBy := filter.OrderBy
	if orderBy == "" {
		orderBy = "created_at"
	}

	var routes []db_models.Route
	err := applyRouteFilter(r.db.WithContext(ctx), filter).
		Preload("Images", orderImages).
		Order(clause.OrderByColumn{Column: clause.Column{Name: orderBy}, Desc: filter.Desc}).
		Order("id ASC").
		Limit(filter.PageSize).
		Offset((filter.Page - 1) * filter.PageSize).
		Find(&routes).Error
	if err != nil {
		return nil, 0, err
	}
	return routes, total, nil
}

func (r *RouteRepository) GetRouteByID(ctx context.Context, id uuid.UUID) (*db_models.Route, error) {
	var route db_models.Route
	err := r.db.WithContext(ctx).
		Preload("Points", orderPoints).
		Preload("Images", orderImages).
		First(&route, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &route, nil
}

func (r *RouteRepository) RouteExists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&db_models.Route{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *RouteRepository) ListPoints(ctx context.Context, routeID uuid.UUID) ([]db_models.RoutePoint, error) {
	var points []db_models.RoutePoint
	err := orderPoints(r.db.WithContext(ctx)).
		Where("route_id = ?", routeID).
		Find(&points).Error
	return points, err
}

type routeCount struct {
	RouteID uuid.UUID
	Count   int64
}

func (r *RouteRepository) CountRatings(ctx context.Context, routeIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	counts := make(map[uuid.UUID]int64, len(routeIDs))
	if len(routeIDs) == 0 {
		return counts, nil
	}

	var rows []routeCount
	err := r.db.WithContext(ctx).
		Model(&db_models.Rating{}).
		Select("route_id, COUNT(*) AS count").
		Where("route_id IN ?", routeIDs).
		Group("route_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		counts[row.RouteID] = row.Count
	}
	return counts, nil
}

func (r *RouteRepository) FindUserRoutes(ctx context.Context, userID uuid.UUID, routeIDs []uuid.UUID) (map[uuid.UUID]db_models.UserRoute, error) {
	saved := make(map[uuid.UUID]db_models.UserRoute, len(routeIDs))
	if len(routeIDs) == 0 {
		return saved, nil
	}

	var entries []db_models.UserRoute
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND route_id IN ?", userID, routeIDs).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		saved[e.RouteID] = e
	}
	return saved, nil
}

// CreateCatalog inserts routes together with their points and images. Either
// every route is stored or none is.
func (r *RouteRepository) CreateCatalog(ctx context.Context, routes []db_models.Route) error {
	if len(routes) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range routes {
			if err := tx.Create(&routes[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
