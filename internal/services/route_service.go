package services

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"trailbook/internal/models/db_models"
	"trailbook/internal/models/request_models"
	"trailbook/internal/models/response_models"
	"trailbook/internal/repositories"
	"trailbook/pkg/utils"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
	defaultOrdering = "-created_at"
)

// orderingColumns is the allowlist for the ?ordering= parameter.
var orderingColumns = map[string]string{
	"avg_rating":         "avg_rating",
	"estimated_duration": "estimated_duration",
	"budget_max":         "budget_max",
	"created_at":         "created_at",
}

type RouteServiceInterface interface {
	ListRoutes(ctx context.Context, query request_models.RouteListQuery, viewer *uuid.UUID) (*response_models.PageResponse[response_models.RouteSummary], error)
	GetRoute(ctx context.Context, id uuid.UUID, viewer *uuid.UUID) (*response_models.RouteDetail, error)
	ListPoints(ctx context.Context, routeID uuid.UUID) ([]response_models.RoutePointResponse, error)
	Summaries(ctx context.Context, routes []db_models.Route, viewer *uuid.UUID) ([]response_models.RouteSummary, error)
}

type RouteService struct {
	routeRepo    repositories.RouteRepositoryInterface
	mediaBaseURL string
}

func NewRouteService(routeRepo repositories.RouteRepositoryInterface, mediaBaseURL string) RouteServiceInterface {
	return &RouteService{
		routeRepo:    routeRepo,
		mediaBaseURL: mediaBaseURL,
	}
}

// ParseRouteFilter validates the raw query. Unknown ordering keys fall back to
// newest first; malformed numbers and unknown enum values are rejected.
func ParseRouteFilter(q request_models.RouteListQuery) (repositories.RouteFilter, error) {
	f := repositories.RouteFilter{
		City:     strings.TrimSpace(q.City),
		Search:   strings.TrimSpace(q.Search),
		Page:     q.Page,
		PageSize: q.PageSize,
	}

	if f.Page == 0 {
		f.Page = 1
	}
	if f.PageSize == 0 {
		f.PageSize = defaultPageSize
	}
	if f.Page < 1 {
		return f, utils.ErrInvalidPage
	}
	if f.PageSize < 1 || f.PageSize > maxPageSize {
		return f, utils.ErrInvalidPageSize
	}

	if q.Mood != "" {
		if !db_models.RouteMood(q.Mood).Valid() {
			return f, fmt.Errorf("%w: mood %q", utils.ErrInvalidFilter, q.Mood)
		}
		f.Mood = q.Mood
	}
	if q.Category != "" {
		if !db_models.RouteCategory(q.Category).Valid() {
			return f, fmt.Errorf("%w: category %q", utils.ErrInvalidFilter, q.Category)
		}
		f.Category = q.Category
	}

	var err error
	if f.BudgetMaxLte, err = parseDecimalFilter("budget_max__lte", q.BudgetMaxLte); err != nil {
		return f, err
	}
	if f.BudgetMaxGte, err = parseDecimalFilter("budget_max__gte", q.BudgetMaxGte); err != nil {
		return f, err
	}
	if f.BudgetMinGte, err = parseDecimalFilter("budget_min__gte", q.BudgetMinGte); err != nil {
		return f, err
	}
	if raw := strings.TrimSpace(q.DurationLte); raw != "" {
		d, err := strconv.Atoi(raw)
		if err != nil {
			return f, fmt.Errorf("%w: duration__lte must be an integer", utils.ErrInvalidFilter)
		}
		f.DurationLte = &d
	}

	f.OrderBy, f.Desc = parseOrdering(q.Ordering)
	return f, nil
}

func parseDecimalFilter(name, raw string) (*decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be a number", utils.ErrInvalidFilter, name)
	}
	return &d, nil
}

func parseOrdering(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		raw = defaultOrdering
	}
	desc := strings.HasPrefix(raw, "-")
	column, ok := orderingColumns[strings.TrimPrefix(raw, "-")]
	if !ok {
		return orderingColumns["created_at"], true
	}
	return column, desc
}

func (s *RouteService) ListRoutes(ctx context.Context, query request_models.RouteListQuery, viewer *uuid.UUID) (*response_models.PageResponse[response_models.RouteSummary], error) {
	filter, err := ParseRouteFilter(query)
	if err != nil {
		return nil, err
	}

	routes, total, err := s.routeRepo.ListRoutes(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	items, err := s.Summaries(ctx, routes, viewer)
	if err != nil {
		return nil, err
	}

	return &response_models.PageResponse[response_models.RouteSummary]{
		Items:    items,
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}, nil
}

func (s *RouteService) GetRoute(ctx context.Context, id uuid.UUID, viewer *uuid.UUID) (*response_models.RouteDetail, error) {
	route, err := s.routeRepo.GetRouteByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if route == nil {
		return nil, utils.ErrRouteNotFound
	}

	summaries, err := s.Summaries(ctx, []db_models.Route{*route}, viewer)
	if err != nil {
		return nil, err
	}

	detail := &response_models.RouteDetail{
		RouteSummary: summaries[0],
		Description:  route.Description,
		CreatedAt:    route.CreatedAt,
		Points:       make([]response_models.RoutePointResponse, 0, len(route.Points)),
		Images:       make([]response_models.RouteImageResponse, 0, len(route.Images)),
	}
	for _, p := range route.Points {
		detail.Points = append(detail.Points, s.pointResponse(p))
	}
	for _, img := range route.Images {
		detail.Images = append(detail.Images, response_models.RouteImageResponse{
			ID:      img.ID.String(),
			Image:   ResolveMediaURL(s.mediaBaseURL, img.Image),
			IsCover: img.IsCover,
			Order:   img.SortOrder,
		})
	}
	return detail, nil
}

// ListPoints does not check that the route exists; an unknown id simply has
// no points.
func (s *RouteService) ListPoints(ctx context.Context, routeID uuid.UUID) ([]response_models.RoutePointResponse, error) {
	points, err := s.routeRepo.ListPoints(ctx, routeID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	out := make([]response_models.RoutePointResponse, 0, len(points))
	for _, p := range points {
		out = append(out, s.pointResponse(p))
	}
	return out, nil
}

// Summaries renders catalog cards for routes, with rating counts and, for an
// authenticated viewer, the viewer's saved/favorite flags. Routes must have
// their Images loaded for cover resolution.
func (s *RouteService) Summaries(ctx context.Context, routes []db_models.Route, viewer *uuid.UUID) ([]response_models.RouteSummary, error) {
	out := make([]response_models.RouteSummary, 0, len(routes))
	if len(routes) == 0 {
		return out, nil
	}

	ids := make([]uuid.UUID, 0, len(routes))
	for _, r := range routes {
		ids = append(ids, r.ID)
	}

	counts, err := s.routeRepo.CountRatings(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	saved := map[uuid.UUID]db_models.UserRoute{}
	if viewer != nil {
		saved, err = s.routeRepo.FindUserRoutes(ctx, *viewer, ids)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
		}
	}

	for _, r := range routes {
		entry, isSaved := saved[r.ID]
		summary := response_models.RouteSummary{
			ID:                r.ID.String(),
			Name:              r.Name,
			City:              r.City,
			Mood:              string(r.Mood),
			Category:          string(r.Category),
			BudgetMin:         r.BudgetMin.StringFixed(2),
			BudgetMax:         r.BudgetMax.StringFixed(2),
			EstimatedDuration: r.EstimatedDuration,
			AvgRating:         r.AvgRating.StringFixed(2),
			RatingCount:       counts[r.ID],
			IsSaved:           isSaved,
			IsFavorite:        isSaved && entry.IsFavorite,
		}
		if cover := PickCoverImage(r.Images); cover != nil {
			url := ResolveMediaURL(s.mediaBaseURL, cover.Image)
			summary.CoverImage = &url
		}
		out = append(out, summary)
	}
	return out, nil
}

func (s *RouteService) pointResponse(p db_models.RoutePoint) response_models.RoutePointResponse {
	resp := response_models.RoutePointResponse{
		ID:             p.ID.String(),
		Name:           p.Name,
		Description:    p.Description,
		Address:        p.Address,
		Latitude:       p.Latitude.StringFixed(6),
		Longitude:      p.Longitude.StringFixed(6),
		Order:          p.SortOrder,
		DurationAtStop: p.DurationAtStop,
	}
	if p.Image != nil && *p.Image != "" {
		url := ResolveMediaURL(s.mediaBaseURL, *p.Image)
		resp.Image = &url
	}
	return resp
}

// PickCoverImage returns the first cover-flagged image by order, else the
// first image by order, else nil.
func PickCoverImage(images []db_models.RouteImage) *db_models.RouteImage {
	if len(images) == 0 {
		return nil
	}
	sorted := slices.Clone(images)
	slices.SortStableFunc(sorted, func(a, b db_models.RouteImage) int {
		return a.SortOrder - b.SortOrder
	})
	for i := range sorted {
		if sorted[i].IsCover {
			return &sorted[i]
		}
	}
	return &sorted[0]
}

// ResolveMediaURL joins a stored media reference onto baseURL. References that
// are already absolute URLs are returned unchanged.
func ResolveMediaURL(baseURL, ref string) string {
	if ref == "" || baseURL == "" {
		return ref
	}
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}
	return strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(ref, "/")
}
