package request_models

// RouteListQuery mirrors the query string of GET /routes. Numeric filters are
// kept as strings and parsed by the route service so malformed values surface
// as validation errors.
type RouteListQuery struct {
	City         string `form:"city"`
	Mood         string `form:"mood"`
	Category     string `form:"category"`
	BudgetMaxLte string `form:"budget_max__lte"`
	BudgetMaxGte string `form:"budget_max__gte"`
	BudgetMinGte string `form:"budget_min__gte"`
	DurationLte  string `form:"duration__lte"`
	Search       string `form:"search"`
	Ordering     string `form:"ordering"`
	Page         int    `form:"page,default=1" binding:"min=1"`
	PageSize     int    `form:"pageSize,default=20" binding:"min=1,max=100"`
}
