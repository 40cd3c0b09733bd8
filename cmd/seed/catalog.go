package main

import (
	"fmt"

	"github.com/gin-gonic/gin/binding"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/shopspring/decimal"
	"trailbook/internal/models/db_models"
)

// catalogFile is the YAML layout accepted by the seeder. Money and
// coordinates are read as strings so they keep their exact decimal value.
type catalogFile struct {
	Routes []catalogRoute `koanf:"routes" binding:"required,min=1,dive"`
}

type catalogRoute struct {
	Name              string         `koanf:"name" binding:"required,max=255"`
	Description       string         `koanf:"description"`
	City              string         `koanf:"city" binding:"required,max=100"`
	Mood              string         `koanf:"mood" binding:"required,route_mood"`
	Category          string         `koanf:"category" binding:"omitempty,route_category"`
	BudgetMin         string         `koanf:"budget_min" binding:"omitempty,numeric"`
	BudgetMax         string         `koanf:"budget_max" binding:"required,numeric"`
	EstimatedDuration int            `koanf:"estimated_duration" binding:"min=0"`
	Points            []catalogPoint `koanf:"points" binding:"dive"`
	Images            []catalogImage `koanf:"images" binding:"dive"`
}

type catalogPoint struct {
	Name           string `koanf:"name" binding:"required,max=255"`
	Description    string `koanf:"description"`
	Address        string `koanf:"address" binding:"max=255"`
	Latitude       string `koanf:"latitude" binding:"required,latitude"`
	Longitude      string `koanf:"longitude" binding:"required,longitude"`
	Order          int    `koanf:"order" binding:"min=0"`
	DurationAtStop int    `koanf:"duration_at_stop" binding:"min=0"`
	Image          string `koanf:"image"`
}

type catalogImage struct {
	Image   string `koanf:"image" binding:"required"`
	IsCover bool   `koanf:"is_cover"`
	Order   int    `koanf:"order" binding:"min=0"`
}

func loadCatalog(path string) (*catalogFile, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var catalog catalogFile
	if err := k.Unmarshal("", &catalog); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if err := binding.Validator.ValidateStruct(&catalog); err != nil {
		return nil, fmt.Errorf("validate %s: %w", path, err)
	}
	return &catalog, nil
}

func (c *catalogFile) toModels() ([]db_models.Route, error) {
	routes := make([]db_models.Route, 0, len(c.Routes))
	for _, r := range c.Routes {
		route := db_models.Route{
			Name:              r.Name,
			Description:       r.Description,
			City:              r.City,
			Mood:              db_models.RouteMood(r.Mood),
			Category:          db_models.RouteCategory(r.Category),
			EstimatedDuration: r.EstimatedDuration,
		}
		if route.Category == "" {
			route.Category = db_models.CategoryMixed
		}

		var err error
		if route.BudgetMin, err = decimalOrZero(r.BudgetMin); err != nil {
			return nil, fmt.Errorf("route %q: budget_min: %w", r.Name, err)
		}
		if route.BudgetMax, err = decimal.NewFromString(r.BudgetMax); err != nil {
			return nil, fmt.Errorf("route %q: budget_max: %w", r.Name, err)
		}

		for _, p := range r.Points {
			point := db_models.RoutePoint{
				Name:           p.Name,
				Description:    p.Description,
				Address:        p.Address,
				SortOrder:      p.Order,
				DurationAtStop: p.DurationAtStop,
			}
			if point.Latitude, err = decimal.NewFromString(p.Latitude); err != nil {
				return nil, fmt.Errorf("point %q: latitude: %w", p.Name, err)
			}
			if point.Longitude, err = decimal.NewFromString(p.Longitude); err != nil {
				return nil, fmt.Errorf("point %q: longitude: %w", p.Name, err)
			}
			if p.Image != "" {
				image := p.Image
				point.Image = &image
			}
			route.Points = append(route.Points, point)
		}

		for _, img := range r.Images {
			route.Images = append(route.Images, db_models.RouteImage{
				Image:     img.Image,
				IsCover:   img.IsCover,
				SortOrder: img.Order,
			})
		}
		routes = append(routes, route)
	}
	return routes, nil
}

func decimalOrZero(raw string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(raw)
}
