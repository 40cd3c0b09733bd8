package db_models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RouteMood string

const (
	MoodCalm        RouteMood = "calm"
	MoodAdventurous RouteMood = "adventurous"
	MoodCurious     RouteMood = "curious"
)

func (m RouteMood) Valid() bool {
	switch m {
	case MoodCalm, MoodAdventurous, MoodCurious:
		return true
	}
	return false
}

type RouteCategory string

const (
	CategoryParks   RouteCategory = "parks"
	CategoryMuseums RouteCategory = "museums"
	CategoryCafes   RouteCategory = "cafes"
	CategoryMixed   RouteCategory = "mixed"
)

func (c RouteCategory) Valid() bool {
	switch c {
	case CategoryParks, CategoryMuseums, CategoryCafes, CategoryMixed:
		return true
	}
	return false
}

// Route is a curated multi-stop itinerary. AvgRating is derived from the
// route's ratings and is only written by the rating repository.
type Route struct {
	BaseModel
	Name              string          `gorm:"size:255;not null"`
	Description       string          `gorm:"type:text"`
	City              string          `gorm:"size:100;not null;index"`
	Mood              RouteMood       `gorm:"size:20;not null;index"`
	Category          RouteCategory   `gorm:"size:20;not null;default:mixed"`
	BudgetMin         decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0"`
	BudgetMax         decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	EstimatedDuration int             `gorm:"not null;check:estimated_duration >= 0"`
	AvgRating         decimal.Decimal `gorm:"type:numeric(3,2);not null;default:0"`

	Points []RoutePoint `gorm:"foreignKey:RouteID;constraint:OnDelete:CASCADE"`
	Images []RouteImage `gorm:"foreignKey:RouteID;constraint:OnDelete:CASCADE"`
}

// RoutePoint is one stop of a route. SortOrder is advisory; equal values are
// ordered by creation.
type RoutePoint struct {
	BaseModel
	RouteID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name           string          `gorm:"size:255;not null"`
	Description    string          `gorm:"type:text"`
	Address        string          `gorm:"size:255"`
	Latitude       decimal.Decimal `gorm:"type:numeric(9,6);not null"`
	Longitude      decimal.Decimal `gorm:"type:numeric(9,6);not null"`
	SortOrder      int             `gorm:"not null;default:0;check:sort_order >= 0"`
	DurationAtStop int             `gorm:"not null;default:0;check:duration_at_stop >= 0"`
	Image          *string
}

type RouteImage struct {
	BaseModel
	RouteID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Image     string    `gorm:"not null"`
	IsCover   bool      `gorm:"not null;default:false"`
	SortOrder int       `gorm:"not null;default:0"`
}
