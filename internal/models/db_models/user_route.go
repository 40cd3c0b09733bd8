package db_models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRouteStatus string

const (
	StatusPlanned    UserRouteStatus = "planned"
	StatusInProgress UserRouteStatus = "in_progress"
	StatusCompleted  UserRouteStatus = "completed"
)

func (s UserRouteStatus) Valid() bool {
	switch s {
	case StatusPlanned, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// UserRoute is a user's journal entry for one route. DateStarted and
// DateCompleted are caller-managed and never inferred from Status.
type UserRoute struct {
	BaseModel
	UserID        uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_user_routes_user_route"`
	RouteID       uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_user_routes_user_route;index"`
	Status        UserRouteStatus `gorm:"size:20;not null;default:planned"`
	IsFavorite    bool            `gorm:"not null;default:false"`
	Comment       string          `gorm:"type:text"`
	DateSaved     time.Time       `gorm:"not null;index"`
	DateStarted   *time.Time
	DateCompleted *time.Time

	User  Account `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Route Route   `gorm:"foreignKey:RouteID;constraint:OnDelete:CASCADE"`
}

func (u *UserRoute) BeforeCreate(tx *gorm.DB) error {
	if err := u.BaseModel.BeforeCreate(tx); err != nil {
		return err
	}
	if u.DateSaved.IsZero() {
		u.DateSaved = time.Now()
	}
	if u.Status == "" {
		u.Status = StatusPlanned
	}
	return nil
}
