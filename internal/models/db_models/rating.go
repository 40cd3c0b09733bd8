package db_models

import "github.com/google/uuid"

type Rating struct {
	BaseModel
	UserID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_ratings_user_route"`
	RouteID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_ratings_user_route;index"`
	Score   int       `gorm:"not null;check:score >= 1 AND score <= 5"`
	Comment string    `gorm:"type:text"`

	User  Account `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Route Route   `gorm:"foreignKey:RouteID;constraint:OnDelete:CASCADE"`
}
