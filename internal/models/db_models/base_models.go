package db_models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseModel carries the uuid primary key and server-set timestamps. Rows are
// hard-deleted: ratings and journal entries are unique per (user, route) and a
// soft-deleted row would keep holding the pair.
type BaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// AllModels lists every table managed by AutoMigrate, parents first.
func AllModels() []interface{} {
	return []interface{}{
		&Account{},
		&Route{},
		&RoutePoint{},
		&RouteImage{},
		&Rating{},
		&UserRoute{},
	}
}
