package db_models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BaseModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt int64          `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt int64          `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate keeps a caller supplied ID, role extensions reuse the user ID.
func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	now := time.Now().Unix()
	b.CreatedAt = now
	b.UpdatedAt = now
	return nil
}

func (b *BaseModel) BeforeUpdate(tx *gorm.DB) error {
	b.UpdatedAt = time.Now().Unix()
	return nil
}

// AllModels is the migration set, ordered so referenced tables exist first.
func AllModels() []interface{} {
	return []interface{}{
		&User{},
		&Category{},
		&Agency{},
		&Business{},
		&Tourist{},
		&Attraction{},
		&Establishment{},
		&RatingToAttraction{},
		&RatingToEstablishment{},
		&Contract{},
		&Travelling{},
		&LocalReference{},
	}
}
