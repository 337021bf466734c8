package db_models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Attraction struct {
	BaseModel
	Name                 string
	Banner               string
	Date                 time.Time
	Location             string `gorm:"index"`
	FoundInAttraction    string
	NotFoundInAttraction string
	Description          string
	Pricing              float64
	WhatToTake           pq.StringArray `gorm:"type:text[]"`
	GeneralMedias        pq.StringArray `gorm:"type:text[]"`
	AverageRating        float64        `gorm:"default:5"`

	AgencyID uuid.UUID `gorm:"type:uuid;index"`
	Agency   *Agency   `gorm:"foreignKey:AgencyID"`

	Categories []Category           `gorm:"many2many:attraction_categories"`
	Ratings    []RatingToAttraction `gorm:"foreignKey:AttractionID;constraint:OnDelete:CASCADE"`
}
