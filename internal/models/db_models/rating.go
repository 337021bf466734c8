package db_models

import "github.com/google/uuid"

type RatingToAttraction struct {
	BaseModel
	Value        float64   `gorm:"not null"`
	TouristID    uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_rating_tourist_attraction"`
	AttractionID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_rating_tourist_attraction"`

	Tourist    *Tourist    `gorm:"foreignKey:TouristID;constraint:OnDelete:CASCADE"`
	Attraction *Attraction `gorm:"foreignKey:AttractionID"`
}

type RatingToEstablishment struct {
	BaseModel
	Value           float64   `gorm:"not null"`
	TouristID       uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_rating_tourist_establishment"`
	EstablishmentID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_rating_tourist_establishment"`

	Tourist       *Tourist       `gorm:"foreignKey:TouristID;constraint:OnDelete:CASCADE"`
	Establishment *Establishment `gorm:"foreignKey:EstablishmentID"`
}

// RatingTarget tells which of the two rating tables an operation works on.
type RatingTarget string

const (
	RatingTargetAttraction    RatingTarget = "attraction"
	RatingTargetEstablishment RatingTarget = "establishment"
)

// Rating is the table independent view of a single rating row.
type Rating struct {
	ID        uuid.UUID
	Value     float64
	TouristID uuid.UUID
	TargetID  uuid.UUID
	CreatedAt int64
	UpdatedAt int64
}
