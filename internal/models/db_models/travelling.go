package db_models

import "github.com/google/uuid"

type Travelling struct {
	BaseModel
	Title     string    `gorm:"uniqueIndex;not null"`
	TouristID uuid.UUID `gorm:"type:uuid;index"`

	Tourist *Tourist         `gorm:"foreignKey:TouristID"`
	Locals  []LocalReference `gorm:"foreignKey:TravellingID;constraint:OnDelete:CASCADE"`
}

type LocalType string

const (
	LocalAttraction    LocalType = "attraction"
	LocalEstablishment LocalType = "establishment"
)

func (t LocalType) Valid() bool {
	return t == LocalAttraction || t == LocalEstablishment
}

// LocalReference is one stop of a travelling. LocalType says which table
// LocalID points to.
type LocalReference struct {
	BaseModel
	TravellingID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_local_travelling_position"`
	Position     int       `gorm:"uniqueIndex:idx_local_travelling_position"`
	LocalType    LocalType `gorm:"type:varchar(16);not null"`
	LocalID      uuid.UUID `gorm:"type:uuid;index"`
}
