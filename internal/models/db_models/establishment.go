package db_models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Establishment struct {
	BaseModel
	Name                 string
	Description          string
	Banner               string
	OpenHours            time.Time
	CloseHours           time.Time
	MinPrice             float64
	MaxPrice             float64
	Location             string         `gorm:"index"`
	OpenDays             pq.StringArray `gorm:"type:text[]"`
	FoundInEstablishment string
	OtherInformation     string
	Phone                string
	GeneralMedias        pq.StringArray `gorm:"type:text[]"`
	MenuOfServicesMedia  pq.StringArray `gorm:"type:text[]"`
	AverageRating        float64        `gorm:"default:5"`

	BusinessID uuid.UUID `gorm:"type:uuid;index"`
	Business   *Business `gorm:"foreignKey:BusinessID"`

	Categories []Category              `gorm:"many2many:establishment_categories"`
	Ratings    []RatingToEstablishment `gorm:"foreignKey:EstablishmentID;constraint:OnDelete:CASCADE"`
}
