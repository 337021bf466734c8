package db_models

import "github.com/google/uuid"

type ContractStatus string

const (
	ContractPending   ContractStatus = "PENDING"
	ContractConfirmed ContractStatus = "CONFIRMED"
	ContractCanceled  ContractStatus = "CANCELED"
	ContractFinished  ContractStatus = "FINISHED"
)

// Contract keeps its own Deleted flag; DeletedAt from BaseModel is only
// touched by a forced removal.
type Contract struct {
	BaseModel
	Status  ContractStatus `gorm:"type:varchar(16);default:PENDING;index"`
	Deleted bool           `gorm:"default:false"`

	TouristID    uuid.UUID `gorm:"type:uuid;index"`
	AgencyID     uuid.UUID `gorm:"type:uuid;index"`
	AttractionID uuid.UUID `gorm:"type:uuid;index"`

	Tourist    *Tourist    `gorm:"foreignKey:TouristID;constraint:OnDelete:CASCADE"`
	Agency     *Agency     `gorm:"foreignKey:AgencyID;constraint:OnDelete:CASCADE"`
	Attraction *Attraction `gorm:"foreignKey:AttractionID;constraint:OnDelete:CASCADE"`
}
