package response_models

import (
	"travelling/internal/models/db_models"
	"travelling/pkg/utils"
)

// LocalResponse is one stop. Exactly one of Attraction and Establishment is
// set, matching Type.
type LocalResponse struct {
	ID            string                `json:"id"`
	Position      int                   `json:"position"`
	Type          string                `json:"type"`
	LocalID       string                `json:"localId"`
	Attraction    *AttractionSummary    `json:"attraction,omitempty"`
	Establishment *EstablishmentSummary `json:"establishment,omitempty"`
}

type TravellingResponse struct {
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	TouristID string          `json:"touristId"`
	Locals    []LocalResponse `json:"locals"`
	CreatedAt string          `json:"createdAt"`
	UpdatedAt string          `json:"updatedAt"`
}

func NewTravellingResponse(t db_models.Travelling, locals []LocalResponse) TravellingResponse {
	if locals == nil {
		locals = []LocalResponse{}
	}
	return TravellingResponse{
		ID:        t.ID.String(),
		Title:     t.Title,
		TouristID: t.TouristID.String(),
		Locals:    locals,
		CreatedAt: utils.FormatUnix(t.CreatedAt),
		UpdatedAt: utils.FormatUnix(t.UpdatedAt),
	}
}
