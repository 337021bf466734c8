package response_models

import (
	"travelling/internal/models/db_models"
	"travelling/pkg/utils"
)

type RatingResponse struct {
	ID        string  `json:"id"`
	Value     float64 `json:"value"`
	TouristID string  `json:"touristId"`
	TargetID  string  `json:"targetId"`
	Target    string  `json:"target"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}

func NewRatingResponse(r db_models.Rating, target db_models.RatingTarget) RatingResponse {
	return RatingResponse{
		ID:        r.ID.String(),
		Value:     r.Value,
		TouristID: r.TouristID.String(),
		TargetID:  r.TargetID.String(),
		Target:    string(target),
		CreatedAt: utils.FormatUnix(r.CreatedAt),
		UpdatedAt: utils.FormatUnix(r.UpdatedAt),
	}
}
