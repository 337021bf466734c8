package response_models

import (
	"travelling/internal/models/db_models"
	"travelling/pkg/utils"
)

type ContractTourist struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Lastname string `json:"lastname"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

type ContractAttraction struct {
	AttractionSummary
	Ratings []RatingResponse `json:"ratings,omitempty"`
}

type ContractResponse struct {
	ID           string              `json:"id"`
	Status       string              `json:"status"`
	Deleted      bool                `json:"deleted"`
	TouristID    string              `json:"touristId"`
	AgencyID     string              `json:"agencyId"`
	AttractionID string              `json:"attractionId"`
	Tourist      *ContractTourist    `json:"tourist,omitempty"`
	Agency       *UserSummary        `json:"agency,omitempty"`
	Attraction   *ContractAttraction `json:"attraction,omitempty"`
	CreatedAt    string              `json:"createdAt"`
	UpdatedAt    string              `json:"updatedAt"`
}

func NewContractResponse(c db_models.Contract) ContractResponse {
	resp := ContractResponse{
		ID:           c.ID.String(),
		Status:       string(c.Status),
		Deleted:      c.Deleted,
		TouristID:    c.TouristID.String(),
		AgencyID:     c.AgencyID.String(),
		AttractionID: c.AttractionID.String(),
		CreatedAt:    utils.FormatUnix(c.CreatedAt),
		UpdatedAt:    utils.FormatUnix(c.UpdatedAt),
	}
	if c.Tourist != nil {
		t := &ContractTourist{ID: c.Tourist.ID.String(), Lastname: c.Tourist.Lastname}
		if c.Tourist.User != nil {
			t.Name = c.Tourist.User.Name
			t.Email = c.Tourist.User.Email
			t.Phone = c.Tourist.User.Phone
		}
		resp.Tourist = t
	}
	if c.Agency != nil {
		a := NewUserSummary(c.Agency.User)
		a.ID = c.Agency.ID.String()
		resp.Agency = &a
	}
	if c.Attraction != nil {
		resp.Attraction = &ContractAttraction{AttractionSummary: NewAttractionSummary(*c.Attraction)}
	}
	return resp
}
