package response_models

import (
	"travelling/internal/models/db_models"
	"travelling/pkg/utils"
)

type LoginResponse struct {
	AccessToken string `json:"access_token"`
}

type UserSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

type UserResponse struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Email     string           `json:"email"`
	Phone     string           `json:"phone"`
	Role      string           `json:"role"`
	CreatedAt string           `json:"createdAt"`
	UpdatedAt string           `json:"updatedAt"`
	Agency    *ProfileRef      `json:"agency,omitempty"`
	Business  *ProfileRef      `json:"business,omitempty"`
	Tourist   *TouristResponse `json:"tourist,omitempty"`
}

type ProfileRef struct {
	ID string `json:"id"`
}

type AgencyResponse struct {
	ID          string              `json:"id"`
	User        UserSummary         `json:"user"`
	Attractions []AttractionSummary `json:"attractions,omitempty"`
	CreatedAt   string              `json:"createdAt"`
}

type BusinessResponse struct {
	ID             string                 `json:"id"`
	User           UserSummary            `json:"user"`
	Establishments []EstablishmentSummary `json:"establishments,omitempty"`
	CreatedAt      string                 `json:"createdAt"`
}

type TouristResponse struct {
	ID                 string             `json:"id"`
	Lastname           string             `json:"lastname"`
	Age                int                `json:"age"`
	User               *UserSummary       `json:"user,omitempty"`
	FavoriteCategories []CategoryResponse `json:"favoriteCategories"`
	CreatedAt          string             `json:"createdAt"`
}

func NewUserSummary(u *db_models.User) UserSummary {
	if u == nil {
		return UserSummary{}
	}
	return UserSummary{ID: u.ID.String(), Name: u.Name, Email: u.Email, Phone: u.Phone}
}

func NewUserResponse(u db_models.User) UserResponse {
	resp := UserResponse{
		ID:        u.ID.String(),
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		Role:      string(u.Role),
		CreatedAt: utils.FormatUnix(u.CreatedAt),
		UpdatedAt: utils.FormatUnix(u.UpdatedAt),
	}
	if u.Agency != nil {
		resp.Agency = &ProfileRef{ID: u.Agency.ID.String()}
	}
	if u.Business != nil {
		resp.Business = &ProfileRef{ID: u.Business.ID.String()}
	}
	if u.Tourist != nil {
		t := NewTouristResponse(*u.Tourist)
		resp.Tourist = &t
	}
	return resp
}

func NewAgencyResponse(a db_models.Agency) AgencyResponse {
	resp := AgencyResponse{
		ID:        a.ID.String(),
		User:      NewUserSummary(a.User),
		CreatedAt: utils.FormatUnix(a.CreatedAt),
	}
	for _, at := range a.Attractions {
		resp.Attractions = append(resp.Attractions, NewAttractionSummary(at))
	}
	return resp
}

func NewBusinessResponse(b db_models.Business) BusinessResponse {
	resp := BusinessResponse{
		ID:        b.ID.String(),
		User:      NewUserSummary(b.User),
		CreatedAt: utils.FormatUnix(b.CreatedAt),
	}
	for _, e := range b.Establishments {
		resp.Establishments = append(resp.Establishments, NewEstablishmentSummary(e))
	}
	return resp
}

func NewTouristResponse(t db_models.Tourist) TouristResponse {
	resp := TouristResponse{
		ID:                 t.ID.String(),
		Lastname:           t.Lastname,
		Age:                t.Age,
		FavoriteCategories: NewCategoryResponses(t.FavoriteCategories),
		CreatedAt:          utils.FormatUnix(t.CreatedAt),
	}
	if t.User != nil {
		u := NewUserSummary(t.User)
		resp.User = &u
	}
	return resp
}
