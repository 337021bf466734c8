package response_models

import (
	"travelling/internal/models/db_models"
	"travelling/pkg/utils"
)

type OwnerSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type AttractionResponse struct {
	ID                   string             `json:"id"`
	Name                 string             `json:"name"`
	Banner               string             `json:"banner"`
	Date                 string             `json:"date"`
	Location             string             `json:"location"`
	FoundInAttraction    string             `json:"foundInAttraction"`
	NotFoundInAttraction string             `json:"notFoundInAttraction"`
	Description          string             `json:"description"`
	Pricing              float64            `json:"pricing"`
	WhatToTake           []string           `json:"whatToTake"`
	GeneralMedias        []string           `json:"generalMedias"`
	AverageRating        float64            `json:"averageRating"`
	AgencyID             string             `json:"agencyId"`
	Agency               *OwnerSummary      `json:"agency,omitempty"`
	Categories           []CategoryResponse `json:"categories"`
	Ratings              []RatingResponse   `json:"ratings"`
	CreatedAt            string             `json:"createdAt"`
	UpdatedAt            string             `json:"updatedAt"`
}

type AttractionSummary struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Banner        string  `json:"banner"`
	Location      string  `json:"location"`
	Date          string  `json:"date"`
	Pricing       float64 `json:"pricing"`
	AverageRating float64 `json:"averageRating"`
}

type EstablishmentResponse struct {
	ID                   string             `json:"id"`
	Name                 string             `json:"name"`
	Description          string             `json:"description"`
	Banner               string             `json:"banner"`
	OpenHours            string             `json:"openHours"`
	CloseHours           string             `json:"closeHours"`
	MinPrice             float64            `json:"minPrice"`
	MaxPrice             float64            `json:"maxPrice"`
	Location             string             `json:"location"`
	OpenDays             []string           `json:"openDays"`
	FoundInEstablishment string             `json:"foundInEstablishment"`
	OtherInformation     string             `json:"otherInformation"`
	Phone                string             `json:"phone"`
	GeneralMedias        []string           `json:"generalMedias"`
	MenuOfServicesMedia  []string           `json:"menuOfServicesMedia"`
	AverageRating        float64            `json:"averageRating"`
	BusinessID           string             `json:"businessId"`
	Business             *OwnerSummary      `json:"business,omitempty"`
	Categories           []CategoryResponse `json:"categories"`
	Ratings              []RatingResponse   `json:"ratings"`
	CreatedAt            string             `json:"createdAt"`
	UpdatedAt            string             `json:"updatedAt"`
}

type EstablishmentSummary struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Banner        string  `json:"banner"`
	Location      string  `json:"location"`
	MinPrice      float64 `json:"minPrice"`
	MaxPrice      float64 `json:"maxPrice"`
	AverageRating float64 `json:"averageRating"`
}

func copyStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return append([]string(nil), s...)
}

func NewAttractionResponse(a db_models.Attraction) AttractionResponse {
	resp := AttractionResponse{
		ID:                   a.ID.String(),
		Name:                 a.Name,
		Banner:               a.Banner,
		Date:                 utils.FormatTime(a.Date),
		Location:             a.Location,
		FoundInAttraction:    a.FoundInAttraction,
		NotFoundInAttraction: a.NotFoundInAttraction,
		Description:          a.Description,
		Pricing:              a.Pricing,
		WhatToTake:           copyStrings(a.WhatToTake),
		GeneralMedias:        copyStrings(a.GeneralMedias),
		AverageRating:        a.AverageRating,
		AgencyID:             a.AgencyID.String(),
		Categories:           NewCategoryResponses(a.Categories),
		Ratings:              make([]RatingResponse, 0, len(a.Ratings)),
		CreatedAt:            utils.FormatUnix(a.CreatedAt),
		UpdatedAt:            utils.FormatUnix(a.UpdatedAt),
	}
	if a.Agency != nil && a.Agency.User != nil {
		resp.Agency = &OwnerSummary{ID: a.Agency.ID.String(), Name: a.Agency.User.Name}
	}
	for _, r := range a.Ratings {
		resp.Ratings = append(resp.Ratings, RatingResponse{
			ID:        r.ID.String(),
			Value:     r.Value,
			TouristID: r.TouristID.String(),
			TargetID:  r.AttractionID.String(),
			Target:    string(db_models.RatingTargetAttraction),
			CreatedAt: utils.FormatUnix(r.CreatedAt),
			UpdatedAt: utils.FormatUnix(r.UpdatedAt),
		})
	}
	return resp
}

func NewAttractionSummary(a db_models.Attraction) AttractionSummary {
	return AttractionSummary{
		ID:            a.ID.String(),
		Name:          a.Name,
		Banner:        a.Banner,
		Location:      a.Location,
		Date:          utils.FormatTime(a.Date),
		Pricing:       a.Pricing,
		AverageRating: a.AverageRating,
	}
}

func NewEstablishmentResponse(e db_models.Establishment) EstablishmentResponse {
	resp := EstablishmentResponse{
		ID:                   e.ID.String(),
		Name:                 e.Name,
		Description:          e.Description,
		Banner:               e.Banner,
		OpenHours:            utils.FormatTime(e.OpenHours),
		CloseHours:           utils.FormatTime(e.CloseHours),
		MinPrice:             e.MinPrice,
		MaxPrice:             e.MaxPrice,
		Location:             e.Location,
		OpenDays:             copyStrings(e.OpenDays),
		FoundInEstablishment: e.FoundInEstablishment,
		OtherInformation:     e.OtherInformation,
		Phone:                e.Phone,
		GeneralMedias:        copyStrings(e.GeneralMedias),
		MenuOfServicesMedia:  copyStrings(e.MenuOfServicesMedia),
		AverageRating:        e.AverageRating,
		BusinessID:           e.BusinessID.String(),
		Categories:           NewCategoryResponses(e.Categories),
		Ratings:              make([]RatingResponse, 0, len(e.Ratings)),
		CreatedAt:            utils.FormatUnix(e.CreatedAt),
		UpdatedAt:            utils.FormatUnix(e.UpdatedAt),
	}
	if e.Business != nil && e.Business.User != nil {
		resp.Business = &OwnerSummary{ID: e.Business.ID.String(), Name: e.Business.User.Name}
	}
	for _, r := range e.Ratings {
		resp.Ratings = append(resp.Ratings, RatingResponse{
			ID:        r.ID.String(),
			Value:     r.Value,
			TouristID: r.TouristID.String(),
			TargetID:  r.EstablishmentID.String(),
			Target:    string(db_models.RatingTargetEstablishment),
			CreatedAt: utils.FormatUnix(r.CreatedAt),
			UpdatedAt: utils.FormatUnix(r.UpdatedAt),
		})
	}
	return resp
}

func NewEstablishmentSummary(e db_models.Establishment) EstablishmentSummary {
	return EstablishmentSummary{
		ID:            e.ID.String(),
		Name:          e.Name,
		Banner:        e.Banner,
		Location:      e.Location,
		MinPrice:      e.MinPrice,
		MaxPrice:      e.MaxPrice,
		AverageRating: e.AverageRating,
	}
}
