package request_models

import "time"

type CreateAttractionRequest struct {
	Name                 string    `json:"name" binding:"required"`
	Banner               string    `json:"banner"`
	Date                 time.Time `json:"date" binding:"required"`
	Location             string    `json:"location" binding:"required"`
	FoundInAttraction    string    `json:"foundInAttraction"`
	NotFoundInAttraction string    `json:"notFoundInAttraction"`
	Description          string    `json:"description"`
	Pricing              float64   `json:"pricing" binding:"gte=0"`
	Categories           []string  `json:"categories" binding:"omitempty,dive,uuid"`
	GeneralMedias        []string  `json:"generalMedias"`
	WhatToTake           []string  `json:"whatToTake"`
}

type UpdateAttractionRequest struct {
	Name                 *string    `json:"name" binding:"omitempty,min=1"`
	Banner               *string    `json:"banner"`
	Date                 *time.Time `json:"date"`
	Location             *string    `json:"location" binding:"omitempty,min=1"`
	FoundInAttraction    *string    `json:"foundInAttraction"`
	NotFoundInAttraction *string    `json:"notFoundInAttraction"`
	Description          *string    `json:"description"`
	Pricing              *float64   `json:"pricing" binding:"omitempty,gte=0"`
	Categories           []string   `json:"categories" binding:"omitempty,dive,uuid"`
	GeneralMedias        []string   `json:"generalMedias"`
	WhatToTake           []string   `json:"whatToTake"`
}

type CreateEstablishmentRequest struct {
	Name                 string    `json:"name" binding:"required"`
	Description          string    `json:"description"`
	Banner               string    `json:"banner"`
	OpenHours            time.Time `json:"openHours" binding:"required"`
	CloseHours           time.Time `json:"closeHours" binding:"required"`
	MinPrice             float64   `json:"minPrice" binding:"gte=0"`
	MaxPrice             float64   `json:"maxPrice" binding:"gtefield=MinPrice"`
	Location             string    `json:"location" binding:"required"`
	OpenDays             []string  `json:"openDays"`
	FoundInEstablishment string    `json:"foundInEstablishment"`
	OtherInformation     string    `json:"otherInformation"`
	Phone                string    `json:"phone" binding:"omitempty,min=8"`
	Categories           []string  `json:"categories" binding:"omitempty,dive,uuid"`
	GeneralMedias        []string  `json:"generalMedias"`
	MenuOfServicesMedia  []string  `json:"menuOfServicesMedia"`
}

type UpdateEstablishmentRequest struct {
	Name                 *string    `json:"name" binding:"omitempty,min=1"`
	Description          *string    `json:"description"`
	Banner               *string    `json:"banner"`
	OpenHours            *time.Time `json:"openHours"`
	CloseHours           *time.Time `json:"closeHours"`
	MinPrice             *float64   `json:"minPrice" binding:"omitempty,gte=0"`
	MaxPrice             *float64   `json:"maxPrice" binding:"omitempty,gte=0"`
	Location             *string    `json:"location" binding:"omitempty,min=1"`
	OpenDays             []string   `json:"openDays"`
	FoundInEstablishment *string    `json:"foundInEstablishment"`
	OtherInformation     *string    `json:"otherInformation"`
	Phone                *string    `json:"phone" binding:"omitempty,min=8"`
	Categories           []string   `json:"categories" binding:"omitempty,dive,uuid"`
	GeneralMedias        []string   `json:"generalMedias"`
	MenuOfServicesMedia  []string   `json:"menuOfServicesMedia"`
}
