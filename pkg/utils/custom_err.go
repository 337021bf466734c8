package utils

import "errors"

var (
	ErrDatabaseError      = errors.New("database error")
	ErrInvalidInput       = errors.New("invalid input")
	ErrForbidden          = errors.New("forbidden")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("email address or password provided is incorrect")
	ErrStorageUnavailable = errors.New("storage unavailable")
)

var (
	ErrUserNotFound          = errors.New("user not found")
	ErrTouristNotFound       = errors.New("tourist does not exist")
	ErrAgencyNotFound        = errors.New("agency does not exist")
	ErrBusinessNotFound      = errors.New("business does not exist")
	ErrCategoryNotFound      = errors.New("category does not exist")
	ErrAttractionNotFound    = errors.New("attraction does not exist")
	ErrEstablishmentNotFound = errors.New("establishment does not exist")
	ErrContractNotFound      = errors.New("contract does not exist")
	ErrTravellingNotFound    = errors.New("travelling does not exist")
	ErrLocalNotFound         = errors.New("local reference target does not exist")
	ErrRatingNotFound        = errors.New("rating does not exist")
	ErrMediaNotFound         = errors.New("media not found")
	ErrNoFilterMatches       = errors.New("no results found with the provided filters")
)

var (
	ErrUserAlreadyExists          = errors.New("user already exists")
	ErrCategoryAlreadyExists      = errors.New("category already exists")
	ErrAttractionAlreadyExists    = errors.New("attraction already exists in this location")
	ErrEstablishmentAlreadyExists = errors.New("establishment already exists in this location")
	ErrContractAlreadyExists      = errors.New("contract already exists")
	ErrTravellingAlreadyExists    = errors.New("travelling already exists with this title")
	ErrRatingAlreadyExists        = errors.New("rating already exists for this tourist")
)

var (
	ErrInvalidLocalPosition = errors.New("local position must match its index")
	ErrInvalidLocalType     = errors.New("local type must be attraction or establishment")
	ErrInvalidRating        = errors.New("rating value must be between 0 and 5")
	ErrInvalidStatus        = errors.New("invalid contract status")
)

var (
	notFoundErrors = []error{
		ErrUserNotFound, ErrTouristNotFound, ErrAgencyNotFound, ErrBusinessNotFound,
		ErrCategoryNotFound, ErrAttractionNotFound, ErrEstablishmentNotFound,
		ErrContractNotFound, ErrTravellingNotFound, ErrRatingNotFound, ErrMediaNotFound,
		ErrNoFilterMatches,
	}
	conflictErrors = []error{
		ErrUserAlreadyExists, ErrCategoryAlreadyExists, ErrAttractionAlreadyExists,
		ErrEstablishmentAlreadyExists, ErrContractAlreadyExists, ErrTravellingAlreadyExists,
		ErrRatingAlreadyExists,
	}
	validationErrors = []error{
		ErrInvalidInput, ErrInvalidLocalPosition, ErrInvalidLocalType, ErrInvalidRating,
		ErrInvalidStatus, ErrLocalNotFound,
	}
)

func isAny(err error, targets []error) bool {
	for _, t := range targets {
		if errors.Is(err, t) {
			return true
		}
	}
	return false
}
