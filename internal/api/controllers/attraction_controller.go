package controllers

import (
	"github.com/gin-gonic/gin"

	"travelling/internal/models/request_models"
	"travelling/internal/services"
	"travelling/pkg/filters"
	"travelling/pkg/utils"
)

type AttractionController struct {
	attractionService services.AttractionServiceInterface
}

func NewAttractionController(attractionService services.AttractionServiceInterface) *AttractionController {
	return &AttractionController{attractionService: attractionService}
}

// Create godoc
// @Summary Create an attraction for an agency
// @Tags Attractions
// @Accept json
// @Produce json
// @Param agencyId path string true "Agency ID"
// @Param request body request_models.CreateAttractionRequest true "Attraction payload"
// @Success 201 {object} utils.APIResponse{data=response_models.AttractionResponse}
// @Failure 403 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse "Location already taken"
// @Security BearerAuth
// @Router /attraction/{agencyId} [post]
func (a *AttractionController) Create(c *gin.Context) {
	agencyID, ok := uuidParam(c, "agencyId")
	if !ok {
		return
	}
	var req request_models.CreateAttractionRequest
	if !bindJSON(c, &req) {
		return
	}

	attraction, err := a.attractionService.Create(c.Request.Context(), actorFrom(c), agencyID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, attraction, "Attraction created successfully")
}

// GetAll godoc
// @Summary List attractions
// @Description Filters are combined with AND. A filtered query without matches answers 404.
// @Tags Attractions
// @Produce json
// @Param name query string false "Name contains (case insensitive)"
// @Param minPrice query number false "Minimum price"
// @Param maxPrice query number false "Maximum price"
// @Param startDate query string false "Earliest date"
// @Param endDate query string false "Latest date"
// @Param location query string false "Location contains"
// @Param averageRating query number false "Minimum average rating"
// @Param categories query string false "Comma separated category ids or titles"
// @Param interprise query string false "Agency name contains"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /attraction [get]
func (a *AttractionController) GetAll(c *gin.Context) {
	attractions, err := a.attractionService.FindAll(c.Request.Context(), filters.Params(c.Request.URL.Query()))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, attractions, "Attractions fetched successfully")
}

// GetByID godoc
// @Summary Get an attraction
// @Tags Attractions
// @Produce json
// @Param id path string true "Attraction ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /attraction/{id} [get]
func (a *AttractionController) GetByID(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	attraction, err := a.attractionService.FindByID(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, attraction, "Attraction fetched successfully")
}

// GetByAgency lists the attractions offered by one agency.
func (a *AttractionController) GetByAgency(c *gin.Context) {
	agencyID, ok := uuidParam(c, "agencyId")
	if !ok {
		return
	}

	attractions, err := a.attractionService.FindByAgency(c.Request.Context(), agencyID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, attractions, "Attractions fetched successfully")
}

// Update godoc
// @Summary Update an attraction
// @Tags Attractions
// @Accept json
// @Produce json
// @Param id path string true "Attraction ID"
// @Param request body request_models.UpdateAttractionRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /attraction/{id} [put]
func (a *AttractionController) Update(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req request_models.UpdateAttractionRequest
	if !bindJSON(c, &req) {
		return
	}

	attraction, err := a.attractionService.Update(c.Request.Context(), actorFrom(c), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, attraction, "Attraction updated successfully")
}

// Delete godoc
// @Summary Delete an attraction
// @Description Also removes its banner and general media from storage
// @Tags Attractions
// @Param id path string true "Attraction ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /attraction/{id} [delete]
func (a *AttractionController) Delete(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	if err := a.attractionService.Delete(c.Request.Context(), actorFrom(c), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Attraction deleted successfully")
}
