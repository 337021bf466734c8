package controllers

import (
	"github.com/gin-gonic/gin"

	"travelling/internal/models/request_models"
	"travelling/internal/services"
	"travelling/pkg/filters"
	"travelling/pkg/utils"
)

type EstablishmentController struct {
	establishmentService services.EstablishmentServiceInterface
}

func NewEstablishmentController(establishmentService services.EstablishmentServiceInterface) *EstablishmentController {
	return &EstablishmentController{establishmentService: establishmentService}
}

// Create godoc
// @Summary Create an establishment for a business
// @Tags Establishments
// @Accept json
// @Produce json
// @Param businessId path string true "Business ID"
// @Param request body request_models.CreateEstablishmentRequest true "Establishment payload"
// @Success 201 {object} utils.APIResponse{data=response_models.EstablishmentResponse}
// @Security BearerAuth
// @Router /establishment/{businessId} [post]
func (e *EstablishmentController) Create(c *gin.Context) {
	businessID, ok := uuidParam(c, "businessId")
	if !ok {
		return
	}
	var req request_models.CreateEstablishmentRequest
	if !bindJSON(c, &req) {
		return
	}

	establishment, err := e.establishmentService.Create(c.Request.Context(), actorFrom(c), businessID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, establishment, "Establishment created successfully")
}

// GetAll godoc
// @Summary List establishments
// @Tags Establishments
// @Produce json
// @Param name query string false "Name contains"
// @Param minPrice query number false "Minimum of the lowest price"
// @Param maxPrice query number false "Maximum of the highest price"
// @Param openHours query string false "Opens at or after"
// @Param closeHours query string false "Closes at or before"
// @Param openDays query string false "Comma separated days, any match"
// @Param averageRating query number false "Minimum average rating"
// @Param location query string false "Location contains"
// @Param categories query string false "Comma separated category ids or titles"
// @Param business query string false "Business name contains"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /establishment [get]
func (e *EstablishmentController) GetAll(c *gin.Context) {
	establishments, err := e.establishmentService.FindAll(c.Request.Context(), filters.Params(c.Request.URL.Query()))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, establishments, "Establishments fetched successfully")
}

func (e *EstablishmentController) GetByID(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	establishment, err := e.establishmentService.FindByID(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, establishment, "Establishment fetched successfully")
}

func (e *EstablishmentController) GetByBusiness(c *gin.Context) {
	businessID, ok := uuidParam(c, "businessId")
	if !ok {
		return
	}

	establishments, err := e.establishmentService.FindByBusiness(c.Request.Context(), businessID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, establishments, "Establishments fetched successfully")
}

// Update godoc
// @Summary Update an establishment
// @Tags Establishments
// @Accept json
// @Produce json
// @Param id path string true "Establishment ID"
// @Param request body request_models.UpdateEstablishmentRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse "maxPrice below minPrice"
// @Security BearerAuth
// @Router /establishment/{id} [put]
func (e *EstablishmentController) Update(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req request_models.UpdateEstablishmentRequest
	if !bindJSON(c, &req) {
		return
	}

	establishment, err := e.establishmentService.Update(c.Request.Context(), actorFrom(c), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, establishment, "Establishment updated successfully")
}

// Delete godoc
// @Summary Delete an establishment
// @Description Also removes its banner, general media and menu media from storage
// @Tags Establishments
// @Param id path string true "Establishment ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /establishment/{id} [delete]
func (e *EstablishmentController) Delete(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	if err := e.establishmentService.Delete(c.Request.Context(), actorFrom(c), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Establishment deleted successfully")
}
