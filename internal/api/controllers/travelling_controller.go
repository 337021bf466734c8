package controllers

import (
	"github.com/gin-gonic/gin"

	"travelling/internal/models/request_models"
	"travelling/internal/services"
	"travelling/pkg/utils"
)

type TravellingController struct {
	travellingService services.TravellingServiceInterface
}

func NewTravellingController(travellingService services.TravellingServiceInterface) *TravellingController {
	return &TravellingController{travellingService: travellingService}
}

// Create godoc
// @Summary Plan a travelling
// @Description Locals are stops in order; each position must equal its index in the list
// @Tags Travellings
// @Accept json
// @Produce json
// @Param touristId path string true "Tourist ID"
// @Param request body request_models.CreateTravellingRequest true "Travelling payload"
// @Success 201 {object} utils.APIResponse{data=response_models.TravellingResponse}
// @Failure 400 {object} utils.APIResponse "Invalid local position or unknown local"
// @Failure 409 {object} utils.APIResponse "Title already used"
// @Security BearerAuth
// @Router /travelling/{touristId} [post]
func (t *TravellingController) Create(c *gin.Context) {
	touristID, ok := uuidParam(c, "touristId")
	if !ok {
		return
	}
	var req request_models.CreateTravellingRequest
	if !bindJSON(c, &req) {
		return
	}

	travelling, err := t.travellingService.Create(c.Request.Context(), actorFrom(c), touristID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, travelling, "Travelling created successfully")
}

func (t *TravellingController) GetAll(c *gin.Context) {
	travellings, err := t.travellingService.FindAll(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, travellings, "Travellings fetched successfully")
}

func (t *TravellingController) GetByID(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	travelling, err := t.travellingService.FindByID(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, travelling, "Travelling fetched successfully")
}

func (t *TravellingController) GetByTourist(c *gin.Context) {
	touristID, ok := uuidParam(c, "touristId")
	if !ok {
		return
	}

	travellings, err := t.travellingService.FindByTourist(c.Request.Context(), touristID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, travellings, "Travellings fetched successfully")
}

// Update godoc
// @Summary Update a travelling
// @Description A non-empty locals list replaces every stop
// @Tags Travellings
// @Accept json
// @Produce json
// @Param id path string true "Travelling ID"
// @Param request body request_models.UpdateTravellingRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /travelling/{id} [put]
func (t *TravellingController) Update(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req request_models.UpdateTravellingRequest
	if !bindJSON(c, &req) {
		return
	}

	travelling, err := t.travellingService.Update(c.Request.Context(), actorFrom(c), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, travelling, "Travelling updated successfully")
}

func (t *TravellingController) Delete(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	if err := t.travellingService.Delete(c.Request.Context(), actorFrom(c), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Travelling deleted successfully")
}
