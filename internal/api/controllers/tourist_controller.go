package controllers

import (
	"github.com/gin-gonic/gin"

	"travelling/internal/models/request_models"
	"travelling/internal/services"
	"travelling/pkg/utils"
)

type TouristController struct {
	touristService services.TouristServiceInterface
}

func NewTouristController(touristService services.TouristServiceInterface) *TouristController {
	return &TouristController{touristService: touristService}
}

// Create godoc
// @Summary Register a tourist
// @Description Create the user, the tourist profile and its favourite categories
// @Tags Tourists
// @Accept json
// @Produce json
// @Param request body request_models.CreateTouristRequest true "Tourist payload"
// @Success 201 {object} utils.APIResponse{data=response_models.TouristResponse}
// @Failure 404 {object} utils.APIResponse "Unknown favourite category"
// @Failure 409 {object} utils.APIResponse
// @Router /tourist [post]
func (t *TouristController) Create(c *gin.Context) {
	var req request_models.CreateTouristRequest
	if !bindJSON(c, &req) {
		return
	}

	tourist, err := t.touristService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, tourist, "Tourist created successfully")
}

func (t *TouristController) GetAll(c *gin.Context) {
	tourists, err := t.touristService.FindAll(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, tourists, "Tourists fetched successfully")
}

func (t *TouristController) GetByID(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	tourist, err := t.touristService.FindByID(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, tourist, "Tourist fetched successfully")
}

// Update godoc
// @Summary Update a tourist
// @Description Favourite categories are replaced when the list is sent
// @Tags Tourists
// @Accept json
// @Produce json
// @Param id path string true "Tourist ID"
// @Param request body request_models.UpdateTouristRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /tourist/{id} [put]
func (t *TouristController) Update(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req request_models.UpdateTouristRequest
	if !bindJSON(c, &req) {
		return
	}

	tourist, err := t.touristService.Update(c.Request.Context(), actorFrom(c), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, tourist, "Tourist updated successfully")
}

func (t *TouristController) Delete(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	if err := t.touristService.Delete(c.Request.Context(), actorFrom(c), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Tourist deleted successfully")
}
