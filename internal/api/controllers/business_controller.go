package controllers

import (
	"github.com/gin-gonic/gin"

	"travelling/internal/models/request_models"
	"travelling/internal/services"
	"travelling/pkg/utils"
)

type BusinessController struct {
	businessService services.BusinessServiceInterface
}

func NewBusinessController(businessService services.BusinessServiceInterface) *BusinessController {
	return &BusinessController{businessService: businessService}
}

// Create godoc
// @Summary Register a business
// @Tags Businesses
// @Accept json
// @Produce json
// @Param request body request_models.CreateUserRequest true "Business payload"
// @Success 201 {object} utils.APIResponse{data=response_models.BusinessResponse}
// @Failure 409 {object} utils.APIResponse
// @Router /business [post]
func (h *BusinessController) Create(c *gin.Context) {
	var req request_models.CreateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	created, err := h.businessService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, created, "Business created successfully")
}

// GetAll godoc
// @Summary List businesses
// @Tags Businesses
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /business [get]
func (h *BusinessController) GetAll(c *gin.Context) {
	list, err := h.businessService.FindAll(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, list, "Businesses fetched successfully")
}

// GetByID godoc
// @Summary Get a business by id
// @Tags Businesses
// @Produce json
// @Param id path string true "Business ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /business/{id} [get]
func (h *BusinessController) GetByID(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	found, err := h.businessService.FindByID(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, found, "Business fetched successfully")
}

// Update godoc
// @Summary Update a business
// @Tags Businesses
// @Accept json
// @Produce json
// @Param id path string true "Business ID"
// @Param request body request_models.UpdateUserRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /business/{id} [put]
func (h *BusinessController) Update(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req request_models.UpdateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	updated, err := h.businessService.Update(c.Request.Context(), actorFrom(c), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, updated, "Business updated successfully")
}

// Delete godoc
// @Summary Delete a business and its user
// @Tags Businesses
// @Produce json
// @Param id path string true "Business ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /business/{id} [delete]
func (h *BusinessController) Delete(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.businessService.Delete(c.Request.Context(), actorFrom(c), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Business deleted successfully")
}
