package controllers

import (
	"github.com/gin-gonic/gin"

	"travelling/internal/models/request_models"
	"travelling/internal/services"
	"travelling/pkg/utils"
)

type AgencyController struct {
	agencyService services.AgencyServiceInterface
}

func NewAgencyController(agencyService services.AgencyServiceInterface) *AgencyController {
	return &AgencyController{agencyService: agencyService}
}

// Create godoc
// @Summary Register an agency
// @Description Create the user and its agency profile in one transaction
// @Tags Agencies
// @Accept json
// @Produce json
// @Param request body request_models.CreateUserRequest true "Agency payload"
// @Success 201 {object} utils.APIResponse{data=response_models.AgencyResponse}
// @Failure 409 {object} utils.APIResponse
// @Router /agency [post]
func (h *AgencyController) Create(c *gin.Context) {
	var req request_models.CreateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	created, err := h.agencyService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, created, "Agency created successfully")
}

// GetAll godoc
// @Summary List agencies
// @Tags Agencies
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /agency [get]
func (h *AgencyController) GetAll(c *gin.Context) {
	list, err := h.agencyService.FindAll(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, list, "Agencies fetched successfully")
}

// GetByID godoc
// @Summary Get an agency by id
// @Tags Agencies
// @Produce json
// @Param id path string true "Agency ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /agency/{id} [get]
func (h *AgencyController) GetByID(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	found, err := h.agencyService.FindByID(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, found, "Agency fetched successfully")
}

// Update godoc
// @Summary Update an agency
// @Tags Agencies
// @Accept json
// @Produce json
// @Param id path string true "Agency ID"
// @Param request body request_models.UpdateUserRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /agency/{id} [put]
func (h *AgencyController) Update(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req request_models.UpdateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	updated, err := h.agencyService.Update(c.Request.Context(), actorFrom(c), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, updated, "Agency updated successfully")
}

// Delete godoc
// @Summary Delete an agency and its user
// @Tags Agencies
// @Produce json
// @Param id path string true "Agency ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /agency/{id} [delete]
func (h *AgencyController) Delete(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.agencyService.Delete(c.Request.Context(), actorFrom(c), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Agency deleted successfully")
}
