package controllers

import (
	"github.com/gin-gonic/gin"

	"travelling/internal/models/db_models"
	"travelling/internal/models/request_models"
	"travelling/internal/services"
	"travelling/pkg/utils"
)

type ContractController struct {
	contractService services.ContractServiceInterface
}

func NewContractController(contractService services.ContractServiceInterface) *ContractController {
	return &ContractController{contractService: contractService}
}

// Create godoc
// @Summary Book an attraction
// @Description Creates a PENDING contract between a tourist and the agency offering the attraction
// @Tags Contracts
// @Produce json
// @Param attractionId path string true "Attraction ID"
// @Param agencyId path string true "Agency ID"
// @Param touristId path string true "Tourist ID"
// @Success 201 {object} utils.APIResponse{data=response_models.ContractResponse}
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /contract/{attractionId}/{agencyId}/{touristId} [post]
func (h *ContractController) Create(c *gin.Context) {
	attractionID, ok := uuidParam(c, "attractionId")
	if !ok {
		return
	}
	agencyID, ok := uuidParam(c, "agencyId")
	if !ok {
		return
	}
	touristID, ok := uuidParam(c, "touristId")
	if !ok {
		return
	}

	contract, err := h.contractService.Create(c.Request.Context(), actorFrom(c), attractionID, agencyID, touristID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, contract, "Contract created successfully")
}

// GetAll godoc
// @Summary List contracts
// @Description Includes contracts flagged as deleted
// @Tags Contracts
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /contract [get]
func (h *ContractController) GetAll(c *gin.Context) {
	contracts, err := h.contractService.FindAll(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, contracts, "Contracts fetched successfully")
}

func (h *ContractController) GetByID(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	contract, err := h.contractService.FindByID(c.Request.Context(), actorFrom(c), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, contract, "Contract fetched successfully")
}

// GetByTourist godoc
// @Summary Contracts of a tourist
// @Description Each attraction carries the tourist's own rating when one exists
// @Tags Contracts
// @Produce json
// @Param touristId path string true "Tourist ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /contract/contractsByTourist/{touristId} [get]
func (h *ContractController) GetByTourist(c *gin.Context) {
	touristID, ok := uuidParam(c, "touristId")
	if !ok {
		return
	}

	contracts, err := h.contractService.FindByTourist(c.Request.Context(), actorFrom(c), touristID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, contracts, "Contracts fetched successfully")
}

func (h *ContractController) GetByAgency(c *gin.Context) {
	agencyID, ok := uuidParam(c, "agencyId")
	if !ok {
		return
	}

	contracts, err := h.contractService.FindByAgency(c.Request.Context(), actorFrom(c), agencyID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, contracts, "Contracts fetched successfully")
}

// UpdateStatus godoc
// @Summary Change a contract status
// @Tags Contracts
// @Accept json
// @Produce json
// @Param id path string true "Contract ID"
// @Param request body request_models.UpdateContractRequest true "New status"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse "Only the owning agency"
// @Security BearerAuth
// @Router /contract/{id} [patch]
func (h *ContractController) UpdateStatus(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req request_models.UpdateContractRequest
	if !bindJSON(c, &req) {
		return
	}

	contract, err := h.contractService.UpdateStatus(c.Request.Context(), actorFrom(c), id, db_models.ContractStatus(req.Status))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, contract, "Contract updated successfully")
}

// Remove godoc
// @Summary Flag a contract as deleted
// @Tags Contracts
// @Param id path string true "Contract ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /contract/{id} [delete]
func (h *ContractController) Remove(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.contractService.Remove(c.Request.Context(), actorFrom(c), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Contract removed successfully")
}

// ForceRemove godoc
// @Summary Delete a contract row
// @Tags Contracts
// @Param id path string true "Contract ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /contract/forceRemove/{id} [delete]
func (h *ContractController) ForceRemove(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.contractService.ForceRemove(c.Request.Context(), actorFrom(c), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Contract deleted successfully")
}
