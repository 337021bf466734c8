package controllers

import (
	"github.com/gin-gonic/gin"

	"travelling/internal/models/request_models"
	"travelling/internal/services"
	"travelling/pkg/utils"
)

type CategoryController struct {
	categoryService services.CategoryServiceInterface
}

func NewCategoryController(categoryService services.CategoryServiceInterface) *CategoryController {
	return &CategoryController{categoryService: categoryService}
}

// Create godoc
// @Summary Create a category
// @Tags Categories
// @Accept json
// @Produce json
// @Param request body request_models.CategoryRequest true "Category payload"
// @Success 201 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /category [post]
func (h *CategoryController) Create(c *gin.Context) {
	var req request_models.CategoryRequest
	if !bindJSON(c, &req) {
		return
	}

	category, err := h.categoryService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, category, "Category created successfully")
}

// GetAll godoc
// @Summary List categories
// @Tags Categories
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /category [get]
func (h *CategoryController) GetAll(c *gin.Context) {
	categories, err := h.categoryService.FindAll(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, categories, "Categories fetched successfully")
}

// GetByID godoc
// @Summary Get a category
// @Tags Categories
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /category/{id} [get]
func (h *CategoryController) GetByID(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	category, err := h.categoryService.FindByID(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, category, "Category fetched successfully")
}

// Update godoc
// @Summary Rename a category
// @Tags Categories
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Param request body request_models.CategoryRequest true "Category payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /category/{id} [put]
func (h *CategoryController) Update(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req request_models.CategoryRequest
	if !bindJSON(c, &req) {
		return
	}

	category, err := h.categoryService.Update(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, category, "Category updated successfully")
}

// Delete godoc
// @Summary Delete a category
// @Tags Categories
// @Param id path string true "Category ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /category/{id} [delete]
func (h *CategoryController) Delete(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.categoryService.Delete(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Category deleted successfully")
}
