package controllers

import (
	"github.com/gin-gonic/gin"

	"travelling/internal/models/request_models"
	"travelling/internal/services"
	"travelling/pkg/utils"
)

// RatingController serves one rating resource. The attraction and
// establishment routes get their own instance bound to the matching service.
type RatingController struct {
	ratingService services.RatingServiceInterface
	param         string
}

type AttractionRatingController struct{ *RatingController }

type EstablishmentRatingController struct{ *RatingController }

func NewAttractionRatingController(ratingService *services.AttractionRatingService) *AttractionRatingController {
	return &AttractionRatingController{&RatingController{ratingService: ratingService, param: "attractionId"}}
}

func NewEstablishmentRatingController(ratingService *services.EstablishmentRatingService) *EstablishmentRatingController {
	return &EstablishmentRatingController{&RatingController{ratingService: ratingService, param: "establishmentId"}}
}

// Param is the path parameter naming the rated entity.
func (r *RatingController) Param() string {
	return r.param
}

// Create godoc
// @Summary Rate an attraction or establishment
// @Description Recomputes the target's average rating in the same transaction
// @Tags Ratings
// @Accept json
// @Produce json
// @Param touristId path string true "Tourist ID"
// @Param targetId path string true "Attraction or establishment ID"
// @Param request body request_models.RatingRequest true "Rating value between 0 and 5"
// @Success 201 {object} utils.APIResponse{data=response_models.RatingResponse}
// @Failure 409 {object} utils.APIResponse "Already rated"
// @Security BearerAuth
// @Router /ratingToAttraction/{touristId}/{targetId} [post]
// @Router /ratingToEstablishment/{touristId}/{targetId} [post]
func (r *RatingController) Create(c *gin.Context) {
	touristID, ok := uuidParam(c, "touristId")
	if !ok {
		return
	}
	targetID, ok := uuidParam(c, r.param)
	if !ok {
		return
	}
	var req request_models.RatingRequest
	if !bindJSON(c, &req) {
		return
	}

	rating, err := r.ratingService.Create(c.Request.Context(), actorFrom(c), touristID, targetID, *req.Value)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, rating, "Rating created successfully")
}

func (r *RatingController) GetAll(c *gin.Context) {
	ratings, err := r.ratingService.FindAll(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, ratings, "Ratings fetched successfully")
}

func (r *RatingController) GetByID(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	rating, err := r.ratingService.FindByID(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, rating, "Rating fetched successfully")
}

func (r *RatingController) GetByTarget(c *gin.Context) {
	targetID, ok := uuidParam(c, r.param)
	if !ok {
		return
	}

	ratings, err := r.ratingService.FindByTarget(c.Request.Context(), targetID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, ratings, "Ratings fetched successfully")
}

// Update godoc
// @Summary Change a rating
// @Tags Ratings
// @Accept json
// @Produce json
// @Param touristId path string true "Tourist ID"
// @Param targetId path string true "Attraction or establishment ID"
// @Param request body request_models.RatingRequest true "New value"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /ratingToAttraction/{touristId}/{targetId} [put]
// @Router /ratingToEstablishment/{touristId}/{targetId} [put]
func (r *RatingController) Update(c *gin.Context) {
	touristID, ok := uuidParam(c, "touristId")
	if !ok {
		return
	}
	targetID, ok := uuidParam(c, r.param)
	if !ok {
		return
	}
	var req request_models.RatingRequest
	if !bindJSON(c, &req) {
		return
	}

	rating, err := r.ratingService.Update(c.Request.Context(), actorFrom(c), touristID, targetID, *req.Value)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, rating, "Rating updated successfully")
}

func (r *RatingController) Delete(c *gin.Context) {
	touristID, ok := uuidParam(c, "touristId")
	if !ok {
		return
	}
	targetID, ok := uuidParam(c, r.param)
	if !ok {
		return
	}

	if err := r.ratingService.Delete(c.Request.Context(), actorFrom(c), touristID, targetID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Rating deleted successfully")
}
