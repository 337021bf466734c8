package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"travelling/internal/models/db_models"
	"travelling/internal/services"
	"travelling/pkg/middleware"
	"travelling/pkg/utils"
)

// uuidParam reads a path parameter as a uuid and answers 400 when it is not one.
func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

func actorFrom(c *gin.Context) services.Actor {
	actor := services.Actor{Role: db_models.UserRole(c.GetString(middleware.ContextRole))}
	if v, ok := c.Get(middleware.ContextUserID); ok {
		if id, ok := v.(uuid.UUID); ok {
			actor.UserID = id
		}
	}
	return actor
}

func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return false
	}
	return true
}
