package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"travelling/internal/models/request_models"
	"travelling/internal/models/response_models"
	"travelling/internal/services"
	"travelling/pkg/utils"
)

type AccountController struct {
	accountService services.AccountServiceInterface
}

func NewAccountController(accountService services.AccountServiceInterface) *AccountController {
	return &AccountController{
		accountService: accountService,
	}
}

// Login godoc
// @Summary Login to an account
// @Description Authenticate a user by email and password and return an access token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse{data=response_models.LoginResponse}
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /login [post]
func (a *AccountController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	token, err := a.accountService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.LoginResponse{AccessToken: token}, "Login successful")
}

// Me godoc
// @Summary Current user
// @Description Return the authenticated user with its role profile
// @Tags Auth
// @Produce json
// @Success 200 {object} utils.APIResponse{data=response_models.UserResponse}
// @Failure 401 {object} utils.APIResponse
// @Security BearerAuth
// @Router /me [get]
func (a *AccountController) Me(c *gin.Context) {
	actor := actorFrom(c)
	user, err := a.accountService.Me(c.Request.Context(), actor.UserID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, user, "User fetched successfully")
}

// CreateAdmin godoc
// @Summary Register an admin
// @Tags Users
// @Accept json
// @Produce json
// @Param request body request_models.CreateUserRequest true "Admin payload"
// @Success 201 {object} utils.APIResponse{data=response_models.UserResponse}
// @Failure 409 {object} utils.APIResponse
// @Router /user/admin [post]
func (a *AccountController) CreateAdmin(c *gin.Context) {
	var req request_models.CreateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := a.accountService.CreateAdmin(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, user, "Admin created successfully")
}

// GetAllUsers godoc
// @Summary Get all users
// @Tags Users
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /user [get]
func (a *AccountController) GetAllUsers(c *gin.Context) {
	users, err := a.accountService.FindAllUsers(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, users, "Users fetched successfully")
}

// GetUserByID godoc
// @Summary Get a user by id
// @Tags Users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /user/userById/{id} [get]
func (a *AccountController) GetUserByID(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	user, err := a.accountService.FindUserByID(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, user, "User fetched successfully")
}

// GetUserByEmail godoc
// @Summary Get a user by email
// @Tags Users
// @Produce json
// @Param email path string true "User email"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /user/{email} [get]
func (a *AccountController) GetUserByEmail(c *gin.Context) {
	email := c.Param("email")
	if email == "" {
		utils.RespondError(c, http.StatusBadRequest, "Email is required")
		return
	}

	user, err := a.accountService.FindUserByEmail(c.Request.Context(), email)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, user, "User fetched successfully")
}
