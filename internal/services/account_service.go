package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"travelling/internal/models/db_models"
	"travelling/internal/models/request_models"
	"travelling/internal/models/response_models"
	"travelling/internal/repositories"
	"travelling/pkg/utils"
)

type AccountServiceInterface interface {
	Login(ctx context.Context, request request_models.LoginRequest) (string, error)
	Me(ctx context.Context, userID uuid.UUID) (*response_models.UserResponse, error)
	CreateAdmin(ctx context.Context, request request_models.CreateUserRequest) (*response_models.UserResponse, error)
	FindAllUsers(ctx context.Context) ([]response_models.UserResponse, error)
	FindUserByID(ctx context.Context, id uuid.UUID) (*response_models.UserResponse, error)
	FindUserByEmail(ctx context.Context, email string) (*response_models.UserResponse, error)
}

type AccountService struct {
	userRepo repositories.UserRepository
	logger   *zap.Logger
}

func NewAccountService(userRepo repositories.UserRepository, logger *zap.Logger) AccountServiceInterface {
	return &AccountService{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (string, error) {
	startTime := time.Now()

	user, err := a.userRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if user == nil {
		return "", utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(user.PasswordHash, request.Password); err != nil {
		return "", utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(user.ID, user.Email, user.Name, string(user.Role))
	if err != nil {
		a.logger.Error("token generation failed", zap.Error(err))
		return "", err
	}

	a.logger.Debug("login", zap.String("user_id", user.ID.String()), zap.Duration("took", time.Since(startTime)))
	return token, nil
}

func (a *AccountService) Me(ctx context.Context, userID uuid.UUID) (*response_models.UserResponse, error) {
	return a.FindUserByID(ctx, userID)
}

func (a *AccountService) CreateAdmin(ctx context.Context, request request_models.CreateUserRequest) (*response_models.UserResponse, error) {
	user, err := newUser(ctx, a.userRepo, request, db_models.RoleAdmin)
	if err != nil {
		return nil, err
	}
	if err := a.userRepo.Create(ctx, user); err != nil {
		return nil, translateCreateError(err, utils.ErrUserAlreadyExists)
	}
	resp := response_models.NewUserResponse(*user)
	return &resp, nil
}

func (a *AccountService) FindAllUsers(ctx context.Context) ([]response_models.UserResponse, error) {
	users, err := a.userRepo.FindAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	out := make([]response_models.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, response_models.NewUserResponse(u))
	}
	return out, nil
}

func (a *AccountService) FindUserByID(ctx context.Context, id uuid.UUID) (*response_models.UserResponse, error) {
	user, err := a.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}
	resp := response_models.NewUserResponse(*user)
	return &resp, nil
}

func (a *AccountService) FindUserByEmail(ctx context.Context, email string) (*response_models.UserResponse, error) {
	user, err := a.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}
	resp := response_models.NewUserResponse(*user)
	return &resp, nil
}

// newUser checks email and phone are free and builds a user with a fresh id
// and hashed password.
func newUser(ctx context.Context, users repositories.UserRepository, request request_models.CreateUserRequest, role db_models.UserRole) (*db_models.User, error) {
	existing, err := users.FindByEmailOrPhone(ctx, request.Email, request.Phone)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrUserAlreadyExists
	}

	hashed, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	return &db_models.User{
		BaseModel:    db_models.BaseModel{ID: uuid.New()},
		Name:         request.Name,
		Email:        request.Email,
		Phone:        request.Phone,
		PasswordHash: hashed,
		Role:         role,
	}, nil
}

// applyUserUpdate copies the set fields onto user, refusing an email or
// phone owned by somebody else.
func applyUserUpdate(ctx context.Context, users repositories.UserRepository, user *db_models.User, request request_models.UpdateUserRequest) error {
	if user == nil {
		return utils.ErrUserNotFound
	}
	email, phone := user.Email, user.Phone
	if request.Email != nil {
		email = *request.Email
	}
	if request.Phone != nil {
		phone = *request.Phone
	}
	if email != user.Email || phone != user.Phone {
		other, err := users.FindByEmailOrPhone(ctx, email, phone)
		if err != nil {
			return utils.ErrDatabaseError
		}
		if other != nil && other.ID != user.ID {
			return utils.ErrUserAlreadyExists
		}
	}

	if request.Name != nil {
		user.Name = *request.Name
	}
	user.Email = email
	user.Phone = phone
	if request.Password != nil {
		hashed, err := utils.HashPassword(*request.Password)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = hashed
	}
	return nil
}

func translateCreateError(err error, conflict error) error {
	if repositories.IsUniqueViolation(err) {
		return conflict
	}
	return utils.ErrDatabaseError
}
