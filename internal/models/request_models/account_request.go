package request_models

// CreateUserRequest is the body for admins, agencies and businesses.
type CreateUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone" binding:"required,min=8"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type UpdateUserRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=1"`
	Phone    *string `json:"phone" binding:"omitempty,min=8"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password" binding:"omitempty,min=6"`
}

type CreateTouristRequest struct {
	CreateUserRequest
	Lastname           string   `json:"lastname" binding:"required"`
	Age                int      `json:"age" binding:"required,gte=0,lte=150"`
	FavoriteCategories []string `json:"favoriteCategories" binding:"omitempty,dive,uuid"`
}

type UpdateTouristRequest struct {
	UpdateUserRequest
	Lastname           *string  `json:"lastname" binding:"omitempty,min=1"`
	Age                *int     `json:"age" binding:"omitempty,gte=0,lte=150"`
	FavoriteCategories []string `json:"favoriteCategories" binding:"omitempty,dive,uuid"`
}
