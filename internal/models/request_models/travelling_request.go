package request_models

type LocalRequest struct {
	LocalID  string `json:"localId" binding:"required,uuid"`
	Position int    `json:"position" binding:"gte=0"`
	Type     string `json:"type" binding:"required,oneof=attraction establishment"`
}

type CreateTravellingRequest struct {
	Title  string         `json:"title" binding:"required"`
	Locals []LocalRequest `json:"locals" binding:"dive"`
}

type UpdateTravellingRequest struct {
	Title  *string        `json:"title" binding:"omitempty,min=1"`
	Locals []LocalRequest `json:"locals" binding:"omitempty,dive"`
}
