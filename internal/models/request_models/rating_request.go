package request_models

type RatingRequest struct {
	Value *float64 `json:"value" binding:"required,gte=0,lte=5"`
}
