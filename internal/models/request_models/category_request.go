package request_models

type CategoryRequest struct {
	Title string `json:"title" binding:"required,min=1,max=100"`
}
