package response_models

import "travelling/internal/models/db_models"

type CategoryResponse struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

func NewCategoryResponses(categories []db_models.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, CategoryResponse{ID: c.ID.String(), Title: c.Title})
	}
	return out
}
