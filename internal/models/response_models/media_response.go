package response_models

type MediaResponse struct {
	URL     string `json:"url"`
	MediaID string `json:"mediaId,omitempty"`
}
