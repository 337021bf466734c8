package controllers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"travelling/internal/services"
	"travelling/pkg/utils"
)

const mediaCacheControl = "max-age=60d"

type MediaController struct {
	mediaService services.MediaServiceInterface
}

func NewMediaController(mediaService services.MediaServiceInterface) *MediaController {
	return &MediaController{mediaService: mediaService}
}

// Upload godoc
// @Summary Upload media files
// @Description Stores every part named "files". One file answers a single object, several answer a list.
// @Tags Media
// @Accept multipart/form-data
// @Produce json
// @Param files formData file true "Files to upload"
// @Success 201 {object} utils.APIResponse{data=response_models.MediaResponse}
// @Failure 400 {object} utils.APIResponse
// @Failure 503 {object} utils.APIResponse
// @Router /media [post]
func (m *MediaController) Upload(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid multipart form")
		return
	}
	headers := form.File["files"]
	if len(headers) == 0 {
		headers = form.File["files[]"]
	}
	if len(headers) == 0 {
		utils.RespondError(c, http.StatusBadRequest, "No files uploaded")
		return
	}

	files := make([]services.UploadFile, 0, len(headers))
	for _, h := range headers {
		header := h
		files = append(files, services.UploadFile{
			Name:        header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Open: func() (io.ReadCloser, error) {
				return header.Open()
			},
		})
	}

	uploaded, err := m.mediaService.Upload(c.Request.Context(), files)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	if len(uploaded) == 1 {
		utils.RespondCreated(c, uploaded[0], "File uploaded successfully")
		return
	}
	utils.RespondCreated(c, uploaded, "Files uploaded successfully")
}

// SignedURL godoc
// @Summary Signed URL of a media
// @Tags Media
// @Produce json
// @Param mediaId path string true "Media ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /media/{mediaId} [get]
func (m *MediaController) SignedURL(c *gin.Context) {
	url, err := m.mediaService.SignedURL(c.Request.Context(), c.Param("mediaId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"url": url}, "Media URL generated successfully")
}

// Download godoc
// @Summary Download a media
// @Description Streams the stored bytes with their content type
// @Tags Media
// @Produce octet-stream
// @Param mediaId path string true "Media ID"
// @Success 200 {file} binary
// @Failure 404 {object} utils.APIResponse
// @Router /media/download/{mediaId} [get]
func (m *MediaController) Download(c *gin.Context) {
	obj, err := m.mediaService.Download(c.Request.Context(), c.Param("mediaId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	defer obj.Body.Close()

	contentType := obj.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.DataFromReader(http.StatusOK, obj.Size, contentType, obj.Body, map[string]string{
		"Cache-Control": mediaCacheControl,
	})
}

// Delete godoc
// @Summary Delete a media
// @Tags Media
// @Param mediaId path string true "Media ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /media/{mediaId} [delete]
func (m *MediaController) Delete(c *gin.Context) {
	if err := m.mediaService.Delete(c.Request.Context(), c.Param("mediaId")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Media deleted successfully")
}
