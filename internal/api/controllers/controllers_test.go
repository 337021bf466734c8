package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"travelling/internal/infra"
	"travelling/internal/models/db_models"
	"travelling/internal/models/request_models"
	"travelling/internal/models/response_models"
	"travelling/internal/services"
	"travelling/pkg/middleware"
	mem "travelling/pkg/memcache"
	"travelling/pkg/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeAttractionService struct {
	services.AttractionServiceInterface
	params map[string]string
	err    error
}

func (f *fakeAttractionService) FindAll(_ context.Context, params map[string]string) ([]response_models.AttractionResponse, error) {
	f.params = params
	if f.err != nil {
		return nil, f.err
	}
	return []response_models.AttractionResponse{{Name: "Blue Lagoon"}}, nil
}

type fakeContractService struct {
	services.ContractServiceInterface
	actor  services.Actor
	status db_models.ContractStatus
}

func (f *fakeContractService) UpdateStatus(_ context.Context, actor services.Actor, id uuid.UUID, status db_models.ContractStatus) (*response_models.ContractResponse, error) {
	f.actor = actor
	f.status = status
	if actor.Role != db_models.RoleAgency {
		return nil, utils.ErrForbidden
	}
	return &response_models.ContractResponse{ID: id.String(), Status: string(status)}, nil
}

type fakeTravellingService struct {
	services.TravellingServiceInterface
	err error
}

func (f *fakeTravellingService) Create(_ context.Context, _ services.Actor, touristID uuid.UUID, req request_models.CreateTravellingRequest) (*response_models.TravellingResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &response_models.TravellingResponse{Title: req.Title, TouristID: touristID.String()}, nil
}

func decode(t *testing.T, w *httptest.ResponseRecorder) utils.APIResponse {
	t.Helper()
	var resp utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

// withActor stands in for the JWT middleware.
func withActor(userID uuid.UUID, role db_models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextUserID, userID)
		c.Set(middleware.ContextRole, string(role))
		c.Next()
	}
}

func TestAttractionController_GetAllPassesFilters(t *testing.T) {
	svc := &fakeAttractionService{}
	r := gin.New()
	r.GET("/attraction", NewAttractionController(svc).GetAll)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/attraction?name=%20lagoon%20&minPrice=10&minPrice=99", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]string{"name": "lagoon", "minPrice": "10"}, svc.params)

	svc.err = utils.ErrNoFilterMatches
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/attraction?name=volcano", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "error", decode(t, w).Status)
}

func TestContractController_UpdateStatus(t *testing.T) {
	agencyUser := uuid.New()
	contractID := uuid.New()

	run := func(role db_models.UserRole, path, body string) *httptest.ResponseRecorder {
		svc := &fakeContractService{}
		r := gin.New()
		r.PATCH("/contract/:id", withActor(agencyUser, role), NewContractController(svc).UpdateStatus)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPatch, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		return w
	}

	w := run(db_models.RoleAgency, "/contract/"+contractID.String(), `{"status":"CONFIRMED"}`)
	require.Equal(t, http.StatusOK, w.Code)
	data, _ := json.Marshal(decode(t, w).Data)
	assert.Contains(t, string(data), "CONFIRMED")

	w = run(db_models.RoleTourist, "/contract/"+contractID.String(), `{"status":"CONFIRMED"}`)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = run(db_models.RoleAgency, "/contract/"+contractID.String(), `{"status":"LOST"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = run(db_models.RoleAgency, "/contract/not-a-uuid", `{"status":"CONFIRMED"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTravellingController_Create(t *testing.T) {
	touristID := uuid.New()
	svc := &fakeTravellingService{}
	r := gin.New()
	r.POST("/travelling/:touristId", withActor(touristID, db_models.RoleTourist), NewTravellingController(svc).Create)

	post := func(body string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/travelling/"+touristID.String(), bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		return w
	}

	w := post(`{"title":"Weekend","locals":[{"localId":"` + uuid.NewString() + `","position":0,"type":"attraction"}]}`)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = post(`{"title":"Weekend","locals":[{"localId":"` + uuid.NewString() + `","position":0,"type":"museum"}]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	svc.err = utils.ErrInvalidLocalPosition
	w = post(`{"title":"Weekend"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	svc.err = utils.ErrTravellingAlreadyExists
	w = post(`{"title":"Weekend"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func newMediaRouter() (*gin.Engine, *infra.MemoryStorage) {
	storage := infra.NewMemoryStorage()
	cfg := &infra.Config{Storage: infra.StorageConfig{SignedURLTTL: time.Hour}}
	controller := NewMediaController(services.NewMediaService(storage, mem.NewSignedURLs(), cfg, zap.NewNop()))

	r := gin.New()
	r.POST("/media", controller.Upload)
	r.GET("/media/:mediaId", controller.SignedURL)
	r.GET("/media/download/:mediaId", controller.Download)
	r.DELETE("/media/:mediaId", controller.Delete)
	return r, storage
}

func multipartBody(t *testing.T, names ...string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for _, name := range names {
		part, err := writer.CreateFormFile("files", name)
		require.NoError(t, err)
		_, err = part.Write([]byte("content of " + name))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestMediaController_UploadAndDownload(t *testing.T) {
	r, _ := newMediaRouter()

	body, contentType := multipartBody(t, "photo.png")
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/media", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	var single struct {
		Data response_models.MediaResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &single))
	require.NotEmpty(t, single.Data.MediaID)
	assert.NotEmpty(t, single.Data.URL)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/media/download/"+single.Data.MediaID, nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "max-age=60d", w.Header().Get("Cache-Control"))
	assert.Equal(t, "content of photo.png", w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/media/"+single.Data.MediaID, nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/media/"+single.Data.MediaID, nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/media/download/"+single.Data.MediaID, nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMediaController_UploadMany(t *testing.T) {
	r, _ := newMediaRouter()

	body, contentType := multipartBody(t, "a.jpg", "b.jpg")
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/media", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	var many struct {
		Data []response_models.MediaResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &many))
	assert.Len(t, many.Data, 2)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/media", bytes.NewBufferString("nope"))
	req.Header.Set("Content-Type", "text/plain")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
