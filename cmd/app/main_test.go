package main

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travelling/internal/api/controllers"
	"travelling/pkg/utils"
)

func testHandlers() Handlers {
	return Handlers{
		Account:             controllers.NewAccountController(nil),
		Agency:              controllers.NewAgencyController(nil),
		Business:            controllers.NewBusinessController(nil),
		Tourist:             controllers.NewTouristController(nil),
		Category:            controllers.NewCategoryController(nil),
		Attraction:          controllers.NewAttractionController(nil),
		Establishment:       controllers.NewEstablishmentController(nil),
		AttractionRating:    controllers.NewAttractionRatingController(nil),
		EstablishmentRating: controllers.NewEstablishmentRatingController(nil),
		Contract:            controllers.NewContractController(nil),
		Travelling:          controllers.NewTravellingController(nil),
		Media:               controllers.NewMediaController(nil),
	}
}

func TestRegisterRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	utils.ConfigureJWT("route-test-secret", time.Hour)

	r := gin.New()
	require.NotPanics(t, func() { RegisterRoutes(r, testHandlers()) })

	registered := make(map[string]bool)
	for _, route := range r.Routes() {
		registered[route.Method+" "+route.Path] = true
	}
	for _, want := range []string{
		"POST /login",
		"GET /me",
		"POST /user/admin",
		"GET /user/:email",
		"POST /contract/:attractionId/:agencyId/:touristId",
		"DELETE /contract/forceRemove/:id",
		"POST /ratingToAttraction/:touristId/:attractionId",
		"GET /ratingToEstablishment/byTarget/:establishmentId",
		"GET /travelling/travellingsByTourist/:touristId",
		"GET /media/download/:mediaId",
	} {
		assert.True(t, registered[want], want)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/contract", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token, err := utils.CreateToken(uuid.New(), "ana@mail.com", "Ana", "TOURIST")
	require.NoError(t, err)
	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/media/photo.png17", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/travelling/not-a-uuid", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
