package services

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"travelling/internal/infra"
	"travelling/internal/models/db_models"
	"travelling/internal/models/request_models"
	"travelling/internal/repositories"
	mem "travelling/pkg/memcache"
	"travelling/pkg/utils"
)

type testEnv struct {
	db      *gorm.DB
	storage *infra.MemoryStorage

	attractions    repositories.AttractionRepository
	establishments repositories.EstablishmentRepository
	tourists       repositories.TouristRepository

	media         MediaServiceInterface
	agency        AgencyServiceInterface
	business      BusinessServiceInterface
	tourist       TouristServiceInterface
	attraction    AttractionServiceInterface
	establishment EstablishmentServiceInterface
	attrRatings   *AttractionRatingService
	contracts     ContractServiceInterface
	travellings   TravellingServiceInterface

	agencyActor   Actor
	touristActor  Actor
	businessActor Actor
	agencyID      uuid.UUID
	businessID    uuid.UUID
	touristID     uuid.UUID
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared&_foreign_keys=on"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(db_models.AllModels()...))

	log := zap.NewNop()
	env := &testEnv{db: db, storage: infra.NewMemoryStorage()}
	users := repositories.NewUserRepository(db)
	agencies := repositories.NewAgencyRepository(db)
	businesses := repositories.NewBusinessRepository(db)
	categories := repositories.NewCategoryRepository(db)
	env.tourists = repositories.NewTouristRepository(db)
	env.attractions = repositories.NewAttractionRepository(db)
	env.establishments = repositories.NewEstablishmentRepository(db)
	attrRatings, err := repositories.NewRatingRepository(db, db_models.RatingTargetAttraction)
	require.NoError(t, err)

	cfg := &infra.Config{Storage: infra.StorageConfig{SignedURLTTL: time.Hour}}
	env.media = NewMediaService(env.storage, mem.NewSignedURLs(), cfg, log)
	env.agency = NewAgencyService(agencies, users)
	env.business = NewBusinessService(businesses, users)
	env.tourist = NewTouristService(env.tourists, users, categories)
	env.attraction = NewAttractionService(env.attractions, agencies, categories, env.media, log)
	env.establishment = NewEstablishmentService(env.establishments, businesses, categories, env.media, log)
	env.attrRatings = NewAttractionRatingService(attrRatings, env.tourists, log)
	env.contracts = NewContractService(repositories.NewContractRepository(db), env.attractions, agencies, env.tourists, attrRatings, log)
	env.travellings = NewTravellingService(repositories.NewTravellingRepository(db), env.tourists, repositories.NewLocalRepository(db), env.media, log)

	ctx := context.Background()
	agency, err := env.agency.Create(ctx, request_models.CreateUserRequest{Name: "Blue Tours", Phone: "11111111", Email: "blue@tours.com", Password: "secret1"})
	require.NoError(t, err)
	env.agencyID = uuid.MustParse(agency.ID)
	env.agencyActor = Actor{UserID: env.agencyID, Role: db_models.RoleAgency}

	business, err := env.business.Create(ctx, request_models.CreateUserRequest{Name: "Tasty Inc", Phone: "22222222", Email: "tasty@inc.com", Password: "secret1"})
	require.NoError(t, err)
	env.businessID = uuid.MustParse(business.ID)
	env.businessActor = Actor{UserID: env.businessID, Role: db_models.RoleBusiness}

	tourist, err := env.tourist.Create(ctx, request_models.CreateTouristRequest{
		CreateUserRequest: request_models.CreateUserRequest{Name: "Ana", Phone: "33333333", Email: "ana@mail.com", Password: "secret1"},
		Lastname:          "Silva",
		Age:               30,
	})
	require.NoError(t, err)
	env.touristID = uuid.MustParse(tourist.ID)
	env.touristActor = Actor{UserID: env.touristID, Role: db_models.RoleTourist}
	return env
}

func (e *testEnv) createAttraction(t *testing.T, name, location string) uuid.UUID {
	t.Helper()
	resp, err := e.attraction.Create(context.Background(), e.agencyActor, e.agencyID, request_models.CreateAttractionRequest{
		Name:     name,
		Location: location,
		Date:     time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		Pricing:  40,
	})
	require.NoError(t, err)
	return uuid.MustParse(resp.ID)
}

func (e *testEnv) createEstablishment(t *testing.T, name string) uuid.UUID {
	t.Helper()
	resp, err := e.establishment.Create(context.Background(), e.businessActor, e.businessID, request_models.CreateEstablishmentRequest{
		Name:       name,
		Location:   "Natal",
		OpenHours:  time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC),
		CloseHours: time.Date(2024, 1, 1, 22, 0, 0, 0, time.UTC),
		MinPrice:   10,
		MaxPrice:   50,
	})
	require.NoError(t, err)
	return uuid.MustParse(resp.ID)
}

func TestAverageHelpers(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	ratings := []db_models.Rating{{TouristID: a, Value: 4}, {TouristID: b, Value: 2}}

	assert.InDelta(t, 3.0, averageAfterCreate(ratings[:1], 2), 1e-9)
	assert.InDelta(t, 5.0, averageAfterCreate(nil, 5), 1e-9)
	assert.InDelta(t, 1.5, averageAfterEdit(ratings, a, 1), 1e-9)
	assert.InDelta(t, 2.0, averageAfterDelete(ratings[1:]), 1e-9)
	assert.InDelta(t, utils.DefaultAverageRating, averageAfterDelete(nil), 1e-9)
}

func TestRatingService_KeepsAverageInStep(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	attractionID := env.createAttraction(t, "Blue Lagoon", "Natal")

	average := func() float64 {
		t.Helper()
		a, err := env.attractions.FindByID(ctx, attractionID)
		require.NoError(t, err)
		require.NotNil(t, a)
		return a.AverageRating
	}
	assert.InDelta(t, 5.0, average(), 1e-9)

	rating, err := env.attrRatings.Create(ctx, env.touristActor, env.touristID, attractionID, 4)
	require.NoError(t, err)
	assert.Equal(t, "attraction", rating.Target)
	assert.InDelta(t, 4.0, average(), 1e-9)

	_, err = env.attrRatings.Create(ctx, env.touristActor, env.touristID, attractionID, 3)
	assert.ErrorIs(t, err, utils.ErrRatingAlreadyExists)

	_, err = env.attrRatings.Update(ctx, env.touristActor, env.touristID, attractionID, 2)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, average(), 1e-9)

	require.NoError(t, env.attrRatings.Delete(ctx, env.touristActor, env.touristID, attractionID))
	assert.InDelta(t, 5.0, average(), 1e-9)

	err = env.attrRatings.Delete(ctx, env.touristActor, env.touristID, attractionID)
	assert.ErrorIs(t, err, utils.ErrRatingNotFound)
}

func TestRatingService_TwoTouristsCreateThenEdit(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	attractionID := env.createAttraction(t, "Blue Lagoon", "Natal")

	second, err := env.tourist.Create(ctx, request_models.CreateTouristRequest{
		CreateUserRequest: request_models.CreateUserRequest{Name: "Bia", Phone: "44444444", Email: "bia@mail.com", Password: "secret1"},
		Lastname:          "Costa",
	})
	require.NoError(t, err)
	secondID := uuid.MustParse(second.ID)
	secondActor := Actor{UserID: secondID, Role: db_models.RoleTourist}

	average := func() float64 {
		t.Helper()
		a, err := env.attractions.FindByID(ctx, attractionID)
		require.NoError(t, err)
		return a.AverageRating
	}

	_, err = env.attrRatings.Create(ctx, env.touristActor, env.touristID, attractionID, 4)
	require.NoError(t, err)
	_, err = env.attrRatings.Create(ctx, secondActor, secondID, attractionID, 2)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, average(), 1e-9)

	_, err = env.attrRatings.Update(ctx, secondActor, secondID, attractionID, 5)
	require.NoError(t, err)
	assert.InDelta(t, 4.5, average(), 1e-9)

	ratings, err := env.attrRatings.FindByTarget(ctx, attractionID)
	require.NoError(t, err)
	assert.Len(t, ratings, 2)

	require.NoError(t, env.tourist.Delete(ctx, secondActor, secondID))
	assert.InDelta(t, 4.0, average(), 1e-9)
}

func TestProfileDelete_WithOwnedRows(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	attractionID := env.createAttraction(t, "Blue Lagoon", "Natal")
	establishmentID := env.createEstablishment(t, "Casa")

	_, err := env.attrRatings.Create(ctx, env.touristActor, env.touristID, attractionID, 3)
	require.NoError(t, err)
	_, err = env.contracts.Create(ctx, env.touristActor, attractionID, env.agencyID, env.touristID)
	require.NoError(t, err)
	_, err = env.travellings.Create(ctx, env.touristActor, env.touristID, request_models.CreateTravellingRequest{
		Title: "Coast",
		Locals: []request_models.LocalRequest{
			{Position: 0, Type: "attraction", LocalID: attractionID.String()},
			{Position: 1, Type: "establishment", LocalID: establishmentID.String()},
		},
	})
	require.NoError(t, err)

	require.NoError(t, env.agency.Delete(ctx, env.agencyActor, env.agencyID))
	gone, err := env.attractions.FindByID(ctx, attractionID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	require.NoError(t, env.business.Delete(ctx, env.businessActor, env.businessID))
	require.NoError(t, env.tourist.Delete(ctx, env.touristActor, env.touristID))

	_, err = env.travellings.FindByTourist(ctx, env.touristID)
	assert.ErrorIs(t, err, utils.ErrTouristNotFound)
}

func TestRatingService_RejectsBadInput(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	attractionID := env.createAttraction(t, "Blue Lagoon", "Natal")

	_, err := env.attrRatings.Create(ctx, env.touristActor, env.touristID, attractionID, 6)
	assert.ErrorIs(t, err, utils.ErrInvalidRating)

	_, err = env.attrRatings.Create(ctx, env.agencyActor, env.touristID, attractionID, 3)
	assert.ErrorIs(t, err, utils.ErrForbidden)

	_, err = env.attrRatings.Create(ctx, env.touristActor, env.touristID, uuid.New(), 3)
	assert.ErrorIs(t, err, utils.ErrAttractionNotFound)

	_, err = env.attrRatings.FindByTarget(ctx, uuid.New())
	assert.ErrorIs(t, err, utils.ErrAttractionNotFound)
}

func TestAttractionService_CreateAndFilter(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	all, err := env.attraction.FindAll(ctx, map[string]string{})
	require.NoError(t, err)
	assert.Empty(t, all)

	env.createAttraction(t, "Blue Lagoon", "Natal")
	env.createAttraction(t, "Red Canyon", "Recife")

	_, err = env.attraction.Create(ctx, env.agencyActor, env.agencyID, request_models.CreateAttractionRequest{
		Name: "Another", Location: "Natal", Date: time.Now(),
	})
	assert.ErrorIs(t, err, utils.ErrAttractionAlreadyExists)

	_, err = env.attraction.Create(ctx, env.touristActor, env.agencyID, request_models.CreateAttractionRequest{
		Name: "Dunes", Location: "Genipabu", Date: time.Now(),
	})
	assert.ErrorIs(t, err, utils.ErrForbidden)

	got, err := env.attraction.FindAll(ctx, map[string]string{"name": "lagoon"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Blue Lagoon", got[0].Name)
	assert.InDelta(t, 5.0, got[0].AverageRating, 1e-9)

	_, err = env.attraction.FindAll(ctx, map[string]string{"name": "volcano"})
	assert.ErrorIs(t, err, utils.ErrNoFilterMatches)

	got, err = env.attraction.FindAll(ctx, map[string]string{"interprise": "blue"})
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestTravellingService_Locals(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	attractionID := env.createAttraction(t, "Blue Lagoon", "Natal")
	establishmentID := env.createEstablishment(t, "Casa")

	request := request_models.CreateTravellingRequest{
		Title: "Weekend",
		Locals: []request_models.LocalRequest{
			{LocalID: establishmentID.String(), Position: 0, Type: "establishment"},
			{LocalID: attractionID.String(), Position: 1, Type: "attraction"},
		},
	}
	created, err := env.travellings.Create(ctx, env.touristActor, env.touristID, request)
	require.NoError(t, err)
	require.Len(t, created.Locals, 2)
	require.NotNil(t, created.Locals[0].Establishment)
	assert.Nil(t, created.Locals[0].Attraction)
	assert.Equal(t, "Casa", created.Locals[0].Establishment.Name)
	require.NotNil(t, created.Locals[1].Attraction)

	_, err = env.travellings.Create(ctx, env.touristActor, env.touristID, request)
	assert.ErrorIs(t, err, utils.ErrTravellingAlreadyExists)

	_, err = env.travellings.Create(ctx, env.touristActor, env.touristID, request_models.CreateTravellingRequest{
		Title:  "Gap",
		Locals: []request_models.LocalRequest{{LocalID: attractionID.String(), Position: 1, Type: "attraction"}},
	})
	assert.ErrorIs(t, err, utils.ErrInvalidLocalPosition)

	_, err = env.travellings.Create(ctx, env.touristActor, env.touristID, request_models.CreateTravellingRequest{
		Title:  "Ghost",
		Locals: []request_models.LocalRequest{{LocalID: uuid.NewString(), Position: 0, Type: "attraction"}},
	})
	assert.ErrorIs(t, err, utils.ErrLocalNotFound)

	_, err = env.travellings.Create(ctx, env.agencyActor, env.touristID, request_models.CreateTravellingRequest{Title: "Nope"})
	assert.ErrorIs(t, err, utils.ErrForbidden)

	id := uuid.MustParse(created.ID)
	updated, err := env.travellings.Update(ctx, env.touristActor, id, request_models.UpdateTravellingRequest{
		Locals: []request_models.LocalRequest{{LocalID: attractionID.String(), Position: 0, Type: "attraction"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "Weekend", updated.Title)
	require.Len(t, updated.Locals, 1)
	assert.Equal(t, "attraction", updated.Locals[0].Type)

	found, err := env.travellings.FindByTourist(ctx, env.touristID)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Len(t, found[0].Locals, 1)

	assert.ErrorIs(t, env.travellings.Delete(ctx, env.agencyActor, id), utils.ErrForbidden)
	require.NoError(t, env.travellings.Delete(ctx, env.touristActor, id))
	_, err = env.travellings.FindByID(ctx, id)
	assert.ErrorIs(t, err, utils.ErrTravellingNotFound)
}

func TestContractService_Lifecycle(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	attractionID := env.createAttraction(t, "Blue Lagoon", "Natal")

	contract, err := env.contracts.Create(ctx, env.touristActor, attractionID, env.agencyID, env.touristID)
	require.NoError(t, err)
	assert.Equal(t, "PENDING", contract.Status)

	_, err = env.contracts.Create(ctx, env.touristActor, attractionID, env.agencyID, env.touristID)
	assert.ErrorIs(t, err, utils.ErrContractAlreadyExists)

	_, err = env.attrRatings.Create(ctx, env.touristActor, env.touristID, attractionID, 3)
	require.NoError(t, err)

	mine, err := env.contracts.FindByTourist(ctx, env.touristActor, env.touristID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	require.NotNil(t, mine[0].Attraction)
	require.Len(t, mine[0].Attraction.Ratings, 1)
	assert.InDelta(t, 3.0, mine[0].Attraction.Ratings[0].Value, 1e-9)

	id := uuid.MustParse(contract.ID)
	_, err = env.contracts.UpdateStatus(ctx, env.touristActor, id, db_models.ContractConfirmed)
	assert.ErrorIs(t, err, utils.ErrForbidden)
	_, err = env.contracts.UpdateStatus(ctx, env.agencyActor, id, "LOST")
	assert.ErrorIs(t, err, utils.ErrInvalidStatus)
	updated, err := env.contracts.UpdateStatus(ctx, env.agencyActor, id, db_models.ContractConfirmed)
	require.NoError(t, err)
	assert.Equal(t, "CONFIRMED", updated.Status)

	_, err = env.contracts.FindByAgency(ctx, env.touristActor, env.agencyID)
	assert.ErrorIs(t, err, utils.ErrForbidden)

	require.NoError(t, env.contracts.Remove(ctx, env.touristActor, id))
	removed, err := env.contracts.FindByID(ctx, env.agencyActor, id)
	require.NoError(t, err)
	assert.True(t, removed.Deleted)

	require.NoError(t, env.contracts.ForceRemove(ctx, env.agencyActor, id))
	_, err = env.contracts.FindByID(ctx, env.agencyActor, id)
	assert.ErrorIs(t, err, utils.ErrContractNotFound)
}

func TestMediaID(t *testing.T) {
	cases := map[string]string{
		"photo.png1700000000000": "photo.png1700000000000",
		"media/photo.png17":      "photo.png17",
		"https://cdn.example.com/bucket/media/photo.png17?X-Amz-Expires=60": "photo.png17",
		"  ":  "",
		"a#b": "a",
	}
	for in, want := range cases {
		assert.Equal(t, want, MediaID(in), in)
	}
}

func TestMediaService_UploadSignDelete(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	uploaded, err := env.media.Upload(ctx, []UploadFile{{
		Name:        "photo.png",
		ContentType: "image/png",
		Open:        func() (io.ReadCloser, error) { return io.NopCloser(strings.NewReader("png")), nil },
	}})
	require.NoError(t, err)
	require.Len(t, uploaded, 1)
	assert.True(t, strings.HasPrefix(uploaded[0].MediaID, "photo.png"))
	assert.Contains(t, uploaded[0].URL, "media/"+uploaded[0].MediaID)

	url, err := env.media.SignedURL(ctx, uploaded[0].MediaID)
	require.NoError(t, err)
	assert.Equal(t, uploaded[0].URL, url)

	obj, err := env.media.Download(ctx, uploaded[0].MediaID)
	require.NoError(t, err)
	assert.Equal(t, "image/png", obj.ContentType)
	_ = obj.Body.Close()

	require.NoError(t, env.media.Delete(ctx, uploaded[0].MediaID))
	_, err = env.media.SignedURL(ctx, uploaded[0].MediaID)
	assert.ErrorIs(t, err, utils.ErrMediaNotFound)
	assert.Equal(t, "", env.media.ResolveURL(ctx, uploaded[0].MediaID))

	_, err = env.media.Upload(ctx, nil)
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestMediaService_SameNameSameInstant(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	fixed := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	env.media.(*MediaService).now = func() time.Time { return fixed }

	file := func(content string) UploadFile {
		return UploadFile{
			Name:        "photo.png",
			ContentType: "image/png",
			Open:        func() (io.ReadCloser, error) { return io.NopCloser(strings.NewReader(content)), nil },
		}
	}
	uploaded, err := env.media.Upload(ctx, []UploadFile{file("first"), file("second")})
	require.NoError(t, err)
	require.Len(t, uploaded, 2)
	assert.NotEqual(t, uploaded[0].MediaID, uploaded[1].MediaID)

	for i, want := range []string{"first", "second"} {
		obj, err := env.media.Download(ctx, uploaded[i].MediaID)
		require.NoError(t, err)
		body, err := io.ReadAll(obj.Body)
		_ = obj.Body.Close()
		require.NoError(t, err)
		assert.Equal(t, want, string(body))
	}
}
