package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"travelling/internal/models/db_models"
	"travelling/pkg/filters"
)

func newTestDB(t *testing.T) *gorm.DB {
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
	return db
}

type fixture struct {
	agency     db_models.Agency
	business   db_models.Business
	tourist    db_models.Tourist
	hiking     db_models.Category
	food       db_models.Category
	lagoon     db_models.Attraction
	canyon     db_models.Attraction
	restaurant db_models.Establishment
}

func seed(t *testing.T, db *gorm.DB) fixture {
	t.Helper()
	ctx := context.Background()
	users := NewUserRepository(db)

	var f fixture
	agencyUser := db_models.User{Name: "Blue Tours", Email: "blue@tours.com", Phone: "1", Role: db_models.RoleAgency, Agency: &db_models.Agency{}}
	require.NoError(t, users.Create(ctx, &agencyUser))
	f.agency = *agencyUser.Agency

	businessUser := db_models.User{Name: "Tasty Inc", Email: "tasty@inc.com", Phone: "2", Role: db_models.RoleBusiness, Business: &db_models.Business{}}
	require.NoError(t, users.Create(ctx, &businessUser))
	f.business = *businessUser.Business

	touristUser := db_models.User{Name: "Ana", Email: "ana@mail.com", Phone: "3", Role: db_models.RoleTourist, Tourist: &db_models.Tourist{Lastname: "Silva", Age: 30}}
	require.NoError(t, users.Create(ctx, &touristUser))
	f.tourist = *touristUser.Tourist

	categories := NewCategoryRepository(db)
	f.hiking = db_models.Category{Title: "hiking"}
	f.food = db_models.Category{Title: "food"}
	require.NoError(t, categories.Create(ctx, &f.hiking))
	require.NoError(t, categories.Create(ctx, &f.food))

	attractions := NewAttractionRepository(db)
	f.lagoon = db_models.Attraction{
		Name: "Blue Lagoon", Location: "Natal", Pricing: 40, AverageRating: 5,
		Date: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), AgencyID: f.agency.ID,
		WhatToTake: pq.StringArray{"towel"}, Categories: []db_models.Category{f.hiking},
	}
	f.canyon = db_models.Attraction{
		Name: "Red Canyon", Location: "Recife", Pricing: 150, AverageRating: 5,
		Date: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), AgencyID: f.agency.ID,
	}
	require.NoError(t, attractions.Create(ctx, &f.lagoon))
	require.NoError(t, attractions.Create(ctx, &f.canyon))

	f.restaurant = db_models.Establishment{
		Name: "Casa", Location: "Natal", MinPrice: 10, MaxPrice: 50, AverageRating: 5,
		BusinessID: f.business.ID, Categories: []db_models.Category{f.food},
	}
	require.NoError(t, NewEstablishmentRepository(db).Create(ctx, &f.restaurant))
	return f
}

func TestUserRepository_CreateWithExtension(t *testing.T) {
	db := newTestDB(t)
	f := seed(t, db)
	users := NewUserRepository(db)
	ctx := context.Background()

	got, err := users.FindByEmail(ctx, "ana@mail.com")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.NotNil(t, got.Tourist)
	assert.Equal(t, f.tourist.ID, got.Tourist.ID)
	assert.Nil(t, got.Agency)

	dup, err := users.FindByEmailOrPhone(ctx, "other@mail.com", "3")
	require.NoError(t, err)
	assert.NotNil(t, dup)

	missing, err := users.FindByEmail(ctx, "nobody@mail.com")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestAttractionRepository_FindAllFilters(t *testing.T) {
	db := newTestDB(t)
	f := seed(t, db)
	repo := NewAttractionRepository(db)
	ctx := context.Background()

	all, err := repo.FindAll(ctx, filters.Where{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	names := func(where filters.Where) []string {
		t.Helper()
		rows, err := repo.FindAll(ctx, where)
		require.NoError(t, err)
		out := make([]string, 0, len(rows))
		for _, r := range rows {
			out = append(out, r.Name)
		}
		return out
	}

	assert.Equal(t, []string{"Blue Lagoon"}, names(filters.Where{
		"name": {Ops: map[filters.Operation]any{filters.OpContains: "LAGOON"}, Insensitive: true},
	}))
	assert.Equal(t, []string{"Red Canyon"}, names(filters.Where{
		"pricing": {Ops: map[filters.Operation]any{filters.OpGte: 100.0, filters.OpLte: 200.0}},
	}))
	assert.Equal(t, []string{"Blue Lagoon"}, names(filters.Where{
		"categories": {Ops: map[filters.Operation]any{filters.OpSome: []string{"hiking"}}},
	}))
	assert.Equal(t, []string{"Blue Lagoon"}, names(filters.Where{
		"categories": {Ops: map[filters.Operation]any{filters.OpSome: []string{f.hiking.ID.String()}}},
	}))
	assert.Len(t, names(filters.Where{
		"agency": {Ops: map[filters.Operation]any{}, Relation: filters.Relation{"name": "blue"}},
	}), 2)
	assert.Empty(t, names(filters.Where{
		"agency": {Ops: map[filters.Operation]any{}, Relation: filters.Relation{"name": "nobody"}},
	}))
}

func TestAttractionRepository_UpdateAndDelete(t *testing.T) {
	db := newTestDB(t)
	f := seed(t, db)
	repo := NewAttractionRepository(db)
	ctx := context.Background()

	f.lagoon.Pricing = 55
	require.NoError(t, repo.Update(ctx, &f.lagoon, []db_models.Category{f.food}))

	got, err := repo.FindByID(ctx, f.lagoon.ID)
	require.NoError(t, err)
	assert.Equal(t, 55.0, got.Pricing)
	require.Len(t, got.Categories, 1)
	assert.Equal(t, "food", got.Categories[0].Title)
	require.NotNil(t, got.Agency)
	assert.Equal(t, "Blue Tours", got.Agency.User.Name)

	require.NoError(t, repo.Delete(ctx, f.lagoon.ID))
	got, err = repo.FindByID(ctx, f.lagoon.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestEstablishmentRepository_FindAllFilters(t *testing.T) {
	db := newTestDB(t)
	seed(t, db)
	repo := NewEstablishmentRepository(db)
	ctx := context.Background()

	rows, err := repo.FindAll(ctx, filters.Where{
		"location":   {Ops: map[filters.Operation]any{filters.OpContains: "nat"}, Insensitive: true},
		"categories": {Ops: map[filters.Operation]any{filters.OpSome: []string{"food", "bar"}}},
	})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Casa", rows[0].Name)

	rows, err = repo.FindAll(ctx, filters.Where{
		"minPrice": {Ops: map[filters.Operation]any{filters.OpGte: 20.0}},
	})
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestRatingRepository(t *testing.T) {
	db := newTestDB(t)
	f := seed(t, db)
	ctx := context.Background()

	repo, err := NewRatingRepository(db, db_models.RatingTargetAttraction)
	require.NoError(t, err)

	exists, err := repo.TargetExists(ctx, f.lagoon.ID)
	require.NoError(t, err)
	assert.True(t, exists)
	exists, err = repo.TargetExists(ctx, uuid.New())
	require.NoError(t, err)
	assert.False(t, exists)

	err = repo.Transaction(ctx, func(tx RatingRepository) error {
		r := &db_models.Rating{Value: 3, TouristID: f.tourist.ID, TargetID: f.lagoon.ID}
		if err := tx.Create(ctx, r); err != nil {
			return err
		}
		return tx.SetAverage(ctx, f.lagoon.ID, 3)
	})
	require.NoError(t, err)

	got, err := repo.FindByTouristAndTarget(ctx, f.tourist.ID, f.lagoon.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 3.0, got.Value)
	assert.Equal(t, f.lagoon.ID, got.TargetID)

	dup := &db_models.Rating{Value: 4, TouristID: f.tourist.ID, TargetID: f.lagoon.ID}
	assert.Error(t, repo.Create(ctx, dup))

	attraction, err := NewAttractionRepository(db).FindByID(ctx, f.lagoon.ID)
	require.NoError(t, err)
	assert.Equal(t, 3.0, attraction.AverageRating)

	require.NoError(t, repo.UpdateValue(ctx, got.ID, 1))
	byTarget, err := repo.FindByTarget(ctx, f.lagoon.ID)
	require.NoError(t, err)
	require.Len(t, byTarget, 1)
	assert.Equal(t, 1.0, byTarget[0].Value)

	require.NoError(t, repo.Delete(ctx, got.ID))
	byTarget, err = repo.FindByTarget(ctx, f.lagoon.ID)
	require.NoError(t, err)
	assert.Empty(t, byTarget)

	_, err = NewRatingRepository(db, "hotel")
	assert.Error(t, err)
}

func TestTravellingRepository_ReplaceLocals(t *testing.T) {
	db := newTestDB(t)
	f := seed(t, db)
	repo := NewTravellingRepository(db)
	ctx := context.Background()

	travelling := &db_models.Travelling{
		Title:     "Northeast",
		TouristID: f.tourist.ID,
		Locals: []db_models.LocalReference{
			{Position: 0, LocalType: db_models.LocalAttraction, LocalID: f.lagoon.ID},
			{Position: 1, LocalType: db_models.LocalEstablishment, LocalID: f.restaurant.ID},
		},
	}
	require.NoError(t, repo.Create(ctx, travelling))

	got, err := repo.FindByID(ctx, travelling.ID)
	require.NoError(t, err)
	require.Len(t, got.Locals, 2)
	assert.Equal(t, 0, got.Locals[0].Position)
	assert.Equal(t, db_models.LocalEstablishment, got.Locals[1].LocalType)

	got.Title = "Northeast trip"
	require.NoError(t, repo.Update(ctx, got, []db_models.LocalReference{
		{Position: 0, LocalType: db_models.LocalEstablishment, LocalID: f.restaurant.ID},
		{Position: 1, LocalType: db_models.LocalAttraction, LocalID: f.canyon.ID},
		{Position: 2, LocalType: db_models.LocalAttraction, LocalID: f.lagoon.ID},
	}))

	got, err = repo.FindByID(ctx, travelling.ID)
	require.NoError(t, err)
	assert.Equal(t, "Northeast trip", got.Title)
	require.Len(t, got.Locals, 3)
	for i, l := range got.Locals {
		assert.Equal(t, i, l.Position)
	}
	assert.Equal(t, f.canyon.ID, got.Locals[1].LocalID)

	byTourist, err := repo.FindByTourist(ctx, f.tourist.ID)
	require.NoError(t, err)
	assert.Len(t, byTourist, 1)

	require.NoError(t, repo.Delete(ctx, travelling.ID))
	got, err = repo.FindByID(ctx, travelling.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestContractRepository(t *testing.T) {
	db := newTestDB(t)
	f := seed(t, db)
	repo := NewContractRepository(db)
	ctx := context.Background()

	contract := &db_models.Contract{
		Status:       db_models.ContractPending,
		TouristID:    f.tourist.ID,
		AgencyID:     f.agency.ID,
		AttractionID: f.lagoon.ID,
	}
	require.NoError(t, repo.Create(ctx, contract))

	existing, err := repo.FindExisting(ctx, f.lagoon.ID, f.agency.ID, f.tourist.ID)
	require.NoError(t, err)
	require.NotNil(t, existing)

	require.NoError(t, repo.UpdateStatus(ctx, contract.ID, db_models.ContractConfirmed))
	require.NoError(t, repo.MarkDeleted(ctx, contract.ID))

	got, err := repo.FindByID(ctx, contract.ID)
	require.NoError(t, err)
	assert.Equal(t, db_models.ContractConfirmed, got.Status)
	assert.True(t, got.Deleted)
	require.NotNil(t, got.Attraction)
	assert.Equal(t, "Blue Lagoon", got.Attraction.Name)

	byAgency, err := repo.FindByAgency(ctx, f.agency.ID)
	require.NoError(t, err)
	assert.Len(t, byAgency, 1)

	require.NoError(t, repo.ForceDelete(ctx, contract.ID))
	got, err = repo.FindByID(ctx, contract.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Unscoped().Model(model).Count(&n).Error)
	return n
}

func TestAgencyRepository_DeleteWithAttractions(t *testing.T) {
	db := newTestDB(t)
	f := seed(t, db)
	ctx := context.Background()

	require.NoError(t, NewContractRepository(db).Create(ctx, &db_models.Contract{
		Status: db_models.ContractPending, TouristID: f.tourist.ID, AgencyID: f.agency.ID, AttractionID: f.lagoon.ID,
	}))
	ratings, err := NewRatingRepository(db, db_models.RatingTargetAttraction)
	require.NoError(t, err)
	require.NoError(t, ratings.Create(ctx, &db_models.Rating{Value: 4, TouristID: f.tourist.ID, TargetID: f.canyon.ID}))
	travelling := &db_models.Travelling{
		Title: "Coast", TouristID: f.tourist.ID,
		Locals: []db_models.LocalReference{
			{Position: 0, LocalType: db_models.LocalAttraction, LocalID: f.lagoon.ID},
			{Position: 1, LocalType: db_models.LocalEstablishment, LocalID: f.restaurant.ID},
		},
	}
	require.NoError(t, NewTravellingRepository(db).Create(ctx, travelling))

	require.NoError(t, NewAgencyRepository(db).Delete(ctx, &f.agency))

	agency, err := NewAgencyRepository(db).FindByID(ctx, f.agency.ID)
	require.NoError(t, err)
	assert.Nil(t, agency)
	user, err := NewUserRepository(db).FindByID(ctx, f.agency.UserID)
	require.NoError(t, err)
	assert.Nil(t, user)

	assert.Zero(t, countRows(t, db, &db_models.Attraction{}))
	assert.Zero(t, countRows(t, db, &db_models.Contract{}))
	assert.Zero(t, countRows(t, db, &db_models.RatingToAttraction{}))

	got, err := NewTravellingRepository(db).FindByID(ctx, travelling.ID)
	require.NoError(t, err)
	require.Len(t, got.Locals, 1)
	assert.Equal(t, f.restaurant.ID, got.Locals[0].LocalID)
}

func TestBusinessRepository_DeleteWithEstablishments(t *testing.T) {
	db := newTestDB(t)
	f := seed(t, db)
	ctx := context.Background()

	ratings, err := NewRatingRepository(db, db_models.RatingTargetEstablishment)
	require.NoError(t, err)
	require.NoError(t, ratings.Create(ctx, &db_models.Rating{Value: 2, TouristID: f.tourist.ID, TargetID: f.restaurant.ID}))

	require.NoError(t, NewBusinessRepository(db).Delete(ctx, &f.business))

	business, err := NewBusinessRepository(db).FindByID(ctx, f.business.ID)
	require.NoError(t, err)
	assert.Nil(t, business)
	assert.Zero(t, countRows(t, db, &db_models.Establishment{}))
	assert.Zero(t, countRows(t, db, &db_models.RatingToEstablishment{}))
	assert.Equal(t, int64(2), countRows(t, db, &db_models.Attraction{}))
}

func TestTouristRepository_DeleteWithTravellingsAndRatings(t *testing.T) {
	db := newTestDB(t)
	f := seed(t, db)
	ctx := context.Background()

	other := db_models.User{Name: "Bia", Email: "bia@mail.com", Phone: "4", Role: db_models.RoleTourist, Tourist: &db_models.Tourist{Lastname: "Costa"}}
	require.NoError(t, NewUserRepository(db).Create(ctx, &other))

	ratings, err := NewRatingRepository(db, db_models.RatingTargetAttraction)
	require.NoError(t, err)
	require.NoError(t, ratings.Create(ctx, &db_models.Rating{Value: 1, TouristID: f.tourist.ID, TargetID: f.lagoon.ID}))
	require.NoError(t, ratings.Create(ctx, &db_models.Rating{Value: 4, TouristID: other.Tourist.ID, TargetID: f.lagoon.ID}))
	require.NoError(t, ratings.SetAverage(ctx, f.lagoon.ID, 2.5))

	require.NoError(t, NewContractRepository(db).Create(ctx, &db_models.Contract{
		Status: db_models.ContractPending, TouristID: f.tourist.ID, AgencyID: f.agency.ID, AttractionID: f.lagoon.ID,
	}))
	require.NoError(t, NewTravellingRepository(db).Create(ctx, &db_models.Travelling{
		Title: "Coast", TouristID: f.tourist.ID,
		Locals: []db_models.LocalReference{{Position: 0, LocalType: db_models.LocalAttraction, LocalID: f.lagoon.ID}},
	}))
	tourists := NewTouristRepository(db)
	require.NoError(t, tourists.Update(ctx, &f.tourist, []db_models.Category{f.hiking}))

	require.NoError(t, tourists.Delete(ctx, &f.tourist))

	gone, err := tourists.FindByID(ctx, f.tourist.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
	assert.Zero(t, countRows(t, db, &db_models.Travelling{}))
	assert.Zero(t, countRows(t, db, &db_models.LocalReference{}))
	assert.Zero(t, countRows(t, db, &db_models.Contract{}))

	left, err := ratings.FindByTarget(ctx, f.lagoon.ID)
	require.NoError(t, err)
	require.Len(t, left, 1)
	assert.Equal(t, other.Tourist.ID, left[0].TouristID)

	lagoon, err := NewAttractionRepository(db).FindByID(ctx, f.lagoon.ID)
	require.NoError(t, err)
	assert.Equal(t, 4.0, lagoon.AverageRating)
}
