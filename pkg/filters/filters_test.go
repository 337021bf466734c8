package filters

import (
	"fmt"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var listingConfig = QueryConfig{
	"name":     {Field: "name", Operation: OpContains, Insensitive: true},
	"minPrice": {Field: "pricing", Operation: OpGte, Transform: ParseFloat},
	"maxPrice": {Field: "pricing", Operation: OpLte, Transform: ParseFloat},
	"since":    {Field: "date", Operation: OpGte, Transform: ParseTime},
	"tags":     {Field: "tag", Operation: OpIn, Transform: SplitList},
	"owner":    {Field: "owner", Transform: RelationOf("ownerName")},
}

func TestBuild_NoFilters(t *testing.T) {
	count, where, err := Build(map[string]string{}, listingConfig)

	require.NoError(t, err)
	assert.Equal(t, 0, count)
	assert.Equal(t, Where{}, where)
}

func TestBuild_IgnoresUnknownAndEmptyKeys(t *testing.T) {
	count, where, err := Build(map[string]string{
		"unknown": "x",
		"name":    "",
	}, listingConfig)

	require.NoError(t, err)
	assert.Equal(t, 0, count)
	assert.Empty(t, where)
}

func TestBuild_MergesBoundsOnSameField(t *testing.T) {
	count, where, err := Build(map[string]string{
		"minPrice": "10",
		"maxPrice": "99.5",
	}, listingConfig)

	require.NoError(t, err)
	assert.Equal(t, 1, count)
	require.Contains(t, where, "pricing")
	assert.Equal(t, map[Operation]any{OpGte: 10.0, OpLte: 99.5}, where["pricing"].Ops)
	assert.False(t, where["pricing"].Insensitive)
}

func TestBuild_InsensitiveAndRelation(t *testing.T) {
	count, where, err := Build(map[string]string{
		"name":  "Falls",
		"owner": "tree trip",
		"tags":  "a, b,,c",
	}, listingConfig)

	require.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.True(t, where["name"].Insensitive)
	assert.Equal(t, "Falls", where["name"].Ops[OpContains])
	assert.Empty(t, where["owner"].Ops)
	assert.Equal(t, Relation{"ownerName": "tree trip"}, where["owner"].Relation)
	assert.Equal(t, []string{"a", "b", "c"}, where["tag"].Ops[OpIn])
}

func TestBuild_TransformError(t *testing.T) {
	_, _, err := Build(map[string]string{"minPrice": "cheap"}, listingConfig)

	assert.ErrorIs(t, err, ErrInvalidFilter)
}

func TestBuild_RelationTransformMustReturnRelation(t *testing.T) {
	cfg := QueryConfig{"bad": {Field: "bad", Transform: ParseFloat}}

	_, _, err := Build(map[string]string{"bad": "1"}, cfg)

	assert.Error(t, err)
}

func TestParseTime(t *testing.T) {
	v, err := ParseTime("2023-09-25T09:00:00-03:00")
	require.NoError(t, err)
	assert.Equal(t, 12, v.(time.Time).UTC().Hour())

	v, err = ParseTime("2023-09-25")
	require.NoError(t, err)
	assert.Equal(t, time.September, v.(time.Time).Month())

	_, err = ParseTime("yesterday")
	assert.Error(t, err)
}

func TestParams_FirstValueWins(t *testing.T) {
	p := Params(url.Values{"name": {" beach ", "ignored"}, "empty": {}})

	assert.Equal(t, map[string]string{"name": "beach"}, p)
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `50\%\_off\\`, EscapeLike(`50%_off\`))
}

type listing struct {
	ID      uint
	Name    string
	Pricing float64
	Tag     string
}

func openListings(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&listing{}))
	require.NoError(t, db.Create(&[]listing{
		{Name: "Blue Lagoon", Pricing: 5, Tag: "water"},
		{Name: "blue mountain", Pricing: 50, Tag: "hike"},
		{Name: "Red Canyon", Pricing: 120, Tag: "hike"},
		{Name: "100% Fun_Park", Pricing: 80, Tag: "fun"},
	}).Error)
	return db
}

var listingColumns = Columns{
	"name":    Scalar("name"),
	"pricing": Scalar("pricing"),
	"tag":     Scalar("tag"),
}

func query(t *testing.T, db *gorm.DB, params map[string]string) []string {
	t.Helper()
	_, where, err := Build(params, listingConfig)
	require.NoError(t, err)
	q, err := where.Apply(db.Model(&listing{}), listingColumns)
	require.NoError(t, err)

	var names []string
	require.NoError(t, q.Order("id").Pluck("name", &names).Error)
	return names
}

func TestApply_BoundsAreConjunction(t *testing.T) {
	db := openListings(t)

	names := query(t, db, map[string]string{"minPrice": "10", "maxPrice": "100"})

	assert.Equal(t, []string{"blue mountain", "100% Fun_Park"}, names)
}

func TestApply_ContainsInsensitive(t *testing.T) {
	db := openListings(t)

	assert.Equal(t, []string{"Blue Lagoon", "blue mountain"}, query(t, db, map[string]string{"name": "BLUE"}))
	assert.Equal(t, []string{"100% Fun_Park"}, query(t, db, map[string]string{"name": "0% fun_"}))
	assert.Empty(t, query(t, db, map[string]string{"name": "Lagoon_"}))
}

func TestApply_InList(t *testing.T) {
	db := openListings(t)

	names := query(t, db, map[string]string{"tags": "fun,water"})

	assert.Equal(t, []string{"Blue Lagoon", "100% Fun_Park"}, names)
}

func TestApply_UnknownField(t *testing.T) {
	db := openListings(t)
	_, where, err := Build(map[string]string{"owner": "x"}, listingConfig)
	require.NoError(t, err)

	_, err = where.Apply(db.Model(&listing{}), listingColumns)

	assert.ErrorIs(t, err, ErrUnknownField)
}
