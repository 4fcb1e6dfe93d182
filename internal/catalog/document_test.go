package catalog

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tripplanner/internal/planner"
)

func TestFileSource_Load(t *testing.T) {
	c, err := NewFileSource("testdata/places.json").Load(context.Background())
	require.NoError(t, err)

	cities := c.Cities()
	require.Len(t, cities, 2)
	assert.Equal(t, "Agra", cities[0].Name)
	assert.Equal(t, "goa", cities[1].Name)

	goa, ok := c.City("Goa")
	require.True(t, ok)
	assert.Equal(t, 1200.0, goa.AverageDailyCost)
	assert.Equal(t, []string{"Rent a scooter for the north beaches."}, goa.LocalTips)
	require.Len(t, goa.Places, 3)

	// unknown tags are dropped, and a place with none left is culture
	assert.Equal(t, []planner.Category{planner.CategoryNature}, goa.Places[0].Categories)
	assert.Equal(t, []planner.Category{planner.CategoryHistory, planner.CategoryCulture}, goa.Places[1].Categories)
	assert.Equal(t, []planner.Category{planner.CategoryCulture}, goa.Places[2].Categories)
	assert.Equal(t, []planner.TravelType{planner.TravelAny}, goa.Places[1].BestFor)
	assert.Equal(t, 3.0, goa.Places[0].DurationHours)

	agra, _ := c.City("agra")
	assert.Equal(t, []string{}, agra.GeneralTips)
}

func TestFileSource_MissingFile(t *testing.T) {
	_, err := NewFileSource("testdata/nope.json").Load(context.Background())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFileSource_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewFileSource("testdata/places.json").Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestParseDocument_SchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not an object", `[]`},
		{"missing places", `{"Goa": {"average_daily_cost": 100}}`},
		{"negative cost", `{"Goa": {"places": [{"name": "X", "categories": ["food"], "approx_cost": -5}]}}`},
		{"string cost", `{"Goa": {"places": [{"name": "X", "categories": ["food"], "approx_cost": "cheap"}]}}`},
		{"empty categories", `{"Goa": {"places": [{"name": "X", "categories": [], "approx_cost": 5}]}}`},
		{"empty name", `{"Goa": {"places": [{"name": "", "categories": ["food"], "approx_cost": 5}]}}`},
		{"malformed", `{"Goa": `},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDocument([]byte(tt.doc))
			assert.ErrorIs(t, err, ErrInvalidCatalog)
		})
	}
}

func TestWriteFile_RoundTripsThroughFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "places_data.json")
	require.NoError(t, WriteFile(path, sampleCities()))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "\n  \"Goa\": {")

	var generic map[string]any
	require.NoError(t, json.Unmarshal(raw, &generic))
	assert.Len(t, generic, 2)

	loaded, err := NewFileSource(path).Load(context.Background())
	require.NoError(t, err)
	original, err := NewCatalog(sampleCities())
	require.NoError(t, err)

	_, places, ok := loaded.CityPlaces("jaipur")
	require.True(t, ok)
	assert.Equal(t, []string{"Amber Fort", "Johari Bazaar"}, []string{places[0].Name, places[1].Name})
	assert.Equal(t, original.PlaceCount(), loaded.PlaceCount())
}

func TestNewDocument_SortsCaseInsensitively(t *testing.T) {
	doc := NewDocument([]City{{Name: "mumbai"}, {Name: "Agra"}, {Name: "Delhi"}})

	raw, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.Equal(t, 3, doc.Len())
	assert.Regexp(t, `^\{"Agra":.*"Delhi":.*"mumbai":`, string(raw))
}
