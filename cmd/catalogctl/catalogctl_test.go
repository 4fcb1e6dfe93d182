package main

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tripplanner/internal/catalog"
	"tripplanner/internal/models/response_models"
	"tripplanner/internal/planner"
	"tripplanner/pkg/utils"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestBuildThenPlan(t *testing.T) {
	output := filepath.Join(t.TempDir(), "places.json")

	out, err := run(t, "", "build",
		"--input", "../../internal/catalogbuild/testdata/attractions.csv",
		"--costs", "../../internal/catalogbuild/testdata/travel_cost.csv",
		"--output", output)
	require.NoError(t, err)
	assert.Contains(t, out, "wrote 6 places across 3 cities")

	c, err := catalog.NewFileSource(output).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 6, c.PlaceCount())

	out, err = run(t, "", "plan", "--catalog", output, "--city", "delhi", "--days", "1", "--budget", "1000")
	require.NoError(t, err)

	var resp response_models.ItineraryResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "Delhi", resp.City)
	assert.Equal(t, c.Version(), resp.CatalogVersion)
}

func TestPlan_Errors(t *testing.T) {
	_, err := run(t, "", "plan", "--catalog", "../../data/places_data.json", "--city", "Atlantis")
	assert.ErrorIs(t, err, planner.ErrNoDataForCity)

	_, err = run(t, "", "plan", "--catalog", "../../data/places_data.json", "--city", "Goa", "--type", "family")
	assert.ErrorIs(t, err, planner.ErrInvalidRequest)

	_, err = run(t, "", "plan", "--catalog", "../../data/places_data.json", "--city", "Goa", "--min-per-day", "0")
	assert.ErrorIs(t, err, planner.ErrInvalidPolicy)

	_, err = run(t, "", "plan", "--city", "Goa", "--catalog", filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestPlan_SampleCatalog(t *testing.T) {
	out, err := run(t, "", "plan", "--catalog", "../../data/places_data.json",
		"--city", "Goa", "--days", "2", "--budget", "4000", "--interests", "nature,food", "--type", "friends")
	require.NoError(t, err)

	var resp response_models.ItineraryResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "Goa", resp.City)
	assert.Equal(t, "Nature, Food", resp.DayPlans[0].Focus)
}

func TestHashPassword(t *testing.T) {
	out, err := run(t, "hunter2\n", "hash-password")
	require.NoError(t, err)
	hash := strings.TrimSpace(out)
	assert.NoError(t, utils.ComparePasswords(hash, "hunter2"))

	_, err = run(t, "", "hash-password")
	assert.Error(t, err)
}
