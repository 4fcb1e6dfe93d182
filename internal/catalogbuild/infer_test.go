package catalogbuild

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"tripplanner/internal/planner"
)

func TestInferCategories(t *testing.T) {
	tests := []struct {
		text string
		want []planner.Category
	}{
		{"Hill station with a lake", []planner.Category{planner.CategoryNature}},
		{"River rafting", []planner.Category{planner.CategoryNature, planner.CategoryAdventure}},
		{"Ancient Temple", []planner.Category{planner.CategoryCulture, planner.CategoryHistory}},
		{"Palace and museum", []planner.Category{planner.CategoryHistory, planner.CategoryCulture}},
		{"Temple near the fort", []planner.Category{planner.CategoryCulture, planner.CategoryHistory}},
		{"Night bazaar with street food", []planner.Category{planner.CategoryShopping, planner.CategoryFood}},
		{"Sunset point to relax", []planner.Category{planner.CategoryCulture}},
		{"", []planner.Category{planner.CategoryCulture}},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, InferCategories(tt.text))
		})
	}
}

func TestInferCost(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   float64
	}{
		{"numeric", []string{"150"}, 150},
		{"fractional numeric", []string{"99.9"}, 99},
		{"free text", []string{"Free entry"}, 0},
		{"currency text", []string{"₹250 per person"}, 250},
		{"range text", []string{"100-200"}, 100},
		{"negative skipped", []string{"-5", "40"}, 40},
		{"unparseable skipped", []string{"ask at gate", "60"}, 60},
		{"nothing usable", []string{"ask at gate"}, 300},
		{"no values", nil, 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InferCost(tt.values))
		})
	}
}

func TestInferDurationHours(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   float64
	}{
		{"hours", []string{"2.5"}, 2.5},
		{"large number is minutes", []string{"90"}, 1.5},
		{"zero skipped", []string{"0", "4"}, 4},
		{"minutes text", []string{"45 min"}, 1},
		{"long minutes text", []string{"150 mins"}, 2.5},
		{"hours text", []string{"2-3 hours"}, 2},
		{"fallback", []string{"varies"}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, InferDurationHours(tt.values), 1e-9)
		})
	}
}

func TestStudentTip(t *testing.T) {
	assert.Contains(t, StudentTip(0), "free")
	assert.Contains(t, StudentTip(200), "Low-cost")
	assert.Contains(t, StudentTip(201), "balance")
	assert.Contains(t, StudentTip(900), "sharing")
}
